package platformtest

import (
	"sync"

	"github.com/1broseidon/deskclock/internal/platform"
)

// Loop is a platform.EventLoop driven by the test. Dispatch plays the role of the
// host's event goroutine; every Flush is reported on Flushed.
type Loop struct {
	before   chan struct{}
	after    chan struct{}
	quit     chan struct{}
	quitOnce sync.Once

	Flushed chan struct{}
}

var _ platform.EventLoop = (*Loop)(nil)

// NewLoop creates an idle loop.
func NewLoop() *Loop {
	return &Loop{
		before:  make(chan struct{}),
		after:   make(chan struct{}),
		quit:    make(chan struct{}),
		Flushed: make(chan struct{}, 64),
	}
}

func (l *Loop) Start() (before, after, quit <-chan struct{}) {
	return l.before, l.after, l.quit
}

// Dispatch runs fn as one event, bracketed the way a host brackets its callbacks.
func (l *Loop) Dispatch(fn func()) {
	l.before <- struct{}{}
	fn()
	l.after <- struct{}{}
}

func (l *Loop) Flush() {
	select {
	case l.Flushed <- struct{}{}:
	default:
	}
}

func (l *Loop) Quit() {
	l.quitOnce.Do(func() { close(l.quit) })
}

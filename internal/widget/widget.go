// Package widget wires the interaction controller, the clock renderer and the
// host window together.
package widget

import (
	"context"
	"image"
	"log/slog"
	"time"

	"github.com/1broseidon/deskclock/internal/config"
	"github.com/1broseidon/deskclock/internal/face"
	"github.com/1broseidon/deskclock/internal/gesture"
	"github.com/1broseidon/deskclock/internal/menu"
	"github.com/1broseidon/deskclock/internal/observability"
	"github.com/1broseidon/deskclock/internal/platform"
	"github.com/1broseidon/deskclock/internal/raster"
	"github.com/jonboulle/clockwork"
)

// Widget is the desk clock. It implements platform.Handler and must only be
// driven from the host's event-dispatch goroutine, which Run provides.
type Widget struct {
	host       platform.Host
	controller *gesture.Controller
	clock      clockwork.Clock
	interval   time.Duration
	border     int
	menu       *menu.Menu
	metrics    *observability.Metrics
	logger     *slog.Logger
	closed     bool
}

var _ platform.Handler = (*Widget)(nil)

// New creates a widget showing on host. metrics may be nil.
func New(host platform.Host, cfg *config.Config, clock clockwork.Clock, metrics *observability.Metrics, logger *slog.Logger) *Widget {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}

	limits := gesture.Limits{Min: cfg.MinSize, Max: cfg.MaxSize}
	w := &Widget{
		host:       host,
		controller: gesture.NewController(host, cfg.ResizeBorder, limits, logger),
		clock:      clock,
		interval:   cfg.TickInterval,
		border:     cfg.ResizeBorder,
		metrics:    metrics,
		logger:     logger,
	}
	if w.interval <= 0 {
		w.interval = config.DefaultTickInterval
	}
	if metrics != nil {
		w.controller.SetObserver(metrics)
	}
	w.menu = menu.New(menu.MenuItem{Label: "Close", Action: w.Close})
	return w
}

// Menu returns the context menu model.
func (w *Widget) Menu() *menu.Menu {
	return w.menu
}

// Mode returns the state of the gesture state machine.
func (w *Widget) Mode() gesture.Mode {
	return w.controller.Mode()
}

// PointerDown starts a gesture, or opens the context menu for the secondary button.
func (w *Widget) PointerDown(pos platform.Point, button platform.Button) {
	if button == platform.ButtonSecondary {
		mh, ok := w.host.(platform.MenuHost)
		if !ok || w.controller.Mode() != gesture.ModeIdle {
			return
		}
		mh.ShowMenu(w.menu, w.host.PointToScreen(pos))
		return
	}
	w.controller.PointerDown(pos, button)
}

func (w *Widget) PointerMove(pos platform.Point) {
	w.controller.PointerMove(pos)
}

// PointerUp ends any gesture in progress.
func (w *Widget) PointerUp(platform.Point, platform.Button) {
	w.controller.PointerUp()
}

// Tick keeps the window on top and requests a repaint of the current time.
func (w *Widget) Tick() {
	w.metrics.Tick()
	if r, ok := w.host.(platform.Raiser); ok {
		r.Raise()
	}
	w.host.RequestRedraw()
}

// Paint renders the clock face for the current time into dst.
func (w *Widget) Paint(dst *image.RGBA) {
	start := w.clock.Now()
	size := dst.Bounds().Size()

	numerals, err := raster.NumeralFace()
	if err != nil {
		w.logger.Warn("drawing frame without numerals", "error", err)
		w.metrics.FontFailed()
	} else {
		defer numerals.Close()
	}

	c := raster.New(dst, numerals)
	face.Render(c, face.NewLayout(size.X, size.Y), start)
	face.RenderGrips(c, size.X, size.Y, w.border)

	w.metrics.FrameRendered(w.clock.Since(start), size.X)
}

// Silhouette returns the opaque region of a window of the given size.
func (w *Widget) Silhouette(width, height int) []image.Rectangle {
	return face.Silhouette(width, height, w.border)
}

// Run drives the widget until ctx is cancelled or the loop stops. Window events
// and timer ticks are handled one at a time, and the window is flushed after
// each of them.
func (w *Widget) Run(ctx context.Context, loop platform.EventLoop) error {
	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	before, after, quit := loop.Start()
	w.logger.Info("desk clock running", "interval", w.interval, "bounds", w.host.Bounds())
	loop.Flush()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("shutting down", "reason", context.Cause(ctx))
			loop.Quit()
			return nil
		case <-quit:
			w.logger.Info("event loop stopped")
			return nil
		case <-before:
			<-after
		case <-ticker.Chan():
			w.Tick()
		}
		loop.Flush()
	}
}

// Close dismisses the menu and stops the host's event loop. It is the action of
// the context menu's Close item.
func (w *Widget) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.logger.Info("closing desk clock")
	if mh, ok := w.host.(platform.MenuHost); ok {
		mh.HideMenu()
	}
	if q, ok := w.host.(platform.Quitter); ok {
		q.Quit()
	}
}

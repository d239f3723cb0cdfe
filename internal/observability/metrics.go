package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the widget.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	FramesRendered  prometheus.Counter
	RenderDuration  prometheus.Histogram
	Ticks           prometheus.Counter
	Gestures        *prometheus.CounterVec // labels: mode={dragging,resizing}
	WindowResizes   prometheus.Counter
	WindowMoves     prometheus.Counter
	WindowSizePx    prometheus.Gauge
	FontLoadFailure prometheus.Counter
}

// NewMetrics creates the widget metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FramesRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "deskclock",
			Name:      "frames_rendered_total",
			Help:      "Total frames painted.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "deskclock",
			Name:      "render_duration_seconds",
			Help:      "Time spent rasterising one frame.",
			Buckets:   []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "deskclock",
			Name:      "ticks_total",
			Help:      "Total timer ticks handled.",
		}),
		Gestures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "deskclock",
			Name:      "gestures_total",
			Help:      "Pointer gestures started, by mode.",
		}, []string{"mode"}),
		WindowResizes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "deskclock",
			Name:      "window_resizes_total",
			Help:      "Window size updates applied during resize gestures.",
		}),
		WindowMoves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "deskclock",
			Name:      "window_moves_total",
			Help:      "Window position updates applied during drag gestures.",
		}),
		WindowSizePx: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "deskclock",
			Name:      "window_size_pixels",
			Help:      "Current window edge length.",
		}),
		FontLoadFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "deskclock",
			Name:      "font_load_failures_total",
			Help:      "Frames drawn without numerals because the font failed to load.",
		}),
	}

	reg.MustRegister(
		m.FramesRendered,
		m.RenderDuration,
		m.Ticks,
		m.Gestures,
		m.WindowResizes,
		m.WindowMoves,
		m.WindowSizePx,
		m.FontLoadFailure,
	)

	return m
}

// FrameRendered records one painted frame.
func (m *Metrics) FrameRendered(d time.Duration, size int) {
	if m == nil {
		return
	}
	m.FramesRendered.Inc()
	m.RenderDuration.Observe(d.Seconds())
	m.WindowSizePx.Set(float64(size))
}

// Tick records one timer tick.
func (m *Metrics) Tick() {
	if m == nil {
		return
	}
	m.Ticks.Inc()
}

// FontFailed records a frame drawn without numerals.
func (m *Metrics) FontFailed() {
	if m == nil {
		return
	}
	m.FontLoadFailure.Inc()
}

// GestureStarted implements gesture.Observer.
func (m *Metrics) GestureStarted(mode string) {
	if m == nil {
		return
	}
	m.Gestures.WithLabelValues(mode).Inc()
}

// WindowResized implements gesture.Observer.
func (m *Metrics) WindowResized() {
	if m == nil {
		return
	}
	m.WindowResizes.Inc()
}

// WindowMoved implements gesture.Observer.
func (m *Metrics) WindowMoved() {
	if m == nil {
		return
	}
	m.WindowMoves.Inc()
}

package host

import (
	"log/slog"

	"github.com/nordhagen/raido/internal/event"
	"github.com/nordhagen/raido/internal/router"
)

// DefaultHandler is the host's own (bubble-phase) click handling.
type DefaultHandler func(ev *event.Pointer)

// Dispatcher models the host's event pipeline: while started, the click
// router runs at the capture phase ahead of the host's default handler,
// and suppressing propagation is the only cancellation mechanism.
// Synthesized events re-enter the capture phase like any other click;
// the router's modifier guard is what keeps them from looping.
type Dispatcher struct {
	router  *router.Router
	def     DefaultHandler
	logger  *slog.Logger
	started bool
}

// NewDispatcher creates a stopped dispatcher. def may be nil when the
// host has no default click handling of its own.
func NewDispatcher(r *router.Router, def DefaultHandler, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{router: r, def: def, logger: logger}
}

// Start attaches the capture-phase listener. Idempotent.
func (d *Dispatcher) Start() {
	d.started = true
}

// Stop detaches the listener; events flow straight to the host again.
// Idempotent.
func (d *Dispatcher) Stop() {
	d.started = false
}

// Started reports whether the capture listener is attached.
func (d *Dispatcher) Started() bool {
	return d.started
}

// Dispatch delivers one click through the pipeline and returns the
// routing outcome (zero-valued while stopped).
func (d *Dispatcher) Dispatch(ev *event.Pointer) router.ClickOutcome {
	if !d.started {
		if d.def != nil {
			d.def(ev)
		}
		return router.ClickOutcome{}
	}

	out := d.router.HandleClick(ev)
	if out.Synthesize {
		d.logger.Debug("dispatcher: replaying click with meta held",
			slog.String("kind", out.Kind.String()))
		d.Dispatch(ev.Synthesize())
	}
	if out.Suppress {
		return out
	}
	if d.def != nil {
		d.def(ev)
	}
	return out
}

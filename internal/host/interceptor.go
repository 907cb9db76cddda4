// Package host adapts the pure routing decisions to a live host
// application: an open-link interceptor installed by explicit
// composition (no patched prototypes), and a dispatcher modelling the
// capture-phase click listener. Everything here runs on the host's UI
// event loop; no locking is needed or used.
package host

import (
	"github.com/nordhagen/raido/internal/pane"
	"github.com/nordhagen/raido/internal/router"
)

// OpenLinkFunc is the host's open-link primitive. opts is an opaque
// view-options value passed through untouched.
type OpenLinkFunc func(linkText, sourcePath string, newPane bool, opts any)

// PaneHost is the slice of host state the interceptor consumes.
type PaneHost interface {
	Panes() pane.Snapshot
	SetActive(paneID string)
}

// Interceptor wraps the host's open-link primitive with the pane-reuse
// decision. The host integration calls OpenLink from its own navigation
// entry point instead of the raw primitive.
type Interceptor struct {
	host     PaneHost
	delegate OpenLinkFunc
	order    router.MatchOrder
}

// Install wires an interceptor in front of delegate and returns it.
// A nil delegate is allowed: decisions are still made but navigation
// becomes a silent no-op.
func Install(h PaneHost, delegate OpenLinkFunc, order router.MatchOrder) *Interceptor {
	if order == "" {
		order = router.MatchLast
	}
	return &Interceptor{host: h, delegate: delegate, order: order}
}

// OpenLink decides the pane-reuse policy for one navigation, activates a
// matching pane when there is one, then delegates with the effective
// new-pane flag.
func (i *Interceptor) OpenLink(linkText, sourcePath string, newPane *bool, opts any) router.LinkDecision {
	d := router.DecideLink(i.host.Panes(), router.LinkIntent{
		LinkText:   linkText,
		SourcePath: sourcePath,
		NewPane:    newPane,
	}, i.order)

	if d.ActivatePane != "" {
		i.host.SetActive(d.ActivatePane)
	}
	if i.delegate != nil {
		i.delegate(linkText, sourcePath, d.NewPane, opts)
	}
	return d
}

// Uninstall reverses the wrap: it returns the original primitive and
// detaches it, so subsequent OpenLink calls decide but never navigate.
// Idempotent; later calls return nil.
func (i *Interceptor) Uninstall() OpenLinkFunc {
	d := i.delegate
	i.delegate = nil
	return d
}

package sfoglia

import (
	"errors"
	"net/url"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/motion"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/stack"
)

// PanelRender is everything the host needs to render one stack position:
// the resolved view (or a placeholder when resolution fails), the
// view-scoped query parameters embedded in the drawer path, the computed
// pose, and the close/drag callbacks bound to the position.
type PanelRender struct {
	Entry stack.Entry

	// View is the resolved view for the drawer's path. Nil when the path
	// could not resolve; Placeholder describes what to render instead.
	View        any
	Placeholder *Placeholder

	// Params are the query parameters embedded in the drawer path itself,
	// stripped before route matching and passed explicitly to the view.
	Params url.Values

	// Pose is the computed transform for this render.
	Pose motion.Pose

	// Close starts this panel's animated close sequence.
	Close func()

	// Press, Move, and Release feed this panel's drag gesture. All are
	// bounds-checked against the live stack and degrade to no-ops when
	// the panel is gone.
	Press   func(surface gesture.Surface, coord, extent float64) bool
	Move    func(coord float64)
	Release func() gesture.Outcome
}

// RenderModel computes the full render model for the current stack, bottom
// first. It is a pure function of the persisted stack and the transient
// animation state; calling it twice without an intervening change yields
// identical poses.
func (c *Controller) RenderModel() []PanelRender {
	entries := c.CurrentStack()

	panels := make([]PanelRender, len(entries))
	for i, e := range entries {
		level := i
		p := PanelRender{
			Entry: e,
			Close: func() { c.Close(level) },
			Press: func(surface gesture.Surface, coord, extent float64) bool {
				return c.PanelPress(level, surface, coord, extent)
			},
			Move:    func(coord float64) { c.PanelMove(level, coord) },
			Release: func() gesture.Outcome { return c.PanelRelease(level) },
		}

		m, err := route.Resolve(e.Path, c.flat)
		switch {
		case err == nil:
			p.View = m.View
			p.Params = m.Params
		case errors.Is(err, route.ErrRootPath):
			p.Placeholder = c.msgs.rootRejected()
			p.Params = url.Values{}
		default:
			p.Placeholder = c.msgs.notFound(e.Path)
			p.Params = url.Values{}
		}

		p.Pose = c.choreo.Pose(entries, i, motion.DragState{
			Dragging: c.gestures.Dragging(e.ID),
			Fraction: c.gestures.Fraction(e.ID),
		})

		panels[i] = p
	}
	return panels
}

// MessageBundle exposes the i18n bundle behind the placeholder copy so hosts
// can register translations for their configured languages.
func (c *Controller) MessageBundle() *i18n.Bundle {
	return c.msgs.bundle
}

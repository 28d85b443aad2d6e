package sfoglia

import (
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
)

// PointerPhase is the phase of a normalized pointer sample.
type PointerPhase int

const (
	// PointerDown is a press.
	PointerDown PointerPhase = iota
	// PointerMove is motion while pressed.
	PointerMove
	// PointerUp is a release.
	PointerUp
)

// PointerSample is one normalized pointer or touch sample in window
// coordinates, as produced by the input adapters.
type PointerSample struct {
	X, Y  float64
	Phase PointerPhase
}

// PanelRect is the on-screen rectangle of one rendered drawer panel, plus
// the height of its drag-handle strip measured from the panel's top edge.
// The host updates these from its layout on every render.
type PanelRect struct {
	Level      int
	X, Y, W, H float64
	HandleH    float64
}

func (r PanelRect) contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// PointerRouter routes normalized pointer samples to the controller: presses
// inside a panel start drag gestures on that panel, presses outside every
// panel apply the outside-interaction policy, and subsequent motion follows
// whichever panel the press landed on.
type PointerRouter struct {
	ctrl   *Controller
	rects  []PanelRect
	active int
}

// NewPointerRouter creates a router for the given controller.
func NewPointerRouter(ctrl *Controller) *PointerRouter {
	return &PointerRouter{ctrl: ctrl, active: -1}
}

// SetPanels replaces the panel rectangles used for hit testing.
func (r *PointerRouter) SetPanels(rects []PanelRect) {
	r.rects = append(r.rects[:0], rects...)
}

// Feed processes one pointer sample.
func (r *PointerRouter) Feed(s PointerSample) {
	switch s.Phase {
	case PointerDown:
		r.press(s)
	case PointerMove:
		if r.active >= 0 {
			r.ctrl.PanelMove(r.active, s.Y)
		}
	case PointerUp:
		if r.active >= 0 {
			r.ctrl.PanelRelease(r.active)
			r.active = -1
		}
	}
}

func (r *PointerRouter) press(s PointerSample) {
	hit, ok := r.hitTest(s.X, s.Y)
	if !ok {
		r.ctrl.OutsidePress(s.X, s.Y)
		return
	}

	surface := gesture.SurfaceBody
	if s.Y < hit.Y+hit.HandleH {
		surface = gesture.SurfaceHandle
	}

	if r.ctrl.PanelPress(hit.Level, surface, s.Y, hit.H) {
		r.active = hit.Level
	}
}

// hitTest returns the topmost panel containing the point. Later stack
// levels layer above earlier ones.
func (r *PointerRouter) hitTest(x, y float64) (PanelRect, bool) {
	best := PanelRect{Level: -1}
	for _, rect := range r.rects {
		if rect.contains(x, y) && rect.Level > best.Level {
			best = rect
		}
	}
	return best, best.Level >= 0
}

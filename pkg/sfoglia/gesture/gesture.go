// Package gesture turns raw pointer sequences into drag-to-dismiss decisions.
//
// A single process-wide Dispatcher owns the recognizer state for every panel,
// routing each sample to whichever panel owns the active gesture. Panels never
// attach or detach listeners themselves; the host feeds all samples through
// the one dispatcher. One gesture may be active per panel at a time, but
// gestures on different panels are independent and may overlap.
//
// Only motion in the dismiss direction is tracked. Motion the other way
// reports an offset of zero, never negative, so a panel can never overshoot
// past its resting position.
package gesture

import (
	"sync"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// Surface identifies where on a panel a press landed.
type Surface int

const (
	// SurfaceBody is the panel body.
	SurfaceBody Surface = iota
	// SurfaceHandle is the designated drag-handle region.
	SurfaceHandle
)

// Outcome is the result of releasing a drag.
type Outcome int

const (
	// OutcomeNone means no gesture was active for the panel.
	OutcomeNone Outcome = iota
	// OutcomeCommitted means the drag passed the dismiss threshold; the
	// panel must close.
	OutcomeCommitted
	// OutcomeCanceled means the drag fell short; the panel animates back
	// to its resting offset.
	OutcomeCanceled
)

// Callbacks receives gesture notifications. Any field may be nil.
type Callbacks struct {
	// OnFraction is called with the current drag fraction on every sample
	// while dragging, starting with 0 at press.
	OnFraction func(panel string, fraction float64)

	// OnCommit is called exactly once when a release passes the dismiss
	// threshold.
	OnCommit func(panel string)

	// OnCancel is called exactly once when a release falls short of the
	// threshold.
	OnCancel func(panel string)
}

// recognizer is the per-gesture state: the press coordinate, the panel's
// extent at press time, and the accumulated clamped delta.
type recognizer struct {
	start  float64
	extent float64
	delta  float64
}

func (r *recognizer) fraction() float64 {
	return r.delta / r.extent
}

// Dispatcher routes pointer samples to per-panel drag recognizers.
// Coordinates are measured along the dismiss axis and increase toward the
// dismiss edge.
type Dispatcher struct {
	mu         sync.Mutex
	active     map[string]*recognizer
	threshold  float64
	handleOnly bool
	cb         Callbacks
}

// NewDispatcher creates a Dispatcher with the standard dismiss threshold.
// When handleOnly is true, presses originating on the panel body are ignored
// entirely and only the drag handle starts a gesture.
func NewDispatcher(handleOnly bool, cb Callbacks) *Dispatcher {
	return &Dispatcher{
		active:     make(map[string]*recognizer),
		threshold:  constants.DismissThreshold,
		handleOnly: handleOnly,
		cb:         cb,
	}
}

// Press starts a gesture for panel at the given coordinate, with extent being
// the panel's size along the dismiss axis at drag start. Returns true when a
// gesture began.
//
// A press is ignored when a gesture is already active on the panel, when the
// surface is the body in handle-only mode, or when the extent is not
// positive.
func (d *Dispatcher) Press(panel string, surface Surface, coord, extent float64) bool {
	d.mu.Lock()
	if _, busy := d.active[panel]; busy || extent <= 0 {
		d.mu.Unlock()
		return false
	}
	if d.handleOnly && surface != SurfaceHandle {
		d.mu.Unlock()
		return false
	}
	d.active[panel] = &recognizer{start: coord, extent: extent}
	d.mu.Unlock()

	if d.cb.OnFraction != nil {
		d.cb.OnFraction(panel, 0)
	}
	return true
}

// Move feeds a motion sample to the panel's active gesture. Samples for
// panels without an active gesture are dropped.
func (d *Dispatcher) Move(panel string, coord float64) {
	d.mu.Lock()
	r, ok := d.active[panel]
	if !ok {
		d.mu.Unlock()
		return
	}
	delta := coord - r.start
	if delta < 0 {
		delta = 0
	}
	r.delta = delta
	fraction := r.fraction()
	d.mu.Unlock()

	if d.cb.OnFraction != nil {
		d.cb.OnFraction(panel, fraction)
	}
}

// Release ends the panel's active gesture and decides its outcome: committed
// when the accumulated clamped delta is at or above the dismiss threshold of
// the extent recorded at press, canceled otherwise.
func (d *Dispatcher) Release(panel string) Outcome {
	d.mu.Lock()
	r, ok := d.active[panel]
	if !ok {
		d.mu.Unlock()
		return OutcomeNone
	}
	delete(d.active, panel)
	committed := r.delta >= d.threshold*r.extent
	d.mu.Unlock()

	if committed {
		if d.cb.OnCommit != nil {
			d.cb.OnCommit(panel)
		}
		return OutcomeCommitted
	}
	if d.cb.OnCancel != nil {
		d.cb.OnCancel(panel)
	}
	return OutcomeCanceled
}

// Dragging reports whether panel has an active gesture.
func (d *Dispatcher) Dragging(panel string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.active[panel]
	return ok
}

// Fraction returns the current drag fraction for panel, or 0 when no gesture
// is active.
func (d *Dispatcher) Fraction(panel string) float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r, ok := d.active[panel]; ok {
		return r.fraction()
	}
	return 0
}

// Drop discards any active gesture for panel without emitting an outcome.
// Called when a panel leaves the stack mid-gesture.
func (d *Dispatcher) Drop(panel string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.active, panel)
}

package motion

import (
	"sync"
	"time"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/stack"
)

// closePhase tracks where a closing position is in its sequence.
type closePhase int

const (
	closePending closePhase = iota // exit transform playing, mutation scheduled
	closeSettling                  // mutation landed, mark not yet cleared
)

// DragState is the gesture input to pose computation for one panel.
type DragState struct {
	// Dragging suppresses the resting transform's transition entirely; the
	// pointer controls position directly.
	Dragging bool

	// Fraction is the gesture's reported drag offset as a fraction of the
	// panel extent.
	Fraction float64
}

// Pose is the computed geometry for one stack position on one render.
type Pose struct {
	// Open is the position's open flag. False means the panel renders
	// fully translated past its dismiss edge: either it was just appended
	// and its entrance has not flipped yet, or its exit transform is
	// playing.
	Open bool

	// Closing marks the position as mid-close. Closing positions are
	// excluded from their siblings' depth calculations.
	Closing bool

	// OffsetY is the resting vertical offset: -(gap x depthFromTop),
	// negative values raising the panel toward the stack's back.
	OffsetY float64

	// Scale is the resting scale: 1 - (squeeze x depthFromTop).
	Scale float64

	// DragFraction is the gesture offset applied on top of the resting
	// transform while dragging, as a fraction of panel extent.
	DragFraction float64

	// Animate is false while the position is being dragged, so the host
	// applies poses without an animated transition.
	Animate bool

	// BackdropLayer and PanelLayer are the z-layers for the position's
	// dimming backdrop and the panel itself. Later stack positions always
	// layer above earlier ones, and each panel sits one layer above its
	// own backdrop.
	BackdropLayer int
	PanelLayer    int
}

// Config configures a Choreographer.
type Config struct {
	// Gap is the vertical offset in pixels applied per level of depth.
	Gap float64

	// Squeeze is the fractional scale reduction applied per level of depth.
	Squeeze float64

	// Scheduler drives the timed phases. Defaults to real timers.
	Scheduler internal.Scheduler

	// Constrained selects the longer close settle delay used on devices
	// that drop frames during overlapping transitions.
	Constrained bool

	// Mutate performs the persisted-state mutation for a finished close:
	// pop when the closed position was the top of the stack, truncate
	// otherwise. Bound by the controller.
	Mutate func(level int, wasTop bool)

	// OnChange is invoked after every transient-state change (open flag
	// flip, closing mark set or cleared) so the host can re-render.
	OnChange func()
}

// Choreographer owns the transient animation state of every stack position,
// keyed by entry ID rather than raw index so state survives siblings being
// inserted or removed mid-stack.
type Choreographer struct {
	mu      sync.Mutex
	open    map[string]bool
	closing map[string]closePhase

	gap     float64
	squeeze float64
	sched   internal.Scheduler
	settle  time.Duration
	mutate  func(level int, wasTop bool)
	change  func()
}

// New creates a Choreographer.
func New(cfg Config) *Choreographer {
	sched := cfg.Scheduler
	if sched == nil {
		sched = internal.NewTimerScheduler()
	}
	settle := constants.CloseSettleDelay
	if cfg.Constrained {
		settle = constants.CloseSettleDelayConstrained
	}
	return &Choreographer{
		open:    make(map[string]bool),
		closing: make(map[string]closePhase),
		gap:     cfg.Gap,
		squeeze: cfg.Squeeze,
		sched:   sched,
		settle:  settle,
		mutate:  cfg.Mutate,
		change:  cfg.OnChange,
	}
}

// Reconcile syncs transient state with a freshly derived stack. Call on every
// change in stack contents.
//
// New entries start with their open flag false, rendered past the dismiss
// edge, and flip open one frame later so the entrance plays as a transition.
// Entries that left the stack lose their open flags; closing marks are
// cleared only by their own sequence so the exclusion holds for the whole
// transition.
func (c *Choreographer) Reconcile(entries []stack.Entry) {
	c.mu.Lock()
	present := make(map[string]struct{}, len(entries))
	var appended []string
	for _, e := range entries {
		present[e.ID] = struct{}{}
		if _, ok := c.open[e.ID]; !ok {
			c.open[e.ID] = false
			appended = append(appended, e.ID)
		}
	}
	for id := range c.open {
		if _, ok := present[id]; !ok {
			delete(c.open, id)
		}
	}
	c.mu.Unlock()

	for _, id := range appended {
		id := id
		c.sched.After(constants.OpenFlipDelay, func() {
			c.mu.Lock()
			flipped := false
			if open, ok := c.open[id]; ok && !open {
				// Skip entries that started closing before their
				// entrance ever played.
				if _, closing := c.closing[id]; !closing {
					c.open[id] = true
					flipped = true
				}
			}
			c.mu.Unlock()
			if flipped {
				c.notify()
			}
		})
	}
}

// BeginClose starts the close sequence for the position at level. No-op when
// the level is out of bounds or the position is already closing.
//
// The sequence is: mark closing and drop the open flag now (the exit
// transform plays and siblings re-seat immediately), mutate the persisted
// stack after the settle delay, then clear the closing mark one further
// delay after the mutation.
func (c *Choreographer) BeginClose(entries []stack.Entry, level int) {
	if level < 0 || level >= len(entries) {
		return
	}
	id := entries[level].ID
	wasTop := level == len(entries)-1

	c.mu.Lock()
	if _, already := c.closing[id]; already {
		c.mu.Unlock()
		return
	}
	c.closing[id] = closePending
	c.open[id] = false
	c.mu.Unlock()

	internal.GetLogger().Debug("drawer close started",
		"id", id, "level", level, "top", wasTop)
	c.notify()

	c.sched.After(c.settle, func() {
		if c.mutate != nil {
			c.mutate(level, wasTop)
		}

		c.mu.Lock()
		c.closing[id] = closeSettling
		c.mu.Unlock()

		c.sched.After(constants.CloseUnmarkDelay, func() {
			c.mu.Lock()
			delete(c.closing, id)
			c.mu.Unlock()
			c.notify()
		})
	})
}

// Pose computes the geometry for the position at index i of the current
// stack, given its gesture state.
func (c *Choreographer) Pose(entries []stack.Entry, i int, drag DragState) Pose {
	c.mu.Lock()
	defer c.mu.Unlock()

	var p Pose
	if i < 0 || i >= len(entries) {
		return p
	}
	id := entries[i].ID

	// Depth from top over the effective stack: closing siblings above this
	// position do not count, so it steps toward its new resting depth the
	// moment a sibling starts closing.
	depth := 0
	for j := i + 1; j < len(entries); j++ {
		if _, closing := c.closing[entries[j].ID]; !closing {
			depth++
		}
	}

	_, closing := c.closing[id]
	p.Open = c.open[id]
	p.Closing = closing
	p.OffsetY = -(c.gap * float64(depth))
	p.Scale = 1 - c.squeeze*float64(depth)
	p.Animate = true

	if drag.Dragging {
		p.Animate = false
		p.DragFraction = drag.Fraction
	}

	p.BackdropLayer = constants.BaseLayer + constants.LayersPerPanel*i
	p.PanelLayer = p.BackdropLayer + 1
	return p
}

// Closing reports whether the entry with the given ID is mid-close.
func (c *Choreographer) Closing(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.closing[id]
	return ok
}

// OpenFlag reports the current open flag for the entry with the given ID.
func (c *Choreographer) OpenFlag(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open[id]
}

func (c *Choreographer) notify() {
	if c.change != nil {
		c.change()
	}
}

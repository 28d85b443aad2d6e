package sfoglia

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/gesture"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/motion"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/route"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/stack"
)

// Controller is the drawer stack's composition root. It wires the persisted
// stack derivation into the choreographer and gesture dispatcher, exposes the
// mutation operations, and owns the per-panel transient state that never
// reaches the persisted location.
//
// At most one stack is ever visible for a given persisted-state snapshot:
// the render model is a pure function of the persisted list plus the
// transient animation state.
type Controller struct {
	opts     Options
	store    *stack.Store
	flat     []route.Flat
	choreo   *motion.Choreographer
	gestures *gesture.Dispatcher
	msgs     *messages

	mu      sync.Mutex
	entries []stack.Entry
	render  func()

	// outsideReady flips after a short startup grace so the interaction
	// that opened the first drawer cannot immediately dismiss it.
	outsideReady atomic.Bool

	unsubscribe func()
}

// New creates a Controller over the given routing host and route tree.
// The host's route tree is flattened once; it is treated as immutable.
func New(host stack.Host, routes []route.Node, opts Options) (*Controller, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	opts = opts.withDefaults()

	sched := opts.sched
	if sched == nil {
		sched = internal.NewTimerScheduler()
	}

	c := &Controller{
		opts:  opts,
		store: stack.NewStore(host),
		flat:  route.Flatten(routes),
		msgs:  newMessages(opts.Languages),
	}

	c.choreo = motion.New(motion.Config{
		Gap:         opts.StackGap,
		Squeeze:     opts.StackSqueeze,
		Scheduler:   sched,
		Constrained: opts.isConstrained(),
		Mutate:      c.applyClose,
		OnChange:    c.renderChanged,
	})

	c.gestures = gesture.NewDispatcher(opts.HandleOnly, gesture.Callbacks{
		OnFraction: func(string, float64) { c.renderChanged() },
		OnCommit:   c.commitDrag,
		OnCancel:   func(string) { c.renderChanged() },
	})

	if n, ok := host.(stack.Notifier); ok {
		c.unsubscribe = n.Subscribe(c.refresh)
	}
	c.refresh()

	sched.After(constants.OutsidePressGrace, func() {
		c.outsideReady.Store(true)
	})

	return c, nil
}

// Detach unsubscribes the controller from host location changes. Call when
// the drawer stack leaves the application for good.
func (c *Controller) Detach() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// Push opens a drawer for path on top of the stack. Fire-and-forget: the
// stack updates when the host propagates the location change.
func (c *Controller) Push(path string) {
	c.store.Push(path)
}

// Pop removes the top drawer without an exit animation. No-op when the stack
// is empty. For the animated path use Close or the render model's callbacks.
func (c *Controller) Pop() {
	c.store.Pop()
}

// CloseAll clears the whole stack. Idempotent.
func (c *Controller) CloseAll() {
	c.store.CloseAll()
}

// ReplaceTop swaps the top drawer's path, or opens a drawer when the stack
// is empty.
func (c *Controller) ReplaceTop(path string) {
	c.store.ReplaceTop(path)
}

// ReplaceAll sets the stack to exactly paths, in order.
func (c *Controller) ReplaceAll(paths []string) {
	c.store.ReplaceAll(paths)
}

// CurrentStack returns the derived stack, bottom first.
func (c *Controller) CurrentStack() []stack.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]stack.Entry(nil), c.entries...)
}

// HasOpenDrawers reports whether any drawer is open.
func (c *Controller) HasOpenDrawers() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries) > 0
}

// Close starts the animated close sequence for the drawer at level. Closing
// a non-top level closes it and everything stacked above it. No-op for
// levels that no longer exist or are already closing.
func (c *Controller) Close(level int) {
	c.choreo.BeginClose(c.CurrentStack(), level)
}

// OutsidePress applies the outside-interaction policy for a press that
// landed outside every drawer's bounds: dismiss the topmost panel only.
// Presses during the startup grace period are ignored, as are presses the
// configured ProtectedRegion claims for an always-on-top companion surface.
func (c *Controller) OutsidePress(x, y float64) {
	if !c.outsideReady.Load() {
		return
	}
	if c.opts.ProtectedRegion != nil && c.opts.ProtectedRegion(x, y) {
		return
	}
	entries := c.CurrentStack()
	if len(entries) == 0 {
		return
	}
	c.choreo.BeginClose(entries, len(entries)-1)
}

// PanelPress starts a drag gesture on the drawer at level. Returns false for
// stale levels, closing panels, body presses in handle-only mode, or when a
// gesture is already active on the panel.
func (c *Controller) PanelPress(level int, surface gesture.Surface, coord, extent float64) bool {
	id, ok := c.idAt(level)
	if !ok || c.choreo.Closing(id) {
		return false
	}
	return c.gestures.Press(id, surface, coord, extent)
}

// PanelMove feeds a drag motion sample to the drawer at level.
func (c *Controller) PanelMove(level int, coord float64) {
	if id, ok := c.idAt(level); ok {
		c.gestures.Move(id, coord)
	}
}

// PanelRelease ends the drag gesture on the drawer at level. A committed
// release starts the panel's close sequence.
func (c *Controller) PanelRelease(level int) gesture.Outcome {
	id, ok := c.idAt(level)
	if !ok {
		return gesture.OutcomeNone
	}
	return c.gestures.Release(id)
}

// OnRender registers the host callback invoked whenever the render model
// may have changed: stack derivation, open-flag flips, closing marks, and
// drag samples.
func (c *Controller) OnRender(fn func()) {
	c.mu.Lock()
	c.render = fn
	c.mu.Unlock()
}

// applyClose performs the persisted mutation of a settled close: pop when
// the closed position was the top of the stack, truncate otherwise.
func (c *Controller) applyClose(level int, wasTop bool) {
	if wasTop {
		c.store.Pop()
		return
	}
	c.store.Truncate(level)
}

// commitDrag maps a committed drag back to the panel's current level.
// Bounds-checked: if the panel left the stack mid-gesture this degrades to
// a no-op.
func (c *Controller) commitDrag(id string) {
	entries := c.CurrentStack()
	for i, e := range entries {
		if e.ID == id {
			c.choreo.BeginClose(entries, i)
			return
		}
	}
}

// refresh re-derives the stack from the live persisted list and reconciles
// the transient state. Runs on every host location change.
func (c *Controller) refresh() {
	entries := stack.Derive(c.store.List())

	c.mu.Lock()
	old := c.entries
	c.entries = entries
	c.mu.Unlock()

	// Gestures on removed panels resolve silently.
	for _, e := range old {
		if e.Level >= len(entries) {
			c.gestures.Drop(e.ID)
		}
	}

	c.choreo.Reconcile(entries)
	internal.GetLogger().Debug("drawer stack derived", "levels", len(entries))
	c.renderChanged()
}

// idAt maps a stack level to its entry ID, guarding stale indices.
func (c *Controller) idAt(level int) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if level < 0 || level >= len(c.entries) {
		return "", false
	}
	return c.entries[level].ID, true
}

func (c *Controller) renderChanged() {
	c.mu.Lock()
	fn := c.render
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

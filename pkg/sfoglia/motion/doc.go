// Package motion choreographs the open, close, and drag animations of a
// drawer stack so that closing one panel never causes visible jumps in the
// others.
//
// Each stack position runs an independent state machine:
//
//	Open -> Closing(pending mutation) -> Closing(settling) -> Removed
//
// driven by a scheduler abstraction, so production uses real timers while
// tests advance virtual time deterministically. A position entering the
// closing phase immediately leaves the depth calculation for its siblings
// (the "effective stack"), which lets panels beneath a closing panel start
// animating toward their new resting depth before the persisted stack has
// actually shrunk. The persisted mutation lands only after a settle delay,
// and the closing mark is cleared one further delay after that, so the
// position stays excluded from depth math for the entire visual transition.
//
// A close, once begun, always completes; there is no cancellation path.
package motion

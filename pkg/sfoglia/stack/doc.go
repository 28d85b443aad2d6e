// Package stack derives the ordered drawer stack from the host's persisted
// list-valued query state and provides the mutation operations that write
// back to it.
//
// The persisted list is the single source of truth: the drawer stack is a
// pure projection of the repeated "drawer" query parameter in the host's
// current location, in the order the values appear. The Store holds no state
// of its own; every mutator performs a read-modify-write against the live
// location so rapid sequential mutations never operate on stale snapshots.
//
// Mutators are fire-and-forget. They hand a new location to the host and
// return; the derived stack updates when the host propagates the change, not
// synchronously within the call.
package stack

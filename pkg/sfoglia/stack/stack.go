package stack

import (
	"net/url"
	"strconv"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/constants"
)

// Entry is one drawer in the derived stack.
//
// ID is derived deterministically from stack position at derivation time; it
// is unique within the current stack snapshot, not across the process
// lifetime. Level always equals the entry's index in the stack.
type Entry struct {
	ID    string
	Path  string
	Level int
}

// Location is the host's current navigable location: a pathname plus its
// query parameters.
type Location struct {
	Path  string
	Query url.Values
}

// Clone returns a deep copy of the location so mutators never alias the
// host's live query values.
func (l Location) Clone() Location {
	q := make(url.Values, len(l.Query))
	for k, vs := range l.Query {
		q[k] = append([]string(nil), vs...)
	}
	return Location{Path: l.Path, Query: q}
}

// Host is the complete surface the drawer stack needs from the routing host:
// read the current location and navigate to a new one. Navigate must create
// a new history entry (not a replace), so the host's back navigation pops one
// drawer level at a time.
type Host interface {
	Location() Location
	Navigate(loc Location)
}

// Notifier is implemented by hosts that can push location-change
// notifications. The controller subscribes to re-derive the stack whenever
// the location changes, including changes it did not initiate (back/forward,
// navigation elsewhere in the host).
type Notifier interface {
	Subscribe(fn func()) (unsubscribe func())
}

// Derive maps the persisted list to the ordered drawer stack. Pure; levels
// are exactly 0..n-1 by construction.
func Derive(persisted []string) []Entry {
	entries := make([]Entry, len(persisted))
	for i, path := range persisted {
		entries[i] = Entry{
			ID:    constants.EntryIDPrefix + strconv.Itoa(i),
			Path:  path,
			Level: i,
		}
	}
	return entries
}

// Store mutates the persisted drawer list through a Host.
type Store struct {
	host Host
	key  string
}

// NewStore creates a Store over the given host, persisting the stack under
// the standard query parameter key.
func NewStore(host Host) *Store {
	return &Store{host: host, key: constants.StackParamKey}
}

// List reads the persisted drawer list fresh from the host's live location.
func (s *Store) List() []string {
	return s.host.Location().Query[s.key]
}

// write navigates to the current location with the persisted list replaced.
// All other query parameters are preserved.
func (s *Store) write(list []string) {
	loc := s.host.Location().Clone()
	if len(list) == 0 {
		delete(loc.Query, s.key)
	} else {
		loc.Query[s.key] = list
	}
	s.host.Navigate(loc)
}

// Push appends path to the persisted list. Duplicate paths are legal: the
// same path open at two stack levels is two distinct drawers.
func (s *Store) Push(path string) {
	list := s.List()
	next := make([]string, 0, len(list)+1)
	next = append(next, list...)
	next = append(next, path)
	s.write(next)
}

// Pop removes the last element of the persisted list. No-op when empty.
func (s *Store) Pop() {
	list := s.List()
	if len(list) == 0 {
		return
	}
	s.write(list[:len(list)-1])
}

// CloseAll clears the persisted list. No-op when already empty, so calling
// it twice has the same effect as once.
func (s *Store) CloseAll() {
	if len(s.List()) == 0 {
		return
	}
	s.write(nil)
}

// ReplaceTop replaces the last element with path, or appends when the list
// is empty.
func (s *Store) ReplaceTop(path string) {
	list := s.List()
	next := make([]string, 0, len(list)+1)
	if len(list) == 0 {
		next = append(next, path)
	} else {
		next = append(next, list[:len(list)-1]...)
		next = append(next, path)
	}
	s.write(next)
}

// ReplaceAll sets the persisted list to exactly paths, preserving order.
func (s *Store) ReplaceAll(paths []string) {
	s.write(append([]string(nil), paths...))
}

// Truncate keeps only the entries below level, closing level and everything
// stacked above it. Truncate(0) is equivalent to CloseAll. No-op when level
// is at or past the end of the list.
func (s *Store) Truncate(level int) {
	list := s.List()
	if level < 0 || level >= len(list) {
		return
	}
	s.write(list[:level])
}

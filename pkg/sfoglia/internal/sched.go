package internal

import (
	"sort"
	"sync"
	"time"
)

// Scheduler abstracts delayed callback execution so the close choreography
// can be driven by real timers in production and by virtual time in tests.
type Scheduler interface {
	// After runs fn once d has elapsed. There is no cancellation: a close
	// phase, once scheduled, always runs.
	After(d time.Duration, fn func())
}

// TimerScheduler runs callbacks on real timers via time.AfterFunc.
// Callbacks fire on their own goroutines; callers are responsible for
// their own locking.
type TimerScheduler struct{}

// NewTimerScheduler creates a Scheduler backed by real timers.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// After implements Scheduler.
func (s *TimerScheduler) After(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

type manualEntry struct {
	due time.Duration
	seq int
	fn  func()
}

// ManualScheduler is a virtual-time Scheduler for tests. Scheduled callbacks
// fire only when Advance moves the virtual clock past their due time, in due
// order, with insertion order breaking ties.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []manualEntry
}

// NewManualScheduler creates a ManualScheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// After implements Scheduler.
func (s *ManualScheduler) After(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.pending = append(s.pending, manualEntry{due: s.now + d, seq: s.seq, fn: fn})
}

// Advance moves virtual time forward by d, firing every callback whose due
// time is reached. Callbacks run synchronously on the calling goroutine and
// may schedule further callbacks, which also fire if their due time falls
// within the advanced window.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()

	for {
		s.mu.Lock()
		sort.SliceStable(s.pending, func(i, j int) bool {
			if s.pending[i].due != s.pending[j].due {
				return s.pending[i].due < s.pending[j].due
			}
			return s.pending[i].seq < s.pending[j].seq
		})

		idx := -1
		for i, e := range s.pending {
			if e.due <= target {
				idx = i
				break
			}
		}
		if idx == -1 {
			s.now = target
			s.mu.Unlock()
			return
		}

		entry := s.pending[idx]
		s.pending = append(s.pending[:idx], s.pending[idx+1:]...)
		if entry.due > s.now {
			s.now = entry.due
		}
		s.mu.Unlock()

		entry.fn()
	}
}

// Pending returns the number of callbacks not yet fired.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

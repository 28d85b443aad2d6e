// Package evdevinput reads a Linux evdev touchscreen device and emits the
// normalized pointer samples the drawer stack consumes. It exists for
// handheld devices where the application owns the display directly and no
// windowing layer delivers touch input.
//
// Samples carry raw device coordinates; the host scales them to window
// coordinates before feeding a PointerRouter.
package evdevinput

import (
	"context"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia"
	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia/internal"
)

// accumulator folds raw evdev events into pointer samples. Touch frames are
// delimited by SYN_REPORT markers: BTN_TOUCH transitions become down/up
// samples, position updates while touching become moves.
type accumulator struct {
	x, y     int32
	touching bool
	pending  *sfoglia.PointerPhase
	moved    bool
}

// feed consumes one event and returns a completed sample at frame
// boundaries.
func (a *accumulator) feed(ev *evdev.InputEvent) (sfoglia.PointerSample, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
			a.x = ev.Value
			a.moved = true
		case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
			a.y = ev.Value
			a.moved = true
		}

	case evdev.EV_KEY:
		if ev.Code != evdev.BTN_TOUCH {
			break
		}
		if ev.Value != 0 && !a.touching {
			a.touching = true
			phase := sfoglia.PointerDown
			a.pending = &phase
		} else if ev.Value == 0 && a.touching {
			a.touching = false
			phase := sfoglia.PointerUp
			a.pending = &phase
		}

	case evdev.EV_SYN:
		if ev.Code != evdev.SYN_REPORT {
			break
		}
		moved := a.moved
		a.moved = false
		switch {
		case a.pending != nil:
			phase := *a.pending
			a.pending = nil
			return sfoglia.PointerSample{X: float64(a.x), Y: float64(a.y), Phase: phase}, true
		case a.touching && moved:
			return sfoglia.PointerSample{X: float64(a.x), Y: float64(a.y), Phase: sfoglia.PointerMove}, true
		}
	}
	return sfoglia.PointerSample{}, false
}

// Source reads one touchscreen device and emits pointer samples.
type Source struct {
	dev  *evdev.InputDevice
	emit func(sfoglia.PointerSample)
}

// Open opens the evdev device at path (e.g. /dev/input/event1). Every
// completed touch frame produces at most one sample through emit.
func Open(path string, emit func(sfoglia.PointerSample)) (*Source, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	return &Source{dev: dev, emit: emit}, nil
}

// Run reads events until ctx is canceled or the device read fails.
func (s *Source) Run(ctx context.Context) error {
	var acc accumulator

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := s.dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			internal.GetLogger().Error("touchscreen read failed", "error", err)
			return err
		}

		if sample, ok := acc.feed(ev); ok {
			s.emit(sample)
		}
	}
}

// Close releases the device. A blocked Run returns once the read fails.
func (s *Source) Close() error {
	return s.dev.Close()
}

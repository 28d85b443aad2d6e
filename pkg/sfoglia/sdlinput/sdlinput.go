// Package sdlinput translates SDL mouse and touch events into the normalized
// pointer samples the drawer stack consumes. Applications already pumping an
// SDL event loop pass each event through Translate and feed the result to a
// PointerRouter.
//
//	router := sfoglia.NewPointerRouter(ctrl)
//	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
//	    if sample, ok := sdlinput.Translate(event, winW, winH); ok {
//	        router.Feed(sample)
//	    }
//	    // ... the application's own event handling
//	}
package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia"
)

// Translate converts an SDL event into a pointer sample. Window dimensions
// are needed because SDL reports finger positions normalized to 0..1 while
// mouse positions arrive in window coordinates.
//
// Only left-button mouse activity and single-finger touch activity
// translate; everything else returns ok=false.
func Translate(event sdl.Event, windowW, windowH int32) (sample sfoglia.PointerSample, ok bool) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return sample, false
		}
		sample.X = float64(e.X)
		sample.Y = float64(e.Y)
		if e.Type == sdl.MOUSEBUTTONDOWN {
			sample.Phase = sfoglia.PointerDown
		} else {
			sample.Phase = sfoglia.PointerUp
		}
		return sample, true

	case *sdl.MouseMotionEvent:
		if e.State&sdl.Button(sdl.BUTTON_LEFT) == 0 {
			return sample, false
		}
		sample.X = float64(e.X)
		sample.Y = float64(e.Y)
		sample.Phase = sfoglia.PointerMove
		return sample, true

	case *sdl.TouchFingerEvent:
		sample.X = float64(e.X) * float64(windowW)
		sample.Y = float64(e.Y) * float64(windowH)
		switch e.Type {
		case sdl.FINGERDOWN:
			sample.Phase = sfoglia.PointerDown
		case sdl.FINGERMOTION:
			sample.Phase = sfoglia.PointerMove
		case sdl.FINGERUP:
			sample.Phase = sfoglia.PointerUp
		default:
			return sample, false
		}
		return sample, true
	}
	return sample, false
}

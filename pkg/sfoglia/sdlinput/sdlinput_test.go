package sdlinput

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/sfoglia/pkg/sfoglia"
)

func TestTranslateMouseButton(t *testing.T) {
	down := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 100, Y: 200}
	s, ok := Translate(down, 640, 480)
	assert.True(t, ok)
	assert.Equal(t, sfoglia.PointerSample{X: 100, Y: 200, Phase: sfoglia.PointerDown}, s)

	up := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 100, Y: 260}
	s, ok = Translate(up, 640, 480)
	assert.True(t, ok)
	assert.Equal(t, sfoglia.PointerUp, s.Phase)
}

func TestTranslateIgnoresRightButton(t *testing.T) {
	e := &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT, X: 1, Y: 2}
	_, ok := Translate(e, 640, 480)
	assert.False(t, ok)
}

func TestTranslateMotionRequiresHeldButton(t *testing.T) {
	held := &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, State: sdl.Button(sdl.BUTTON_LEFT), X: 5, Y: 6}
	s, ok := Translate(held, 640, 480)
	assert.True(t, ok)
	assert.Equal(t, sfoglia.PointerMove, s.Phase)

	hover := &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, State: 0, X: 5, Y: 6}
	_, ok = Translate(hover, 640, 480)
	assert.False(t, ok)
}

func TestTranslateFingerScalesToWindow(t *testing.T) {
	e := &sdl.TouchFingerEvent{Type: sdl.FINGERMOTION, X: 0.5, Y: 0.25}
	s, ok := Translate(e, 640, 480)
	assert.True(t, ok)
	assert.Equal(t, 320.0, s.X)
	assert.Equal(t, 120.0, s.Y)
	assert.Equal(t, sfoglia.PointerMove, s.Phase)
}

func TestTranslateUnrelatedEvent(t *testing.T) {
	_, ok := Translate(&sdl.KeyboardEvent{}, 640, 480)
	assert.False(t, ok)
}

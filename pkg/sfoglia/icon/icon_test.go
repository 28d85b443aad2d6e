package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProducesPixels(t *testing.T) {
	for _, g := range []Glyph{GlyphHandle, GlyphClose} {
		img, err := Render(g, 48)
		require.NoError(t, err)
		require.NotNil(t, img)
		assert.Equal(t, 48, img.Bounds().Dx())
		assert.Equal(t, 48, img.Bounds().Dy())

		opaque := 0
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] != 0 {
				opaque++
			}
		}
		assert.Greater(t, opaque, 0, "glyph %d rendered nothing", g)
	}
}

func TestRenderSizes(t *testing.T) {
	for _, size := range []int{16, 32, 128} {
		img, err := Render(GlyphHandle, size)
		require.NoError(t, err)
		assert.Equal(t, size, img.Bounds().Dx())
	}
}

// Package icon rasterizes the framework's built-in SVG glyphs to pixel
// buffers, so hosts without their own SVG support can still draw the drag
// handle and the close affordance.
package icon

import (
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Glyph identifies a built-in icon.
type Glyph int

const (
	// GlyphHandle is the horizontal grip bar drawn at the top of a
	// draggable panel.
	GlyphHandle Glyph = iota
	// GlyphClose is the dismiss cross shown on panels without a handle.
	GlyphClose
)

const handleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 48 48">
<rect x="10" y="21" width="28" height="6" rx="3" fill="#000000"/>
</svg>`

const closeSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 48 48">
<path d="M14 14 L34 34 M34 14 L14 34" stroke="#000000" stroke-width="5" stroke-linecap="round"/>
</svg>`

func source(g Glyph) string {
	switch g {
	case GlyphClose:
		return closeSVG
	default:
		return handleSVG
	}
}

// Render rasterizes the glyph into a new RGBA image of the given size.
// Hosts recolor the result themselves; glyphs render in opaque black on a
// transparent background.
func Render(g Glyph, size int) (*image.RGBA, error) {
	svg, err := oksvg.ReadIconStream(strings.NewReader(source(g)))
	if err != nil {
		return nil, err
	}

	svg.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	svg.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

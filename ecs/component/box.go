package component

import "image/color"

// Box is the renderable: a colored rectangle, drawn centered on the
// entity's transform. Level art is colored rects throughout.
type Box struct {
	Width, Height float64
	Color         color.NRGBA
	Layer         int

	// Fade scales alpha for corpse fade-outs; 1 when fully opaque.
	Fade float64
}

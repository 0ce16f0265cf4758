// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pigmentlab/pigment"
)

func toColorful(c color.Color) colorful.Color {
	rgba := pigment.AsRGBA(c)
	return colorful.Color{
		R: float64(rgba.R) / 255,
		G: float64(rgba.G) / 255,
		B: float64(rgba.B) / 255,
	}
}

func fromColorful(c colorful.Color) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(c.R * 255)),
		G: uint8(math.Round(c.G * 255)),
		B: uint8(math.Round(c.B * 255)),
		A: 0xFF,
	}
}

// Colorize recolors img with the hue of tint, keeping each pixel's
// saturation and value. The result is fully opaque.
func Colorize(img image.Image, tint color.Color) *image.RGBA {
	hue, _, _ := toColorful(tint).Hsv()
	return EvalPixel(img, func(c color.Color) color.Color {
		_, s, v := toColorful(c).Hsv()
		return fromColorful(colorful.Hsv(hue, s, v))
	})
}

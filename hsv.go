// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBToHSV converts the given color to byte-scaled HSV, with hue,
// saturation, and value each in [0, 255] like the RGB components.
func RGBToHSV(c color.Color) (h, s, v uint8) {
	rgba := AsRGBA(c)
	col := colorful.Color{
		R: float64(rgba.R) / 255,
		G: float64(rgba.G) / 255,
		B: float64(rgba.B) / 255,
	}
	fh, fs, fv := col.Hsv() // fh in [0, 360), fs and fv in [0, 1]
	h = uint8(math.Round(fh / 360 * 255))
	s = uint8(math.Round(fs * 255))
	v = uint8(math.Round(fv * 255))
	return h, s, v
}

// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"image/color"
	"math/rand/v2"
)

// RandomRGB returns a uniformly random opaque color.
func RandomRGB() color.RGBA {
	return color.RGBA{
		R: uint8(rand.IntN(256)),
		G: uint8(rand.IntN(256)),
		B: uint8(rand.IntN(256)),
		A: 0xFF,
	}
}

// RandomRGBA returns a uniformly random color with random alpha.
func RandomRGBA() color.RGBA {
	c := RandomRGB()
	c.A = uint8(rand.IntN(256))
	return c
}

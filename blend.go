// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Distance returns the Euclidean distance between two colors in RGB
// space. Alpha does not contribute.
func Distance(a, b color.Color) float32 {
	ca, cb := AsRGBA(a), AsRGBA(b)
	dr := float32(ca.R) - float32(cb.R)
	dg := float32(ca.G) - float32(cb.G)
	db := float32(ca.B) - float32(cb.B)
	return math32.Sqrt(dr*dr + dg*dg + db*db)
}

// Mix linearly blends two colors: p=0 returns a, p=1 returns b, and
// p=0.5 an equal mix. p is clamped to [0, 1]. Components interpolate
// per channel, including alpha, and truncate to bytes.
func Mix(a, b color.Color, p float32) color.RGBA {
	p = math32.Min(math32.Max(p, 0), 1)
	ca, cb := AsRGBA(a), AsRGBA(b)
	lerp := func(x, y uint8) uint8 {
		return uint8(float32(x)*(1-p) + float32(y)*p)
	}
	return color.RGBA{
		R: lerp(ca.R, cb.R),
		G: lerp(ca.G, cb.G),
		B: lerp(ca.B, cb.B),
		A: lerp(ca.A, cb.A),
	}
}

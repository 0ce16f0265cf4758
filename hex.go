// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"fmt"
	"image/color"
)

// HexToRGB converts a packed 24-bit RGB number such as 0xAB34DF into an
// opaque [color.RGBA]. Red occupies the most significant byte. It
// returns [ErrRange] if hex is outside [0, 0xFFFFFF]. See [FromHex6]
// for the string form.
func HexToRGB(hex int) (color.RGBA, error) {
	if hex < 0 || hex > 0xFFFFFF {
		return color.RGBA{}, fmt.Errorf("pigment.HexToRGB: %#x is not an RGB number: %w", hex, ErrRange)
	}
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xFF}, nil
}

// HexToRGBA converts a packed 32-bit RGBA number such as 0xAB34DF80
// into a [color.RGBA]. Red occupies the most significant byte and alpha
// the least. It returns [ErrRange] if hex is outside [0, 0xFFFFFFFF].
func HexToRGBA(hex int64) (color.RGBA, error) {
	if hex < 0 || hex > 0xFFFFFFFF {
		return color.RGBA{}, fmt.Errorf("pigment.HexToRGBA: %#x is not an RGBA number: %w", hex, ErrRange)
	}
	return color.RGBA{R: uint8(hex >> 24), G: uint8(hex >> 16), B: uint8(hex >> 8), A: uint8(hex)}, nil
}

// RGBToHex packs the given components into a 24-bit RGB number, the
// inverse of [HexToRGB]. It returns [ErrRange] if any component is
// outside [0, 255].
func RGBToHex(r, g, b int) (int, error) {
	for _, n := range [3]int{r, g, b} {
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("pigment.RGBToHex: component %d: %w", n, ErrRange)
		}
	}
	return r<<16 | g<<8 | b, nil
}

// RGBAToHex packs the given components into a 32-bit RGBA number, the
// inverse of [HexToRGBA]. It returns [ErrRange] if any component is
// outside [0, 255].
func RGBAToHex(r, g, b, a int) (int64, error) {
	for _, n := range [4]int{r, g, b, a} {
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("pigment.RGBAToHex: component %d: %w", n, ErrRange)
		}
	}
	return int64(r)<<24 | int64(g)<<16 | int64(b)<<8 | int64(a), nil
}

// AsRGBA returns the given color as a [color.RGBA].
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsHex returns the canonical lowercase #rrggbb form of the given
// color. Alpha is dropped; the result always parses with [FromHex6].
func AsHex(c color.Color) string {
	rgba := AsRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

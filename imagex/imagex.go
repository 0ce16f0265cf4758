// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagex provides raster helpers built on the pigment color
// routines: pixel iteration, per-pixel evaluation, colorization, box
// alignment, and terminal preview of images.
package imagex

import (
	"image"
	"image/color"
	"iter"

	"github.com/pigmentlab/pigment"
)

// Pixels returns an iterator over every pixel of img in row-major
// order, yielding the point and the color at that point.
func Pixels(img image.Image) iter.Seq2[image.Point, color.Color] {
	return func(yield func(image.Point, color.Color) bool) {
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if !yield(image.Pt(x, y), img.At(x, y)) {
					return
				}
			}
		}
	}
}

// EvalPixel applies fn to every pixel of img and returns a new image
// with the resulting colors. fn is called once per distinct input
// color; repeated colors reuse the memoized result. The source image
// is not modified.
func EvalPixel(img image.Image, fn func(color.Color) color.Color) *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	cache := map[color.RGBA]color.Color{}
	for pt, c := range Pixels(img) {
		key := pigment.AsRGBA(c)
		nc, ok := cache[key]
		if !ok {
			nc = fn(c)
			cache[key] = nc
		}
		dst.Set(pt.X, pt.Y, nc)
	}
	return dst
}

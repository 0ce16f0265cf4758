// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
)

// Align selects where a smaller box sits inside a larger frame,
// following the number-pad layout:
//
//	7 8 9
//	4 5 6
//	1 2 3
type Align int

const (
	BottomLeft Align = 1 + iota
	BottomCenter
	BottomRight
	CenterLeft
	Center
	CenterRight
	TopLeft
	TopCenter
	TopRight
)

// AlignBBox places a box of the given size inside frame according to
// align and returns its rectangle. It errors if the box does not fit
// in the frame or align is not in [1, 9].
func AlignBBox(frame image.Rectangle, size image.Point, align Align) (image.Rectangle, error) {
	fw, fh := frame.Dx(), frame.Dy()
	if fw < size.X || fh < size.Y {
		return image.Rectangle{}, fmt.Errorf("imagex.AlignBBox: box %v does not fit into frame %v", size, frame)
	}
	if align < BottomLeft || align > TopRight {
		return image.Rectangle{}, fmt.Errorf("imagex.AlignBBox: invalid alignment value %d", align)
	}
	var x, y int
	switch (align - 1) % 3 {
	case 0:
		x = frame.Min.X
	case 1:
		x = frame.Min.X + (fw-size.X)/2
	case 2:
		x = frame.Max.X - size.X
	}
	switch (align - 1) / 3 {
	case 0:
		y = frame.Max.Y - size.Y
	case 1:
		y = frame.Min.Y + (fh-size.Y)/2
	case 2:
		y = frame.Min.Y
	}
	return image.Rect(x, y, x+size.X, y+size.Y), nil
}

// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/pigmentlab/pigment"
)

// TerminalWidth returns the width of the attached terminal in cells,
// or 80 when there is no terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// Preview writes an ANSI rendering of img to w, using two background
// cells per pixel. The image is scaled to the given width in cells,
// preserving aspect ratio; width <= 0 uses the detected terminal
// width. Color depth follows the terminal profile detected on w.
func Preview(w io.Writer, img image.Image, width int) error {
	if width <= 0 {
		width = TerminalWidth()
	}
	cols := max(width/2, 1)
	b := img.Bounds()
	rows := max(b.Dy()*cols/max(b.Dx(), 1), 1)
	scaled := transform.Resize(img, cols, rows, transform.NearestNeighbor)

	out := termenv.NewOutput(w)
	var sb strings.Builder
	sb.Grow(rows * cols * 24)
	for y := range rows {
		for x := range cols {
			cell := out.String("  ").Background(out.Color(pigment.AsHex(scaled.At(x, y))))
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}
	_, err := fmt.Fprint(w, sb.String())
	return err
}

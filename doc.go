// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pigment normalizes textual color representations into
// canonical [color.RGBA] values.
//
// It parses 6 and 3 digit hex codes, functional rgb() notations with
// integer, float, and percentage components, and color names from five
// curated datasets (see [github.com/pigmentlab/pigment/colornames]).
// Each format has a strict single-format parser, and [Parse] resolves a
// string against a configurable set of them. The package also converts
// between packed hex integers and RGB(A) components, and provides small
// numeric helpers (random colors, distance, mixing, HSV).
//
// All functions are pure over immutable state and safe for concurrent
// use without synchronization.
package pigment

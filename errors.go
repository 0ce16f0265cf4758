// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import "errors"

// Sentinel errors returned (wrapped) by the functions in this package.
// Match them with [errors.Is].
var (
	// ErrRange indicates a numeric value outside its declared domain:
	// a packed hex integer beyond its bit range, or a color component
	// outside [0, 255].
	ErrRange = errors.New("value out of range")

	// ErrFormat indicates that a string does not satisfy a parser's
	// grammar, including otherwise well-formed strings with an
	// out-of-range numeric literal such as rgb(300, 0, 0).
	ErrFormat = errors.New("string does not match format")

	// ErrUnknownName indicates that a name is not present in the
	// targeted color dataset.
	ErrUnknownName = errors.New("color name not found")

	// ErrNoMatch is returned by [Parse] when no enabled parser
	// recognizes the input.
	ErrNoMatch = errors.New("no color format matched")
)

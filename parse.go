// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pigmentlab/pigment/colornames"
)

// Single-format parsers. Each one trims surrounding whitespace, matches
// a fixed anchored grammar, and either produces a color or fails; none
// of them partially succeeds. Grammar failures and out-of-range numeric
// literals wrap [ErrFormat]; dataset misses wrap [ErrUnknownName].

var (
	hex6RE       = regexp.MustCompile(`^#?([0-9A-Fa-f]{6})$`)
	hex3RE       = regexp.MustCompile(`^#?([0-9A-Fa-f]{3})$`)
	rgbIntRE     = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	rgbFloatRE   = regexp.MustCompile(`^rgb\(\s*([01]\.\d+)\s*,\s*([01]\.\d+)\s*,\s*([01]\.\d+)\s*\)$`)
	rgbPercentRE = regexp.MustCompile(`^rgb\(\s*(\d{1,3}(?:\.\d+)?)%\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*\)$`)
)

// FromHex6 parses a 6-hex-digit color such as #ab34df. The leading #
// is optional and digits are case-insensitive.
func FromHex6(s string) (color.RGBA, error) {
	m := hex6RE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return color.RGBA{}, fmt.Errorf("pigment.FromHex6: %q: %w", s, ErrFormat)
	}
	n, err := strconv.ParseUint(m[1], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("pigment.FromHex6: %q: %w", s, ErrFormat)
	}
	return HexToRGB(int(n))
}

// FromHex3 parses a 3-hex-digit color such as #a3d, expanding each
// digit by doubling it: #a3d is equivalent to #aa33dd.
func FromHex3(s string) (color.RGBA, error) {
	m := hex3RE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return color.RGBA{}, fmt.Errorf("pigment.FromHex3: %q: %w", s, ErrFormat)
	}
	var v [3]uint8
	for i := range 3 {
		n, err := strconv.ParseUint(strings.Repeat(m[1][i:i+1], 2), 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("pigment.FromHex3: %q: %w", s, ErrFormat)
		}
		v[i] = uint8(n)
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 0xFF}, nil
}

// FromRGBInt parses a functional integer notation such as
// rgb(171, 52, 223). Components are 1 to 3 decimal digits and must not
// exceed 255; whitespace is permitted around the commas and inside the
// parentheses, but not within a number.
func FromRGBInt(s string) (color.RGBA, error) {
	m := rgbIntRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return color.RGBA{}, fmt.Errorf("pigment.FromRGBInt: %q: %w", s, ErrFormat)
	}
	var v [3]uint8
	for i, g := range m[1:] {
		n, err := strconv.Atoi(g)
		if err != nil || n > 255 {
			return color.RGBA{}, fmt.Errorf("pigment.FromRGBInt: %q: component %s: %w", s, g, ErrFormat)
		}
		v[i] = uint8(n)
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 0xFF}, nil
}

// FromRGBFloat parses a functional float notation such as
// rgb(0.67, 0.2, 0.87). Each component has the form 0.ddd or 1.ddd and
// must not exceed 1.0. Components scale by 255 and round half away
// from zero.
func FromRGBFloat(s string) (color.RGBA, error) {
	m := rgbFloatRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return color.RGBA{}, fmt.Errorf("pigment.FromRGBFloat: %q: %w", s, ErrFormat)
	}
	var v [3]uint8
	for i, g := range m[1:] {
		f, err := strconv.ParseFloat(g, 64)
		if err != nil || f > 1 {
			return color.RGBA{}, fmt.Errorf("pigment.FromRGBFloat: %q: component %s: %w", s, g, ErrFormat)
		}
		v[i] = uint8(math.Round(f * 255))
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 0xFF}, nil
}

// FromRGBPercent parses a functional percentage notation such as
// rgb(67%, 20%, 87.5%). Components are integer or decimal percentages
// and must not exceed 100. Components scale by 255/100 and round half
// away from zero.
func FromRGBPercent(s string) (color.RGBA, error) {
	m := rgbPercentRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return color.RGBA{}, fmt.Errorf("pigment.FromRGBPercent: %q: %w", s, ErrFormat)
	}
	var v [3]uint8
	for i, g := range m[1:] {
		f, err := strconv.ParseFloat(g, 64)
		if err != nil || f > 100 {
			return color.RGBA{}, fmt.Errorf("pigment.FromRGBPercent: %q: component %s: %w", s, g, ErrFormat)
		}
		v[i] = uint8(math.Round(f * 255 / 100))
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 0xFF}, nil
}

// fromTable implements the five name parsers, which differ only in the
// table consulted and the function name in diagnostics. The trimmed,
// lowercased input must be a key of the table; the looked-up value is
// then parsed with [FromHex6].
func fromTable(t *colornames.Table, fn, name string) (color.RGBA, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	hex, ok := t.Hex(key)
	if !ok {
		return color.RGBA{}, fmt.Errorf("pigment.%s: %q is not named in the %s dataset: %w", fn, name, t.Name(), ErrUnknownName)
	}
	return FromHex6(hex)
}

// FromNameCSS parses a color name from the standard CSS dataset,
// case-insensitively.
func FromNameCSS(name string) (color.RGBA, error) {
	return fromTable(colornames.CSS, "FromNameCSS", name)
}

// FromNameCrayola parses a color name from the Crayola crayon dataset,
// case-insensitively.
func FromNameCrayola(name string) (color.RGBA, error) {
	return fromTable(colornames.Crayola, "FromNameCrayola", name)
}

// FromNameXKCD parses a color name from the xkcd color survey dataset,
// case-insensitively.
func FromNameXKCD(name string) (color.RGBA, error) {
	return fromTable(colornames.XKCD, "FromNameXKCD", name)
}

// FromNameMeodaiBest parses a color name from the best-of subset of
// the meodai color names dataset, case-insensitively.
func FromNameMeodaiBest(name string) (color.RGBA, error) {
	return fromTable(colornames.MeodaiBest, "FromNameMeodaiBest", name)
}

// FromNameMeodai parses a color name from the full meodai color names
// dataset, case-insensitively.
func FromNameMeodai(name string) (color.RGBA, error) {
	return fromTable(colornames.Meodai, "FromNameMeodai", name)
}

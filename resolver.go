// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pigment

import (
	"fmt"
	"image/color"
)

// Parsers selects which single-format parsers [Parsers.Parse] runs.
// The field order is the order the parsers run in. The zero value
// disables everything; use [AllParsers] for the default set.
type Parsers struct {
	Hex6           bool
	Hex3           bool
	RGBInt         bool
	RGBFloat       bool
	RGBPercent     bool
	NameCSS        bool
	NameCrayola    bool
	NameXKCD       bool
	NameMeodaiBest bool
	NameMeodai     bool
}

// AllParsers returns a [Parsers] with every parser enabled, the
// default configuration of [Parse].
func AllParsers() Parsers {
	return Parsers{
		Hex6:           true,
		Hex3:           true,
		RGBInt:         true,
		RGBFloat:       true,
		RGBPercent:     true,
		NameCSS:        true,
		NameCrayola:    true,
		NameXKCD:       true,
		NameMeodaiBest: true,
		NameMeodai:     true,
	}
}

// Parse resolves s against every enabled parser, in field order.
// Every enabled parser runs; a failure merely abstains. When more than
// one parser matches, the latest match wins. This matters when the
// same name is present in several datasets: the dataset latest in the
// order takes precedence. It returns [ErrNoMatch] if nothing matched.
func (p Parsers) Parse(s string) (color.RGBA, error) {
	order := []struct {
		enabled bool
		fn      func(string) (color.RGBA, error)
	}{
		{p.Hex6, FromHex6},
		{p.Hex3, FromHex3},
		{p.RGBInt, FromRGBInt},
		{p.RGBFloat, FromRGBFloat},
		{p.RGBPercent, FromRGBPercent},
		{p.NameCSS, FromNameCSS},
		{p.NameCrayola, FromNameCrayola},
		{p.NameXKCD, FromNameXKCD},
		{p.NameMeodaiBest, FromNameMeodaiBest},
		{p.NameMeodai, FromNameMeodai},
	}
	var (
		res   color.RGBA
		found bool
	)
	for _, q := range order {
		if !q.enabled {
			continue
		}
		c, err := q.fn(s)
		if err != nil {
			continue
		}
		res, found = c, true
	}
	if !found {
		return color.RGBA{}, fmt.Errorf("pigment.Parse: %q: %w", s, ErrNoMatch)
	}
	return res, nil
}

// Parse resolves s with every parser enabled. See [Parsers.Parse].
func Parse(s string) (color.RGBA, error) {
	return AllParsers().Parse(s)
}

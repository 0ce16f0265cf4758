// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/pigmentlab/pigment"
)

var parseFlags struct {
	noHex6       bool
	noHex3       bool
	noRGBInt     bool
	noRGBFloat   bool
	noRGBPercent bool
	noCSS        bool
	noCrayola    bool
	noXKCD       bool
	noMeodaiBest bool
	noMeodai     bool
}

var parseCmd = &cobra.Command{
	Use:   "parse <color>...",
	Short: "Resolve color strings to canonical RGB",
	Long: `Resolve each argument against the enabled color parsers and print
the canonical hex form and RGB components. Arguments may be hex codes
(#ab34df, #a3d), functional notations (rgb(171, 52, 223), rgb(0.67,
0.2, 0.87), rgb(67%, 20%, 87.5%)), or color names from the css,
crayola, xkcd, meodai-best, and meodai datasets.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsers := parserConfig()
		for _, arg := range args {
			c, err := parsers.Parse(arg)
			if err != nil {
				return err
			}
			hex := pigment.AsHex(c)
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s rgb(%d, %d, %d)\n", swatch, hex, c.R, c.G, c.B)
		}
		return nil
	},
}

// parserConfig maps the disable flags onto the default all-enabled
// parser set.
func parserConfig() pigment.Parsers {
	p := pigment.AllParsers()
	p.Hex6 = !parseFlags.noHex6
	p.Hex3 = !parseFlags.noHex3
	p.RGBInt = !parseFlags.noRGBInt
	p.RGBFloat = !parseFlags.noRGBFloat
	p.RGBPercent = !parseFlags.noRGBPercent
	p.NameCSS = !parseFlags.noCSS
	p.NameCrayola = !parseFlags.noCrayola
	p.NameXKCD = !parseFlags.noXKCD
	p.NameMeodaiBest = !parseFlags.noMeodaiBest
	p.NameMeodai = !parseFlags.noMeodai
	return p
}

func init() {
	f := parseCmd.Flags()
	f.BoolVar(&parseFlags.noHex6, "no-hex6", false, "disable the 6-digit hex parser")
	f.BoolVar(&parseFlags.noHex3, "no-hex3", false, "disable the 3-digit hex parser")
	f.BoolVar(&parseFlags.noRGBInt, "no-rgb-int", false, "disable the rgb() integer parser")
	f.BoolVar(&parseFlags.noRGBFloat, "no-rgb-float", false, "disable the rgb() float parser")
	f.BoolVar(&parseFlags.noRGBPercent, "no-rgb-percent", false, "disable the rgb() percentage parser")
	f.BoolVar(&parseFlags.noCSS, "no-css", false, "disable the css name dataset")
	f.BoolVar(&parseFlags.noCrayola, "no-crayola", false, "disable the crayola name dataset")
	f.BoolVar(&parseFlags.noXKCD, "no-xkcd", false, "disable the xkcd name dataset")
	f.BoolVar(&parseFlags.noMeodaiBest, "no-meodai-best", false, "disable the meodai-best name dataset")
	f.BoolVar(&parseFlags.noMeodai, "no-meodai", false, "disable the meodai name dataset")
	rootCmd.AddCommand(parseCmd)
}

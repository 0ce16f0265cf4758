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

var mixPortion float32

var mixCmd = &cobra.Command{
	Use:   "mix <color> <color>",
	Short: "Linearly mix two colors",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := pigment.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := pigment.Parse(args[1])
		if err != nil {
			return err
		}
		c := pigment.Mix(a, b, mixPortion)
		hex := pigment.AsHex(c)
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s rgb(%d, %d, %d)\n", swatch, hex, c.R, c.G, c.B)
		return nil
	},
}

var distanceCmd = &cobra.Command{
	Use:   "distance <color> <color>",
	Short: "Euclidean RGB distance between two colors",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := pigment.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := pigment.Parse(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%.2f\n", pigment.Distance(a, b))
		return nil
	},
}

var randomCount int

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate random colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for range randomCount {
			c := pigment.RandomRGB()
			hex := pigment.AsHex(c)
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ")
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s rgb(%d, %d, %d)\n", swatch, hex, c.R, c.G, c.B)
		}
		return nil
	},
}

func init() {
	mixCmd.Flags().Float32VarP(&mixPortion, "portion", "p", 0.5, "portion of the second color, from 0 to 1")
	randomCmd.Flags().IntVarP(&randomCount, "count", "n", 1, "number of colors to generate")
	rootCmd.AddCommand(mixCmd, distanceCmd, randomCmd)
}

// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/pigmentlab/pigment"
	"github.com/pigmentlab/pigment/imagex"
)

var previewFlags struct {
	width int
	tint  string
}

var previewCmd = &cobra.Command{
	Use:   "preview <image>",
	Short: "Render an image in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		img, kind, err := image.Decode(f)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}
		logger.Debug("decoded image", "file", args[0], "format", kind, "bounds", img.Bounds())
		if previewFlags.tint != "" {
			tint, err := pigment.Parse(previewFlags.tint)
			if err != nil {
				return err
			}
			img = imagex.Colorize(img, tint)
		}
		return imagex.Preview(cmd.OutOrStdout(), img, previewFlags.width)
	},
}

func init() {
	f := previewCmd.Flags()
	f.IntVar(&previewFlags.width, "width", 0, "output width in cells (0 = terminal width)")
	f.StringVar(&previewFlags.tint, "tint", "", "colorize the image with this color before rendering")
	rootCmd.AddCommand(previewCmd)
}

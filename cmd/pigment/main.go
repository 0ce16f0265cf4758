// Copyright (c) 2026, The Pigment Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command pigment parses, inspects, and previews colors from the
// command line.
package main

import (
	"os"

	log "charm.land/log/v2"
	"github.com/spf13/cobra"
)

var logger = log.New(os.Stderr)

var rootCmd = &cobra.Command{
	Use:           "pigment",
	Short:         "Parse, inspect, and preview colors",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

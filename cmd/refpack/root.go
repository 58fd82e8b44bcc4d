// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// fs is swapped for an in-memory filesystem in tests.
var fs = afero.NewOsFs()

var verbose bool

// rootCmd represents the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "refpack",
	Short: "Optimal RefPack stream compressor",
	Long: `refpack compresses files into EA RefPack streams and back.

The compressor is exhaustive: the emitted stream is the shortest valid
RefPack encoding of the input. Decompression reads the size from the
stream header.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

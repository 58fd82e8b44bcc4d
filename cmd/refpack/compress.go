// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/refpack

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/woozymasta/refpack"
)

// compressCmd represents the compress command.
var compressCmd = &cobra.Command{
	Use:   "compress INFILE OUTFILE",
	Short: "Compress a file into a RefPack stream",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := afero.ReadFile(fs, args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		out, err := refpack.Compress(in)
		if err != nil {
			return fmt.Errorf("compress %s: %w", args[0], err)
		}

		if err := afero.WriteFile(fs, args[1], out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[1], err)
		}

		logrus.WithFields(logrus.Fields{
			"in":    len(in),
			"out":   len(out),
			"ratio": fmt.Sprintf("%.3f", ratio(len(out), len(in))),
		}).Debug("compressed")

		return nil
	},
}

func ratio(out, in int) float64 {
	if in == 0 {
		return 1
	}

	return float64(out) / float64(in)
}

func init() {
	rootCmd.AddCommand(compressCmd)
}

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

// decompressCmd represents the decompress command.
var decompressCmd = &cobra.Command{
	Use:   "decompress INFILE OUTFILE",
	Short: "Decompress a RefPack stream into a file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := afero.ReadFile(fs, args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		out, err := refpack.Decompress(in, nil)
		if err != nil {
			return fmt.Errorf("decompress %s: %w", args[0], err)
		}

		if err := afero.WriteFile(fs, args[1], out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[1], err)
		}

		logrus.WithFields(logrus.Fields{"in": len(in), "out": len(out)}).Debug("decompressed")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(decompressCmd)
}

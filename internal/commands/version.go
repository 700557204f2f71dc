// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package commands

import (
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/version"
)

func registerVersionCmd(parent *cobra.Command) {
	var short, asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the mtgen version",
		Example: `  # Full build information
  mtgen version

  # Version number only
  mtgen version --short

  # Machine readable
  mtgen version --json`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				data, err := json.Marshal(version.Current(), jsontext.WithIndent("  "))
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			if short {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Short())
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return err
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")
	cmd.MarkFlagsMutuallyExclusive("short", "json")

	parent.AddCommand(cmd)
}

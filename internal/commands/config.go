// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package commands

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/cmdctx"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/config"
	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
)

func registerConfigCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect mtgen configuration",
	}

	cmd.AddCommand(newConfigSchemaCmd())
	cmd.AddCommand(newConfigShowCmd())

	parent.AddCommand(cmd)
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the config file",
		Example: `  # Save the schema for editor completion
  mtgen config schema > mtgen.schema.json`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: skipLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.JSONSchema()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after defaults, the config file and MTGEN_*
environment variables have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cmdctx.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(ctx.Config); err != nil {
				return errors.Wrap(err, "failed to encode config")
			}
			return enc.Close()
		},
	}
}

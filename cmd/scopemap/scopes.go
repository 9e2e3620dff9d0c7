// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/scopemap/internal/render"
	"github.com/pdiddy/scopemap/pkg/types"
)

var scopesCmd = &cobra.Command{
	Use:   "scopes [file]",
	Short: "List the headings of a document with their entry counts",
	Long: `Scopes reads a document the same way extract does and prints every
distinct heading in the order it first appears, with the number of distinct
entries recorded under it. A heading whose entries all reappear under later
headings is listed with 0. Entries that precede every heading are counted
first, under "(no scope)".`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error { return bindFlags(cmd) },
	RunE:    runScopes,
}

func runScopes(cmd *cobra.Command, args []string) error {
	cfg, err := extractConfig()
	if err != nil {
		return err
	}
	_, reg, err := readRegistry(cmd, args, cfg)
	if err != nil {
		return err
	}
	return render.Counts(cmd.OutOrStdout(), reg, cfg.Output)
}

func init() {
	scopesCmd.Flags().String("format", string(types.SourcePlain), "input format: plain or markdown")
	scopesCmd.Flags().String("output", string(types.OutputText), "output format: text, json, or yaml")
	scopesCmd.Flags().Bool("skip-blank", false, "do not count blank lines as entries")

	rootCmd.AddCommand(scopesCmd)
}

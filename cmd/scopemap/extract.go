// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/scopemap/internal/render"
	"github.com/pdiddy/scopemap/internal/scope"
	"github.com/pdiddy/scopemap/internal/source"
	"github.com/pdiddy/scopemap/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Print the entries of a document and the heading each belongs to",
	Long: `Extract reads a document (or stdin when no file or "-" is given) and
records every non-heading line under the most recent heading. A heading is a
line that ends with a colon once surrounding whitespace is trimmed.

By default only the distinct entries are printed. Use --view mapping for the
entry-to-heading mapping or --view groups for entries grouped by heading.
With --format markdown, Markdown headings also open a new scope.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error { return bindFlags(cmd) },
	RunE:    runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := extractConfig()
	if err != nil {
		return err
	}
	opts := render.Options{Format: cfg.Output, View: cfg.View}
	if err := opts.Validate(); err != nil {
		return err
	}

	name, reg, err := readRegistry(cmd, args, cfg)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printSummary(cmd.ErrOrStderr(), name, reg)
	}
	return render.Render(cmd.OutOrStdout(), reg, opts)
}

// extractConfig resolves flags, environment, and config file into an
// ExtractConfig.
func extractConfig() (types.ExtractConfig, error) {
	var cfg types.ExtractConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Defaults()
	return cfg, nil
}

// readRegistry opens the input named by args, splits it according to
// cfg.Format, and extracts the registry. It returns the display name of the
// input alongside the registry.
func readRegistry(cmd *cobra.Command, args []string, cfg types.ExtractConfig) (string, *scope.Registry, error) {
	name := "stdin"
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		name, in = args[0], f
	}

	lines, err := source.Read(in, cfg.Format)
	if err != nil {
		return "", nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var opts []scope.Option
	if cfg.SkipBlank {
		opts = append(opts, scope.SkipBlank())
	}
	return name, scope.Extract(lines, opts...), nil
}

func printSummary(w io.Writer, name string, reg *scope.Registry) {
	scopes := 0
	for _, g := range reg.Groups() {
		if g.Scope.Defined {
			scopes++
		}
	}
	fmt.Fprintf(w, "extracted %d entries under %d scopes from %s\n", reg.Len(), scopes, name)
}

func init() {
	extractCmd.Flags().String("format", string(types.SourcePlain), "input format: plain or markdown")
	extractCmd.Flags().String("output", string(types.OutputText), "output format: text, json, or yaml")
	extractCmd.Flags().String("view", string(types.ViewKeys), "what to print: keys, mapping, or groups")
	extractCmd.Flags().Bool("skip-blank", false, "drop blank lines instead of recording them as empty entries")
	extractCmd.Flags().BoolP("verbose", "v", false, "print an extraction summary to stderr")

	rootCmd.AddCommand(extractCmd)
}

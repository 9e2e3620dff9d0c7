// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scopemap CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the scopemap CLI.
var rootCmd = &cobra.Command{
	Use:   "scopemap",
	Short: "Map the lines of a document to the heading above them",
	Long: `scopemap reads a line-oriented document in which lines ending with a
colon are headings. Every other line is an entry and is recorded under the
most recent heading. The result can be printed as the list of distinct
entries, the full entry-to-heading mapping, or entries grouped by heading.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scopemap.yaml or ~/.config/scopemap/scopemap.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("scopemap")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "scopemap"))
		}
	}

	viper.SetEnvPrefix("SCOPEMAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Using config file:", viper.ConfigFileUsed())
	}
}

// bindFlags binds the local flags of cmd to viper keys so that flags override
// the config file and environment. Dashes become underscores in the key.
func bindFlags(cmd *cobra.Command) error {
	var err error
	cmd.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		err = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

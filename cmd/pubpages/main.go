// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pubpages CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubpages/internal/site"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pubpages CLI.
var rootCmd = &cobra.Command{
	Use:   "pubpages",
	Short: "Generate publication pages from a BibTeX bibliography",
	Long: `pubpages converts a BibTeX bibliography into the markdown include files
of a personal academic website. Entries are classified into accepted
articles, in-process articles, technical reports, and communications, and
each bucket becomes a numbered citation list with collapsible raw BibTeX.

Beyond generation, the CLI can export the parsed bibliography to YAML or
JSON and maintain a queryable SQLite publications index.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pubpages.yaml or ~/.config/pubpages/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pubpages")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pubpages"))
		}
	}

	viper.SetEnvPrefix("PUBPAGES")
	viper.AutomaticEnv()

	viper.SetDefault("bib_path", "bib.tex")
	viper.SetDefault("output_dir", filepath.Join("_pages", "includes"))
	viper.SetDefault("first_author", site.DefaultFirstAuthor)
	viper.SetDefault("data_dir", ".")
	viper.SetDefault("max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		var missing *site.MissingBibError
		if errors.As(err, &missing) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubpages/internal/site"
	"github.com/pdiddy/pubpages/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [bib_path] [output_dir]",
	Short: "Generate the markdown publication pages",
	Long: `Generate parses the BibTeX bibliography, classifies entries into the
four publication buckets, and writes one markdown include per bucket into
the output directory.

Positional arguments are accepted for compatibility with earlier tooling
but are ignored; paths come from flags and configuration.`,
	Args:         cobra.MaximumNArgs(2),
	SilenceUsage: true,
	RunE:         runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_, err := site.Generate(generateConfig(cmd), os.Stdout)
	return err
}

// generateConfig resolves generation settings: flags win over config file
// and environment, which win over defaults.
func generateConfig(cmd *cobra.Command) types.GenerateConfig {
	bibPath, _ := cmd.Flags().GetString("bib")
	if bibPath == "" {
		bibPath = viper.GetString("bib_path")
	}
	outputDir, _ := cmd.Flags().GetString("out")
	if outputDir == "" {
		outputDir = viper.GetString("output_dir")
	}
	firstAuthor, _ := cmd.Flags().GetString("first-author")
	if firstAuthor == "" {
		firstAuthor = viper.GetString("first_author")
	}

	return types.GenerateConfig{
		BibPath:     bibPath,
		OutputDir:   outputDir,
		FirstAuthor: firstAuthor,
	}
}

func init() {
	generateCmd.Flags().String("bib", "", "path to the BibTeX source file")
	generateCmd.Flags().String("out", "", "output directory for the markdown includes")
	generateCmd.Flags().String("first-author", "", "surname matched against first authors for communications")

	rootCmd.AddCommand(generateCmd)
}

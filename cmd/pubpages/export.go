package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubpages/internal/bibtex"
	"github.com/pdiddy/pubpages/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the parsed bibliography to YAML or JSON",
	Long: `Export parses and normalizes the BibTeX bibliography and writes the
entries as a YAML or JSON list, for downstream tooling that does not
speak BibTeX.`,
	SilenceUsage: true,
	RunE:         runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	bibPath, _ := cmd.Flags().GetString("bib")
	if bibPath == "" {
		bibPath = viper.GetString("bib_path")
	}
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	if _, err := os.Stat(bibPath); os.IsNotExist(err) {
		return &site.MissingBibError{Path: bibPath}
	}
	entries, err := bibtex.ParseFile(bibPath)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "yaml", "":
		data, err = yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	case "json":
		data, err = json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	if outPath == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("Exported %d entries to %s\n", len(entries), outPath)
	return nil
}

func init() {
	exportCmd.Flags().String("bib", "", "path to the BibTeX source file")
	exportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	exportCmd.Flags().String("out", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
}

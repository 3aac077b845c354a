// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubpages/internal/bibtex"
	"github.com/pdiddy/pubpages/internal/site"
	"github.com/pdiddy/pubpages/internal/store"
	"github.com/pdiddy/pubpages/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the publications index (index, query)",
	Long: `Store maintains a local SQLite index of the bibliography. Use
subcommands to index entries or query them by text, type, bucket, or year.`,
}

// --- index subcommand ---

var storeIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Index the bibliography into the publications database",
	Long: `Index parses the BibTeX bibliography and upserts every entry into the
publications database with its bucket label, so re-indexing after an edit
refreshes existing rows.`,
	SilenceUsage: true,
	RunE:         runStoreIndex,
}

func runStoreIndex(cmd *cobra.Command, args []string) error {
	bibPath, _ := cmd.Flags().GetString("bib")
	if bibPath == "" {
		bibPath = viper.GetString("bib_path")
	}
	firstAuthor, _ := cmd.Flags().GetString("first-author")
	if firstAuthor == "" {
		firstAuthor = viper.GetString("first_author")
	}

	if _, err := os.Stat(bibPath); os.IsNotExist(err) {
		return &site.MissingBibError{Path: bibPath}
	}
	entries, err := bibtex.ParseFile(bibPath)
	if err != nil {
		return err
	}

	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.Index(context.Background(), entries, firstAuthor, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d entry(ies) failed indexing", summary.Failed)
	}
	return nil
}

// --- query subcommand ---

var storeQueryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Query the publications index",
	Long: `Query searches the publications index with full-text search over
titles and authors, structured filters (type, bucket, year), or both.`,
	SilenceUsage: true,
	RunE:         runStoreQuery,
}

func runStoreQuery(cmd *cobra.Command, args []string) error {
	s, err := store.NewStore(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer s.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search text, --type, --bucket, or --year")
	}

	results, err := s.Query(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []store.Publication, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-13s  %-10s  %-6s  %s\n",
		"Key", "Type", "Bucket", "Year", "Title")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, p := range results {
		title := p.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		key := p.Key
		if len(key) > 20 {
			key = key[:17] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-13s  %-10s  %-6s  %s\n",
			key, p.Type, p.Bucket, p.Year, title)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- shared helpers ---

func storeConfig(cmd *cobra.Command) types.StoreConfig {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("data_dir")
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults <= 0 {
		maxResults = viper.GetInt("max_results")
	}

	return types.StoreConfig{
		DataDir:    dataDir,
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) store.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	entryType, _ := cmd.Flags().GetString("type")
	bucket, _ := cmd.Flags().GetString("bucket")
	year, _ := cmd.Flags().GetString("year")
	limit, _ := cmd.Flags().GetInt("limit")

	return store.QueryOptions{
		Query:      queryText,
		Type:       entryType,
		Bucket:     bucket,
		Year:       year,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("data-dir", "", "base directory for the index (contains index/)")
	storeCmd.PersistentFlags().Int("max-results", 0, "maximum number of query results")

	// Index flags.
	storeIndexCmd.Flags().String("bib", "", "path to the BibTeX source file")
	storeIndexCmd.Flags().String("first-author", "", "surname matched against first authors for communications")

	// Query flags.
	storeQueryCmd.Flags().String("query", "", "full-text search over titles and authors")
	storeQueryCmd.Flags().String("type", "", "filter by entry type: article, inproceedings, techreport")
	storeQueryCmd.Flags().String("bucket", "", "filter by bucket: accepted, inprocess, techreport, comms")
	storeQueryCmd.Flags().String("year", "", "filter by publication year")
	storeQueryCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	storeQueryCmd.Flags().Bool("json", false, "output results as JSON")

	storeCmd.AddCommand(storeIndexCmd)
	storeCmd.AddCommand(storeQueryCmd)

	rootCmd.AddCommand(storeCmd)
}

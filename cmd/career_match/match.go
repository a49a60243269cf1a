package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-match/internal/catalog"
	"github.com/jonathan/career-match/internal/config"
	"github.com/jonathan/career-match/internal/observability"
	"github.com/jonathan/career-match/internal/pipeline"
	"github.com/jonathan/career-match/internal/ranking"
	"github.com/jonathan/career-match/internal/skills"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank careers against a candidate's skills",
	Long:  "Scores every career in the catalog against the given skills, deduplicates titles, ranks descending by score and prints the ranked list with summary statistics.",
	RunE:  runMatch,
}

var (
	matchSkills     string
	matchCatalog    string
	matchConfigPath string
	matchMinScore   int
	matchThreshold  int
	matchLimit      int
	matchOutput     string
	matchVerbose    bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchSkills, "skills", "s", "", "Comma-separated candidate skills")
	matchCmd.Flags().StringVarP(&matchCatalog, "catalog", "c", "", "Path to career catalog JSON file (required)")
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to JSON config file")
	matchCmd.Flags().IntVar(&matchMinScore, "min-score", 0, "Drop entries with score <= min-score")
	matchCmd.Flags().IntVar(&matchThreshold, "threshold", ranking.DefaultThreshold, "Summary cutoff percentage")
	matchCmd.Flags().IntVar(&matchLimit, "limit", 0, "Cap on returned entries (0 = no cap)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print formatted match breakdown")

	rootCmd.AddCommand(matchCmd)
}

// mergeMatchConfig applies config-file values for flags the user did not set.
func mergeMatchConfig(cmd *cobra.Command) error {
	if matchConfigPath == "" {
		return nil
	}

	cfg, err := config.LoadConfig(matchConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !cmd.Flags().Changed("skills") && cfg.Skills != "" {
		matchSkills = cfg.Skills
	}
	if !cmd.Flags().Changed("catalog") && cfg.Catalog != "" {
		matchCatalog = cfg.Catalog
	}
	if !cmd.Flags().Changed("min-score") && cfg.MinScore != 0 {
		matchMinScore = cfg.MinScore
	}
	if !cmd.Flags().Changed("threshold") && cfg.Threshold != 0 {
		matchThreshold = cfg.Threshold
	}
	if !cmd.Flags().Changed("limit") && cfg.Limit != 0 {
		matchLimit = cfg.Limit
	}
	if !cmd.Flags().Changed("verbose") && cfg.Verbose {
		matchVerbose = true
	}
	return nil
}

func runMatch(cmd *cobra.Command, _ []string) error {
	if err := mergeMatchConfig(cmd); err != nil {
		return err
	}

	if matchCatalog == "" {
		return fmt.Errorf("catalog is required (via --catalog or config file)")
	}

	careers, err := catalog.LoadFile(matchCatalog)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	result := pipeline.Run(skills.FromString(matchSkills), careers, pipeline.RunOptions{
		MinScore:  matchMinScore,
		Threshold: &matchThreshold,
		Limit:     matchLimit,
	})

	if matchVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintRankedCareers(result.Results)
		printer.PrintSummary(result.Summary, matchThreshold)
	}

	jsonOutput, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match result to JSON: %w", err)
	}

	if matchOutput == "" {
		fmt.Println(string(jsonOutput))
		return nil
	}

	outputDir := filepath.Dir(matchOutput)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(matchOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write match result to %s: %w", matchOutput, err)
	}
	return nil
}

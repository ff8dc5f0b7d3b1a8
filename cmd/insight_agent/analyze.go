package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/analyzer"
	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/db"
	"github.com/jonathan/resume-insight/internal/ingestion"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/textnorm"
	"github.com/jonathan/resume-insight/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume and print its structured profile",
	Long: `Analyze reads resume text from a file or URL, extracts personal info,
skills, experience, education, projects and certifications, scores the
profile, and prints the result.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath  string
	analyzeResume      string
	analyzeURL         string
	analyzeEmail       string
	analyzeOutDir      string
	analyzeJSON        bool
	analyzeUseBrowser  bool
	analyzeVerbose     bool
	analyzeDatabaseURL string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfigPath, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCmd.Flags().StringVarP(&analyzeURL, "url", "u", "", "URL to fetch resume content from")
	analyzeCmd.Flags().StringVarP(&analyzeEmail, "email", "e", "", "Contact email to fall back on")
	analyzeCmd.Flags().StringVarP(&analyzeOutDir, "out", "o", "", "Directory to write cleaned text and metadata to")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full result as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA sites")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL URL to store the analysis in")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:      analyzeResume,
		Email:       analyzeEmail,
		DatabaseURL: analyzeDatabaseURL,
	}
	if analyzeConfigPath != "" {
		fileCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Resume == "" && analyzeURL == "" {
		return fmt.Errorf("either --resume or --url must be provided")
	}
	if cfg.Resume != "" && analyzeURL != "" {
		return fmt.Errorf("--resume and --url are mutually exclusive; provide only one")
	}

	ctx := cmd.Context()

	var text string
	var meta *ingestion.Metadata
	var err error
	fileName := ""
	if cfg.Resume != "" {
		fileName = filepath.Base(cfg.Resume)
		text, meta, err = ingestion.IngestFromFile(cfg.Resume)
		if err != nil {
			return fmt.Errorf("failed to ingest resume: %w", err)
		}
	} else {
		text, meta, err = ingestion.IngestFromURL(ctx, analyzeURL, analyzeUseBrowser, analyzeVerbose)
		if err != nil {
			return fmt.Errorf("failed to ingest resume: %w", err)
		}
	}

	if analyzeOutDir != "" {
		if err := ingestion.WriteOutput(analyzeOutDir, text, meta); err != nil {
			return err
		}
	}

	result, err := analyzer.Analyze(text, cfg.Email)
	if err != nil {
		var insufficientErr *textnorm.InsufficientTextError
		if !errors.As(err, &insufficientErr) || fileName == "" {
			return err
		}
		// Short or unparseable file content: analyze a placeholder profile
		// built from the file name, as a best effort.
		fmt.Fprintf(os.Stderr, "Warning: %v; using placeholder content\n", err)
		result, err = analyzer.Analyze(analyzer.FallbackText(fileName, cfg.Email), cfg.Email)
		if err != nil {
			return err
		}
	}

	if cfg.DatabaseURL != "" {
		if err := storeAnalysis(ctx, cfg.DatabaseURL, fileName, cfg.Email, result); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to store analysis: %v\n", err)
		}
	}

	if analyzeJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if analyzeVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintAnalysis(result)
		printer.PrintInsights(result)
		return nil
	}

	printSummary(result)
	return nil
}

func storeAnalysis(ctx context.Context, databaseURL, fileName, email string, result *types.AnalysisResult) error {
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	id, err := database.SaveAnalysis(ctx, fileName, email, result)
	if err != nil {
		return err
	}
	fmt.Printf("Stored analysis %s\n", id)
	return nil
}

func printSummary(r *types.AnalysisResult) {
	fmt.Printf("Name:     %s\n", r.PersonalInfo.Name)
	fmt.Printf("Email:    %s\n", r.PersonalInfo.Email)
	fmt.Printf("Phone:    %s\n", r.PersonalInfo.Phone)
	fmt.Printf("Location: %s\n", r.PersonalInfo.Location)
	fmt.Printf("Score:    %d/100\n\n", r.QualityScore)

	fmt.Printf("Technical skills: %s\n", joinOrNone(r.Skills.Technical))
	fmt.Printf("Soft skills:      %s\n", joinOrNone(r.Skills.Soft))
	fmt.Printf("Experience:       %d years, %d internships, %d projects\n",
		r.Experience.Years, r.Experience.InternshipCount, r.Experience.ProjectCount)
	fmt.Printf("Education:        %s, %s\n", r.Education.Degree, r.Education.Institution)
	if r.Education.GPA > 0 {
		fmt.Printf("GPA:              %.1f/10\n", r.Education.GPA)
	}
	fmt.Println()

	printList("Strengths", r.Strengths)
	printList("Improvements", r.Improvements)
	printList("Recommendations", r.Recommendations)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none detected"
	}
	return strings.Join(items, ", ")
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}

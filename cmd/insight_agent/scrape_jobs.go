package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/config"
	"github.com/jonathan/resume-insight/internal/db"
	"github.com/jonathan/resume-insight/internal/jobs"
	"github.com/jonathan/resume-insight/internal/observability"
	"github.com/jonathan/resume-insight/internal/scrape"
)

var scrapeJobsCmd = &cobra.Command{
	Use:   "scrape-jobs",
	Short: "Scrape configured job boards and print normalized listings",
	Long: `Scrape fetches listings from every source in the config file, infers
experience band, job type, skills and a salary estimate for each, removes
duplicates, and prints the result. Failing sources are reported without
aborting the run.`,
	RunE: runScrapeJobs,
}

var (
	scrapeConfigPath  string
	scrapeJSON        bool
	scrapeVerbose     bool
	scrapeDatabaseURL string
	scrapeTimeout     time.Duration
)

func init() {
	scrapeJobsCmd.Flags().StringVarP(&scrapeConfigPath, "config", "c", "", "Path to JSON config file with scrape sources (required)")
	scrapeJobsCmd.Flags().BoolVar(&scrapeJSON, "json", false, "Print listings as JSON")
	scrapeJobsCmd.Flags().BoolVarP(&scrapeVerbose, "verbose", "v", false, "Print detailed debug information")
	scrapeJobsCmd.Flags().StringVar(&scrapeDatabaseURL, "db-url", "", "PostgreSQL URL to store listings in")
	scrapeJobsCmd.Flags().DurationVar(&scrapeTimeout, "timeout", 30*time.Second, "Per-source fetch timeout")

	scrapeJobsCmd.MarkFlagRequired("config")

	rootCmd.AddCommand(scrapeJobsCmd)
}

func runScrapeJobs(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(scrapeConfigPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if len(cfg.Sources) == 0 {
		return fmt.Errorf("config has no scrape sources")
	}

	databaseURL := scrapeDatabaseURL
	if databaseURL == "" {
		databaseURL = cfg.DatabaseURL
	}
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	ctx := cmd.Context()
	scraper := scrape.New(sourcesFromConfig(cfg.Sources), scrapeTimeout, scrapeVerbose)
	raw, results := scraper.ScrapeAll(ctx)

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Warning: source %s failed: %v\n", res.Source, res.Err)
			continue
		}
		fmt.Printf("Source %s: %d listings\n", res.Source, len(res.Listings))
	}

	listings, dropped := jobs.NormalizeAndDedupe(raw)
	fmt.Printf("Normalized %d listings (%d malformed dropped)\n", len(listings), dropped)

	if scrapeVerbose {
		observability.NewPrinter(os.Stdout).PrintListings(listings, dropped)
	}

	if databaseURL != "" && len(listings) > 0 {
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		saved, err := database.SaveListings(ctx, listings)
		if err != nil {
			return fmt.Errorf("failed to store listings: %w", err)
		}
		fmt.Printf("Stored %d listings\n", saved)
	}

	if scrapeJSON {
		out, err := json.MarshalIndent(listings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal listings: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	for _, l := range listings {
		fmt.Printf("- %s at %s (%s, %s, %s)\n", l.Title, l.Company, l.Location, l.ExperienceBand, l.SalaryRange)
	}
	return nil
}

// sourcesFromConfig converts config sources to scraper sources.
func sourcesFromConfig(sources []config.ScrapeSource) []scrape.Source {
	out := make([]scrape.Source, 0, len(sources))
	for _, src := range sources {
		out = append(out, scrape.Source{
			Name:              src.Name,
			URL:               src.URL,
			RequestsPerWindow: src.RequestsPerWindow,
			Window:            src.Window(),
			UseBrowser:        src.UseBrowser,
		})
	}
	return out
}

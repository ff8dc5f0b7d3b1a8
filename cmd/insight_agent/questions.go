package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/db"
	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/questions"
)

var generateQuestionsCmd = &cobra.Command{
	Use:   "generate-questions",
	Short: "Generate interview questions for a topic",
	Long: `Generate interview questions for a topic using the Gemini API and
store them in the question bank. Requires GEMINI_API_KEY. With a database
configured the questions are persisted; otherwise they are only printed.`,
	RunE: runGenerateQuestions,
}

var (
	questionsTopic       string
	questionsCount       int
	questionsJSON        bool
	questionsDatabaseURL string
)

func init() {
	generateQuestionsCmd.Flags().StringVarP(&questionsTopic, "topic", "t", "", "Topic to generate questions for (required)")
	generateQuestionsCmd.Flags().IntVarP(&questionsCount, "count", "n", 10, "Number of questions to generate")
	generateQuestionsCmd.Flags().BoolVar(&questionsJSON, "json", false, "Print questions as JSON")
	generateQuestionsCmd.Flags().StringVar(&questionsDatabaseURL, "db-url", "", "PostgreSQL URL to store questions in")

	generateQuestionsCmd.MarkFlagRequired("topic")

	rootCmd.AddCommand(generateQuestionsCmd)
}

func runGenerateQuestions(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	ctx := cmd.Context()

	client, err := llm.NewClient(ctx, llm.DefaultConfig(), apiKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	databaseURL := questionsDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	var repo questions.Repository
	if databaseURL != "" {
		database, err := db.Connect(ctx, databaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		repo = database.Questions()
	} else {
		repo = questions.NewMemoryRepository()
	}

	svc := questions.NewService(client, repo)
	stored, err := svc.Generate(ctx, questionsTopic, questionsCount)
	if err != nil {
		return err
	}

	if questionsJSON {
		out, err := json.MarshalIndent(stored, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal questions: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Generated %d questions on %q:\n\n", len(stored), questionsTopic)
	for i, sq := range stored {
		fmt.Printf("%d. %s\n", i+1, sq.Question.Question)
		for _, opt := range sq.Question.Options {
			marker := "  "
			if opt == sq.Question.Answer {
				marker = "* "
			}
			fmt.Printf("   %s%s\n", marker, opt)
		}
		fmt.Println()
	}
	return nil
}

package questions

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-insight/internal/llm"
)

// defaultCount is used when the caller does not specify how many
// questions to generate.
const defaultCount = 10

// Service generates interview questions and stores them in the bank.
type Service struct {
	client llm.Client
	repo   Repository
}

// NewService wires a generation client to a question repository.
func NewService(client llm.Client, repo Repository) *Service {
	return &Service{client: client, repo: repo}
}

// Generate produces count questions for a topic and persists them.
// It returns the stored questions.
func (s *Service) Generate(ctx context.Context, topic string, count int) ([]StoredQuestion, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	if count <= 0 {
		count = defaultCount
	}

	log.Printf("[QUESTIONS] Generating %d questions for topic %q", count, topic)
	qs, err := llm.GenerateQuestions(ctx, s.client, topic, count)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	stored, err := s.repo.Save(ctx, topic, qs)
	if err != nil {
		return nil, fmt.Errorf("failed to store questions: %w", err)
	}
	log.Printf("[QUESTIONS] Stored %d questions for topic %q", stored, topic)

	return s.repo.ListByTopic(ctx, topic, stored)
}

// List returns stored questions for a topic.
func (s *Service) List(ctx context.Context, topic string, limit int) ([]StoredQuestion, error) {
	return s.repo.ListByTopic(ctx, topic, limit)
}

// Topics returns the distinct topics present in the bank.
func (s *Service) Topics(ctx context.Context) ([]string, error) {
	return s.repo.Topics(ctx)
}

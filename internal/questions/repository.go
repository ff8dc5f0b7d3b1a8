// Package questions manages the generated question bank.
package questions

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-insight/internal/llm"
)

// StoredQuestion is a question bank entry.
type StoredQuestion struct {
	ID        uuid.UUID    `json:"id"`
	Topic     string       `json:"topic"`
	Question  llm.Question `json:"question"`
	CreatedAt time.Time    `json:"created_at"`
}

// Repository stores and retrieves generated questions. Implementations
// must be safe for concurrent use.
type Repository interface {
	// Save persists a batch of questions under a topic and returns the
	// number actually stored.
	Save(ctx context.Context, topic string, qs []llm.Question) (int, error)

	// ListByTopic returns stored questions for a topic, newest first.
	// A limit of 0 means no limit.
	ListByTopic(ctx context.Context, topic string, limit int) ([]StoredQuestion, error)

	// Topics returns the distinct topics present in the bank.
	Topics(ctx context.Context) ([]string, error)
}

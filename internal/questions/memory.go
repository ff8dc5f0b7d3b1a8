package questions

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-insight/internal/llm"
)

// MemoryRepository is an in-memory Repository. It backs tests and the
// no-database mode of the CLI.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []StoredQuestion
}

// NewMemoryRepository creates an empty in-memory question bank.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save persists a batch of questions under a topic.
func (r *MemoryRepository) Save(ctx context.Context, topic string, qs []llm.Question) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, q := range qs {
		r.entries = append(r.entries, StoredQuestion{
			ID:        uuid.New(),
			Topic:     normalizeTopic(topic),
			Question:  q,
			CreatedAt: now,
		})
	}
	return len(qs), nil
}

// ListByTopic returns stored questions for a topic, newest first.
func (r *MemoryRepository) ListByTopic(ctx context.Context, topic string, limit int) ([]StoredQuestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := normalizeTopic(topic)
	var out []StoredQuestion
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].Topic != want {
			continue
		}
		out = append(out, r.entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Topics returns the distinct topics present in the bank, sorted.
func (r *MemoryRepository) Topics(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var topics []string
	for _, e := range r.entries {
		if !seen[e.Topic] {
			seen[e.Topic] = true
			topics = append(topics, e.Topic)
		}
	}
	sort.Strings(topics)
	return topics, nil
}

func normalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-insight/internal/llm"
	"github.com/jonathan/resume-insight/internal/questions"
)

// QuestionBank is the PostgreSQL-backed questions.Repository.
type QuestionBank struct {
	db *DB
}

// Questions returns the question bank store backed by this database.
func (db *DB) Questions() *QuestionBank {
	return &QuestionBank{db: db}
}

var _ questions.Repository = (*QuestionBank)(nil)

// Save persists a batch of questions under a topic
func (b *QuestionBank) Save(ctx context.Context, topic string, qs []llm.Question) (int, error) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	saved := 0
	for _, q := range qs {
		_, err := b.db.pool.Exec(ctx,
			`INSERT INTO question_bank (topic, question, options, answer, explanation)
			 VALUES ($1, $2, $3, $4, $5)`,
			topic, q.Question, q.Options, q.Answer, q.Explanation,
		)
		if err != nil {
			return saved, fmt.Errorf("failed to save question for topic %q: %w", topic, err)
		}
		saved++
	}
	return saved, nil
}

// ListByTopic returns stored questions for a topic, newest first
func (b *QuestionBank) ListByTopic(ctx context.Context, topic string, limit int) ([]questions.StoredQuestion, error) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if limit == 0 {
		limit = 100
	}

	rows, err := b.db.pool.Query(ctx,
		`SELECT id, topic, question, options, answer, explanation, created_at
		 FROM question_bank WHERE topic = $1
		 ORDER BY created_at DESC LIMIT $2`,
		topic, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions for topic %q: %w", topic, err)
	}
	defer rows.Close()

	var out []questions.StoredQuestion
	for rows.Next() {
		var sq questions.StoredQuestion
		if err := rows.Scan(&sq.ID, &sq.Topic, &sq.Question.Question, &sq.Question.Options,
			&sq.Question.Answer, &sq.Question.Explanation, &sq.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		out = append(out, sq)
	}
	return out, nil
}

// Topics returns the distinct topics present in the bank
func (b *QuestionBank) Topics(ctx context.Context) ([]string, error) {
	rows, err := b.db.pool.Query(ctx,
		`SELECT DISTINCT topic FROM question_bank ORDER BY topic`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var topic string
		if err := rows.Scan(&topic); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-insight/internal/types"
)

// handleGenerateQuestions generates interview questions for a topic and
// stores them in the question bank.
func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	if s.questions == nil {
		err := &ErrGenerationUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.GenerateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stored, err := s.questions.Generate(r.Context(), req.Topic, req.Count)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Question generation failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"topic":     req.Topic,
		"questions": stored,
		"count":     len(stored),
	})
}

// handleListQuestions retrieves stored questions for a topic
func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	if s.questions == nil {
		err := &ErrGenerationUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	topic := r.URL.Query().Get("topic")
	if topic == "" {
		s.errorResponse(w, http.StatusBadRequest, "topic query parameter is required")
		return
	}

	stored, err := s.questions.List(r.Context(), topic, parseIntQuery(r, "limit", 100))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list questions")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"topic":     topic,
		"questions": stored,
		"count":     len(stored),
	})
}

// handleListTopics retrieves the distinct topics in the question bank
func (s *Server) handleListTopics(w http.ResponseWriter, r *http.Request) {
	if s.questions == nil {
		err := &ErrGenerationUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	topics, err := s.questions.Topics(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list topics")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"topics": topics,
		"count":  len(topics),
	})
}

package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-insight/internal/analyzer"
	"github.com/jonathan/resume-insight/internal/textnorm"
	"github.com/jonathan/resume-insight/internal/types"
)

// analyzeResponse wraps an analysis result with its storage ID when the
// server has a database.
type analyzeResponse struct {
	ID     *uuid.UUID            `json:"id,omitempty"`
	Result *types.AnalysisResult `json:"result"`
}

// handleAnalyze runs the extraction pipeline on submitted resume text
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := analyzer.Analyze(req.Text, req.Email)
	if err != nil {
		var insufficientErr *textnorm.InsufficientTextError
		if errors.As(err, &insufficientErr) {
			s.errorResponse(w, http.StatusUnprocessableEntity, insufficientErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	resp := analyzeResponse{Result: result}
	if s.db != nil {
		id, err := s.db.SaveAnalysis(r.Context(), req.FileName, req.Email, result)
		if err != nil {
			// The analysis itself succeeded; log and return it unstored.
			log.Printf("[SERVER] Failed to store analysis: %v", err)
		} else {
			resp.ID = &id
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetAnalysis retrieves a stored analysis by ID
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrDatabaseUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid analysis ID")
		return
	}

	rec, err := s.db.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get analysis")
		return
	}
	if rec == nil {
		notFound := &ErrNotFound{Resource: "analysis", ID: idStr}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, rec)
}

// handleListAnalyses retrieves recent analyses
func (s *Server) handleListAnalyses(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrDatabaseUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := parseIntQuery(r, "limit", 50)
	records, err := s.db.ListAnalyses(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list analyses")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"analyses": records,
		"count":    len(records),
	})
}

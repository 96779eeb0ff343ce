// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielhkuo/candidate-scoring/middleware"
	"github.com/danielhkuo/candidate-scoring/models"
	"github.com/danielhkuo/candidate-scoring/scoring"
)

type CandidateHandler struct {
	store *scoring.Store
}

func NewCandidateHandler(store *scoring.Store) *CandidateHandler {
	return &CandidateHandler{store: store}
}

// GetCandidate handles GET /candidates/{id}
// Returns the candidate, the caller's own score (or null) and the statistics
func (h *CandidateHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	candidateID := r.PathValue("id")
	if candidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	candidate, err := h.store.GetCandidate(r.Context(), candidateID)
	if err != nil {
		writeStoreError(w, err, "Candidate not found", "failed to query candidate")
		return
	}

	var myScore *models.Score
	score, err := h.store.GetScore(r.Context(), candidateID, user.ID)
	switch {
	case err == nil:
		myScore = &score
	case !errors.Is(err, scoring.ErrNotFound):
		writeStoreError(w, err, "Candidate not found", "failed to query score")
		return
	}

	stats, err := h.store.Aggregate(r.Context(), candidateID)
	if err != nil {
		writeStoreError(w, err, "Candidate not found", "failed to aggregate scores")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CandidateDetailResponse{
		Candidate: candidate,
		MyScore:   myScore,
		Stats:     stats,
	})
}

// SubmitScore handles PUT /candidates/{id}/score
// Creates the caller's score or overwrites their previous one
func (h *CandidateHandler) SubmitScore(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	candidateID := r.PathValue("id")
	if candidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	// Fractional or non-numeric values fail to decode into int
	var req models.SubmitScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Scores must be whole numbers between 1 and 5")
		return
	}
	if req.HandGestures == nil || req.StayedAwake == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "hand_gestures and stayed_awake are required")
		return
	}

	result, err := h.store.SubmitScore(r.Context(), candidateID, user.ID, *req.HandGestures, *req.StayedAwake)
	if err != nil {
		writeStoreError(w, err, "Candidate not found", "failed to submit score")
		return
	}

	message := "Score saved"
	if result.Updated {
		message = "Score updated"
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitScoreResponse{
		ScoreID: result.ScoreID,
		Message: message,
	})
}

// SetFeedback handles PUT /candidates/{id}/feedback
func (h *CandidateHandler) SetFeedback(w http.ResponseWriter, r *http.Request) {
	candidateID := r.PathValue("id")
	if candidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate id is required")
		return
	}

	var req models.SetFeedbackRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	feedback := strings.TrimSpace(req.StudentFeedback)
	if err := h.store.SetFeedback(r.Context(), candidateID, feedback); err != nil {
		writeStoreError(w, err, "Candidate not found", "failed to save feedback")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Feedback saved",
	})
}

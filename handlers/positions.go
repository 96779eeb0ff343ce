// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/candidate-scoring/middleware"
	"github.com/danielhkuo/candidate-scoring/models"
	"github.com/danielhkuo/candidate-scoring/scoring"
)

type PositionHandler struct {
	store *scoring.Store
}

func NewPositionHandler(store *scoring.Store) *PositionHandler {
	return &PositionHandler{store: store}
}

// ListPositions handles GET /positions
func (h *PositionHandler) ListPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.store.ListPositions(r.Context())
	if err != nil {
		writeStoreError(w, err, "Positions not found", "failed to list positions")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, positions)
}

// CreatePosition handles POST /positions
func (h *PositionHandler) CreatePosition(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req models.CreatePositionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	position, err := h.store.CreatePosition(r.Context(), req.Title, user.ID)
	if err != nil {
		writeStoreError(w, err, "User not found", "failed to create position")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, position)
}

// GetPosition handles GET /positions/{id}
// Returns the position with its candidates in ranked order
func (h *PositionHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	positionID := r.PathValue("id")
	if positionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "position id is required")
		return
	}

	position, err := h.store.GetPosition(r.Context(), positionID)
	if err != nil {
		writeStoreError(w, err, "Position not found", "failed to query position")
		return
	}

	ranked, err := h.store.RankCandidates(r.Context(), positionID)
	if err != nil {
		writeStoreError(w, err, "Position not found", "failed to rank candidates")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PositionDetailResponse{
		Position:   position,
		Candidates: ranked,
	})
}

// CreateCandidate handles POST /positions/{id}/candidates
func (h *PositionHandler) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	positionID := r.PathValue("id")
	if positionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "position id is required")
		return
	}

	var req models.CreateCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidate, err := h.store.CreateCandidate(r.Context(), positionID, req.Name)
	if err != nil {
		writeStoreError(w, err, "Position not found", "failed to create candidate")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, candidate)
}

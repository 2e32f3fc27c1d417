// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kinolens/kinolens/internal/database"
	"github.com/kinolens/kinolens/internal/models"
)

// PanelQueryExecutor encapsulates the common flow shared by the dashboard
// panel handlers:
//
//  1. Build the shared MovieFilter from query parameters
//  2. Execute the panel query against the store
//  3. Respond with the JSON envelope including query time
//
// A failing query produces a DATABASE_ERROR for that panel only; handlers
// hold no state, so other panels are unaffected.
type PanelQueryExecutor struct {
	handler *Handler
}

// NewPanelQueryExecutor creates a new panel query executor instance.
func NewPanelQueryExecutor(h *Handler) *PanelQueryExecutor {
	return &PanelQueryExecutor{handler: h}
}

// PanelQueryFunc executes a panel query under the shared filter.
// The result must be JSON-serializable; it is returned inside the
// APIResponse envelope.
type PanelQueryFunc func(ctx context.Context, filter database.MovieFilter) (interface{}, error)

// ExecuteFiltered runs queryFunc with the filter parsed from the request.
//
// Example:
//
//	executor.ExecuteFiltered(w, r, "RatingTrend",
//	    func(ctx context.Context, filter database.MovieFilter) (interface{}, error) {
//	        return h.store.GetRatingTrend(ctx, filter)
//	    })
func (e *PanelQueryExecutor) ExecuteFiltered(
	w http.ResponseWriter,
	r *http.Request,
	panelName string,
	queryFunc PanelQueryFunc,
) {
	// Protects against nil pointer in queryFunc
	if e.handler.store == nil {
		respondError(w, http.StatusServiceUnavailable, "SERVICE_ERROR", "Store not available", nil)
		return
	}

	filter, apiErr := e.handler.buildFilter(r)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	start := time.Now()
	data, err := queryFunc(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
			fmt.Sprintf("Failed to execute query: %s", panelName), err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package database

import (
	"context"
	"testing"
)

// TestSearchMovies_EmptyQueryIsNoOp verifies an empty query returns without
// touching the store. The nil result distinguishes "no search ran" from an
// executed search with zero matches, which yields an empty non-nil slice.
func TestSearchMovies_EmptyQueryIsNoOp(t *testing.T) {
	// A zero-value DB would panic on any store access, so a non-panicking
	// nil result proves the short-circuit.
	db := &DB{}

	results, err := db.SearchMovies(context.Background(), "", 20, MovieFilter{YearMin: 1900, YearMax: 2025})
	if err != nil {
		t.Fatalf("Expected no error for empty query, got %v", err)
	}
	if results != nil {
		t.Errorf("Expected nil results for empty query, got %v", results)
	}
}

// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

// TestSortGenresByRatingAsc verifies the rating re-sort is ascending and stable.
func TestSortGenresByRatingAsc(t *testing.T) {
	stats := []GenreStat{
		{Genre: "Drama", AvgRating: 7.7, MovieCount: 2},
		{Genre: "Comedy", AvgRating: 6.5, MovieCount: 1},
		{Genre: "Horror", AvgRating: 6.5, MovieCount: 3},
	}

	SortGenresByRatingAsc(stats)

	if stats[0].Genre != "Comedy" {
		t.Errorf("Expected Comedy first (lowest rating, stable), got %s", stats[0].Genre)
	}
	if stats[1].Genre != "Horror" {
		t.Errorf("Expected Horror second (tie keeps original order), got %s", stats[1].Genre)
	}
	if stats[2].Genre != "Drama" {
		t.Errorf("Expected Drama last (highest rating), got %s", stats[2].Genre)
	}
}

// TestSortGenresByCountAsc verifies the count re-sort is ascending.
func TestSortGenresByCountAsc(t *testing.T) {
	stats := []GenreStat{
		{Genre: "Drama", MovieCount: 5},
		{Genre: "Comedy", MovieCount: 1},
		{Genre: "Action", MovieCount: 3},
	}

	SortGenresByCountAsc(stats)

	want := []string{"Comedy", "Action", "Drama"}
	for i, g := range want {
		if stats[i].Genre != g {
			t.Errorf("Position %d: expected %s, got %s", i, g, stats[i].Genre)
		}
	}
}

// TestMovieSummaryJSON verifies optional fields are omitted when absent.
func TestMovieSummaryJSON(t *testing.T) {
	m := MovieSummary{Title: "Alpha"}

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	s := string(data)
	if strings.Contains(s, `"year"`) {
		t.Errorf("Expected absent year to be omitted, got %s", s)
	}
	if strings.Contains(s, `"plot"`) {
		t.Errorf("Expected absent plot to be omitted, got %s", s)
	}
	if !strings.Contains(s, `"title":"Alpha"`) {
		t.Errorf("Expected title in output, got %s", s)
	}
}

// TestTrendPointJSON verifies the wire field names of a trend row.
func TestTrendPointJSON(t *testing.T) {
	p := TrendPoint{Year: 1994, AvgRating: 8.9, MovieCount: 1}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	s := string(data)
	for _, field := range []string{`"year":1994`, `"avg_rating":8.9`, `"movie_count":1`} {
		if !strings.Contains(s, field) {
			t.Errorf("Expected %s in output, got %s", field, s)
		}
	}
}

// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

// Package testinfra provides test infrastructure for integration testing with containers.
//
// This package uses testcontainers-go to manage a MongoDB container for
// integration tests, providing a realistic store that closely matches
// production.
//
//	func TestAnalytics(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//
//	    ctx := context.Background()
//	    mongo, err := testinfra.NewMongoContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, mongo)
//
//	    db, err := database.New(ctx, &config.DatabaseConfig{
//	        URI:         mongo.URI,
//	        Name:        "sample_mflix",
//	        PingTimeout: 10 * time.Second,
//	    })
//	    ...
//	}
//
// All files in this package carry the integration build tag so the unit
// test suite stays free of Docker requirements.
package testinfra

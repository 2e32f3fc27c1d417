// Kinolens - Movie Analytics Dashboard for MongoDB
// Copyright 2026 Kinolens contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinolens/kinolens

package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/kinolens/kinolens/internal/config"
	"github.com/kinolens/kinolens/internal/logging"
)

// Collection names in the sample_mflix schema. The movies collection is
// required; users and comments may be absent on partial restores and the
// aggregators degrade to zero counts when they are.
const (
	CollectionMovies   = "movies"
	CollectionUsers    = "users"
	CollectionComments = "comments"
)

// DB wraps the MongoDB client and provides read-only data access methods.
// All queries are aggregation pipelines or counts; nothing in this package
// writes to the store.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB, verifies the connection with a bounded ping
// and scopes all access to the configured database.
func New(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.PingTimeout)

	connectCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancelPing()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		// Disconnect with a fresh context so a dead deadline cannot
		// leave the client half-open.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logging.Info().
		Str("database", cfg.Name).
		Msg("Connected to MongoDB")

	return &DB{
		client: client,
		db:     client.Database(cfg.Name),
	}, nil
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}

// Ping verifies the store is reachable. Used by the readiness endpoint.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return nil
}

// movies returns the movies collection handle.
func (db *DB) movies() *mongo.Collection {
	return db.db.Collection(CollectionMovies)
}

// hasCollection reports whether a collection exists in the database.
// Partial sample_mflix restores frequently omit users or comments.
func (db *DB) hasCollection(ctx context.Context, name string) (bool, error) {
	names, err := db.db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return false, fmt.Errorf("failed to list collections: %w", err)
	}
	return len(names) > 0, nil
}

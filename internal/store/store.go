package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"opensea-tracker/internal/model"
)

// Store persists collection snapshots in PostgreSQL.
type Store struct {
	db *pgxpool.Pool
}

// New creates a Store over an existing connection pool.
func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Latest returns the most recent snapshot for a collection, or nil if the
// collection has never been observed.
func (s *Store) Latest(ctx context.Context, collection string) (*model.CollectionSnapshot, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, collection, highest_bid, floor_price, COALESCE(num_bids, 0), ts
		FROM collection_snapshots
		WHERE collection = $1
		ORDER BY ts DESC
		LIMIT 1
	`, collection)

	var snap model.CollectionSnapshot
	err := row.Scan(&snap.ID, &snap.Collection, &snap.HighestBid, &snap.FloorPrice, &snap.NumBids, &snap.TS)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	return &snap, nil
}

// Insert appends one snapshot row. A duplicate (collection, ts) pair is
// dropped by the uniqueness constraint rather than erroring.
func (s *Store) Insert(ctx context.Context, snap model.CollectionSnapshot) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO collection_snapshots (collection, highest_bid, floor_price, num_bids, ts)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (collection, ts) DO NOTHING
	`, snap.Collection, snap.HighestBid, snap.FloorPrice, snap.NumBids, snap.TS)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	return nil
}

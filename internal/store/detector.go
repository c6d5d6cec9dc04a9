package store

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"opensea-tracker/internal/model"
)

// Epsilon is the tolerance below which a decimal field move is treated as
// floating-point noise rather than a change.
const Epsilon = 1e-6

// InitialSnapshotNote is the change description for a collection's first row.
const InitialSnapshotNote = "Initial snapshot"

// SnapshotStore is the persistence surface the detector needs.
type SnapshotStore interface {
	Latest(ctx context.Context, collection string) (*model.CollectionSnapshot, error)
	Insert(ctx context.Context, snap model.CollectionSnapshot) error
}

// Detector compares freshly fetched values against the last stored snapshot
// and appends a new row only when at least one tracked field changed.
type Detector struct {
	store  SnapshotStore
	logger *slog.Logger
	now    func() time.Time
}

// NewDetector creates a Detector over the given store.
func NewDetector(store SnapshotStore, logger *slog.Logger) *Detector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Detector{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// SaveIfChanged inserts a new snapshot for the collection when a tracked
// field differs from the most recent stored row, and reports whether it did
// along with a human-readable description of what moved.
//
// A nil bid or floor value means "unknown this run" and never registers as a
// change against a stored value. Store failures are logged and reported as
// "no change": a transient database error must never abort the run.
func (d *Detector) SaveIfChanged(ctx context.Context, collection string, highestBid, floorPrice *float64, numBids int) (bool, string) {
	prev, err := d.store.Latest(ctx, collection)
	if err != nil {
		d.logger.Error("read latest snapshot failed",
			"collection", collection,
			"err", err,
		)
		return false, ""
	}

	var desc string
	if prev == nil {
		desc = InitialSnapshotNote
	} else {
		changes := describeChanges(prev, highestBid, floorPrice, numBids)
		if len(changes) == 0 {
			return false, ""
		}
		desc = strings.Join(changes, ", ")
	}

	snap := model.CollectionSnapshot{
		Collection: collection,
		HighestBid: highestBid,
		FloorPrice: floorPrice,
		NumBids:    numBids,
		TS:         d.now().UTC(),
	}

	if err := d.store.Insert(ctx, snap); err != nil {
		d.logger.Error("insert snapshot failed",
			"collection", collection,
			"err", err,
		)
		return false, ""
	}

	return true, desc
}

// describeChanges returns one fragment per changed field, in fixed order.
func describeChanges(prev *model.CollectionSnapshot, highestBid, floorPrice *float64, numBids int) []string {
	var changes []string

	if c, ok := decimalChange("Highest Bid", prev.HighestBid, highestBid); ok {
		changes = append(changes, c)
	}
	if c, ok := decimalChange("Floor Price", prev.FloorPrice, floorPrice); ok {
		changes = append(changes, c)
	}
	if numBids != prev.NumBids {
		changes = append(changes, fmt.Sprintf("Num Bids changed by %+d (New: %d)", numBids-prev.NumBids, numBids))
	}

	return changes
}

// decimalChange reports whether a nullable decimal field changed beyond
// Epsilon. A nil new value never triggers a change; a value appearing where
// none was stored always does, with the delta measured from zero.
func decimalChange(label string, old, next *float64) (string, bool) {
	if next == nil {
		return "", false
	}

	var base float64
	if old != nil {
		base = *old
	}

	delta := *next - base
	if old != nil && math.Abs(delta) <= Epsilon {
		return "", false
	}

	return fmt.Sprintf("%s changed by %+.6f (New: %.6f)", label, delta, *next), true
}

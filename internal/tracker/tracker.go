package tracker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Fetcher retrieves market values for one collection. Implementations return
// nil values for "unknown" rather than errors; see the api package.
type Fetcher interface {
	FetchHighestBid(ctx context.Context, collection string) (*float64, int)
	FetchFloorPrice(ctx context.Context, collection string) *float64
}

// Saver persists a fetched observation when it differs from the last stored
// one, reporting whether it did and what moved.
type Saver interface {
	SaveIfChanged(ctx context.Context, collection string, highestBid, floorPrice *float64, numBids int) (bool, string)
}

// CollectionResult is the outcome for one collection within a run.
type CollectionResult struct {
	Collection string
	HighestBid *float64
	FloorPrice *float64
	NumBids    int
	Changed    bool
	Change     string // Empty unless Changed
}

// Report summarizes one orchestrator run.
type Report struct {
	RunID   uuid.UUID
	Started time.Time
	Elapsed time.Duration
	Results []CollectionResult
}

// Changed returns the results whose snapshot was updated this run.
func (r Report) Changed() []CollectionResult {
	var out []CollectionResult
	for _, res := range r.Results {
		if res.Changed {
			out = append(out, res)
		}
	}
	return out
}

// Unchanged returns the results with no recorded change this run.
func (r Report) Unchanged() []CollectionResult {
	var out []CollectionResult
	for _, res := range r.Results {
		if !res.Changed {
			out = append(out, res)
		}
	}
	return out
}

// Tracker sequentially polls a fixed collection list and records changes.
// It owns the process-lifetime counters: total runs and total changed
// collections since startup.
type Tracker struct {
	collections []string
	fetcher     Fetcher
	saver       Saver
	logger      *slog.Logger

	runs         atomic.Int64
	changedTotal atomic.Int64
}

// New creates a Tracker over the given collection list.
func New(collections []string, fetcher Fetcher, saver Saver, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		collections: collections,
		fetcher:     fetcher,
		saver:       saver,
		logger:      logger,
	}
}

// Runs returns the number of completed runs since startup.
func (t *Tracker) Runs() int64 {
	return t.runs.Load()
}

// ChangedTotal returns the cumulative count of changed collections across
// all runs since startup.
func (t *Tracker) ChangedTotal() int64 {
	return t.changedTotal.Load()
}

// Run processes every collection once, in list order, and returns the run
// report. No per-collection failure aborts the loop: fetches degrade to
// unknown values and store failures surface as "unchanged".
func (t *Tracker) Run(ctx context.Context) Report {
	start := time.Now()
	report := Report{
		RunID:   uuid.New(),
		Started: start,
		Results: make([]CollectionResult, 0, len(t.collections)),
	}

	for _, collection := range t.collections {
		bid, numBids := t.fetcher.FetchHighestBid(ctx, collection)
		floor := t.fetcher.FetchFloorPrice(ctx, collection)

		changed, change := t.saver.SaveIfChanged(ctx, collection, bid, floor, numBids)

		report.Results = append(report.Results, CollectionResult{
			Collection: collection,
			HighestBid: bid,
			FloorPrice: floor,
			NumBids:    numBids,
			Changed:    changed,
			Change:     change,
		})
	}

	report.Elapsed = time.Since(start)

	t.runs.Add(1)
	t.changedTotal.Add(int64(len(report.Changed())))

	return report
}

// LogReport emits the grouped run summary: changed collections with their
// descriptions first, then the unchanged ones, then the cumulative counters.
func (t *Tracker) LogReport(report Report) {
	changed := report.Changed()
	for _, res := range changed {
		t.logger.Info("collection changed",
			"run_id", report.RunID,
			"collection", res.Collection,
			"change", res.Change,
		)
	}

	unchanged := report.Unchanged()
	if len(unchanged) > 0 {
		names := make([]string, 0, len(unchanged))
		for _, res := range unchanged {
			names = append(names, res.Collection)
		}
		t.logger.Info("collections unchanged",
			"run_id", report.RunID,
			"collections", names,
		)
	}

	t.logger.Info("run complete",
		"run_id", report.RunID,
		"collections", len(report.Results),
		"changed", len(changed),
		"unchanged", len(unchanged),
		"elapsed", report.Elapsed,
		"total_runs", t.Runs(),
		"total_changes", t.ChangedTotal(),
	)
}

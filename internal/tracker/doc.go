// Package tracker implements the run orchestrator and its schedule.
//
// A run walks the configured collection list sequentially: fetch the highest
// per-item bid and the floor price, then hand both to the change detector.
// One collection's failure never aborts the rest. The loop re-runs on a fixed
// interval, sleeping for whatever remains of the interval after each
// completed run, so runs can never overlap.
package tracker

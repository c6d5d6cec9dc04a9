// Package store implements snapshot persistence and change detection.
//
// Snapshots are append-only rows in collection_snapshots (never updated,
// never deleted). The detector compares freshly fetched values against the
// most recent stored row and inserts a new one only when a tracked field
// moved beyond tolerance, so the table records changes rather than every
// poll.
package store

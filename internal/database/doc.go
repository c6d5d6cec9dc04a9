// Package database provides the PostgreSQL connection pool and schema
// bootstrap for snapshot storage.
//
// The snapshot table is created idempotently at startup; rows are append-only
// and guarded by a uniqueness constraint on (collection, ts).
package database

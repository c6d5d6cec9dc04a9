// Package model defines shared data types for the collection tracker.
//
// Conventions:
//   - Prices: float64 token units (base units divided by 10^18)
//   - Nullable prices: *float64, nil meaning "unknown this run"
//   - Timestamps: time.Time in UTC
package model

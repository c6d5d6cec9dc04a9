// Package api provides a read-only client for the OpenSea v2 REST API.
//
// Two endpoints are consumed, both collection-scoped GETs:
//   - /offers/collection/{slug}: open offers, used to derive the highest
//     per-item bid and the consideration count backing it
//   - /listings/collection/{slug}/best: current listings, used to derive
//     the floor price
//
// Failure policy: transport errors, non-2xx responses and malformed payloads
// degrade to "no data" (nil values) at the Fetch* level. Nothing is retried;
// a failed collection is picked up on the next scheduled run.
package api

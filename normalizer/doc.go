// Package normalizer converts raw route-optimization payloads into the
// canonical journey model.
//
// The service's wire schema has evolved through at least two incompatible
// generations:
//
//   - the current nested shape, where each route carries an objectives
//     sub-record and typed train/flight segments with numeric seat
//     availability, and
//   - the legacy flat shape, where objective totals (totalTime, totalCost,
//     totalTransfers, seatProbability, safetyScore) sit directly on the route
//     and segments are rail-only with a boolean seatAvailable.
//
// Each route is treated as a tagged-union value discriminated on the presence
// of the objectives sub-record. New shapes become new branches here without
// touching anything downstream. Missing optional fields degrade to zero values
// recorded in a Warnings aggregator rather than failing the payload; only a
// payload that matches no known shape produces a SchemaError.
package normalizer

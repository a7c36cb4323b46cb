// Package journey defines the canonical in-memory route model shared by every
// other package in this module.
//
// The route optimization service has shipped at least two incompatible payload
// shapes over time. Nothing downstream of the normalizer ever sees those raw
// shapes; everything consumes the types in this package.
package journey

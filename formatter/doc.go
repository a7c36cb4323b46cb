// Package formatter derives displayable views from the result store and
// serializes them.
//
// This package is organized into:
// - view.go: view assembly (visible routes, categories, recommendation)
// - json.go: JSON serialization for the HTTP facade
// - cards.go: terminal route cards for the CLI
package formatter

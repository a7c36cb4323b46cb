// Package search drives one search transaction against the route
// optimization service: input validation, the single network suspension
// point, normalization, result installation, and user notifications.
package search

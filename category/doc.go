// Package category derives stable grouping keys from the free-text category
// labels the route optimization service attaches to routes.
package category

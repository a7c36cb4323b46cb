// Package store holds the result sets of the current search and derives the
// visible route list from the selected display mode and category filter.
package store

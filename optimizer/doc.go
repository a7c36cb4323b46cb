// Package optimizer is the HTTP client for the external route optimization
// service. It fetches raw payload bytes and leaves all schema concerns to the
// normalizer, so schema evolution never touches this package.
package optimizer

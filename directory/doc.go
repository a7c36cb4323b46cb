// Package directory resolves location codes to display names, from either a
// compiled-in station table or a remotely fetched list.
package directory

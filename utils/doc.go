// Package utils provides display formatting helpers shared by the CLI and
// the HTTP facade.
package utils

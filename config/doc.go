// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Missing files and zero values fall back to defaults, so the CLI works out
// of the box against a local route optimization service.
package config

// Package config loads and validates application configuration from the
// environment.
package config

// Package config defines the application configuration structure and its
// loading. Settings come from environment variables (SCORA_ prefix) with
// an optional YAML file fallback; the loaded Config is injected explicitly
// into components rather than read as ambient globals.
package config

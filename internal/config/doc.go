// Package config provides configuration structures and utilities for readscore.
// It defines the main configuration options for text analysis, metric
// selection defaults, and report generation preferences.
package config

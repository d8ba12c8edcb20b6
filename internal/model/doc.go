// Package model defines the value objects shared across the application:
// readability metrics, text statistics, per-metric results, and the
// analysis report.
//
// All types in this package are plain data with no behavior beyond
// construction, formatting, and JSON (de)serialization. They carry no
// references to other internal packages so that every layer (statistics
// extraction, scoring, reporting, persistence) can depend on them without
// cycles.
package model

// Package database provides SQLite-based persistence for analysis reports.
//
// Reports are stored as JSON alongside their headline statistics so that
// history listings and comparisons can run without deserializing every
// stored report.
//
// Design decision: We use modernc.org/sqlite (a pure Go SQLite driver)
// rather than mattn/go-sqlite3 to avoid cgo. This keeps cross-compilation
// trivial and the binary self-contained.
package database

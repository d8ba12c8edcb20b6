package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "readscore"

	// DefaultIndex is the metric token used when neither a CLI flag nor a
	// configuration file specifies one. Empty means "ask interactively":
	// the score command prompts on the terminal instead of assuming a
	// metric the user never chose.
	DefaultIndex = ""
)

// Config holds all configuration options for readscore.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ReportConfig, StorageConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Index is the readability index to compute, as a token: "ARI", "FK",
	// "SMOG", "CL", or "all". When empty, the score command falls back to
	// the configuration file and finally to an interactive prompt.
	Index string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .readscore in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// FileConfigs holds per-file configurations loaded from the config file.
	// This is populated by LoadConfigFile and used during scoring.
	FileConfigs *File

	// JSONReport enables JSON report output instead of human-readable format.
	// When true, outputs the full report with statistics and all scores.
	// When false, outputs the human-readable simple report (default).
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of human-readable format.
	// When true, outputs GitHub Flavored Markdown with tables, alerts, and pie charts.
	// When false, outputs the human-readable simple report (default).
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// Sources is the list of text file paths to analyze.
	// May be empty, in which case the score command reads no file and
	// reports on empty text, matching the behavior of a missing file.
	Sources []string

	// DBDir is the directory path for storing the SQLite database.
	// When set, analysis results are saved to the database for historical
	// comparison. When empty, results are not persisted.
	// Defaults to XDG data directory (~/.local/share/readscore on Linux).
	DBDir string

	// SaveToDB indicates whether to save analysis results to the database.
	// Enabled by default; the --no-save flag turns it off.
	SaveToDB bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Index: DefaultIndex,
	}
}

// XDGDataDir returns the XDG data directory for readscore.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/readscore
// On macOS: ~/Library/Application Support/readscore
// On Windows: %LOCALAPPDATA%\readscore
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for readscore.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/readscore
// On macOS: ~/Library/Application Support/readscore
// On Windows: %APPDATA%\readscore
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for readscore.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.cache/readscore
// On macOS: ~/Library/Caches/readscore
// On Windows: %LOCALAPPDATA%\readscore\cache
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any analysis begins.
func (c *Config) Validate() error {
	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}

// Package log provides logging functionality with automatic truncation of
// oversized attribute values, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Truncation of long string attributes (typically raw input text)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Truncation
//
// readscore frequently logs alongside whole documents. A debug line that
// embeds a 200 KB manuscript makes the log unreadable and can leak more of
// a private document into shared logs than the author intended. The
// TruncateHandler caps every string attribute at a fixed length and marks
// the cut with an ellipsis; counts, scores, and file paths pass through
// untouched.
//
// # Usage
//
//	// Create a logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("text loaded",
//	    "source", "essay.txt",
//	    "text", text, // truncated if longer than MaxAttrLen
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log

// Package main provides the entry point for the readscore CLI.
//
// readscore estimates how old a reader must be to understand a text.
// It computes four readability metrics (ARI, Flesch–Kincaid, SMOG, and
// Coleman–Liau) from simple text statistics and maps each score to a
// reader age.
//
// Usage:
//
//	readscore score <file>
//	readscore score --index all <file>
//
// See --help for all available options.
package main

// main is the entry point for readscore.
func main() {
	Execute()
}

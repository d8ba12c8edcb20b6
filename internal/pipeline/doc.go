// Package pipeline orchestrates the analysis of one text as a sequence of
// steps: statistics extraction, then scoring and age estimation.
//
// Steps implement the Step interface and accumulate their results on a
// shared model.Report. The pipeline checks for context cancellation between
// steps and can either stop on the first failure or record it and continue,
// depending on configuration. All execution is sequential; the analysis is
// a pure computation over an immutable text buffer with no shared state to
// protect.
package pipeline

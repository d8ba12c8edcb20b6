// Package score evaluates the readability formulas over extracted text
// statistics and maps scores to estimated reader ages.
//
// All functions are pure: they take a model.Statistics value and return a
// number. The formulas use true floating-point division and are not guarded
// against degenerate input — zero words or sentences produce NaN or ±Inf,
// which EstimateAge then routes through the invalid-score path (age 0)
// instead of crashing.
package score

// Package core implements the grade summarizer: pure arithmetic over an
// ordered list of assignment records.
//
// # Design Principles
//
// All code in this package adheres to the following constraints:
//
//  1. No I/O and no mutation: Summarize reads its input and returns a value.
//  2. Records arrive already validated from the input boundary; core performs
//     no error checking and defines no error taxonomy of its own.
//  3. Deterministic output: the same record list always produces the same
//     Summary, including the resubmission recommendation, whose tie-break
//     uses exact float64 equality.
//
// # Core Types
//
// Assignment: one graded piece of work, classified formative or summative.
// Summary: per-category totals, the final grade, the scaled score, the
// pass/fail verdict, and the resubmission recommendation.
package core

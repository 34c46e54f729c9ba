// Package search records binary search as a sequence of immutable steps.
//
// The package has two halves:
//
//   - [Generate]: runs binary search over a sorted array and returns a [Run],
//     one [Step] per meaningful moment (midpoint, comparison, elimination,
//     terminal found/not-found)
//   - [ParseSortedList], [RandomSorted], [ParseTarget]: turn raw user input
//     into the pre-validated array and target that [Generate] expects
//
// # Example
//
//	data, _ := search.ParseSortedList("1, 3, 5, 7, 9, 11")
//	run := search.Generate(data, 7)
//	last := run.Last()
//	idx, ok := last.Found() // 3, true
//
// # Determinism
//
// Generate is a pure function. Replaying it with the same array and target
// yields an identical Run.
package search

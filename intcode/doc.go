// Package intcode implements the Intcode virtual machine used throughout the
// 2019 puzzles.
//
// A Machine runs until it halts or needs input it does not have; the caller
// then queues more input with Input and calls Run again. Outputs accumulate
// until drained with Output. This makes chaining machines (amplifiers, robots,
// arcade cabinets) a plain loop without goroutines or channels.
//
// Memory grows on demand and reads past the end return 0. Parameter modes are
// 0 (position), 1 (immediate) and 2 (relative to the relative base).
package intcode

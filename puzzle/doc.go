// Package puzzle holds the registry that maps a (year, day) pair to the
// solver for that day's Advent of Code puzzle.
//
// What:
//
//   - Solver is a plain function from the raw puzzle input to an Answer.
//   - Year packages under puzzles/ call Register from their init functions;
//     the aoc command blank-imports them to populate the registry.
//   - Lookup, Days and Years expose the registry in deterministic order.
//
// Errors:
//
//   - ErrMalformedInput: the input text does not have the expected shape.
//   - ErrNoSolution: the input parsed but holds no answer.
//   - ErrUnknownPuzzle: no solver is registered for the requested day.
//
// Solvers never share state; each call builds its own data from the input.
package puzzle

// Command aoc runs the Advent of Code solvers.
//
//	aoc run 2022 16          solve one day, fetching the input if needed
//	aoc run 2024             solve every registered day of 2024
//	aoc fetch 2023 5         download an input using the stored session
//	aoc list                 show which days are registered
package main

import (
	"github.com/katalvlaran/advent/internal/cli"

	_ "github.com/katalvlaran/advent/puzzles/y2015"
	_ "github.com/katalvlaran/advent/puzzles/y2016"
	_ "github.com/katalvlaran/advent/puzzles/y2019"
	_ "github.com/katalvlaran/advent/puzzles/y2020"
	_ "github.com/katalvlaran/advent/puzzles/y2021"
	_ "github.com/katalvlaran/advent/puzzles/y2022"
	_ "github.com/katalvlaran/advent/puzzles/y2023"
	_ "github.com/katalvlaran/advent/puzzles/y2024"
	_ "github.com/katalvlaran/advent/puzzles/y2025"
)

func main() {
	cli.Execute()
}

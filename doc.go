// Package advent is a collection of Advent of Code solvers together with the
// small graph, grid and parsing toolkit they share.
//
// 🚀 What lives where?
//
//	puzzle/       the registry: Answer, Solver, Register, Lookup
//	puzzles/      one package per year (y2015 … y2025); each day registers itself from init
//	parse/        line, block and integer splitting that fails with ErrMalformedInput
//	input/        reading local inputs and fetching them with a session cookie
//	config/       YAML + environment configuration for the aoc command
//
// Algorithms the solvers lean on:
//
//	geom/         points, grid locations, directions
//	grid/         dense 2-D grids with neighbor iteration and region finding
//	graph/        adjacency-list graphs keyed by any comparable type
//	bfs/, dfs/    breadth-first search, walks and topological sort
//	dijkstra/     shortest paths over implicit state spaces
//	matrix/       distance tables and Floyd–Warshall
//	tsp/          Held–Karp for shortest or longest tours and paths
//	intervals/    canonical unions of integer ranges
//	intcode/      the 2019 Intcode virtual machine
//
// Quick example:
//
//	ans, err := puzzle.Solve(2022, 1, input)
//	fmt.Println(ans.Part1, ans.Part2)
//
// The aoc command (cmd/aoc) links every year in and runs, fetches and lists
// solvers:
//
//	go run ./cmd/aoc run 2024 5
package advent

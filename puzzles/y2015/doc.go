// Package y2015 holds the solvers for Advent of Code 2015. Importing the
// package registers every day with the puzzle registry.
package y2015

// Package y2023 holds the 2023 solvers, days 1 through 10.
package y2023

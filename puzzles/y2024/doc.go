// Package y2024 holds the 2024 solvers, days 1 through 13.
package y2024

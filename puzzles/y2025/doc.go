// Package y2025 holds the 2025 solvers, days 1 through 7.
package y2025

// Package y2021 holds the 2021 solvers, days 1 through 11.
package y2021

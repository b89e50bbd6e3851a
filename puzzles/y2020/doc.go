// Package y2020 holds the 2020 solvers, days 1 through 20.
package y2020

// Package y2022 holds the 2022 solvers, days 1 through 17.
package y2022

// Package y2019 holds the 2019 solvers. Days 2, 5, 7, 9, 11, 13 and 15 run
// on the intcode package.
package y2019

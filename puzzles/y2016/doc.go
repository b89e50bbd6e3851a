// Package y2016 holds the 2016 solvers. Only the first week is covered.
package y2016

// Package intervals implements sets of integers stored as sorted, disjoint,
// inclusive ranges.
//
// Adjacent ranges are coalesced ([1,3] and [4,6] become [1,6]), so a Set is
// always in canonical form and two Sets holding the same integers compare
// equal element-wise.
package intervals

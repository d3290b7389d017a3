// Package grid implements an incremental A* search over a rectangular grid of cells.
//
// A Grid owns its Nodes and the search bookkeeping: the frontier ("potential" nodes), the closed
// set ("checked" nodes) and the reconstructed path ("selected" nodes). Each call to Grid.Tick
// performs the work of exactly one state of the search:
//
//   - StateMarking: every neighbour of every checked node becomes (or is re-evaluated as) a
//     potential node. Reaching the end node switches to StateBacktracking.
//   - StateChecking: the potential node with the lowest f-cost (ties broken by the lowest h-cost)
//     is moved to the closed set.
//   - StateBacktracking: one node of the path is selected, walking from the end towards the start
//     through strictly decreasing g-costs.
//   - StateEnd: nothing left to do.
//
// Costs use the octile distance with 10 per orthogonal step and 14 per diagonal step.
//
// Broken internal contracts (e.g. checking a node that is not potential) panic with an error
// wrapping ErrInvariant. Use exceptions.TryCatch[error] (github.com/gomlx/exceptions) to recover
// from them.
//
// A Grid is not safe for concurrent use.
package grid

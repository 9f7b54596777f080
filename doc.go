// Package astar provides A* shortest-path search over a bounded 2D grid
// with 8-directional movement and static obstacles.
//
// It exposes three entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive renderers.
//   - SearchBatch: run many independent searches on a worker pool.
//
// Cells are 1-indexed. Axis-aligned moves cost 1 and diagonal moves cost √2.
// Every cost is rounded to three decimal places as it is accumulated, so
// tie-breaking between equal-cost routes is deterministic.
package astar

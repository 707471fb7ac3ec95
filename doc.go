// Package mazesearch generates grid mazes with random obstacles and routes
// through them with a family of best-first search strategies.
//
// It exposes three main entry points:
//
//   - Search: run one of the four variants (Best-First, A*, Greedy
//     Best-First, Uniform-Cost) to completion and get a Result.
//   - Stepper: iterate a search one expansion at a time to drive debugging tools.
//   - Compare: run several variants concurrently over the same grid.
//
// All four variants share a single priority-frontier engine; they differ only
// in the priority key fed to the frontier and in whether accumulated path
// cost is tracked and improved.
package mazesearch

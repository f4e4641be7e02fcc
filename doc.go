// Package mlcs finds a longest common subsequence shared by any number of
// strings (the MLCS problem).
//
// It exposes three entry points:
//
//   - Find: the plain function call, returning the subsequence or "".
//   - Search: run the algorithm to completion with options and get a Result.
//   - Stepper: iterate the search one round at a time to drive UIs or debugging tools.
//
// The search walks the lattice of match points shared by all inputs,
// ranking points by the number of characters matched so far plus an
// admissible bound built from pairwise suffix LCS tables. Unlike strict A*
// every round expands all points whose score lies within a window of the
// best one, trading the optimality guarantee for throughput.
package mlcs

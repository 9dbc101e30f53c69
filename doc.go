// Command tabueqcol searches for small equitable colorings of a graph.
//
// An equitable coloring partitions vertices into k independent sets whose
// sizes differ by at most one. tabueqcol drives a tabu-search metaheuristic
// (TabuCol, adapted for the equitable constraint) at a fixed k, then
// descends: k, k-1, k-2, ... warm-starting each attempt from the previous
// feasible coloring, until an attempt fails, k reaches 1, or the time
// budget runs out.
//
// Under the hood the work is split across:
//
//	instance/ — the immutable graph model and its text-format loader
//	coloring/ — color-class state, construction, and the Move/Swap neighborhood
//	tabu/     — the tabu search loop: tenure table, aspiration, perturbation
//	descent/  — the k, k-1, k-2, ... outer loop and RNG stream derivation
//	report/   — the CSV row writer for one run's summary
//
// Usage:
//
//	tabueqcol -input graph.txt -output results.csv [flags]
package main

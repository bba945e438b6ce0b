// Package sequence finds the shortest sequence of alphabet values that sums to
// a target, with per-position constraints on the last three elements.
//
// # Overview
//
// An Alphabet is a fixed, ordered set of distinct integers with a designated
// subset called the hit group. A Constraint restricts one tail position to any
// value, to the hit group, or to one exact value. A Solver resolves the three
// tail constraints, enumerates every tail candidate and, for each, searches for
// the shortest body that makes up the rest of the target.
//
// # Search
//
// The body search is breadth-first over partial sums, so the first time the
// target is produced the path to it is of minimum length. Each partial sum is
// enqueued once. Bounds limits the search to a window of partial sums and a
// maximum depth; a target that cannot be reached inside those limits is
// reported as not found rather than as an error.
//
// # Usage Example
//
//	solver, err := sequence.NewSolver(sequence.Default())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	res := solver.Solve(49, sequence.UniformTail(sequence.Hit()))
//	if res.Found {
//		fmt.Println(res.Body, res.Tail, res.TotalLength)
//	}
//
// # Constraint Wire Form
//
// Constraints encode as "any", "hit" or an integer, in JSON as well as in CLI
// flags (Constraint implements pflag.Value).
package sequence

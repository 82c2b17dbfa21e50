// Package evaluate runs the MIREX metric families over whole datasets: a
// candidate PatternSet scored against a ground-truth PatternSet, piece by
// piece, in parallel.
//
// 🚀 How evaluation works
//
//  1. The pieces common to ground truth and candidate are selected;
//     pieces present on only one side are excluded from scoring and
//     reported by name on the Result, never silently dropped.
//  2. For every common piece, four independent computations are dispatched
//     onto one bounded worker pool: establishment scores, three-layer
//     scores, and occurrence scores at thresholds 0.75 and 0.5.
//  3. Results are aggregated into one row per piece (piece name, point
//     count, pattern counts, all metric values) plus a synthetic Mean row
//     over the numeric columns, deterministically sorted by piece name
//     regardless of completion order.
//
// ⚙️ Failure policy
//
//	A failure while computing one piece's metrics is isolated to that
//	piece: the piece lands in Result.Failed with its error, the remaining
//	pieces are evaluated normally. Recovered panics surface the same way.
//	The pool is scoped to the Evaluate call and torn down on every exit
//	path.
//
// The ground truth and candidate sets are only read during evaluation;
// concurrent mutation of either is not supported.
package evaluate

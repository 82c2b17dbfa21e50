// Package mirex implements the MIREX repeated-pattern discovery metrics:
// scoring functions that compare the patterns-with-occurrences produced by
// a discovery algorithm against a ground-truth analysis of the same piece.
//
// 🚀 The metric families
//
//   - Establishment: did the algorithm find each pattern at all? The best
//     pairwise score between any member of a ground-truth group and any
//     member of a candidate group, aggregated over all group pairs.
//   - Three-layer: refines establishment by scoring occurrence-set overlap,
//     an F-score of F-scores of point-level F-scores.
//   - Occurrence: restricted to group pairs already matched above a
//     threshold c, measures how faithfully the individual occurrences were
//     recovered.
//
// The base pairwise measure is the cardinality score
//
//	|gt ∩ cand| / max(|gt|, |cand|)
//
// computed on point-set intersections (see CardinalityScore). Other
// pairwise measures can be plugged into ScoreMatrix via ScoreFunc.
//
// ⚙️ Conventions
//
//	All matrix aggregations follow the MIREX 2017 procedure: precision is
//	the mean of column-wise maxima, recall the mean of row-wise maxima, and
//	the F-score is the harmonic mean with an explicit zero rule:
//	FScore(p, r) is 0.0 whenever either side is 0.0. Empty pattern lists
//	produce empty matrices and 0.0 metrics, never NaN.
//
// See https://www.music-ir.org/mirex/wiki/2017:Discovery_of_Repeated_Themes_%26_Sections
// for the competition definition.
package mirex

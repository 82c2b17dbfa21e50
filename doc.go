// Package motiv is a toolkit for point-set representations of music and
// for evaluating repeated-pattern discovery against annotated ground
// truth.
//
// 🚀 What is motiv?
//
//	A library for computational musicology that brings together:
//		• Point-sets: sorted, deduplicated (onset, pitch) sets with set algebra
//		• Patterns: labeled point-set fragments grouped with their occurrences
//		• Notation: a minimal score model with a Standard MIDI File reader
//		• Datasets: pattern collections with JSON persistence, directory and
//		  JKU-PDD corpus loaders
//		• Metrics: the MIREX establishment, three-layer and occurrence scores
//		• Evaluation: a parallel piece-by-piece evaluator with a CSV report
//		• Search: translational occurrence matching within a piece
//
// ✨ Why choose motiv?
//
//   - Exact comparison semantics – onsets are rounded once, at construction,
//     so equal musical times compare equal no matter how they were computed
//   - Loud failures – id and name lookups error, nothing vanishes silently
//   - Deterministic output – sorted pieces, stable JSON, reproducible reports
//
// Everything is organized under top-level packages:
//
//	pointset/   — Point, PointSet, Pattern, PatternOccurrences, pitch encodings
//	score/      — notation model (Score, Part, Measure, Note) and SMF reading
//	patternset/ — dataset collection, JSON persistence, corpus loaders
//	mirex/      — the metric functions and their score matrices
//	evaluate/   — the parallel evaluator and its report
//	search/     — translational pattern search
//	cmd/        — the motiveval command-line evaluator
//
// See each package's doc.go for details and examples.
//
//	go get github.com/motivlab/motiv
package motiv

// Package pointset implements a 2-dimensional point-set representation of
// music: note onsets on the time axis, pitch numbers on the vertical axis.
//
// 🚀 What is a point-set?
//
//	A piece of music reduced to a set of (onset time, pitch number) pairs.
//	Point-set representations underpin geometric pattern discovery: repeated
//	musical material appears as translated point configurations.
//
// ✨ Core types:
//   - Point              — immutable (rounded onset, pitch) pair; ordering and
//     equality depend only on the rounded onset and the pitch, while the raw
//     (unrounded) onset is carried along for lossless reconstruction.
//   - PointSet           — sorted, deduplicated, immutable collection of
//     Points for one piece, with set algebra (Intersect/Union/Diff), range
//     queries, time scaling and an optional back-reference to the notation
//     it was derived from.
//   - Pattern            — a PointSet with provenance (label, source) that
//     represents one instance of a repeated musical idea.
//   - PatternOccurrences — a canonical Pattern grouped with its occurrences.
//
// ⚙️ Numeric policy:
//
//	Onset times are rounded to DefaultOnsetPrecision decimal places on
//	construction, so onsets computed through different arithmetic paths
//	compare equal. Use NewPointWithPrecision for a different precision.
//
// Pitch numbering is pluggable through PitchExtractor: ChromaticPitch uses
// MIDI semitone numbers, MorpheticPitch uses staff-position numbering
// aligned so that morphetic C4 equals MIDI C4 (60).
//
// Construction from notation lives in FromScore; CSV and JSON forms are in
// csv.go and json.go. All derived operations return new point-sets and never
// mutate the receiver.
package pointset

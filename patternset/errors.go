package patternset

import "errors"

var (
	// ErrPatternNotFound indicates a pattern id with no entry in the set.
	ErrPatternNotFound = errors.New("patternset: pattern id not found")

	// ErrPointSetNotFound indicates a point-set id with no entry in the set.
	ErrPointSetNotFound = errors.New("patternset: point-set id not found")

	// ErrPieceNotFound indicates a piece name with no entry in the set.
	ErrPieceNotFound = errors.New("patternset: piece not found")

	// ErrOccurrenceNotFound indicates a pattern id that is not among the
	// occurrence entries of its group; canonical patterns are never removed
	// by RemovePattern.
	ErrOccurrenceNotFound = errors.New("patternset: pattern is not an occurrence entry of its group")

	// ErrBadCorpus indicates an unknown JKU-PDD corpus selector.
	ErrBadCorpus = errors.New("patternset: corpus must be polyphonic or monophonic")
)

package pointset

import "fmt"

// Pattern is a point-set fragment representing one instance of a repeated
// musical idea, with provenance metadata. Equality semantics follow the
// embedded PointSet: use EqualsInPoints for points-only comparison; the
// label, source and additional data never participate.
type Pattern struct {
	*PointSet

	label      string
	source     string
	additional map[string]any
}

// NewPattern constructs a Pattern from the given points. Label names the
// pattern; source identifies the analyst or algorithm that produced it.
// PointSet options apply as in New.
func NewPattern(points []Point, label, source string, opts ...Option) *Pattern {
	return &Pattern{
		PointSet: New(points, opts...),
		label:    label,
		source:   source,
	}
}

// Label returns the human-readable name of the pattern.
func (p *Pattern) Label() string { return p.label }

// Source returns the analyst or algorithm identity the pattern came from.
func (p *Pattern) Source() string { return p.source }

// AdditionalData returns free-form metadata attached to the pattern, or nil.
func (p *Pattern) AdditionalData() map[string]any { return p.additional }

// SetAdditionalData attaches free-form metadata to the pattern.
func (p *Pattern) SetAdditionalData(data map[string]any) { p.additional = data }

// TimeScaled returns a copy of the pattern with every onset multiplied by
// factor, keeping label and source.
func (p *Pattern) TimeScaled(factor float64) *Pattern {
	return &Pattern{
		PointSet:   p.PointSet.TimeScaled(factor),
		label:      p.label,
		source:     p.source,
		additional: p.additional,
	}
}

// String renders the pattern with its provenance and points.
func (p *Pattern) String() string {
	return fmt.Sprintf("[%s; %s; %s: %v]", p.label, p.source, p.dtype, p.points)
}

// PatternOccurrences groups one canonical Pattern with the list of its
// occurrences (translated or varied repetitions) within one piece. In the
// combined sequence exposed by At, index 0 is always the canonical pattern
// and indices >= 1 are the occurrences.
type PatternOccurrences struct {
	// Piece is the name of the piece all member patterns belong to.
	Piece string

	// Pattern is the canonical form of the pattern.
	Pattern *Pattern

	// Occurrences are the repetitions of the canonical pattern.
	Occurrences []*Pattern
}

// NewPatternOccurrences groups a canonical pattern with its occurrences for
// the named piece.
func NewPatternOccurrences(piece string, pattern *Pattern, occurrences []*Pattern) *PatternOccurrences {
	return &PatternOccurrences{Piece: piece, Pattern: pattern, Occurrences: occurrences}
}

// Len returns the total number of member patterns: the canonical pattern
// plus its occurrences.
func (po *PatternOccurrences) Len() int { return 1 + len(po.Occurrences) }

// At returns the i-th member: the canonical pattern at 0, occurrences from
// index 1 on.
func (po *PatternOccurrences) At(i int) *Pattern {
	if i == 0 {
		return po.Pattern
	}

	return po.Occurrences[i-1]
}

// Patterns returns the canonical pattern followed by all occurrences.
func (po *PatternOccurrences) Patterns() []*Pattern {
	out := make([]*Pattern, 0, po.Len())
	out = append(out, po.Pattern)
	out = append(out, po.Occurrences...)

	return out
}

// SetPiece sets the piece name on the group and on every member pattern,
// keeping the nominal same-piece invariant.
func (po *PatternOccurrences) SetPiece(name string) {
	po.Piece = name
	for _, p := range po.Patterns() {
		p.SetPieceName(name)
	}
}

package pointset

import (
	"fmt"

	"github.com/motivlab/motiv/score"
)

// ScoreOption configures point-set construction from a score.
type ScoreOption func(*scoreConfig)

type scoreConfig struct {
	includeGrace bool
	expandedReps bool
}

// WithGraceNotes includes grace notes in the point-set. By default they are
// skipped, since they carry no metrical duration.
func WithGraceNotes() ScoreOption {
	return func(c *scoreConfig) { c.includeGrace = true }
}

// WithRepetitionsExpanded records that repeated sections were expanded in
// the score before conversion.
func WithRepetitionsExpanded() ScoreOption {
	return func(c *scoreConfig) { c.expandedReps = true }
}

// FromScore converts notated music into a point-set. One point is produced
// per sounding onset: tied continuations and stops are skipped, grace notes
// are skipped unless WithGraceNotes is given, and chord notes each produce
// their own point. The pitch extractor decides the numbering convention.
//
// Measure line positions come from the first part; a pickup measure shifts
// the first measure's effective start negatively by the pickup's duration.
// The returned point-set keeps a back-reference to the score and a mapping
// from points to originating notes, enabling score-region extraction.
func FromScore(s *score.Score, extractor PitchExtractor, opts ...ScoreOption) *PointSet {
	var cfg scoreConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	refs := make(map[pointKey][]noteRef)
	var points []Point

	for pi, part := range s.Parts {
		offset := -s.PickupLength
		for mi, measure := range part.Measures {
			for ni, note := range measure.Notes {
				if !note.Tie.IsOnset() {
					continue
				}
				if note.Grace && !cfg.includeGrace {
					continue
				}

				p := NewPoint(offset+note.Offset, extractor.PitchOf(note.Pitch))
				points = append(points, p)
				refs[p.key()] = append(refs[p.key()], noteRef{part: pi, measure: mi, note: ni})
			}
			offset += measure.Length
		}
	}

	ps := New(points,
		WithPieceName(s.Title),
		WithMeasureLines(s.MeasureOffsets()),
		WithPitchType(extractor.Type()),
		WithExpandedRepetitions(cfg.expandedReps),
	)
	ps.scoreDoc = s
	ps.noteRefs = refs

	return ps
}

// Notes returns the notes of the attached score that produced the given
// point. Chords may map several notes to one point.
func (ps *PointSet) Notes(p Point) ([]score.Note, error) {
	if ps.scoreDoc == nil {
		return nil, ErrNoScore
	}

	refs, ok := ps.noteRefs[p.key()]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoteNotFound, p)
	}

	notes := make([]score.Note, len(refs))
	for i, r := range refs {
		notes[i] = ps.scoreDoc.Parts[r.part].Measures[r.measure].Notes[r.note]
	}

	return notes, nil
}

// Boundaries selects how notes that straddle a pattern's time boundary are
// handled when a score region is extracted.
type Boundaries string

const (
	// BoundariesExclude drops notes that sound past the pattern's end.
	BoundariesExclude Boundaries = "exclude"

	// BoundariesInclude keeps straddling notes with their full duration.
	BoundariesInclude Boundaries = "include"

	// BoundariesTruncate clips straddling notes at the pattern's end.
	BoundariesTruncate Boundaries = "truncate"
)

// PatternSpan returns the time span [start, end] covered by the pattern in
// the attached score: start is the first onset and end is the offset at
// which the last matching note stops sounding.
func (ps *PointSet) PatternSpan(pat *Pattern) (start, end float64, err error) {
	if ps.scoreDoc == nil {
		return 0, 0, ErrNoScore
	}
	if pat.Len() == 0 {
		return 0, 0, ErrEmptyPattern
	}

	start = pat.At(0).OnsetTime()
	end = start
	for i := 0; i < pat.Len(); i++ {
		p := pat.At(i)
		noteEnd := p.OnsetTime()
		if notes, nerr := ps.Notes(p); nerr == nil {
			for _, n := range notes {
				if e := p.OnsetTime() + n.Duration; e > noteEnd {
					noteEnd = e
				}
			}
		}
		if noteEnd > end {
			end = noteEnd
		}
	}

	return start, end, nil
}

// MeasureRange returns the 1-based numbers of the first and last measure
// the pattern's span covers.
func (ps *PointSet) MeasureRange(pat *Pattern) (first, last int, err error) {
	start, end, err := ps.PatternSpan(pat)
	if err != nil {
		return 0, 0, err
	}

	lines := ps.scoreDoc.MeasureOffsets()
	first, last = 1, 1
	for i := 0; i+1 < len(lines); i++ {
		if lines[i] <= start {
			first = i + 1
		}
		if lines[i] < end {
			last = i + 1
		}
	}

	return first, last, nil
}

// ScoreRegion extracts the sub-region of the attached notation whose note
// onsets and pitches match the pattern. The region spans whole measures
// from the first to the last measure the pattern touches; notes that
// straddle the pattern's end are handled according to the boundaries
// policy. Calling this on a point-set without a score fails with ErrNoScore.
func (ps *PointSet) ScoreRegion(pat *Pattern, boundaries Boundaries) (*score.Score, error) {
	_, end, err := ps.PatternSpan(pat)
	if err != nil {
		return nil, err
	}

	first, last, err := ps.MeasureRange(pat)
	if err != nil {
		return nil, err
	}

	wanted := make(map[pointKey]bool, pat.Len())
	for i := 0; i < pat.Len(); i++ {
		wanted[pat.At(i).key()] = true
	}

	region := &score.Score{Title: ps.scoreDoc.Title}
	for pi, part := range ps.scoreDoc.Parts {
		sub := score.Part{Name: part.Name}
		offset := -ps.scoreDoc.PickupLength
		for mi, measure := range part.Measures {
			measureStart := offset
			offset += measure.Length
			if mi+1 < first || mi+1 > last {
				continue
			}

			out := score.Measure{Length: measure.Length}
			for ni, note := range measure.Notes {
				onset := NewPoint(measureStart+note.Offset, 0).OnsetTime()
				key := pointKey{onset: onset, pitch: ps.pitchOf(pi, mi, ni)}
				if !wanted[key] {
					continue
				}

				kept := note
				if noteEnd := onset + note.Duration; noteEnd > end {
					switch boundaries {
					case BoundariesExclude:
						continue
					case BoundariesTruncate:
						kept.Duration = end - onset
					}
				}
				out.Notes = append(out.Notes, kept)
			}
			sub.Measures = append(sub.Measures, out)
		}
		region.Parts = append(region.Parts, sub)
	}

	return region, nil
}

// PatternNotation returns the notation of the pattern with straddling notes
// truncated at the pattern boundary.
func (ps *PointSet) PatternNotation(pat *Pattern) (*score.Score, error) {
	return ps.ScoreRegion(pat, BoundariesTruncate)
}

// pitchOf recovers the pitch number of a score note under the point-set's
// pitch convention.
func (ps *PointSet) pitchOf(part, measure, note int) float64 {
	n := ps.scoreDoc.Parts[part].Measures[measure].Notes[note]
	if ext := ExtractorFor(ps.pitchType); ext != nil {
		return ext.PitchOf(n.Pitch)
	}

	return float64(n.Pitch.MIDI())
}

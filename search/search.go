package search

import (
	"errors"

	"github.com/motivlab/motiv/pointset"
)

var (
	// ErrQueryTooLong indicates a query with more points than the searched
	// point-set; no occurrence can exist and the call is a usage error.
	ErrQueryTooLong = errors.New("search: query cannot be longer than the point-set")

	// ErrEmptyQuery indicates a query with no points.
	ErrEmptyQuery = errors.New("search: query contains no points")
)

// matchSource labels patterns produced by the geometric matcher.
const matchSource = "GeometricMatching"

// FindOccurrences returns all translationally equivalent occurrences of the
// query pattern within the given point-set. The returned group carries the
// query as its canonical pattern and the matches, in ascending order of
// their translation vectors, as the occurrences.
func FindOccurrences(query *pointset.Pattern, ps *pointset.PointSet) (*pointset.PatternOccurrences, error) {
	if query.Len() == 0 {
		return nil, ErrEmptyQuery
	}
	if query.Len() > ps.Len() {
		return nil, ErrQueryTooLong
	}

	first := query.At(0)
	var matches []*pointset.Pattern

	// Anchor the query's first point on each set point in turn; the
	// remaining points decide whether that translation is a full match.
	// The set is scanned in ascending order, so matches come out sorted by
	// translation vector.
	for i := 0; i < ps.Len(); i++ {
		anchor := ps.At(i)
		dt := anchor.OnsetTime() - first.OnsetTime()
		dp := anchor.Pitch() - first.Pitch()

		translated := make([]pointset.Point, query.Len())
		found := true
		for j := 0; j < query.Len(); j++ {
			q := query.At(j)
			p := pointset.NewPoint(q.OnsetTime()+dt, q.Pitch()+dp)
			if !ps.Contains(p) {
				found = false
				break
			}
			translated[j] = p
		}
		if !found {
			continue
		}

		matches = append(matches, pointset.NewPattern(translated, query.Label(), matchSource,
			pointset.WithPieceName(ps.PieceName()), pointset.WithPitchType(ps.PitchType())))
	}

	return pointset.NewPatternOccurrences(ps.PieceName(), query, matches), nil
}

package pointset

import (
	"sort"

	"github.com/google/uuid"

	"github.com/motivlab/motiv/score"
)

// noteRef addresses one note of an attached score by position.
type noteRef struct {
	part, measure, note int
}

// PointSet is an ordered, duplicate-free collection of Points representing
// one piece of music. The point contents are immutable after construction;
// all derived operations return new point-sets. Metadata fields (piece
// name) may be updated, the points may not.
type PointSet struct {
	points []Point // ascending lexicographic order, no duplicates

	id            string
	pieceName     string
	dtype         DType
	quarterLength float64
	measureLines  []float64
	pitchType     PitchType
	expandedReps  bool

	scoreDoc *score.Score
	noteRefs map[pointKey][]noteRef
}

// Option configures metadata of a PointSet at construction.
type Option func(*PointSet)

// WithPieceName sets the name of the piece the point-set represents.
func WithPieceName(name string) Option {
	return func(ps *PointSet) { ps.pieceName = name }
}

// WithID sets the stable identifier of the point-set. When absent, a fresh
// UUID is assigned at construction.
func WithID(id string) Option {
	return func(ps *PointSet) { ps.id = id }
}

// WithDType records the numeric type of the source data.
func WithDType(d DType) Option {
	return func(ps *PointSet) { ps.dtype = d }
}

// WithQuarterLength sets the length of a quarter note in the time units of
// the onset axis.
func WithQuarterLength(ql float64) Option {
	return func(ps *PointSet) { ps.quarterLength = ql }
}

// WithMeasureLines sets the positions of measure lines on the time axis.
func WithMeasureLines(positions []float64) Option {
	return func(ps *PointSet) { ps.measureLines = positions }
}

// WithPitchType tags the pitch numbering convention of the point-set.
func WithPitchType(t PitchType) Option {
	return func(ps *PointSet) { ps.pitchType = t }
}

// WithExpandedRepetitions marks that repeated sections of the source score
// were expanded when the point-set was created.
func WithExpandedRepetitions(expanded bool) Option {
	return func(ps *PointSet) { ps.expandedReps = expanded }
}

// New constructs a PointSet from the given points. The input is
// deduplicated by value and sorted into ascending lexicographic order;
// duplicates collapse regardless of their raw onsets. A UUID identifier is
// assigned unless WithID is supplied.
func New(points []Point, opts ...Option) *PointSet {
	ps := &PointSet{
		points:        dedupSort(points),
		quarterLength: 1.0,
	}
	for _, opt := range opts {
		opt(ps)
	}
	if ps.id == "" {
		ps.id = uuid.NewString()
	}

	return ps
}

// dedupSort returns a sorted copy of points with value-duplicates removed.
func dedupSort(points []Point) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	deduped := sorted[:0]
	for i, p := range sorted {
		if i == 0 || !p.Equal(sorted[i-1]) {
			deduped = append(deduped, p)
		}
	}

	return deduped
}

// Len returns the number of distinct points in the set.
func (ps *PointSet) Len() int { return len(ps.points) }

// At returns the point at the given index. Point-sets are in ascending
// lexicographic order.
func (ps *PointSet) At(i int) Point { return ps.points[i] }

// Points returns a copy of the points in ascending lexicographic order.
func (ps *PointSet) Points() []Point {
	out := make([]Point, len(ps.points))
	copy(out, ps.points)

	return out
}

// ID returns the stable identifier assigned at construction.
func (ps *PointSet) ID() string { return ps.id }

// PieceName returns the name of the piece, which may be empty.
func (ps *PointSet) PieceName() string { return ps.pieceName }

// SetPieceName updates the piece name. Point contents are unaffected.
func (ps *PointSet) SetPieceName(name string) { ps.pieceName = name }

// DType returns the recorded numeric type of the source data.
func (ps *PointSet) DType() DType { return ps.dtype }

// QuarterLength returns the length of a quarter note in onset time units.
func (ps *PointSet) QuarterLength() float64 { return ps.quarterLength }

// MeasureLinePositions returns the positions of measure lines on the time
// axis, or nil when unknown.
func (ps *PointSet) MeasureLinePositions() []float64 { return ps.measureLines }

// PitchType returns the pitch numbering convention tag.
func (ps *PointSet) PitchType() PitchType { return ps.pitchType }

// HasExpandedRepetitions reports whether repeated sections were expanded
// when the point-set was created from a score.
func (ps *PointSet) HasExpandedRepetitions() bool { return ps.expandedReps }

// Score returns the score this point-set was created from, or nil.
func (ps *PointSet) Score() *score.Score { return ps.scoreDoc }

// Contains reports whether the set holds a point equal in value to p.
func (ps *PointSet) Contains(p Point) bool {
	i := sort.Search(len(ps.points), func(i int) bool { return !ps.points[i].Less(p) })

	return i < len(ps.points) && ps.points[i].Equal(p)
}

// EqualsInPoints reports whether ps and other contain exactly the same
// points by value. All metadata is ignored.
func (ps *PointSet) EqualsInPoints(other *PointSet) bool {
	if len(ps.points) != len(other.points) {
		return false
	}
	for i, p := range ps.points {
		if !p.Equal(other.points[i]) {
			return false
		}
	}

	return true
}

// IntersectionSize returns the number of points present in both ps and
// other, by a single merge scan over the two sorted sequences. This is the
// counting primitive behind the cardinality score.
//
// Complexity: O(|ps| + |other|).
func (ps *PointSet) IntersectionSize(other *PointSet) int {
	i, j, count := 0, 0, 0
	for i < len(ps.points) && j < len(other.points) {
		switch ps.points[i].Compare(other.points[j]) {
		case 0:
			count++
			i++
			j++
		case -1:
			i++
		default:
			j++
		}
	}

	return count
}

// Intersect returns a new point-set holding the points present in both ps
// and other, by a merge scan over the two sorted sequences. Metadata is
// taken from the receiver.
//
// Complexity: O(|ps| + |other|).
func (ps *PointSet) Intersect(other *PointSet) *PointSet {
	var common []Point
	i, j := 0, 0
	for i < len(ps.points) && j < len(other.points) {
		switch ps.points[i].Compare(other.points[j]) {
		case 0:
			common = append(common, ps.points[i])
			i++
			j++
		case -1:
			i++
		default:
			j++
		}
	}

	return New(common, ps.metadataOptions()...)
}

// Union returns a new point-set holding the points of both ps and other,
// deduplicated. Metadata is taken from the receiver.
func (ps *PointSet) Union(other *PointSet) *PointSet {
	combined := make([]Point, 0, len(ps.points)+len(other.points))
	combined = append(combined, ps.points...)
	combined = append(combined, other.points...)

	return New(combined, ps.metadataOptions()...)
}

// Diff returns a new point-set holding the points of ps whose value is
// absent from other. Metadata is taken from the receiver.
func (ps *PointSet) Diff(other *PointSet) *PointSet {
	var remaining []Point
	i, j := 0, 0
	for i < len(ps.points) {
		if j >= len(other.points) {
			remaining = append(remaining, ps.points[i])
			i++
			continue
		}
		switch ps.points[i].Compare(other.points[j]) {
		case 0:
			i++
			j++
		case -1:
			remaining = append(remaining, ps.points[i])
			i++
		default:
			j++
		}
	}

	return New(remaining, ps.metadataOptions()...)
}

// Range returns the points with start <= onset <= end, both ends inclusive,
// in ascending lexicographic order.
func (ps *PointSet) Range(start, end float64) []Point {
	var out []Point
	from := sort.Search(len(ps.points), func(i int) bool { return ps.points[i].OnsetTime() >= start })
	for i := from; i < len(ps.points) && ps.points[i].OnsetTime() <= end; i++ {
		out = append(out, ps.points[i])
	}

	return out
}

// TimeScaled returns a copy of the point-set with every onset multiplied by
// factor. Scaling applies to the raw onsets, not the already-rounded
// values, so rounding error does not compound. Score and measure metadata
// carry over since the association with the underlying notation is
// unaffected by time scaling.
func (ps *PointSet) TimeScaled(factor float64) *PointSet {
	scaled := make([]Point, len(ps.points))
	for i, p := range ps.points {
		scaled[i] = NewPoint(p.RawOnsetTime()*factor, p.Pitch())
	}

	out := New(scaled, ps.metadataOptions()...)
	out.scoreDoc = ps.scoreDoc
	out.noteRefs = ps.noteRefs

	return out
}

// metadataOptions reproduces the receiver's metadata (minus identity) for
// derived point-sets.
func (ps *PointSet) metadataOptions() []Option {
	return []Option{
		WithPieceName(ps.pieceName),
		WithDType(ps.dtype),
		WithQuarterLength(ps.quarterLength),
		WithMeasureLines(ps.measureLines),
		WithPitchType(ps.pitchType),
		WithExpandedRepetitions(ps.expandedReps),
	}
}

package pointset

import (
	"fmt"
	"math"
)

// DefaultOnsetPrecision is the number of decimal places onset times are
// rounded to when constructing Points. Rounding is what makes onsets
// computed through different arithmetic paths (tick division, fraction
// expansion, repeated addition) compare equal.
const DefaultOnsetPrecision = 5

// RoundOnset rounds v to the given number of decimal places.
func RoundOnset(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))

	return math.Round(v*scale) / scale
}

// Point is an immutable point in a 2-dimensional point-set: a rounded onset
// time and a pitch number. Equality and ordering depend only on the rounded
// onset and the pitch; the raw onset is carried for lossless reconstruction
// of the original timing and never participates in comparisons.
type Point struct {
	onset float64 // rounded onset time
	pitch float64
	raw   float64 // unrounded onset time
}

// NewPoint returns a Point with the onset rounded to DefaultOnsetPrecision
// decimal places.
func NewPoint(rawOnset, pitch float64) Point {
	return NewPointWithPrecision(rawOnset, pitch, DefaultOnsetPrecision)
}

// NewPointWithPrecision returns a Point with the onset rounded to the given
// number of decimal places.
func NewPointWithPrecision(rawOnset, pitch float64, decimals int) Point {
	return Point{onset: RoundOnset(rawOnset, decimals), pitch: pitch, raw: rawOnset}
}

// newPointRounded rebuilds a Point from stored table columns without
// re-rounding.
func newPointRounded(rawOnset, pitch, roundedOnset float64) Point {
	return Point{onset: roundedOnset, pitch: pitch, raw: rawOnset}
}

// OnsetTime returns the rounded onset time of the point.
func (p Point) OnsetTime() float64 { return p.onset }

// Pitch returns the pitch number of the point.
func (p Point) Pitch() float64 { return p.pitch }

// RawOnsetTime returns the unrounded onset time of the point.
func (p Point) RawOnsetTime() float64 { return p.raw }

// Equal reports whether p and q have the same rounded onset and pitch.
// The raw onset is ignored.
func (p Point) Equal(q Point) bool {
	return p.onset == q.onset && p.pitch == q.pitch
}

// Less reports whether p precedes q in ascending lexicographic order:
// rounded onset first, pitch second.
func (p Point) Less(q Point) bool {
	if p.onset != q.onset {
		return p.onset < q.onset
	}

	return p.pitch < q.pitch
}

// Compare returns -1, 0 or +1 according to the lexicographic order of
// (rounded onset, pitch).
func (p Point) Compare(q Point) int {
	switch {
	case p.Less(q):
		return -1
	case q.Less(p):
		return 1
	default:
		return 0
	}
}

// String renders the point as "(onset, pitch)" using the rounded onset.
func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.onset, p.pitch)
}

// pointKey is the comparable value identity of a Point: the fields that
// participate in equality. Used as a map key wherever value-equality
// lookups are needed.
type pointKey struct {
	onset, pitch float64
}

func (p Point) key() pointKey {
	return pointKey{onset: p.onset, pitch: p.pitch}
}

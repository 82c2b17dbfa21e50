package pointset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/motivlab/motiv/pointset"
)

// TestNewPoint_RoundsOnset verifies that onsets computed through different
// arithmetic paths compare equal once rounded to the default precision.
func TestNewPoint_RoundsOnset(t *testing.T) {
	a := pointset.NewPoint(1.0000001, 20.0)
	b := pointset.NewPoint(1.0, 20.0)

	assert.True(t, a.Equal(b), "onsets differing below the rounding precision must compare equal")
	assert.Equal(t, 1.0, a.OnsetTime(), "rounded onset should collapse to 1.0")
	assert.Equal(t, 1.0000001, a.RawOnsetTime(), "raw onset must be carried unrounded")
}

// TestNewPoint_ThirdsCollapse checks that a third computed by division and
// by fraction expansion produces the same point.
func TestNewPoint_ThirdsCollapse(t *testing.T) {
	byDivision := pointset.NewPoint(1.0/3.0, 60.0)
	byExpansion := pointset.NewPoint(0.333333333333, 60.0)

	assert.True(t, byDivision.Equal(byExpansion), "two renderings of one third must round to the same onset")
}

// TestNewPointWithPrecision verifies custom rounding precision.
func TestNewPointWithPrecision(t *testing.T) {
	p := pointset.NewPointWithPrecision(1.23456, 60.0, 2)

	assert.Equal(t, 1.23, p.OnsetTime(), "onset must round to two decimals")
	assert.Equal(t, 1.23456, p.RawOnsetTime(), "raw onset stays untouched")
}

// TestRoundOnset checks the rounding helper at the default precision.
func TestRoundOnset(t *testing.T) {
	assert.Equal(t, 0.33333, pointset.RoundOnset(1.0/3.0, 5), "one third rounds to 0.33333")
	assert.Equal(t, 1.0, pointset.RoundOnset(0.999999, 5), "0.999999 rounds up to 1.0")
	assert.Equal(t, 2.5, pointset.RoundOnset(2.5, 5), "exact values pass through")
}

// TestPoint_Ordering verifies lexicographic order: onset first, pitch as
// the tie-breaker.
func TestPoint_Ordering(t *testing.T) {
	early := pointset.NewPoint(1.0, 64.0)
	lateLow := pointset.NewPoint(2.0, 60.0)
	lateHigh := pointset.NewPoint(2.0, 67.0)

	assert.True(t, early.Less(lateLow), "earlier onset precedes regardless of pitch")
	assert.True(t, lateLow.Less(lateHigh), "equal onsets order by pitch")
	assert.False(t, lateHigh.Less(lateLow), "ordering must be asymmetric")

	assert.Equal(t, -1, early.Compare(lateLow), "Compare agrees with Less")
	assert.Equal(t, 1, lateHigh.Compare(lateLow), "Compare agrees with reversed Less")
	assert.Equal(t, 0, lateLow.Compare(pointset.NewPoint(2.0, 60.0)), "equal points compare to zero")
}

// TestPoint_EqualIgnoresRawOnset confirms that raw onsets never participate
// in equality.
func TestPoint_EqualIgnoresRawOnset(t *testing.T) {
	a := pointset.NewPoint(0.5000001, 72.0)
	b := pointset.NewPoint(0.4999999, 72.0)

	assert.True(t, a.Equal(b), "points with equal rounded onsets are equal despite differing raws")
	assert.NotEqual(t, a.RawOnsetTime(), b.RawOnsetTime(), "the raw onsets genuinely differ")
}

// TestPoint_String renders the rounded coordinates.
func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1.5, 60)", pointset.NewPoint(1.5, 60.0).String())
}

package pointset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motivlab/motiv/pointset"
	"github.com/motivlab/motiv/score"
)

// testScore builds a two-measure piece with a one-beat pickup, a tie chain
// across the barline, a grace note and a chord.
//
//	pickup:    G3 (one quarter, at time -1)
//	measure 1: C4 half tied, E4 half; the tie continues into measure 2
//	measure 2: C4 half (tie stop), grace D4, then the chord C4+E4+G4
func testScore() *score.Score {
	c4 := score.Pitch{Step: score.StepC, Octave: 4}
	d4 := score.Pitch{Step: score.StepD, Octave: 4}
	e4 := score.Pitch{Step: score.StepE, Octave: 4}
	g4 := score.Pitch{Step: score.StepG, Octave: 4}
	g3 := score.Pitch{Step: score.StepG, Octave: 3}

	return &score.Score{
		Title:        "Test piece",
		PickupLength: 1,
		Parts: []score.Part{{
			Name: "Piano",
			Measures: []score.Measure{
				{Length: 1, Notes: []score.Note{
					{Offset: 0, Duration: 1, Pitch: g3},
				}},
				{Length: 4, Notes: []score.Note{
					{Offset: 0, Duration: 2, Pitch: c4, Tie: score.TieStart},
					{Offset: 2, Duration: 2, Pitch: e4},
				}},
				{Length: 4, Notes: []score.Note{
					{Offset: 0, Duration: 2, Pitch: c4, Tie: score.TieStop},
					{Offset: 2, Duration: 0, Pitch: d4, Grace: true},
					{Offset: 2, Duration: 2, Pitch: c4},
					{Offset: 2, Duration: 2, Pitch: e4},
					{Offset: 2, Duration: 2, Pitch: g4},
				}},
			},
		}},
	}
}

// TestFromScore converts the fixture and checks onsets, tie handling and
// grace-note skipping.
func TestFromScore(t *testing.T) {
	ps := pointset.FromScore(testScore(), pointset.ChromaticPitch)

	// Pickup G3, tied C4 (one onset), E4, and the three chord notes.
	require.Equal(t, 6, ps.Len())
	assert.True(t, ps.Contains(pointset.NewPoint(-1, 55)), "the pickup note starts before time zero")
	assert.True(t, ps.Contains(pointset.NewPoint(0, 60)), "the tie start is an onset")
	assert.False(t, ps.Contains(pointset.NewPoint(4, 60)), "the tie stop is not an onset")
	assert.False(t, ps.Contains(pointset.NewPoint(6, 62)), "grace notes are skipped by default")
	assert.True(t, ps.Contains(pointset.NewPoint(6, 60)), "chord notes each produce a point")
	assert.True(t, ps.Contains(pointset.NewPoint(6, 64)))
	assert.True(t, ps.Contains(pointset.NewPoint(6, 67)))

	assert.Equal(t, "Test piece", ps.PieceName())
	assert.Equal(t, pointset.PitchChromatic, ps.PitchType())
	assert.Equal(t, []float64{-1, 0, 4, 8}, ps.MeasureLinePositions())
}

// TestFromScore_GraceNotes includes grace notes on request.
func TestFromScore_GraceNotes(t *testing.T) {
	ps := pointset.FromScore(testScore(), pointset.ChromaticPitch, pointset.WithGraceNotes())

	require.Equal(t, 7, ps.Len())
	assert.True(t, ps.Contains(pointset.NewPoint(6, 62)), "the grace note now contributes a point")
}

// TestFromScore_Morphetic converts with staff-position numbering.
func TestFromScore_Morphetic(t *testing.T) {
	ps := pointset.FromScore(testScore(), pointset.MorpheticPitch)

	assert.Equal(t, pointset.PitchMorphetic, ps.PitchType())
	assert.True(t, ps.Contains(pointset.NewPoint(0, 60)), "morphetic C4 is 60")
	assert.True(t, ps.Contains(pointset.NewPoint(2, 62)), "morphetic E4 is 62")
	assert.True(t, ps.Contains(pointset.NewPoint(-1, 57)), "morphetic G3 is 3*7+4+32")
}

// TestNotes maps points back to their originating notes, including chords.
func TestNotes(t *testing.T) {
	ps := pointset.FromScore(testScore(), pointset.ChromaticPitch)

	notes, err := ps.Notes(pointset.NewPoint(0, 60))
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, score.TieStart, notes[0].Tie)

	_, err = ps.Notes(pointset.NewPoint(99, 99))
	assert.ErrorIs(t, err, pointset.ErrNoteNotFound)

	detached := newSet([][2]float64{{0, 60}})
	_, err = detached.Notes(pointset.NewPoint(0, 60))
	assert.ErrorIs(t, err, pointset.ErrNoScore)
}

// TestPatternSpan measures the sounding span of a pattern, which extends
// past the last onset by that note's duration.
func TestPatternSpan(t *testing.T) {
	ps := pointset.FromScore(testScore(), pointset.ChromaticPitch)
	pat := newPattern("A", [][2]float64{{0, 60}, {2, 64}})

	start, end, err := ps.PatternSpan(pat)
	require.NoError(t, err)
	assert.Equal(t, 0.0, start)
	assert.Equal(t, 4.0, end, "the E4 at onset 2 sounds for two beats")

	_, _, err = ps.PatternSpan(newPattern("empty", nil))
	assert.ErrorIs(t, err, pointset.ErrEmptyPattern)
}

// TestMeasureRange returns 1-based measure numbers covering the pattern.
func TestMeasureRange(t *testing.T) {
	ps := pointset.FromScore(testScore(), pointset.ChromaticPitch)

	first, last, err := ps.MeasureRange(newPattern("A", [][2]float64{{-1, 55}}))
	require.NoError(t, err)
	assert.Equal(t, 1, first, "the pickup is measure 1")
	assert.Equal(t, 1, last)

	first, last, err = ps.MeasureRange(newPattern("B", [][2]float64{{0, 60}, {6, 67}}))
	require.NoError(t, err)
	assert.Equal(t, 2, first)
	assert.Equal(t, 3, last)
}

// TestScoreRegion extracts matching notes over whole measures and applies
// the boundary policy to straddling notes.
func TestScoreRegion(t *testing.T) {
	ps := pointset.FromScore(testScore(), pointset.ChromaticPitch)
	pat := newPattern("A", [][2]float64{{0, 60}, {2, 64}})

	region, err := ps.ScoreRegion(pat, pointset.BoundariesInclude)
	require.NoError(t, err)
	require.Len(t, region.Parts, 1)
	require.Len(t, region.Parts[0].Measures, 1, "the pattern touches only measure 2")
	require.Len(t, region.Parts[0].Measures[0].Notes, 2, "only matching notes are kept")

	_, err = newSet([][2]float64{{0, 60}}).ScoreRegion(pat, pointset.BoundariesInclude)
	assert.ErrorIs(t, err, pointset.ErrNoScore)
}

// TestScoreRegion_Boundaries checks the straddling-note policies on a
// pattern whose span ends while a matched note still sounds.
func TestScoreRegion_Boundaries(t *testing.T) {
	ps := pointset.FromScore(testScore(), pointset.ChromaticPitch)

	// The C4 at onset 0 sounds until 2, so the span ends at 2.
	pat := newPattern("A", [][2]float64{{-1, 55}, {0, 60}})
	_, end, err := ps.PatternSpan(pat)
	require.NoError(t, err)
	require.Equal(t, 2.0, end)

	truncated, err := ps.ScoreRegion(pat, pointset.BoundariesTruncate)
	require.NoError(t, err)
	var total int
	for _, m := range truncated.Parts[0].Measures {
		total += len(m.Notes)
	}
	assert.Equal(t, 2, total, "both notes survive truncation")
}

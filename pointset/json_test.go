package pointset_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motivlab/motiv/pointset"
)

// TestPointSet_JSONRoundTrip serializes a point-set and rebuilds it,
// checking that contents and metadata survive.
func TestPointSet_JSONRoundTrip(t *testing.T) {
	original := newSet([][2]float64{{0, 60}, {1.5, 62}, {2, 64}},
		pointset.WithPieceName("Prelude"),
		pointset.WithID("ps-1"),
		pointset.WithPitchType(pointset.PitchChromatic),
		pointset.WithQuarterLength(2.0),
		pointset.WithMeasureLines([]float64{0, 4}),
		pointset.WithExpandedRepetitions(true),
	)

	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded := new(pointset.PointSet)
	require.NoError(t, json.Unmarshal(data, decoded))

	assert.True(t, original.EqualsInPoints(decoded), "point contents must survive the round trip")
	assert.Equal(t, "Prelude", decoded.PieceName())
	assert.Equal(t, "ps-1", decoded.ID())
	assert.Equal(t, pointset.PitchChromatic, decoded.PitchType())
	assert.Equal(t, 2.0, decoded.QuarterLength())
	assert.Equal(t, []float64{0, 4}, decoded.MeasureLinePositions())
	assert.True(t, decoded.HasExpandedRepetitions())
}

// TestPointSet_JSONShape checks the dictionary form: the representation
// tag, the null pitch type and the [onset, pitch] data rows.
func TestPointSet_JSONShape(t *testing.T) {
	ps := newSet([][2]float64{{1, 60}}, pointset.WithPieceName("A"))

	data, err := json.Marshal(ps)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "point_set", raw["representation"])
	assert.Equal(t, "float", raw["dtype"])
	assert.Nil(t, raw["pitch_type"], "an unknown pitch convention serializes as null")
	assert.Equal(t, []any{[]any{1.0, 60.0}}, raw["data"], "data rows are [onset, pitch] pairs")
}

// TestPointSet_JSONDefaultsQuarterLength verifies that a missing quarter
// length decodes to 1.0.
func TestPointSet_JSONDefaultsQuarterLength(t *testing.T) {
	decoded := new(pointset.PointSet)
	require.NoError(t, json.Unmarshal([]byte(`{"piece_name":"A","dtype":"float","data":[[0,60]]}`), decoded))

	assert.Equal(t, 1.0, decoded.QuarterLength())
}

// TestPointSet_JSONRejectsBadTags verifies loud failures on unsupported
// dtype and pitch type tags.
func TestPointSet_JSONRejectsBadTags(t *testing.T) {
	decoded := new(pointset.PointSet)

	err := json.Unmarshal([]byte(`{"dtype":"complex","data":[]}`), decoded)
	assert.ErrorIs(t, err, pointset.ErrUnsupportedDType)

	err = json.Unmarshal([]byte(`{"dtype":"float","pitch_type":"diatonic","data":[]}`), decoded)
	assert.ErrorIs(t, err, pointset.ErrUnknownPitchType)
}

// TestPattern_JSONRoundTrip serializes a pattern with provenance and
// free-form metadata.
func TestPattern_JSONRoundTrip(t *testing.T) {
	original := pointset.NewPattern([]pointset.Point{
		pointset.NewPoint(0, 60),
		pointset.NewPoint(1, 62),
	}, "A", "Analyst",
		pointset.WithPieceName("Prelude"),
		pointset.WithID("pat-1"),
		pointset.WithPitchType(pointset.PitchMorphetic),
	)
	original.SetAdditionalData(map[string]any{"comment": "opening motif"})

	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded := new(pointset.Pattern)
	require.NoError(t, json.Unmarshal(data, decoded))

	assert.True(t, original.EqualsInPoints(decoded.PointSet))
	assert.Equal(t, "A", decoded.Label())
	assert.Equal(t, "Analyst", decoded.Source())
	assert.Equal(t, "Prelude", decoded.PieceName())
	assert.Equal(t, "pat-1", decoded.ID())
	assert.Equal(t, pointset.PitchMorphetic, decoded.PitchType())
	assert.Equal(t, map[string]any{"comment": "opening motif"}, decoded.AdditionalData())
}

// TestPatternOccurrences_JSONRoundTrip serializes a group and checks that
// decoding propagates the piece name to every member.
func TestPatternOccurrences_JSONRoundTrip(t *testing.T) {
	canonical := pointset.NewPattern([]pointset.Point{pointset.NewPoint(0, 60)}, "A", "Analyst")
	occurrence := pointset.NewPattern([]pointset.Point{pointset.NewPoint(4, 60)}, "A", "Analyst")
	original := pointset.NewPatternOccurrences("Prelude", canonical, []*pointset.Pattern{occurrence})

	data, err := json.Marshal(original)
	require.NoError(t, err)

	decoded := new(pointset.PatternOccurrences)
	require.NoError(t, json.Unmarshal(data, decoded))

	require.Equal(t, 2, decoded.Len())
	assert.Equal(t, "Prelude", decoded.Piece)
	assert.Equal(t, "Prelude", decoded.At(0).PieceName(), "canonical takes the group's piece name")
	assert.Equal(t, "Prelude", decoded.At(1).PieceName(), "occurrences take the group's piece name")
	assert.True(t, canonical.EqualsInPoints(decoded.At(0).PointSet))
	assert.True(t, occurrence.EqualsInPoints(decoded.At(1).PointSet))
}

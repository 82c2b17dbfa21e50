package evaluate_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motivlab/motiv/evaluate"
	"github.com/motivlab/motiv/patternset"
	"github.com/motivlab/motiv/pointset"
)

// points builds a point slice from (onset, pitch) rows.
func points(rows [][2]float64) []pointset.Point {
	out := make([]pointset.Point, len(rows))
	for i, row := range rows {
		out[i] = pointset.NewPoint(row[0], row[1])
	}

	return out
}

// newItem builds one piece with a single two-member pattern group.
func newItem(piece string, base float64) *patternset.Item {
	composition := pointset.New(points([][2]float64{
		{base, 60}, {base + 1, 62}, {base + 2, 64}, {base + 3, 65},
	}), pointset.WithPieceName(piece))

	g := pointset.NewPatternOccurrences(piece,
		pointset.NewPattern(points([][2]float64{{base, 60}, {base + 1, 62}}), "A", "Analyst"),
		[]*pointset.Pattern{
			pointset.NewPattern(points([][2]float64{{base + 2, 64}, {base + 3, 65}}), "A", "Analyst"),
		},
	)

	return &patternset.Item{PointSet: composition, Patterns: []*pointset.PatternOccurrences{g}}
}

func newSet(pieces ...string) *patternset.PatternSet {
	items := make([]*patternset.Item, len(pieces))
	for i, piece := range pieces {
		items[i] = newItem(piece, float64(i))
	}

	return patternset.New(items)
}

// TestEvaluate_IdenticalSets scores a dataset against itself: every metric
// must be exactly 1.0.
func TestEvaluate_IdenticalSets(t *testing.T) {
	gt := newSet("alpha", "beta")
	cand := newSet("alpha", "beta")

	result, err := evaluate.New(gt, evaluate.DefaultOptions()).Evaluate(context.Background(), cand)
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)
	assert.Empty(t, result.ExcludedFromCandidate)
	assert.Empty(t, result.ExcludedFromGroundTruth)
	assert.Empty(t, result.Failed)

	for _, row := range result.Rows {
		assert.Equal(t, 4, row.Points)
		assert.Equal(t, 1, row.Patterns)
		assert.Equal(t, 1, row.GroundTruthPatterns)
		for _, col := range evaluate.MetricColumns() {
			assert.Equal(t, 1.0, row.Metrics[col], "%s of piece %s", col, row.Piece)
		}
	}

	mean := result.Mean()
	assert.Equal(t, evaluate.MeanLabel, mean.Piece)
	for _, col := range evaluate.MetricColumns() {
		assert.Equal(t, 1.0, mean.Metrics[col], "mean of %s", col)
	}
}

// TestEvaluate_RowsSortedByPiece verifies deterministic output order
// regardless of input order.
func TestEvaluate_RowsSortedByPiece(t *testing.T) {
	gt := newSet("delta", "alpha", "charlie")
	cand := newSet("charlie", "delta", "alpha")

	result, err := evaluate.New(gt, evaluate.DefaultOptions()).Evaluate(context.Background(), cand)
	require.NoError(t, err)

	require.Len(t, result.Rows, 3)
	assert.Equal(t, "alpha", result.Rows[0].Piece)
	assert.Equal(t, "charlie", result.Rows[1].Piece)
	assert.Equal(t, "delta", result.Rows[2].Piece)
}

// TestEvaluate_ExcludesOneSidedPieces reports pieces present on only one
// side instead of scoring or dropping them silently.
func TestEvaluate_ExcludesOneSidedPieces(t *testing.T) {
	gt := newSet("shared", "gt-only-b", "gt-only-a")
	cand := newSet("shared", "cand-only")

	result, err := evaluate.New(gt, evaluate.DefaultOptions()).Evaluate(context.Background(), cand)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, "shared", result.Rows[0].Piece)
	assert.Equal(t, []string{"gt-only-a", "gt-only-b"}, result.ExcludedFromCandidate, "sorted")
	assert.Equal(t, []string{"cand-only"}, result.ExcludedFromGroundTruth)
}

// TestEvaluate_SingleWorker exercises the pool with the minimum worker
// count.
func TestEvaluate_SingleWorker(t *testing.T) {
	gt := newSet("alpha", "beta", "gamma")

	result, err := evaluate.New(gt, evaluate.Options{Workers: 1}).Evaluate(context.Background(), gt)
	require.NoError(t, err)

	require.Len(t, result.Rows, 3)
	for _, row := range result.Rows {
		assert.Equal(t, 1.0, row.Metrics[evaluate.EstFScore])
	}
}

// TestEvaluate_CanceledContext returns the context error.
func TestEvaluate_CanceledContext(t *testing.T) {
	gt := newSet("alpha")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := evaluate.New(gt, evaluate.Options{Workers: 1}).Evaluate(ctx, newSet("alpha"))
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

// TestResult_Mean averages numeric columns only.
func TestResult_Mean(t *testing.T) {
	result := &evaluate.Result{Rows: []evaluate.PieceResult{
		{Piece: "a", Points: 10, Patterns: 2, GroundTruthPatterns: 4,
			Metrics: map[string]float64{evaluate.EstFScore: 1.0}},
		{Piece: "b", Points: 20, Patterns: 4, GroundTruthPatterns: 2,
			Metrics: map[string]float64{evaluate.EstFScore: 0.5}},
	}}

	mean := result.Mean()
	assert.Equal(t, 0.75, mean.Metrics[evaluate.EstFScore])
	assert.Equal(t, 15.0, mean.Metrics[evaluate.ColPoints])
	assert.Equal(t, 3.0, mean.Metrics[evaluate.ColPatterns])
	assert.Equal(t, 3.0, mean.Metrics[evaluate.ColGroundTruth])

	empty := (&evaluate.Result{}).Mean()
	assert.Equal(t, evaluate.MeanLabel, empty.Piece)
	assert.Empty(t, empty.Metrics)
}

// TestResult_WriteCSV renders the header, piece rows and the Mean row.
func TestResult_WriteCSV(t *testing.T) {
	gt := newSet("alpha")
	result, err := evaluate.New(gt, evaluate.DefaultOptions()).Evaluate(context.Background(), newSet("alpha"))
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, result.WriteCSV(&sb))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	require.Len(t, lines, 3, "header, one piece and the Mean row")

	header := strings.Split(lines[0], ",")
	assert.Equal(t, evaluate.ColPiece, header[0])
	assert.Contains(t, lines[0], evaluate.EstFScore)
	assert.Contains(t, lines[0], "P_occ (c=0.75)")
	assert.True(t, strings.HasPrefix(lines[1], "alpha,4,1,1,"))
	assert.True(t, strings.HasPrefix(lines[2], evaluate.MeanLabel+","))
}

// TestOccKey formats threshold-qualified column names.
func TestOccKey(t *testing.T) {
	assert.Equal(t, "P_occ (c=0.75)", evaluate.OccKey(evaluate.OccPrecision, 0.75))
	assert.Equal(t, "F1_occ (c=0.5)", evaluate.OccKey(evaluate.OccFScore, 0.5))
}

// TestOptionsFromEnv applies the worker override and falls back to the
// default otherwise.
func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("MOTIV_EVAL_WORKERS", "3")
	opts, err := evaluate.OptionsFromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Workers)

	t.Setenv("MOTIV_EVAL_WORKERS", "-1")
	opts, err = evaluate.OptionsFromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, evaluate.DefaultWorkers, opts.Workers, "non-positive overrides fall back to the default")
}

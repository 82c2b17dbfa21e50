package evaluate

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// Report column keys. Occurrence-metric keys are threshold-qualified, see
// OccKey.
const (
	ColPiece       = "piece"
	ColPoints      = "N_points"
	ColPatterns    = "N_pattern"
	ColGroundTruth = "N_gt"

	EstPrecision = "P_est"
	EstRecall    = "R_est"
	EstFScore    = "F1_est"

	ThreeLayerPrecision = "P_3L"
	ThreeLayerRecall    = "R_3L"
	ThreeLayerFScore    = "F1_3L"

	OccPrecision = "P_occ"
	OccRecall    = "R_occ"
	OccFScore    = "F1_occ"
)

// OccKey qualifies an occurrence-metric column with its threshold, e.g.
// "P_occ (c=0.75)".
func OccKey(base string, threshold float64) string {
	return fmt.Sprintf("%s (c=%v)", base, threshold)
}

// MeanLabel names the synthetic averaging row of the report.
const MeanLabel = "Mean"

// PieceResult is one evaluated piece: its identifying counts and every
// computed metric value keyed by column.
type PieceResult struct {
	// Piece is the piece name.
	Piece string

	// Points is the size of the candidate's point-set for the piece.
	Points int

	// Patterns is the number of pattern groups in the candidate.
	Patterns int

	// GroundTruthPatterns is the number of pattern groups in the ground
	// truth.
	GroundTruthPatterns int

	// Metrics holds all metric values keyed by report column.
	Metrics map[string]float64
}

// Result is the outcome of one Evaluate call: one row per successfully
// scored piece, sorted by piece name, plus the exclusion and failure
// reports.
type Result struct {
	// Rows holds the per-piece results in ascending piece-name order.
	Rows []PieceResult

	// ExcludedFromCandidate lists ground-truth pieces missing from the
	// candidate set, sorted.
	ExcludedFromCandidate []string

	// ExcludedFromGroundTruth lists candidate pieces missing from the
	// ground truth, sorted.
	ExcludedFromGroundTruth []string

	// Failed maps pieces whose metric computation failed to the first
	// error observed. Failed pieces have no row.
	Failed map[string]error
}

// MetricColumns returns the metric column keys in report order.
func MetricColumns() []string {
	cols := []string{
		EstPrecision, EstRecall, EstFScore,
		ThreeLayerPrecision, ThreeLayerRecall, ThreeLayerFScore,
	}
	for _, c := range occurrenceThresholds {
		cols = append(cols, OccKey(OccPrecision, c), OccKey(OccRecall, c), OccKey(OccFScore, c))
	}

	return cols
}

// Mean returns the synthetic averaging row: the mean of every numeric
// column across all rows. Non-numeric columns (the piece name) are
// excluded. An empty result yields zero means.
func (r *Result) Mean() PieceResult {
	mean := PieceResult{Piece: MeanLabel, Metrics: make(map[string]float64)}
	if len(r.Rows) == 0 {
		return mean
	}

	n := float64(len(r.Rows))
	var points, patterns, gt float64
	for _, row := range r.Rows {
		points += float64(row.Points)
		patterns += float64(row.Patterns)
		gt += float64(row.GroundTruthPatterns)
		for key, v := range row.Metrics {
			mean.Metrics[key] += v
		}
	}
	for key := range mean.Metrics {
		mean.Metrics[key] /= n
	}
	mean.Metrics[ColPoints] = points / n
	mean.Metrics[ColPatterns] = patterns / n
	mean.Metrics[ColGroundTruth] = gt / n

	return mean
}

// WriteCSV writes the report table: a header, one row per piece and the
// trailing Mean row.
func (r *Result) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{ColPiece, ColPoints, ColPatterns, ColGroundTruth}
	header = append(header, MetricColumns()...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("evaluate: writing CSV: %w", err)
	}

	for _, row := range r.Rows {
		record := []string{
			row.Piece,
			strconv.Itoa(row.Points),
			strconv.Itoa(row.Patterns),
			strconv.Itoa(row.GroundTruthPatterns),
		}
		for _, col := range MetricColumns() {
			record = append(record, formatMetric(row.Metrics[col]))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("evaluate: writing CSV: %w", err)
		}
	}

	mean := r.Mean()
	record := []string{
		MeanLabel,
		formatMetric(mean.Metrics[ColPoints]),
		formatMetric(mean.Metrics[ColPatterns]),
		formatMetric(mean.Metrics[ColGroundTruth]),
	}
	for _, col := range MetricColumns() {
		record = append(record, formatMetric(mean.Metrics[col]))
	}
	if err := writer.Write(record); err != nil {
		return fmt.Errorf("evaluate: writing CSV: %w", err)
	}

	writer.Flush()

	return writer.Error()
}

func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

package mirex

import "github.com/motivlab/motiv/pointset"

// ScoreFunc is a pairwise similarity measure between a ground-truth pattern
// and a candidate pattern, in [0, 1].
type ScoreFunc func(gt, cand *pointset.Pattern) float64

// CardinalityScore returns |gt ∩ cand| / max(|gt|, |cand|): 1.0 for
// identical point sets, 0.0 for disjoint ones. Both empty yields 0.0.
func CardinalityScore(gt, cand *pointset.Pattern) float64 {
	larger := gt.Len()
	if cand.Len() > larger {
		larger = cand.Len()
	}
	if larger == 0 {
		return 0
	}

	return float64(gt.IntersectionSize(cand.PointSet)) / float64(larger)
}

// FScore returns the harmonic mean of precision and recall. It is defined
// as exactly 0.0 when either input is 0.0; that is the metric's value in
// this case, not merely a division guard.
func FScore(precision, recall float64) float64 {
	if precision == 0 || recall == 0 {
		return 0
	}

	return 2 * precision * recall / (precision + recall)
}

// ScoreMatrix compares every member of the ground-truth group with every
// member of the candidate group using the given score function
// (CardinalityScore when nil). Row 0 and column 0 hold the canonical
// patterns; later indices are the occurrences.
func ScoreMatrix(gt, cand *pointset.PatternOccurrences, score ScoreFunc) *Matrix {
	if score == nil {
		score = CardinalityScore
	}

	m := NewMatrix(gt.Len(), cand.Len())
	for row := 0; row < gt.Len(); row++ {
		for col := 0; col < cand.Len(); col++ {
			m.Set(row, col, score(gt.At(row), cand.At(col)))
		}
	}

	return m
}

// EstablishmentMatrix compares two lists of pattern groups for one piece.
// Entry (row, col) is the maximum of the full score matrix between
// ground-truth group row and candidate group col: the best-matching
// occurrence pair, regardless of which occurrence matched. Empty lists
// produce an empty matrix.
func EstablishmentMatrix(gt, cand []*pointset.PatternOccurrences) *Matrix {
	m := NewMatrix(len(gt), len(cand))
	for row := range gt {
		for col := range cand {
			m.Set(row, col, ScoreMatrix(gt[row], cand[col], nil).Max())
		}
	}

	return m
}

// EstablishmentPrecision is the mean over columns of the column-wise
// maximum: the best ground-truth match for each candidate group, averaged.
func EstablishmentPrecision(est *Matrix) float64 {
	return mean(est.ColMaxes())
}

// EstablishmentRecall is the mean over rows of the row-wise maximum: the
// best candidate match for each ground-truth group, averaged.
func EstablishmentRecall(est *Matrix) float64 {
	return mean(est.RowMaxes())
}

// EstablishmentF1 is the F-score of establishment precision and recall.
func EstablishmentF1(est *Matrix) float64 {
	return FScore(EstablishmentPrecision(est), EstablishmentRecall(est))
}

// layerOneF1 is the point-level F-score between two individual patterns:
// precision = |∩| / |cand|, recall = |∩| / |gt|.
func layerOneF1(gt, cand *pointset.Pattern) float64 {
	if gt.Len() == 0 || cand.Len() == 0 {
		return 0
	}

	common := float64(gt.IntersectionSize(cand.PointSet))

	return FScore(common/float64(cand.Len()), common/float64(gt.Len()))
}

// layerTwoFScore scores the occurrence-set overlap of two pattern groups:
// the F-score of (mean column-max, mean row-max) over the matrix of
// layer-one F1 values across all occurrence pairs.
func layerTwoFScore(gt, cand *pointset.PatternOccurrences) float64 {
	l1 := ScoreMatrix(gt, cand, layerOneF1)

	return FScore(mean(l1.ColMaxes()), mean(l1.RowMaxes()))
}

// LayerTwoFScoreMatrix compares two lists of pattern groups by
// occurrence-set overlap: entry (row, col) is the layer-two F-score between
// ground-truth group row and candidate group col.
func LayerTwoFScoreMatrix(gt, cand []*pointset.PatternOccurrences) *Matrix {
	m := NewMatrix(len(gt), len(cand))
	for row := range gt {
		for col := range cand {
			m.Set(row, col, layerTwoFScore(gt[row], cand[col]))
		}
	}

	return m
}

// ThreeLayerPrecision aggregates the layer-two matrix like establishment
// precision: mean of the column-wise maxima.
func ThreeLayerPrecision(layerTwo *Matrix) float64 {
	return mean(layerTwo.ColMaxes())
}

// ThreeLayerRecall aggregates the layer-two matrix like establishment
// recall: mean of the row-wise maxima.
func ThreeLayerRecall(layerTwo *Matrix) float64 {
	return mean(layerTwo.RowMaxes())
}

// ThreeLayerFScore is the F-score of three-layer precision and recall.
func ThreeLayerFScore(layerTwo *Matrix) float64 {
	return FScore(ThreeLayerPrecision(layerTwo), ThreeLayerRecall(layerTwo))
}

// OccurrenceIndices returns the (row, col) pairs of pattern groups whose
// establishment score reaches the threshold c. Occurrence metrics are
// restricted to these already-matched group pairs.
func OccurrenceIndices(gt, cand []*pointset.PatternOccurrences, threshold float64) [][2]int {
	est := EstablishmentMatrix(gt, cand)

	var indices [][2]int
	for row := 0; row < est.Rows(); row++ {
		for col := 0; col < est.Cols(); col++ {
			if est.At(row, col) >= threshold {
				indices = append(indices, [2]int{row, col})
			}
		}
	}

	return indices
}

// OccurrencePrecision measures per-occurrence fidelity over the qualifying
// group pairs: for each pair, the mean of the column-wise maxima of the
// plain score matrix between the two groups, assembled into a sparse matrix
// whose column maxima are averaged with zero entries discarded. When no
// pair qualifies, the metric is 0.0.
func OccurrencePrecision(gt, cand []*pointset.PatternOccurrences, indices [][2]int) float64 {
	sparse := NewMatrix(len(gt), len(cand))
	for _, idx := range indices {
		row, col := idx[0], idx[1]
		sparse.Set(row, col, mean(ScoreMatrix(gt[row], cand[col], nil).ColMaxes()))
	}

	return meanNonZero(sparse.ColMaxes())
}

// OccurrenceRecall is the row-wise counterpart of OccurrencePrecision: per
// qualifying pair the mean of the row-wise maxima, aggregated over the
// sparse matrix's row maxima with zero entries discarded.
func OccurrenceRecall(gt, cand []*pointset.PatternOccurrences, indices [][2]int) float64 {
	sparse := NewMatrix(len(gt), len(cand))
	for _, idx := range indices {
		row, col := idx[0], idx[1]
		sparse.Set(row, col, mean(ScoreMatrix(gt[row], cand[col], nil).RowMaxes()))
	}

	return meanNonZero(sparse.RowMaxes())
}

// OccurrenceFScore is the F-score of occurrence precision and recall for
// the given qualifying pairs.
func OccurrenceFScore(gt, cand []*pointset.PatternOccurrences, indices [][2]int) float64 {
	return FScore(OccurrencePrecision(gt, cand, indices), OccurrenceRecall(gt, cand, indices))
}

package evaluate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/motivlab/motiv/mirex"
	"github.com/motivlab/motiv/patternset"
	"github.com/motivlab/motiv/pointset"
)

// Evaluator scores candidate pattern sets against a fixed ground truth.
type Evaluator struct {
	groundTruth *patternset.PatternSet
	workers     int
}

// New returns an Evaluator for the given ground truth. Non-positive worker
// counts fall back to DefaultWorkers.
func New(groundTruth *patternset.PatternSet, opts Options) *Evaluator {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	return &Evaluator{groundTruth: groundTruth, workers: workers}
}

// task is one metric-family computation for one piece.
type task struct {
	piece   string
	compute func() map[string]float64
}

// taskResult carries one task's scores, or the error that stopped it, back
// to the collector.
type taskResult struct {
	piece  string
	scores map[string]float64
	err    error
}

// tasksPerPiece is the number of metric families dispatched per piece:
// establishment, three-layer and one occurrence run per threshold.
const tasksPerPiece = 2 + len(occurrenceThresholds)

// Evaluate scores the candidate set against the evaluator's ground truth.
// Pieces present on only one side are excluded and reported on the Result;
// each common piece is scored by four metric-family tasks on a worker pool
// scoped to this call. A failure in one piece's computation is isolated to
// that piece. Evaluate returns an error only when the context is canceled
// before all pieces have been collected.
func (e *Evaluator) Evaluate(ctx context.Context, candidate *patternset.PatternSet) (*Result, error) {
	common, onlyGT, onlyCand := splitPieces(e.groundTruth.PieceNames(), candidate.PieceNames())
	reportExcluded(onlyGT, onlyCand)

	result := &Result{
		ExcludedFromCandidate:   onlyGT,
		ExcludedFromGroundTruth: onlyCand,
		Failed:                  make(map[string]error),
	}

	// All tasks are queued up front so the pool stays busy across pieces;
	// the buffer makes submission non-blocking.
	tasks := make(chan task, len(common)*tasksPerPiece)
	results := make(chan taskResult, len(common)*tasksPerPiece)

	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tasks {
				results <- runTask(t)
			}
		}()
	}

	for _, piece := range common {
		gtItem, err := e.groundTruth.ItemByPieceName(piece)
		if err != nil {
			return nil, err
		}
		candItem, err := candidate.ItemByPieceName(piece)
		if err != nil {
			return nil, err
		}
		submitPiece(tasks, piece, gtItem.Patterns, candItem.Patterns)
	}
	close(tasks)

	collected := make(map[string]map[string]float64, len(common))
	pending := len(common) * tasksPerPiece
	for pending > 0 {
		select {
		case <-ctx.Done():
			// The results buffer holds every outstanding send, so the
			// workers drain the task queue and exit on their own.
			wg.Wait()

			return nil, ctx.Err()
		case res := <-results:
			pending--
			if res.err != nil {
				if _, failed := result.Failed[res.piece]; !failed {
					result.Failed[res.piece] = res.err
				}
				continue
			}
			if collected[res.piece] == nil {
				collected[res.piece] = make(map[string]float64)
			}
			for key, v := range res.scores {
				collected[res.piece][key] = v
			}
		}
	}
	wg.Wait()

	for _, piece := range common {
		if _, failed := result.Failed[piece]; failed {
			continue
		}

		points, _ := candidate.CompositionSize(piece)
		patternCount, _ := candidate.PatternCount(piece)
		gtCount, _ := e.groundTruth.PatternCount(piece)
		result.Rows = append(result.Rows, PieceResult{
			Piece:               piece,
			Points:              points,
			Patterns:            patternCount,
			GroundTruthPatterns: gtCount,
			Metrics:             collected[piece],
		})
	}
	sort.Slice(result.Rows, func(i, j int) bool { return result.Rows[i].Piece < result.Rows[j].Piece })

	return result, nil
}

// runTask executes one computation, converting panics into per-piece
// errors so a bad input cannot take down the whole evaluation.
func runTask(t task) (res taskResult) {
	res.piece = t.piece
	defer func() {
		if r := recover(); r != nil {
			res.scores = nil
			res.err = fmt.Errorf("evaluate: piece %q: panic: %v", t.piece, r)
		}
	}()

	res.scores = t.compute()

	return res
}

// submitPiece queues the four metric-family computations of one piece.
func submitPiece(tasks chan<- task, piece string, gt, cand []*pointset.PatternOccurrences) {
	tasks <- task{piece: piece, compute: func() map[string]float64 {
		return establishmentScores(gt, cand)
	}}
	tasks <- task{piece: piece, compute: func() map[string]float64 {
		return threeLayerScores(gt, cand)
	}}
	for _, threshold := range occurrenceThresholds {
		c := threshold
		tasks <- task{piece: piece, compute: func() map[string]float64 {
			return occurrenceScores(gt, cand, c)
		}}
	}
}

func establishmentScores(gt, cand []*pointset.PatternOccurrences) map[string]float64 {
	est := mirex.EstablishmentMatrix(gt, cand)
	precision := mirex.EstablishmentPrecision(est)
	recall := mirex.EstablishmentRecall(est)

	return map[string]float64{
		EstPrecision: precision,
		EstRecall:    recall,
		EstFScore:    mirex.FScore(precision, recall),
	}
}

func threeLayerScores(gt, cand []*pointset.PatternOccurrences) map[string]float64 {
	layerTwo := mirex.LayerTwoFScoreMatrix(gt, cand)
	precision := mirex.ThreeLayerPrecision(layerTwo)
	recall := mirex.ThreeLayerRecall(layerTwo)

	return map[string]float64{
		ThreeLayerPrecision: precision,
		ThreeLayerRecall:    recall,
		ThreeLayerFScore:    mirex.FScore(precision, recall),
	}
}

func occurrenceScores(gt, cand []*pointset.PatternOccurrences, threshold float64) map[string]float64 {
	indices := mirex.OccurrenceIndices(gt, cand, threshold)
	precision := mirex.OccurrencePrecision(gt, cand, indices)
	recall := mirex.OccurrenceRecall(gt, cand, indices)

	return map[string]float64{
		OccKey(OccPrecision, threshold): precision,
		OccKey(OccRecall, threshold):    recall,
		OccKey(OccFScore, threshold):    mirex.FScore(precision, recall),
	}
}

// splitPieces partitions two sorted name lists into their intersection and
// the two one-sided remainders.
func splitPieces(gt, cand []string) (common, onlyGT, onlyCand []string) {
	inGT := make(map[string]bool, len(gt))
	for _, name := range gt {
		inGT[name] = true
	}
	inCand := make(map[string]bool, len(cand))
	for _, name := range cand {
		inCand[name] = true
	}

	for _, name := range gt {
		if inCand[name] {
			common = append(common, name)
		} else {
			onlyGT = append(onlyGT, name)
		}
	}
	for _, name := range cand {
		if !inGT[name] {
			onlyCand = append(onlyCand, name)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyGT)
	sort.Strings(onlyCand)

	return common, onlyGT, onlyCand
}

// reportExcluded logs pieces that cannot be scored because they are present
// on one side only.
func reportExcluded(onlyGT, onlyCand []string) {
	if len(onlyGT) > 0 {
		slog.Warn("ground-truth pieces not found in evaluated dataset",
			slog.Any("pieces", onlyGT))
	}
	if len(onlyCand) > 0 {
		slog.Warn("evaluated dataset pieces not found in ground truth",
			slog.Any("pieces", onlyCand))
	}
}

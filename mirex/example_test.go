package mirex_test

import (
	"fmt"

	"github.com/motivlab/motiv/mirex"
	"github.com/motivlab/motiv/pointset"
)

// ExampleCardinalityScore compares two hand-made patterns sharing two of
// their points.
func ExampleCardinalityScore() {
	gt := pointset.NewPattern([]pointset.Point{
		pointset.NewPoint(1, 2),
		pointset.NewPoint(2, 2),
		pointset.NewPoint(3, 4),
	}, "A", "Analyst")
	cand := pointset.NewPattern([]pointset.Point{
		pointset.NewPoint(1.5, 2),
		pointset.NewPoint(2, 2),
		pointset.NewPoint(3, 4),
		pointset.NewPoint(5, 6),
	}, "B", "Algorithm")

	fmt.Println(mirex.CardinalityScore(gt, cand))
	// Output:
	// 0.5
}

// ExampleEstablishmentF1 scores a candidate group list against a ground
// truth containing the same single group.
func ExampleEstablishmentF1() {
	pattern := pointset.NewPattern([]pointset.Point{
		pointset.NewPoint(0, 60),
		pointset.NewPoint(1, 62),
	}, "A", "Analyst")
	occurrence := pointset.NewPattern([]pointset.Point{
		pointset.NewPoint(4, 60),
		pointset.NewPoint(5, 62),
	}, "A", "Analyst")
	group := pointset.NewPatternOccurrences("piece", pattern, []*pointset.Pattern{occurrence})

	gt := []*pointset.PatternOccurrences{group}
	est := mirex.EstablishmentMatrix(gt, gt)

	fmt.Println(mirex.EstablishmentPrecision(est))
	fmt.Println(mirex.EstablishmentRecall(est))
	fmt.Println(mirex.EstablishmentF1(est))
	// Output:
	// 1
	// 1
	// 1
}

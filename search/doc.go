// Package search finds occurrences of point patterns inside point-sets.
//
// A pattern occurs in a point-set when some translation vector maps every
// point of the pattern onto a point of the set, the geometric notion of
// repetition used in point-set pattern discovery. FindOccurrences
// enumerates all such translations.
//
// ⚙️ Usage:
//
//	occ, err := search.FindOccurrences(query, piece)
//	if err != nil { ... }
//	for _, match := range occ.Occurrences { ... }
//
// Complexity is O(n·m·log n) for a set of n points and a query of m
// points: one candidate translation per set point, each verified by binary
// searches over the sorted set.
package search

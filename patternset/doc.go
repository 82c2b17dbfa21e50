// Package patternset manages datasets of point-set patterns and their
// occurrences, one (point-set, pattern groups) item per piece of music.
//
// 🚀 What is a PatternSet?
//
//	The unit of evaluation for repeated-pattern discovery: for every piece,
//	the piece's full point-set plus all annotated (or discovered) pattern
//	groups. Ground truth and algorithm output are both PatternSets, which
//	the evaluate package compares piece by piece.
//
// ✨ Bookkeeping guarantees:
//   - O(1) id-based lookup of point-sets, patterns and the group owning a
//     pattern; id misses fail loudly with not-found errors.
//   - Value-based containment through a content multiset: two structurally
//     distinct patterns with identical point content are both counted and
//     both removable independently, metadata never participates.
//   - AddPatterns / RemovePattern / RemovePatternOccurrences keep every
//     index and the multiset consistent.
//
// ⚙️ Loading:
//   - FromDir scans a directory of compositions (.csv point-sets, .mid/
//     .midi scores) and .json pattern files; pieces without patterns and
//     patterns without pieces are excluded and logged, never fatal.
//   - LoadJKUPDD loads the JKU Patterns Development Database corpus.
//   - ReadJSON / WriteJSON round-trip a whole PatternSet losslessly.
package patternset

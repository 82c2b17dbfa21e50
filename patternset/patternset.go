package patternset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/motivlab/motiv/pointset"
)

// Item pairs one piece's point-set with all pattern groups annotated for it.
type Item struct {
	// PointSet is the full point-set of the piece.
	PointSet *pointset.PointSet

	// Patterns holds all pattern groups of the piece.
	Patterns []*pointset.PatternOccurrences
}

// PatternSet is a dataset of point-set patterns and their occurrences, one
// Item per piece. It maintains id indices for point-sets, patterns and
// owning groups, a name index for pieces, and a value-keyed content
// multiset supporting metadata-insensitive containment tests.
type PatternSet struct {
	items []*Item

	pointSets   map[string]*pointset.PointSet           // point-set id -> point-set
	patterns    map[string]*pointset.Pattern            // pattern id -> pattern
	occurrences map[string]*pointset.PatternOccurrences // pattern id -> owning group
	byName      map[string]*Item                        // piece name -> item

	// contents counts how many times each distinct point content appears.
	// Patterns with equal points occur multiple times in a set, so this is
	// a multiset, keyed by value-equality rather than identity.
	contents map[string]int
}

// New builds a PatternSet from per-piece items. The piece name of every
// member pattern is set to the owning point-set's piece name.
func New(items []*Item) *PatternSet {
	s := &PatternSet{
		items:       items,
		pointSets:   make(map[string]*pointset.PointSet),
		patterns:    make(map[string]*pointset.Pattern),
		occurrences: make(map[string]*pointset.PatternOccurrences),
		byName:      make(map[string]*Item),
		contents:    make(map[string]int),
	}

	for _, item := range items {
		s.addToContents(item.PointSet)
		s.pointSets[item.PointSet.ID()] = item.PointSet
		for _, group := range item.Patterns {
			for _, p := range group.Patterns() {
				p.SetPieceName(item.PointSet.PieceName())
				s.patterns[p.ID()] = p
				s.occurrences[p.ID()] = group
				s.addToContents(p.PointSet)
			}
		}
		s.byName[item.PointSet.PieceName()] = item
	}

	return s
}

// contentKey digests a point-set's value content: the rounded onset and
// pitch of every point, in order. Equal keys mean equal point content.
func contentKey(ps *pointset.PointSet) string {
	var b strings.Builder
	for i := 0; i < ps.Len(); i++ {
		p := ps.At(i)
		b.WriteString(strconv.FormatFloat(p.OnsetTime(), 'g', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Pitch(), 'g', -1, 64))
		b.WriteByte(';')
	}

	return b.String()
}

func (s *PatternSet) addToContents(ps *pointset.PointSet) {
	s.contents[contentKey(ps)]++
}

func (s *PatternSet) removeFromContents(ps *pointset.PointSet) {
	key := contentKey(ps)
	if count, ok := s.contents[key]; ok {
		if count <= 1 {
			delete(s.contents, key)
		} else {
			s.contents[key] = count - 1
		}
	}
}

// Len returns the number of pieces in the set.
func (s *PatternSet) Len() int { return len(s.items) }

// At returns the i-th item.
func (s *PatternSet) At(i int) *Item { return s.items[i] }

// Items returns the items of the set in storage order.
func (s *PatternSet) Items() []*Item { return s.items }

// PieceNames returns the names of all pieces, sorted.
func (s *PatternSet) PieceNames() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Contains reports whether the set holds a point-set or pattern with
// point content equal by value to ps. Metadata and object identity are
// ignored; duplicate values are counted, so every copy must be removed
// before containment turns false.
func (s *PatternSet) Contains(ps *pointset.PointSet) bool {
	return s.contents[contentKey(ps)] > 0
}

// GetPattern returns the pattern with the given id.
func (s *PatternSet) GetPattern(id string) (*pointset.Pattern, error) {
	p, ok := s.patterns[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPatternNotFound, id)
	}

	return p, nil
}

// GetPointSet returns the point-set with the given id.
func (s *PatternSet) GetPointSet(id string) (*pointset.PointSet, error) {
	ps, ok := s.pointSets[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPointSetNotFound, id)
	}

	return ps, nil
}

// GetOccurrences returns the group that owns the pattern with the given id,
// whether the id names the canonical pattern or one of the occurrences.
func (s *PatternSet) GetOccurrences(patternID string) (*pointset.PatternOccurrences, error) {
	group, ok := s.occurrences[patternID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPatternNotFound, patternID)
	}

	return group, nil
}

// ItemByPieceName returns the item of the piece with the given name.
func (s *PatternSet) ItemByPieceName(name string) (*Item, error) {
	item, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPieceNotFound, name)
	}

	return item, nil
}

// PointSetByName returns the point-set of the piece with the given name.
func (s *PatternSet) PointSetByName(name string) (*pointset.PointSet, error) {
	item, err := s.ItemByPieceName(name)
	if err != nil {
		return nil, err
	}

	return item.PointSet, nil
}

// CompositionSize returns the number of points in the named piece. The
// boolean is false when the piece is absent, a softer contract than the
// id-based accessors, kept for reporting call sites that probe pieces
// which may legitimately be missing.
func (s *PatternSet) CompositionSize(pieceName string) (int, bool) {
	item, ok := s.byName[pieceName]
	if !ok {
		return 0, false
	}

	return item.PointSet.Len(), true
}

// PatternCount returns the number of pattern groups annotated for the named
// piece, with the same soft missing-piece contract as CompositionSize.
func (s *PatternSet) PatternCount(pieceName string) (int, bool) {
	item, ok := s.byName[pieceName]
	if !ok {
		return 0, false
	}

	return len(item.Patterns), true
}

// AddOption configures AddPatterns.
type AddOption func(*addConfig)

type addConfig struct {
	pointSetID   string
	setPieceName bool
}

// WithPointSetID associates the added patterns with the point-set carrying
// this id instead of resolving the piece by the pattern's piece name.
func WithPointSetID(id string) AddOption {
	return func(c *addConfig) { c.pointSetID = id }
}

// WithSetPieceName rewrites the piece name of the added patterns to the
// name of the piece they are associated with.
func WithSetPieceName() AddOption {
	return func(c *addConfig) { c.setPieceName = true }
}

// AddPatterns appends a pattern group to the piece it belongs to, resolved
// by the canonical pattern's piece name or, with WithPointSetID, by an
// explicit point-set id. All id indices and the content multiset are
// updated; skipping any of them would break later lookups and removals.
func (s *PatternSet) AddPatterns(group *pointset.PatternOccurrences, opts ...AddOption) error {
	var cfg addConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var item *Item
	if cfg.pointSetID != "" {
		for _, candidate := range s.items {
			if candidate.PointSet.ID() == cfg.pointSetID {
				item = candidate
				break
			}
		}
		if item == nil {
			return fmt.Errorf("%w: %q", ErrPointSetNotFound, cfg.pointSetID)
		}
	} else {
		found, err := s.ItemByPieceName(group.Pattern.PieceName())
		if err != nil {
			return err
		}
		item = found
	}

	if cfg.setPieceName {
		group.SetPiece(item.PointSet.PieceName())
	}

	item.Patterns = append(item.Patterns, group)
	for _, p := range group.Patterns() {
		s.patterns[p.ID()] = p
		s.occurrences[p.ID()] = group
		s.addToContents(p.PointSet)
	}

	return nil
}

// RemovePattern removes the single occurrence pattern with the given id
// from its group's occurrence list. The canonical pattern is never removed
// by this operation; passing its id fails with ErrOccurrenceNotFound. The
// id indices and the content multiset are updated for the removed pattern
// only.
func (s *PatternSet) RemovePattern(patternID string) error {
	group, err := s.GetOccurrences(patternID)
	if err != nil {
		return err
	}

	found := false
	kept := group.Occurrences[:0]
	for _, occ := range group.Occurrences {
		if occ.ID() == patternID {
			found = true
			continue
		}
		kept = append(kept, occ)
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrOccurrenceNotFound, patternID)
	}
	group.Occurrences = kept

	s.removeFromContents(s.patterns[patternID].PointSet)
	delete(s.patterns, patternID)
	delete(s.occurrences, patternID)

	return nil
}

// RemovePatternOccurrences removes the entire group that owns the pattern
// with the given id, canonical pattern and all occurrences alike, from its
// piece's item, clearing the id indices and multiset counts for every
// member.
func (s *PatternSet) RemovePatternOccurrences(patternID string) error {
	group, err := s.GetOccurrences(patternID)
	if err != nil {
		return err
	}

	item, err := s.ItemByPieceName(group.Pattern.PieceName())
	if err != nil {
		return err
	}

	kept := item.Patterns[:0]
	for _, candidate := range item.Patterns {
		if candidate == group {
			continue
		}
		kept = append(kept, candidate)
	}
	item.Patterns = kept

	for _, p := range group.Patterns() {
		s.removeFromContents(p.PointSet)
		delete(s.patterns, p.ID())
		delete(s.occurrences, p.ID())
	}

	return nil
}

// RemoveItem removes the whole item of the named piece: its point-set and
// every pattern group.
func (s *PatternSet) RemoveItem(pieceName string) error {
	item, err := s.ItemByPieceName(pieceName)
	if err != nil {
		return err
	}

	for len(item.Patterns) > 0 {
		if err := s.RemovePatternOccurrences(item.Patterns[0].Pattern.ID()); err != nil {
			return err
		}
	}

	s.removeFromContents(item.PointSet)
	delete(s.pointSets, item.PointSet.ID())
	delete(s.byName, pieceName)

	kept := s.items[:0]
	for _, candidate := range s.items {
		if candidate != item {
			kept = append(kept, candidate)
		}
	}
	s.items = kept

	return nil
}

package patternset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/motivlab/motiv/pointset"
)

// pieceJSON is the serialized form of one piece: its point-set and the
// pattern groups annotated for it.
type pieceJSON struct {
	PointSet *pointset.PointSet `json:"point-set"`
	Patterns json.RawMessage    `json:"patterns"`
}

// MarshalJSON serializes the set as a mapping keyed by piece name. Keys are
// emitted in sorted order, so output is deterministic.
func (s *PatternSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]pieceJSON, len(s.items))
	for _, item := range s.items {
		patterns, err := json.Marshal(item.Patterns)
		if err != nil {
			return nil, err
		}
		out[item.PointSet.PieceName()] = pieceJSON{PointSet: item.PointSet, Patterns: patterns}
	}

	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the set from its mapping form. A piece's
// "patterns" value may be either a list of groups or a single group object;
// both are accepted. Items are ordered by piece name.
func (s *PatternSet) UnmarshalJSON(data []byte) error {
	var raw map[string]pieceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]*Item, 0, len(raw))
	for _, name := range names {
		piece := raw[name]
		groups, err := decodeGroups(piece.Patterns)
		if err != nil {
			return fmt.Errorf("patternset: piece %q: %w", name, err)
		}
		items = append(items, &Item{PointSet: piece.PointSet, Patterns: groups})
	}

	*s = *New(items)

	return nil
}

// decodeGroups accepts either a JSON array of pattern-occurrence objects or
// a single bare object.
func decodeGroups(raw json.RawMessage) ([]*pointset.PatternOccurrences, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var groups []*pointset.PatternOccurrences
		if err := json.Unmarshal(trimmed, &groups); err != nil {
			return nil, err
		}

		return groups, nil
	}

	single := new(pointset.PatternOccurrences)
	if err := json.Unmarshal(trimmed, single); err != nil {
		return nil, err
	}

	return []*pointset.PatternOccurrences{single}, nil
}

// WriteJSON writes the pattern set to a JSON file.
func WriteJSON(s *PatternSet, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("patternset: encoding: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("patternset: writing %q: %w", path, err)
	}

	return nil
}

// ReadJSON reads a pattern set from a JSON file.
func ReadJSON(path string) (*PatternSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("patternset: reading %q: %w", path, err)
	}

	s := new(PatternSet)
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("patternset: decoding %q: %w", path, err)
	}

	return s, nil
}

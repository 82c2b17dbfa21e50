package patternset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/motivlab/motiv/pointset"
	"github.com/motivlab/motiv/score"
)

// DirOption configures directory loading.
type DirOption func(*dirConfig)

type dirConfig struct {
	extractor    pointset.PitchExtractor
	includeGrace bool
}

// WithPitchExtractor selects the pitch numbering used when converting MIDI
// scores to point-sets (ChromaticPitch by default).
func WithPitchExtractor(ext pointset.PitchExtractor) DirOption {
	return func(c *dirConfig) { c.extractor = ext }
}

// WithGraceNotesIncluded includes grace notes when converting scores.
func WithGraceNotesIncluded() DirOption {
	return func(c *dirConfig) { c.includeGrace = true }
}

// FromDir builds a PatternSet from the files under the given directory
// tree. CSV files are read as point-set compositions named after the file,
// .mid/.midi files as scores converted to point-sets, and JSON files as
// pattern-occurrence annotations referencing compositions by piece name.
//
// A composition with no annotated patterns, and patterns referencing a
// missing composition, are excluded from the result and logged: visible
// data loss, not a failure.
func FromDir(path string, opts ...DirOption) (*PatternSet, error) {
	cfg := dirConfig{extractor: pointset.ChromaticPitch}
	for _, opt := range opts {
		opt(&cfg)
	}

	compositions := make(map[string]*pointset.PointSet)
	patterns := make(map[string][]*pointset.PatternOccurrences)

	err := filepath.WalkDir(path, func(file string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return walkErr
		}

		switch strings.ToLower(filepath.Ext(file)) {
		case ".csv":
			piece := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			ps, err := pointset.ReadCSVFile(file)
			if err != nil {
				return err
			}
			ps.SetPieceName(piece)
			compositions[piece] = ps
		case ".mid", ".midi":
			sc, err := score.FromSMF(file)
			if err != nil {
				return err
			}
			ps := pointset.FromScore(sc, cfg.extractor, scoreOptions(cfg)...)
			if ps.PieceName() == "" {
				ps.SetPieceName(strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)))
			}
			compositions[ps.PieceName()] = ps
		case ".json":
			groups, err := readPatternsFile(file)
			if err != nil {
				return err
			}
			for _, group := range groups {
				patterns[group.Piece] = append(patterns[group.Piece], group)
			}
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("patternset: scanning %q: %w", path, err)
	}

	names := make([]string, 0, len(compositions))
	for name := range compositions {
		names = append(names, name)
	}
	sort.Strings(names)

	var items []*Item
	for _, name := range names {
		groups, ok := patterns[name]
		if !ok {
			slog.Warn("no patterns for composition, excluded", slog.String("piece", name))
			continue
		}
		items = append(items, &Item{PointSet: compositions[name], Patterns: groups})
	}
	for name := range patterns {
		if _, ok := compositions[name]; !ok {
			slog.Warn("patterns exist but piece is missing", slog.String("piece", name))
		}
	}

	return New(items), nil
}

func scoreOptions(cfg dirConfig) []pointset.ScoreOption {
	var opts []pointset.ScoreOption
	if cfg.includeGrace {
		opts = append(opts, pointset.WithGraceNotes())
	}

	return opts
}

// readPatternsFile reads one pattern-annotation JSON file holding either a
// single pattern-occurrences object or a list of them.
func readPatternsFile(path string) ([]*pointset.PatternOccurrences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var groups []*pointset.PatternOccurrences
		if err := json.Unmarshal(trimmed, &groups); err != nil {
			return nil, fmt.Errorf("decoding %q: %w", path, err)
		}

		return groups, nil
	}

	single := new(pointset.PatternOccurrences)
	if err := json.Unmarshal(trimmed, single); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	return []*pointset.PatternOccurrences{single}, nil
}

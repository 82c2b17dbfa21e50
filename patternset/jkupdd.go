package patternset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/motivlab/motiv/pointset"
)

// Sub-corpora of the JKU Patterns Development Database.
const (
	CorpusPolyphonic = "polyphonic"
	CorpusMonophonic = "monophonic"
)

// JKUOption configures JKU-PDD loading.
type JKUOption func(*jkuConfig)

type jkuConfig struct {
	corpora   []string
	pitchType pointset.PitchType
}

// WithCorpora selects which sub-corpora to load; both by default.
func WithCorpora(corpora ...string) JKUOption {
	return func(c *jkuConfig) { c.corpora = corpora }
}

// WithJKUPitchType selects the pitch numbering column of the corpus CSV
// files: chromatic (default) or morphetic.
func WithJKUPitchType(t pointset.PitchType) JKUOption {
	return func(c *jkuConfig) { c.pitchType = t }
}

// LoadJKUPDD builds a PatternSet from an extracted JKU-PDD directory. Each
// piece directory holds the composition as CSV (onset, chromatic pitch,
// morphetic pitch columns) and its annotated patterns under
// repeatedPatterns/<analyst>/<label>/occurrences/csv, where the first
// occurrence file is the prototypical version of the pattern.
func LoadJKUPDD(path string, opts ...JKUOption) (*PatternSet, error) {
	cfg := jkuConfig{
		corpora:   []string{CorpusPolyphonic, CorpusMonophonic},
		pitchType: pointset.PitchChromatic,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	pitchCol := 1
	switch cfg.pitchType {
	case pointset.PitchChromatic:
	case pointset.PitchMorphetic:
		pitchCol = 2
	default:
		return nil, fmt.Errorf("%w, was %q", ErrBadCorpus, cfg.pitchType)
	}
	for _, corpus := range cfg.corpora {
		if corpus != CorpusPolyphonic && corpus != CorpusMonophonic {
			return nil, fmt.Errorf("%w, was %q", ErrBadCorpus, corpus)
		}
	}

	dataPaths, err := listCorpusDirs(path, cfg.corpora)
	if err != nil {
		return nil, err
	}

	var items []*Item
	for _, dataPath := range dataPaths {
		item, err := loadJKUPiece(dataPath, cfg.pitchType, pitchCol)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return New(items), nil
}

// listCorpusDirs finds every directory named after a selected sub-corpus.
func listCorpusDirs(base string, corpora []string) ([]string, error) {
	selected := make(map[string]bool, len(corpora))
	for _, c := range corpora {
		selected[c] = true
	}

	var paths []string
	err := filepath.WalkDir(base, func(p string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() && selected[d.Name()] {
			paths = append(paths, p)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("patternset: scanning JKU-PDD %q: %w", base, err)
	}
	sort.Strings(paths)

	return paths, nil
}

func loadJKUPiece(dataPath string, pitchType pointset.PitchType, pitchCol int) (*Item, error) {
	composition, err := readFirstCSVArray(filepath.Join(dataPath, "csv"))
	if err != nil {
		return nil, err
	}

	parent := filepath.Base(filepath.Dir(dataPath))
	piece := parent + "_" + filepath.Base(dataPath)

	patternsPath := filepath.Join(dataPath, "repeatedPatterns")
	analysts, err := subdirNames(patternsPath)
	if err != nil {
		return nil, err
	}

	// The Barlow and Morgenstern annotations only cover the monophonic
	// versions, so they are excluded from the polyphonic corpus.
	if strings.Contains(dataPath, CorpusPolyphonic) {
		filtered := analysts[:0]
		for _, a := range analysts {
			if a != "barlowAndMorgenstern" {
				filtered = append(filtered, a)
			}
		}
		analysts = filtered
	}

	var groups []*pointset.PatternOccurrences
	for _, analyst := range analysts {
		analystPath := filepath.Join(patternsPath, analyst)
		labels, err := subdirNames(analystPath)
		if err != nil {
			return nil, err
		}
		for _, label := range labels {
			group, err := loadJKUPattern(filepath.Join(analystPath, label), piece, label, analyst, pitchType, composition)
			if err != nil {
				return nil, err
			}
			groups = append(groups, group)
		}
	}

	points := make([]pointset.Point, len(composition))
	for i, row := range composition {
		points[i] = pointset.NewPoint(row[0], row[pitchCol])
	}

	ps := pointset.New(points, pointset.WithPieceName(piece), pointset.WithPitchType(pitchType))

	return &Item{PointSet: ps, Patterns: groups}, nil
}

// loadJKUPattern reads one pattern's occurrence CSV files. The first file
// in name order is the prototypical version of the pattern.
func loadJKUPattern(labelPath, piece, label, analyst string, pitchType pointset.PitchType, composition [][]float64) (*pointset.PatternOccurrences, error) {
	occDir := filepath.Join(labelPath, "occurrences", "csv")
	entries, err := os.ReadDir(occDir)
	if err != nil {
		return nil, fmt.Errorf("patternset: reading JKU-PDD occurrences %q: %w", occDir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".csv") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	if len(files) == 0 {
		return nil, fmt.Errorf("patternset: no occurrence files under %q", occDir)
	}

	var patterns []*pointset.Pattern
	for _, file := range files {
		array, err := readCSVArray(filepath.Join(occDir, file))
		if err != nil {
			return nil, err
		}
		if pitchType == pointset.PitchMorphetic {
			// Occurrence files carry chromatic pitches; match the pattern
			// points against the composition to find the morphetic numbers.
			array = chromaticToMorphetic(array, composition)
		}

		points := make([]pointset.Point, len(array))
		for i, row := range array {
			points[i] = pointset.NewPoint(row[0], row[1])
		}
		patterns = append(patterns, pointset.NewPattern(points, label, analyst,
			pointset.WithPieceName(piece), pointset.WithPitchType(pitchType)))
	}

	return pointset.NewPatternOccurrences(piece, patterns[0], patterns[1:]), nil
}

// chromaticToMorphetic maps a pattern's (onset, chromatic pitch) rows to
// (onset, morphetic pitch) by intersecting with the composition rows. Both
// inputs are in ascending lexicographic order, so a single merge scan
// suffices.
func chromaticToMorphetic(pattern, composition [][]float64) [][]float64 {
	var out [][]float64
	p, c := 0, 0
	for p < len(pattern) && c < len(composition) {
		pr, cr := pattern[p], composition[c]
		switch {
		case pr[0] == cr[0] && pr[1] == cr[1]:
			out = append(out, []float64{cr[0], cr[2]})
			p++
			c++
		case pr[0] < cr[0] || (pr[0] == cr[0] && pr[1] < cr[1]):
			p++
		default:
			c++
		}
	}

	return out
}

func subdirNames(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("patternset: reading JKU-PDD directory %q: %w", path, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

// readFirstCSVArray reads the first CSV file in a directory as a numeric
// array.
func readFirstCSVArray(dir string) ([][]float64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("patternset: reading JKU-PDD directory %q: %w", dir, err)
	}

	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".csv") {
			return readCSVArray(filepath.Join(dir, e.Name()))
		}
	}

	return nil, fmt.Errorf("patternset: no CSV file under %q", dir)
}

// readCSVArray reads a headerless CSV file into float64 rows.
func readCSVArray(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("patternset: opening %q: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("patternset: reading %q: %w", path, err)
	}

	rows := make([][]float64, 0, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, field := range record {
			if row[j], err = strconv.ParseFloat(strings.TrimSpace(field), 64); err != nil {
				return nil, fmt.Errorf("patternset: %q record %d: %w", path, i+1, err)
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

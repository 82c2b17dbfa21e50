package pointset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOption configures CSV reading.
type CSVOption func(*csvConfig)

type csvConfig struct {
	onsetColumn int
	pitchColumn int
	skipRows    int
	comma       rune
}

// WithOnsetColumn selects the column holding onset values (default 0).
func WithOnsetColumn(col int) CSVOption {
	return func(c *csvConfig) { c.onsetColumn = col }
}

// WithPitchColumn selects the column holding pitch values (default 1).
func WithPitchColumn(col int) CSVOption {
	return func(c *csvConfig) { c.pitchColumn = col }
}

// WithSkipRows skips the first n rows, e.g. a header line.
func WithSkipRows(n int) CSVOption {
	return func(c *csvConfig) { c.skipRows = n }
}

// WithComma sets the field delimiter (default ',').
func WithComma(comma rune) CSVOption {
	return func(c *csvConfig) { c.comma = comma }
}

// ReadCSV reads a point-set from CSV data. Each record contributes one
// point; onset and pitch columns are selectable through options. Extra
// columns are ignored.
func ReadCSV(r io.Reader, opts ...CSVOption) (*PointSet, error) {
	cfg := csvConfig{onsetColumn: 0, pitchColumn: 1, comma: ','}
	for _, opt := range opts {
		opt(&cfg)
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.comma
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("pointset: reading CSV: %w", err)
	}
	if cfg.skipRows > 0 && cfg.skipRows <= len(records) {
		records = records[cfg.skipRows:]
	}

	points := make([]Point, 0, len(records))
	for i, record := range records {
		highest := cfg.onsetColumn
		if cfg.pitchColumn > highest {
			highest = cfg.pitchColumn
		}
		if len(record) <= highest {
			return nil, fmt.Errorf("pointset: CSV record %d has %d fields, need %d", i+1, len(record), highest+1)
		}

		onset, err := strconv.ParseFloat(strings.TrimSpace(record[cfg.onsetColumn]), 64)
		if err != nil {
			return nil, fmt.Errorf("pointset: CSV record %d onset: %w", i+1, err)
		}
		pitch, err := strconv.ParseFloat(strings.TrimSpace(record[cfg.pitchColumn]), 64)
		if err != nil {
			return nil, fmt.Errorf("pointset: CSV record %d pitch: %w", i+1, err)
		}

		points = append(points, NewPoint(onset, pitch))
	}

	return New(points), nil
}

// ReadCSVFile reads a point-set from a CSV file.
func ReadCSVFile(path string, opts ...CSVOption) (*PointSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointset: opening CSV %q: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f, opts...)
}

// WriteCSV writes the point-set as CSV rows of (onset, pitch) with the
// given number of decimal places.
func WriteCSV(w io.Writer, ps *PointSet, decimals int) error {
	writer := csv.NewWriter(w)
	for i := 0; i < ps.Len(); i++ {
		p := ps.At(i)
		record := []string{
			strconv.FormatFloat(p.OnsetTime(), 'f', decimals, 64),
			strconv.FormatFloat(p.Pitch(), 'f', decimals, 64),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("pointset: writing CSV: %w", err)
		}
	}
	writer.Flush()

	return writer.Error()
}

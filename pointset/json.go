package pointset

import "encoding/json"

// representationTag is the fixed value of the "representation" field in all
// serialized point-set forms.
const representationTag = "point_set"

type pointSetJSON struct {
	PieceName       string      `json:"piece_name"`
	DType           string      `json:"dtype"`
	Representation  string      `json:"representation"`
	PitchType       *string     `json:"pitch_type"`
	QuarterLength   float64     `json:"quarter_length"`
	MeasureLines    []float64   `json:"measure_line_positions"`
	ID              string      `json:"id"`
	HasExpandedReps bool        `json:"has_expanded_repetitions"`
	Data            [][]float64 `json:"data"`
}

type patternJSON struct {
	Label          string         `json:"label"`
	Source         string         `json:"source"`
	Representation string         `json:"representation"`
	PitchType      *string        `json:"pitch_type"`
	DType          string         `json:"dtype"`
	ID             string         `json:"id"`
	PieceName      string         `json:"piece_name"`
	Data           [][]float64    `json:"data"`
	AdditionalData map[string]any `json:"additional_data"`
}

type patternOccurrencesJSON struct {
	Piece       string            `json:"piece"`
	Pattern     json.RawMessage   `json:"pattern"`
	Occurrences []json.RawMessage `json:"occurrences"`
}

// dataRows serializes the points as [onset, pitch] pairs, rounded values
// only.
func dataRows(ps *PointSet) [][]float64 {
	rows := make([][]float64, ps.Len())
	for i, p := range ps.points {
		rows[i] = []float64{p.OnsetTime(), p.Pitch()}
	}

	return rows
}

func dataPoints(rows [][]float64) []Point {
	points := make([]Point, 0, len(rows))
	for _, row := range rows {
		if len(row) >= 2 {
			points = append(points, NewPoint(row[0], row[1]))
		}
	}

	return points
}

func pitchTypeTag(t PitchType) *string {
	if t == PitchUnknown {
		return nil
	}
	s := string(t)

	return &s
}

// MarshalJSON serializes the point-set in its dictionary form. Only rounded
// onset values are written.
func (ps *PointSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointSetJSON{
		PieceName:       ps.pieceName,
		DType:           ps.dtype.String(),
		Representation:  representationTag,
		PitchType:       pitchTypeTag(ps.pitchType),
		QuarterLength:   ps.quarterLength,
		MeasureLines:    ps.measureLines,
		ID:              ps.id,
		HasExpandedReps: ps.expandedReps,
		Data:            dataRows(ps),
	})
}

// UnmarshalJSON rebuilds a point-set from its dictionary form. Unsupported
// dtype or pitch type tags fail loudly.
func (ps *PointSet) UnmarshalJSON(data []byte) error {
	var aux pointSetJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	dtype, err := ParseDType(aux.DType)
	if err != nil {
		return err
	}
	pitchType := PitchUnknown
	if aux.PitchType != nil {
		if pitchType, err = ParsePitchType(*aux.PitchType); err != nil {
			return err
		}
	}
	quarterLength := aux.QuarterLength
	if quarterLength == 0 {
		quarterLength = 1.0
	}

	*ps = *New(dataPoints(aux.Data),
		WithPieceName(aux.PieceName),
		WithDType(dtype),
		WithPitchType(pitchType),
		WithQuarterLength(quarterLength),
		WithMeasureLines(aux.MeasureLines),
		WithID(aux.ID),
		WithExpandedRepetitions(aux.HasExpandedReps),
	)

	return nil
}

// MarshalJSON serializes the pattern in its dictionary form.
func (p *Pattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(patternJSON{
		Label:          p.label,
		Source:         p.source,
		Representation: representationTag,
		PitchType:      pitchTypeTag(p.pitchType),
		DType:          p.dtype.String(),
		ID:             p.id,
		PieceName:      p.pieceName,
		Data:           dataRows(p.PointSet),
		AdditionalData: p.additional,
	})
}

// UnmarshalJSON rebuilds a pattern from its dictionary form.
func (p *Pattern) UnmarshalJSON(data []byte) error {
	var aux patternJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	dtype, err := ParseDType(aux.DType)
	if err != nil {
		return err
	}
	pitchType := PitchUnknown
	if aux.PitchType != nil {
		if pitchType, err = ParsePitchType(*aux.PitchType); err != nil {
			return err
		}
	}

	*p = Pattern{
		PointSet: New(dataPoints(aux.Data),
			WithPieceName(aux.PieceName),
			WithDType(dtype),
			WithPitchType(pitchType),
			WithID(aux.ID),
		),
		label:      aux.Label,
		source:     aux.Source,
		additional: aux.AdditionalData,
	}

	return nil
}

// MarshalJSON serializes the group as its piece name, canonical pattern and
// occurrence list.
func (po *PatternOccurrences) MarshalJSON() ([]byte, error) {
	pattern, err := json.Marshal(po.Pattern)
	if err != nil {
		return nil, err
	}

	occurrences := make([]json.RawMessage, len(po.Occurrences))
	for i, occ := range po.Occurrences {
		if occurrences[i], err = json.Marshal(occ); err != nil {
			return nil, err
		}
	}

	return json.Marshal(patternOccurrencesJSON{Piece: po.Piece, Pattern: pattern, Occurrences: occurrences})
}

// UnmarshalJSON rebuilds the group and propagates the piece name to every
// member pattern.
func (po *PatternOccurrences) UnmarshalJSON(data []byte) error {
	var aux patternOccurrencesJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	pattern := new(Pattern)
	if err := json.Unmarshal(aux.Pattern, pattern); err != nil {
		return err
	}

	occurrences := make([]*Pattern, len(aux.Occurrences))
	for i, raw := range aux.Occurrences {
		occurrences[i] = new(Pattern)
		if err := json.Unmarshal(raw, occurrences[i]); err != nil {
			return err
		}
	}

	*po = PatternOccurrences{Piece: aux.Piece, Pattern: pattern, Occurrences: occurrences}
	po.SetPiece(aux.Piece)

	return nil
}

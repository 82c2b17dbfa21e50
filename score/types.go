package score

// TieType classifies how a note participates in a tie chain.
// Only TieNone and TieStart notes are sounding onsets; continuations and
// stops prolong a previous onset.
type TieType int

const (
	// TieNone marks a note that is not tied at all.
	TieNone TieType = iota

	// TieStart marks the first note of a tie chain (an onset).
	TieStart

	// TieContinue marks a note tied on both sides (not an onset).
	TieContinue

	// TieStop marks the final note of a tie chain (not an onset).
	TieStop
)

// IsOnset reports whether a note with this tie classification produces a
// sounding onset.
func (t TieType) IsOnset() bool {
	return t == TieNone || t == TieStart
}

// Step indices follow the diatonic convention C=0, D=1, E=2, F=3, G=4,
// A=5, B=6 used by morphetic pitch numbering.
const (
	StepC = iota
	StepD
	StepE
	StepF
	StepG
	StepA
	StepB
)

// semitones of each diatonic step above C.
var stepSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// Pitch is a spelled pitch: diatonic step, chromatic alteration and octave.
// Octave follows scientific pitch notation, so C4 is middle C.
type Pitch struct {
	// Step is the diatonic step index (StepC..StepB).
	Step int

	// Alter is the chromatic alteration in semitones (+1 sharp, -1 flat).
	Alter int

	// Octave is the scientific octave number.
	Octave int
}

// MIDI returns the MIDI note number of the pitch (C4 = 60).
func (p Pitch) MIDI() int {
	return (p.Octave+1)*12 + stepSemitones[p.Step] + p.Alter
}

// Note is a single notated note event within a measure.
type Note struct {
	// Offset is the note's onset position in quarter notes, relative to the
	// start of the containing measure.
	Offset float64

	// Duration is the sounding length in quarter notes.
	Duration float64

	// Pitch is the spelled pitch of the note.
	Pitch Pitch

	// Tie classifies the note's role in a tie chain.
	Tie TieType

	// Grace marks grace notes, which carry no metrical duration.
	Grace bool
}

// Measure is one measure of one part.
type Measure struct {
	// Length is the measure's notated length in quarter notes.
	Length float64

	// Notes holds the note events of the measure. Chords appear as multiple
	// notes sharing the same Offset.
	Notes []Note
}

// Part is a single staff/voice line of a score.
type Part struct {
	// Name is the part's display name, may be empty.
	Name string

	// Measures holds the part's measures in order.
	Measures []Measure
}

// Score is a complete piece of notated music.
type Score struct {
	// Title is the piece title, may be empty.
	Title string

	// PickupLength is the length of an anacrusis in quarter notes. When
	// non-zero, the first measure's effective start time is shifted
	// negatively by this amount so that measure 1 begins at time zero.
	PickupLength float64

	// Parts holds the score's parts. Measure counts should agree across
	// parts; measure line positions are derived from the first part.
	Parts []Part
}

// MeasureOffsets returns the onset time of every measure line of the first
// part, including the final barline, in quarter notes. The pickup, when
// present, makes the first offset negative.
func (s *Score) MeasureOffsets() []float64 {
	if len(s.Parts) == 0 {
		return nil
	}

	offsets := make([]float64, 0, len(s.Parts[0].Measures)+1)
	offset := -s.PickupLength
	for _, m := range s.Parts[0].Measures {
		offsets = append(offsets, offset)
		offset += m.Length
	}
	offsets = append(offsets, offset)

	return offsets
}

package score

import (
	"fmt"
	"math"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

// pitch spelling of each pitch class, sharps preferred. Index is the pitch
// class 0..11, value is (step, alter).
var pitchClassSpelling = [12]struct{ step, alter int }{
	{StepC, 0}, {StepC, 1}, {StepD, 0}, {StepD, 1}, {StepE, 0}, {StepF, 0},
	{StepF, 1}, {StepG, 0}, {StepG, 1}, {StepA, 0}, {StepA, 1}, {StepB, 0},
}

// PitchFromMIDI returns the spelled pitch of a MIDI note number, preferring
// sharp spellings for black keys.
func PitchFromMIDI(key int) Pitch {
	spelling := pitchClassSpelling[((key%12)+12)%12]

	return Pitch{Step: spelling.step, Alter: spelling.alter, Octave: key/12 - 1}
}

// meterChange records a time-signature change at an absolute position.
type meterChange struct {
	at         float64 // quarter notes from the start
	measureLen float64 // quarter notes per measure under this meter
}

// timedNote is a note event with an absolute onset, before measure
// partitioning.
type timedNote struct {
	onset, duration float64
	key             int
}

// FromSMF reads a Standard MIDI File and returns it as a Score. Each MIDI
// track that contains note events becomes one Part; measures are derived
// from the file's time-signature events (4/4 when absent). MIDI carries no
// tie or grace-note information, so all notes are read as plain onsets.
func FromSMF(path string) (*Score, error) {
	data, err := smf.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("score: reading SMF %q: %w", path, err)
	}

	ticks, ok := data.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, ErrNoMetricTicks
	}
	if len(data.Tracks) == 0 {
		return nil, ErrNoTracks
	}
	quarter := float64(ticks.Ticks4th())

	meters := []meterChange{{at: 0, measureLen: 4}}
	var trackNotes [][]timedNote
	var trackNames []string

	for _, track := range data.Tracks {
		var abs uint64
		var notes []timedNote
		name := ""
		open := map[int]int{} // key -> index of the sounding note awaiting its end

		for _, ev := range track {
			abs += uint64(ev.Delta)
			at := float64(abs) / quarter

			var ch, key, vel uint8
			var num, denom uint8
			var text string
			switch {
			case ev.Message.GetNoteStart(&ch, &key, &vel):
				notes = append(notes, timedNote{onset: at, key: int(key)})
				open[int(key)] = len(notes) - 1
			case ev.Message.GetNoteEnd(&ch, &key):
				if i, sounding := open[int(key)]; sounding {
					notes[i].duration = at - notes[i].onset
					delete(open, int(key))
				}
			case ev.Message.GetMetaMeter(&num, &denom):
				meters = append(meters, meterChange{at: at, measureLen: float64(num) * 4 / float64(denom)})
			case ev.Message.GetMetaTrackName(&text):
				name = text
			}
		}

		if len(notes) > 0 {
			trackNotes = append(trackNotes, notes)
			trackNames = append(trackNames, name)
		}
	}

	sort.SliceStable(meters, func(i, j int) bool { return meters[i].at < meters[j].at })

	end := 0.0
	for _, notes := range trackNotes {
		for _, n := range notes {
			if n.onset+n.duration > end {
				end = n.onset + n.duration
			}
		}
	}
	boundaries := measureBoundaries(meters, end)

	s := &Score{}
	for i, notes := range trackNotes {
		s.Parts = append(s.Parts, partition(trackNames[i], notes, boundaries))
	}

	return s, nil
}

// measureBoundaries lays out measure start positions from 0 up to at least
// end, honoring mid-piece meter changes.
func measureBoundaries(meters []meterChange, end float64) []float64 {
	boundaries := []float64{0}
	pos := 0.0
	for pos < end {
		length := 4.0
		for _, m := range meters {
			if m.at <= pos+1e-9 && m.measureLen > 0 {
				length = m.measureLen
			}
		}
		pos += length
		boundaries = append(boundaries, pos)
	}

	return boundaries
}

// partition splits a flat list of timed notes into measures at the given
// boundary positions.
func partition(name string, notes []timedNote, boundaries []float64) Part {
	part := Part{Name: name, Measures: make([]Measure, len(boundaries)-1)}
	for i := range part.Measures {
		part.Measures[i].Length = boundaries[i+1] - boundaries[i]
	}

	for _, n := range notes {
		idx := sort.SearchFloat64s(boundaries, n.onset+1e-9) - 1
		if idx < 0 {
			idx = 0
		}
		if idx >= len(part.Measures) {
			idx = len(part.Measures) - 1
		}
		m := &part.Measures[idx]
		m.Notes = append(m.Notes, Note{
			Offset:   roundTicks(n.onset - boundaries[idx]),
			Duration: n.duration,
			Pitch:    PitchFromMIDI(n.key),
		})
	}

	return part
}

// roundTicks clears float noise from tick division so offsets of notes that
// fall on the same tick compare equal.
func roundTicks(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

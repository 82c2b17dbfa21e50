package score

import "errors"

var (
	// ErrNoTracks indicates the MIDI file contains no tracks to read.
	ErrNoTracks = errors.New("score: SMF file has no tracks")

	// ErrNoMetricTicks indicates the MIDI file does not use metric time,
	// so onsets cannot be expressed in quarter notes.
	ErrNoMetricTicks = errors.New("score: SMF time format is not metric ticks")
)

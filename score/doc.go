// Package score defines a minimal notation object model consumed by the
// point-set constructors, plus a Standard MIDI File loader.
//
// 🚀 What is score?
//
//	A Score is a thin, in-memory description of notated music:
//	  • Parts (staves) containing Measures
//	  • Measures containing Notes with offsets relative to the measure start
//	  • Spelled pitches (step / alter / octave) convertible to MIDI numbers
//	  • Tie classification and grace-note flags, so point-set conversion can
//	    decide which note events are true onsets
//	  • An optional pickup (anacrusis) length that shifts the first measure's
//	    effective start negatively
//
// ✨ Why a separate package?
//
//	The point-set data model only needs onsets, pitches and measure lines.
//	Keeping the notation model here means pointset depends on a small,
//	stable contract rather than on any particular file format. FromSMF is
//	the built-in loader; any code that can populate a Score can feed the
//	point-set layer.
//
// ⚙️ Usage:
//
//	s, err := score.FromSMF("prelude.mid")
//	if err != nil { ... }
//	ps, err := pointset.FromScore(s, pointset.ChromaticPitch)
//
// All offsets and durations are measured in quarter notes.
package score

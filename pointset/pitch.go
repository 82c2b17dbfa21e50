package pointset

import (
	"fmt"

	"github.com/motivlab/motiv/score"
)

// PitchType tags which pitch numbering convention a point-set or pattern
// uses. The empty value means the convention is unknown.
type PitchType string

const (
	// PitchChromatic is semitone-based numbering (MIDI note numbers).
	PitchChromatic PitchType = "chromatic"

	// PitchMorphetic is staff-position-based numbering, aligned so that
	// morphetic C4 equals MIDI C4 (60).
	PitchMorphetic PitchType = "morphetic"

	// PitchUnknown marks point-sets whose pitch convention is not recorded.
	PitchUnknown PitchType = ""
)

// ParsePitchType converts a tag string to a PitchType. The empty string
// parses to PitchUnknown; anything else unknown is an error.
func ParsePitchType(s string) (PitchType, error) {
	switch PitchType(s) {
	case PitchChromatic, PitchMorphetic, PitchUnknown:
		return PitchType(s), nil
	default:
		return PitchUnknown, fmt.Errorf("%w: %q", ErrUnknownPitchType, s)
	}
}

// PitchExtractor maps a spelled pitch to the number used on the point-set's
// vertical axis. The two built-in extractors are ChromaticPitch and
// MorpheticPitch; custom numbering conventions can be plugged in by
// implementing the interface.
type PitchExtractor interface {
	// PitchOf returns the pitch number of the given spelled pitch.
	PitchOf(p score.Pitch) float64

	// Type returns the tag recorded on point-sets built with this
	// extractor.
	Type() PitchType
}

// ChromaticPitch numbers pitches by MIDI semitone (C4 = 60).
var ChromaticPitch PitchExtractor = chromaticExtractor{}

// MorpheticPitch numbers pitches by staff position: octave*7 + step + 32,
// with steps C=0..B=6. The constant 32 aligns morphetic C4 with MIDI C4
// (60), matching the morphetic numbering used in the JKU-PDD dataset.
var MorpheticPitch PitchExtractor = morpheticExtractor{}

type chromaticExtractor struct{}

func (chromaticExtractor) PitchOf(p score.Pitch) float64 { return float64(p.MIDI()) }
func (chromaticExtractor) Type() PitchType               { return PitchChromatic }

type morpheticExtractor struct{}

// morpheticShift aligns morphetic numbering with MIDI at C4.
const morpheticShift = 32

func (morpheticExtractor) PitchOf(p score.Pitch) float64 {
	return float64(p.Octave*7 + p.Step + morpheticShift)
}

func (morpheticExtractor) Type() PitchType { return PitchMorphetic }

// ExtractorFor returns the built-in extractor for a pitch type, or nil when
// the type is unknown.
func ExtractorFor(t PitchType) PitchExtractor {
	switch t {
	case PitchChromatic:
		return ChromaticPitch
	case PitchMorphetic:
		return MorpheticPitch
	default:
		return nil
	}
}

package pointset

import "errors"

var (
	// ErrNoScore indicates a notation-dependent operation was called on a
	// point-set that has no attached score.
	ErrNoScore = errors.New("pointset: no score attached to point-set")

	// ErrUnsupportedDType indicates a point component data type that is
	// neither floating point nor integer.
	ErrUnsupportedDType = errors.New("pointset: unsupported point component data type, must be float or int")

	// ErrUnknownPitchType indicates a pitch type tag that is neither
	// chromatic nor morphetic.
	ErrUnknownPitchType = errors.New("pointset: unknown pitch type")

	// ErrNoteNotFound indicates a point with no corresponding note in the
	// attached score.
	ErrNoteNotFound = errors.New("pointset: point has no corresponding note in the score")

	// ErrEmptyPattern indicates a notation operation on a pattern that
	// contains no points.
	ErrEmptyPattern = errors.New("pointset: pattern contains no points")
)

package pointset

import "fmt"

// DType records the numeric type of point components for serialization
// round-trips. Point components are always held as float64 in memory; DType
// preserves whether the source data was integer- or float-valued.
type DType int

const (
	// Float64 marks floating-point components (JSON tag "float").
	Float64 DType = iota

	// Int marks integer components (JSON tag "int").
	Int
)

// String returns the serialization tag of the dtype.
func (d DType) String() string {
	if d == Int {
		return "int"
	}

	return "float"
}

// ParseDType converts a serialization tag to a DType. Anything other than
// "float" or "int" fails with ErrUnsupportedDType.
func ParseDType(s string) (DType, error) {
	switch s {
	case "float":
		return Float64, nil
	case "int":
		return Int, nil
	default:
		return Float64, fmt.Errorf("%w: %q", ErrUnsupportedDType, s)
	}
}

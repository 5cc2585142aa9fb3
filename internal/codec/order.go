package codec

import (
	"fmt"
	"slices"
)

// ByteOrder is the layout of hex-encoded blocks and keys at the service boundary.
type ByteOrder string

const (
	// Standard is the GOST R 34.12-2015 notation: the first byte is the most significant.
	Standard ByteOrder = "standard"
	// Reversed is the byte-reversed layout of the legacy C implementation.
	Reversed ByteOrder = "reversed"
)

// ParseByteOrder validates a byte order name.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch o := ByteOrder(s); o {
	case Standard, Reversed:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrByteOrder, s)
	}
}

// apply converts between the wire layout and the cipher layout in place.
// The conversion is its own inverse.
func (o ByteOrder) apply(b []byte) {
	if o == Reversed {
		slices.Reverse(b)
	}
}

package codec

import "errors"

var (
	// ErrEmpty is returned for an empty hex string.
	ErrEmpty = errors.New("hex string is empty")
	// ErrOddLength is returned when a hex string has an odd number of characters.
	ErrOddLength = errors.New("hex string must have an even number of characters")
	// ErrInvalidHex is returned when a string contains characters outside [0-9a-fA-F].
	ErrInvalidHex = errors.New("hex string must contain only [0-9a-fA-F]")
	// ErrTooLong is returned when a string exceeds the allowed length.
	ErrTooLong = errors.New("value is too long")
	// ErrLength is returned when a string must have an exact length and does not.
	ErrLength = errors.New("value has the wrong length")
	// ErrInvalidUTF8 is returned when decoded bytes are not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("the input hex string could not be decoded into valid UTF-8 encoded text")
	// ErrByteOrder is returned for an unknown byte order name.
	ErrByteOrder = errors.New("unknown byte order")
)

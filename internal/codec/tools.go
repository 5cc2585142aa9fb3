package codec

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"
)

const (
	// MaxStrLen is the longest string, in characters, StrToHex accepts.
	MaxStrLen = 25
	// MaxHexLen is the longest hex string the hex tools accept.
	MaxHexLen = 100
)

// Info describes the length of a hex string in several units.
type Info struct {
	LenHex  int `json:"len_hex"  yaml:"len_hex"`
	LenByte int `json:"len_byte" yaml:"len_byte"`
	LenBit  int `json:"len_bit"  yaml:"len_bit"`
}

// StrToHex returns the hex encoding of the UTF-8 bytes of s.
func StrToHex(s string) (string, error) {
	if n := utf8.RuneCountInString(s); n > MaxStrLen {
		return "", fmt.Errorf("%w: at most %d characters, got %d", ErrTooLong, MaxStrLen, n)
	}

	return hex.EncodeToString([]byte(s)), nil
}

// HexToStr decodes a hex string into UTF-8 text.
func HexToStr(s string) (string, error) {
	if err := validateHex(s, MaxHexLen); err != nil {
		return "", err
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	if !utf8.Valid(raw) {
		return "", ErrInvalidUTF8
	}

	return string(raw), nil
}

// HexInfo reports the length of a hex string in characters, bytes and bits.
func HexInfo(s string) (Info, error) {
	if err := validateHex(s, MaxHexLen); err != nil {
		return Info{}, err
	}

	return Info{
		LenHex:  len(s),
		LenByte: len(s) / 2, //nolint:mnd
		LenBit:  len(s) * 4, //nolint:mnd
	}, nil
}

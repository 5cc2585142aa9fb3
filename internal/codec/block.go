// Package codec translates between the text encodings used by the CLI and the
// HTTP service and the fixed-size byte values of the cipher core.
package codec

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/idelchi/gokuz/pkg/kuznechik"
)

const (
	// BlockHexLen is the hex length of a full block.
	BlockHexLen = 2 * kuznechik.BlockSize
	// KeyHexLen is the hex length of a full key.
	KeyHexLen = 2 * kuznechik.KeySize
)

// ParseBlock decodes a hex block of at most 16 bytes, left-padding shorter
// input with zero bytes.
func ParseBlock(s string, order ByteOrder) (kuznechik.Block, error) {
	var b kuznechik.Block

	raw, err := decodePadded(s, kuznechik.BlockSize)
	if err != nil {
		return b, fmt.Errorf("block: %w", err)
	}

	order.apply(raw)
	copy(b[:], raw)

	return b, nil
}

// ParseFullBlock decodes a hex block that must be exactly 16 bytes.
func ParseFullBlock(s string, order ByteOrder) (kuznechik.Block, error) {
	if len(s) != BlockHexLen {
		return kuznechik.Block{}, fmt.Errorf("block: %w: want %d hex characters, got %d", ErrLength, BlockHexLen, len(s))
	}

	return ParseBlock(s, order)
}

// ParseKey decodes a hex key of at most 32 bytes, left-padding shorter input
// with zero bytes.
func ParseKey(s string, order ByteOrder) (kuznechik.Key, error) {
	var k kuznechik.Key

	raw, err := decodePadded(s, kuznechik.KeySize)
	if err != nil {
		return k, fmt.Errorf("key: %w", err)
	}

	order.apply(raw)
	copy(k[:], raw)

	return k, nil
}

// FormatBlock encodes b as 32 lowercase hex characters.
func FormatBlock(b kuznechik.Block, order ByteOrder) string {
	order.apply(b[:])

	return hex.EncodeToString(b[:])
}

// TrimPadding removes leading zero bytes from a hex string.
// A string made only of zero bytes is reduced to a single "00".
func TrimPadding(s string) string {
	for len(s) > 2 && strings.HasPrefix(s, "00") {
		s = s[2:]
	}

	return s
}

// decodePadded validates s and decodes it into a buffer of exactly size bytes,
// right-aligned.
func decodePadded(s string, size int) ([]byte, error) {
	if err := validateHex(s, 2*size); err != nil {
		return nil, err
	}

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	out := make([]byte, size)
	copy(out[size-len(raw):], raw)

	return out, nil
}

// validateHex checks emptiness, character set, parity and maximum length,
// in the order a caller can act on them.
func validateHex(s string, maxLen int) error {
	if s == "" {
		return ErrEmpty
	}

	for i := range len(s) {
		if !isHex(s[i]) {
			return fmt.Errorf("%w: invalid character %q at position %d", ErrInvalidHex, s[i], i)
		}
	}

	if maxLen > 0 && len(s) > maxLen {
		return fmt.Errorf("%w: at most %d hex characters, got %d", ErrTooLong, maxLen, len(s))
	}

	if len(s)%2 != 0 {
		return ErrOddLength
	}

	return nil
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

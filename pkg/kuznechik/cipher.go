package kuznechik

import (
	"crypto/cipher"
	"fmt"
)

const (
	// BlockSize is the cipher block size in bytes.
	BlockSize = 16
	// KeySize is the key size in bytes.
	KeySize = 32
	// Rounds is the number of round keys in the schedule.
	Rounds = 10
)

// Block is a 128-bit cipher block.
type Block [BlockSize]byte

// Key is a 256-bit cipher key.
type Key [KeySize]byte

// NewBlock copies b into a Block.
func NewBlock(b []byte) (Block, error) {
	var blk Block

	if len(b) != BlockSize {
		return blk, fmt.Errorf("%w: block must be %d bytes, got %d", ErrInvalidLength, BlockSize, len(b))
	}

	copy(blk[:], b)

	return blk, nil
}

// NewKey copies b into a Key.
func NewKey(b []byte) (Key, error) {
	var key Key

	if len(b) != KeySize {
		return key, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInvalidLength, KeySize, len(b))
	}

	copy(key[:], b)

	return key, nil
}

// EncryptBlock encrypts a single block under key.
func EncryptBlock(b Block, key Key) Block {
	rk := DeriveRoundKeys(key)

	return rk.Encrypt(b)
}

// DecryptBlock decrypts a single block under key.
func DecryptBlock(b Block, key Key) Block {
	rk := DeriveRoundKeys(key)

	return rk.Decrypt(b)
}

// Encrypt encrypts a 16-byte block with a 32-byte key.
// Both lengths are checked before any round runs.
func Encrypt(block, key []byte) ([]byte, error) {
	b, k, err := parse(block, key)
	if err != nil {
		return nil, err
	}

	out := EncryptBlock(b, k)

	return out[:], nil
}

// Decrypt decrypts a 16-byte block with a 32-byte key.
func Decrypt(block, key []byte) ([]byte, error) {
	b, k, err := parse(block, key)
	if err != nil {
		return nil, err
	}

	out := DecryptBlock(b, k)

	return out[:], nil
}

func parse(block, key []byte) (Block, Key, error) {
	b, err := NewBlock(block)
	if err != nil {
		return Block{}, Key{}, err
	}

	k, err := NewKey(key)
	if err != nil {
		return Block{}, Key{}, err
	}

	return b, k, nil
}

type blockCipher struct {
	rk RoundKeys
}

// NewCipher returns a cipher.Block holding the round keys derived from key.
// Each instance owns its schedule; instances share nothing.
func NewCipher(key []byte) (cipher.Block, error) {
	k, err := NewKey(key)
	if err != nil {
		return nil, err
	}

	return &blockCipher{rk: DeriveRoundKeys(k)}, nil
}

func (c *blockCipher) BlockSize() int { return BlockSize }

func (c *blockCipher) Encrypt(dst, src []byte) {
	c.crypt(dst, src, c.rk.Encrypt)
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	c.crypt(dst, src, c.rk.Decrypt)
}

func (c *blockCipher) crypt(dst, src []byte, fn func(Block) Block) {
	if len(src) < BlockSize {
		panic("kuznechik: input not full block")
	}

	if len(dst) < BlockSize {
		panic("kuznechik: output not full block")
	}

	var b Block

	copy(b[:], src)
	b = fn(b)
	copy(dst, b[:])
}

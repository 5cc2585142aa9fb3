// Package kuznechik implements the Kuznechik block cipher (GOST R 34.12-2015,
// RFC 7801): a 128-bit block, a 256-bit key, and ten round keys derived through
// a Feistel network.
//
// Blocks and keys use the byte order of the standard: byte 0 is the most
// significant byte of the 128-bit value.
//
// # Basic Usage
//
//	ct, err := kuznechik.Encrypt(block, key) // block: 16 bytes, key: 32 bytes
//	if err != nil {
//	    // errors.Is(err, kuznechik.ErrInvalidLength)
//	}
//
//	pt, err := kuznechik.Decrypt(ct, key)
//
// The typed forms EncryptBlock and DecryptBlock take Block and Key values and
// cannot fail. DeriveRoundKeys exposes the key schedule; NewCipher wraps a
// schedule as a crypto/cipher.Block.
//
// # Thread Safety
//
// The lookup tables and round constants are built once at package
// initialisation and never written afterwards. Every function is safe for
// concurrent use.
package kuznechik

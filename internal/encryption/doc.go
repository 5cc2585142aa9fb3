// Package encryption encrypts and decrypts text files of hex-encoded blocks.
//
// Each line of an input file holds one block. Every block is processed
// independently with Kuznechik; blank lines and lines starting with '#' are
// copied through unchanged. Encrypted files start with an envelope line that
// records the byte order and the executable bit of the source file.
// Files are processed concurrently and written atomically.
package encryption

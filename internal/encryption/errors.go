package encryption

import "errors"

var (
	// ErrProcessing indicates an error during envelope processing.
	ErrProcessing = errors.New("envelope processing error")
	// ErrEmptyData is returned when an encrypted file has no envelope line.
	ErrEmptyData = errors.New("empty data")
	// ErrOverwrite is returned when the output path of a file is the file itself.
	ErrOverwrite = errors.New("output would overwrite input")
)

package encryption

import (
	"sync"
)

const (
	defaultBufferSize = 4 * 1024 // initial scanner buffer
	maxLineSize       = 64 * 1024
)

// bufferPool provides reusable scanner buffers for reading input files.
//
//nolint:gochecknoglobals
var bufferPool = sync.Pool{
	New: func() any {
		buf := make([]byte, defaultBufferSize)

		return &buf
	},
}

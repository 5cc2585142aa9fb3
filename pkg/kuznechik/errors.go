package kuznechik

import "errors"

// ErrInvalidLength is returned when a block or key buffer does not have the
// exact size the cipher requires. Inputs are never padded or truncated.
var ErrInvalidLength = errors.New("kuznechik: invalid length")

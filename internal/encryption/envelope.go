package encryption

import (
	"fmt"
	"strings"

	"github.com/idelchi/gokuz/internal/codec"
)

const (
	envelopeMagic   = "GOKUZ"
	envelopeVersion = "1"
)

// envelope is the first line of an encrypted file.
type envelope struct {
	order      codec.ByteOrder
	executable bool
}

// String renders the envelope line, without the trailing newline.
func (e envelope) String() string {
	exec := "0"
	if e.executable {
		exec = "1"
	}

	return fmt.Sprintf("%s/%s order=%s exec=%s", envelopeMagic, envelopeVersion, e.order, exec)
}

func parseEnvelope(line string) (envelope, error) {
	var env envelope

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return env, fmt.Errorf("%w: missing envelope", ErrProcessing)
	}

	magic, version, ok := strings.Cut(fields[0], "/")
	if !ok || magic != envelopeMagic {
		return env, fmt.Errorf("%w: invalid envelope magic", ErrProcessing)
	}

	if version != envelopeVersion {
		return env, fmt.Errorf("%w: unsupported envelope version %q", ErrProcessing, version)
	}

	var haveOrder bool

	for _, field := range fields[1:] {
		key, value, _ := strings.Cut(field, "=")

		switch key {
		case "order":
			order, err := codec.ParseByteOrder(value)
			if err != nil {
				return env, fmt.Errorf("%w: %w", ErrProcessing, err)
			}

			env.order = order
			haveOrder = true
		case "exec":
			switch value {
			case "0":
			case "1":
				env.executable = true
			default:
				return env, fmt.Errorf("%w: invalid exec flag %q", ErrProcessing, value)
			}
		default:
			return env, fmt.Errorf("%w: unknown envelope field %q", ErrProcessing, key)
		}
	}

	if !haveOrder {
		return env, fmt.Errorf("%w: envelope has no byte order", ErrProcessing)
	}

	return env, nil
}

package encryption

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/idelchi/gokuz/internal/codec"
	"github.com/idelchi/gokuz/pkg/kuznechik"
)

// isPassthrough reports whether a line is copied without processing.
func isPassthrough(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

func newScanner(reader io.Reader) (*bufio.Scanner, func()) {
	buf, _ := bufferPool.Get().(*[]byte) //nolint:errcheck // pool only holds *[]byte

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(*buf, maxLineSize)

	return scanner, func() { bufferPool.Put(buf) }
}

// encrypt writes the envelope followed by one encrypted block per input block line.
func (p *Processor) encrypt(reader io.Reader, writer io.Writer, isExec bool) (int, error) {
	scanner, release := newScanner(reader)
	defer release()

	out := bufio.NewWriter(writer)

	if _, err := fmt.Fprintln(out, envelope{order: p.order, executable: isExec}); err != nil {
		return 0, fmt.Errorf("writing header: %w", err)
	}

	block := p.ciphers[p.order]

	var (
		blocks int
		dst    kuznechik.Block
	)

	for n := 1; scanner.Scan(); n++ {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		if isPassthrough(line) {
			if _, err := fmt.Fprintln(out, strings.TrimRight(raw, "\r")); err != nil {
				return 0, fmt.Errorf("writing line %d: %w", n, err)
			}

			continue
		}

		src, err := codec.ParseBlock(line, p.order)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", n, err)
		}

		block.Encrypt(dst[:], src[:])

		if _, err := fmt.Fprintln(out, codec.FormatBlock(dst, p.order)); err != nil {
			return 0, fmt.Errorf("writing line %d: %w", n, err)
		}

		blocks++
	}

	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading input: %w", err)
	}

	if err := out.Flush(); err != nil {
		return 0, fmt.Errorf("writing output: %w", err)
	}

	return blocks, nil
}

// decrypt validates the envelope and writes one full plaintext block per
// ciphertext line, using the byte order recorded in the envelope.
func (p *Processor) decrypt(reader io.Reader, writer io.Writer) (envelope, int, error) {
	scanner, release := newScanner(reader)
	defer release()

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return envelope{}, 0, fmt.Errorf("reading header: %w", err)
		}

		return envelope{}, 0, fmt.Errorf("%w: %w", ErrProcessing, ErrEmptyData)
	}

	env, err := parseEnvelope(scanner.Text())
	if err != nil {
		return envelope{}, 0, err
	}

	block := p.ciphers[env.order]
	out := bufio.NewWriter(writer)

	var (
		blocks int
		dst    kuznechik.Block
	)

	for n := 2; scanner.Scan(); n++ {
		raw := scanner.Text()
		line := strings.TrimSpace(raw)

		if isPassthrough(line) {
			if _, err := fmt.Fprintln(out, strings.TrimRight(raw, "\r")); err != nil {
				return envelope{}, 0, fmt.Errorf("writing line %d: %w", n, err)
			}

			continue
		}

		src, err := codec.ParseFullBlock(line, env.order)
		if err != nil {
			return envelope{}, 0, fmt.Errorf("line %d: %w", n, err)
		}

		block.Decrypt(dst[:], src[:])

		if _, err := fmt.Fprintln(out, codec.FormatBlock(dst, env.order)); err != nil {
			return envelope{}, 0, fmt.Errorf("writing line %d: %w", n, err)
		}

		blocks++
	}

	if err := scanner.Err(); err != nil {
		return envelope{}, 0, fmt.Errorf("reading input: %w", err)
	}

	if err := out.Flush(); err != nil {
		return envelope{}, 0, fmt.Errorf("writing output: %w", err)
	}

	return env, blocks, nil
}

package logic

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/idelchi/gokuz/internal/codec"
	"github.com/idelchi/gokuz/internal/config"
	"github.com/idelchi/gokuz/pkg/kuznechik"
)

// ErrNoBlocks is returned when a block command has nothing to process.
var ErrNoBlocks = errors.New("no blocks given: pass hex blocks as arguments or use --from")

// RunBlocks encrypts or decrypts hex blocks given as arguments or listed in
// the --from file, printing one result per line.
// Encryption left-pads short blocks; decryption requires full blocks and
// prints the plaintext with leading zero bytes removed.
func RunBlocks(fs afero.Fs, cfg *config.Config, args []string, stdout io.Writer) error {
	order, err := codec.ParseByteOrder(cfg.ByteOrder)
	if err != nil {
		return err //nolint:wrapcheck // already descriptive
	}

	hexKey, err := cfg.ResolveKey(fs)
	if err != nil {
		return fmt.Errorf("reading key: %w", err)
	}

	key, err := codec.ParseKey(hexKey, order)
	if err != nil {
		return err //nolint:wrapcheck // already descriptive
	}

	inputs := append([]string{}, args...)

	if cfg.From != "" {
		listed, err := codec.LoadList(fs, cfg.From)
		if err != nil {
			return err //nolint:wrapcheck // already descriptive
		}

		inputs = append(inputs, listed...)
	}

	if len(inputs) == 0 {
		return ErrNoBlocks
	}

	// One expansion for every block.
	keys := kuznechik.DeriveRoundKeys(key)

	for _, input := range inputs {
		out, err := transformBlock(&keys, input, order, cfg.Decrypt)
		if err != nil {
			return fmt.Errorf("%q: %w", input, err)
		}

		fmt.Fprintln(stdout, out)
	}

	return nil
}

func transformBlock(keys *kuznechik.RoundKeys, input string, order codec.ByteOrder, decrypt bool) (string, error) {
	if decrypt {
		blk, err := codec.ParseFullBlock(input, order)
		if err != nil {
			return "", err //nolint:wrapcheck // wrapped by the caller
		}

		return codec.TrimPadding(codec.FormatBlock(keys.Decrypt(blk), order)), nil
	}

	blk, err := codec.ParseBlock(input, order)
	if err != nil {
		return "", err //nolint:wrapcheck // wrapped by the caller
	}

	return codec.FormatBlock(keys.Encrypt(blk), order), nil
}

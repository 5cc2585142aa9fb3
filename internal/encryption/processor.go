package encryption

import (
	"crypto/cipher"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/gokuz/internal/codec"
	"github.com/idelchi/gokuz/internal/config"
	"github.com/idelchi/gokuz/internal/fileutil"
	"github.com/idelchi/gokuz/pkg/kuznechik"
)

// Processor handles the encryption and decryption of files.
type Processor struct {
	// Stdout receives progress lines, Stderr receives per-file errors.
	Stdout io.Writer
	Stderr io.Writer

	// cfg contains runtime configuration options
	cfg *config.Config

	// fs is the filesystem files are read from and written to
	fs afero.Fs

	// order is the byte order used for encryption
	order codec.ByteOrder

	// ciphers holds one block cipher per byte order, since the key is laid out
	// the same way as the blocks
	ciphers map[codec.ByteOrder]cipher.Block

	// results channels processing outcomes to the printer goroutine
	results chan Result
}

// NewProcessor creates a new Processor with the given configuration.
// It resolves the key and expands it into round keys once for all files.
func NewProcessor(fs afero.Fs, cfg *config.Config) (*Processor, error) {
	order, err := codec.ParseByteOrder(cfg.ByteOrder)
	if err != nil {
		return nil, err //nolint:wrapcheck // already descriptive
	}

	hexKey, err := cfg.ResolveKey(fs)
	if err != nil {
		return nil, fmt.Errorf("reading key: %w", err)
	}

	ciphers := make(map[codec.ByteOrder]cipher.Block, 2) //nolint:mnd

	for _, o := range []codec.ByteOrder{codec.Standard, codec.Reversed} {
		key, err := codec.ParseKey(hexKey, o)
		if err != nil {
			return nil, fmt.Errorf("reading key: %w", err)
		}

		block, err := kuznechik.NewCipher(key[:])
		if err != nil {
			return nil, fmt.Errorf("creating cipher: %w", err)
		}

		ciphers[o] = block
	}

	return &Processor{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		cfg:     cfg,
		fs:      fs,
		order:   order,
		ciphers: ciphers,
		results: make(chan Result, len(cfg.Files)),
	}, nil
}

// ProcessFiles concurrently processes all files specified in the configuration.
// It encrypts or decrypts files based on the configuration settings.
// Returns the number of successfully processed files and the number of errors.
//
//nolint:cyclop,gocognit
func (p *Processor) ProcessFiles() (processed, errored int, totalSize int64, err error) {
	group := errgroup.Group{}
	group.SetLimit(p.cfg.Parallel)

	done := make(chan struct{})

	go func() {
		defer close(done)

		for result := range p.results {
			if result.Error != nil {
				errored++

				fmt.Fprintf(p.Stderr, "Error processing %q: %v\n", result.Input, result.Error)
			} else {
				processed++

				totalSize += result.OutputSize

				if !p.cfg.Quiet {
					fmt.Fprintf(p.Stdout, "Processed %q -> %q (%d blocks)\n", result.Input, result.Output, result.Blocks)
				}
			}

			if p.cfg.Delete && result.Error == nil && result.Output != result.Input {
				if err := p.fs.Remove(result.Input); err != nil {
					fmt.Fprintf(p.Stderr, "Error deleting %q: %v\n", result.Input, err)
				} else if !p.cfg.Quiet {
					fmt.Fprintf(p.Stdout, "Deleted %q\n", result.Input)
				}
			}
		}
	}()

	for _, file := range p.cfg.Files {
		group.Go(func() error {
			outPath := OutputPath(file, p.cfg)

			blocks, size, err := p.processFile(file, outPath)
			if err != nil {
				p.results <- Result{Input: file, Error: err}

				return err
			}

			p.results <- Result{Input: file, Output: outPath, Blocks: blocks, OutputSize: size}

			return nil
		})
	}

	err = group.Wait()

	close(p.results)

	<-done // Wait for printer to finish

	if err != nil {
		return processed, errored, totalSize, fmt.Errorf("processing files: %w", err)
	}

	return processed, errored, totalSize, nil
}

// processFile handles the encryption or decryption of a single file.
// It creates a temporary file for output and performs an atomic rename on completion.
func (p *Processor) processFile(filename, outPath string) (blocks int, size int64, err error) {
	if filepath.Clean(outPath) == filepath.Clean(filename) {
		return 0, 0, fmt.Errorf("%w: %q (set --decrypt-ext or name the file with the %q suffix)",
			ErrOverwrite, filename, p.cfg.Suffixes.Encrypt)
	}

	tc, err := fileutil.NewTempContext(p.fs, filename, outPath)
	if err != nil {
		return 0, 0, fmt.Errorf("preparing atomic write: %w", err)
	}

	defer tc.CleanupOnError(&err)

	inFile, err := p.fs.Open(filepath.Clean(filename))
	if err != nil {
		return 0, 0, fmt.Errorf("opening input file: %w", err)
	}
	defer inFile.Close()

	executable := tc.IsExec

	if p.cfg.Decrypt {
		var env envelope

		env, blocks, err = p.decrypt(inFile, tc.TmpFile)
		if err != nil {
			return 0, 0, fmt.Errorf("decrypting file: %w", err)
		}

		executable = env.executable
	} else {
		blocks, err = p.encrypt(inFile, tc.TmpFile, tc.IsExec)
		if err != nil {
			return 0, 0, fmt.Errorf("encrypting file: %w", err)
		}
	}

	if err = inFile.Close(); err != nil {
		return 0, 0, fmt.Errorf("closing input file: %w", err)
	}

	if err = tc.Commit(outPath, executable); err != nil {
		return 0, 0, err //nolint:wrapcheck // already descriptive
	}

	size, err = fileutil.FinalizeOutput(p.fs, outPath, p.cfg.PreserveTimestamps, tc.SrcInfo.ModTime())
	if err != nil {
		return 0, 0, fmt.Errorf("finalizing output: %w", err)
	}

	return blocks, size, nil
}

// OutputPath generates the output file path based on the input filename
// and the configured suffixes for encryption/decryption.
func OutputPath(filename string, cfg *config.Config) string {
	ext := cfg.Suffixes.Encrypt

	if cfg.Decrypt {
		filename = strings.TrimSuffix(filename, cfg.Suffixes.Encrypt)
		ext = cfg.Suffixes.Decrypt
	}

	return filepath.Join(filepath.Dir(filename),
		filepath.Base(filename)+ext)
}

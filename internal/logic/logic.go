// Package logic implements the command orchestration behind the CLI.
package logic

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/idelchi/gokuz/internal/codec"
	"github.com/idelchi/gokuz/internal/config"
	"github.com/idelchi/gokuz/internal/encryption"
	"github.com/idelchi/gokuz/internal/filter"
)

// Run encrypts or decrypts the files selected by the configuration.
func Run(fs afero.Fs, cfg *config.Config, stdout, stderr io.Writer) error {
	scanned, excluded, start, done, err := preamble(fs, cfg, stdout, stderr)
	if done || err != nil {
		return err
	}

	proc, err := encryption.NewProcessor(fs, cfg)
	if err != nil {
		return fmt.Errorf("creating processor: %w", err)
	}

	proc.Stdout = stdout
	proc.Stderr = stderr

	processed, errored, totalSize, err := proc.ProcessFiles()

	if cfg.Stats {
		printStats(stderr, scanned, excluded, processed, errored, totalSize, time.Since(start))
	}

	if err != nil {
		return fmt.Errorf("running logic: %w", err)
	}

	return nil
}

// preamble resolves files and handles dry run. Returns done=true if dry run was executed.
func preamble(fs afero.Fs, cfg *config.Config, stdout, stderr io.Writer) (int, int, time.Time, bool, error) {
	start := time.Now()

	files, scanned, err := resolveFiles(fs, cfg)
	if err != nil {
		return 0, 0, start, false, fmt.Errorf("resolving files: %w", err)
	}

	cfg.Files = files
	excluded := scanned - len(cfg.Files)

	if cfg.Dry {
		dryRun(fs, cfg, scanned, excluded, start, stdout, stderr)

		return scanned, excluded, start, true, nil
	}

	return scanned, excluded, start, false, nil
}

// resolveFiles merges CLI and file-based patterns, adds the default pattern for
// the direction of the run and resolves the positional args.
// Encryption always skips files that already carry the encrypted suffix;
// decryption selects only those files unless includes were given.
func resolveFiles(fs afero.Fs, cfg *config.Config) ([]string, int, error) {
	includes, excludes, err := loadPatterns(fs, cfg)
	if err != nil {
		return nil, 0, err
	}

	hasIncludes := len(cfg.Include) > 0 || cfg.IncludeFrom != ""

	encrypted := "*" + cfg.Suffixes.Encrypt

	switch {
	case cfg.Decrypt && !hasIncludes:
		includes = append(includes, encrypted)
		hasIncludes = true
	case !cfg.Decrypt:
		excludes = append(excludes, encrypted)
	}

	files, scanned, err := filter.Resolve(fs, cfg.Files, includes, excludes, hasIncludes)
	if err != nil {
		return nil, scanned, fmt.Errorf("filtering files: %w", err)
	}

	return files, scanned, nil
}

// loadPatterns merges CLI and file-based include/exclude patterns.
func loadPatterns(fs afero.Fs, cfg *config.Config) (includes, excludes []string, err error) {
	includes = append(includes, cfg.Include...)
	excludes = append(excludes, cfg.Exclude...)

	if cfg.IncludeFrom != "" {
		patterns, err := codec.LoadList(fs, cfg.IncludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading include patterns: %w", err)
		}

		includes = append(includes, patterns...)
	}

	if cfg.ExcludeFrom != "" {
		patterns, err := codec.LoadList(fs, cfg.ExcludeFrom)
		if err != nil {
			return nil, nil, fmt.Errorf("loading exclude patterns: %w", err)
		}

		excludes = append(excludes, patterns...)
	}

	return filter.Normalize(includes), filter.Normalize(excludes), nil
}

// dryRun previews what would be processed without actually encrypting/decrypting.
func dryRun(fs afero.Fs, cfg *config.Config, scanned, excluded int, start time.Time, stdout, stderr io.Writer) {
	var totalSize int64

	for _, file := range cfg.Files {
		if !cfg.Quiet {
			fmt.Fprintf(stdout, "Processed %q -> %q\n", file, encryption.OutputPath(file, cfg))
		}

		if cfg.Stats {
			if info, err := fs.Stat(file); err == nil {
				totalSize += info.Size()
			}
		}
	}

	if cfg.Stats {
		printStats(stderr, scanned, excluded, len(cfg.Files), 0, totalSize, time.Since(start))
	}
}

func printStats(w io.Writer, scanned, excluded, processed, errored int, totalSize int64, duration time.Duration) {
	fmt.Fprintf(w, "\nStats\n")
	fmt.Fprintf(w, "  Scanned:   %d\n", scanned)
	fmt.Fprintf(w, "  Excluded:  %d\n", excluded)
	fmt.Fprintf(w, "  Processed: %d\n", processed)
	fmt.Fprintf(w, "  Errors:    %d\n", errored)
	//nolint:gosec // totalSize is always non-negative (sum of file sizes)
	fmt.Fprintf(w, "  Size:      %s\n", humanize.IBytes(uint64(max(0, totalSize))))
	fmt.Fprintf(w, "  Duration:  %s\n", duration.Round(time.Millisecond))
}

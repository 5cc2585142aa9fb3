package logic

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/idelchi/gokuz/internal/config"
	"github.com/idelchi/gokuz/internal/filter"
	"github.com/idelchi/gokuz/pkg/kuznechik"
	"github.com/idelchi/gokuz/pkg/pathmatch"
)

// ErrUnmatchedPatterns is returned by RunCheck when a pattern selects no file.
var ErrUnmatchedPatterns = errors.New("pattern(s) matched no files")

// RunCheck runs the built-in known-answer tests and, when include/exclude
// patterns are configured, validates that every pattern matches at least one file.
func RunCheck(fs afero.Fs, cfg *config.Config, stdout, stderr io.Writer) error {
	if err := kuznechik.SelfTest(); err != nil {
		return fmt.Errorf("self test: %w", err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(stdout, "kuznechik: GOST R 34.12-2015 known-answer tests passed")
	}

	includes, excludes, err := loadPatterns(fs, cfg)
	if err != nil {
		return err
	}

	if len(includes) == 0 && len(excludes) == 0 {
		return nil
	}

	candidates, err := filter.Collect(fs, cfg.Files)
	if err != nil {
		return fmt.Errorf("collecting files: %w", err)
	}

	var failures int

	failures += checkPatterns(stderr, "include", includes, candidates, cfg.Quiet)
	failures += checkPatterns(stderr, "exclude", excludes, candidates, cfg.Quiet)

	if failures > 0 {
		return fmt.Errorf("%d %w", failures, ErrUnmatchedPatterns)
	}

	return nil
}

// checkPatterns tests each pattern individually against candidates.
// Returns the number of patterns that matched zero files.
func checkPatterns(w io.Writer, kind string, patterns, candidates []string, quiet bool) int {
	var failures int

	for _, pattern := range patterns {
		matcher, err := pathmatch.NewMatcher([]string{pattern})
		if err != nil {
			fmt.Fprintf(w, "%s: %s: invalid pattern: %v\n", kind, pattern, err)

			failures++

			continue
		}

		count := len(matcher.Select(candidates))

		if count == 0 {
			fmt.Fprintf(w, "%s: %s: 0 files (ERROR)\n", kind, pattern)

			failures++
		} else if !quiet {
			fmt.Fprintf(w, "%s: %s: %d files\n", kind, pattern, count)
		}
	}

	return failures
}

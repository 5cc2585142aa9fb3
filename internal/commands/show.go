package commands

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/idelchi/gokuz/internal/config"
)

// show prints the resolved configuration as YAML, with the key masked.
func show(w io.Writer, cfg *config.Config) error {
	masked := *cfg

	if masked.Key.String != "" {
		masked.Key.String = "REDACTED"
	}

	out, err := yaml.Marshal(masked)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	_, err = w.Write(out)

	return err //nolint:wrapcheck // plain write
}

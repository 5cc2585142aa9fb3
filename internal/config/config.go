// Package config defines the runtime configuration shared by all commands.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

// ErrNoKey is returned when a command needs a key and neither source is set.
var ErrNoKey = errors.New("a key is required: use --key or --key-file")

// Key selects where the cipher key comes from.
type Key struct {
	// String is the hex-encoded key given on the command line or in the environment.
	String string `label:"--key" mapstructure:"key" validate:"exclusive=File" yaml:"key,omitempty"`

	// File is a path to a file holding the hex-encoded key.
	File string `label:"--key-file" mapstructure:"key-file" yaml:"key-file,omitempty"`
}

// Suffixes are the file extensions used by the file commands.
type Suffixes struct {
	Encrypt string `label:"--encrypt-ext" mapstructure:"encrypt-ext" validate:"required" yaml:"encrypt-ext"`
	Decrypt string `label:"--decrypt-ext" mapstructure:"decrypt-ext" yaml:"decrypt-ext"`
}

// Patterns select files during directory walks, with find -path semantics.
type Patterns struct {
	Include     []string `label:"--include"      mapstructure:"include"      yaml:"include,omitempty"`
	Exclude     []string `label:"--exclude"      mapstructure:"exclude"      yaml:"exclude,omitempty"`
	IncludeFrom string   `label:"--include-from" mapstructure:"include-from" yaml:"include-from,omitempty"`
	ExcludeFrom string   `label:"--exclude-from" mapstructure:"exclude-from" yaml:"exclude-from,omitempty"`
}

// Server configures the HTTP service.
type Server struct {
	Title    string `label:"--title"     mapstructure:"title"     yaml:"title"`
	Host     string `label:"--host"      mapstructure:"host"      yaml:"host"`
	Port     int    `label:"--port"      mapstructure:"port"      validate:"min=1,max=65535" yaml:"port"`
	BasePath string `label:"--base-path" mapstructure:"base-path" validate:"omitempty,startswith=/" yaml:"base-path"`
}

// Log configures diagnostic logging.
type Log struct {
	Level  string `label:"--log-level"  mapstructure:"log-level"  validate:"oneof=trace debug info warn warning error fatal panic" yaml:"log-level"`
	Format string `label:"--log-format" mapstructure:"log-format" validate:"oneof=text json"                                       yaml:"log-format"`
}

// Config holds the resolved flags, environment and config file values.
type Config struct {
	// Show prints the configuration and exits.
	Show bool `mapstructure:"show" yaml:"-"`

	// ConfigFile is an optional YAML file with defaults for any flag.
	ConfigFile string `mapstructure:"config" yaml:"-"`

	Key      `mapstructure:",squash" yaml:",inline"`
	Suffixes `mapstructure:",squash" yaml:",inline"`
	Patterns `mapstructure:",squash" yaml:",inline"`
	Server   `mapstructure:",squash" yaml:",inline"`
	Log      `mapstructure:",squash" yaml:",inline"`

	// ByteOrder is the hex layout of blocks and keys: standard or reversed.
	ByteOrder string `label:"--byte-order" mapstructure:"byte-order" validate:"oneof=standard reversed" yaml:"byte-order"`

	Parallel           int  `label:"--parallel" mapstructure:"parallel" validate:"min=1" yaml:"parallel"`
	Quiet              bool `mapstructure:"quiet"               yaml:"quiet"`
	Delete             bool `mapstructure:"delete"              yaml:"delete"`
	Dry                bool `mapstructure:"dry"                 yaml:"dry"`
	Stats              bool `mapstructure:"stats"               yaml:"stats"`
	PreserveTimestamps bool `mapstructure:"preserve-timestamps" yaml:"preserve-timestamps"`

	// From is a JSONC file with additional hex blocks for the block commands.
	From string `mapstructure:"from" yaml:"-"`

	// Decrypt is set by the decrypt commands.
	Decrypt bool `mapstructure:"-" yaml:"-"`

	// Files are the positional arguments of the file commands.
	Files []string `mapstructure:"-" yaml:"-"`
}

// Validate checks the configuration against its struct tags.
func (c *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := registerExclusive(validate); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", humanize(err))
	}

	return nil
}

// ResolveKey returns the hex key from --key or the contents of --key-file.
func (c *Config) ResolveKey(fs afero.Fs) (string, error) {
	switch {
	case c.Key.String != "":
		return strings.TrimSpace(c.Key.String), nil
	case c.Key.File != "":
		data, err := afero.ReadFile(fs, c.Key.File)
		if err != nil {
			return "", fmt.Errorf("reading key file: %w", err)
		}

		return strings.TrimSpace(string(data)), nil
	default:
		return "", ErrNoKey
	}
}

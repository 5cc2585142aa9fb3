package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/gokuz/internal/config"
)

const envPrefix = "GOKUZ"

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	return newRootCommand(afero.NewOsFs(), cfg, version)
}

func newRootCommand(fs afero.Fs, cfg *config.Config, version string) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "gokuz [flags] command [flags]",
		Short: "Kuznechik (GOST R 34.12-2015) block cipher utility",
		Long: `A utility around the Kuznechik 128-bit block cipher.
Encrypts single hex blocks, hex block files, and serves the cipher over HTTP.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return bind(fs, v, cmd, cfg)
		},
	}

	flags := root.PersistentFlags()

	flags.BoolP("show", "s", false, "Show the configuration and exit")
	flags.StringP("config", "c", "", "Path to a YAML file with flag defaults")
	flags.StringP("key", "k", "", "Cipher key (up to 32 bytes, hex-encoded, left-padded with zeros)")
	flags.StringP("key-file", "f", "", "Path to the key file with the hex-encoded cipher key")
	flags.String("byte-order", "standard", "Hex layout of blocks and keys: standard or reversed")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
	flags.String("log-level", "info", "Log level for diagnostics")
	flags.String("log-format", "text", "Log format: text or json")

	root.AddCommand(
		NewEncryptCommand(fs, cfg),
		NewDecryptCommand(fs, cfg),
		NewBlockCommand(fs, cfg),
		NewToolsCommand(cfg),
		NewServeCommand(cfg, version),
		NewCheckCommand(fs, cfg),
	)

	return root
}

// bind merges flags, GOKUZ_* environment variables and the optional config
// file into cfg, in that order of precedence.
func bind(fs afero.Fs, v *viper.Viper, cmd *cobra.Command, cfg *config.Config) error {
	v.SetFs(fs)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("encrypt-ext", ".kuz")
	v.SetDefault("decrypt-ext", "")
	v.SetDefault("title", "Kuznechik")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", defaultPort)

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	return nil
}

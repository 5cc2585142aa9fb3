package commands //nolint:testpackage // exercises the unexported filesystem seam

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gokuz/internal/config"
)

func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	root := newRootCommand(fs, &config.Config{}, "v0.0.0-test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestBlockCommands(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := execute(t, fs, "block", "encrypt", "--byte-order", "reversed", "-k", "576f726c64", "48656c6c6f")
	require.NoError(t, err)
	assert.Equal(t, "8479704f8d801853d314e7e060f67a80\n", out)

	out, err = execute(t, fs, "block", "decrypt", "--byte-order=reversed", "-k", "576f726c64", "8479704f8d801853d314e7e060f67a80")
	require.NoError(t, err)
	assert.Equal(t, "48656c6c6f\n", out)

	_, err = execute(t, fs, "block", "encrypt", "-k", "00", "--key-file", "key.txt", "00")
	require.ErrorContains(t, err, "--key is mutually exclusive with --key-file")
}

func TestEnvironment(t *testing.T) {
	t.Setenv("GOKUZ_KEY", "576f726c64")
	t.Setenv("GOKUZ_BYTE_ORDER", "reversed")

	out, err := execute(t, afero.NewMemMapFs(), "block", "encrypt", "48656c6c6f")
	require.NoError(t, err)
	assert.Equal(t, "8479704f8d801853d314e7e060f67a80\n", out)
}

func TestConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "gokuz.yml", []byte("key: 576f726c64\nbyte-order: reversed\n"), 0o600))

	out, err := execute(t, fs, "--config", "gokuz.yml", "block", "encrypt", "48656c6c6f")
	require.NoError(t, err)
	assert.Equal(t, "8479704f8d801853d314e7e060f67a80\n", out)
}

func TestShow(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "block", "encrypt", "--show", "-k", "576f726c64")
	require.NoError(t, err)
	assert.Contains(t, out, "key: REDACTED")
	assert.Contains(t, out, "byte-order: standard")
	assert.NotContains(t, out, "576f726c64")
}

func TestFileCommands(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "vectors/rfc.hex", []byte("1122334455667700ffeeddccbbaa9988\n"), 0o600))

	key := "8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef"

	_, err := execute(t, fs, "encrypt", "-q", "-k", key, "--delete", "vectors")
	require.NoError(t, err)

	got, err := afero.ReadFile(fs, "vectors/rfc.hex.kuz")
	require.NoError(t, err)
	assert.Equal(t, "GOKUZ/1 order=standard exec=0\n7f679d90bebc24305a468d42b9d4edcd\n", string(got))

	_, err = execute(t, fs, "decrypt", "-q", "-k", key, "vectors")
	require.NoError(t, err)

	got, err = afero.ReadFile(fs, "vectors/rfc.hex")
	require.NoError(t, err)
	assert.Equal(t, "1122334455667700ffeeddccbbaa9988\n", string(got))
}

func TestToolsAndCheck(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := execute(t, fs, "tools", "str-to-hex", "Hello")
	require.NoError(t, err)
	assert.Equal(t, "48656c6c6f\n", out)

	out, err = execute(t, fs, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "passed")

	_, err = execute(t, fs, "--parallel", "0", "check")
	require.ErrorContains(t, err, "--parallel must be at least 1")
}

func TestPatternFlags(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, name := range []string{"vectors/a.hex", "vectors/skip.hex", "vectors/notes.txt"} {
		require.NoError(t, afero.WriteFile(fs, name, []byte("00\n"), 0o600))
	}

	key := "8899aabbccddeeff0011223344556677fedcba98765432100123456789abcdef"
	args := []string{"encrypt", "-q", "-k", key, "-e", "*.txt", "--exclude", "*/skip.hex", "vectors"}

	_, err := execute(t, fs, args...)
	require.NoError(t, err)

	// A second run skips the encrypted outputs of the first.
	_, err = execute(t, fs, args...)
	require.NoError(t, err)

	for name, want := range map[string]bool{
		"vectors/a.hex.kuz":     true,
		"vectors/a.hex.kuz.kuz": false,
		"vectors/skip.hex.kuz":  false,
		"vectors/notes.txt.kuz": false,
	} {
		exists, err := afero.Exists(fs, name)
		require.NoError(t, err)
		assert.Equal(t, want, exists, name)
	}

	out, err := execute(t, fs, "check", "-i", "*.kuz", "vectors")
	require.NoError(t, err)
	assert.Contains(t, out, "include: *.kuz: 1 files")

	out, err = execute(t, fs, "check", "-e", "*.md", "vectors")
	require.ErrorContains(t, err, "pattern(s) matched no files")
	assert.Contains(t, out, "exclude: *.md: 0 files (ERROR)")
}

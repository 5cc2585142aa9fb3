package filter_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gokuz/internal/filter"
)

func newFs(t *testing.T, files ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte("00\n"), 0o600))
	}

	return fs
}

func TestResolve(t *testing.T) {
	t.Parallel()

	fs := newFs(t, "blocks/a.hex", "blocks/b.hex.kuz", "blocks/nested/c.hex.kuz", "blocks/notes.txt", "top.hex")

	tests := []struct {
		name        string
		args        []string
		includes    []string
		excludes    []string
		hasIncludes bool
		want        []string
		scanned     int
	}{
		{
			name:    "walk_all",
			args:    []string{"blocks"},
			want:    []string{"blocks/a.hex", "blocks/b.hex.kuz", "blocks/nested/c.hex.kuz", "blocks/notes.txt"},
			scanned: 4,
		},
		{
			name:        "include_encrypted",
			args:        []string{"blocks"},
			includes:    []string{"*.kuz"},
			hasIncludes: true,
			want:        []string{"blocks/b.hex.kuz", "blocks/nested/c.hex.kuz"},
			scanned:     4,
		},
		{
			name:     "exclude_encrypted_and_text",
			args:     []string{"blocks"},
			excludes: []string{"*.kuz", "./blocks/*.txt"},
			want:     []string{"blocks/a.hex"},
			scanned:  4,
		},
		{
			name:        "exclude_wins",
			args:        []string{"blocks"},
			includes:    []string{"blocks/*"},
			excludes:    []string{"blocks/nested/*"},
			hasIncludes: true,
			want:        []string{"blocks/a.hex", "blocks/b.hex.kuz", "blocks/notes.txt"},
			scanned:     4,
		},
		{
			name:     "explicit_file_bypasses_patterns",
			args:     []string{"top.hex", "./top.hex"},
			excludes: []string{"*.hex"},
			want:     []string{"top.hex"},
			scanned:  2,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			files, scanned, err := filter.Resolve(fs, tc.args, tc.includes, tc.excludes, tc.hasIncludes)
			require.NoError(t, err)
			assert.ElementsMatch(t, tc.want, files)
			assert.Equal(t, tc.scanned, scanned)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	t.Parallel()

	fs := newFs(t, "blocks/a.hex")

	_, _, err := filter.Resolve(fs, []string{"/etc"}, nil, nil, false)
	require.ErrorContains(t, err, "absolute paths")

	_, _, err = filter.Resolve(fs, []string{"../outside"}, nil, nil, false)
	require.ErrorContains(t, err, "within the current working directory")

	_, _, err = filter.Resolve(fs, []string{"missing"}, nil, nil, false)
	require.Error(t, err)

	_, _, err = filter.Resolve(fs, []string{"blocks"}, []string{"*.kuz"}, nil, true)
	require.ErrorIs(t, err, filter.ErrNoFiles)

	_, _, err = filter.Resolve(fs, []string{"blocks"}, []string{"[a"}, nil, true)
	require.ErrorContains(t, err, "compiling include patterns")
}

func TestCollect(t *testing.T) {
	t.Parallel()

	fs := newFs(t, "blocks/a.hex", "blocks/nested/c.hex.kuz", "top.hex")

	got, err := filter.Collect(fs, []string{"blocks", "top.hex", "blocks/a.hex"})
	require.NoError(t, err)
	assert.Equal(t, []string{"blocks/a.hex", "blocks/nested/c.hex.kuz", "top.hex"}, got)
}

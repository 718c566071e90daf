package filex

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExistsAndIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "textx.toml")
	require.NoError(t, os.WriteFile(file, []byte("[log]\n"), 0o600))

	tests := []struct {
		name   string
		path   string
		exists bool
		isFile bool
	}{
		{"regular file", file, true, true},
		{"directory", dir, true, false},
		{"missing", filepath.Join(dir, "missing.toml"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exists, Exists(tt.path))
			assert.Equal(t, tt.isFile, IsFile(tt.path))
		})
	}
}

func TestReadAllLimited(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		limit  int64
		want   string
		tooBig bool
	}{
		{"under limit", "hello", 10, "hello", false},
		{"exactly at limit", "hello", 5, "hello", false},
		{"over limit", "hello!", 5, "", true},
		{"no limit", strings.Repeat("x", 100), 0, strings.Repeat("x", 100), false},
		{"empty", "", 5, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadAllLimited(strings.NewReader(tt.input), tt.limit)
			if tt.tooBig {
				assert.ErrorIs(t, err, ErrTooLarge)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestReadFileLimited(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(file, []byte("0123456789"), 0o600))

	got, err := ReadFileLimited(file, 64)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(got))

	_, err = ReadFileLimited(file, 4)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = ReadFileLimited(filepath.Join(dir, "missing.txt"), 64)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

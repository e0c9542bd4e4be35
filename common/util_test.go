//go:build unit
// +build unit

package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "CNOT", want: "cnot"},
		{in: "c-not", want: "cnot"},
		{in: " C_RX ", want: "crx"},
		{in: "Hadamard", want: "hadamard"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.in))
		})
	}
	assert.True(t, ContainsName("Circuit_1", []string{"circuit1", "circuit2"}))
	assert.False(t, ContainsName("circuit3", []string{"circuit1", "circuit2"}))
}

func TestIsDirWritable(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, IsDirWritable(dir))

	assert.ErrorContains(t, IsDirWritable(filepath.Join(dir, "missing")), "directory does not exist")

	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.ErrorContains(t, IsDirWritable(file), "is not a directory")
}

func TestReadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setting.toml")
	require.NoError(t, os.WriteFile(path, []byte("[estimator]\n"), 0o644))

	got, err := ReadSettingsFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "[estimator]\n", got)

	_, err = ReadSettingsFile(path + ".missing")
	assert.Error(t, err)
}

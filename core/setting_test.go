//go:build unit
// +build unit

package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSetting(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
		want    func(s *Setting)
	}{
		{
			name: "empty",
			in:   "",
			want: func(s *Setting) {},
		},
		{
			name: "estimator table",
			in: heredoc.Doc(`
				[estimator]
				samples = 200
				workers = 3
				batch_size = 16
				seed = 42
			`),
			want: func(s *Setting) {
				s.Estimator = EstimatorSetting{Samples: 200, Workers: 3, BatchSize: 16, Seed: 42}
			},
		},
		{
			name: "output table keeps estimator defaults",
			in: heredoc.Doc(`
				[output]
				format = "json"
				pretty = false
			`),
			want: func(s *Setting) {
				s.Output = OutputSetting{Format: "json", Pretty: false}
			},
		},
		{
			name:    "broken toml",
			in:      "[estimator\nsamples = 1",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewSetting()
			err := got.parseSetting(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			want := NewSetting()
			tt.want(want)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseSettingFromPath(t *testing.T) {
	s, err := ParseSettingFromPath("")
	require.NoError(t, err)
	assert.Equal(t, NewSetting(), s)

	path := filepath.Join(t.TempDir(), "setting.toml")
	require.NoError(t, os.WriteFile(path, []byte("[estimator]\nsamples = 10\n"), 0o644))
	s, err = ParseSettingFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 10, s.Estimator.Samples)

	_, err = ParseSettingFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestOverrideAndValidate(t *testing.T) {
	s := NewSetting()
	s.Override(&Conf{Samples: 7, Seed: 9, Format: "json"})
	assert.Equal(t, 7, s.Estimator.Samples)
	assert.Equal(t, uint64(9), s.Estimator.Seed)
	assert.Equal(t, DEFAULT_BATCH_SIZE, s.Estimator.BatchSize)
	assert.Equal(t, "json", s.Output.Format)
	assert.NoError(t, s.Validate())

	s.Estimator.Samples = 0
	s.Estimator.Workers = -1
	s.Output.Format = "xml"
	err := s.Validate()
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Contains(t, err.Error(), "samples must be positive")
	assert.Contains(t, err.Error(), "workers must be positive")
	assert.Contains(t, err.Error(), "unknown output format")
}

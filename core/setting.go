package core

import (
	"fmt"
	"runtime"

	"github.com/BurntSushi/toml"
	"github.com/oqtopus-team/entcap/common"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	DEFAULT_SAMPLES    = 5000
	DEFAULT_BATCH_SIZE = 64
	DEFAULT_FORMAT     = "text"
)

type EstimatorSetting struct {
	Samples   int    `toml:"samples"`
	Workers   int    `toml:"workers"`
	BatchSize int    `toml:"batch_size"`
	Seed      uint64 `toml:"seed"`
}

type OutputSetting struct {
	Format string `toml:"format"`
	Pretty bool   `toml:"pretty"`
}

type Setting struct {
	Estimator EstimatorSetting `toml:"estimator"`
	Output    OutputSetting    `toml:"output"`
}

func NewSetting() *Setting {
	return &Setting{
		Estimator: EstimatorSetting{
			Samples:   DEFAULT_SAMPLES,
			Workers:   runtime.NumCPU(),
			BatchSize: DEFAULT_BATCH_SIZE,
		},
		Output: OutputSetting{
			Format: DEFAULT_FORMAT,
			Pretty: true,
		},
	}
}

// ParseSettingFromPath returns the defaults overlaid with the file at settingPath.
// An empty path yields the defaults.
func ParseSettingFromPath(settingPath string) (*Setting, error) {
	s := NewSetting()
	if settingPath == "" {
		zap.L().Debug("no setting file is given, using defaults")
		return s, nil
	}
	tomlString, err := common.ReadSettingsFile(settingPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read setting file/reason:%s", err))
		return nil, err
	}
	if err := s.parseSetting(tomlString); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Setting) parseSetting(tomlString string) error {
	_, err := toml.Decode(tomlString, s)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to parse setting/reason:%s", err))
		return err
	}
	zap.L().Debug(fmt.Sprintf("Setting is %+v", *s))
	return nil
}

// Override applies every non-zero value given on the command line.
func (s *Setting) Override(c *Conf) {
	if c.Samples != 0 {
		s.Estimator.Samples = c.Samples
	}
	if c.Workers != 0 {
		s.Estimator.Workers = c.Workers
	}
	if c.BatchSize != 0 {
		s.Estimator.BatchSize = c.BatchSize
	}
	if c.Seed != 0 {
		s.Estimator.Seed = c.Seed
	}
	if c.Format != "" {
		s.Output.Format = c.Format
	}
}

func (s *Setting) Validate() error {
	var err error
	if s.Estimator.Samples < 1 {
		err = multierr.Append(err, fmt.Errorf("samples must be positive, got %d", s.Estimator.Samples))
	}
	if s.Estimator.Workers < 1 {
		err = multierr.Append(err, fmt.Errorf("workers must be positive, got %d", s.Estimator.Workers))
	}
	if s.Estimator.BatchSize < 1 {
		err = multierr.Append(err, fmt.Errorf("batch_size must be positive, got %d", s.Estimator.BatchSize))
	}
	switch s.Output.Format {
	case "text", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("unknown output format %q", s.Output.Format))
	}
	if err != nil {
		return WrapConfigurationError("setting", err)
	}
	return nil
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vparth/truepole/internal/eop"
	"github.com/vparth/truepole/internal/nutation"
)

const (
	DefaultMethod   = "iau2006"
	DefaultDataDir  = ".truepole"
	DefaultStepDays = 1.0
)

type Config struct {
	Method     string     `yaml:"method"`
	CorrectEOP bool       `yaml:"correct_eop"`
	EOPFile    string     `yaml:"eop_file"`
	DataDir    string     `yaml:"data_dir"`
	Series     SeriesOpts `yaml:"series"`
}

type SeriesOpts struct {
	StepDays float64 `yaml:"step_days"`
	PlotW    int     `yaml:"plot_width"`
	PlotH    int     `yaml:"plot_height"`
}

func DefaultConfig() *Config {
	return &Config{
		Method:  DefaultMethod,
		DataDir: DefaultDataDir,
		Series: SeriesOpts{
			StepDays: DefaultStepDays,
			PlotW:    72,
			PlotH:    16,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Runtime resolves the yaml record into the evaluation configuration the
// nutation package consumes: the parsed reduction method plus, when the
// pole-offset correction is enabled, a provider for the configured EOP
// table.
func (c *Config) Runtime() (nutation.Config, error) {
	m, err := nutation.ParseMethod(c.Method)
	if err != nil {
		return nutation.Config{}, fmt.Errorf("config: %w", err)
	}
	rc := nutation.Config{Method: m, CorrectEOP: c.CorrectEOP}
	if c.CorrectEOP {
		rc.EOP = eop.NewProvider(c.EOPFile)
	}
	return rc, nil
}

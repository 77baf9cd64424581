// Public domain.

package runner

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/sszlab/freqloop/metric"
	"github.com/sszlab/freqloop/phys"
)

// Config controls a batch run.  Values come from the environment and may be
// overridden by command-line flags.
type Config struct {
	// Output is the path of the JSON run report.
	Output string `env:"FREQLOOP_OUTPUT" envDefault:"freqloop_report.json"`
	// Workers bounds parallel scenario evaluation; 0 means one per CPU.
	Workers int `env:"FREQLOOP_WORKERS" envDefault:"0"`
	// Model selects the spacetime variant for the loop and path scenarios:
	// gr, ssz or ssz-tanh.
	Model string `env:"FREQLOOP_MODEL" envDefault:"gr"`
	// Catalog optionally names a YAML file with extra experiment records.
	Catalog string `env:"FREQLOOP_CATALOG"`
}

// FromEnv reads the configuration from the environment.
func FromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("runner: parse env: %w", err)
	}
	return c, nil
}

func (c Config) model(cst phys.Constants, mass float64) (metric.Model, error) {
	switch c.Model {
	case "gr":
		return metric.NewGR(cst, mass), nil
	case "ssz":
		return metric.NewSSZ(cst, mass), nil
	case "ssz-tanh":
		return metric.NewSSZTanh(cst, mass, 1), nil
	}
	return nil, fmt.Errorf("runner: unknown model %q", c.Model)
}

// Package config loads the YAML run configuration the demo program is
// driven by.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vernadici/econgo/regression"
)

// RunConfig describes one regression run: where the data lives and how
// the design matrix is specified.
type RunConfig struct {
	// Data is the path of the CSV observation table.
	Data string `yaml:"data"`

	// Dependent names the column regressed on the others.
	Dependent string `yaml:"dependent"`

	// Regressors names the columns used as regressors; empty means
	// every column except the dependent one.
	Regressors []string `yaml:"regressors"`

	// Constant is the scale of the constant column; omitted means 1,
	// an explicit 0 disables the constant.
	Constant *float64 `yaml:"constant"`

	// Trend is the trend offset; omitted means no trend column.
	Trend *float64 `yaml:"trend"`
}

// Load reads and validates a YAML run configuration.
func Load(path string) (*RunConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	var c RunConfig
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if c.Data == "" {
		return nil, fmt.Errorf("missing data path")
	}
	if c.Dependent == "" {
		return nil, fmt.Errorf("missing dependent variable")
	}
	if c.Constant == nil {
		one := 1.0
		c.Constant = &one
	}
	return &c, nil
}

// Spec converts the configuration into a model specification. Variable
// names are left empty; the caller sets them once the regressor columns
// are resolved.
func (c *RunConfig) Spec() regression.ModelSpec {
	spec := regression.DefaultSpec()
	spec.DepName = c.Dependent
	spec.Constant = *c.Constant
	if c.Trend != nil {
		spec.HasTrend = true
		spec.TrendOffset = *c.Trend
	}
	return spec
}

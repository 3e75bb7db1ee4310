// Package sweep loads benchmark sweep definitions from YAML files.
//
// A sweep names a workload and the per-parameter value axes whose
// cartesian product forms the argument tuples to time:
//
//	name: sleep-sweep
//	workload: sleep
//	pace: 2
//	axes:
//	  - [5ms, 10ms]
//	  - [1, 2]
package sweep

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition describes one benchmark sweep.
type Definition struct {
	Name     string  `yaml:"name"`
	Workload string  `yaml:"workload"`
	Pace     float64 `yaml:"pace"`
	Axes     [][]any `yaml:"axes"`
	// RecordArgs / RecordOutput choose what gets annotated per timing.
	// Unset means true.
	RecordArgs   *bool `yaml:"record_args"`
	RecordOutput *bool `yaml:"record_output"`
}

// Parse decodes and validates a sweep definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing sweep definition: %w", err)
	}
	if def.Workload == "" {
		return nil, errors.New("sweep definition: workload is required")
	}
	if len(def.Axes) == 0 {
		return nil, errors.New("sweep definition: at least one axis is required")
	}
	for i, axis := range def.Axes {
		if len(axis) == 0 {
			return nil, fmt.Errorf("sweep definition: axis %d is empty", i)
		}
	}
	if def.Pace < 0 {
		return nil, fmt.Errorf("sweep definition: pace must not be negative, got %v", def.Pace)
	}
	return &def, nil
}

// Load reads and parses a sweep definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep file %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// ShouldRecordArgs returns the record_args setting, defaulting to true.
func (d *Definition) ShouldRecordArgs() bool {
	return d.RecordArgs == nil || *d.RecordArgs
}

// ShouldRecordOutput returns the record_output setting, defaulting to true.
func (d *Definition) ShouldRecordOutput() bool {
	return d.RecordOutput == nil || *d.RecordOutput
}

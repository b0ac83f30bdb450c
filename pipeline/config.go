package pipeline

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vkiriako/trigraph/tsv"
)

var (
	// ErrNoInput indicates a run was configured without input files.
	ErrNoInput = errors.New("pipeline: no input files configured")

	// ErrBadOption indicates a config field holds a nonsensical value.
	// Wrapped errors name the field.
	ErrBadOption = errors.New("pipeline: invalid option")
)

// Config describes one analysis run.
type Config struct {
	// InputPaths are the TSV files to analyze, one word per file.
	InputPaths []string `yaml:"inputs"`

	// Column is the state column to read; empty selects the loader
	// default.
	Column string `yaml:"column"`

	// ErrorToken marks unclassifiable rows; empty selects the loader
	// default.
	ErrorToken string `yaml:"error_token"`

	// MinDuration drops runs of consecutive equal states shorter than
	// this many samples. Values <= 1 disable the filter.
	MinDuration int `yaml:"min_duration"`

	// Stride keeps every Nth sample. Values <= 1 disable subsampling.
	Stride int `yaml:"stride"`

	// CollapseRuns reduces each dwell period to a single visit, so
	// the graph counts state changes only.
	CollapseRuns bool `yaml:"collapse_runs"`

	// OutputGEXF is the export path; empty skips the export phase.
	OutputGEXF string `yaml:"output_gexf"`

	// Workers > 1 enables the parallel build with that many
	// goroutines; 0 and 1 build sequentially.
	Workers int `yaml:"workers"`
}

// LoadConfig reads a run configuration from a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("pipeline: read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("pipeline: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration before a run.
func (c Config) Validate() error {
	if len(c.InputPaths) == 0 {
		return ErrNoInput
	}
	if c.MinDuration < 0 {
		return fmt.Errorf("%w: min_duration must be >= 0, got %d", ErrBadOption, c.MinDuration)
	}
	if c.Stride < 0 {
		return fmt.Errorf("%w: stride must be >= 0, got %d", ErrBadOption, c.Stride)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrBadOption, c.Workers)
	}
	return nil
}

// loaderOptions translates the config into tsv options.
func (c Config) loaderOptions() []tsv.Option {
	var opts []tsv.Option
	if c.Column != "" {
		opts = append(opts, tsv.WithColumn(c.Column))
	}
	if c.ErrorToken != "" {
		opts = append(opts, tsv.WithErrorToken(c.ErrorToken))
	}
	return opts
}

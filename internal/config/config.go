package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Input    InputConfig    `yaml:"input" envconfig:"INPUT"`
	Output   OutputConfig   `yaml:"output" envconfig:"OUTPUT"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Report   ReportConfig   `yaml:"report" envconfig:"REPORT"`
	Analysis AnalysisConfig `yaml:"analysis" envconfig:"ANALYSIS"`
}

// InputConfig describes the dataset to analyze
type InputConfig struct {
	Path      string `yaml:"path" envconfig:"PATH" validate:"required"`
	Delimiter string `yaml:"delimiter" envconfig:"DELIMITER" validate:"len=1"`
}

// OutputConfig contains file system paths for generated reports
type OutputConfig struct {
	Dir string `yaml:"dir" envconfig:"DIR" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ReportConfig controls which report artifacts are produced
type ReportConfig struct {
	CSV       bool `yaml:"csv" envconfig:"CSV"`
	Excel     bool `yaml:"excel" envconfig:"EXCEL"`
	Figures   bool `yaml:"figures" envconfig:"FIGURES"`
	Narrative bool `yaml:"narrative" envconfig:"NARRATIVE"`
	BOMPrefix bool `yaml:"bom_prefix" envconfig:"BOM_PREFIX"`
}

// AnalysisConfig tunes the analysis runner
type AnalysisConfig struct {
	Concurrency int `yaml:"concurrency" envconfig:"CONCURRENCY" validate:"min=1,max=64"`
}

// Default returns the baseline configuration. File and environment values
// are layered on top of it by Load.
func Default() Config {
	return Config{
		Input: InputConfig{
			Delimiter: ";",
		},
		Output: OutputConfig{
			Dir: "reports",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/eda.log",
		},
		Report: ReportConfig{
			CSV:       true,
			Excel:     true,
			Figures:   true,
			Narrative: true,
			BOMPrefix: false,
		},
		Analysis: AnalysisConfig{
			Concurrency: 4,
		},
	}
}

// Load loads configuration by layering, in order of increasing precedence:
// built-in defaults, an optional YAML file, then EDA_* environment
// variables. configFile may be empty.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, fmt.Errorf("config file not found: %s", configFile)
		}
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("EDA", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	return &cfg, nil
}

// loadFromFile unmarshals a YAML file over the existing configuration,
// touching only the keys the file sets.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration for structural problems.
// Called after CLI flags have been applied on top of Load's result.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// EnsureOutputDirs creates the report output directory tree.
func (c *Config) EnsureOutputDirs() error {
	dirs := []string{
		c.Output.Dir,
		filepath.Join(c.Output.Dir, "tables"),
		filepath.Join(c.Output.Dir, "figures"),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// TablesDir returns the directory for CSV table output.
func (c *Config) TablesDir() string {
	return filepath.Join(c.Output.Dir, "tables")
}

// FiguresDir returns the directory for figure spec output.
func (c *Config) FiguresDir() string {
	return filepath.Join(c.Output.Dir, "figures")
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `toml:"-" validate:"required"`

	// Coverage report settings
	CoverageJSON     string `toml:"coverage_json" validate:"required"`
	CoverageMarkdown string `toml:"coverage_markdown" validate:"required"`
	CoverageHTML     string `toml:"coverage_html" validate:"required"`

	// Summary JSON settings
	SummaryFile string `toml:"summary_file" validate:"required"`
	SummaryDir  string `toml:"summary_dir" validate:"required"`

	// Test plan settings
	TestPlanMarkdown string `toml:"test_plan_markdown" validate:"required"`
	TestPlanCSV      string `toml:"test_plan_csv" validate:"required"`

	// Organizer settings
	FrontendDir string `toml:"frontend_dir" validate:"required"`
	BackendDir  string `toml:"backend_dir" validate:"required"`

	// Log level from the environment ("debug", "info", ...)
	LogLevel string `toml:"log_level"`

	// Command flags
	Flags Flags `toml:"-"`
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	ConfigFile  string
	Verbose     bool
	Input       string
	Output      string
	Totals      bool
	Filter      string
	JSON        bool
	Preview     bool
	Quiet       bool
	List        bool
	Strict      bool
	DryRun      bool
	Tree        bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ProjectPath:      DefaultProjectPath,
		CoverageJSON:     DefaultCoverageJSON,
		CoverageMarkdown: DefaultCoverageMarkdown,
		CoverageHTML:     DefaultCoverageHTML,
		SummaryFile:      DefaultSummaryFile,
		SummaryDir:       DefaultSummaryDir,
		TestPlanMarkdown: DefaultTestPlanMarkdown,
		TestPlanCSV:      DefaultTestPlanCSV,
		FrontendDir:      DefaultFrontendDir,
		BackendDir:       DefaultBackendDir,
	}
}

// Load creates a config for the given flags: defaults, then the project's
// .env file, then the TOML file, then the flags themselves.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if flags.ProjectPath != "" {
		cfg.ProjectPath = flags.ProjectPath
	}
	cfg.Flags = flags

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(cfg.ProjectPath, DefaultEnvFile))
	cfg.LogLevel = os.Getenv(EnvLogLevel)

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile overlays the TOML config file when there is one. An explicitly
// named file must exist; the default one is optional.
func (c *Config) loadFile() error {
	path := c.Flags.ConfigFile
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	path = c.Resolve(path)

	if _, err := os.Stat(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat config %s: %w", path, err)
	}

	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Validate checks that no required setting was blanked by the config file
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Resolve returns path relative to the project path, unless it is absolute
func (c *Config) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectPath, path)
}

// GetCoverageInput returns the coverage JSON path, using the flag if provided
func (c *Config) GetCoverageInput() string {
	if c.Flags.Input != "" {
		return c.Resolve(c.Flags.Input)
	}
	return c.Resolve(c.CoverageJSON)
}

// GetCoverageOutput returns the Markdown report path, using the flag if provided
func (c *Config) GetCoverageOutput() string {
	if c.Flags.Output != "" {
		return c.Resolve(c.Flags.Output)
	}
	return c.Resolve(c.CoverageMarkdown)
}

// GetSummaryPath returns the full path to the coverage summary JSON file
func (c *Config) GetSummaryPath() string {
	return c.Resolve(filepath.Join(c.SummaryDir, c.SummaryFile))
}

// GetTestPlanInput returns the test plan Markdown path, using the flag if provided
func (c *Config) GetTestPlanInput() string {
	if c.Flags.Input != "" {
		return c.Resolve(c.Flags.Input)
	}
	return c.Resolve(c.TestPlanMarkdown)
}

// GetTestPlanOutput returns the CSV path, using the flag if provided
func (c *Config) GetTestPlanOutput() string {
	if c.Flags.Output != "" {
		return c.Resolve(c.Flags.Output)
	}
	return c.Resolve(c.TestPlanCSV)
}

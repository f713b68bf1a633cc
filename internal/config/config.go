// Package config loads, validates and persists leakcalc configuration.
//
// Configuration lives in $LEAKCALC_HOME/config.yaml (default
// ~/.leakcalc/config.yaml). Values are resolved in the order defaults, file,
// environment, command-line flags; flags are applied by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/sergeyya18/leakcalc/internal/leakage"
)

// CurrentVersion is the config schema version written by Save.
const CurrentVersion = "1.0.0"

// supportedVersions is the semver constraint a config file must satisfy.
const supportedVersions = "^1.0.0"

// Output format names.
const (
	FormatTable      = "table"
	FormatJSON       = "json"
	FormatNDJSON     = "ndjson"
	FormatPrometheus = "prometheus"
)

// Environment variables overriding file values.
const (
	EnvHome         = "LEAKCALC_HOME"
	EnvOutputFormat = "LEAKCALC_OUTPUT_FORMAT"
	EnvLogLevel     = "LEAKCALC_LOG_LEVEL"
	EnvLogFormat    = "LEAKCALC_LOG_FORMAT"
	EnvPrecision    = "LEAKCALC_PRECISION"
)

// Config is the top-level configuration.
type Config struct {
	Version     string            `yaml:"version"`
	Output      OutputConfig      `yaml:"output"`
	Calculation CalculationConfig `yaml:"calculation"`
	Logging     LoggingConfig     `yaml:"logging"`

	configPath string
	loadErr    error
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	// DefaultFormat is one of table, json, ndjson, prometheus.
	DefaultFormat string `yaml:"default_format"`
}

// CalculationConfig controls the formula evaluation.
type CalculationConfig struct {
	// Precision is raw or rounded, see leakage.Precision.
	Precision string `yaml:"precision"`

	// Defaults is the scenario used when an input is not given explicitly.
	Defaults leakage.Inputs `yaml:"defaults"`
}

// LoggingConfig controls logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// DefaultInputs is the scenario shipped as the default: a 5 mm orifice at
// 5 kgf/cm² and 20 °C leaking for one hour.
func DefaultInputs() leakage.Inputs {
	return leakage.Inputs{
		Diameter:    0.005,
		Temperature: 20,
		Duration:    3600,
		Pressure:    5,
		Density:     0.68,
		N2Percent:   1,
	}
}

// Default returns the built-in configuration without touching the file system.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Output:  OutputConfig{DefaultFormat: FormatTable},
		Calculation: CalculationConfig{
			Precision: leakage.PrecisionRaw.String(),
			Defaults:  DefaultInputs(),
		},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// New returns the effective configuration: defaults, overlaid by the config
// file when it exists, overlaid by environment variables. A config file that
// cannot be read or parsed is not fatal; the error is kept and reported by
// LoadError, and the defaults stay in effect.
func New() *Config {
	cfg := Default()

	dir, err := GetConfigDir()
	if err == nil {
		cfg.configPath = filepath.Join(dir, "config.yaml")
		if _, statErr := os.Stat(cfg.configPath); statErr == nil {
			cfg.loadErr = cfg.readFile(cfg.configPath)
		}
	}

	cfg.applyEnv()
	return cfg
}

// Load reads the configuration file at path on top of the defaults and
// applies environment overrides. Unlike New, a bad file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	cfg.configPath = path
	if err := cfg.readFile(path); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// readFile unmarshals path into cfg.
func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnv applies LEAKCALC_* environment overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvPrecision); v != "" {
		c.Calculation.Precision = v
	}
}

// LoadError returns the error encountered while New read the config file.
func (c *Config) LoadError() error { return c.loadErr }

// ConfigPath returns the file this configuration is read from and saved to.
func (c *Config) ConfigPath() string { return c.configPath }

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) { c.configPath = path }

// Save writes the configuration to ConfigPath, creating its directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if c.Version == "" {
		c.Version = CurrentVersion
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error

	if err := validateVersion(c.Version); err != nil {
		errs = append(errs, err)
	}
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("output.default_format: unsupported format %q", c.Output.DefaultFormat))
	}
	if _, err := leakage.ParsePrecision(c.Calculation.Precision); err != nil {
		errs = append(errs, fmt.Errorf("calculation.precision: %w", err))
	}
	if _, err := leakage.Compute(c.Calculation.Defaults); err != nil {
		errs = append(errs, fmt.Errorf("calculation.defaults: %w", err))
	}
	if c.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
			errs = append(errs, fmt.Errorf("logging.level: %w", err))
		}
	}

	return errors.Join(errs...)
}

// Precision returns the parsed calculation precision, defaulting to raw.
func (c *Config) Precision() leakage.Precision {
	p, err := leakage.ParsePrecision(c.Calculation.Precision)
	if err != nil {
		return leakage.PrecisionRaw
	}
	return p
}

// validateVersion checks the schema version against the supported range.
func validateVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("version: %q is not a semantic version: %w", v, err)
	}
	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("version: invalid constraint: %w", err)
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("version: %s is not supported (want %s)", v, supportedVersions)
	}
	return nil
}

// IsValidOutputFormat reports whether format names a supported renderer.
func IsValidOutputFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatNDJSON, FormatPrometheus:
		return true
	default:
		return false
	}
}

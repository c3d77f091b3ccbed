// Package characterize drives the characterization pipeline for one
// STL asset: read, sniff, decode, analyze, checksum, assemble.
package characterize

import (
	"fmt"
	"os"

	"github.com/hkoenig/stlmeta/pkg/report"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is probed when no --config flag is given
const DefaultConfigPath = "stlmeta.yaml"

// Config holds the pipeline settings a host installation may override
type Config struct {
	// SchemaVersion selects the report schema revision, 1 or 2
	SchemaVersion int `yaml:"schemaVersion"`

	// ExtendedChecks enables the quadratic isolated-triangle scan
	ExtendedChecks bool `yaml:"extendedChecks"`

	// Indent is the XML indentation string
	Indent string `yaml:"indent"`

	// ReportSuffix is appended to source file names in watch mode
	ReportSuffix string `yaml:"reportSuffix"`
}

// DefaultConfig returns the settings used when no config file exists
func DefaultConfig() *Config {
	return &Config{
		SchemaVersion:  1,
		ExtendedChecks: true,
		Indent:         "    ",
		ReportSuffix:   ".xml",
	}
}

// Load reads the config from path, or probes DefaultConfigPath when
// path is empty, falling back to defaults if no file exists.
func Load(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultConfigPath); err != nil {
			return DefaultConfig(), nil
		}
		path = DefaultConfigPath
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Unmarshal over the defaults so omitted keys keep their default
	// while an explicit false still wins.
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SchemaVersion != 1 && c.SchemaVersion != 2 {
		return fmt.Errorf("unsupported schemaVersion %d (must be 1 or 2)", c.SchemaVersion)
	}
	return nil
}

// Schema returns the report schema revision selected by the config
func (c *Config) Schema() report.SchemaVersion {
	return report.SchemaVersion(c.SchemaVersion)
}

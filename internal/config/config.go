// Package config handles cdegraph configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/healcde/cdegraph/internal/viz"
	"gopkg.in/yaml.v3"
)

// Config holds the tool configuration, loaded from YAML with environment
// overrides applied on top.
type Config struct {
	Input        string      `yaml:"input,omitempty"`  // Default dataset path
	Output       string      `yaml:"output,omitempty"` // Rendered artifact path
	Title        string      `yaml:"title,omitempty"`
	Offline      bool        `yaml:"offline,omitempty"`
	IncludeGuide *bool       `yaml:"include_guide,omitempty"` // nil means default (true)
	Physics      viz.Physics `yaml:"physics"`
}

const (
	// ConfigFile is the config file name searched for in the working
	// directory and under the XDG config directory.
	ConfigFile = "cdegraph.yml"
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "cdegraph"

	// DefaultOutput is where the rendered artifact is written when no path
	// is configured.
	DefaultOutput = "knowledge_graph.html"
)

// Environment override variable names.
const (
	EnvInput  = "CDEGRAPH_INPUT"
	EnvOutput = "CDEGRAPH_OUTPUT"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output:  DefaultOutput,
		Title:   viz.DefaultTitle,
		Physics: viz.DefaultPhysics(),
	}
}

// GlobalConfigPath returns the XDG config file path.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/cdegraph/cdegraph.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads configuration, checking the working directory first and the
// XDG location second. An absent file yields defaults, not an error; a
// malformed file is an error.
func Load() (*Config, error) {
	for _, path := range []string{ConfigFile, GlobalConfigPath()} {
		if path == "" {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if cfg != nil {
			applyEnv(cfg)
			return cfg, nil
		}
	}

	cfg := Default()
	applyEnv(cfg)
	return cfg, nil
}

// loadFile parses one config file. Returns (nil, nil) if the file does not
// exist.
func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	return cfg, nil
}

// applyEnv applies CDEGRAPH_* environment overrides.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvInput); v != "" {
		cfg.Input = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.Output = v
	}
}

// GuideEnabled reports whether the selection guide should be rendered.
func (c *Config) GuideEnabled() bool {
	return c.IncludeGuide == nil || *c.IncludeGuide
}

// HTMLOptions converts the configuration into rendering options.
func (c *Config) HTMLOptions() viz.HTMLOptions {
	return viz.HTMLOptions{
		Title:        c.Title,
		Offline:      c.Offline,
		IncludeGuide: c.GuideEnabled(),
		Physics:      c.Physics,
	}
}

package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Settings is the optional YAML settings file. It tunes the agent loop
// and overrides model parameters; credentials stay in the environment.
type Settings struct {
	Model        string   `yaml:"model"`
	Temperature  *float64 `yaml:"temperature"`
	MaxSteps     int      `yaml:"max_steps"`
	ParseRetries *int     `yaml:"parse_retries"`

	Timeouts struct {
		Model    Duration `yaml:"model"`
		Tool     Duration `yaml:"tool"`
		Resource Duration `yaml:"resource"`
	} `yaml:"timeouts"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Duration accepts Go duration strings ("45s", "2m") in YAML.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the duration as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// LoadSettings parses a YAML settings file. ${VAR} references in the
// file are expanded from the environment before parsing.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSettingsNotFound, path)
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	expanded, err := ExpandEnvStrict(string(data))
	if err != nil {
		return nil, err
	}

	s := &Settings{}
	if err := yaml.Unmarshal([]byte(expanded), s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return s, nil
}

// Apply overlays the settings onto a Config. Zero values leave the
// Config untouched.
func (s *Settings) Apply(c *Config) {
	if s.Model != "" {
		c.OpenAI.Model = s.Model
	}
	if s.Temperature != nil {
		c.OpenAI.Temperature = *s.Temperature
	}
	if s.Log.Level != "" {
		c.Log.Level = s.Log.Level
	}
	if s.Log.Format != "" {
		c.Log.Format = s.Log.Format
	}
}

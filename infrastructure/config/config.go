// Package config loads assistant configuration from the environment
// and an optional settings file.
package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultEnvPath is where the dotenv file is looked up relative to the
// working directory.
const DefaultEnvPath = "config/.env"

// Config holds the runtime configuration for the assistant.
type Config struct {
	OpenAI OpenAIConfig
	Neo4j  Neo4jConfig
	MCP    MCPConfig
	Log    LogConfig
}

// OpenAIConfig configures the chat model.
type OpenAIConfig struct {
	APIKey      string
	Model       string
	Temperature float64
}

// Neo4jConfig configures the graph database connection.
type Neo4jConfig struct {
	URI      string
	User     string
	Password string
}

// MCPConfig configures the MCP transport endpoints.
type MCPConfig struct {
	Host string
	Port int
	// URL overrides the default http://host:port used by the SSE
	// client.
	URL string
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string
	Format string
}

// BaseURL returns the SSE endpoint base URL.
func (m MCPConfig) BaseURL() string {
	if m.URL != "" {
		return m.URL
	}
	return fmt.Sprintf("http://%s:%d", m.Host, m.Port)
}

// Addr returns the host:port listen address for the SSE server.
func (m MCPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", m.Host, m.Port)
}

// Load reads the dotenv file at path (DefaultEnvPath when empty) into
// the process environment and builds a Config from it. A missing
// dotenv file is not an error; the environment alone may be complete.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultEnvPath
	}
	if _, err := os.Stat(path); err == nil {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment.
func FromEnv() (*Config, error) {
	port, err := intEnv("MCP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	temp, err := floatEnv("OPENAI_TEMPERATURE", 0)
	if err != nil {
		return nil, err
	}

	return &Config{
		OpenAI: OpenAIConfig{
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			Model:       envOr("OPENAI_MODEL", "gpt-4o"),
			Temperature: temp,
		},
		Neo4j: Neo4jConfig{
			URI:      os.Getenv("NEO4J_URI"),
			User:     os.Getenv("NEO4J_USER"),
			Password: os.Getenv("NEO4J_PASSWORD"),
		},
		MCP: MCPConfig{
			Host: envOr("MCP_HOST", "0.0.0.0"),
			Port: port,
			URL:  os.Getenv("MCP_URL"),
		},
		Log: LogConfig{
			Level:  envOr("LOG_LEVEL", "info"),
			Format: envOr("LOG_FORMAT", "console"),
		},
	}, nil
}

// Reload re-reads the dotenv file and returns its key-value pairs in
// sorted key order, also refreshing the process environment. Used by
// the env command.
func Reload(path string) ([][2]string, error) {
	if path == "" {
		path = DefaultEnvPath
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([][2]string, 0, len(keys))
	for _, k := range keys {
		os.Setenv(k, values[k])
		pairs = append(pairs, [2]string{k, values[k]})
	}
	return pairs, nil
}

// ValidateModel fails fast when the chat model cannot be used.
func (c *Config) ValidateModel() error {
	if c.OpenAI.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// ValidateGraph fails fast when the Neo4j connection cannot be opened.
func (c *Config) ValidateGraph() error {
	if c.Neo4j.URI == "" || c.Neo4j.User == "" || c.Neo4j.Password == "" {
		return ErrMissingGraphCredentials
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

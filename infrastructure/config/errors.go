package config

import "errors"

var (
	// ErrMissingEnvVar indicates a referenced environment variable is not set.
	ErrMissingEnvVar = errors.New("missing environment variable")

	// ErrMissingAPIKey indicates no model API key is configured.
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

	// ErrMissingGraphCredentials indicates incomplete Neo4j credentials.
	ErrMissingGraphCredentials = errors.New("NEO4J_URI, NEO4J_USER and NEO4J_PASSWORD must all be set")

	// ErrSettingsNotFound indicates the settings file does not exist.
	ErrSettingsNotFound = errors.New("settings file not found")

	// ErrInvalidFormat indicates the settings file could not be parsed.
	ErrInvalidFormat = errors.New("invalid settings format")
)

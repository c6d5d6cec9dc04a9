// Package config loads and validates tracker configuration.
//
// Configuration is a YAML file with ${VAR} environment variable expansion.
// A .env file in the working directory, if present, is loaded into the
// environment before expansion so secrets (API key, database password) can
// stay out of the config file.
package config

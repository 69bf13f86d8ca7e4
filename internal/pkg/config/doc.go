// Package config provides functionality for loading and validating the adapter configuration.
//
// Settings are read from a YAML file with viper, may be overridden by BORICA_* environment
// variables and are validated with go-playground/validator before use.
package config

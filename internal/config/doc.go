// Package config loads logger settings from a YAML file and converts them
// into a logger.Config.
//
// Every key is optional; anything omitted is left to the logger defaults.
package config

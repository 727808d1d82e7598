package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mordilloSan/stamplog/logger"
)

// Settings mirrors logger.Config in a YAML-friendly shape.
type Settings struct {
	// Timezone is "UTC" or "local"; empty keeps the logger default.
	Timezone string `yaml:"timezone,omitempty"`
	// Colors overrides individual level colors, keyed by DEBUG, INFO, WARN, ERROR.
	Colors logger.Colors `yaml:"colors,omitempty"`
	// Output selects the console or a file.
	Output Output `yaml:"output,omitempty"`
	// Levels lists the enabled level names; empty enables the logger default.
	Levels []string `yaml:"levels,omitempty"`
}

// Output is the YAML form of logger.Output.
type Output struct {
	// Type is "console" or "file"; empty means console.
	Type string `yaml:"type,omitempty"`
	// File is the path appended to when Type is "file".
	File string `yaml:"file,omitempty"`
}

const (
	// OutputConsole selects logger.Console.
	OutputConsole = "console"
	// OutputFile selects logger.File.
	OutputFile = "file"
)

// errUnknownOutputType is returned for an output type other than console or file.
var errUnknownOutputType = errors.New("unknown output type")

// Load reads settings from the YAML file at path. Unknown keys are rejected
// and an empty file yields empty settings.
func Load(path string) (*Settings, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	return Parse(contents)
}

// Parse decodes YAML settings from contents.
func Parse(contents []byte) (*Settings, error) {
	dec := yaml.NewDecoder(bytes.NewReader(contents))
	dec.KnownFields(true)

	var s Settings
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	return &s, nil
}

// LoggerConfig converts the settings into a logger.Config. Fields left empty
// stay zero so logger.New applies its own defaults.
func (s *Settings) LoggerConfig() (logger.Config, error) {
	cfg := logger.Config{
		Timezone: logger.Timezone(s.Timezone),
		Colors:   s.Colors,
	}

	switch strings.ToLower(s.Output.Type) {
	case "":
		if s.Output.File != "" {
			cfg.Output = logger.File{Path: s.Output.File}
		}
	case OutputConsole:
		cfg.Output = logger.Console{}
	case OutputFile:
		cfg.Output = logger.File{Path: s.Output.File}
	default:
		return logger.Config{}, fmt.Errorf("%w: %q", errUnknownOutputType, s.Output.Type)
	}

	if len(s.Levels) > 0 {
		cfg.Levels = make([]logger.Level, 0, len(s.Levels))
		for _, name := range s.Levels {
			level, err := logger.ParseLevel(name)
			if err != nil {
				return logger.Config{}, fmt.Errorf("levels: %w", err)
			}
			cfg.Levels = append(cfg.Levels, level)
		}
	}

	return cfg, nil
}

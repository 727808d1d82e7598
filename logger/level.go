package logger

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Levels define log severity.
type Level int

const (
	// DebugLevel enables debug logging.
	DebugLevel Level = iota
	// InfoLevel enables informational logging.
	InfoLevel
	// WarnLevel enables warning logging.
	WarnLevel
	// ErrorLevel enables error logging.
	ErrorLevel
)

// tagWidth is the display width shared by every level tag.
const tagWidth = 7

// levelsEnv names the environment variable consulted when Config.Levels is nil.
const levelsEnv = "LOGGER_LEVELS"

// ErrUnknownLevel is returned by ParseLevel for names outside the fixed set.
var ErrUnknownLevel = errors.New("unknown log level")

// AllLevels returns all supported levels.
func AllLevels() []Level {
	return []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel}
}

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Tag returns the bracketed level name padded to a fixed width,
// e.g. "[DEBUG]" or "[INFO] ".
func (l Level) Tag() string {
	return fmt.Sprintf("%-*s", tagWidth, "["+l.String()+"]")
}

// ParseLevel converts a level name to a Level. Matching is case-insensitive
// and WARNING is accepted as an alias for WARN.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	default:
		return DebugLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

func resolveLevels(levels []Level) map[Level]bool {
	if levels != nil {
		return levelsFromSlice(levels)
	}
	if env := os.Getenv(levelsEnv); env != "" {
		return parseLevels(env)
	}
	return levelsFromSlice(AllLevels())
}

func levelsFromSlice(levels []Level) map[Level]bool {
	m := make(map[Level]bool, len(levels))
	for _, level := range levels {
		m[level] = true
	}
	return m
}

// parseLevels parses a comma-separated list of level names.
// Unknown names are skipped; a list with no known names enables everything.
func parseLevels(s string) map[Level]bool {
	m := map[Level]bool{}
	for _, p := range strings.Split(s, ",") {
		if level, err := ParseLevel(p); err == nil {
			m[level] = true
		}
	}
	if len(m) == 0 {
		return levelsFromSlice(AllLevels())
	}
	return m
}

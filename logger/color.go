package logger

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ErrInvalidColor is returned when a configured color is not a hex string.
var ErrInvalidColor = errors.New("invalid color")

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Colors maps each level to a hex color such as "#9DD1BA".
// An empty field falls back to that level's default.
type Colors struct {
	Debug string `yaml:"DEBUG"`
	Info  string `yaml:"INFO"`
	Warn  string `yaml:"WARN"`
	Error string `yaml:"ERROR"`
}

// DefaultColors returns the built-in palette.
func DefaultColors() Colors {
	return Colors{
		Debug: "#9DD1BA",
		Info:  "#BAD755",
		Warn:  "#FDD662",
		Error: "#FD647A",
	}
}

// For returns the color configured for level.
func (c Colors) For(level Level) string {
	switch level {
	case DebugLevel:
		return c.Debug
	case InfoLevel:
		return c.Info
	case WarnLevel:
		return c.Warn
	case ErrorLevel:
		return c.Error
	default:
		return ""
	}
}

// Set assigns color to level; unknown levels are ignored.
func (c *Colors) Set(level Level, color string) {
	switch level {
	case DebugLevel:
		c.Debug = color
	case InfoLevel:
		c.Info = color
	case WarnLevel:
		c.Warn = color
	case ErrorLevel:
		c.Error = color
	}
}

// merge overrides each field of base that is set in c.
func (c Colors) merge(base Colors) Colors {
	if c.Debug != "" {
		base.Debug = c.Debug
	}
	if c.Info != "" {
		base.Info = c.Info
	}
	if c.Warn != "" {
		base.Warn = c.Warn
	}
	if c.Error != "" {
		base.Error = c.Error
	}
	return base
}

func (c Colors) validate() error {
	for _, level := range AllLevels() {
		if color := c.For(level); !hexColorPattern.MatchString(color) {
			return fmt.Errorf("%w for %s: %q", ErrInvalidColor, level, color)
		}
	}
	return nil
}

// colorTags renders every level tag in its configured color.
// The renderer is pinned to true color so hex values survive even when out
// is not a terminal.
func colorTags(out io.Writer, colors Colors) map[Level]string {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(termenv.TrueColor)

	tags := make(map[Level]string, len(AllLevels()))
	for _, level := range AllLevels() {
		style := r.NewStyle().Foreground(lipgloss.Color(colors.For(level)))
		tags[level] = style.Render(level.Tag())
	}
	return tags
}

func plainTags() map[Level]string {
	tags := make(map[Level]string, len(AllLevels()))
	for _, level := range AllLevels() {
		tags[level] = level.Tag()
	}
	return tags
}

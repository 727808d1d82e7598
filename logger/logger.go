package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sync"
)

// Timezone selects which calendar fields the timestamp is read from.
type Timezone string

const (
	// TimezoneUTC stamps lines with UTC date and time.
	TimezoneUTC Timezone = "UTC"
	// TimezoneLocal stamps lines with the host's local date and time.
	TimezoneLocal Timezone = "local"
)

// Output is the destination of log lines: either Console or File.
type Output interface {
	isOutput()
}

// Console writes DEBUG and INFO to stdout, WARN and ERROR to stderr.
// Level tags are colorized.
type Console struct{}

// File appends every level to the file at Path. Level tags are plain.
type File struct {
	Path string
}

func (Console) isOutput() {}
func (File) isOutput()    {}

var (
	// ErrUnknownTimezone is returned for a timezone other than "UTC" or "local".
	ErrUnknownTimezone = errors.New("unknown timezone")
	// ErrEmptyFilePath is returned when File output has no path.
	ErrEmptyFilePath = errors.New("file output requires a path")
	// ErrUnknownOutput is returned for an Output that is neither Console nor File.
	ErrUnknownOutput = errors.New("unknown output")
)

// Config defines options for New. Every field is optional and defaulted on its own.
type Config struct {
	// Timezone picks UTC or local time for timestamps.
	// Default: "UTC"
	Timezone Timezone
	// Colors sets the hex color of each level tag on the console; empty fields keep their default.
	// Default: DefaultColors()
	Colors Colors
	// Output selects the console or a file.
	// Default: Console{}
	Output Output
	// Levels limits which log levels are enabled; nil falls back to LOGGER_LEVELS or all levels.
	// Default: nil (all levels enabled)
	Levels []Level
}

// DefaultConfig returns a fresh copy of the defaults applied by New.
func DefaultConfig() Config {
	return Config{
		Timezone: TimezoneUTC,
		Colors:   DefaultColors(),
		Output:   Console{},
	}
}

// resolve merges cfg field by field over DefaultConfig and validates the result.
func resolve(cfg Config) (Config, error) {
	resolved := DefaultConfig()

	switch cfg.Timezone {
	case "":
	case TimezoneUTC, TimezoneLocal:
		resolved.Timezone = cfg.Timezone
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownTimezone, cfg.Timezone)
	}

	resolved.Colors = cfg.Colors.merge(resolved.Colors)
	if err := resolved.Colors.validate(); err != nil {
		return Config{}, err
	}

	switch out := cfg.Output.(type) {
	case nil:
	case Console:
		resolved.Output = out
	case File:
		if out.Path == "" {
			return Config{}, ErrEmptyFilePath
		}
		resolved.Output = out
	default:
		return Config{}, fmt.Errorf("%w: %T", ErrUnknownOutput, cfg.Output)
	}

	resolved.Levels = slices.Clone(cfg.Levels)
	return resolved, nil
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// Logger writes timestamped, level-tagged lines to a single sink.
// It is safe for concurrent use; each call produces one Write.
type Logger struct {
	cfg     Config
	tags    map[Level]string
	enabled map[Level]bool

	// mu serializes writes so records never interleave.
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
	file   *os.File
}

// New builds a Logger from cfg. File output is opened (created or appended)
// here; failure to open it is returned and no Logger is produced.
func New(cfg Config) (*Logger, error) {
	resolved, err := resolve(cfg)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		cfg:     resolved,
		enabled: resolveLevels(resolved.Levels),
	}

	switch out := resolved.Output.(type) {
	case File:
		f, err := os.OpenFile(out.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", out.Path, err)
		}
		l.file = f
		l.stdout = f
		l.stderr = f
		l.tags = plainTags()
	default:
		l.stdout = outStdout
		l.stderr = outStderr
		l.tags = colorTags(outStdout, resolved.Colors)
	}

	return l, nil
}

// Default returns a console Logger with the default configuration.
func Default() *Logger {
	l, err := New(Config{})
	if err != nil {
		// The defaults always resolve; reaching this is a programming error.
		panic(err)
	}
	return l
}

// Config returns the resolved configuration.
func (l *Logger) Config() Config {
	cfg := l.cfg
	cfg.Levels = slices.Clone(l.cfg.Levels)
	return cfg
}

// Enabled reports whether level produces output.
func (l *Logger) Enabled(level Level) bool {
	return l.enabled[level]
}

// Close closes the log file if one was opened. It is safe to call more than
// once and is a no-op for console output.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Log writes one record at level: the timestamp, the level tag and values
// separated by spaces, followed by a newline. Values are rendered with their
// default formats. The sink's write error, if any, is returned unchanged.
func (l *Logger) Log(level Level, values ...any) error {
	tag, ok := l.tags[level]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownLevel, level)
	}
	if !l.Enabled(level) {
		return nil
	}

	prefix := FormatTimestamp(timeNow(), l.cfg.Timezone) + " " + tag
	args := make([]any, 0, len(values)+1)
	args = append(args, prefix)
	args = append(args, values...)

	l.mu.Lock()
	defer l.mu.Unlock()

	_, err := fmt.Fprintln(l.writerFor(level), args...)
	return err
}

func (l *Logger) writerFor(level Level) io.Writer {
	if level >= WarnLevel {
		return l.stderr
	}
	return l.stdout
}

// Debug logs values at debug level.
func (l *Logger) Debug(values ...any) {
	_ = l.Log(DebugLevel, values...)
}

// Info logs values at info level.
func (l *Logger) Info(values ...any) {
	_ = l.Log(InfoLevel, values...)
}

// Warn logs values at warning level.
func (l *Logger) Warn(values ...any) {
	_ = l.Log(WarnLevel, values...)
}

// Error logs values at error level.
func (l *Logger) Error(values ...any) {
	_ = l.Log(ErrorLevel, values...)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, args ...any) {
	_ = l.Log(DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, args ...any) {
	_ = l.Log(InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, args ...any) {
	_ = l.Log(WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, args ...any) {
	_ = l.Log(ErrorLevel, fmt.Sprintf(format, args...))
}

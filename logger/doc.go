// Package logger provides a small leveled logger that stamps every line
// with the date and time and writes it to the console or to a file.
//
// # Output
//
// Each call writes exactly one record:
//
//	[2024-03-07] [09:05:02] [INFO]  server started 8080
//
// The timestamp is taken in UTC by default, or in the host's local zone
// with Config.Timezone set to "local". Level tags are padded to the same
// width: [DEBUG], [INFO], [WARN], [ERROR].
//
// On the console, DEBUG and INFO go to stdout and WARN and ERROR go to
// stderr, with the tag drawn in the level's hex color. File output is
// appended to the given path and never carries color codes.
//
// # Usage
//
// Construct a Logger once at startup:
//
//	log, err := logger.New(logger.Config{
//	    Timezone: logger.TimezoneLocal,
//	    Colors:   logger.Colors{Debug: "#000000"},
//	})
//
//	log, err := logger.New(logger.Config{Output: logger.File{Path: "./app.log"}})
//
// Every field of Config is optional and defaulted independently, so the
// example above only changes the DEBUG color.
//
// Log any values; they are printed with their default formats, separated
// by spaces:
//
//	log.Info("listening on", addr)
//	log.Errorf("failed to connect: %v", err)
//
// # Level Filtering
//
// Configure levels in code via Config.Levels, or leave it nil to honor the environment variable:
//
//	LOGGER_LEVELS="INFO,ERROR" ./myapp
package logger

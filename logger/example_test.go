package logger_test

import (
	"log"

	"github.com/mordilloSan/stamplog/logger"
)

// This example shows colorized console output with the default settings.
func ExampleDefault() {
	l := logger.Default()
	l.Debug("debug is on")
	l.Info("hello", "world")
	l.Warn("be careful")
	l.Errorf("oops: %v", "boom")
}

// This example overrides a single color and keeps the other defaults.
func ExampleNew_colors() {
	l, err := logger.New(logger.Config{
		Timezone: logger.TimezoneLocal,
		Colors:   logger.Colors{Debug: "#000000"},
	})
	if err != nil {
		log.Fatal(err)
	}
	l.Debug("drawn in black")
	l.Info("drawn in the default green")
}

// This example appends plain lines to a file.
func ExampleNew_file() {
	l, err := logger.New(logger.Config{Output: logger.File{Path: "app.log"}})
	if err != nil {
		log.Fatal(err)
	}
	defer l.Close()

	l.Info("request completed", 200, "/api/users")
}

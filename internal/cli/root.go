package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/stamplog/internal/config"
	"github.com/mordilloSan/stamplog/internal/version"
	"github.com/mordilloSan/stamplog/logger"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	timezone   string
	file       string
	colors     map[string]string
	levels     []string
}

// NewRootCommand builds the stamplog command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "stamplog",
		Short: "Write timestamped, leveled log lines to the console or a file.",
		Long: `stamplog prints lines of the form

  [YYYY-MM-DD] [HH:MM:SS] [LEVEL] message

to the console (with colored level tags) or appends them to a file.
Settings come from an optional YAML file and are overridden by flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML settings file")
	flags.StringVar(&opts.timezone, "timezone", "", `timestamp zone: "UTC" or "local"`)
	flags.StringVarP(&opts.file, "file", "f", "", "append to this file instead of the console")
	flags.StringToStringVar(&opts.colors, "color", nil, "level color override, e.g. DEBUG=#000000")
	flags.StringSliceVar(&opts.levels, "levels", nil, "enabled levels, e.g. INFO,ERROR")

	root.AddCommand(newLogCommand(opts), newDemoCommand(opts))
	version.AttachCobraVersionCommand(root)

	return root
}

// Execute runs the CLI and exits with non-zero status on error.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loggerConfig layers the flags over the settings file, if any.
func (o *options) loggerConfig(cmd *cobra.Command) (logger.Config, error) {
	settings := &config.Settings{}
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return logger.Config{}, err
		}
		settings = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("timezone") {
		settings.Timezone = o.timezone
	}
	if flags.Changed("file") {
		settings.Output = config.Output{Type: config.OutputFile, File: o.file}
	}
	if flags.Changed("levels") {
		settings.Levels = o.levels
	}

	cfg, err := settings.LoggerConfig()
	if err != nil {
		return logger.Config{}, err
	}

	for name, color := range o.colors {
		level, err := logger.ParseLevel(name)
		if err != nil {
			return logger.Config{}, fmt.Errorf("color: %w", err)
		}
		cfg.Colors.Set(level, color)
	}

	return cfg, nil
}

func (o *options) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	cfg, err := o.loggerConfig(cmd)
	if err != nil {
		return nil, err
	}

	return logger.New(cfg)
}

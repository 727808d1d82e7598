package cli

import (
	"github.com/spf13/cobra"

	"github.com/mordilloSan/stamplog/logger"
)

func newLogCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "log <level> [values...]",
		Short: "Write one log line.",
		Long: `Write one line at the given level (DEBUG, INFO, WARN or ERROR).
The remaining arguments are printed after the level tag, separated by spaces.`,
		Example: `  stamplog log info "server started" 8080
  stamplog --file ./app.log --timezone local log error "disk full"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLevel(args[0])
			if err != nil {
				return err
			}

			l, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}
			defer l.Close()

			values := make([]any, 0, len(args)-1)
			for _, arg := range args[1:] {
				values = append(values, arg)
			}

			return l.Log(level, values...)
		},
	}
}

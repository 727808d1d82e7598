package cli

import (
	"github.com/spf13/cobra"
)

func newDemoCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Write one sample line per level.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := opts.newLogger(cmd)
			if err != nil {
				return err
			}
			defer l.Close()

			l.Debug("starting up", "pid", 4242)
			l.Info("hello", "world")
			l.Warnf("disk usage at %d%%", 91)
			l.Error("oops:", "something happened")

			return nil
		},
	}
}

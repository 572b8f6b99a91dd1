package app

import (
	"github.com/spf13/cobra"

	"github.com/xcelliti/website/internal/daemon"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the web service",
	PreRunE: func(_ *cobra.Command, _ []string) error {
		cfg, err = loadConfig()

		return err
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		d, err := daemon.New(&cfg)
		if err != nil {
			return err
		}

		return d.Start()
	},
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/chris/mainsbot/internal/service"
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Manage the launchd agent that runs serve",
}

func init() {
	for _, c := range []struct {
		use, short string
		fn         func() error
	}{
		{"install", "Install the binary and load the launchd agent", service.Install},
		{"uninstall", "Unload the agent and remove the binary", service.Uninstall},
		{"start", "Start the agent", service.Start},
		{"stop", "Stop the agent", service.Stop},
		{"restart", "Restart the agent", service.Restart},
		{"status", "Show launchctl status", service.Status},
		{"logs", "Tail the agent logs", service.Logs},
	} {
		fn := c.fn
		serviceCmd.AddCommand(&cobra.Command{
			Use:   c.use,
			Short: c.short,
			Args:  cobra.NoArgs,
			RunE:  func(cmd *cobra.Command, args []string) error { return fn() },
		})
	}
}

package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/warmboot/internal/app"
)

func (c *CLI) newBootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boot",
		Short: "Restore the cached instance state, initialize it and persist it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := c.app.Boot(cmd.Context(), app.BootOptions{Options: globalOptions(cmd)})
			return err
		},
	}
}

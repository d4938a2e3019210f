package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/moji/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the build directory, cache and rendered glyphs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return c.app.Clean(app.BuildOptions{ConfigPath: configPath})
		},
	}
}

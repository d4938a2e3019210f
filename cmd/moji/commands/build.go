package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/moji/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the emoji set and assemble the font",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noSeqs, _ := cmd.Flags().GetBool("no-seqs")
			resolution, _ := cmd.Flags().GetInt("resolution")
			workers, _ := cmd.Flags().GetInt("workers")
			renderOnly, _ := cmd.Flags().GetBool("render-only")

			_, err := c.app.Build(cmd.Context(), app.BuildOptions{
				ConfigPath:  configPath,
				NoSequences: noSeqs,
				Resolution:  resolution,
				Workers:     workers,
				RenderOnly:  renderOnly,
			})
			return err
		},
	}
	cmd.Flags().Bool("no-seqs", false, "Build single-codepoint emoji only, skipping all sequences")
	cmd.Flags().IntP("resolution", "r", 0, "Override the glyph resolution in pixels")
	cmd.Flags().IntP("workers", "j", 0, "Number of parallel render workers (default one per CPU)")
	cmd.Flags().Bool("render-only", false, "Stop after rendering, skipping font assembly")
	return cmd
}

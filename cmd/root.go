package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mosaic",
	Short: "Approximate raster images as tetromino mosaics",
	Long: `mosaic rebuilds a raster image as a grid of tetromino pieces rendered
through sprite-sheet skins, choosing each placement greedily by perceptual
pixel difference.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

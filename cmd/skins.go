package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tetris-mosaic/internal/skin"
)

var skinsCmd = &cobra.Command{
	Use:   "skins [dir]",
	Short: "List the skin catalog with per-block average colors",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "assets"
		if len(args) == 1 {
			dir = args[0]
		}

		skins, err := skin.LoadDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range skin.Report(skins) {
			fmt.Printf("%2d  %-40s %8s  %s\n",
				entry.ID, entry.Name, entry.BlockSize, strings.Join(entry.Averages, " "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skinsCmd)
}

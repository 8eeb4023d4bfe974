package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"tetris-mosaic/internal/batch"
)

var batchFlags struct {
	configPath string
	skinsDir   string
	width      int
	prioritize bool
	workers    int
	outDir     string
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Approximate every image in a directory and report SSIM statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, batchFlags.configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("width") {
			cfg.BoardWidth = batchFlags.width
		}
		if cmd.Flags().Changed("prioritize-tetrominos") {
			cfg.PrioritizeTetrominos = batchFlags.prioritize
		}
		if cmd.Flags().Changed("workers") {
			cfg.Workers = batchFlags.workers
		}
		if batchFlags.skinsDir != "" {
			cfg.SkinsDir = batchFlags.skinsDir
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		if batchFlags.outDir != "" {
			if err := os.MkdirAll(batchFlags.outDir, 0o755); err != nil {
				return err
			}
		}

		skins, err := loadSkins(cfg.SkinsDir)
		if err != nil {
			return err
		}
		report, err := batch.Run(args[0], skins, batch.Config{
			BoardWidth:            cfg.BoardWidth,
			PrioritizeTetrominoes: cfg.PrioritizeTetrominos,
			Workers:               cfg.Workers,
			OutDir:                batchFlags.outDir,
		})
		if err != nil {
			return err
		}

		log.Printf("images=%d failed=%d", len(report.Results), report.Failed)
		log.Printf("SSIM total=%.4f mean=%.4f stddev=%.4f", report.Total, report.Mean, report.StdDev)
		log.Printf("elapsed %s", report.Duration)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFlags.configPath, "config", "mosaic.yaml", "config file path")
	batchCmd.Flags().StringVar(&batchFlags.skinsDir, "skins", "", "skin sheet directory (default from config)")
	batchCmd.Flags().IntVar(&batchFlags.width, "width", 0, "board width in cells; height follows each image's aspect")
	batchCmd.Flags().BoolVar(&batchFlags.prioritize, "prioritize-tetrominos", false,
		"prefer tetrominoes over fillers; more color, less fidelity")
	batchCmd.Flags().IntVar(&batchFlags.workers, "workers", 0, "worker pool size (default from config)")
	batchCmd.Flags().StringVar(&batchFlags.outDir, "out", "", "directory for rendered mosaics (optional)")
	rootCmd.AddCommand(batchCmd)
}

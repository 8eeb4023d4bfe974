package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"tetris-mosaic/internal/config"
	"tetris-mosaic/internal/imgio"
	"tetris-mosaic/internal/mosaic"
	"tetris-mosaic/internal/skin"
)

var imageFlags struct {
	configPath string
	skinsDir   string
	width      int
	height     int
	prioritize bool
	autoSkins  int
}

var imageCmd = &cobra.Command{
	Use:   "image <source> <output>",
	Short: "Approximate a single image",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd, imageFlags.configPath)
		if err != nil {
			return err
		}
		applyFlagOverrides(cmd, &cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		return runImage(args[0], args[1], cfg)
	},
}

func init() {
	imageCmd.Flags().StringVar(&imageFlags.configPath, "config", "mosaic.yaml", "config file path")
	imageCmd.Flags().StringVar(&imageFlags.skinsDir, "skins", "", "skin sheet directory (default from config)")
	imageCmd.Flags().IntVar(&imageFlags.width, "width", 0, "board width in cells (default from config)")
	imageCmd.Flags().IntVar(&imageFlags.height, "height", 0, "board height in cells (default from config)")
	imageCmd.Flags().BoolVar(&imageFlags.prioritize, "prioritize-tetrominos", false,
		"prefer tetrominoes over fillers; more color, less fidelity")
	imageCmd.Flags().IntVar(&imageFlags.autoSkins, "auto-skins", 0,
		"keep only the n skins whose palette best matches the image")
	rootCmd.AddCommand(imageCmd)
}

// loadConfig reads the config file; a missing file is only an error when
// the flag was set explicitly.
func loadConfig(cmd *cobra.Command, path string) (config.Config, error) {
	return config.Load(path, !cmd.Flags().Changed("config"))
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("width") {
		cfg.BoardWidth = imageFlags.width
	}
	if cmd.Flags().Changed("height") {
		cfg.BoardHeight = imageFlags.height
	}
	if cmd.Flags().Changed("prioritize-tetrominos") {
		cfg.PrioritizeTetrominos = imageFlags.prioritize
	}
	if imageFlags.skinsDir != "" {
		cfg.SkinsDir = imageFlags.skinsDir
	}
}

// loadSkins pulls the catalog from disk. A missing or sheet-less skin
// directory falls back to the built-in flat-color skin; a sheet that fails
// to load aborts the run.
func loadSkins(dir string) ([]*skin.Skin, error) {
	skins, err := skin.LoadDir(dir)
	if err != nil {
		if errors.Is(err, skin.ErrNoSheets) {
			log.Printf("no skins in %s; using built-in solid skin", dir)
			return []*skin.Skin{skin.Solid(0, 16, 16)}, nil
		}
		return nil, err
	}
	return skins, nil
}

func runImage(source, output string, cfg config.Config) error {
	log.Printf("approximating %s on a %dx%d board", source, cfg.BoardWidth, cfg.BoardHeight)

	img, err := imgio.Load(source)
	if err != nil {
		return err
	}
	log.Printf("loaded %dx%d image", img.Bounds().Dx(), img.Bounds().Dy())

	skins, err := loadSkins(cfg.SkinsDir)
	if err != nil {
		return err
	}
	if imageFlags.autoSkins > 0 {
		skins = skin.SelectByPalette(skins, img, imageFlags.autoSkins)
		log.Printf("auto-skins kept %d of the catalog", len(skins))
	}

	if err := skin.ResizeAll(skins, img.Bounds().Dx(), img.Bounds().Dy(), cfg.BoardWidth, cfg.BoardHeight); err != nil {
		return err
	}
	log.Printf("resized skins to %dx%d blocks", skins[0].Width(), skins[0].Height())

	sized := imgio.FitToGrid(img, skins[0].Width(), skins[0].Height(), cfg.BoardWidth, cfg.BoardHeight)

	out, err := mosaic.Approximate(sized, skins, mosaic.Options{
		BoardWidth:            cfg.BoardWidth,
		BoardHeight:           cfg.BoardHeight,
		PrioritizeTetrominoes: cfg.PrioritizeTetrominos,
	})
	if err != nil {
		return fmt.Errorf("approximate %s: %w", source, err)
	}

	if err := imgio.SavePNG(output, out); err != nil {
		return err
	}
	log.Printf("wrote %s", output)
	return nil
}

// Package batch approximates every image in a directory across a worker
// pool and reports aggregate similarity statistics. Each worker owns its
// own board and skin copies; workers share nothing mutable.
package batch

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"tetris-mosaic/internal/imgio"
	"tetris-mosaic/internal/mosaic"
	"tetris-mosaic/internal/skin"
)

// Config selects the batch geometry and pool size.
type Config struct {
	// BoardWidth is the grid width applied to every image; the height is
	// derived per image from its aspect ratio.
	BoardWidth int
	// PrioritizeTetrominoes selects the color-prioritized policy.
	PrioritizeTetrominoes bool
	// Workers is the pool size.
	Workers int
	// OutDir, when set, receives one rendered mosaic per input image.
	OutDir string
}

// Result is the outcome for one input image.
type Result struct {
	Path     string
	Score    float64
	Duration time.Duration
	Err      error
}

// Report aggregates a batch run.
type Report struct {
	Results  []Result
	Total    float64
	Mean     float64
	StdDev   float64
	Failed   int
	Duration time.Duration
}

// AspectHeight derives a board height from the board width and the image's
// pixel aspect ratio, never below 1.
func AspectHeight(boardWidth, imgWidth, imgHeight int) int {
	h := int(math.Round(float64(boardWidth) * float64(imgHeight) / float64(imgWidth)))
	if h < 1 {
		h = 1
	}
	return h
}

// Run approximates every .png/.jpg/.jpeg in dir and scores each mosaic
// against its resized source with SSIM. One failed image fails only its own
// entry.
func Run(dir string, skins []*skin.Skin, cfg Config) (Report, error) {
	if cfg.BoardWidth <= 0 {
		return Report{}, fmt.Errorf("%w: board width %d", skin.ErrDimension, cfg.BoardWidth)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if len(skins) == 0 {
		return Report{}, fmt.Errorf("%w: empty skin set", skin.ErrAsset)
	}

	paths, err := listImages(dir)
	if err != nil {
		return Report{}, err
	}
	if len(paths) == 0 {
		return Report{}, fmt.Errorf("no images in %s", dir)
	}

	start := time.Now()
	jobs := make(chan string)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- scoreImage(path, skins, cfg)
			}
		}()
	}
	go func() {
		for _, p := range paths {
			jobs <- p
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	report := Report{}
	var scores []float64
	for res := range results {
		if res.Err != nil {
			log.Printf("batch: %s failed: %v", res.Path, res.Err)
			report.Failed++
		} else {
			log.Printf("batch: %s scored %.4f in %s", res.Path, res.Score, res.Duration)
			scores = append(scores, res.Score)
		}
		report.Results = append(report.Results, res)
	}
	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Path < report.Results[j].Path
	})

	for _, s := range scores {
		report.Total += s
	}
	if len(scores) > 0 {
		report.Mean = stat.Mean(scores, nil)
	}
	if len(scores) > 1 {
		report.StdDev = stat.StdDev(scores, nil)
	}
	report.Duration = time.Since(start)
	return report, nil
}

// scoreImage runs one full approximation with private skin copies.
func scoreImage(path string, shared []*skin.Skin, cfg Config) Result {
	start := time.Now()
	res := Result{Path: path}

	img, err := imgio.Load(path)
	if err != nil {
		res.Err = err
		return res
	}

	boardHeight := AspectHeight(cfg.BoardWidth, img.Bounds().Dx(), img.Bounds().Dy())

	skins := skin.CloneAll(shared)
	if err := skin.ResizeAll(skins, img.Bounds().Dx(), img.Bounds().Dy(), cfg.BoardWidth, boardHeight); err != nil {
		res.Err = err
		return res
	}
	sized := imgio.FitToGrid(img, skins[0].Width(), skins[0].Height(), cfg.BoardWidth, boardHeight)

	out, err := mosaic.Approximate(sized, skins, mosaic.Options{
		BoardWidth:            cfg.BoardWidth,
		BoardHeight:           boardHeight,
		PrioritizeTetrominoes: cfg.PrioritizeTetrominoes,
	})
	if err != nil {
		res.Err = err
		return res
	}

	if cfg.OutDir != "" {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
		if err := imgio.SavePNG(filepath.Join(cfg.OutDir, name), out); err != nil {
			res.Err = err
			return res
		}
	}

	res.Score, res.Err = SSIM(out, sized)
	res.Duration = time.Since(start)
	return res
}

func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read batch directory %s: %w", dir, err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

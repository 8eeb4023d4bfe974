// Package imgio handles image decode, encode, and resampling for the CLI
// and batch layers, keeping the placement core free of file I/O.
package imgio

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// Load decodes a PNG or JPEG image from disk.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// SavePNG encodes an image as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// FitToGrid resamples the image so its dimensions are exactly
// boardWidth*blockWidth x boardHeight*blockHeight. Images already at that
// size are returned unchanged.
func FitToGrid(img image.Image, blockWidth, blockHeight, boardWidth, boardHeight int) image.Image {
	wantW := blockWidth * boardWidth
	wantH := blockHeight * boardHeight
	if img.Bounds().Dx() == wantW && img.Bounds().Dy() == wantH {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, wantW, wantH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

package imgio

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestFitToGrid(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	got := FitToGrid(img, 4, 4, 5, 5)
	if got.Bounds().Dx() != 20 || got.Bounds().Dy() != 20 {
		t.Errorf("resized to %v, want 20x20", got.Bounds())
	}

	exact := image.NewRGBA(image.Rect(0, 0, 20, 20))
	if FitToGrid(exact, 4, 4, 5, 5) != image.Image(exact) {
		t.Error("exact-size image should be returned unchanged")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 4))
	img.SetRGBA(2, 1, color.RGBA{R: 200, G: 10, B: 40, A: 255})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Bounds().Dx() != 6 || loaded.Bounds().Dy() != 4 {
		t.Errorf("loaded bounds %v, want 6x4", loaded.Bounds())
	}
	r, g, b, _ := loaded.At(2, 1).RGBA()
	if r>>8 != 200 || g>>8 != 10 || b>>8 != 40 {
		t.Errorf("pixel round trip failed: got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Error("missing file should fail")
	}
}

package skin

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "b.png"), testSheet(8, 8))
	writePNG(t, filepath.Join(dir, "a.png"), testSheet(4, 4))

	skins, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(skins) != 2 {
		t.Fatalf("loaded %d skins, want 2", len(skins))
	}
	// Ids follow sorted filename order, so a.png comes first.
	if skins[0].ID() != 0 || skins[0].Width() != 4 {
		t.Errorf("skin 0 = id %d width %d, want id 0 width 4", skins[0].ID(), skins[0].Width())
	}
	if skins[1].ID() != 1 || skins[1].Width() != 8 {
		t.Errorf("skin 1 = id %d width %d, want id 1 width 8", skins[1].ID(), skins[1].Width())
	}
}

func TestLoadDirMissing(t *testing.T) {
	err := func() error {
		_, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
		return err
	}()
	if !errors.Is(err, ErrNoSheets) {
		t.Errorf("got %v, want ErrNoSheets", err)
	}
	if !errors.Is(err, ErrAsset) {
		t.Errorf("ErrNoSheets should classify as ErrAsset, got %v", err)
	}
}

func TestLoadDirNoSheets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDir(dir); !errors.Is(err, ErrNoSheets) {
		t.Errorf("got %v, want ErrNoSheets", err)
	}
}

func TestLoadDirMalformedSheet(t *testing.T) {
	dir := t.TempDir()
	// 80 pixels wide is not divisible into 9 sections.
	writePNG(t, filepath.Join(dir, "bad.png"), image.NewRGBA(image.Rect(0, 0, 80, 8)))

	_, err := LoadDir(dir)
	if !errors.Is(err, ErrAsset) {
		t.Fatalf("got %v, want ErrAsset", err)
	}
	if errors.Is(err, ErrNoSheets) {
		t.Error("a malformed sheet must not report ErrNoSheets")
	}
}

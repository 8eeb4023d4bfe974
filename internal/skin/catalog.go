package skin

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrNoSheets reports a skin directory that is missing or holds no .png
// sheets. It is the one asset failure callers may soften by falling back
// to the built-in solid skin; a sheet that exists but fails to load is a
// plain ErrAsset and aborts the run.
var ErrNoSheets = fmt.Errorf("%w: no skin sheets", ErrAsset)

// LoadDir loads every .png sheet in a directory as a skin, assigning ids in
// sorted filename order so catalogs are deterministic across platforms.
func LoadDir(dir string) ([]*Skin, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoSheets, dir)
		}
		return nil, fmt.Errorf("%w: read skin directory %s: %v", ErrAsset, dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".png") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %s has no .png sheets", ErrNoSheets, dir)
	}

	skins := make([]*Skin, 0, len(paths))
	for i, path := range paths {
		s, err := Load(path, i)
		if err != nil {
			return nil, err
		}
		skins = append(skins, s)
	}
	return skins, nil
}

// Entry is one line of a catalog report.
type Entry struct {
	ID        int
	Name      string
	BlockSize string
	Averages  []string // hex average color per section, sheet order
}

// Report summarizes a skin set for the skins subcommand.
func Report(skins []*Skin) []Entry {
	entries := make([]Entry, 0, len(skins))
	for _, s := range skins {
		e := Entry{
			ID:        s.ID(),
			Name:      s.Name(),
			BlockSize: fmt.Sprintf("%dx%d", s.Width(), s.Height()),
		}
		for _, b := range s.Blocks() {
			c, _ := colorful.MakeColor(b.Average())
			e.Averages = append(e.Averages, c.Hex())
		}
		entries = append(entries, e)
	}
	return entries
}

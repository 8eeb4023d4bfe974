package mosaic

import (
	"fmt"
	"image"
	"image/draw"

	"tetris-mosaic/internal/skin"
)

// Options selects the board geometry and placement policy for one run.
type Options struct {
	BoardWidth  int
	BoardHeight int

	// PrioritizeTetrominoes selects the color-prioritized policy: a
	// tetromino-only pass first, then a filler-eligible pass over the
	// leftover cells. It trades some fidelity for more colorful pieces.
	PrioritizeTetrominoes bool
}

// Validate checks the option invariants enforced before a run starts.
func (o Options) Validate() error {
	if o.BoardWidth <= 0 || o.BoardHeight <= 0 {
		return fmt.Errorf("%w: board %dx%d", skin.ErrDimension, o.BoardWidth, o.BoardHeight)
	}
	return nil
}

// Approximate fills a board so its rendering approximates the target image
// and returns the rendered mosaic. The target's pixel dimensions must be
// exact multiples of the board grid times the skins' block size; skins must
// be non-empty and uniformly sized (ResizeAll establishes both).
func Approximate(target image.Image, skins []*skin.Skin, opts Options) (*image.RGBA, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if len(skins) == 0 {
		return nil, fmt.Errorf("%w: empty skin set", skin.ErrAsset)
	}
	blockWidth, blockHeight := skins[0].Width(), skins[0].Height()
	if blockWidth == 0 || blockHeight == 0 {
		return nil, fmt.Errorf("%w: zero block size", skin.ErrDimension)
	}
	for _, s := range skins {
		if s.Width() != blockWidth || s.Height() != blockHeight {
			return nil, fmt.Errorf("%w: skin %d is %dx%d, want %dx%d",
				skin.ErrDimension, s.ID(), s.Width(), s.Height(), blockWidth, blockHeight)
		}
	}

	bounds := target.Bounds()
	wantWidth := opts.BoardWidth * blockWidth
	wantHeight := opts.BoardHeight * blockHeight
	if bounds.Dx() != wantWidth || bounds.Dy() != wantHeight {
		return nil, fmt.Errorf("%w: target is %dx%d, want %dx%d for a %dx%d board of %dx%d blocks",
			skin.ErrDimension, bounds.Dx(), bounds.Dy(), wantWidth, wantHeight,
			opts.BoardWidth, opts.BoardHeight, blockWidth, blockHeight)
	}

	rgba := toRGBA(target)
	sb := NewSkinnedBoard(opts.BoardWidth, opts.BoardHeight, skins)

	sc, err := newScorer(rgba, sb, opts.PrioritizeTetrominoes)
	if err != nil {
		return nil, err
	}

	h := seedHeap(opts.BoardWidth, opts.BoardHeight)
	if opts.PrioritizeTetrominoes {
		if err := runPass(h, sb, sc, false); err != nil {
			return nil, err
		}
		reseedEmpty(h, sb)
		if err := runPass(h, sb, sc, true); err != nil {
			return nil, err
		}
	} else {
		if err := runPass(h, sb, sc, true); err != nil {
			return nil, err
		}
	}

	return Render(sb), nil
}

// toRGBA returns the image as *image.RGBA with origin (0,0), copying only
// when the representation differs.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

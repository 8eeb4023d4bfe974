// Package skin manages the sprite-sheet assets that give placed pieces
// their rendered appearance. A skin is a horizontal sheet of nine equally
// wide sections, one per piece tag; each section is held as a sub-image
// with its average color cached alongside it.
package skin

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	xdraw "golang.org/x/image/draw"

	"tetris-mosaic/internal/piece"
	"tetris-mosaic/pkg/colorutil"
)

var (
	// ErrAsset reports a missing, malformed, or mis-sectioned skin sheet.
	ErrAsset = errors.New("invalid skin asset")

	// ErrDimension reports a skin or grid-cell pixel size that resolves
	// to zero, or image dimensions not divisible by the grid.
	ErrDimension = errors.New("invalid dimensions")
)

// NumSections is the fixed section count of a skin sheet.
const NumSections = 9

// Sheet section index for each tag. The layout is a fixed asset contract.
const (
	sectionBlack = 0
	sectionGray  = 1
	sectionZ     = 2
	sectionL     = 3
	sectionO     = 4
	sectionS     = 5
	sectionI     = 6
	sectionJ     = 7
	sectionT     = 8
)

// Block is one section of a skin: the piece sub-image plus its cached
// average color. Resize updates both together; the average is never stale.
type Block struct {
	img *image.RGBA
	avg color.RGBA
}

func newBlock(img *image.RGBA) *Block {
	return &Block{img: img, avg: colorutil.Average(img)}
}

// Image returns the block's pixels.
func (b *Block) Image() *image.RGBA { return b.img }

// Average returns the precomputed mean color of the block.
func (b *Block) Average() color.RGBA { return b.avg }

// Width returns the block width in pixels.
func (b *Block) Width() int { return b.img.Bounds().Dx() }

// Height returns the block height in pixels.
func (b *Block) Height() int { return b.img.Bounds().Dy() }

// At returns the pixel at (x, y) relative to the block origin.
func (b *Block) At(x, y int) color.RGBA {
	return b.img.RGBAAt(b.img.Bounds().Min.X+x, b.img.Bounds().Min.Y+y)
}

func (b *Block) resize(width, height int) {
	if b.Width() == width && b.Height() == height {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), b.img, b.img.Bounds(), xdraw.Src, nil)
	b.img = dst
	b.avg = colorutil.Average(dst)
}

// Skin is one loaded sprite sheet: nine blocks, uniform block dimensions,
// and an id unique within its catalog.
type Skin struct {
	name   string
	blocks [NumSections]*Block
	width  int
	height int
	id     int
}

// Load reads a sheet image from disk and slices it into nine sections.
func Load(path string, id int) (*Skin, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrAsset, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrAsset, path, err)
	}
	s, err := FromSheet(img, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.name = path
	return s, nil
}

// FromSheet slices an already decoded sheet into a skin.
func FromSheet(sheet image.Image, id int) (*Skin, error) {
	bounds := sheet.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 || w%NumSections != 0 {
		return nil, fmt.Errorf("%w: sheet is %dx%d, want width divisible by %d sections",
			ErrAsset, w, h, NumSections)
	}
	sectionWidth := w / NumSections

	s := &Skin{width: sectionWidth, height: h, id: id}
	for i := 0; i < NumSections; i++ {
		section := image.NewRGBA(image.Rect(0, 0, sectionWidth, h))
		xdraw.Copy(section, image.Point{}, sheet,
			image.Rect(bounds.Min.X+i*sectionWidth, bounds.Min.Y,
				bounds.Min.X+(i+1)*sectionWidth, bounds.Max.Y), xdraw.Src, nil)
		s.blocks[i] = newBlock(section)
	}
	return s, nil
}

// Classic flat-color tetromino palette, used by Solid.
var solidColors = [NumSections]color.RGBA{
	sectionBlack: {R: 20, G: 20, B: 20, A: 255},
	sectionGray:  {R: 127, G: 127, B: 127, A: 255},
	sectionZ:     {R: 222, G: 41, B: 41, A: 255},
	sectionL:     {R: 235, G: 151, B: 22, A: 255},
	sectionO:     {R: 240, G: 212, B: 30, A: 255},
	sectionS:     {R: 78, G: 203, B: 73, A: 255},
	sectionI:     {R: 49, G: 199, B: 221, A: 255},
	sectionJ:     {R: 54, G: 84, B: 219, A: 255},
	sectionT:     {R: 165, G: 62, B: 213, A: 255},
}

// Solid builds a synthetic flat-color skin. It serves as a no-assets
// fallback and as a deterministic fixture for tests.
func Solid(id, width, height int) *Skin {
	s := &Skin{name: "solid", width: width, height: height, id: id}
	for i := 0; i < NumSections; i++ {
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				img.SetRGBA(x, y, solidColors[i])
			}
		}
		s.blocks[i] = newBlock(img)
	}
	return s
}

// Clone returns an independently resizable copy of the skin. Pixel buffers
// are shared until a resize replaces them, so a clone is cheap.
func (s *Skin) Clone() *Skin {
	out := &Skin{name: s.name, width: s.width, height: s.height, id: s.id}
	for i, b := range s.blocks {
		copied := *b
		out.blocks[i] = &copied
	}
	return out
}

// CloneAll clones every skin in a set.
func CloneAll(skins []*Skin) []*Skin {
	out := make([]*Skin, len(skins))
	for i, s := range skins {
		out[i] = s.Clone()
	}
	return out
}

// ID returns the skin's catalog id.
func (s *Skin) ID() int { return s.id }

// Name returns the source path, or "solid" for synthetic skins.
func (s *Skin) Name() string { return s.name }

// Width returns the current block width in pixels.
func (s *Skin) Width() int { return s.width }

// Height returns the current block height in pixels.
func (s *Skin) Height() int { return s.height }

// Resize re-samples all nine blocks to the given dimensions and recomputes
// their cached averages. A resize to the current size is a no-op.
func (s *Skin) Resize(width, height int) {
	if s.width == width && s.height == height {
		return
	}
	for _, b := range s.blocks {
		b.resize(width, height)
	}
	s.width = width
	s.height = height
}

// Blocks returns the nine blocks in sheet-section order.
func (s *Skin) Blocks() [NumSections]*Block { return s.blocks }

// BlockForPiece returns the block rendering the given piece.
func (s *Skin) BlockForPiece(p piece.Piece) *Block {
	return s.BlockForTag(byte(p.Kind))
}

// BlockForTag returns the block for a stored board tag. The tag set is
// closed; an unknown tag is a contract violation and panics.
func (s *Skin) BlockForTag(tag byte) *Block {
	switch piece.Kind(tag) {
	case piece.KindI:
		return s.blocks[sectionI]
	case piece.KindO:
		return s.blocks[sectionO]
	case piece.KindT:
		return s.blocks[sectionT]
	case piece.KindL:
		return s.blocks[sectionL]
	case piece.KindJ:
		return s.blocks[sectionJ]
	case piece.KindS:
		return s.blocks[sectionS]
	case piece.KindZ:
		return s.blocks[sectionZ]
	case piece.KindGray:
		return s.blocks[sectionGray]
	case piece.KindBlack:
		return s.blocks[sectionBlack]
	default:
		panic(fmt.Sprintf("skin: no block for tag %q", tag))
	}
}

// ResizeAll sizes every skin so the board grid exactly tiles an image of
// the given pixel dimensions. Fails with ErrDimension if a block dimension
// resolves to zero.
func ResizeAll(skins []*Skin, imgWidth, imgHeight, boardWidth, boardHeight int) error {
	if boardWidth <= 0 || boardHeight <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrDimension, boardWidth, boardHeight)
	}
	blockWidth := imgWidth / boardWidth
	blockHeight := imgHeight / boardHeight
	if blockWidth == 0 || blockHeight == 0 {
		return fmt.Errorf("%w: %dx%d image over %dx%d board leaves a zero block size",
			ErrDimension, imgWidth, imgHeight, boardWidth, boardHeight)
	}
	for _, s := range skins {
		s.Resize(blockWidth, blockHeight)
	}
	return nil
}

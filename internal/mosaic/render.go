package mosaic

import (
	"fmt"
	"image"
	"image/draw"

	"tetris-mosaic/internal/board"
	"tetris-mosaic/internal/piece"
)

// Render composes the final raster: every occupied cell's block is blitted
// at its pixel offset. Cells the scheduler left empty stay transparent,
// which only occurs on boards the caller chose not to fill completely.
func Render(sb *SkinnedBoard) *image.RGBA {
	blockWidth, blockHeight := sb.BlockWidth(), sb.BlockHeight()
	out := image.NewRGBA(image.Rect(0, 0, sb.Width()*blockWidth, sb.Height()*blockHeight))

	for y := 0; y < sb.Height(); y++ {
		for x := 0; x < sb.Width(); x++ {
			cell := piece.Cell{X: x, Y: y}
			tag, err := sb.Board().Get(cell)
			if err != nil {
				panic(fmt.Sprintf("mosaic: render walked off the board at (%d,%d)", x, y))
			}
			if tag == board.Empty {
				continue
			}

			skinID := sb.SkinAt(cell)
			if skinID == invalidSkin {
				panic(fmt.Sprintf("mosaic: occupied cell (%d,%d) has no skin", x, y))
			}
			block := sb.Skins()[skinID].BlockForTag(tag)

			dst := image.Rect(x*blockWidth, y*blockHeight, (x+1)*blockWidth, (y+1)*blockHeight)
			draw.Draw(out, dst, block.Image(), block.Image().Bounds().Min, draw.Src)
		}
	}
	return out
}

package mosaic

import (
	"fmt"
	"image"
	"image/color"

	"tetris-mosaic/internal/board"
	"tetris-mosaic/internal/piece"
	"tetris-mosaic/internal/skin"
	"tetris-mosaic/pkg/colorutil"
)

// Forward context window: occupied cells at (dx,dy) in [0,8)x[0,8) from an
// occupancy cell contribute to the cohesion term.
const contextWindow = 8

// scorer computes the dissimilarity of a candidate placement against the
// target image. The target local-average grid is precomputed once per run,
// independently of the skin averages.
type scorer struct {
	target     *image.RGBA
	avgGrid    []color.RGBA
	sb         *SkinnedBoard
	useContext bool
}

func newScorer(target *image.RGBA, sb *SkinnedBoard, useContext bool) (*scorer, error) {
	grid, err := targetAverages(target, sb.BlockWidth(), sb.BlockHeight())
	if err != nil {
		return nil, err
	}
	return &scorer{
		target:     target,
		avgGrid:    grid,
		sb:         sb,
		useContext: useContext,
	}, nil
}

// targetAverages computes the mean color of every block-sized tile of the
// target image. Image dimensions must be exact multiples of the tile size.
func targetAverages(target *image.RGBA, blockWidth, blockHeight int) ([]color.RGBA, error) {
	w, h := target.Bounds().Dx(), target.Bounds().Dy()
	if blockWidth <= 0 || blockHeight <= 0 {
		return nil, fmt.Errorf("%w: block size %dx%d", skin.ErrDimension, blockWidth, blockHeight)
	}
	if w%blockWidth != 0 || h%blockHeight != 0 {
		return nil, fmt.Errorf("%w: %dx%d image does not tile into %dx%d blocks",
			skin.ErrDimension, w, h, blockWidth, blockHeight)
	}

	perTile := uint64(blockWidth * blockHeight)
	grid := make([]color.RGBA, 0, (w/blockWidth)*(h/blockHeight))
	for ty := 0; ty < h; ty += blockHeight {
		for tx := 0; tx < w; tx += blockWidth {
			var sumR, sumG, sumB, sumA uint64
			for y := 0; y < blockHeight; y++ {
				for x := 0; x < blockWidth; x++ {
					px := target.RGBAAt(tx+x, ty+y)
					sumR += uint64(px.R)
					sumG += uint64(px.G)
					sumB += uint64(px.B)
					sumA += uint64(px.A)
				}
			}
			grid = append(grid, color.RGBA{
				R: uint8(sumR / perTile),
				G: uint8(sumG / perTile),
				B: uint8(sumB / perTile),
				A: uint8(sumA / perTile),
			})
		}
	}
	return grid, nil
}

// targetAverageAt returns the precomputed tile mean for a board cell.
func (sc *scorer) targetAverageAt(c piece.Cell) color.RGBA {
	return sc.avgGrid[c.Y*sc.sb.Width()+c.X]
}

// regionAverage averages the tile means over a piece's occupancy.
func (sc *scorer) regionAverage(occupancy []piece.Cell) color.RGBA {
	var sumR, sumG, sumB, sumA uint32
	for _, c := range occupancy {
		px := sc.targetAverageAt(c)
		sumR += uint32(px.R)
		sumG += uint32(px.G)
		sumB += uint32(px.B)
		sumA += uint32(px.A)
	}
	n := uint32(len(occupancy))
	return color.RGBA{
		R: uint8(sumR / n),
		G: uint8(sumG / n),
		B: uint8(sumB / n),
		A: uint8(sumA / n),
	}
}

// pieceDiff scores a candidate (piece, skin) pair. The basic term is a
// single running average of weighted squared pixel differences across all
// occupancy cells; the context term, when enabled, averages the cohesion
// distance against previously committed neighbor cells.
func (sc *scorer) pieceDiff(p piece.Piece, s *skin.Skin) (float64, error) {
	occupancy, err := p.Occupancy()
	if err != nil {
		return 0, err
	}

	block := s.BlockForPiece(p)
	blockWidth, blockHeight := block.Width(), block.Height()

	var basicSum float64
	basicCount := 0

	var contextSum float64
	contextCount := 0

	var candidateAvg, regionAvg color.RGBA
	if sc.useContext {
		candidateAvg = block.Average()
		regionAvg = sc.regionAverage(occupancy)
	}

	for _, c := range occupancy {
		if sc.useContext {
			n, sum := sc.contextDiff(c, occupancy, candidateAvg, regionAvg)
			contextCount += n
			contextSum += sum
		}

		for y := 0; y < blockHeight; y++ {
			for x := 0; x < blockWidth; x++ {
				targetPx := sc.target.RGBAAt(c.X*blockWidth+x, c.Y*blockHeight+y)
				basicSum += colorutil.WeightedSquares(colorutil.Delta(targetPx, block.At(x, y)))
				basicCount++
			}
		}
	}

	score := basicSum / float64(basicCount)
	if contextCount > 0 {
		score += contextSum / float64(contextCount)
	}
	return score, nil
}

// contextDiff gathers the occupied context cells in the forward window of
// one occupancy cell and accumulates the weighted cohesion distance: how
// much the candidate-to-neighbor color step on the board deviates from the
// same step in the target.
func (sc *scorer) contextDiff(from piece.Cell, occupancy []piece.Cell, candidateAvg, regionAvg color.RGBA) (int, float64) {
	count := 0
	var sum float64

	for dy := 0; dy < contextWindow; dy++ {
		for dx := 0; dx < contextWindow; dx++ {
			ctx := piece.Cell{X: from.X + dx, Y: from.Y + dy}
			tag, err := sc.sb.Board().Get(ctx)
			if err != nil || tag == board.Empty {
				continue
			}
			if containsCell(occupancy, ctx) {
				continue
			}

			ctxSkin := sc.sb.Skins()[sc.sb.SkinAt(ctx)]
			boardCtxAvg := ctxSkin.BlockForTag(tag).Average()

			boardDiff := colorutil.Delta(candidateAvg, boardCtxAvg)
			targetDiff := colorutil.Delta(regionAvg, sc.targetAverageAt(ctx))
			sum += colorutil.WeightedDistance(boardDiff, targetDiff)
			count++
		}
	}
	return count, sum
}

func containsCell(cells []piece.Cell, c piece.Cell) bool {
	for _, o := range cells {
		if o == c {
			return true
		}
	}
	return false
}

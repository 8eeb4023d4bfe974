// Package colorutil provides shared color utilities for the mosaic tooling.
package colorutil

import (
	"image"
	"image/color"
	"math"
)

// Channel weights for the perceptual difference metric. Green carries the
// most weight, matching its dominance in perceived luminance.
const (
	RedWeight   = 1.0
	GreenWeight = 1.7
	BlueWeight  = 0.8
)

// Average computes the mean RGBA color over an image, summing channels in
// uint64 accumulators so large images cannot overflow.
func Average(img image.Image) color.RGBA {
	bounds := img.Bounds()
	n := uint64(bounds.Dx()) * uint64(bounds.Dy())
	if n == 0 {
		return color.RGBA{}
	}

	var sumR, sumG, sumB, sumA uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			sumR += uint64(r >> 8)
			sumG += uint64(g >> 8)
			sumB += uint64(b >> 8)
			sumA += uint64(a >> 8)
		}
	}
	return color.RGBA{
		R: uint8(sumR / n),
		G: uint8(sumG / n),
		B: uint8(sumB / n),
		A: uint8(sumA / n),
	}
}

// Delta returns the signed per-channel RGB difference a-b.
func Delta(a, b color.RGBA) [3]int {
	return [3]int{
		int(a.R) - int(b.R),
		int(a.G) - int(b.G),
		int(a.B) - int(b.B),
	}
}

// WeightedSquares returns the perceptually weighted sum of squared channel
// differences for a delta vector.
func WeightedSquares(d [3]int) float64 {
	return float64(d[0]*d[0])*RedWeight +
		float64(d[1]*d[1])*GreenWeight +
		float64(d[2]*d[2])*BlueWeight
}

// WeightedDistance returns the perceptually weighted Euclidean distance
// between two delta vectors.
func WeightedDistance(a, b [3]int) float64 {
	dr := float64(a[0] - b[0])
	dg := float64(a[1] - b[1])
	db := float64(a[2] - b[2])
	return math.Sqrt(dr*dr*RedWeight + dg*dg*GreenWeight + db*db*BlueWeight)
}

// Luminance returns the Rec. 709 luma of a color in [0,255].
func Luminance(c color.RGBA) float64 {
	return 0.2126*float64(c.R) + 0.7152*float64(c.G) + 0.0722*float64(c.B)
}

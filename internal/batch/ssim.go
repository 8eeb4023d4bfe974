package batch

import (
	"fmt"
	"image"
)

// SSIM constants: 8x8 windows over 8-bit luma with the standard K1/K2.
const (
	ssimWindow = 8
	ssimC1     = (0.01 * 255) * (0.01 * 255)
	ssimC2     = (0.03 * 255) * (0.03 * 255)
)

// SSIM computes the mean structural similarity between two equally sized
// images over non-overlapping 8x8 luma windows. Identical images score 1.
func SSIM(a, b image.Image) (float64, error) {
	if a.Bounds().Dx() != b.Bounds().Dx() || a.Bounds().Dy() != b.Bounds().Dy() {
		return 0, fmt.Errorf("image sizes differ: %v vs %v", a.Bounds(), b.Bounds())
	}
	w, h := a.Bounds().Dx(), a.Bounds().Dy()
	if w == 0 || h == 0 {
		return 0, fmt.Errorf("empty image")
	}

	lumaA := toLuma(a)
	lumaB := toLuma(b)

	var total float64
	windows := 0
	for wy := 0; wy < h; wy += ssimWindow {
		for wx := 0; wx < w; wx += ssimWindow {
			endX := min(wx+ssimWindow, w)
			endY := min(wy+ssimWindow, h)
			total += windowSSIM(lumaA, lumaB, w, wx, wy, endX, endY)
			windows++
		}
	}
	return total / float64(windows), nil
}

func windowSSIM(a, b []float64, stride, x0, y0, x1, y1 int) float64 {
	n := float64((x1 - x0) * (y1 - y0))

	var meanA, meanB float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			meanA += a[y*stride+x]
			meanB += b[y*stride+x]
		}
	}
	meanA /= n
	meanB /= n

	var varA, varB, cov float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			da := a[y*stride+x] - meanA
			db := b[y*stride+x] - meanB
			varA += da * da
			varB += db * db
			cov += da * db
		}
	}
	varA /= n
	varB /= n
	cov /= n

	num := (2*meanA*meanB + ssimC1) * (2*cov + ssimC2)
	den := (meanA*meanA + meanB*meanB + ssimC1) * (varA + varB + ssimC2)
	return num / den
}

func toLuma(img image.Image) []float64 {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	out := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			out[y*w+x] = (0.2126*float64(r>>8) + 0.7152*float64(g>>8) + 0.0722*float64(b>>8))
		}
	}
	return out
}

package skin

import (
	"image"
	"log"
	"math"
	"sort"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// paletteSize is the number of tones extracted from the target image when
// ranking skins. Nine matches the section count of a sheet.
const paletteSize = NumSections

// SelectByPalette ranks skins by how closely their block averages match the
// target image's dominant palette and returns the n best, preserving the
// catalog id order among the survivors. With n <= 0 or n >= len(skins) the
// input is returned unchanged.
func SelectByPalette(skins []*Skin, target image.Image, n int) []*Skin {
	if n <= 0 || n >= len(skins) {
		return skins
	}

	palette := extractPalette(target, paletteSize)
	if len(palette) == 0 {
		return skins
	}

	type ranked struct {
		skin *Skin
		cost float64
	}
	rankedSkins := make([]ranked, 0, len(skins))
	for _, s := range skins {
		rankedSkins = append(rankedSkins, ranked{skin: s, cost: paletteCost(s, palette)})
	}
	sort.SliceStable(rankedSkins, func(i, j int) bool {
		return rankedSkins[i].cost < rankedSkins[j].cost
	})

	kept := make([]*Skin, 0, n)
	for _, r := range rankedSkins[:n] {
		kept = append(kept, r.skin)
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].ID() < kept[j].ID() })
	return kept
}

// paletteCost measures how far a skin's block averages sit from the target
// palette in CIE-Lab space: for each palette tone, the distance to the
// nearest block average, summed over tones.
func paletteCost(s *Skin, palette []colorful.Color) float64 {
	var cost float64
	for _, tone := range palette {
		best := math.MaxFloat64
		for _, b := range s.Blocks() {
			c, ok := colorful.MakeColor(b.Average())
			if !ok {
				continue
			}
			if d := tone.DistanceLab(c); d < best {
				best = d
			}
		}
		cost += best
	}
	return cost
}

// extractPalette clusters the image's pixels into k tones with k-means,
// falling back to the single dominant color when clustering fails.
func extractPalette(img image.Image, k int) []colorful.Color {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 || k <= 0 {
		return nil
	}

	// Subsample to keep kmeans tractable on large images.
	const maxSamples = 12000
	step := 1
	if w*h > maxSamples {
		step = int(math.Sqrt(float64(w*h)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r16, g16, b16, a16 := img.At(x, y).RGBA()
			if a16 == 0 {
				continue
			}
			dataset = append(dataset, clusters.Coordinates{
				float64(r16) / 65535.0,
				float64(g16) / 65535.0,
				float64(b16) / 65535.0,
			})
		}
	}
	if len(dataset) == 0 {
		return nil
	}
	if k > len(dataset) {
		k = len(dataset)
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil || len(cc) == 0 {
		log.Println("palette warning: kmeans failed, falling back to dominant color")
		c, ok := colorful.MakeColor(dominantcolor.Find(img))
		if !ok {
			return nil
		}
		return []colorful.Color{c}
	}

	palette := make([]colorful.Color, 0, len(cc))
	for _, cluster := range cc {
		center := cluster.Center
		if len(center) < 3 {
			continue
		}
		palette = append(palette, colorful.Color{R: center[0], G: center[1], B: center[2]}.Clamped())
	}
	return palette
}

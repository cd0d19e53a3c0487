// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feature

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
	"gonum.org/v1/gonum/stat"
)

const (
	// MinDimension is the smallest acceptable input width or height.
	MinDimension = 32

	// analysisSize is the side length images are normalized to before
	// analysis. Matches the 224x224 input of common food classifiers so
	// local and remote stages see comparable crops.
	analysisSize = 224
)

// Texture thresholds on the gray-value variance and the percentage of
// edge pixels. Empirically tuned, not derived.
const (
	smoothVariance  = 100
	smoothEdgePct   = 10
	complexVariance = 1000
	complexEdgePct  = 50
	texturedEdgePct = 30
	uniformVariance = 500
)

// Shape thresholds. centerDelta separates a bright centered subject from
// its surround, flatDelta marks images with no usable structure, and
// layerRatio is the min/max band-variance ratio that indicates stacked
// horizontal layers.
const (
	centerDelta = 50
	flatDelta   = 20
	layerRatio  = 3
)

// Extract computes the Descriptor for img. It returns *InvalidImageError
// when either dimension is below MinDimension; no other failure mode
// exists once an image has been decoded.
func Extract(img image.Image) (Descriptor, error) {
	b := img.Bounds()
	if b.Dx() < MinDimension || b.Dy() < MinDimension {
		return Descriptor{}, &InvalidImageError{
			Reason: fmt.Sprintf("%dx%d below minimum %dx%d", b.Dx(), b.Dy(), MinDimension, MinDimension),
		}
	}

	rgba := normalize(img)
	colors := colorRatios(rgba)
	grays := grayValues(rgba)

	mean := stat.Mean(grays, nil)
	variance := stat.PopVariance(grays, nil)
	edgePct := edgePercent(grays)

	return Descriptor{
		Colors:     colors,
		Texture:    classifyTexture(variance, edgePct),
		Shape:      classifyShape(grays),
		Brightness: mean,
		Contrast:   math.Sqrt(variance),
	}, nil
}

// normalize resamples img to the fixed analysis size.
func normalize(img image.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, analysisSize, analysisSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// colorRatios classifies every pixel into exactly one band and returns the
// per-band fractions. The fractions sum to 1.0 because the bands partition
// the RGB cube.
func colorRatios(img *image.RGBA) map[ColorBand]float64 {
	counts := make(map[ColorBand]int, len(Bands()))
	for y := 0; y < analysisSize; y++ {
		for x := 0; x < analysisSize; x++ {
			off := img.PixOffset(x, y)
			r := int(img.Pix[off])
			g := int(img.Pix[off+1])
			b := int(img.Pix[off+2])
			counts[classifyPixel(r, g, b)]++
		}
	}

	total := float64(analysisSize * analysisSize)
	ratios := make(map[ColorBand]float64, len(counts))
	for band, n := range counts {
		ratios[band] = float64(n) / total
	}
	return ratios
}

// classifyPixel assigns an RGB triple to a color band. The checks run in a
// fixed order and the first match wins, so the bands are exclusive. The
// cutoffs are empirically tuned against plated food photos.
func classifyPixel(r, g, b int) ColorBand {
	switch {
	case r > 200 && g > 200 && b > 200:
		return BandWhite
	case r < 50 && g < 50 && b < 50:
		return BandBlack
	case abs(r-g) < 20 && abs(g-b) < 20 && abs(r-b) < 20:
		return BandGray
	case r > 100 && r < 180 && g > 50 && g < 130 && b < 100 && r > g && g > b:
		return BandBrown
	case r > 150 && r > g+50 && r > b+50:
		return BandRed
	case r > 180 && g > 100 && g < 180 && b < 100:
		return BandOrange
	case r > 180 && g > 180 && b < 150:
		return BandYellow
	case g > 100 && g > r+30 && g > b+30:
		return BandGreen
	case b > 100 && b > r+30 && b > g+30:
		return BandBlue
	case r > 100 && b > 100 && g < 100:
		return BandPurple
	case r > 180 && g > 100 && g < 180 && b > 100 && b < 180:
		return BandPink
	case r > 180 && r < 220 && g > 160 && g < 200 && b > 120 && b < 180:
		return BandBeige
	default:
		return BandOther
	}
}

// grayValues returns the luma of each pixel in row-major order.
func grayValues(img *image.RGBA) []float64 {
	grays := make([]float64, 0, analysisSize*analysisSize)
	for y := 0; y < analysisSize; y++ {
		for x := 0; x < analysisSize; x++ {
			off := img.PixOffset(x, y)
			r := float64(img.Pix[off])
			g := float64(img.Pix[off+1])
			b := float64(img.Pix[off+2])
			grays = append(grays, 0.299*r+0.587*g+0.114*b)
		}
	}
	return grays
}

// edgePercent measures the share of pixels whose gray value jumps by more
// than 30 relative to the next pixel, horizontally or vertically.
func edgePercent(grays []float64) float64 {
	const jump = 30
	edges := 0
	for y := 0; y < analysisSize; y++ {
		for x := 0; x < analysisSize; x++ {
			i := y*analysisSize + x
			if x+1 < analysisSize && math.Abs(grays[i]-grays[i+1]) > jump {
				edges++
				continue
			}
			if y+1 < analysisSize && math.Abs(grays[i]-grays[i+analysisSize]) > jump {
				edges++
			}
		}
	}
	return 100 * float64(edges) / float64(analysisSize*analysisSize)
}

// classifyTexture buckets variance and edge density. The checks run in a
// fixed order and fall through to textured.
func classifyTexture(variance, edgePct float64) TextureClass {
	switch {
	case variance < smoothVariance && edgePct < smoothEdgePct:
		return TextureSmooth
	case variance > complexVariance && edgePct > complexEdgePct:
		return TextureComplex
	case edgePct > texturedEdgePct:
		return TextureTextured
	case variance < uniformVariance:
		return TextureUniform
	default:
		return TextureTextured
	}
}

// classifyShape compares the brightness of the center region against the
// border and the variance profile of horizontal bands. Circular wins when
// the subject is clearly brighter than its surround; a flat image is
// irregular; strongly uneven band variances indicate layers.
func classifyShape(grays []float64) ShapeClass {
	const (
		border = 20
		lo     = analysisSize*3/8 + 1
		hi     = analysisSize * 5 / 8
	)

	var center, centerN float64
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			center += grays[y*analysisSize+x]
			centerN++
		}
	}
	center /= centerN

	var edge, edgeN float64
	for y := 0; y < analysisSize; y++ {
		for x := 0; x < analysisSize; x++ {
			if y >= border && y < analysisSize-border && x >= border && x < analysisSize-border {
				continue
			}
			edge += grays[y*analysisSize+x]
			edgeN++
		}
	}
	edge /= edgeN

	switch {
	case center > edge+centerDelta:
		return ShapeCircular
	case math.Abs(center-edge) < flatDelta:
		return ShapeIrregular
	}

	// Variance per horizontal band of 20 rows. A large spread between the
	// calmest and busiest band marks stacked layers.
	const bandRows = 20
	minVar, maxVar := math.Inf(1), 0.0
	for start := 0; start+bandRows <= analysisSize; start += bandRows {
		band := grays[start*analysisSize : (start+bandRows)*analysisSize]
		v := stat.PopVariance(band, nil)
		minVar = math.Min(minVar, v)
		maxVar = math.Max(maxVar, v)
	}
	if maxVar > (minVar+1)*layerRatio {
		return ShapeLayered
	}
	return ShapeIrregular
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

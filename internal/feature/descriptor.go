// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package feature converts decoded image pixels into a compact descriptor:
// a color-band distribution, texture and shape classes, and brightness and
// contrast values. Descriptors are immutable, owned by the request that
// produced them, and never cached.
package feature

import "fmt"

// ColorBand names one of the fixed color categories a pixel can fall into.
type ColorBand string

// The fixed color bands, in classification order. Every pixel lands in
// exactly one band, so the per-band ratios of a descriptor sum to 1.0.
const (
	BandWhite  ColorBand = "white"
	BandBlack  ColorBand = "black"
	BandGray   ColorBand = "gray"
	BandBrown  ColorBand = "brown"
	BandRed    ColorBand = "red"
	BandOrange ColorBand = "orange"
	BandYellow ColorBand = "yellow"
	BandGreen  ColorBand = "green"
	BandBlue   ColorBand = "blue"
	BandPurple ColorBand = "purple"
	BandPink   ColorBand = "pink"
	BandBeige  ColorBand = "beige"
	BandOther  ColorBand = "other"
)

// Bands returns the color bands in classification order. The order doubles
// as the deterministic tie-break order for dominant-band selection.
func Bands() []ColorBand {
	return []ColorBand{
		BandWhite, BandBlack, BandGray, BandBrown, BandRed, BandOrange,
		BandYellow, BandGreen, BandBlue, BandPurple, BandPink, BandBeige,
		BandOther,
	}
}

// TextureClass buckets the local pixel-value variance of an image.
type TextureClass string

const (
	TextureSmooth   TextureClass = "smooth"
	TextureTextured TextureClass = "textured"
	TextureComplex  TextureClass = "complex"
	TextureUniform  TextureClass = "uniform"
)

// ShapeClass buckets the gross spatial arrangement of an image.
type ShapeClass string

const (
	ShapeCircular  ShapeClass = "circular"
	ShapeLayered   ShapeClass = "layered"
	ShapeIrregular ShapeClass = "irregular"
)

// Descriptor summarizes an image's color distribution, texture, shape,
// brightness, and contrast.
type Descriptor struct {
	// Colors maps each band to the fraction of pixels in it, in [0,1],
	// summing to 1.0 across all bands.
	Colors map[ColorBand]float64 `json:"colors" yaml:"colors"`

	Texture TextureClass `json:"texture" yaml:"texture"`
	Shape   ShapeClass   `json:"shape" yaml:"shape"`

	// Brightness is the mean gray value in [0,255].
	Brightness float64 `json:"brightness" yaml:"brightness"`

	// Contrast is the gray-value standard deviation in [0,255].
	Contrast float64 `json:"contrast" yaml:"contrast"`
}

// Ratio returns the color ratio for band, zero if absent.
func (d Descriptor) Ratio(band ColorBand) float64 {
	return d.Colors[band]
}

// DominantBand returns the band with the highest ratio. Ties resolve to the
// earlier band in classification order.
func (d Descriptor) DominantBand() ColorBand {
	best := BandOther
	bestRatio := -1.0
	for _, band := range Bands() {
		if r := d.Colors[band]; r > bestRatio {
			best = band
			bestRatio = r
		}
	}
	return best
}

// InvalidImageError reports input that fails the minimum decodability or
// size precondition. It is the only error the pipeline surfaces to callers.
type InvalidImageError struct {
	Reason string
}

func (e *InvalidImageError) Error() string {
	return fmt.Sprintf("invalid image: %s", e.Reason)
}

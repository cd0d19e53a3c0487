// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package feature

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestExtractRejectsSmallImage(t *testing.T) {
	_, err := Extract(solidImage(31, 200, color.RGBA{R: 255, A: 255}))
	require.Error(t, err)

	var invalid *InvalidImageError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "below minimum")
}

func TestExtractSolidColorDominance(t *testing.T) {
	cases := []struct {
		name string
		c    color.RGBA
		want ColorBand
	}{
		{"green", color.RGBA{G: 255, A: 255}, BandGreen},
		{"red", color.RGBA{R: 255, A: 255}, BandRed},
		{"white", color.RGBA{R: 250, G: 250, B: 250, A: 255}, BandWhite},
		{"black", color.RGBA{R: 10, G: 10, B: 10, A: 255}, BandBlack},
		{"brown", color.RGBA{R: 140, G: 90, B: 40, A: 255}, BandBrown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Extract(solidImage(64, 64, tc.c))
			require.NoError(t, err)
			assert.Equal(t, tc.want, d.DominantBand())
			assert.GreaterOrEqual(t, d.Ratio(tc.want), 0.95)
		})
	}
}

func TestExtractRatiosSumToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}

	d, err := Extract(img)
	require.NoError(t, err)

	sum := 0.0
	for _, band := range Bands() {
		r := d.Ratio(band)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 1.0)
		sum += r
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
}

func TestExtractDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	img := image.NewRGBA(image.Rect(0, 0, 96, 96))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.Intn(256))
	}

	first, err := Extract(img)
	require.NoError(t, err)
	second, err := Extract(img)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestExtractSmoothTexture(t *testing.T) {
	d, err := Extract(solidImage(64, 64, color.RGBA{R: 128, G: 128, B: 128, A: 255}))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if d.Texture != TextureSmooth {
		t.Errorf("texture = %q, want %q", d.Texture, TextureSmooth)
	}
	if d.Contrast > 1 {
		t.Errorf("contrast = %.2f for a flat image", d.Contrast)
	}
	if math.Abs(d.Brightness-128) > 2 {
		t.Errorf("brightness = %.2f, want ~128", d.Brightness)
	}
}

func TestExtractCircularShape(t *testing.T) {
	// Bright disc on a dark surround.
	img := image.NewRGBA(image.Rect(0, 0, 224, 224))
	cx, cy, radius := 112.0, 112.0, 70.0
	for y := 0; y < 224; y++ {
		for x := 0; x < 224; x++ {
			dx, dy := float64(x)-cx, float64(y)-cy
			if math.Hypot(dx, dy) < radius {
				img.SetRGBA(x, y, color.RGBA{R: 230, G: 230, B: 230, A: 255})
			} else {
				img.SetRGBA(x, y, color.RGBA{R: 30, G: 30, B: 30, A: 255})
			}
		}
	}

	d, err := Extract(img)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if d.Shape != ShapeCircular {
		t.Errorf("shape = %q, want %q", d.Shape, ShapeCircular)
	}
}

func TestExtractIrregularShapeOnFlatImage(t *testing.T) {
	d, err := Extract(solidImage(64, 64, color.RGBA{R: 90, G: 90, B: 90, A: 255}))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if d.Shape != ShapeIrregular {
		t.Errorf("shape = %q, want %q", d.Shape, ShapeIrregular)
	}
}

func TestClassifyPixelExclusiveBands(t *testing.T) {
	cases := []struct {
		r, g, b int
		want    ColorBand
	}{
		{255, 255, 255, BandWhite},
		{20, 20, 20, BandBlack},
		{120, 125, 130, BandGray},
		{150, 100, 50, BandBrown},
		{220, 40, 40, BandRed},
		{200, 160, 40, BandOrange},
		{230, 220, 60, BandYellow},
		{60, 180, 60, BandGreen},
		{40, 60, 200, BandBlue},
		{140, 60, 160, BandPurple},
		{200, 160, 160, BandPink},
		{200, 180, 150, BandBeige},
		{90, 60, 90, BandOther},
	}
	for _, tc := range cases {
		got := classifyPixel(tc.r, tc.g, tc.b)
		if got != tc.want {
			t.Errorf("classifyPixel(%d,%d,%d) = %q, want %q", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

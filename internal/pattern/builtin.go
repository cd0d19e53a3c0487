// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pattern

import "github.com/pbolem/nutriguide/internal/feature"

// ref builds a reference descriptor from the named band ratios. The
// remainder of the distribution lands in the "other" band so every
// reference sums to 1.0.
func ref(texture feature.TextureClass, shape feature.ShapeClass, brightness, contrast float64, colors map[feature.ColorBand]float64) feature.Descriptor {
	rest := 1.0
	for _, r := range colors {
		rest -= r
	}
	colors[feature.BandOther] = rest
	return feature.Descriptor{
		Colors:     colors,
		Texture:    texture,
		Shape:      shape,
		Brightness: brightness,
		Contrast:   contrast,
	}
}

// builtin returns the reference table of common plated foods. Ratios and
// classes were tuned against a small labelled photo set; serving sizes
// follow the canonical nutrition records.
func builtin() []Pattern {
	return []Pattern{
		{
			Name: "pizza", Category: "mixed", ServingGrams: 150,
			Reference: ref(feature.TextureTextured, feature.ShapeCircular, 140, 55, map[feature.ColorBand]float64{
				feature.BandRed: 0.28, feature.BandYellow: 0.24, feature.BandBrown: 0.16, feature.BandBeige: 0.10,
			}),
		},
		{
			Name: "burger", Category: "meat", ServingGrams: 220,
			Reference: ref(feature.TextureTextured, feature.ShapeLayered, 120, 50, map[feature.ColorBand]float64{
				feature.BandBrown: 0.38, feature.BandBeige: 0.20, feature.BandGreen: 0.08, feature.BandRed: 0.07,
			}),
		},
		{
			Name: "french fries", Category: "grain", ServingGrams: 120,
			Reference: ref(feature.TextureTextured, feature.ShapeIrregular, 170, 40, map[feature.ColorBand]float64{
				feature.BandYellow: 0.45, feature.BandBeige: 0.22, feature.BandBrown: 0.10,
			}),
		},
		{
			Name: "hot dog", Category: "meat", ServingGrams: 150,
			Reference: ref(feature.TextureSmooth, feature.ShapeLayered, 150, 45, map[feature.ColorBand]float64{
				feature.BandBrown: 0.28, feature.BandBeige: 0.26, feature.BandRed: 0.14, feature.BandYellow: 0.08,
			}),
		},
		{
			Name: "sushi", Category: "mixed", ServingGrams: 180,
			Reference: ref(feature.TextureSmooth, feature.ShapeCircular, 150, 50, map[feature.ColorBand]float64{
				feature.BandWhite: 0.34, feature.BandBlack: 0.14, feature.BandRed: 0.12, feature.BandGreen: 0.08,
			}),
		},
		{
			Name: "fried rice", Category: "rice", ServingGrams: 200,
			Reference: ref(feature.TextureTextured, feature.ShapeIrregular, 150, 42, map[feature.ColorBand]float64{
				feature.BandYellow: 0.28, feature.BandBeige: 0.24, feature.BandBrown: 0.14, feature.BandGreen: 0.08,
			}),
		},
		{
			Name: "noodles", Category: "grain", ServingGrams: 200,
			Reference: ref(feature.TextureTextured, feature.ShapeIrregular, 160, 38, map[feature.ColorBand]float64{
				feature.BandYellow: 0.34, feature.BandBeige: 0.24, feature.BandBrown: 0.10,
			}),
		},
		{
			Name: "curry", Category: "mixed", ServingGrams: 250,
			Reference: ref(feature.TextureUniform, feature.ShapeIrregular, 130, 35, map[feature.ColorBand]float64{
				feature.BandOrange: 0.30, feature.BandBrown: 0.24, feature.BandYellow: 0.14,
			}),
		},
		{
			Name: "salad", Category: "vegetable", ServingGrams: 150,
			Reference: ref(feature.TextureComplex, feature.ShapeIrregular, 130, 52, map[feature.ColorBand]float64{
				feature.BandGreen: 0.48, feature.BandRed: 0.10, feature.BandYellow: 0.08, feature.BandWhite: 0.07,
			}),
		},
		{
			Name: "fruit bowl", Category: "fruit", ServingGrams: 150,
			Reference: ref(feature.TextureComplex, feature.ShapeIrregular, 150, 55, map[feature.ColorBand]float64{
				feature.BandRed: 0.20, feature.BandYellow: 0.16, feature.BandOrange: 0.14, feature.BandGreen: 0.12, feature.BandPurple: 0.06,
			}),
		},
		{
			Name: "smoothie", Category: "fruit", ServingGrams: 300,
			Reference: ref(feature.TextureUniform, feature.ShapeCircular, 150, 25, map[feature.ColorBand]float64{
				feature.BandPink: 0.34, feature.BandPurple: 0.14, feature.BandRed: 0.10, feature.BandWhite: 0.10,
			}),
		},
		{
			Name: "grilled chicken", Category: "meat", ServingGrams: 170,
			Reference: ref(feature.TextureTextured, feature.ShapeIrregular, 140, 45, map[feature.ColorBand]float64{
				feature.BandBrown: 0.34, feature.BandBeige: 0.24, feature.BandWhite: 0.10,
			}),
		},
		{
			Name: "steak", Category: "meat", ServingGrams: 220,
			Reference: ref(feature.TextureTextured, feature.ShapeIrregular, 100, 48, map[feature.ColorBand]float64{
				feature.BandBrown: 0.44, feature.BandRed: 0.14, feature.BandBlack: 0.10,
			}),
		},
		{
			Name: "grilled fish", Category: "meat", ServingGrams: 180,
			Reference: ref(feature.TextureSmooth, feature.ShapeIrregular, 160, 38, map[feature.ColorBand]float64{
				feature.BandWhite: 0.30, feature.BandBeige: 0.24, feature.BandBrown: 0.14, feature.BandGray: 0.08,
			}),
		},
		{
			Name: "eggs", Category: "meat", ServingGrams: 100,
			Reference: ref(feature.TextureSmooth, feature.ShapeCircular, 180, 35, map[feature.ColorBand]float64{
				feature.BandWhite: 0.40, feature.BandYellow: 0.30,
			}),
		},
		{
			Name: "pancakes", Category: "grain", ServingGrams: 150,
			Reference: ref(feature.TextureSmooth, feature.ShapeLayered, 150, 35, map[feature.ColorBand]float64{
				feature.BandBrown: 0.30, feature.BandBeige: 0.30, feature.BandYellow: 0.10,
			}),
		},
		{
			Name: "oatmeal", Category: "grain", ServingGrams: 250,
			Reference: ref(feature.TextureUniform, feature.ShapeIrregular, 160, 22, map[feature.ColorBand]float64{
				feature.BandBeige: 0.40, feature.BandBrown: 0.14, feature.BandWhite: 0.14, feature.BandGray: 0.06,
			}),
		},
		{
			Name: "rice", Category: "rice", ServingGrams: 200,
			Reference: ref(feature.TextureUniform, feature.ShapeIrregular, 190, 20, map[feature.ColorBand]float64{
				feature.BandWhite: 0.54, feature.BandGray: 0.10, feature.BandBeige: 0.10,
			}),
		},
		{
			Name: "pasta", Category: "grain", ServingGrams: 220,
			Reference: ref(feature.TextureTextured, feature.ShapeIrregular, 150, 45, map[feature.ColorBand]float64{
				feature.BandYellow: 0.34, feature.BandRed: 0.20, feature.BandBeige: 0.10,
			}),
		},
		{
			Name: "bread", Category: "grain", ServingGrams: 80,
			Reference: ref(feature.TextureSmooth, feature.ShapeIrregular, 160, 30, map[feature.ColorBand]float64{
				feature.BandBrown: 0.28, feature.BandBeige: 0.36, feature.BandWhite: 0.10,
			}),
		},
	}
}

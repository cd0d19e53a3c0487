// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbolem/nutriguide/internal/match"
	"github.com/pbolem/nutriguide/internal/nutrition"
	"github.com/pbolem/nutriguide/internal/pattern"
	"github.com/pbolem/nutriguide/internal/recipe"
	"github.com/pbolem/nutriguide/pkg/types"
)

type fakeClassifier struct {
	enabled bool
	cand    types.DetectionCandidate
	err     error
	calls   int
}

func (f *fakeClassifier) Enabled() bool { return f.enabled }

func (f *fakeClassifier) Classify(_ context.Context, _ []byte) (types.DetectionCandidate, error) {
	f.calls++
	return f.cand, f.err
}

func newPipeline(classifier Classifier) *Pipeline {
	return New(Deps{
		Classifier: classifier,
		Matcher:    match.New(pattern.Default()),
		Nutrition:  nutrition.NewResolver(nutrition.Records()),
		Recipes:    recipe.NewGenerator(),
	})
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestAnalyzeBytesUndecodable(t *testing.T) {
	p := newPipeline(nil)

	_, err := p.AnalyzeBytes(context.Background(), []byte("not an image"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid image")
}

func TestAnalyzeRejectsTinyImage(t *testing.T) {
	p := newPipeline(nil)

	data := encodePNG(t, solidImage(8, 8, color.RGBA{G: 255, A: 255}))
	_, err := p.AnalyzeBytes(context.Background(), data, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "below minimum")
}

func TestAnalyzeAlwaysYieldsResult(t *testing.T) {
	p := newPipeline(nil)

	colors := []color.RGBA{
		{G: 255, A: 255},
		{R: 255, A: 255},
		{R: 140, G: 90, B: 40, A: 255},
		{R: 30, G: 30, B: 200, A: 255},
		{R: 90, G: 60, B: 90, A: 255},
	}
	for _, c := range colors {
		data := encodePNG(t, solidImage(64, 64, c))
		res, err := p.AnalyzeBytes(context.Background(), data, "")
		require.NoError(t, err)

		assert.NotEmpty(t, res.Recommendation.Label)
		assert.GreaterOrEqual(t, res.Recommendation.Confidence, 0.60)
		assert.LessOrEqual(t, res.Recommendation.Confidence, 1.0)
		assert.NotEmpty(t, res.Recommendation.Nutrition.Name)
		assert.NotEmpty(t, res.Recommendation.Recipes)
		assert.LessOrEqual(t, len(res.Trace), 4)
	}
}

func TestAnalyzeDeterministicWithoutRemote(t *testing.T) {
	p := newPipeline(nil)
	data := encodePNG(t, solidImage(64, 64, color.RGBA{G: 255, A: 255}))

	first, err := p.AnalyzeBytes(context.Background(), data, "")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		res, err := p.AnalyzeBytes(context.Background(), data, "")
		require.NoError(t, err)
		assert.Equal(t, first.Recommendation.Label, res.Recommendation.Label)
		assert.Equal(t, first.Recommendation.Confidence, res.Recommendation.Confidence)
	}
}

func TestGreenImageResolvesVegetable(t *testing.T) {
	p := newPipeline(nil)
	data := encodePNG(t, solidImage(64, 64, color.RGBA{G: 255, A: 255}))

	res, err := p.AnalyzeBytes(context.Background(), data, "")
	require.NoError(t, err)
	assert.Equal(t, "vegetable dish", res.Recommendation.Label)
	assert.Equal(t, "color_heuristic", res.Recommendation.Source)
	assert.InDelta(t, 0.65, res.Recommendation.Confidence, 1e-9)
}

func TestRemoteHighConfidenceTerminatesImmediately(t *testing.T) {
	fc := &fakeClassifier{
		enabled: true,
		cand:    types.DetectionCandidate{Label: "pizza", Confidence: 0.90, Source: types.SourceRemote},
	}
	p := newPipeline(fc)
	data := encodePNG(t, solidImage(64, 64, color.RGBA{R: 200, G: 60, B: 40, A: 255}))

	res, err := p.AnalyzeBytes(context.Background(), data, "")
	require.NoError(t, err)

	assert.Equal(t, "pizza", res.Recommendation.Label)
	assert.Equal(t, "remote", res.Recommendation.Source)
	assert.Equal(t, "pizza", res.Recommendation.Nutrition.Name)
	require.Len(t, res.Trace, 1)
	assert.Equal(t, StateTryRemote, res.Trace[0].State)

	// The mixed-category recipes must include a pizza-relevant ingredient.
	found := false
	for _, r := range res.Recommendation.Recipes {
		for _, ing := range r.Ingredients {
			if strings.Contains(strings.ToLower(ing), "mozzarella") || strings.Contains(strings.ToLower(ing), "pizza") {
				found = true
			}
		}
	}
	assert.True(t, found, "no pizza-relevant ingredient in %+v", res.Recommendation.Recipes)
}

func TestRemoteFailurePrunesBranch(t *testing.T) {
	fc := &fakeClassifier{enabled: true, err: errors.New("boom")}
	p := newPipeline(fc)
	data := encodePNG(t, solidImage(64, 64, color.RGBA{G: 255, A: 255}))

	res, err := p.AnalyzeBytes(context.Background(), data, "")
	require.NoError(t, err)

	assert.Equal(t, 1, fc.calls)
	assert.NotEqual(t, "remote", res.Recommendation.Source)
	assert.NotEmpty(t, res.Recommendation.Label)
}

func TestRetainedRemoteBeatsWeakerLocal(t *testing.T) {
	// Remote answers below the high threshold but above medium; the local
	// matcher on a noisy descriptor scores lower, so the retained remote
	// candidate wins at the local-match state.
	fc := &fakeClassifier{
		enabled: true,
		cand:    types.DetectionCandidate{Label: "curry", Confidence: 0.72, Source: types.SourceRemote},
	}
	p := newPipeline(fc)
	data := encodePNG(t, solidImage(64, 64, color.RGBA{R: 90, G: 60, B: 90, A: 255}))

	res, err := p.AnalyzeBytes(context.Background(), data, "")
	require.NoError(t, err)

	assert.Equal(t, "curry", res.Recommendation.Label)
	assert.Equal(t, "remote", res.Recommendation.Source)
	require.Len(t, res.Trace, 2)
	assert.Equal(t, StateTryLocalMatch, res.Trace[1].State)
}

func TestNoFallbackWhenThresholdMet(t *testing.T) {
	p := newPipeline(nil)
	data := encodePNG(t, solidImage(64, 64, color.RGBA{G: 255, A: 255}))

	res, err := p.AnalyzeBytes(context.Background(), data, "")
	require.NoError(t, err)
	for _, step := range res.Trace {
		assert.NotEqual(t, StateFallback, step.State)
	}
}

func TestAnalyzeSkipsRemoteWithoutBytes(t *testing.T) {
	fc := &fakeClassifier{
		enabled: true,
		cand:    types.DetectionCandidate{Label: "pizza", Confidence: 0.95, Source: types.SourceRemote},
	}
	p := newPipeline(fc)

	res, err := p.Analyze(context.Background(), solidImage(64, 64, color.RGBA{G: 255, A: 255}), "")
	require.NoError(t, err)

	assert.Equal(t, 0, fc.calls)
	assert.Equal(t, "skipped: no encoded image", res.Trace[0].Outcome)
}

func TestNotesReachRecipes(t *testing.T) {
	p := newPipeline(nil)
	data := encodePNG(t, solidImage(64, 64, color.RGBA{G: 255, A: 255}))

	res, err := p.AnalyzeBytes(context.Background(), data, "quick dinner")
	require.NoError(t, err)
	for _, r := range res.Recommendation.Recipes {
		assert.LessOrEqual(t, r.TimeMinutes, 20)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences the identification strategies and assembles
// the final recommendation. The orchestrator is a fixed-order state
// machine: TryRemote, TryLocalMatch, TryColorHeuristic, Fallback. Each
// state runs at most once, every run terminates within four transitions,
// and the Fallback state cannot fail, so a valid image always yields a
// result.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"

	// Register the decoders the analyze entry points accept.
	_ "image/jpeg"
	_ "image/png"

	"github.com/pbolem/nutriguide/internal/feature"
	"github.com/pbolem/nutriguide/internal/match"
	"github.com/pbolem/nutriguide/internal/nutrition"
	"github.com/pbolem/nutriguide/internal/recipe"
	"github.com/pbolem/nutriguide/pkg/types"
)

// State names an orchestrator state.
type State int

const (
	StateTryRemote State = iota
	StateTryLocalMatch
	StateTryColorHeuristic
	StateFallback
)

func (s State) String() string {
	switch s {
	case StateTryRemote:
		return "try_remote"
	case StateTryLocalMatch:
		return "try_local_match"
	case StateTryColorHeuristic:
		return "try_color_heuristic"
	case StateFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Step records one visited state and what happened there.
type Step struct {
	State   State
	Outcome string
}

// Classifier is the remote strategy as the orchestrator sees it.
type Classifier interface {
	Enabled() bool
	Classify(ctx context.Context, imageData []byte) (types.DetectionCandidate, error)
}

// Deps carries the injected collaborators. All of them are immutable
// after construction and shared across requests.
type Deps struct {
	Classifier Classifier
	Matcher    *match.Matcher
	Nutrition  *nutrition.Resolver
	Recipes    *recipe.Generator
	Thresholds types.Thresholds

	// Warnings receives human-readable notes about pruned strategies.
	// Nil means discard.
	Warnings io.Writer
}

// Pipeline runs the full analysis for one image per call. Calls are
// independent; the only shared state is the read-only dependency set.
type Pipeline struct {
	deps Deps
}

// New builds a Pipeline. Zero Thresholds are replaced by the calibrated
// defaults.
func New(deps Deps) *Pipeline {
	if deps.Warnings == nil {
		deps.Warnings = io.Discard
	}
	if deps.Thresholds == (types.Thresholds{}) {
		deps.Thresholds = types.DefaultThresholds()
	}
	return &Pipeline{deps: deps}
}

// Result is the outcome of one pipeline run.
type Result struct {
	Recommendation types.Recommendation

	// Candidate is the winning detection before nutrition resolution.
	Candidate types.DetectionCandidate

	// Descriptor is the extracted image summary, useful for debugging
	// why a strategy won.
	Descriptor feature.Descriptor

	// Trace lists the orchestrator states visited, in order.
	Trace []Step
}

// AnalyzeBytes decodes data (JPEG or PNG) and analyzes it. Undecodable
// input fails with *feature.InvalidImageError; nothing else can fail.
func (p *Pipeline) AnalyzeBytes(ctx context.Context, data []byte, notes string) (*Result, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &feature.InvalidImageError{Reason: fmt.Sprintf("undecodable image: %v", err)}
	}
	return p.analyze(ctx, img, data, notes)
}

// Analyze analyzes an already-decoded image. Without the encoded bytes
// the remote strategy has nothing to send, so it is skipped.
func (p *Pipeline) Analyze(ctx context.Context, img image.Image, notes string) (*Result, error) {
	return p.analyze(ctx, img, nil, notes)
}

func (p *Pipeline) analyze(ctx context.Context, img image.Image, data []byte, notes string) (*Result, error) {
	desc, err := feature.Extract(img)
	if err != nil {
		return nil, err
	}

	cand, trace := p.detect(ctx, data, desc)
	record := p.deps.Nutrition.Resolve(cand.Label)
	recipes := p.deps.Recipes.Generate(record.Category, notes)

	return &Result{
		Recommendation: types.Recommendation{
			Label:      cand.Label,
			Confidence: cand.Confidence,
			Source:     cand.Source.String(),
			Nutrition:  record,
			Recipes:    recipes,
		},
		Candidate:  cand,
		Descriptor: desc,
		Trace:      trace,
	}, nil
}

// detect walks the state machine and returns the winning candidate.
// Selection is deterministic: the max-confidence candidate collected so
// far wins as soon as it clears the active state's threshold, and the
// Fallback state ends the walk unconditionally.
func (p *Pipeline) detect(ctx context.Context, data []byte, desc feature.Descriptor) (types.DetectionCandidate, []Step) {
	t := p.deps.Thresholds
	trace := make([]Step, 0, 4)
	var collected []types.DetectionCandidate

	// TryRemote.
	switch {
	case p.deps.Classifier == nil || !p.deps.Classifier.Enabled():
		trace = append(trace, Step{StateTryRemote, "skipped: not configured"})
	case len(data) == 0:
		trace = append(trace, Step{StateTryRemote, "skipped: no encoded image"})
	default:
		cand, err := p.deps.Classifier.Classify(ctx, data)
		switch {
		case err != nil:
			fmt.Fprintf(p.deps.Warnings, "remote classifier pruned: %v\n", err)
			trace = append(trace, Step{StateTryRemote, fmt.Sprintf("failed: %v", err)})
		case cand.Confidence >= t.High:
			trace = append(trace, Step{StateTryRemote, "accepted " + cand.Label})
			return cand, trace
		default:
			collected = append(collected, cand)
			trace = append(trace, Step{StateTryRemote, "retained " + cand.Label})
		}
	}

	// TryLocalMatch.
	if best, ok := p.deps.Matcher.Best(desc); ok {
		collected = append(collected, types.DetectionCandidate{
			Label:      best.Pattern.Name,
			Confidence: best.Confidence,
			Source:     types.SourceLocalMatch,
		})
		if top := maxCandidate(collected); top.Confidence >= t.Medium {
			trace = append(trace, Step{StateTryLocalMatch, "accepted " + top.Label})
			return top, trace
		}
		trace = append(trace, Step{StateTryLocalMatch, "retained " + best.Pattern.Name})
	} else {
		fmt.Fprintln(p.deps.Warnings, "pattern database is empty, local match pruned")
		trace = append(trace, Step{StateTryLocalMatch, "skipped: empty pattern database"})
	}

	// TryColorHeuristic. Always yields a candidate.
	collected = append(collected, heuristicCandidate(desc))
	if top := maxCandidate(collected); top.Confidence >= t.Floor {
		trace = append(trace, Step{StateTryColorHeuristic, "accepted " + top.Label})
		return top, trace
	}
	trace = append(trace, Step{StateTryColorHeuristic, "below floor"})

	// Fallback. The termination guarantee: no failure path.
	cand := types.DetectionCandidate{
		Label:      "mixed plate",
		Confidence: t.Floor,
		Source:     types.SourceFallback,
	}
	trace = append(trace, Step{StateFallback, "accepted " + cand.Label})
	return cand, trace
}

// Confidence assigned to color-heuristic candidates: heuristicMatched for
// a dominant band with a table entry, heuristicMixed otherwise.
const (
	heuristicMatched = 0.65
	heuristicMixed   = 0.62
)

// heuristicLabels maps a dominant color band to a generic dish label.
var heuristicLabels = map[feature.ColorBand]string{
	feature.BandGreen:  "vegetable dish",
	feature.BandBrown:  "meat dish",
	feature.BandBeige:  "meat dish",
	feature.BandWhite:  "rice dish",
	feature.BandGray:   "rice dish",
	feature.BandRed:    "tomato-based dish",
	feature.BandPink:   "tomato-based dish",
	feature.BandYellow: "grain dish",
	feature.BandOrange: "grain dish",
}

func heuristicCandidate(desc feature.Descriptor) types.DetectionCandidate {
	if label, ok := heuristicLabels[desc.DominantBand()]; ok {
		return types.DetectionCandidate{
			Label:      label,
			Confidence: heuristicMatched,
			Source:     types.SourceColorHeuristic,
		}
	}
	return types.DetectionCandidate{
		Label:      "mixed plate",
		Confidence: heuristicMixed,
		Source:     types.SourceColorHeuristic,
	}
}

// maxCandidate picks the highest-confidence candidate; earlier entries
// win ties so the strategy order stays authoritative.
func maxCandidate(candidates []types.DetectionCandidate) types.DetectionCandidate {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Confidence > best.Confidence {
			best = c
		}
	}
	return best
}

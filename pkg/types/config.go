package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "nutriguide/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RemoteClassifierConfig holds settings for the remote classifier stage.
// An empty Endpoint disables the stage; the pipeline then starts at the
// local matcher.
type RemoteClassifierConfig struct {
	HTTPConfig `yaml:",inline"`

	// Endpoint is the classifier inference URL. Empty means not configured.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// APIKey is an optional bearer token for the classifier service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts after the first call
	// (default 2).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// TotalBudget caps the wall-clock time of one classification call,
	// retries and backoff included (default 3s).
	TotalBudget time.Duration `json:"total_budget" yaml:"total_budget"`
}

// Thresholds holds the confidence-band cutoffs driving fallback decisions.
// The values are empirically tuned constants carried over from calibration
// runs, not derived quantities.
type Thresholds struct {
	// High accepts a remote candidate outright (default 0.80).
	High float64 `json:"high" yaml:"high"`

	// Medium is the minimum for a local-match candidate (default 0.65).
	Medium float64 `json:"medium" yaml:"medium"`

	// Floor is the confidence assigned to the terminal fallback
	// (default 0.60).
	Floor float64 `json:"floor" yaml:"floor"`
}

// PipelineConfig groups all stage configurations for the analysis pipeline.
type PipelineConfig struct {
	Remote     RemoteClassifierConfig `json:"remote" yaml:"remote"`
	Thresholds Thresholds             `json:"thresholds" yaml:"thresholds"`

	// PatternFile optionally overrides the builtin pattern database.
	PatternFile string `json:"pattern_file,omitempty" yaml:"pattern_file,omitempty"`

	// RecipeFile optionally overrides the builtin recipe templates.
	RecipeFile string `json:"recipe_file,omitempty" yaml:"recipe_file,omitempty"`

	// NutritionDB is the path of the canonical nutrition SQLite database.
	NutritionDB string `json:"nutrition_db,omitempty" yaml:"nutrition_db,omitempty"`
}

// DefaultThresholds returns the calibrated confidence bands.
func DefaultThresholds() Thresholds {
	return Thresholds{High: 0.80, Medium: 0.65, Floor: 0.60}
}

// DefaultPipelineConfig returns a PipelineConfig with calibrated defaults
// and the remote classifier disabled.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Remote: RemoteClassifierConfig{
			HTTPConfig:  HTTPConfig{Timeout: 10 * time.Second, UserAgent: "nutriguide/0.1"},
			MaxRetries:  2,
			TotalBudget: 3 * time.Second,
		},
		Thresholds: DefaultThresholds(),
	}
}

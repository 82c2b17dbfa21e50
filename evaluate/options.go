package evaluate

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// DefaultWorkers is the worker-pool size used when none is configured.
const DefaultWorkers = 8

// Occurrence-metric thresholds computed by every evaluation, matching the
// MIREX procedure.
var occurrenceThresholds = [2]float64{0.75, 0.5}

// Options configures an Evaluator.
type Options struct {
	// Workers is the size of the worker pool used for one Evaluate call.
	Workers int `env:"MOTIV_EVAL_WORKERS"`
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{Workers: DefaultWorkers}
}

// OptionsFromEnv returns the defaults overridden by MOTIV_EVAL_* environment
// variables.
func OptionsFromEnv(ctx context.Context) (Options, error) {
	opts := DefaultOptions()
	if err := envconfig.Process(ctx, &opts); err != nil {
		return Options{}, fmt.Errorf("evaluate: reading environment: %w", err)
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}

	return opts, nil
}

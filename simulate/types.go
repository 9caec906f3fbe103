package simulate

import (
	"errors"
	"math/rand"

	"github.com/wcwatson/iceberg/cuthbert"
)

// Sentinel errors returned by plan validation and the canned studies.
var (
	// ErrBadPlan - a sampling plan resolves to a negative sample count
	// or to a sample size below one.
	ErrBadPlan = errors.New("simulate: invalid sampling plan")

	// ErrPopulationTooSmall - the population cannot cover the largest
	// sample without replacement.
	ErrPopulationTooSmall = errors.New("simulate: population smaller than largest sample")

	// ErrTooFewSamples - a study needs at least two samples to say
	// anything about overlap.
	ErrTooFewSamples = errors.New("simulate: study needs at least two samples")
)

// Plan describes how many samples to draw and how large each one is.
// Build one with Uniform or Explicit; the zero value is an empty plan.
type Plan struct {
	uniform bool
	count   int
	size    int
	sizes   []int
}

// Uniform plans count samples of identical size.
func Uniform(count, size int) Plan {
	return Plan{uniform: true, count: count, size: size}
}

// Explicit plans one sample per listed size, in order.
func Explicit(sizes ...int) Plan {
	out := make([]int, len(sizes))
	copy(out, sizes)
	return Plan{sizes: out}
}

// Sizes resolves the plan into its canonical size sequence.
// The returned slice is a fresh copy on every call.
func (p Plan) Sizes() []int {
	if p.uniform {
		if p.count < 0 {
			return nil
		}
		out := make([]int, p.count)
		for i := range out {
			out[i] = p.size
		}
		return out
	}
	out := make([]int, len(p.sizes))
	copy(out, p.sizes)
	return out
}

// validate rejects plans that cannot be drawn.
func (p Plan) validate() error {
	if p.uniform {
		if p.count < 0 || (p.count > 0 && p.size < 1) {
			return ErrBadPlan
		}
		return nil
	}
	for _, size := range p.sizes {
		if size < 1 {
			return ErrBadPlan
		}
	}
	return nil
}

// RandomOptions configures the Random study.
type RandomOptions struct {
	// Seed drives sampling when Rand is nil. Seed 0 selects a fixed
	// default stream.
	Seed int64

	// Rand, when non-nil, supplies the sampling stream directly and
	// Seed is ignored.
	Rand *rand.Rand

	// Cuthbert configures the capture-recapture estimator for the
	// drawn set. The zero value selects cuthbert.DefaultOptions().
	Cuthbert cuthbert.Options
}

// Report collects one study run.
//
// BBC failure is data-dependent (a draw may produce no singletons, or a
// spectrum whose correction diverges), so it is reported in-band via
// BBCErr rather than aborting the study.
type Report struct {
	// Observed is the number of distinct entities across all samples.
	Observed int

	// BBC is the Bayesian Bias Correction estimate; valid only when
	// BBCErr is nil.
	BBC int

	// BBCErr carries bbc.ErrNoSingletons or bbc.ErrNoConvergence when
	// the drawn set defeats that estimator.
	BBCErr error

	// Cuthbert is the capture-recapture result for the same set.
	Cuthbert cuthbert.Result
}

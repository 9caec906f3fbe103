package cuthbert

import "github.com/wcwatson/iceberg/core"

// Estimate — full Cuthbert estimation pipeline.
//
// Description:
//
//	Profiles the sample set, bisects the deficit error function for the
//	uncorrected population estimate (see Uncorrected), then runs
//	bootstrap cross-validation for the corrected series when
//	opts.Trials > 0 (see CrossValidate).
//
// Estimation itself never fails: floor and ceiling saturation return the
// boundary value. Errors signal invalid configuration or impossible
// sample shapes, detected before any computation. An empty set is valid
// and yields Result{Uncorrected: 0} with all-zero trials.
//
// Errors: the sentinels of types.go, as surfaced by Uncorrected and
// CrossValidate.
//
// Complexity: O(S·log(observed/MinSurvival)) for the search plus
// O(Trials · total incidences) for the bootstrap stage.
func Estimate[E comparable](set core.SampleSet[E], opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	observed := len(set.Entities())
	uncorrected, err := Uncorrected(observed, set.Sizes(), opts.MinSurvival)
	if err != nil {
		return Result{}, err
	}

	res := Result{Uncorrected: uncorrected}
	if opts.Trials == 0 {
		return res, nil
	}

	res.Corrected, err = CrossValidate(set, uncorrected, opts)
	if err != nil {
		return Result{}, err
	}

	return res, nil
}

// Public domain.

// Package validate checks scalar predictions against the reference dataset
// of published measurements and their stated uncertainties.
//
// The acceptance policy is fixed: a prediction passes a record when it lies
// within 3 sigma of the measured value.  A numerical-tolerance violation is
// reported as a failed comparison in the run output, never as an error;
// errors are reserved for malformed inputs such as a zero uncertainty.
package validate

import (
	"errors"
	"fmt"
	"math"

	"github.com/sszlab/freqloop/refdata"
)

// SigmaThreshold is the fixed acceptance bound.
const SigmaThreshold = 3.0

// ErrDegenerateUncertainty indicates a record whose stated uncertainty is
// zero; no sigma agreement can be formed against it.
var ErrDegenerateUncertainty = errors.New("validate: reference uncertainty is zero")

// Comparison is the outcome of checking one prediction against one record.
type Comparison struct {
	Record    refdata.Record
	Predicted float64
	Sigma     float64 // |measured - predicted| / uncertainty
	Passed    bool    // Sigma < SigmaThreshold
}

// Compare forms the sigma agreement between a predicted value and a record.
func Compare(predicted float64, rec refdata.Record) (Comparison, error) {
	if rec.Uncertainty == 0 {
		return Comparison{}, fmt.Errorf("%w: %s", ErrDegenerateUncertainty, rec.Name)
	}
	s := math.Abs(rec.Measured-predicted) / rec.Uncertainty
	return Comparison{
		Record:    rec,
		Predicted: predicted,
		Sigma:     s,
		Passed:    s < SigmaThreshold,
	}, nil
}

// RelativeDeviation returns |measured - predicted| / |measured|, the
// acceptance form used where a coarse single-point prediction is held
// against a value quoted to far finer precision than the prediction's own
// modeling error.
func RelativeDeviation(predicted float64, rec refdata.Record) float64 {
	return math.Abs(rec.Measured-predicted) / math.Abs(rec.Measured)
}

// Predictor produces the model prediction for one record.
type Predictor func(rec refdata.Record) (float64, error)

// Report aggregates one validation run over a catalog.
type Report struct {
	Comparisons []Comparison
	Passed      int
	Failed      int
}

// Suite evaluates the predictor against every record and aggregates the
// pass/fail counts.  The catalog is never mutated.
func Suite(records []refdata.Record, predict Predictor) (Report, error) {
	var rep Report
	rep.Comparisons = make([]Comparison, 0, len(records))
	for _, rec := range records {
		p, err := predict(rec)
		if err != nil {
			return Report{}, fmt.Errorf("validate: %s: %w", rec.Name, err)
		}
		c, err := Compare(p, rec)
		if err != nil {
			return Report{}, err
		}
		rep.Comparisons = append(rep.Comparisons, c)
		if c.Passed {
			rep.Passed++
		} else {
			rep.Failed++
		}
	}
	return rep, nil
}

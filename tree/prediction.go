package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/feature"
)

/*
Prediction represents the distribution of the outcome among the training
records that reached a point of the tree
*/
type Prediction struct {
	probabilities map[string]float64
	classes       []string
	weight        int
}

// PredictionError represents an error related with predictions
type PredictionError string

/*
ErrCannotPredictFromSample is the error returned by the Predict and Classify
methods of a tree when the sample takes a value the tree has no branch for.
*/
const ErrCannotPredictFromSample = PredictionError("no prediction available for this kind of sample")

/*
ErrCannotPredictFromEmptySet is the error returned when trying to build a prediction
based on an empty dataset.
*/
const ErrCannotPredictFromEmptySet = PredictionError("cannot make prediction for empty dataset")

func (pe PredictionError) Error() string {
	return string(pe)
}

/*
ProbabilityOf takes a string value and returns the float64 probability of that
value according to the prediction.
*/
func (p *Prediction) ProbabilityOf(value string) float64 {
	return p.probabilities[value]
}

func (p *Prediction) String() string {
	return strings.Replace(fmt.Sprintf("%v", p.probabilities), "map", "", 1)
}

/*
Probabilities returns a map of string to float64 containing
the probabilities of each available value
*/
func (p *Prediction) Probabilities() map[string]float64 {
	return p.probabilities
}

/*
Weight returns the weight of the prediction: an
int equal to the number of samples in the dataset from which
the prediction was made
*/
func (p *Prediction) Weight() int {
	return p.weight
}

/*
PredictedValue returns a string with the most probable value and a float64 with
its prevalence. Ties go to the value that comes first among the outcome's
available values, that is, the positive class.
*/
func (p *Prediction) PredictedValue() (value string, prob float64) {
	prob = -1.0
	for _, k := range p.classes {
		if v := p.probabilities[k]; v > prob {
			value = k
			prob = v
		}
	}
	return
}

/*
IsPure returns whether all the records behind the prediction share the same
outcome.
*/
func (p *Prediction) IsPure() bool {
	_, prob := p.PredictedValue()
	return prob == 1.0
}

// NewPredictionFromSet takes a context, a dataset and a binary outcome feature
// and returns a prediction for the feature based on the (training) data in the
// dataset or an error if there are no samples in the dataset, or the dataset
// cannot be queried
func NewPredictionFromSet(ctx context.Context, s *dataset.Dataset, outcome *feature.DiscreteFeature) (*Prediction, error) {
	pos, neg, err := s.ClassCounts(ctx, outcome)
	if err != nil {
		return nil, err
	}
	weight := pos + neg
	if weight == 0 {
		return nil, ErrCannotPredictFromEmptySet
	}
	probs := map[string]float64{
		outcome.Positive(): float64(pos) / float64(weight),
		outcome.Negative(): float64(neg) / float64(weight),
	}
	return &Prediction{probs, outcome.AvailableValues(), weight}, nil
}

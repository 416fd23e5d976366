package dataset

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/pbanos/acorn/feature"
	"gonum.org/v1/gonum/floats"
)

// DefaultBins is the number of ranges a Discretizer splits a column into by default
const DefaultBins = 5

// range edges beyond this cannot be held exactly by a float64
const maxEdge = 1 << 53

/*
Discretizer turns continuous features into discrete ones by splitting the
range of values they take into equal-width ranges.
*/
type Discretizer struct {
	Bins int
}

/*
NewDiscretizer takes a number of bins and returns a Discretizer that splits
columns into that many equal-width ranges.
*/
func NewDiscretizer(bins int) *Discretizer {
	return &Discretizer{Bins: bins}
}

/*
Discretize takes a dataset and a continuous feature and rewrites, on every
record of the dataset, the numeric value of the feature with the label of the
range that contains it. It returns the discrete feature that replaces the
continuous one, with every range label as available values.

The ranges span from the floor of the minimum value to the ceiling of the
maximum, with a width of (ceil(max) - floor(min)) / Bins rounded down. A range
contains its lower edge but not its upper edge, except for the last one which
also takes any value at or above its lower edge. Labels have the form
"<lower>-<upper>".

Discretize must be called on the full dataset before any entropy is computed
for the feature. It fails without rewriting anything if a record holds
something other than a float64 for the feature (for instance, because it was
already discretized) or a value that is not finite, if the range is too
narrow for the number of bins or if it exceeds ±2^53.
*/
func (d *Discretizer) Discretize(ctx context.Context, s *Dataset, f *feature.ContinuousFeature) (*feature.DiscreteFeature, error) {
	b, err := d.Binning(ctx, s, f)
	if err != nil {
		return nil, err
	}
	err = b.Apply(ctx, s)
	if err != nil {
		return nil, err
	}
	return b.Feature, nil
}

/*
Binning takes a dataset and a continuous feature and returns the ranges
Discretize would split the feature into, without rewriting any record.
*/
func (d *Discretizer) Binning(ctx context.Context, s *Dataset, f *feature.ContinuousFeature) (*Binning, error) {
	if d.Bins < 1 {
		return nil, ErrInvalidBins
	}
	values, err := numericValues(ctx, s, f.Name())
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("discretizing %s: %w", f.Name(), ErrEmptyColumn)
	}
	minimum := math.Floor(floats.Min(values))
	maximum := math.Ceil(floats.Max(values))
	if minimum < -maxEdge || maximum > maxEdge {
		return nil, &ColumnRangeError{Feature: f.Name(), Min: minimum, Max: maximum}
	}
	edges, err := d.edges(f.Name(), int64(minimum), int64(maximum))
	if err != nil {
		return nil, err
	}
	labels := make([]string, len(edges)-1)
	for i := range labels {
		labels[i] = fmt.Sprintf("%d-%d", edges[i], edges[i+1])
	}
	return &Binning{Feature: feature.NewDiscreteFeature(f.Name(), labels), edges: edges}, nil
}

/*
Binning holds the ranges a continuous feature is split into. Its Feature is
the discrete feature that replaces the continuous one, with a label for each
range as available values.
*/
type Binning struct {
	Feature *feature.DiscreteFeature
	edges   []int64
}

/*
Label returns the label of the range containing the given value. Values below
the first range get the first label and values above the last range get the
last one.
*/
func (b *Binning) Label(v float64) string {
	return b.Feature.AvailableValues()[binFor(b.edges, v)]
}

/*
Apply takes a dataset and rewrites the numeric value of the binning's feature on
every record with the label of its range. It fails without rewriting anything
if a record holds something other than a float64 for the feature. Apply allows
discretizing a dataset, such as a testing one, with the ranges computed on
another.
*/
func (b *Binning) Apply(ctx context.Context, s *Dataset) error {
	name := b.Feature.Name()
	values, err := numericValues(ctx, s, name)
	if err != nil {
		return err
	}
	var i int
	return s.iterate(ctx, func(r *Record) (bool, error) {
		r.set(name, b.Label(values[i]))
		i++
		return true, nil
	})
}

func numericValues(ctx context.Context, s *Dataset, name string) ([]float64, error) {
	values := make([]float64, 0, s.Count())
	err := s.iterate(ctx, func(r *Record) (bool, error) {
		v := r.Value(name)
		fv, ok := v.(float64)
		if !ok || math.IsNaN(fv) || math.IsInf(fv, 0) {
			return false, &NotNumericError{Feature: name, Value: v}
		}
		values = append(values, fv)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

/*
DiscretizeAll takes a dataset and a slice of features and discretizes every
continuous feature in the slice. It returns a slice with the same features in
the same order, with the continuous ones replaced by their discretized
counterparts.
*/
func (d *Discretizer) DiscretizeAll(ctx context.Context, s *Dataset, features []feature.Feature) ([]feature.Feature, error) {
	result := make([]feature.Feature, len(features))
	for i, f := range features {
		cf, ok := f.(*feature.ContinuousFeature)
		if !ok {
			result[i] = f
			continue
		}
		df, err := d.Discretize(ctx, s, cf)
		if err != nil {
			return nil, err
		}
		result[i] = df
	}
	return result, nil
}

// edges mirrors range(minimum, maximum+step, step)
func (d *Discretizer) edges(name string, minimum, maximum int64) ([]int64, error) {
	step := (maximum - minimum) / int64(d.Bins)
	if step <= 0 {
		return nil, &DegenerateColumnError{Feature: name, Min: float64(minimum), Max: float64(maximum), Bins: d.Bins}
	}
	var edges []int64
	for e := minimum; e < maximum+step; e += step {
		edges = append(edges, e)
	}
	if len(edges) < 2 {
		return nil, &DegenerateColumnError{Feature: name, Min: float64(minimum), Max: float64(maximum), Bins: d.Bins}
	}
	return edges, nil
}

func binFor(edges []int64, v float64) int {
	i := sort.Search(len(edges), func(k int) bool {
		return float64(edges[k]) > v
	})
	bin := i - 1
	if bin < 0 {
		bin = 0
	}
	if bin > len(edges)-2 {
		bin = len(edges) - 2
	}
	return bin
}

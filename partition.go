package acorn

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/feature"
)

/*
Partition represents a partition of a dataset according to a feature
into subsets, one for each value of the feature, with the information gain
it achieves to predict the outcome
*/
type Partition struct {
	Feature         *feature.DiscreteFeature
	Values          []string
	Subsets         []*dataset.Dataset
	InformationGain float64
}

/*
SelectFeature takes a context.Context, a dataset, a slice of candidate features,
the names of excluded features and a binary outcome feature, and returns the
candidate that achieves the highest information gain on the dataset together
with that gain.

Candidates are considered in the order of the slice, skipping excluded ones and
the outcome itself. On equal gains, the first candidate wins. An
ErrEmptyCandidateSet error is returned if no candidate is left to consider.
*/
func SelectFeature(ctx context.Context, s *dataset.Dataset, candidates []feature.Feature, excluded []string, outcome *feature.DiscreteFeature) (*feature.DiscreteFeature, float64, error) {
	skip := hashset.New()
	for _, name := range excluded {
		skip.Add(name)
	}
	skip.Add(outcome.Name())
	entropy, err := s.Entropy(ctx, outcome)
	if err != nil {
		return nil, 0.0, err
	}
	var selected *feature.DiscreteFeature
	var selectedGain float64
	for _, f := range candidates {
		if skip.Contains(f.Name()) {
			continue
		}
		df, ok := f.(*feature.DiscreteFeature)
		if !ok {
			return nil, 0.0, fmt.Errorf("feature %s: %w", f.Name(), ErrContinuousFeature)
		}
		gain, err := s.InformationGain(ctx, df, outcome, entropy)
		if err != nil {
			return nil, 0.0, err
		}
		if selected == nil || gain > selectedGain {
			selected = df
			selectedGain = gain
		}
	}
	if selected == nil {
		return nil, 0.0, ErrEmptyCandidateSet
	}
	return selected, selectedGain, nil
}

/*
NewPartition takes a context.Context, a dataset, a discrete feature and the
values of the feature to split on, and returns the partition of the dataset
with a subset for each value, in the given order. Values taken by records of
the dataset that are missing from the given ones are appended, so that the
subsets always cover the whole dataset.
*/
func NewPartition(ctx context.Context, s *dataset.Dataset, f *feature.DiscreteFeature, values []string) (*Partition, error) {
	present, err := s.FeatureValues(ctx, f)
	if err != nil {
		return nil, err
	}
	known := hashset.New()
	for _, v := range values {
		known.Add(v)
	}
	all := append([]string{}, values...)
	for _, v := range present {
		if !known.Contains(v) {
			known.Add(v)
			all = append(all, v)
		}
	}
	p := &Partition{Feature: f, Values: all, Subsets: make([]*dataset.Dataset, 0, len(all))}
	for _, v := range all {
		ss, err := s.SubsetWith(ctx, feature.NewDiscreteCriterion(f, v))
		if err != nil {
			return nil, err
		}
		p.Subsets = append(p.Subsets, ss)
	}
	return p, nil
}

func candidatesLeft(candidates []feature.Feature, excluded []string, outcome feature.Feature) bool {
	skip := hashset.New()
	for _, name := range excluded {
		skip.Add(name)
	}
	skip.Add(outcome.Name())
	for _, f := range candidates {
		if !skip.Contains(f.Name()) {
			return true
		}
	}
	return false
}

package dataset

import (
	"context"
	"math"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pbanos/acorn/feature"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// gains closer to zero than this are rounding noise
const gainTolerance = 1e-12

/*
Entropy takes the number of positive and negative records of a set and
returns the binary entropy of the set in bits: 0 for a pure (or empty) set,
1 for an evenly split one. Absent classes contribute nothing to the sum.
*/
func Entropy(pos, neg int) float64 {
	total := float64(pos + neg)
	if total == 0 {
		return 0.0
	}
	return entropyTerm(float64(pos)/total) + entropyTerm(float64(neg)/total)
}

func entropyTerm(p float64) float64 {
	if p == 0 {
		return 0.0
	}
	return -p * math.Log2(p)
}

/*
ClassCounts takes a binary outcome feature and returns the number of records
in the dataset with its positive value and with its negative value. An error
is returned if the outcome is not binary or a record holds another value for
it.
*/
func (s *Dataset) ClassCounts(ctx context.Context, outcome *feature.DiscreteFeature) (pos int, neg int, err error) {
	if !outcome.IsBinary() {
		return 0, 0, ErrOutcomeNotBinary
	}
	err = s.iterate(ctx, func(r *Record) (bool, error) {
		p, err := isPositive(ctx, r, outcome)
		if err != nil {
			return false, err
		}
		if p {
			pos++
		} else {
			neg++
		}
		return true, nil
	})
	if err != nil {
		return 0, 0, err
	}
	return pos, neg, nil
}

/*
Entropy takes a binary outcome feature and returns the entropy of the dataset
for it: a measure of the disinformation we have on the outcome of records that
belong to it.

When all records share the same outcome the set may be a leaf. This is not an
error: it is logged at debug level on the dataset's logger and 0 is returned.
*/
func (s *Dataset) Entropy(ctx context.Context, outcome *feature.DiscreteFeature) (float64, error) {
	pos, neg, err := s.ClassCounts(ctx, outcome)
	if err != nil {
		return 0.0, err
	}
	if pos+neg > 0 && (pos == 0 || neg == 0) {
		s.logger.WithFields(log.Fields{
			"subset":   feature.Path(s.criteria),
			"positive": pos,
			"negative": neg,
		}).Debug("May have encountered a leaf, one of the outcome classes is absent")
	}
	return Entropy(pos, neg), nil
}

/*
InformationGain takes a feature, a binary outcome feature and the entropy of
the dataset for that outcome, and returns the reduction of entropy achieved by
partitioning the dataset on the values of the feature: the given entropy
minus the entropy of each partition weighted by its share of the records.
*/
func (s *Dataset) InformationGain(ctx context.Context, f feature.Feature, outcome *feature.DiscreteFeature, entropy float64) (float64, error) {
	if !outcome.IsBinary() {
		return 0.0, ErrOutcomeNotBinary
	}
	order := linkedhashset.New()
	counts := make(map[string]*[2]int)
	err := s.iterate(ctx, func(r *Record) (bool, error) {
		v, err := r.ValueFor(ctx, f)
		if err != nil {
			return false, err
		}
		p, err := isPositive(ctx, r, outcome)
		if err != nil {
			return false, err
		}
		key := valueString(v)
		c, ok := counts[key]
		if !ok {
			c = &[2]int{}
			counts[key] = c
			order.Add(key)
		}
		if p {
			c[0]++
		} else {
			c[1]++
		}
		return true, nil
	})
	if err != nil {
		return 0.0, err
	}
	total := float64(s.Count())
	if total == 0 {
		return 0.0, nil
	}
	weighted := make([]float64, 0, order.Size())
	for _, key := range order.Values() {
		c := counts[key.(string)]
		weighted = append(weighted, float64(c[0]+c[1])/total*Entropy(c[0], c[1]))
	}
	gain := entropy - floats.Sum(weighted)
	if math.Abs(gain) < gainTolerance {
		gain = 0.0
	}
	return gain, nil
}

func isPositive(ctx context.Context, r *Record, outcome *feature.DiscreteFeature) (bool, error) {
	v, err := r.ValueFor(ctx, outcome)
	if err != nil {
		return false, err
	}
	vs, _ := v.(string)
	switch {
	case v == nil:
	case vs == outcome.Positive():
		return true, nil
	case vs == outcome.Negative():
		return false, nil
	}
	return false, &UnknownOutcomeError{Feature: outcome.Name(), Value: v}
}

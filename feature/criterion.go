package feature

import (
	"context"
	"fmt"
	"strings"
)

/*
Criterion represents a constraint on a feature

Its SatisfiedBy method takes a sample and returns a boolean indicating if
the given value satisfies the feature criterion.

Its Feature method returns the feature on which the criterion is applied.
*/
type Criterion interface {
	Feature() Feature
	SatisfiedBy(ctx context.Context, sample Sample) (bool, error)
}

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the value corresponding to the feature
passed as parameter.
*/
type Sample interface {
	ValueFor(context.Context, Feature) (interface{}, error)
}

/*
DiscreteCriterion represents a constraint on a discrete feature, a
value it may take.

Its Value method returns the value to which the feature is constrained as
a string.
*/
type DiscreteCriterion interface {
	Criterion
	Value() string
}

type discreteCriterion struct {
	feature *DiscreteFeature
	value   string
}

/*
NewDiscreteCriterion takes a DiscreteFeature feature and a value and returns
a DiscreteCriterion satisfied by samples whose value for the feature is the
given one.
*/
func NewDiscreteCriterion(feature *DiscreteFeature, value string) DiscreteCriterion {
	return &discreteCriterion{feature, value}
}

/*
Feature returns the feature to which the constraint applies.
*/
func (dfc *discreteCriterion) Feature() Feature {
	return dfc.feature
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean indicating if the
sample satisfies the criterion. Specifically, it returns false if the sample does
not define a value for the feature, true if the value, being a string, equals the
value on the criterion; and false otherwise.
*/
func (dfc *discreteCriterion) SatisfiedBy(ctx context.Context, sample Sample) (bool, error) {
	val, err := sample.ValueFor(ctx, dfc.feature)
	if err != nil {
		return false, err
	}
	if val == nil {
		return false, nil
	}
	stringVal, ok := val.(string)
	if !ok {
		return false, nil
	}
	return dfc.value == stringVal, nil
}

func (dfc *discreteCriterion) Value() string {
	return dfc.value
}

func (dfc *discreteCriterion) String() string {
	return fmt.Sprintf("%s is %s", dfc.feature.Name(), dfc.value)
}

/*
Path takes a slice of criteria, ordered from the root of a tree downwards, and
returns a human readable description of the path they define.
*/
func Path(criteria []Criterion) string {
	if len(criteria) == 0 {
		return "root"
	}
	parts := make([]string, len(criteria))
	for i, c := range criteria {
		parts[i] = fmt.Sprintf("%v", c)
	}
	return strings.Join(parts, " > ")
}

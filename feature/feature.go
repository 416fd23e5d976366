package feature

import "fmt"

/*
Feature represents a property that can be observed
*/
type Feature interface {
	Name() string
	Valid(interface{}) (bool, error)
}

/*
DiscreteFeature represents a property that can be observed and that can only
take a value among a finite set. Its available values are ordered: trees
grown on it create their branches in that order.
*/
type DiscreteFeature struct {
	name            string
	availableValues []string
}

/*
ContinuousFeature represents a property that can be observed and that can take
a numeric value. It must be discretized into a DiscreteFeature before a tree
can test it.
*/
type ContinuousFeature struct {
	name string
}

/*
NewDiscreteFeature takes a name string and a slice of available value strings
and returns a discrete feature with the given names and available values.
A nil or empty slice of values means the values are not known yet and will be
collected from the data (see WithAvailableValues).
*/
func NewDiscreteFeature(name string, availableValues []string) *DiscreteFeature {
	return &DiscreteFeature{name, availableValues}
}

/*
NewBinaryFeature takes a name and the positive and negative labels for a
binary outcome and returns a discrete feature with exactly those two values,
positive first.
*/
func NewBinaryFeature(name, positive, negative string) *DiscreteFeature {
	return &DiscreteFeature{name, []string{positive, negative}}
}

/*
NewContinuousFeature takes a name string and returns a continuous feature with
the given name.
*/
func NewContinuousFeature(name string) *ContinuousFeature {
	return &ContinuousFeature{name}
}

/*
Name returns a string with the name of the feature
*/
func (df *DiscreteFeature) Name() string {
	return df.name
}

/*
Valid receives an interface value and returns a boolean and an error. When the
value parameter is included in the available values fo the feature, the method
returns true and nil. Otherwise it returns false and an error describing the
reason. A feature with no available values accepts any string.
*/
func (df *DiscreteFeature) Valid(value interface{}) (bool, error) {
	vs, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("discrete feature %s expects string value, got %T value", df.Name(), value)
	}
	if len(df.availableValues) == 0 {
		return true, nil
	}
	for _, av := range df.availableValues {
		if av == vs {
			return true, nil
		}
	}
	return false, fmt.Errorf("discrete feature %s got unknown value %s", df.Name(), vs)
}

/*
AvailableValues returns a string slice with the values available for the feature
*/
func (df *DiscreteFeature) AvailableValues() []string {
	return df.availableValues
}

/*
WithAvailableValues returns a copy of the feature with the given available values.
*/
func (df *DiscreteFeature) WithAvailableValues(values []string) *DiscreteFeature {
	return &DiscreteFeature{df.name, values}
}

/*
IsBinary returns whether the feature has exactly two available values, the
requirement for a feature to be used as outcome.
*/
func (df *DiscreteFeature) IsBinary() bool {
	return len(df.availableValues) == 2 && df.availableValues[0] != df.availableValues[1]
}

/*
Positive returns the first available value, the positive class of a binary
feature.
*/
func (df *DiscreteFeature) Positive() string {
	if len(df.availableValues) == 0 {
		return ""
	}
	return df.availableValues[0]
}

/*
Negative returns the second available value, the negative class of a binary
feature.
*/
func (df *DiscreteFeature) Negative() string {
	if len(df.availableValues) < 2 {
		return ""
	}
	return df.availableValues[1]
}

func (df *DiscreteFeature) String() string {
	return df.name
}

/*
Name returns a string with the name of the feature
*/
func (cf *ContinuousFeature) Name() string {
	return cf.name
}

/*
Valid receives an interface value and returns a boolean and an error. When the
value parameter is a float64 it returns true and nil, otherwise it returns
false and an error describing the reason.
*/
func (cf *ContinuousFeature) Valid(value interface{}) (bool, error) {
	_, ok := value.(float64)
	if !ok {
		return false, fmt.Errorf("continuous feature %s expects float64 value, got %T value", cf.Name(), value)
	}
	return true, nil
}

func (cf *ContinuousFeature) String() string {
	return cf.name
}

/*
Names takes a slice of features and returns a slice with their names in the
same order.
*/
func Names(features []Feature) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name()
	}
	return names
}

/*
Find takes a slice of features and a name and returns the feature in the slice
with that name, or nil if there is none.
*/
func Find(features []Feature, name string) Feature {
	for _, f := range features {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

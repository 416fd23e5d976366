package dataset

import (
	"context"
	"fmt"

	"github.com/pbanos/acorn/feature"
)

/*
Record represents a labeled row of a table: a mapping from feature names to
values. Values for continuous features are float64 until the feature is
discretized; any other value is a string.
*/
type Record struct {
	featureValues map[string]interface{}
}

/*
NewRecord takes a map of feature string names to values and returns a record.
*/
func NewRecord(featureValues map[string]interface{}) *Record {
	return &Record{featureValues}
}

/*
ValueFor returns the value of the record for the given feature, nil if it has
none.
*/
func (r *Record) ValueFor(ctx context.Context, f feature.Feature) (interface{}, error) {
	return r.featureValues[f.Name()], nil
}

/*
Value returns the value of the record for the feature with the given name.
*/
func (r *Record) Value(name string) interface{} {
	return r.featureValues[name]
}

func (r *Record) set(name string, value interface{}) {
	r.featureValues[name] = value
}

func (r *Record) String() string {
	return fmt.Sprintf("[%v]", r.featureValues)
}

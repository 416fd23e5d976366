package dataset

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/pbanos/acorn/feature"
	log "github.com/sirupsen/logrus"
)

/*
Dataset represents an ordered collection of records.

A Dataset is a view on a table of records: subsetting it keeps the same
underlying table and only narrows the indexes of the records it contains, so
subsets are cheap and never alter the dataset they come from. The criteria
that produced a subset are kept to describe it, and so is the logger the
dataset reports its diagnostics to.
*/
type Dataset struct {
	records  []*Record
	indexes  []int
	criteria []feature.Criterion
	logger   log.FieldLogger
}

/*
New takes a slice of records and returns a dataset containing all of them.
*/
func New(records []*Record) *Dataset {
	indexes := make([]int, len(records))
	for i := range indexes {
		indexes[i] = i
	}
	return &Dataset{records: records, indexes: indexes, logger: log.StandardLogger()}
}

/*
WithLogger returns a view of the same records with the same criteria that
reports its diagnostics, and those of its subsets, to the given logger
instead of the logrus standard logger.
*/
func (s *Dataset) WithLogger(l log.FieldLogger) *Dataset {
	return &Dataset{records: s.records, indexes: s.indexes, criteria: s.criteria, logger: l}
}

/*
Count returns the number of records in the dataset
*/
func (s *Dataset) Count() int {
	return len(s.indexes)
}

/*
Records returns the records in the dataset in their original order
*/
func (s *Dataset) Records() []*Record {
	records := make([]*Record, len(s.indexes))
	for i, idx := range s.indexes {
		records[i] = s.records[idx]
	}
	return records
}

/*
Criteria returns the criteria applied to obtain this dataset from the
table it was created on, in the order they were applied.
*/
func (s *Dataset) Criteria() []feature.Criterion {
	return s.criteria
}

/*
SubsetWith takes a feature.Criterion and returns the subset of the dataset
with only the records that satisfy it.
*/
func (s *Dataset) SubsetWith(ctx context.Context, fc feature.Criterion) (*Dataset, error) {
	var indexes []int
	for _, idx := range s.indexes {
		ok, err := fc.SatisfiedBy(ctx, s.records[idx])
		if err != nil {
			return nil, err
		}
		if ok {
			indexes = append(indexes, idx)
		}
	}
	criteria := make([]feature.Criterion, len(s.criteria), len(s.criteria)+1)
	copy(criteria, s.criteria)
	criteria = append(criteria, fc)
	return &Dataset{records: s.records, indexes: indexes, criteria: criteria, logger: s.logger}, nil
}

/*
FeatureValues takes a feature and returns the distinct values the records of
the dataset take for it, as strings, in order of first appearance.
*/
func (s *Dataset) FeatureValues(ctx context.Context, f feature.Feature) ([]string, error) {
	encountered := linkedhashset.New()
	err := s.iterate(ctx, func(r *Record) (bool, error) {
		v, err := r.ValueFor(ctx, f)
		if err != nil {
			return false, err
		}
		encountered.Add(valueString(v))
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, encountered.Size())
	for _, v := range encountered.Values() {
		result = append(result, v.(string))
	}
	return result, nil
}

/*
CountFeatureValues takes a feature and returns a map with the number of
records in the dataset for each of the values they take for it.
*/
func (s *Dataset) CountFeatureValues(ctx context.Context, f feature.Feature) (map[string]int, error) {
	result := make(map[string]int)
	err := s.iterate(ctx, func(r *Record) (bool, error) {
		v, err := r.ValueFor(ctx, f)
		if err != nil {
			return false, err
		}
		result[valueString(v)]++
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Dataset) String() string {
	return fmt.Sprintf("{Dataset %s: %d records}", feature.Path(s.criteria), len(s.indexes))
}

func (s *Dataset) iterate(ctx context.Context, lambda func(*Record) (bool, error)) error {
	for _, idx := range s.indexes {
		ok, err := lambda(s.records[idx])
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

func valueString(v interface{}) string {
	vString, ok := v.(string)
	if !ok {
		vString = fmt.Sprintf("%v", v)
	}
	return vString
}

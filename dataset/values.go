package dataset

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pbanos/acorn/feature"
)

/*
ParseValue takes a feature and the raw string read for it from a source and
returns the value a record should hold for it: a float64 for continuous
features, the string itself for discrete ones. An error is returned if the
string is not a valid value for the feature.
*/
func ParseValue(f feature.Feature, raw string) (interface{}, error) {
	var value interface{} = raw
	if _, ok := f.(*feature.ContinuousFeature); ok {
		fv, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("converting %s to float64: %v", raw, err)
		}
		if math.IsNaN(fv) || math.IsInf(fv, 0) {
			return nil, fmt.Errorf("converting %s to float64: value is not finite", raw)
		}
		value = fv
	}
	if ok, err := f.Valid(value); !ok {
		return nil, fmt.Errorf("invalid value %v of type %T for feature %s: %v", value, value, f.Name(), err)
	}
	return value, nil
}

/*
CollectValues takes a dataset and a slice of features and returns a slice
with the same features where every discrete feature that was declared without
available values gets the values its records take, in order of first
appearance.
*/
func CollectValues(ctx context.Context, s *Dataset, features []feature.Feature) ([]feature.Feature, error) {
	result := make([]feature.Feature, len(features))
	for i, f := range features {
		df, ok := f.(*feature.DiscreteFeature)
		if !ok || len(df.AvailableValues()) > 0 {
			result[i] = f
			continue
		}
		values, err := s.FeatureValues(ctx, df)
		if err != nil {
			return nil, fmt.Errorf("collecting values for %s: %v", df.Name(), err)
		}
		result[i] = df.WithAvailableValues(values)
	}
	return result, nil
}

/*
ConvertValue takes a feature and a value read for it from a typed source, such
as a database column or document field, and returns the value a record should
hold for it as ParseValue does. Byte slices, strings, integers and floats are
accepted; nil is an error.
*/
func ConvertValue(f feature.Feature, v interface{}) (interface{}, error) {
	var raw string
	switch v := v.(type) {
	case nil:
		return nil, fmt.Errorf("missing value for feature %s", f.Name())
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case float64:
		raw = strconv.FormatFloat(v, 'g', -1, 64)
	case float32:
		raw = strconv.FormatFloat(float64(v), 'g', -1, 32)
	case int64:
		raw = strconv.FormatInt(v, 10)
	case int32:
		raw = strconv.FormatInt(int64(v), 10)
	case int:
		raw = strconv.Itoa(v)
	case bool:
		raw = strconv.FormatBool(v)
	default:
		return nil, fmt.Errorf("unsupported value %v of type %T for feature %s", v, v, f.Name())
	}
	return ParseValue(f, raw)
}

package dataset

import "fmt"

// Error is the type of the sentinel errors of the package
type Error string

const (
	// ErrEmptyColumn is returned when discretizing a feature on a dataset without records.
	ErrEmptyColumn = Error("cannot discretize a column without values")
	// ErrInvalidBins is returned by a discretizer configured with less than one bin.
	ErrInvalidBins = Error("number of bins must be at least 1")
	// ErrOutcomeNotBinary is returned when the outcome feature does not have exactly two values.
	ErrOutcomeNotBinary = Error("outcome feature must have exactly two different values")
)

func (e Error) Error() string {
	return string(e)
}

/*
DegenerateColumnError is returned when a continuous feature cannot be split
into equal-width ranges because its values span less than one unit per range.
*/
type DegenerateColumnError struct {
	Feature  string
	Min, Max float64
	Bins     int
}

func (e *DegenerateColumnError) Error() string {
	return fmt.Sprintf("degenerate column %s: range [%v, %v] cannot be split into %d bins", e.Feature, e.Min, e.Max, e.Bins)
}

/*
ColumnRangeError is returned when a continuous feature takes values too large
in magnitude to compute range edges for.
*/
type ColumnRangeError struct {
	Feature  string
	Min, Max float64
}

func (e *ColumnRangeError) Error() string {
	return fmt.Sprintf("column %s: range [%v, %v] is too wide to discretize", e.Feature, e.Min, e.Max)
}

/*
NotNumericError is returned when discretizing a feature for which a record
holds something other than a finite float64, like an already discretized
value or NaN.
*/
type NotNumericError struct {
	Feature string
	Value   interface{}
}

func (e *NotNumericError) Error() string {
	return fmt.Sprintf("column %s is not numeric: got %T value %v", e.Feature, e.Value, e.Value)
}

/*
UnknownOutcomeError is returned when a record holds a value for the outcome
feature that is neither of its two classes.
*/
type UnknownOutcomeError struct {
	Feature string
	Value   interface{}
}

func (e *UnknownOutcomeError) Error() string {
	return fmt.Sprintf("outcome %s got unknown value %v", e.Feature, e.Value)
}

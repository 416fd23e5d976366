package acorn

import (
	"errors"
	"fmt"

	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/feature"
)

// Error is the type of the sentinel errors of the package
type Error string

const (
	// ErrEmptyCandidateSet is returned when a feature must be selected but all
	// of them have already been used or excluded.
	ErrEmptyCandidateSet = Error("no candidate features left to select from")
	// ErrEmptyDataset is returned when growing a tree from a dataset without records.
	ErrEmptyDataset = Error("cannot grow a tree from an empty dataset")
	// ErrContinuousFeature is returned when a continuous feature reaches the
	// tree builder without having been discretized.
	ErrContinuousFeature = Error("continuous features must be discretized before growing a tree")
)

func (e Error) Error() string {
	return string(e)
}

/*
BuildError is returned when growing a tree fails. It holds the path of
branch criteria from the root of the tree to the node being developed
when the error happened.
*/
type BuildError struct {
	Path []feature.Criterion
	Err  error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("growing tree at %s: %v", feature.Path(e.Path), e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

func buildError(s *dataset.Dataset, err error) error {
	var be *BuildError
	if errors.As(err, &be) {
		return err
	}
	return &BuildError{Path: s.Criteria(), Err: err}
}

package queue

import (
	"fmt"

	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/feature"
	"github.com/pbanos/acorn/tree"
)

// Task represents a branch of a tree.Node whose
// outcome is still to be decided.
type Task struct {
	// The node the branch belongs to
	Parent *tree.Node
	// The branch to be developed
	Branch *tree.Branch
	// The dataset of training data with records
	// satisfying the criteria on the branch
	// and its ancestors.
	Dataset *dataset.Dataset
	// The names of the features that cannot be used
	// to split the branch any further: the ones
	// tested by the node and its ancestors.
	Excluded []string
}

// Criteria returns the criteria that lead from the
// root of the tree to the task's branch.
func (t *Task) Criteria() []feature.Criterion {
	return t.Dataset.Criteria()
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task %s}", feature.Path(t.Criteria()))
}

/*
Package acorn grows ID3 decision trees that predict a binary outcome from
the categorical features of a dataset.
*/
package acorn

import (
	"context"

	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/feature"
	"github.com/pbanos/acorn/queue"
	"github.com/pbanos/acorn/tree"
	log "github.com/sirupsen/logrus"
)

// BranchDomain determines which values of a feature get a branch
// when a node is created to test it.
type BranchDomain int

const (
	// DatasetDomain creates a branch for every available value of the
	// feature, even if no record of the node takes it. Such branches
	// end in a tree.DefaultLeaf.
	DatasetDomain BranchDomain = iota
	// SubsetDomain creates a branch only for the values taken by the
	// records of the node.
	SubsetDomain
)

func (bd BranchDomain) String() string {
	if bd == SubsetDomain {
		return "subset"
	}
	return "dataset"
}

/*
Builder grows decision trees to predict a binary outcome feature
from a list of candidate features.
*/
type Builder struct {
	features []feature.Feature
	outcome  *feature.DiscreteFeature
	domain   BranchDomain
	logger   log.FieldLogger
}

// Option configures a Builder
type Option func(*Builder)

// WithBranchDomain sets the BranchDomain of the builder.
// The default is DatasetDomain.
func WithBranchDomain(bd BranchDomain) Option {
	return func(b *Builder) {
		b.domain = bd
	}
}

// WithLogger sets the logger the builder reports its progress
// to. The default is the logrus standard logger.
func WithLogger(l log.FieldLogger) Option {
	return func(b *Builder) {
		b.logger = l
	}
}

/*
NewBuilder takes a slice of candidate features, a binary outcome feature
and options, and returns a Builder. Candidates are considered in the order
of the slice, which determines which one wins when several achieve the same
information gain. The outcome is never considered a candidate, even if
present in the slice.
*/
func NewBuilder(features []feature.Feature, outcome *feature.DiscreteFeature, opts ...Option) *Builder {
	b := &Builder{
		features: features,
		outcome:  outcome,
		domain:   DatasetDomain,
		logger:   log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

/*
Build takes a context.Context and a dataset and grows a tree
that predicts the builder's outcome according to the records in the
dataset. Continuous candidates must have been discretized before.

Build fails with ErrEmptyDataset when the dataset has no records and with
a *BuildError holding the path to the node being developed for any failure
during growth, including the cancellation of the context.
*/
func (b *Builder) Build(ctx context.Context, s *dataset.Dataset) (*tree.Tree, error) {
	if !b.outcome.IsBinary() {
		return nil, dataset.ErrOutcomeNotBinary
	}
	if s.Count() == 0 {
		return nil, ErrEmptyDataset
	}
	s = s.WithLogger(b.logger)
	features, err := dataset.CollectValues(ctx, s, b.features)
	if err != nil {
		return nil, buildError(s, err)
	}
	q := queue.New()
	root, err := b.seed(ctx, s, features, q)
	if err != nil {
		return nil, err
	}
	err = b.work(ctx, features, q)
	if err != nil {
		return nil, err
	}
	t := tree.New(root, b.outcome)
	st := t.Stats()
	b.logger.WithFields(log.Fields{
		"nodes":         st.Nodes,
		"leaves":        st.Leaves,
		"defaultLeaves": st.DefaultLeaves,
		"depth":         st.Depth,
	}).Info("Tree grown")
	return t, nil
}

// seed creates the root node of the tree for the whole dataset
// and pushes the tasks to develop its branches.
func (b *Builder) seed(ctx context.Context, s *dataset.Dataset, features []feature.Feature, q *queue.Queue) (*tree.Node, error) {
	return b.newNode(ctx, s, nil, features, q)
}

// work pulls tasks from the queue and branches them out
// until there are none left.
func (b *Builder) work(ctx context.Context, features []feature.Feature, q *queue.Queue) error {
	for {
		task, err := q.Pull(ctx)
		if err != nil {
			return err
		}
		if task == nil {
			return nil
		}
		err = b.branchOut(ctx, task, features, q)
		if err != nil {
			return buildError(task.Dataset, err)
		}
	}
}

// branchOut decides the outcome of the task's branch: a default leaf if
// no record reaches it, a leaf if its records are pure or there are no
// features left to split them, and a new node otherwise.
func (b *Builder) branchOut(ctx context.Context, task *queue.Task, features []feature.Feature, q *queue.Queue) error {
	s := task.Dataset
	if s.Count() == 0 {
		label, _ := task.Parent.Prediction.PredictedValue()
		task.Branch.Outcome = &tree.DefaultLeaf{Label: label, Prediction: task.Parent.Prediction}
		b.logger.WithFields(log.Fields{
			"path":  feature.Path(s.Criteria()),
			"label": label,
		}).Debug("No records reach branch, using default category")
		return nil
	}
	entropy, err := s.Entropy(ctx, b.outcome)
	if err != nil {
		return err
	}
	prediction, err := tree.NewPredictionFromSet(ctx, s, b.outcome)
	if err != nil {
		return err
	}
	label, _ := prediction.PredictedValue()
	if entropy == 0.0 {
		task.Branch.Outcome = &tree.Leaf{Label: label, Prediction: prediction}
		return nil
	}
	if !candidatesLeft(features, task.Excluded, b.outcome) {
		b.logger.WithFields(log.Fields{
			"path":       feature.Path(s.Criteria()),
			"records":    s.Count(),
			"prediction": prediction,
		}).Warn("No features left to split impure records, using majority class")
		task.Branch.Outcome = &tree.Leaf{Label: label, Prediction: prediction}
		return nil
	}
	n, err := b.newNode(ctx, s, task.Excluded, features, q)
	if err != nil {
		return err
	}
	task.Branch.Outcome = &tree.Child{Node: n}
	return nil
}

// newNode selects the feature that best splits the dataset among those
// not excluded, creates a node testing it and pushes a task for each of
// its branches.
func (b *Builder) newNode(ctx context.Context, s *dataset.Dataset, excluded []string, features []feature.Feature, q *queue.Queue) (*tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, buildError(s, err)
	}
	f, gain, err := SelectFeature(ctx, s, features, excluded, b.outcome)
	if err != nil {
		return nil, buildError(s, err)
	}
	prediction, err := tree.NewPredictionFromSet(ctx, s, b.outcome)
	if err != nil {
		return nil, buildError(s, err)
	}
	var values []string
	if b.domain == DatasetDomain {
		values = f.AvailableValues()
	}
	p, err := NewPartition(ctx, s, f, values)
	if err != nil {
		return nil, buildError(s, err)
	}
	p.InformationGain = gain
	n := &tree.Node{
		Feature:         f,
		Prediction:      prediction,
		InformationGain: gain,
		Branches:        make([]*tree.Branch, 0, len(p.Values)),
	}
	stExcluded := make([]string, 0, len(excluded)+1)
	stExcluded = append(append(stExcluded, excluded...), f.Name())
	tasks := make([]*queue.Task, 0, len(p.Values))
	for i, v := range p.Values {
		br := &tree.Branch{Value: v}
		n.Branches = append(n.Branches, br)
		tasks = append(tasks, &queue.Task{Parent: n, Branch: br, Dataset: p.Subsets[i], Excluded: stExcluded})
	}
	for i := len(tasks) - 1; i >= 0; i-- {
		err = q.Push(ctx, tasks[i])
		if err != nil {
			return nil, buildError(s, err)
		}
	}
	b.logger.WithFields(log.Fields{
		"path":     feature.Path(s.Criteria()),
		"feature":  f.Name(),
		"gain":     p.InformationGain,
		"records":  s.Count(),
		"branches": len(n.Branches),
	}).Debug("Node created")
	return n, nil
}

package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/feature"
)

// Tree represents a decision tree. It is composed of its root node,
// which owns the rest of the nodes through its branches, and the
// binary outcome it is able to predict.
type Tree struct {
	Root  *Node
	Label *feature.DiscreteFeature
}

// New takes the root Node and a label feature and returns a tree
// to predict the label with the nodes under the root.
func New(root *Node, label *feature.DiscreteFeature) *Tree {
	return &Tree{root, label}
}

// Predict takes a sample and returns a prediction according to the tree and an
// error if the prediction could not be made.
func (t *Tree) Predict(ctx context.Context, s feature.Sample) (*Prediction, error) {
	o, err := t.outcomeFor(ctx, s)
	if err != nil {
		return nil, err
	}
	switch o := o.(type) {
	case *Leaf:
		return o.Prediction, nil
	case *DefaultLeaf:
		return o.Prediction, nil
	}
	return nil, ErrCannotPredictFromSample
}

// Classify takes a sample and returns the label the tree assigns to it
// and an error if it could not be classified.
func (t *Tree) Classify(ctx context.Context, s feature.Sample) (string, error) {
	o, err := t.outcomeFor(ctx, s)
	if err != nil {
		return "", err
	}
	switch o := o.(type) {
	case *Leaf:
		return o.Label, nil
	case *DefaultLeaf:
		return o.Label, nil
	}
	return "", ErrCannotPredictFromSample
}

func (t *Tree) outcomeFor(ctx context.Context, s feature.Sample) (Outcome, error) {
	if t == nil || t.Root == nil {
		return nil, fmt.Errorf("nil tree cannot predict samples")
	}
	n := t.Root
	for {
		v, err := s.ValueFor(ctx, n.Feature)
		if err != nil {
			return nil, fmt.Errorf("predicting sample: retrieving value for %s: %v", n.Feature.Name(), err)
		}
		vs, ok := v.(string)
		if !ok {
			return nil, ErrCannotPredictFromSample
		}
		b := n.Branch(vs)
		if b == nil {
			return nil, ErrCannotPredictFromSample
		}
		c, ok := b.Outcome.(*Child)
		if !ok {
			return b.Outcome, nil
		}
		n = c.Node
	}
}

/*
Test takes a context.Context and a Dataset and returns three values:
 * the prediction success rate of the tree over the given Dataset for the label
 * the number of failing predictions for the dataset because of ErrCannotPredictFromSample errors
 * an error if a prediction could not be made for reasons other than the tree not
   being able to do so. If this is not nil, the other values will be 0.0 and 0
   respectively
*/
func (t *Tree) Test(ctx context.Context, s *dataset.Dataset) (float64, int, error) {
	if t == nil || s.Count() == 0 {
		return 0.0, 0, nil
	}
	var result float64
	var errCount int
	for _, sample := range s.Records() {
		label, err := t.Classify(ctx, sample)
		if err != nil {
			if err != ErrCannotPredictFromSample {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		v, err := sample.ValueFor(ctx, t.Label)
		if err != nil {
			return 0.0, 0, err
		}
		if label == v {
			result += 1.0
		}
	}
	result = result / float64(s.Count())
	return result, errCount, nil
}

// Traverse takes a context, bottomup boolean and an
// error-returning function that takes a context and a node
// as parameters, and goes through the tree running the
// function with the context and every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true.
// If the given context times out or is cancelled, the context
// error is returned. If the call to the function returns an
// error, the traversing is aborted and the error is returned.
// Otherwise, when the traversing is over, nil is returned.
func (t *Tree) Traverse(ctx context.Context, bottomup bool, f func(context.Context, *Node) error) error {
	if t.Root == nil {
		return nil
	}
	return t.traverse(ctx, t.Root, bottomup, f)
}

func (t *Tree) traverse(ctx context.Context, n *Node, bottomup bool, f func(context.Context, *Node) error) error {
	err := ctx.Err()
	if err != nil {
		return err
	}
	if !bottomup {
		err = f(ctx, n)
	}
	if err != nil {
		return err
	}
	for _, b := range n.Branches {
		sn := b.Child()
		if sn == nil {
			continue
		}
		err = t.traverse(ctx, sn, bottomup, f)
		if err != nil {
			return err
		}
	}
	if bottomup {
		err = f(ctx, n)
	}
	return err
}

// Stats holds the size of a tree
type Stats struct {
	Nodes         int
	Leaves        int
	DefaultLeaves int
	Depth         int
}

// Stats returns the number of nodes, leaves and default leaves of the
// tree along with its depth, the number of nodes on its longest path.
func (t *Tree) Stats() Stats {
	var s Stats
	if t == nil || t.Root == nil {
		return s
	}
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		s.Nodes++
		if depth > s.Depth {
			s.Depth = depth
		}
		for _, b := range n.Branches {
			switch o := b.Outcome.(type) {
			case *Leaf:
				s.Leaves++
			case *DefaultLeaf:
				s.DefaultLeaves++
			case *Child:
				walk(o.Node, depth+1)
			}
		}
	}
	walk(t.Root, 1)
	return s
}

func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return ""
	}
	return subtreeString(t.Root)
}

func subtreeString(n *Node) string {
	result := fmt.Sprintf("[%s]\n", n.Feature.Name())
	if n.Prediction != nil {
		result = fmt.Sprintf("%s{ %v gain: %.4f }\n", result, n.Prediction, n.InformationGain)
	}
	if len(n.Branches) > 0 {
		result = fmt.Sprintf("%s|\n", result)
	}
	for i, b := range n.Branches {
		for j, line := range branchLines(n, b) {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(n.Branches)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}

func branchLines(n *Node, b *Branch) []string {
	head := fmt.Sprintf("%v", b.Criterion(n))
	switch o := b.Outcome.(type) {
	case *Leaf:
		return []string{fmt.Sprintf("%s => %s { %v }", head, o.Label, o.Prediction)}
	case *DefaultLeaf:
		return []string{fmt.Sprintf("%s => %s (default category)", head, o.Label)}
	case *Child:
		return append([]string{head}, strings.Split(subtreeString(o.Node), "\n")...)
	}
	return []string{fmt.Sprintf("%s => ?", head)}
}

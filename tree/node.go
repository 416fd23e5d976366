package tree

import (
	"github.com/pbanos/acorn/feature"
)

/*
Node is a node of the tree: a test on the value of a feature, with a branch
for each value the feature can take.
*/
type Node struct {
	// The feature whose value selects the branch to follow
	Feature *feature.DiscreteFeature
	// The branches of the node, one per value of the feature
	Branches []*Branch
	// The prediction for the training records routed to this node
	Prediction *Prediction
	// The information gain obtained by splitting this node's records
	// on its feature
	InformationGain float64
}

/*
Branch is the part of a node for one of the values of its feature. Its
Outcome is exactly one of *Leaf, *DefaultLeaf or *Child.
*/
type Branch struct {
	Value   string
	Outcome Outcome
}

/*
Outcome is what a branch leads to. It is implemented by *Leaf,
*DefaultLeaf and *Child only.
*/
type Outcome interface {
	isOutcome()
}

/*
Leaf is a branch outcome with a classification, obtained from the training
records that reached the branch.
*/
type Leaf struct {
	Label      string
	Prediction *Prediction
}

/*
DefaultLeaf is the outcome of a branch no training record reached. Its Label
is chosen from the records of the node the branch belongs to, whose
prediction is kept as the leaf's Prediction.
*/
type DefaultLeaf struct {
	Label      string
	Prediction *Prediction
}

/*
Child is a branch outcome that requires testing another feature, the one
of its Node.
*/
type Child struct {
	Node *Node
}

func (*Leaf) isOutcome()        {}
func (*DefaultLeaf) isOutcome() {}
func (*Child) isOutcome()       {}

/*
Criterion returns the criterion a sample must satisfy to follow the branch
of the given node.
*/
func (b *Branch) Criterion(n *Node) feature.Criterion {
	return feature.NewDiscreteCriterion(n.Feature, b.Value)
}

/*
Child returns the node under the branch, nil if the branch ends in a leaf.
*/
func (b *Branch) Child() *Node {
	if c, ok := b.Outcome.(*Child); ok {
		return c.Node
	}
	return nil
}

/*
Branch returns the branch of the node for the given value, nil if there is
none.
*/
func (n *Node) Branch(value string) *Branch {
	for _, b := range n.Branches {
		if b.Value == value {
			return b
		}
	}
	return nil
}

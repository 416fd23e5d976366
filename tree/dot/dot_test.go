package dot

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/feature"
	"github.com/pbanos/acorn/tree"
	cv "github.com/smartystreets/goconvey/convey"
)

func sampleTree(ctx context.Context) (*tree.Tree, error) {
	label := feature.NewBinaryFeature("label", "T", "F")
	color := feature.NewDiscreteFeature("color", []string{"red", "blue", "green"})
	s := dataset.New([]*dataset.Record{
		dataset.NewRecord(map[string]interface{}{"color": "red", "label": "T"}),
		dataset.NewRecord(map[string]interface{}{"color": "blue", "label": "F"}),
	})
	p, err := tree.NewPredictionFromSet(ctx, s, label)
	if err != nil {
		return nil, err
	}
	root := &tree.Node{Feature: color, Prediction: p, InformationGain: 1.0}
	root.Branches = []*tree.Branch{
		{Value: "red", Outcome: &tree.Leaf{Label: "T", Prediction: p}},
		{Value: "blue", Outcome: &tree.Leaf{Label: "F", Prediction: p}},
		{Value: "green", Outcome: &tree.DefaultLeaf{Label: "T", Prediction: p}},
	}
	return tree.New(root, label), nil
}

func TestWrite(t *testing.T) {
	ctx := context.Background()

	cv.Convey("Given a tree", t, func() {
		tr, err := sampleTree(ctx)
		cv.So(err, cv.ShouldBeNil)

		cv.Convey("its graph has a vertex per node and leaf and an edge per branch", func() {
			g, err := Graph(tr)
			cv.So(err, cv.ShouldBeNil)
			cv.So(len(g.Nodes.Nodes), cv.ShouldEqual, 4)
			cv.So(len(g.Edges.Edges), cv.ShouldEqual, 3)
			cv.So(g.Directed, cv.ShouldBeTrue)
		})

		cv.Convey("Write outputs a digraph with labeled edges", func() {
			var b bytes.Buffer
			cv.So(Write(&b, tr), cv.ShouldBeNil)
			out := b.String()
			cv.So(out, cv.ShouldStartWith, "digraph G")
			cv.So(strings.Count(out, "->"), cv.ShouldEqual, 3)
			cv.So(out, cv.ShouldContainSubstring, `"green"`)
			cv.So(out, cv.ShouldContainSubstring, "dashed")
		})
	})

	cv.Convey("Given an empty tree", t, func() {
		var b bytes.Buffer
		cv.So(Write(&b, &tree.Tree{}), cv.ShouldBeNil)
		cv.So(strings.Count(b.String(), "->"), cv.ShouldEqual, 0)
	})
}

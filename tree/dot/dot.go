/*
Package dot renders trees in the Graphviz DOT language.
*/
package dot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"
	"github.com/pbanos/acorn/tree"
)

const graphName = "G"

/*
Graph takes a tree and returns a directed graph with a vertex for each
node and leaf of the tree and an edge labeled with the value of each
branch.
*/
func Graph(t *tree.Tree) (*gographviz.Graph, error) {
	ast, err := gographviz.Parse([]byte(`digraph G{}`))
	if err != nil {
		return nil, err
	}
	g := gographviz.NewGraph()
	err = gographviz.Analyse(ast, g)
	if err != nil {
		return nil, err
	}
	if t == nil || t.Root == nil {
		return g, nil
	}
	r := &renderer{g: g}
	_, err = r.node(t.Root)
	if err != nil {
		return nil, err
	}
	return g, nil
}

/*
Write takes an io.Writer and a tree and writes the DOT representation of
the tree to the writer.
*/
func Write(w io.Writer, t *tree.Tree) error {
	g, err := Graph(t)
	if err != nil {
		return fmt.Errorf("rendering tree as dot: %v", err)
	}
	_, err = io.WriteString(w, g.String())
	return err
}

type renderer struct {
	g    *gographviz.Graph
	next int
}

func (r *renderer) id() string {
	id := fmt.Sprintf("n%d", r.next)
	r.next++
	return id
}

func (r *renderer) node(n *tree.Node) (string, error) {
	id := r.id()
	label := fmt.Sprintf("%s\n%v\ngain: %.4f", n.Feature.Name(), n.Prediction, n.InformationGain)
	err := r.g.AddNode(graphName, id, map[string]string{"label": strconv.Quote(label)})
	if err != nil {
		return "", err
	}
	for _, b := range n.Branches {
		var dst string
		switch o := b.Outcome.(type) {
		case *tree.Leaf:
			dst, err = r.leaf(fmt.Sprintf("%s\n%v", o.Label, o.Prediction), "solid")
		case *tree.DefaultLeaf:
			dst, err = r.leaf(fmt.Sprintf("%s\n(default category)", o.Label), "dashed")
		case *tree.Child:
			dst, err = r.node(o.Node)
		default:
			err = fmt.Errorf("branch %s of %s has no outcome", b.Value, n.Feature.Name())
		}
		if err != nil {
			return "", err
		}
		err = r.g.AddEdge(id, dst, true, map[string]string{"label": strconv.Quote(b.Value)})
		if err != nil {
			return "", err
		}
	}
	return id, nil
}

func (r *renderer) leaf(label, style string) (string, error) {
	id := r.id()
	err := r.g.AddNode(graphName, id, map[string]string{
		"label": strconv.Quote(label),
		"shape": "box",
		"style": style,
	})
	return id, err
}

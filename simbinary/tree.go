package simbinary

import (
	"context"
	"fmt"

	"github.com/katalvlaran/treesvm/bfs"
	"github.com/katalvlaran/treesvm/core"
	"github.com/katalvlaran/treesvm/svm"
)

// NodeID addresses a node in a Tree's arena.
type NodeID int

// Node is either *Leaf or *Internal.
type Node interface {
	node()
}

// Leaf holds a single class index.
type Leaf struct {
	Class int
}

// Internal splits Classes into the classes under Left and those under Right.
// Model is nil until the tree is trained.
type Internal struct {
	Classes []int
	Left    NodeID
	Right   NodeID
	Model   *svm.Model
}

func (*Leaf) node()     {}
func (*Internal) node() {}

// Tree is a binary decision tree over class indices stored in an arena.
// The root is always node 0; nodes appear in breadth-first order.
type Tree struct {
	nodes []Node
}

// Root returns the root id.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id NodeID) Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}

	return t.nodes[id]
}

// Classes returns the class indices owned by the subtree at id.
func (t *Tree) Classes(id NodeID) []int {
	switch n := t.Node(id).(type) {
	case *Leaf:
		return []int{n.Class}
	case *Internal:
		out := make([]int, len(n.Classes))
		copy(out, n.Classes)
		return out
	default:
		return nil
	}
}

// Leaves returns the leaf classes in arena order.
func (t *Tree) Leaves() []int {
	var out []int
	for _, n := range t.nodes {
		if l, ok := n.(*Leaf); ok {
			out = append(out, l.Class)
		}
	}

	return out
}

// Internals returns the ids of all internal nodes in arena order.
func (t *Tree) Internals() []NodeID {
	var out []NodeID
	for id, n := range t.nodes {
		if _, ok := n.(*Internal); ok {
			out = append(out, NodeID(id))
		}
	}

	return out
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (t *Tree) Depth() int {
	if len(t.nodes) == 0 {
		return 0
	}
	depth := make([]int, len(t.nodes))
	deepest := 0
	for id, n := range t.nodes {
		in, ok := n.(*Internal)
		if !ok {
			continue
		}
		// children are always allocated after their parent
		depth[in.Left] = depth[id] + 1
		depth[in.Right] = depth[id] + 1
		if depth[in.Left] > deepest {
			deepest = depth[in.Left]
		}
	}

	return deepest
}

func (t *Tree) alloc() NodeID {
	t.nodes = append(t.nodes, nil)
	return NodeID(len(t.nodes) - 1)
}

type workItem struct {
	id      NodeID
	classes []int
}

// ConstructTree splits mst into a binary tree over all its classes.
// Each internal node cuts the heaviest MST edge among its classes (the first
// one in edge-ID order on ties). The side holding the cut edge's From
// endpoint becomes the left child; both children keep the parent's order.
func ConstructTree(mst *MST) (*Tree, error) {
	return constructTree(context.Background(), mst)
}

func constructTree(ctx context.Context, mst *MST) (*Tree, error) {
	if mst == nil || mst.Adjacency == nil {
		return nil, ErrTooFewClasses
	}
	k := mst.Len()
	g, err := mst.Graph()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTreeStructure, err)
	}

	all := make([]int, k)
	for i := range all {
		all[i] = i
	}
	t := &Tree{}
	queue := []workItem{{id: t.alloc(), classes: all}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]

		if len(it.classes) == 1 {
			t.nodes[it.id] = &Leaf{Class: it.classes[0]}
			continue
		}
		left, right, err := split(ctx, g, it.classes)
		if err != nil {
			return nil, err
		}
		in := &Internal{Classes: it.classes, Left: t.alloc(), Right: t.alloc()}
		t.nodes[it.id] = in
		queue = append(queue, workItem{id: in.Left, classes: left}, workItem{id: in.Right, classes: right})
	}

	return t, nil
}

// split removes the heaviest edge induced by classes and returns the two
// resulting components in the order of classes.
func split(ctx context.Context, g *core.Graph, classes []int) ([]int, []int, error) {
	keep := make(map[int]bool, len(classes))
	for _, c := range classes {
		keep[c] = true
	}
	sub := core.InducedSubgraph(g, keep)

	var cut *core.Edge
	for _, e := range sub.Edges() {
		if cut == nil || e.Weight > cut.Weight {
			cut = e
		}
	}
	if cut == nil {
		return nil, nil, fmt.Errorf("%w: classes %v share no edge", ErrTreeStructure, classes)
	}

	comps, err := bfs.Components(sub, bfs.WithContext(ctx), bfs.WithoutEdge(cut.From, cut.To))
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrTreeStructure, err)
	}
	if len(comps) != 2 {
		return nil, nil, fmt.Errorf("%w: %d components for classes %v", ErrTreeStructure, len(comps), classes)
	}

	side := make(map[int]bool, len(classes))
	for _, v := range comps[0] {
		side[v] = true
	}
	leftIsFirst := side[cut.From]

	var left, right []int
	for _, c := range classes {
		if side[c] == leftIsFirst {
			left = append(left, c)
		} else {
			right = append(right, c)
		}
	}

	return left, right, nil
}

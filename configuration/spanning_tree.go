package configuration

import (
	"github.com/rofi-go/rofi/robot"
	"github.com/rofi-go/rofi/topology"
)

// predLink records the parent module and the parent-side face a child was
// discovered through, per the design notes' "predecessor of the child is
// set to (parent, parent_side)".
type predLink struct {
	parentID   int
	parentSide robot.Side
}

// spanningTree is the BFS tree from the fixed anchor, cached until a
// mutation invalidates it.
type spanningTree struct {
	successors  map[int][]topology.Edge // per-node list of discovery (tree) edges
	predecessor map[int]predLink
	crossEdges  map[int][]topology.Edge // per-node list of non-tree edges
	succCount   map[int]int
	complete    bool // true iff every module was reached
}

func newSpanningTree() *spanningTree {
	return &spanningTree{
		successors:  make(map[int][]topology.Edge),
		predecessor: make(map[int]predLink),
		crossEdges:  make(map[int][]topology.Edge),
		succCount:   make(map[int]int),
	}
}

// ensureSpanningTree builds c.tree via BFS from the fixed anchor if it is
// not already cached, and updates the connected cache tag to match.
func (c *Configuration) ensureSpanningTree() *spanningTree {
	if c.tree != nil {
		return c.tree
	}

	tree := newSpanningTree()
	if !c.hasAnyModule {
		tree.complete = true
		c.tree = tree
		c.connected = True
		return tree
	}

	visited := map[int]bool{c.fixedID: true}
	queue := []int{c.fixedID}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		for _, e := range c.EdgesOf(id) {
			other := e.ID2
			if !visited[other] {
				visited[other] = true
				tree.successors[id] = append(tree.successors[id], e)
				tree.predecessor[other] = predLink{parentID: id, parentSide: e.Side1}
				tree.succCount[id]++
				queue = append(queue, other)
				continue
			}

			if isReverseOfParentEdge(tree, id, e) {
				// Just the half-edge walking back up to the BFS parent,
				// not a genuine cross edge.
				continue
			}
			tree.crossEdges[id] = append(tree.crossEdges[id], e)
		}
	}

	tree.complete = len(visited) == len(c.modules)
	c.tree = tree
	if tree.complete {
		c.connected = True
	} else {
		c.connected = False
	}
	return tree
}

// isReverseOfParentEdge reports whether e is exactly the half-edge that
// leads from id back up to its BFS parent (i.e. the reverse of the tree
// edge that discovered id), as opposed to a genuine cross edge that
// happens to point at the parent through a different dock pair.
func isReverseOfParentEdge(tree *spanningTree, id int, e topology.Edge) bool {
	pl, ok := tree.predecessor[id]
	if !ok {
		return false
	}
	for _, te := range tree.successors[pl.parentID] {
		if te.ID2 == id && te.Reverse() == e {
			return true
		}
	}
	return false
}

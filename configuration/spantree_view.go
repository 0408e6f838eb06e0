package configuration

import "github.com/rofi-go/rofi/topology"

// SpanSuccessors returns the spanning-tree successor edges discovered
// from module id, building the tree first if necessary.
func (c *Configuration) SpanSuccessors(id int) []topology.Edge {
	tree := c.ensureSpanningTree()
	return append([]topology.Edge(nil), tree.successors[id]...)
}

// SpanSuccCount returns the number of spanning-tree successor edges at
// module id.
func (c *Configuration) SpanSuccCount(id int) int {
	tree := c.ensureSpanningTree()
	return tree.succCount[id]
}

// FixedID returns the id of the fixed anchor module.
func (c *Configuration) FixedID() int { return c.fixedID }

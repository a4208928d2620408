package flow

import (
	"sync"

	"github.com/google/uuid"
)

// Document is the single source of truth for the flow graph: an ordered
// list of nodes and an ordered list of edges. Forms and renderers never
// hold a private copy; they read and request mutations here. A RWMutex
// guards the lists because the HTTP surface makes concurrent callers real.
type Document struct {
	mu    sync.RWMutex
	nodes []Node
	edges []Edge
}

// NewDocument returns an empty flow document.
func NewDocument() *Document {
	return &Document{
		nodes: []Node{},
		edges: []Edge{},
	}
}

// AddNode prepends a node to the list, newest first. If node.ID is empty, a
// UUID is auto-generated. Returns the node ID (generated or provided), or
// ErrDuplicateNode when the ID is already taken.
func (d *Document) AddNode(node Node) (string, error) {
	if node.ID == "" {
		node.ID = uuid.NewString()
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	for _, n := range d.nodes {
		if n.ID == node.ID {
			return "", ErrDuplicateNode
		}
	}

	d.nodes = append([]Node{node}, d.nodes...)
	return node.ID, nil
}

// UpdateNode replaces the data of the node with the given ID. Position,
// kind, list order and every other record are untouched.
// Returns ErrNodeNotFound if the node doesn't exist.
func (d *Document) UpdateNode(id string, data Payload) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.nodes {
		if d.nodes[i].ID == id {
			d.nodes[i].Data = data
			return nil
		}
	}
	return ErrNodeNotFound
}

// MoveNode updates a node's canvas position.
// Returns ErrNodeNotFound if the node doesn't exist.
func (d *Document) MoveNode(id string, pos Position) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.nodes {
		if d.nodes[i].ID == id {
			d.nodes[i].Position = pos
			return nil
		}
	}
	return ErrNodeNotFound
}

// RemoveNode deletes a node by its ID along with any edges touching it.
// No error if the node doesn't exist.
func (d *Document) RemoveNode(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	nodes := d.nodes[:0]
	for _, n := range d.nodes {
		if n.ID != id {
			nodes = append(nodes, n)
		}
	}
	d.nodes = nodes

	edges := d.edges[:0]
	for _, e := range d.edges {
		if e.Source != id && e.Target != id {
			edges = append(edges, e)
		}
	}
	d.edges = edges
}

// Node fetches a single node by its ID.
// Returns nil if not found.
func (d *Document) Node(id string) *Node {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, n := range d.nodes {
		if n.ID == id {
			node := n
			return &node
		}
	}
	return nil
}

// Nodes returns a copy of the node list, newest first.
func (d *Document) Nodes() []Node {
	d.mu.RLock()
	defer d.mu.RUnlock()

	nodes := make([]Node, len(d.nodes))
	copy(nodes, d.nodes)
	return nodes
}

// Edges returns a copy of the edge list.
func (d *Document) Edges() []Edge {
	d.mu.RLock()
	defer d.mu.RUnlock()

	edges := make([]Edge, len(d.edges))
	copy(edges, d.edges)
	return edges
}

// Len reports the number of nodes.
func (d *Document) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.nodes)
}

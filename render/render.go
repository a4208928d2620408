// Package render turns flow nodes into the compact summaries the canvas
// layer draws, keyed by each record's type tag. Renderers are pure
// presentation: they never mutate the document. The edit affordance is
// modeled by EditRequest, which reconstructs the form-shaped session for a
// node; checking it out is the caller's job.
package render

import (
	"errors"
	"fmt"

	"github.com/meikuraledutech/flow"
)

var ErrUnknownNodeType = errors.New("render: no renderer registered for node type")

// Summary is what the canvas draws for one node.
type Summary struct {
	ID        string          `json:"id"`
	Kind      flow.NodeKind   `json:"kind"`
	Label     string          `json:"label"`
	Icon      string          `json:"icon"`
	Lines     []string        `json:"lines,omitempty"`
	Platforms []flow.Platform `json:"platforms,omitempty"`
}

// Renderer draws one node kind.
type Renderer interface {
	Kind() flow.NodeKind
	Summary(n flow.Node) (Summary, error)
}

// Registry maps node type tags to renderers. It is built once and never
// mutated at runtime; the canvas layer consults it once per render.
type Registry struct {
	renderers map[flow.NodeKind]Renderer
}

// NewRegistry returns the static registry covering both node kinds.
func NewRegistry() *Registry {
	r := &Registry{renderers: map[flow.NodeKind]Renderer{}}
	for _, ren := range []Renderer{TriggerRenderer{}, ActionRenderer{}} {
		r.renderers[ren.Kind()] = ren
	}
	return r
}

// Lookup finds the renderer for a type tag.
func (r *Registry) Lookup(kind flow.NodeKind) (Renderer, error) {
	ren, ok := r.renderers[kind]
	if !ok {
		return nil, fmt.Errorf("render: kind %q: %w", kind, ErrUnknownNodeType)
	}
	return ren, nil
}

// Summary renders one node through its registered renderer.
func (r *Registry) Summary(n flow.Node) (Summary, error) {
	ren, err := r.Lookup(n.Kind)
	if err != nil {
		return Summary{}, err
	}
	return ren.Summary(n)
}

// Summaries renders a node list in order, skipping nothing: an unknown
// tag fails the whole render.
func (r *Registry) Summaries(nodes []flow.Node) ([]Summary, error) {
	out := make([]Summary, 0, len(nodes))
	for _, n := range nodes {
		s, err := r.Summary(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// EditRequest rebuilds the form-shaped edit session for a node, the record
// its edit affordance hands to the session checkout.
func EditRequest(n flow.Node) (flow.EditSession, error) {
	if n.Data.Data == nil {
		return flow.EditSession{}, flow.ErrUnknownDataType
	}
	return flow.EditSession{
		NodeID:    n.ID,
		IsTrigger: n.Kind == flow.KindTrigger,
		Option:    n.Data.Option,
		Data:      n.Data.Data,
	}, nil
}

package flow

// NodeKind discriminates trigger nodes from action nodes. The canvas layer
// picks a renderer by this tag.
type NodeKind string

const (
	KindTrigger NodeKind = "trigger"
	KindAction  NodeKind = "node"
)

// Position is a node's placement on the canvas.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Node represents one record in the flow graph: a trigger or an action with
// a position and a typed payload.
type Node struct {
	ID       string   `json:"id,omitempty"`
	Kind     NodeKind `json:"type"`
	Position Position `json:"position"`
	Data     Payload  `json:"data"`
}

// Edge represents a directed connection between two nodes. Edges are carried
// in the document and in API responses but no operation creates them yet --
// wiring nodes together is future work.
type Edge struct {
	ID     string `json:"id,omitempty"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Option is a catalog entry the user picked in a dialog. Every payload
// carries a denormalized copy for display.
type Option struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// Platform is a social platform a trigger listens on.
type Platform struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// AIModel is an AI provider selectable on an AI-active reply.
type AIModel struct {
	Label string `json:"label"`
	Image string `json:"image"`
}

// Template is a reusable text+image snippet from the template store.
// Image is an ephemeral reference, not durable content.
type Template struct {
	ID    string  `json:"id,omitempty"`
	Text  string  `json:"text"`
	Image *string `json:"image,omitempty"`
}

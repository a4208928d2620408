package flow

import (
	"encoding/json"
	"fmt"
	"sync"
)

// EditSession is the record currently checked out for editing: the node's
// payload reshaped the way the owning form consumes it.
type EditSession struct {
	NodeID    string
	IsTrigger bool
	Option    Option
	Data      NodeData
}

// MarshalJSON flattens the variant fields beside id, isTrigger and
// selectedOption, the shape the edit dialogs hydrate from.
func (s EditSession) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"id":             s.NodeID,
		"isTrigger":      s.IsTrigger,
		"selectedOption": s.Option,
	}

	switch d := s.Data.(type) {
	case ReplyData:
		out["isAiActive"] = d.AIActive
		out["model"] = d.Model
		out["input"] = d.Input
	case EmailData:
		out["to"] = d.To
		out["subject"] = d.Subject
		out["message"] = d.Message
	case TemplateData:
		out["template"] = d.Template
	case TriggerData:
		out["type"] = d.Type
		out["platforms"] = d.Platforms
	default:
		return nil, fmt.Errorf("flow: marshal edit session: %w", ErrUnknownDataType)
	}

	return json.Marshal(out)
}

// Sessions is the single-slot edit checkout. Only one node can be under
// edit at a time; a second checkout for a different node is rejected
// instead of silently discarding the first.
type Sessions struct {
	mu      sync.Mutex
	current *EditSession
}

// NewSessions returns an empty edit-session slot.
func NewSessions() *Sessions {
	return &Sessions{}
}

// Checkout loads a session into the slot. Re-checking out the node already
// under edit replaces the slot; any other node while the slot is occupied
// returns ErrEditInProgress.
func (s *Sessions) Checkout(sess EditSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.NodeID != sess.NodeID {
		return ErrEditInProgress
	}
	s.current = &sess
	return nil
}

// Active returns a copy of the checked-out session, or nil when the slot
// is empty.
func (s *Sessions) Active() *EditSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	sess := *s.current
	return &sess
}

// Release clears the slot if the given node holds it. Releasing a node
// that isn't under edit is a no-op.
func (s *Sessions) Release(nodeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil && s.current.NodeID == nodeID {
		s.current = nil
	}
}

// Clear empties the slot unconditionally, whichever node held it.
func (s *Sessions) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

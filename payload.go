package flow

import (
	"encoding/json"
	"fmt"
)

// DataType is the tag discriminating payload variants. Trigger sub-types
// share the namespace with action variants, matching the wire shape the
// canvas consumes.
type DataType string

const (
	TypeReply    DataType = "Reply"
	TypeEmail    DataType = "Email"
	TypeTemplate DataType = "Template"

	TypeDirectMessage DataType = "Direct Message"
	TypePostMessage   DataType = "Post Message"
	TypeLikePost      DataType = "Like Post"
	TypeSharePost     DataType = "Share Post"
)

// NodeData is the closed set of payload variants. Exactly four types
// implement it: ReplyData, EmailData, TemplateData and TriggerData.
type NodeData interface {
	DataType() DataType
	isNodeData()
}

// ReplyData is the payload of a Reply action. When AIActive is set a model
// must be selected before the record is considered complete.
type ReplyData struct {
	AIActive bool     `json:"isAiActive"`
	Model    *AIModel `json:"model"`
	Input    string   `json:"input"`
}

func (ReplyData) DataType() DataType { return TypeReply }
func (ReplyData) isNodeData()        {}

// EmailData is the payload of an Email action.
type EmailData struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (EmailData) DataType() DataType { return TypeEmail }
func (EmailData) isNodeData()        {}

// TemplateData is the payload of a Template action. The referenced template
// comes from the template store.
type TemplateData struct {
	Template Template `json:"template"`
}

func (TemplateData) DataType() DataType { return TypeTemplate }
func (TemplateData) isNodeData()        {}

// TriggerData is the payload of a trigger node: a sub-type plus the
// platforms it listens on. Platforms is non-empty at creation.
type TriggerData struct {
	Type      DataType   `json:"type"`
	Platforms []Platform `json:"platforms"`
}

func (d TriggerData) DataType() DataType { return d.Type }
func (TriggerData) isNodeData()          {}

// Payload is a node's data envelope: the denormalized display option plus
// the typed variant.
type Payload struct {
	Option Option
	Data   NodeData
}

// payloadEnvelope is the wire shape: {"node": ..., "nodeData": {...},
// "platforms": [...]}. Platforms live on the envelope for triggers only.
type payloadEnvelope struct {
	Option    Option          `json:"node"`
	NodeData  json.RawMessage `json:"nodeData"`
	Platforms []Platform      `json:"platforms,omitempty"`
}

func (p Payload) MarshalJSON() ([]byte, error) {
	env := payloadEnvelope{Option: p.Option}

	var inner any
	switch d := p.Data.(type) {
	case ReplyData:
		inner = struct {
			Type DataType `json:"type"`
			ReplyData
		}{TypeReply, d}
	case EmailData:
		inner = struct {
			Type DataType `json:"type"`
			EmailData
		}{TypeEmail, d}
	case TemplateData:
		inner = struct {
			Type DataType `json:"type"`
			TemplateData
		}{TypeTemplate, d}
	case TriggerData:
		inner = struct {
			Type DataType `json:"type"`
		}{d.Type}
		env.Platforms = d.Platforms
	default:
		return nil, fmt.Errorf("flow: marshal payload: %w", ErrUnknownDataType)
	}

	raw, err := json.Marshal(inner)
	if err != nil {
		return nil, fmt.Errorf("flow: marshal payload: %w", err)
	}
	env.NodeData = raw

	return json.Marshal(env)
}

func (p *Payload) UnmarshalJSON(b []byte) error {
	var env payloadEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return fmt.Errorf("flow: unmarshal payload: %w", err)
	}

	var tag struct {
		Type DataType `json:"type"`
	}
	if err := json.Unmarshal(env.NodeData, &tag); err != nil {
		return fmt.Errorf("flow: unmarshal payload tag: %w", err)
	}

	var data NodeData
	switch tag.Type {
	case TypeReply:
		var d ReplyData
		if err := json.Unmarshal(env.NodeData, &d); err != nil {
			return fmt.Errorf("flow: unmarshal reply: %w", err)
		}
		data = d
	case TypeEmail:
		var d EmailData
		if err := json.Unmarshal(env.NodeData, &d); err != nil {
			return fmt.Errorf("flow: unmarshal email: %w", err)
		}
		data = d
	case TypeTemplate:
		var d TemplateData
		if err := json.Unmarshal(env.NodeData, &d); err != nil {
			return fmt.Errorf("flow: unmarshal template: %w", err)
		}
		data = d
	case TypeDirectMessage, TypePostMessage, TypeLikePost, TypeSharePost:
		data = TriggerData{Type: tag.Type, Platforms: env.Platforms}
	default:
		return fmt.Errorf("flow: payload type %q: %w", tag.Type, ErrUnknownDataType)
	}

	p.Option = env.Option
	p.Data = data
	return nil
}

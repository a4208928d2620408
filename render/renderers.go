package render

import (
	"fmt"

	"github.com/meikuraledutech/flow"
)

// TriggerRenderer draws trigger nodes: the sub-type label plus the
// platform chips.
type TriggerRenderer struct{}

func (TriggerRenderer) Kind() flow.NodeKind { return flow.KindTrigger }

func (TriggerRenderer) Summary(n flow.Node) (Summary, error) {
	d, ok := n.Data.Data.(flow.TriggerData)
	if !ok {
		return Summary{}, fmt.Errorf("render: trigger node %s: %w", n.ID, flow.ErrUnknownDataType)
	}
	return Summary{
		ID:        n.ID,
		Kind:      n.Kind,
		Label:     n.Data.Option.Label,
		Icon:      n.Data.Option.Icon,
		Lines:     []string{string(d.Type)},
		Platforms: d.Platforms,
	}, nil
}

// ActionRenderer draws action nodes, one summary line per payload variant.
type ActionRenderer struct{}

func (ActionRenderer) Kind() flow.NodeKind { return flow.KindAction }

func (ActionRenderer) Summary(n flow.Node) (Summary, error) {
	s := Summary{
		ID:    n.ID,
		Kind:  n.Kind,
		Label: n.Data.Option.Label,
		Icon:  n.Data.Option.Icon,
	}

	switch d := n.Data.Data.(type) {
	case flow.ReplyData:
		if d.AIActive && d.Model != nil {
			s.Lines = []string{"AI reply via " + d.Model.Label, d.Input}
		} else {
			s.Lines = []string{d.Input}
		}
	case flow.EmailData:
		s.Lines = []string{"To: " + d.To, d.Subject}
	case flow.TemplateData:
		s.Lines = []string{d.Template.Text}
	default:
		return Summary{}, fmt.Errorf("render: action node %s: %w", n.ID, flow.ErrUnknownDataType)
	}

	return s, nil
}

package forms

import (
	"strings"

	"github.com/meikuraledutech/flow"
)

// ReplyForm builds or edits a Reply action node. A plain reply only needs
// text; flipping AI mode on additionally requires picking a provider.
type ReplyForm struct {
	form
	aiActive bool
	model    *flow.AIModel
	input    string
}

func NewReplyForm(doc *flow.Document, sessions *flow.Sessions) *ReplyForm {
	return &ReplyForm{form: newForm(doc, sessions)}
}

// Select resolves the picked action option and moves into Editing.
func (f *ReplyForm) Select(label string) error {
	opt, ok := flow.ActionOption(label)
	if !ok || opt.Label != "Reply" {
		return ErrUnknownOption
	}
	f.option = opt
	f.state = Editing
	return nil
}

// Hydrate pre-fills every field from an edit session and enters Editing
// directly. Returns ErrWrongForm unless the session holds reply data.
func (f *ReplyForm) Hydrate(sess *flow.EditSession) error {
	d, ok := sess.Data.(flow.ReplyData)
	if sess.IsTrigger || !ok {
		return ErrWrongForm
	}
	f.hydrate(sess)
	f.aiActive = d.AIActive
	f.model = d.Model
	f.input = d.Input
	return nil
}

// SetAIActive toggles AI mode. Flipping it off keeps the selected model in
// the field state but the submitted payload carries model only when active.
func (f *ReplyForm) SetAIActive(active bool) {
	f.aiActive = active
}

// SelectModel picks an AI provider from the catalog.
func (f *ReplyForm) SelectModel(label string) error {
	m, ok := flow.AIModelByLabel(label)
	if !ok {
		return ErrUnknownOption
	}
	f.model = &m
	return nil
}

// SetInput sets the reply text.
func (f *ReplyForm) SetInput(input string) {
	f.input = input
}

type replySubmission struct {
	Input string `validate:"required"`
}

// Submit validates and appends a new Reply node, or patches the node under
// edit. Fields are preserved on validation failure.
func (f *ReplyForm) Submit() (string, error) {
	if err := f.checkOpen(); err != nil {
		return "", err
	}

	sub := replySubmission{Input: strings.TrimSpace(f.input)}
	if err := validate.Struct(sub); err != nil {
		return "", ErrInputRequired
	}
	if f.aiActive && f.model == nil {
		return "", ErrModelRequired
	}

	var model *flow.AIModel
	if f.aiActive {
		model = f.model
	}
	return f.submit(flow.KindAction, flow.ReplyData{
		AIActive: f.aiActive,
		Model:    model,
		Input:    f.input,
	})
}

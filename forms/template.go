package forms

import (
	"context"

	"github.com/meikuraledutech/flow"
)

// TemplateForm builds or edits a Template action node. The node references
// an entry in the template store; a new template can be drafted and
// appended to the store from inside the form, which auto-selects it.
type TemplateForm struct {
	form
	store    flow.TemplateStore
	selected *flow.Template
	draft    flow.Template
}

func NewTemplateForm(doc *flow.Document, sessions *flow.Sessions, store flow.TemplateStore) *TemplateForm {
	return &TemplateForm{form: newForm(doc, sessions), store: store}
}

// Select resolves the picked action option and moves into Editing.
func (f *TemplateForm) Select(label string) error {
	opt, ok := flow.ActionOption(label)
	if !ok || opt.Label != "Template" {
		return ErrUnknownOption
	}
	f.option = opt
	f.state = Editing
	return nil
}

// Hydrate pre-fills every field from an edit session and enters Editing
// directly. Returns ErrWrongForm unless the session holds template data.
func (f *TemplateForm) Hydrate(sess *flow.EditSession) error {
	d, ok := sess.Data.(flow.TemplateData)
	if sess.IsTrigger || !ok {
		return ErrWrongForm
	}
	f.hydrate(sess)
	t := d.Template
	f.selected = &t
	return nil
}

// Templates lists the store catalog for the picker grid.
func (f *TemplateForm) Templates(ctx context.Context) ([]flow.Template, error) {
	return f.store.List(ctx)
}

// SelectTemplate picks an existing template from the store by ID.
func (f *TemplateForm) SelectTemplate(ctx context.Context, id string) error {
	t, err := f.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrUnknownTemplate
	}
	f.selected = t
	return nil
}

// SetDraftText sets the text of the template being drafted.
func (f *TemplateForm) SetDraftText(text string) {
	f.draft.Text = text
}

// SetDraftImage attaches an image reference to the draft.
func (f *TemplateForm) SetDraftImage(image string) {
	f.draft.Image = &image
}

// CreateTemplate appends the draft to the store and selects it. The draft
// needs non-empty text; the image stays optional.
func (f *TemplateForm) CreateTemplate(ctx context.Context) (string, error) {
	if f.draft.Text == "" {
		return "", ErrTextRequired
	}

	t := f.draft
	id, err := f.store.Append(ctx, &t)
	if err != nil {
		return "", err
	}

	f.selected = &t
	f.draft = flow.Template{}
	return id, nil
}

// Submit validates and appends a new Template node, or patches the node
// under edit.
func (f *TemplateForm) Submit() (string, error) {
	if err := f.checkOpen(); err != nil {
		return "", err
	}
	if f.selected == nil {
		return "", ErrTemplateRequired
	}

	return f.submit(flow.KindAction, flow.TemplateData{Template: *f.selected})
}

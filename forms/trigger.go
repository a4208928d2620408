package forms

import "github.com/meikuraledutech/flow"

// TriggerForm builds or edits a trigger node: a sub-type plus at least one
// target platform.
type TriggerForm struct {
	form
	triggerType flow.DataType
	platforms   []flow.Platform
}

func NewTriggerForm(doc *flow.Document, sessions *flow.Sessions) *TriggerForm {
	return &TriggerForm{form: newForm(doc, sessions)}
}

// Select resolves the picked trigger sub-type and moves into Editing.
func (f *TriggerForm) Select(label string) error {
	opt, ok := flow.TriggerOption(label)
	if !ok {
		return ErrUnknownOption
	}
	t, ok := flow.TriggerType(label)
	if !ok {
		return ErrUnknownOption
	}
	f.option = opt
	f.triggerType = t
	f.state = Editing
	return nil
}

// Hydrate pre-fills every field from an edit session and enters Editing
// directly. Returns ErrWrongForm unless the session holds trigger data.
func (f *TriggerForm) Hydrate(sess *flow.EditSession) error {
	d, ok := sess.Data.(flow.TriggerData)
	if !sess.IsTrigger || !ok {
		return ErrWrongForm
	}
	f.hydrate(sess)
	f.triggerType = d.Type
	f.platforms = append([]flow.Platform(nil), d.Platforms...)
	return nil
}

// ResetPlatforms clears the platform selection.
func (f *TriggerForm) ResetPlatforms() {
	f.platforms = nil
}

// TogglePlatform adds the platform to the selection, or removes it when
// already selected.
func (f *TriggerForm) TogglePlatform(label string) error {
	p, ok := flow.PlatformByLabel(label)
	if !ok {
		return ErrUnknownOption
	}

	for i, sel := range f.platforms {
		if sel.Label == p.Label {
			f.platforms = append(f.platforms[:i], f.platforms[i+1:]...)
			return nil
		}
	}
	f.platforms = append(f.platforms, p)
	return nil
}

// Selected reports whether the platform is currently picked.
func (f *TriggerForm) Selected(label string) bool {
	for _, sel := range f.platforms {
		if sel.Label == label {
			return true
		}
	}
	return false
}

type triggerSubmission struct {
	Platforms []flow.Platform `validate:"required,min=1"`
}

// Submit validates and appends a new trigger node, or patches the node
// under edit.
func (f *TriggerForm) Submit() (string, error) {
	if err := f.checkOpen(); err != nil {
		return "", err
	}

	sub := triggerSubmission{Platforms: f.platforms}
	if err := validate.Struct(sub); err != nil {
		return "", ErrPlatformRequired
	}

	return f.submit(flow.KindTrigger, flow.TriggerData{
		Type:      f.triggerType,
		Platforms: append([]flow.Platform(nil), f.platforms...),
	})
}

package forms

import "github.com/meikuraledutech/flow"

// EmailForm builds or edits an Email action node.
type EmailForm struct {
	form
	to      string
	subject string
	message string
}

func NewEmailForm(doc *flow.Document, sessions *flow.Sessions) *EmailForm {
	return &EmailForm{form: newForm(doc, sessions)}
}

// Select resolves the picked action option and moves into Editing.
func (f *EmailForm) Select(label string) error {
	opt, ok := flow.ActionOption(label)
	if !ok || opt.Label != "Email" {
		return ErrUnknownOption
	}
	f.option = opt
	f.state = Editing
	return nil
}

// Hydrate pre-fills every field from an edit session and enters Editing
// directly. Returns ErrWrongForm unless the session holds email data.
func (f *EmailForm) Hydrate(sess *flow.EditSession) error {
	d, ok := sess.Data.(flow.EmailData)
	if sess.IsTrigger || !ok {
		return ErrWrongForm
	}
	f.hydrate(sess)
	f.to = d.To
	f.subject = d.Subject
	f.message = d.Message
	return nil
}

func (f *EmailForm) SetTo(to string)           { f.to = to }
func (f *EmailForm) SetSubject(subject string) { f.subject = subject }
func (f *EmailForm) SetMessage(message string) { f.message = message }

type emailSubmission struct {
	To      string `validate:"required,flow_email"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

// Submit validates and appends a new Email node, or patches the node under
// edit. A missing field and a malformed address fail with distinct errors;
// missing fields win when both apply.
func (f *EmailForm) Submit() (string, error) {
	if err := f.checkOpen(); err != nil {
		return "", err
	}

	sub := emailSubmission{To: f.to, Subject: f.subject, Message: f.message}
	if err := validate.Struct(sub); err != nil {
		if hasTag(err, "required") {
			return "", ErrFieldsMissing
		}
		return "", ErrInvalidEmail
	}

	return f.submit(flow.KindAction, flow.EmailData{
		To:      f.to,
		Subject: f.subject,
		Message: f.message,
	})
}

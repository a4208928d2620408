// Package forms implements the node creation/edit dialogs as one state
// machine shape with four instances: Trigger, Reply, Email and Template.
// A form mutates only its own fields until Submit, which either appends a
// new node to the document or patches the node named by the active edit
// session. Cancel closes the form and clears the session without touching
// the document.
package forms

import (
	"errors"

	"github.com/meikuraledutech/flow"
)

// State of a form. Entry is Idle; Open moves to Selecting; picking a
// sub-type (or hydrating from an edit session) moves to Editing.
type State string

const (
	Idle      State = "idle"
	Selecting State = "selecting"
	Editing   State = "editing"
	Submitted State = "submitted"
	Cancelled State = "cancelled"
)

var (
	ErrNotEditing       = errors.New("forms: form is not open for editing")
	ErrOptionRequired   = errors.New("forms: select an option before creating a node")
	ErrUnknownOption    = errors.New("forms: unknown option")
	ErrInputRequired    = errors.New("forms: reply input is required")
	ErrModelRequired    = errors.New("forms: select an AI model")
	ErrFieldsMissing    = errors.New("forms: all email fields are required")
	ErrInvalidEmail     = errors.New("forms: invalid email address")
	ErrTemplateRequired = errors.New("forms: select a template")
	ErrTextRequired     = errors.New("forms: template text is required")
	ErrUnknownTemplate  = errors.New("forms: template not found")
	ErrPlatformRequired = errors.New("forms: select at least one platform")
	ErrWrongForm        = errors.New("forms: edit session does not belong to this form")
)

// form is the shared state machine core embedded by every form.
type form struct {
	state    State
	doc      *flow.Document
	sessions *flow.Sessions
	session  *flow.EditSession
	option   flow.Option
	position flow.Position
}

func newForm(doc *flow.Document, sessions *flow.Sessions) form {
	return form{state: Idle, doc: doc, sessions: sessions}
}

// State reports where the form is in its lifecycle.
func (f *form) State() State { return f.state }

// Open moves the form from a closed state into Selecting.
func (f *form) Open() {
	f.state = Selecting
}

// SetPosition places the node the form will create. Updates keep the
// node's existing position regardless.
func (f *form) SetPosition(pos flow.Position) {
	f.position = pos
}

// Editing reports whether the form is updating an existing node.
func (f *form) Editing() bool { return f.session != nil }

// hydrate loads an edit session and jumps straight to Editing, skipping
// Selecting.
func (f *form) hydrate(sess *flow.EditSession) {
	s := *sess
	f.session = &s
	f.option = sess.Option
	f.state = Editing
}

// submit performs the submission effect: AddNode when no edit session is
// active, UpdateNode otherwise. Either path closes the form and clears
// the session. Returns the node ID.
func (f *form) submit(kind flow.NodeKind, data flow.NodeData) (string, error) {
	payload := flow.Payload{Option: f.option, Data: data}

	if f.session != nil {
		id := f.session.NodeID
		if err := f.doc.UpdateNode(id, payload); err != nil {
			return "", err
		}
		f.sessions.Release(id)
		f.session = nil
		f.state = Submitted
		return id, nil
	}

	id, err := f.doc.AddNode(flow.Node{
		Kind:     kind,
		Position: f.position,
		Data:     payload,
	})
	if err != nil {
		return "", err
	}
	f.state = Submitted
	return id, nil
}

// Cancel closes the form and clears the edit session without mutating the
// node list, regardless of how much of the form was filled.
func (f *form) Cancel() {
	if f.session != nil {
		f.sessions.Release(f.session.NodeID)
		f.session = nil
	}
	f.state = Cancelled
}

// checkOpen gates Submit: a form that never reached Editing either wasn't
// opened at all or still waits on a sub-type selection.
func (f *form) checkOpen() error {
	switch f.state {
	case Editing:
		return nil
	case Selecting:
		return ErrOptionRequired
	default:
		return ErrNotEditing
	}
}

package controller

import "errors"

// FormState is the visibility state of a resource form.
type FormState int

const (
	FormHidden FormState = iota
	FormCreating
	FormEditingOwner // employee editing status of their own task
	FormEditingAdmin // PM editing all fields
)

// String returns a short label for logging and tests.
func (s FormState) String() string {
	switch s {
	case FormHidden:
		return "hidden"
	case FormCreating:
		return "creating"
	case FormEditingOwner:
		return "editing-owner"
	case FormEditingAdmin:
		return "editing-admin"
	}
	return "unknown"
}

// Visible reports whether the form should be on screen.
func (s FormState) Visible() bool {
	return s != FormHidden
}

// ErrFormBusy is returned when a create/edit transition is attempted while
// the form is already open.
var ErrFormBusy = errors.New("form is already open")

// Form is the show/hide state machine each resource view drives. Legal
// transitions are Hidden→Creating→Hidden and Hidden→Editing*→Hidden; the
// editing entry happens only after the record has been loaded, so a form
// can never open onto missing data.
type Form struct {
	state FormState
}

// State returns the current form state.
func (f *Form) State() FormState {
	return f.state
}

// BeginCreate opens the form for a new record.
func (f *Form) BeginCreate() error {
	if f.state != FormHidden {
		return ErrFormBusy
	}
	f.state = FormCreating
	return nil
}

// BeginEdit opens the form on an existing record. admin selects the
// full-field PM edit; otherwise the owner (status-only) edit.
func (f *Form) BeginEdit(admin bool) error {
	if f.state != FormHidden {
		return ErrFormBusy
	}
	if admin {
		f.state = FormEditingAdmin
	} else {
		f.state = FormEditingOwner
	}
	return nil
}

// Close returns the form to hidden, after a successful save or a cancel.
// A failed save does not call Close: the form stays open with the user's
// values intact so they can correct and resubmit.
func (f *Form) Close() {
	f.state = FormHidden
}

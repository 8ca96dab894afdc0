// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

package uiadapters

import (
	"github.com/fiderosado/cuba-payment-inputs/core/cardtype"
	"github.com/fiderosado/cuba-payment-inputs/core/format"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/core/state"
)

// Labels supplies translated field texts; *i18n.Catalog implements it.
type Labels interface {
	Label(f model.FieldID) string
	Placeholder(f model.FieldID) string
	AriaLabel(f model.FieldID) string
	Message(code model.ErrorCode) string
}

// InputProps describe one input widget.
type InputProps struct {
	ID           string
	Name         string
	Type         string
	AutoComplete string
	InputMode    string
	Label        string
	Placeholder  string
	AriaLabel    string
	// MaxLength counts formatted characters, separators included.
	MaxLength int
	Value     string
	Invalid   bool
	ErrorText string
	Focused   bool
}

// Meta summarises the form for a status line.
type Meta struct {
	CardType      *cardtype.CardType
	Error         string
	ErroredInputs map[model.FieldID]string
	TouchedInputs map[model.FieldID]bool
	IsTouched     bool
	Complete      bool
}

var autoComplete = map[model.FieldID]string{
	model.FieldCardNumber: "cc-number",
	model.FieldExpiryDate: "cc-exp",
	model.FieldCVC:        "cc-csc",
	model.FieldZIP:        "postal-code",
}

// Form adapts one session.
type Form struct {
	session *state.Session
	labels  Labels
}

// NewForm wraps ss. labels may be nil, in which case texts stay empty.
func NewForm(ss *state.Session, labels Labels) *Form {
	return &Form{session: ss, labels: labels}
}

// Session is the wrapped session.
func (f *Form) Session() *state.Session { return f.session }

// Props returns the current properties of field.
func (f *Form) Props(field model.FieldID) InputProps {
	s := f.session.State()
	code := s.VisibleError(field)
	p := InputProps{
		ID:           string(field),
		Name:         string(field),
		Type:         "tel",
		AutoComplete: autoComplete[field],
		InputMode:    "numeric",
		MaxLength:    MaxLength(field, s.CardType()),
		Value:        s.Value(field),
		Invalid:      !code.Ok(),
		ErrorText:    f.session.Machine().ErrorText(code),
		Focused:      s.Focused() == field,
	}
	if f.labels != nil {
		p.Label = f.labels.Label(field)
		p.Placeholder = f.labels.Placeholder(field)
		p.AriaLabel = f.labels.AriaLabel(field)
	}
	return p
}

// Meta summarises the session.
func (f *Form) Meta() Meta {
	s := f.session.State()
	m := Meta{
		CardType:      s.CardType(),
		ErroredInputs: make(map[model.FieldID]string),
		TouchedInputs: make(map[model.FieldID]bool),
		IsTouched:     s.IsTouched(),
		Complete:      s.Complete(),
	}
	for _, field := range model.Fields {
		m.TouchedInputs[field] = s.IsFieldTouched(field)
		if code := s.VisibleError(field); !code.Ok() {
			m.ErroredInputs[field] = f.session.Machine().ErrorText(code)
		}
	}
	if _, code := s.FirstError(); !code.Ok() {
		m.Error = f.session.Machine().ErrorText(code)
	}
	return m
}

// MaxLength is the formatted length cap of a field for the detected type.
func MaxLength(field model.FieldID, ct *cardtype.CardType) int {
	switch field {
	case model.FieldCardNumber:
		if ct == nil {
			return cardtype.GenericMaxLength
		}
		return ct.MaxLength() + len(ct.Gaps)
	case model.FieldExpiryDate:
		return len("MM" + format.ExpirySeparator + "YY")
	case model.FieldCVC:
		return format.CVCLimit(ct)
	case model.FieldZIP:
		return format.MaxZIPLength
	}
	return 0
}

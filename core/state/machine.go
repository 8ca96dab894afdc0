// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.
package state

import (
	"time"
	"unicode/utf8"

	clog "github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/fiderosado/cuba-payment-inputs/core/cardtype"
	"github.com/fiderosado/cuba-payment-inputs/core/format"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/core/validate"
	"github.com/fiderosado/cuba-payment-inputs/internal/logging"
)

// Machine is the immutable configuration of a payment form. It is safe to
// share between sessions.
type Machine struct {
	autoFocus  bool
	messages   map[model.ErrorCode]string
	source     MessageSource
	validators validate.Validators
	registry   *cardtype.Registry
	clock      validate.Clock
	log        *clog.Logger
}

// New builds a Machine with auto-focus on, the default registry and the
// wall clock.
func New(opts ...Option) *Machine {
	m := &Machine{
		autoFocus: true,
		registry:  cardtype.Default(),
		clock:     time.Now,
		log:       logging.L,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AutoFocus reports whether focus moves automatically.
func (m *Machine) AutoFocus() bool { return m.autoFocus }

// Registry is the card type registry in use.
func (m *Machine) Registry() *cardtype.Registry { return m.registry }

// Start returns an empty session.
func (m *Machine) Start() State {
	return State{ID: uuid.NewString()}
}

// ErrorText renders a code: caller overrides first, then the message
// source, then the code itself.
func (m *Machine) ErrorText(code model.ErrorCode) string {
	if code.Ok() {
		return ""
	}
	if msg, ok := m.messages[code]; ok {
		return msg
	}
	if m.source != nil {
		if msg := m.source.Message(code); msg != "" {
			return msg
		}
	}
	return code.String()
}

// Handle applies one event. Events for fields outside the form only echo
// their text back.
func (m *Machine) Handle(s State, ev Event) (State, Outcome) {
	if !ev.Field.IsManaged() {
		return s, Outcome{Text: ev.Text, CardType: s.cardType}
	}
	s = s.clone()

	var out Outcome
	switch ev.Kind {
	case model.EventChange:
		out = m.change(&s, ev)
	case model.EventBlur:
		m.blur(&s, ev)
	case model.EventFocus:
		s.focus = ev.Field
	case model.EventKeyDown:
		out.FocusTarget = m.keyDown(&s, ev)
	}

	out.Text = s.values[ev.Field]
	out.Error = s.errors[ev.Field]
	out.CardType = s.cardType
	m.log.Debug("event",
		"session", s.ID,
		"kind", ev.Kind,
		"field", ev.Field,
		"card", typeID(s.cardType),
		"length", len(format.Digits(out.Text)),
		"error", out.Error,
		"focus", s.focus,
	)
	return s, out
}

// TouchAll marks every field touched and revalidates, as a submit does.
func (m *Machine) TouchAll(s State) State {
	s = s.clone()
	for _, f := range model.Fields {
		s.touched[f] = true
		m.revalidate(&s, f)
	}
	return s
}

func (m *Machine) change(s *State, ev Event) Outcome {
	var out Outcome
	f := ev.Field
	prev := s.values[f]
	text := ev.Text

	switch f {
	case model.FieldCardNumber:
		text, out.CursorDelta = format.CardNumber(m.registry, ev.Text, ev.Cursor)
		m.setCardType(s, m.registry.Detect(format.Digits(text)))
	case model.FieldExpiryDate:
		text = format.Expiry(prev, ev.Text)
	case model.FieldCVC:
		text = format.CVC(ev.Text, s.cardType)
	case model.FieldZIP:
		text = format.ZIP(ev.Text)
	}
	if f != model.FieldCardNumber {
		out.CursorDelta = caretDelta(ev, text)
	}
	s.values[f] = text

	complete := m.isComplete(*s, f)
	if (prev != "" && text == "") || complete {
		s.touched[f] = true
	}
	code := m.revalidate(s, f)

	if complete && !s.complete[f] && code.Ok() && m.autoFocus {
		if next := f.Next(); next != model.FieldNone {
			s.focus = next
			out.FocusTarget = next
		}
	}
	if complete && code.Ok() {
		s.complete[f] = true
	} else {
		delete(s.complete, f)
	}
	return out
}

// setCardType records a detection change. The CVC depends on the network,
// so it is trimmed and revalidated when the network changes.
func (m *Machine) setCardType(s *State, ct *cardtype.CardType) {
	if typeID(ct) == typeID(s.cardType) {
		s.cardType = ct
		return
	}
	s.cardType = ct
	cvc := s.values[model.FieldCVC]
	if cvc == "" && !s.touched[model.FieldCVC] {
		return
	}
	s.values[model.FieldCVC] = format.CVC(cvc, ct)
	m.revalidate(s, model.FieldCVC)
	if !m.isComplete(*s, model.FieldCVC) {
		delete(s.complete, model.FieldCVC)
	}
}

func (m *Machine) blur(s *State, ev Event) {
	s.touched[ev.Field] = true
	m.revalidate(s, ev.Field)
	if !ev.Related.IsManaged() {
		s.isTouched = true
		s.focus = model.FieldNone
		return
	}
	if s.focus == ev.Field {
		s.focus = ev.Related
	}
}

func (m *Machine) keyDown(s *State, ev Event) model.FieldID {
	if ev.Key != model.KeyBackspace || !m.autoFocus || s.values[ev.Field] != "" {
		return model.FieldNone
	}
	prev := ev.Field.Prev()
	if prev != model.FieldNone {
		s.focus = prev
	}
	return prev
}

// revalidate recomputes and stores the code of f.
func (m *Machine) revalidate(s *State, f model.FieldID) model.ErrorCode {
	v := s.values[f]
	touched := s.touched[f]

	var code model.ErrorCode
	switch f {
	case model.FieldCardNumber:
		code = validate.CardNumber(format.Digits(v), s.cardType, touched, m.validators.CardNumber)
	case model.FieldExpiryDate:
		code = validate.Expiry(v, touched, m.clock(), m.validators.Expiry)
	case model.FieldCVC:
		code = validate.CVC(v, s.cardType, touched, m.validators.CVC)
	case model.FieldZIP:
		code = validate.ZIP(v, touched, m.validators.ZIP)
	}
	if code.Ok() {
		delete(s.errors, f)
	} else {
		s.errors[f] = code
	}
	return code
}

func (m *Machine) isComplete(s State, f model.FieldID) bool {
	v := s.values[f]
	switch f {
	case model.FieldCardNumber:
		return s.cardType != nil && s.cardType.HasLength(len(format.Digits(v)))
	case model.FieldExpiryDate:
		return format.ParseExpiry(v).Complete()
	case model.FieldCVC:
		want := cardtype.DefaultCVCLength
		if s.cardType != nil {
			want = s.cardType.CodeLength()
		}
		return want > 0 && len(v) == want
	}
	return false
}

// caretDelta keeps a caret that sat at the end of the input at the end of
// the formatted text, and clamps it otherwise.
func caretDelta(ev Event, text string) int {
	n := utf8.RuneCountInString(text)
	if ev.Cursor >= utf8.RuneCountInString(ev.Text) {
		return n - ev.Cursor
	}
	return min(ev.Cursor, n) - ev.Cursor
}

func typeID(ct *cardtype.CardType) string {
	if ct == nil {
		return ""
	}
	return ct.Type
}

// Copyright (c) 2026 Cuba Payment Inputs Team
// cuba-payment-inputs - payment card field formatting and validation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package payment is the card entry screen: the four payment fields, a
// submit button, the detected network and the key help.
package payment

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fiderosado/cuba-payment-inputs/client"
	"github.com/fiderosado/cuba-payment-inputs/core/model"
	"github.com/fiderosado/cuba-payment-inputs/i18n"
	"github.com/fiderosado/cuba-payment-inputs/ui/tui/models/helpers/form"
	forminput "github.com/fiderosado/cuba-payment-inputs/ui/tui/models/helpers/form/input"
	windowtitle "github.com/fiderosado/cuba-payment-inputs/ui/tui/models/helpers/title"
	"github.com/fiderosado/cuba-payment-inputs/ui/tui/util"
	"github.com/fiderosado/cuba-payment-inputs/uiadapters"
)

// SubmitID is the form item id of the submit button.
const SubmitID = "submit"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	badgeStyle  = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	frameStyle  = lipgloss.NewStyle().Padding(1, 1)
)

type Model struct {
	client  client.Client
	catalog *i18n.Catalog
	adapter *uiadapters.Form
	form    *form.Form[client.CardDetails]
	keys    KeyMap
	help    help.Model
	size    util.Size
	title   *windowtitle.TitleHandler
	network string

	status    string
	report    *client.Report
	cancelled bool
}

func New(c client.Client) *Model {
	cat := c.Catalog()
	m := &Model{
		client:  c,
		catalog: cat,
		adapter: uiadapters.NewForm(c.NewSession(), cat),
		keys:    newKeyMap(cat.T("tui.help_quit")),
		help:    help.New(),
		title:   windowtitle.NewHandler(cat.T("tui.title"), " - "),
	}

	submitHelp := cat.T("tui.help_submit")
	field := func(id model.FieldID) form.Item {
		return form.Item{ID: string(id), Input: forminput.NewField(m.adapter, id, submitHelp)}
	}

	m.form = form.New[client.CardDetails](
		form.WithKeyMap[client.CardDetails](form.NewKeyMap(cat.T("tui.help_next"), cat.T("tui.help_prev"))),
		form.WithRow[client.CardDetails](field(model.FieldCardNumber)),
		form.WithRow[client.CardDetails](
			field(model.FieldExpiryDate),
			field(model.FieldCVC),
			field(model.FieldZIP),
		),
		form.WithInput[client.CardDetails](SubmitID, forminput.NewButton(cat.T("tui.submit"), false)),
		form.WithOnSubmit(m.onSubmit),
		form.WithOnCancel[client.CardDetails](m.cancel),
	)
	return m
}

// Prefill types details into the fields before the form is shown.
func (m *Model) Prefill(details client.CardDetails) error {
	return m.form.Set(details)
}

// Report is the accepted card, nil until the form was submitted complete.
func (m *Model) Report() *client.Report { return m.report }

// Cancelled reports whether the user quit without submitting.
func (m *Model) Cancelled() bool { return m.cancelled }

// Adapter exposes the form adapter and through it the session.
func (m *Model) Adapter() *uiadapters.Form { return m.adapter }

// Active is the id of the focused item.
func (m *Model) Active() string { return m.form.Active() }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.title.Init(), m.form.Init(), m.form.Focus(), m.trackNetwork(), textinput.Blink)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return m, nil
	}
	if cmd, ok := m.title.Handle(msg); ok {
		return m, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(kmsg, m.keys.Quit) {
			return m, m.cancel()
		}
		m.status = ""
	}

	cmd := m.form.Update(msg)
	return m, tea.Batch(cmd, m.trackNetwork())
}

// trackNetwork retitles the window when the detected network changes.
func (m *Model) trackNetwork() tea.Cmd {
	name := ""
	if ct := m.adapter.Session().State().CardType(); ct != nil {
		name = ct.DisplayName
	}
	if name == m.network {
		return nil
	}
	m.network = name
	return windowtitle.Set(name)
}

func (m *Model) View() string {
	width := m.size.Inner(frameStyle.GetHorizontalPadding(), 48)
	meta := m.adapter.Meta()

	badge := m.catalog.T("tui.unknown_card")
	if meta.CardType != nil {
		badge = meta.CardType.DisplayName
	}
	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		titleStyle.Render(m.catalog.T("tui.title")),
		"  ",
		badgeStyle.Render(badge),
	)

	status := " "
	switch {
	case m.status != "" && m.report != nil:
		status = statusStyle.Render(m.status)
	case m.status != "":
		status = errorStyle.Render(m.status)
	case meta.IsTouched && meta.Error != "":
		status = errorStyle.Render(meta.Error)
	}

	return frameStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		m.form.View(width),
		status,
		m.help.View(util.MergeKeyMaps(m.form.KeyMap(), m.keys)),
	))
}

var _ tea.Model = (*Model)(nil)

func (m *Model) onSubmit(details client.CardDetails, err error) tea.Cmd {
	if err != nil {
		m.status = err.Error()
		return nil
	}

	ss := m.adapter.Session()
	if !ss.Submit() {
		m.status = m.catalog.T("tui.incomplete")
		if field, code := ss.State().FirstError(); !code.Ok() {
			return m.form.FocusID(string(field))
		}
		return nil
	}

	report := m.client.Check(details)
	m.report = &report

	name := m.catalog.T("tui.unknown_card")
	if ct := ss.State().CardType(); ct != nil {
		name = ct.DisplayName
	}
	m.status = m.catalog.T("tui.submitted", name, report.LastFour())
	return tea.Quit
}

func (m *Model) cancel() tea.Cmd {
	m.cancelled = true
	return tea.Quit
}

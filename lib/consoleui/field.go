// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessera-admin/tessera/lib/form"
)

const fieldInputWidth = 40

// widget is one focusable element of a form screen. Implementations
// keep the backing form.Form in sync on every edit so validity is
// always current.
type widget interface {
	Name() string
	Focus()
	Blur()
	Update(msg tea.Msg) tea.Cmd
	View(theme Theme, focused bool) string
}

// inputField binds a bubbles text input to one form field.
type inputField struct {
	name  string
	label string
	form  *form.Form
	input textinput.Model
}

func newInputField(f *form.Form, name, label, placeholder string) *inputField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.CharLimit = 120
	input.Width = fieldInputWidth
	return &inputField{name: name, label: label, form: f, input: input}
}

func newPasswordField(f *form.Form, name, label string) *inputField {
	field := newInputField(f, name, label, "")
	field.input.EchoMode = textinput.EchoPassword
	field.input.EchoCharacter = '*'
	return field
}

func (f *inputField) Name() string { return f.name }

func (f *inputField) Focus() {
	f.input.Focus()
}

func (f *inputField) Blur() {
	f.input.Blur()
	f.form.Touch(f.name)
}

// SetText loads a value into both the widget and the form, for
// populating edit screens from a fetched record.
func (f *inputField) SetText(value string) {
	f.input.SetValue(value)
	f.form.SetValue(f.name, value)
}

func (f *inputField) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != f.form.Value(f.name) {
		f.form.SetValue(f.name, f.input.Value())
	}
	return cmd
}

func (f *inputField) View(theme Theme, focused bool) string {
	return renderField(theme, f.label, f.input.View(), focused, f.form.Field(f.name))
}

// selectField cycles through a fixed option list with the left and
// right arrow keys. Used for enumerated inputs such as gender.
type selectField struct {
	name    string
	label   string
	form    *form.Form
	options []string
	index   int
}

func newSelectField(f *form.Form, name, label string, options []string) *selectField {
	field := &selectField{name: name, label: label, form: f, options: options, index: -1}
	return field
}

func (f *selectField) Name() string { return f.name }
func (f *selectField) Focus()       {}

func (f *selectField) Blur() {
	f.form.Touch(f.name)
}

// SetText selects the option matching the value, if any.
func (f *selectField) SetText(value string) {
	f.index = -1
	for i, option := range f.options {
		if option == value {
			f.index = i
			break
		}
	}
	f.form.SetValue(f.name, value)
}

func (f *selectField) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "left", "h":
		if f.index <= 0 {
			f.index = len(f.options) - 1
		} else {
			f.index--
		}
	case "right", "l", " ":
		f.index = (f.index + 1) % len(f.options)
	default:
		return nil
	}
	f.form.SetValue(f.name, f.options[f.index])
	return nil
}

func (f *selectField) View(theme Theme, focused bool) string {
	selected := "(none)"
	if f.index >= 0 {
		selected = f.options[f.index]
	}
	display := "◂ " + selected + " ▸"
	return renderField(theme, f.label, display, focused, f.form.Field(f.name))
}

// displayField renders a read-only derived value, such as the
// computed age. It never takes focus.
type displayField struct {
	name  string
	label string
	form  *form.Form
}

func newDisplayField(f *form.Form, name, label string) *displayField {
	return &displayField{name: name, label: label, form: f}
}

func (f *displayField) Name() string              { return f.name }
func (f *displayField) Focus()                    {}
func (f *displayField) Blur()                     {}
func (f *displayField) Update(msg tea.Msg) tea.Cmd { return nil }

func (f *displayField) View(theme Theme, focused bool) string {
	value := f.form.Value(f.name)
	if value == "" {
		value = "-"
	}
	label := lipgloss.NewStyle().Foreground(theme.LabelForeground).Width(16).Render(f.label)
	body := lipgloss.NewStyle().Foreground(theme.FaintText).Render(value)
	return label + " " + body
}

func renderField(theme Theme, label, body string, focused bool, field *form.Field) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.LabelForeground).Width(16)
	if focused {
		labelStyle = labelStyle.Foreground(theme.FocusedForeground).Bold(true)
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(label))
	b.WriteString(" ")
	b.WriteString(body)

	if field != nil && field.Touched() {
		if problem := field.Problem(); problem != "" {
			b.WriteString("\n")
			b.WriteString(strings.Repeat(" ", 17))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorForeground).Render(problem))
		}
	}
	return b.String()
}

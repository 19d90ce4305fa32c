// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmOutcome is the caller-visible result of a confirmation
// dialog. The zero value means the dialog is still open.
type confirmOutcome int

const (
	confirmPending confirmOutcome = iota
	confirmAccepted
	confirmCancelled
)

// confirmDialog is a modal yes/no prompt. The cancel action starts
// selected so a reflexive Enter never destroys anything. Callers read
// the outcome after each Update and act only on an explicit answer.
type confirmDialog struct {
	title   string
	message string
	accept  string
	cancel  string

	acceptSelected bool
	outcome        confirmOutcome
}

func newConfirmDialog(title, message, accept, cancel string) *confirmDialog {
	return &confirmDialog{
		title:   title,
		message: message,
		accept:  accept,
		cancel:  cancel,
	}
}

// Outcome returns the dialog's answer, confirmPending while open.
func (d *confirmDialog) Outcome() confirmOutcome { return d.outcome }

func (d *confirmDialog) Update(msg tea.Msg) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || d.outcome != confirmPending {
		return
	}
	switch keyMsg.String() {
	case "left", "right", "tab", "shift+tab", "h", "l":
		d.acceptSelected = !d.acceptSelected
	case "enter":
		if d.acceptSelected {
			d.outcome = confirmAccepted
		} else {
			d.outcome = confirmCancelled
		}
	case "esc":
		d.outcome = confirmCancelled
	case "y":
		d.outcome = confirmAccepted
	case "n":
		d.outcome = confirmCancelled
	}
}

func (d *confirmDialog) View(theme Theme) string {
	button := func(label string, selected bool) string {
		style := lipgloss.NewStyle().Padding(0, 2)
		if selected {
			style = style.
				Background(theme.SelectedBackground).
				Foreground(theme.SelectedForeground).
				Bold(true)
		} else {
			style = style.Foreground(theme.FaintText)
		}
		return style.Render(label)
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button(d.cancel, !d.acceptSelected),
		"  ",
		button(d.accept, d.acceptSelected),
	)

	body := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Foreground(theme.ModalForeground).Render(d.title),
		"",
		lipgloss.NewStyle().Foreground(theme.ModalForeground).Render(d.message),
		"",
		buttons,
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Background(theme.ModalBackground).
		Padding(1, 3).
		Render(body)
}

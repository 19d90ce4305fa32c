// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessera-admin/tessera/lib/form"
	"github.com/tessera-admin/tessera/lib/secret"
)

// loginScreen collects company code, username, and password, and
// exchanges them for a bearer token. A successful sign-in persists
// the token and routes to the dashboard.
type loginScreen struct {
	app     *App
	form    *form.Form
	fields  []*inputField
	focus   int
	waiting bool

	// Top-of-form summary from the last failed submission.
	serverMessage string
}

type loginDoneMsg struct {
	token string
	err   error
}

func newLoginScreen(app *App) *loginScreen {
	f := form.New()
	f.Add("companyCode", form.Required(), form.MinLen(2), form.MaxLen(50))
	f.Add("username", form.Required(), form.MinLen(2), form.MaxLen(50))
	f.Add("password", form.Required(), form.MinLen(8), form.MaxLen(50))

	s := &loginScreen{app: app, form: f}
	s.fields = []*inputField{
		newInputField(f, "companyCode", "Company Code", "acme"),
		newInputField(f, "username", "Username", ""),
		newPasswordField(f, "password", "Password"),
	}
	s.fields[0].Focus()
	return s
}

func (s *loginScreen) Init() tea.Cmd { return nil }

func (s *loginScreen) moveFocus(delta int) {
	s.fields[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.fields)) % len(s.fields)
	s.fields[s.focus].Focus()
}

func (s *loginScreen) submit() tea.Cmd {
	s.form.TouchAll()
	if !s.form.Valid() {
		return nil
	}
	s.waiting = true
	s.serverMessage = ""

	backend := s.app.backend
	logger := s.app.logger
	companyCode := s.form.Value("companyCode")
	username := s.form.Value("username")
	password := s.form.Value("password")

	return func() tea.Msg {
		buffer, err := secret.NewFromString(password)
		if err != nil {
			return loginDoneMsg{err: fmt.Errorf("consoleui: sealing password: %w", err)}
		}
		defer buffer.Close()

		response, err := backend.Login(context.Background(), companyCode, username, buffer)
		if err != nil {
			logger.Warn("login failed", "company", companyCode, "user", username, "error", err)
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{token: response.Token}
	}
}

func (s *loginScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginDoneMsg:
		s.waiting = false
		if msg.err != nil {
			s.serverMessage = s.form.ApplyServerErrors(msg.err)
			return nil
		}
		if err := s.app.session.SetToken(msg.token); err != nil {
			s.app.logger.Error("failed to persist session", "error", err)
			s.serverMessage = "Could not save the session. Check the configuration directory."
			return nil
		}
		return navigateCmd(PathDashboard)

	case tea.KeyMsg:
		if s.waiting {
			return nil
		}
		switch msg.String() {
		case "tab", "down":
			s.moveFocus(1)
			return nil
		case "shift+tab", "up":
			s.moveFocus(-1)
			return nil
		case "enter":
			if s.focus == len(s.fields)-1 {
				return s.submit()
			}
			s.moveFocus(1)
			return nil
		case "ctrl+s":
			return s.submit()
		case "ctrl+r":
			return navigateCmd(PathRegister)
		}
	}

	return s.fields[s.focus].Update(msg)
}

func (s *loginScreen) View(width int) string {
	theme := s.app.theme
	var b strings.Builder

	if s.serverMessage != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorForeground).Render(s.serverMessage))
		b.WriteString("\n\n")
	}

	for i, field := range s.fields {
		b.WriteString(field.View(theme, i == s.focus))
		b.WriteString("\n")
	}

	status := "enter sign in  ·  ctrl+r register"
	if s.waiting {
		status = "signing in..."
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).Render(status))
	return b.String()
}

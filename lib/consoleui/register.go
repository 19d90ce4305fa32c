// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessera-admin/tessera/lib/api"
	"github.com/tessera-admin/tessera/lib/form"
	"github.com/tessera-admin/tessera/lib/secret"
)

// registerScreen is the two-step company registration wizard. Step
// one collects the company profile, step two the initial admin
// account. Moving forward requires a clean first step; moving back
// keeps everything typed so far. The backend sees one combined
// submission at the end.
type registerScreen struct {
	app  *App
	form *form.Form

	step    int
	fields  [2][]*inputField
	focus   int
	waiting bool

	serverMessage string
}

type registerDoneMsg struct {
	err error
}

func newRegisterScreen(app *App) *registerScreen {
	f := form.New()
	f.Add("companyCode", form.Required(), form.MinLen(2), form.MaxLen(50))
	f.Add("companyName", form.Required(), form.MinLen(2), form.MaxLen(50))
	f.Add("companyEmail", form.Required(), form.Email())
	f.Add("adminUsername", form.Required(), form.MinLen(2), form.MaxLen(50))
	f.Add("adminEmail", form.Required(), form.Email())
	f.Add("adminPassword", form.Required(), form.MinLen(8), form.MaxLen(50))

	s := &registerScreen{app: app, form: f}
	s.fields[0] = []*inputField{
		newInputField(f, "companyCode", "Company Code", "acme"),
		newInputField(f, "companyName", "Company Name", ""),
		newInputField(f, "companyEmail", "Company Email", "info@example.com"),
	}
	// Field names follow the wire payload so server field errors
	// attach to the field they name.
	s.fields[1] = []*inputField{
		newInputField(f, "adminUsername", "Admin Username", ""),
		newInputField(f, "adminEmail", "Admin Email", ""),
		newPasswordField(f, "adminPassword", "Admin Password"),
	}
	s.fields[0][0].Focus()
	return s
}

func (s *registerScreen) Init() tea.Cmd { return nil }

func (s *registerScreen) current() []*inputField { return s.fields[s.step] }

func (s *registerScreen) moveFocus(delta int) {
	fields := s.current()
	fields[s.focus].Blur()
	s.focus = (s.focus + delta + len(fields)) % len(fields)
	fields[s.focus].Focus()
}

func (s *registerScreen) switchStep(step int) {
	s.current()[s.focus].Blur()
	s.step = step
	s.focus = 0
	s.current()[s.focus].Focus()
}

// stepClean reports whether every field of the given step currently
// shows no problem, marking them touched so violations surface.
func (s *registerScreen) stepClean(step int) bool {
	clean := true
	for _, field := range s.fields[step] {
		s.form.Touch(field.Name())
		if s.form.Field(field.Name()).Problem() != "" {
			clean = false
		}
	}
	return clean
}

func (s *registerScreen) next() {
	if s.stepClean(0) {
		s.switchStep(1)
	}
}

func (s *registerScreen) submit() tea.Cmd {
	s.form.TouchAll()
	if !s.form.Valid() {
		if !s.stepClean(s.step) {
			return nil
		}
		// The violation lives on the other step; surface it here.
		for _, field := range s.form.Fields() {
			if problem := field.Problem(); problem != "" {
				s.serverMessage = problem
				return nil
			}
		}
		return nil
	}
	s.waiting = true
	s.serverMessage = ""

	backend := s.app.backend
	logger := s.app.logger
	request := api.RegisterRequest{
		CompanyCode:   s.form.Value("companyCode"),
		CompanyName:   s.form.Value("companyName"),
		CompanyEmail:  s.form.Value("companyEmail"),
		AdminUsername: s.form.Value("adminUsername"),
		AdminEmail:    s.form.Value("adminEmail"),
	}
	password := s.form.Value("adminPassword")

	return func() tea.Msg {
		buffer, err := secret.NewFromString(password)
		if err != nil {
			return registerDoneMsg{err: fmt.Errorf("consoleui: sealing password: %w", err)}
		}
		defer buffer.Close()
		request.AdminPassword = buffer

		if err := backend.RegisterTenant(context.Background(), request); err != nil {
			logger.Warn("registration failed", "company", request.CompanyCode, "error", err)
			return registerDoneMsg{err: err}
		}
		return registerDoneMsg{}
	}
}

func (s *registerScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case registerDoneMsg:
		s.waiting = false
		if msg.err != nil {
			s.serverMessage = s.form.ApplyServerErrors(msg.err)
			// Flagged company fields live on step one; bring the
			// wizard back there when that is where the problem is.
			if s.step == 1 && !s.fields0Clean() {
				s.switchStep(0)
			}
			return nil
		}
		return navigateCmd(PathLogin)

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
			if s.focus == len(s.current())-1 {
				if s.step == 0 {
					s.next()
					return nil
				}
				return s.submit()
			}
			s.moveFocus(1)
			return nil
		case "ctrl+s":
			if s.step == 0 {
				s.next()
				return nil
			}
			return s.submit()
		case "esc":
			if s.step == 1 {
				s.switchStep(0)
				return nil
			}
			return navigateCmd(PathLogin)
		}
	}

	return s.current()[s.focus].Update(msg)
}

func (s *registerScreen) fields0Clean() bool {
	for _, field := range s.fields[0] {
		if s.form.Field(field.Name()).Problem() != "" {
			return false
		}
	}
	return true
}

func (s *registerScreen) View(width int) string {
	theme := s.app.theme
	var b strings.Builder

	stepLabel := "Step 1 of 2: Company"
	if s.step == 1 {
		stepLabel = "Step 2 of 2: Admin Account"
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.NormalText).Render(stepLabel))
	b.WriteString("\n\n")

	if s.serverMessage != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorForeground).Render(s.serverMessage))
		b.WriteString("\n\n")
	}

	for i, field := range s.current() {
		b.WriteString(field.View(theme, i == s.focus))
		b.WriteString("\n")
	}

	var status string
	switch {
	case s.waiting:
		status = "registering..."
	case s.step == 0:
		status = "enter next  ·  esc back to sign in"
	default:
		status = "enter register  ·  esc previous step"
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).Render(status))
	return b.String()
}

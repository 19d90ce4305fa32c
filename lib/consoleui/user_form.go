// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessera-admin/tessera/lib/api"
	"github.com/tessera-admin/tessera/lib/form"
)

// userFormScreen creates or edits one staff account. The password is
// create-only: the edit variant neither shows the field nor submits
// the value. Every submission carries role ADMIN and status ACTIVE;
// the backend offers no role or status choice to this console.
type userFormScreen struct {
	app  *App
	form *form.Form
	id   int64

	widgets []widget
	focus   int
	waiting bool
	loading bool

	serverMessage string
}

type userLoadedMsg struct {
	user *api.User
	err  error
}

type userSavedMsg struct {
	err error
}

func newUserFormScreen(app *App, id int64) *userFormScreen {
	f := form.New()
	f.Add("email", form.Required(), form.Email())
	f.Add("username", form.Required(), form.MinLen(2), form.MaxLen(50))
	f.Add("password", form.Required(), form.MinLen(8), form.MaxLen(50))

	s := &userFormScreen{app: app, form: f, id: id, loading: id != 0}
	s.widgets = []widget{
		newInputField(f, "email", "Email", ""),
		newInputField(f, "username", "Username", ""),
	}
	if id == 0 {
		s.widgets = append(s.widgets, newPasswordField(f, "password", "Password"))
	} else {
		// No password on edit, in the form state as well as the view.
		f.SetRules("password")
	}
	s.widgets[0].Focus()
	return s
}

func (s *userFormScreen) Init() tea.Cmd {
	if s.id == 0 {
		return nil
	}
	backend := s.app.backend
	id := s.id
	return func() tea.Msg {
		user, err := backend.GetUser(context.Background(), id)
		return userLoadedMsg{user: user, err: err}
	}
}

func (s *userFormScreen) moveFocus(delta int) {
	s.widgets[s.focus].Blur()
	s.focus = (s.focus + delta + len(s.widgets)) % len(s.widgets)
	s.widgets[s.focus].Focus()
}

func (s *userFormScreen) submit() tea.Cmd {
	s.form.TouchAll()
	if !s.form.Valid() {
		return nil
	}
	s.waiting = true
	s.serverMessage = ""

	user := api.User{
		ID:       s.id,
		Email:    s.form.Value("email"),
		Username: s.form.Value("username"),
		Role:     api.RoleAdmin,
		Status:   api.StatusActive,
	}
	if s.id == 0 {
		user.Password = s.form.Value("password")
	}

	backend := s.app.backend
	return func() tea.Msg {
		var err error
		if user.ID == 0 {
			_, err = backend.CreateUser(context.Background(), user)
		} else {
			_, err = backend.UpdateUser(context.Background(), user)
		}
		return userSavedMsg{err: err}
	}
}

func (s *userFormScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case userLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.app.logger.Warn("user fetch failed", "id", s.id, "error", api.Message(msg.err))
			s.serverMessage = api.Message(msg.err)
			return nil
		}
		for _, w := range s.widgets {
			field, ok := w.(*inputField)
			if !ok {
				continue
			}
			switch field.Name() {
			case "email":
				field.SetText(msg.user.Email)
			case "username":
				field.SetText(msg.user.Username)
			}
		}
		return nil

	case userSavedMsg:
		s.waiting = false
		if msg.err != nil {
			s.serverMessage = s.form.ApplyServerErrors(msg.err)
			return nil
		}
		return navigateCmd(PathUsers)

	case tea.KeyMsg:
		if s.waiting || s.loading {
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
			if s.focus == len(s.widgets)-1 {
				return s.submit()
			}
			s.moveFocus(1)
			return nil
		case "ctrl+s":
			return s.submit()
		case "ctrl+r":
			s.form.Reset()
			for _, w := range s.widgets {
				if field, ok := w.(*inputField); ok {
					field.SetText("")
				}
			}
			s.serverMessage = ""
			return nil
		case "esc":
			return navigateCmd(PathUsers)
		}
	}

	return s.widgets[s.focus].Update(msg)
}

func (s *userFormScreen) View(width int) string {
	theme := s.app.theme
	var b strings.Builder

	if s.loading {
		return lipgloss.NewStyle().Foreground(theme.FaintText).Render("loading...")
	}

	if s.serverMessage != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorForeground).Render(s.serverMessage))
		b.WriteString("\n\n")
	}

	for i, w := range s.widgets {
		b.WriteString(w.View(theme, i == s.focus))
		b.WriteString("\n")
	}

	status := "ctrl+s save  ·  ctrl+r clear  ·  esc back"
	if s.waiting {
		status = "saving..."
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).Render(status))
	return b.String()
}

// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessera-admin/tessera/lib/api"
	"github.com/tessera-admin/tessera/lib/form"
)

// customerFormScreen creates or edits one customer. The age is never
// typed: it is recomputed from the date of birth on every edit and
// shown read-only, and the recomputed value is what gets submitted.
type customerFormScreen struct {
	app  *App
	form *form.Form
	id   int64

	widgets []widget
	focus   int
	waiting bool
	loading bool

	serverMessage string
}

type customerLoadedMsg struct {
	customer *api.Customer
	err      error
}

type customerSavedMsg struct {
	err error
}

func newCustomerFormScreen(app *App, id int64) *customerFormScreen {
	f := form.New()
	f.Add("firstName", form.Required(), form.LettersOnly(), form.MaxLen(50))
	f.Add("lastName", form.Required(), form.LettersOnly(), form.MaxLen(50))
	f.Add("dateOfBirth", form.Required(), form.Date())
	f.Add("age")
	f.Add("gender", form.Required())
	f.Add("mobile", form.Required(), form.Mobile())
	f.Add("email", form.Required(), form.Email())
	f.Add("address1", form.Required(), form.Address(), form.MaxLen(100))
	f.Add("address2", form.Address(), form.MaxLen(100))

	f.Derive("dateOfBirth", func(value string) {
		dateOfBirth, err := time.Parse(api.DateLayout, value)
		if err != nil {
			f.SetValue("age", "")
			return
		}
		f.SetValue("age", strconv.Itoa(api.Age(dateOfBirth, time.Now())))
	})

	s := &customerFormScreen{app: app, form: f, id: id, loading: id != 0}
	s.widgets = []widget{
		newInputField(f, "firstName", "First Name", ""),
		newInputField(f, "lastName", "Last Name", ""),
		newInputField(f, "dateOfBirth", "Date of Birth", "YYYY-MM-DD"),
		newDisplayField(f, "age", "Age"),
		newSelectField(f, "gender", "Gender", []string{
			api.GenderMale, api.GenderFemale, api.GenderOther,
		}),
		newInputField(f, "mobile", "Mobile", "9123456789"),
		newInputField(f, "email", "Email", ""),
		newInputField(f, "address1", "Address 1", ""),
		newInputField(f, "address2", "Address 2", ""),
	}
	s.widgets[0].Focus()
	return s
}

func (s *customerFormScreen) Init() tea.Cmd {
	if s.id == 0 {
		return nil
	}
	backend := s.app.backend
	id := s.id
	return func() tea.Msg {
		customer, err := backend.GetCustomer(context.Background(), id)
		return customerLoadedMsg{customer: customer, err: err}
	}
}

func (s *customerFormScreen) populate(customer *api.Customer) {
	for _, w := range s.widgets {
		value := ""
		switch w.Name() {
		case "firstName":
			value = customer.FirstName
		case "lastName":
			value = customer.LastName
		case "dateOfBirth":
			value = customer.DateOfBirth
		case "gender":
			value = customer.Gender
		case "mobile":
			value = customer.Mobile
		case "email":
			value = customer.Email
		case "address1":
			value = customer.Address1
		case "address2":
			value = customer.Address2
		default:
			continue
		}
		switch field := w.(type) {
		case *inputField:
			field.SetText(value)
		case *selectField:
			field.SetText(value)
		}
	}
}

// focusable reports whether the widget at index can take focus.
func (s *customerFormScreen) focusable(index int) bool {
	_, display := s.widgets[index].(*displayField)
	return !display
}

func (s *customerFormScreen) moveFocus(delta int) {
	s.widgets[s.focus].Blur()
	for {
		s.focus = (s.focus + delta + len(s.widgets)) % len(s.widgets)
		if s.focusable(s.focus) {
			break
		}
	}
	s.widgets[s.focus].Focus()
}

func (s *customerFormScreen) submit() tea.Cmd {
	s.form.TouchAll()
	if !s.form.Valid() {
		return nil
	}
	s.waiting = true
	s.serverMessage = ""

	age, _ := strconv.Atoi(s.form.Value("age"))
	customer := api.Customer{
		ID:          s.id,
		FirstName:   s.form.Value("firstName"),
		LastName:    s.form.Value("lastName"),
		DateOfBirth: s.form.Value("dateOfBirth"),
		Age:         age,
		Gender:      s.form.Value("gender"),
		Mobile:      s.form.Value("mobile"),
		Email:       s.form.Value("email"),
		Address1:    s.form.Value("address1"),
		Address2:    s.form.Value("address2"),
	}

	backend := s.app.backend
	return func() tea.Msg {
		var err error
		if customer.ID == 0 {
			_, err = backend.CreateCustomer(context.Background(), customer)
		} else {
			_, err = backend.UpdateCustomer(context.Background(), customer)
		}
		return customerSavedMsg{err: err}
	}
}

func (s *customerFormScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case customerLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.app.logger.Warn("customer fetch failed", "id", s.id, "error", api.Message(msg.err))
			s.serverMessage = api.Message(msg.err)
			return nil
		}
		s.populate(msg.customer)
		return nil

	case customerSavedMsg:
		s.waiting = false
		if msg.err != nil {
			s.serverMessage = s.form.ApplyServerErrors(msg.err)
			return nil
		}
		return navigateCmd(PathCustomers)

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
				switch field := w.(type) {
				case *inputField:
					field.SetText("")
				case *selectField:
					field.SetText("")
				}
			}
			s.serverMessage = ""
			return nil
		case "esc":
			return navigateCmd(PathCustomers)
		}
	}

	return s.widgets[s.focus].Update(msg)
}

func (s *customerFormScreen) View(width int) string {
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

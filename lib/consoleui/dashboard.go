// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessera-admin/tessera/lib/api"
)

// dashboardScreen shows aggregate customer and user counts, fetched
// as single-row pages and read off the page totals. The loading state
// clears only once both requests have settled, success or failure; a
// failed count falls back to zero and is logged.
type dashboardScreen struct {
	app *App

	customerTotal int64
	userTotal     int64
	customersDone bool
	usersDone     bool

	// Stamped into count commands so a reload ignores leftovers
	// from the previous round.
	generation int
}

type countLoadedMsg struct {
	generation int
	entity     string
	total      int64
	err        error
}

func newDashboardScreen(app *App) *dashboardScreen {
	return &dashboardScreen{app: app}
}

func (s *dashboardScreen) Init() tea.Cmd { return s.reload() }

func (s *dashboardScreen) reload() tea.Cmd {
	s.generation++
	s.customersDone = false
	s.usersDone = false

	generation := s.generation
	backend := s.app.backend
	countQuery := api.PageQuery{Size: 1, SortBy: "id", SortDir: api.SortAscending}

	customers := func() tea.Msg {
		page, err := backend.ListCustomers(context.Background(), countQuery)
		return countMsg(generation, "customers", page, err)
	}
	users := func() tea.Msg {
		page, err := backend.ListUsers(context.Background(), countQuery)
		return countMsg(generation, "users", page, err)
	}
	return tea.Batch(customers, users)
}

func countMsg[T any](generation int, entity string, page *api.Page[T], err error) countLoadedMsg {
	if err != nil {
		return countLoadedMsg{generation: generation, entity: entity, err: err}
	}
	return countLoadedMsg{generation: generation, entity: entity, total: page.TotalElements}
}

func (s *dashboardScreen) loading() bool {
	return !(s.customersDone && s.usersDone)
}

func (s *dashboardScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case countLoadedMsg:
		if msg.generation != s.generation {
			return nil
		}
		if msg.err != nil {
			s.app.logger.Warn("count query failed",
				"entity", msg.entity, "error", api.Message(msg.err))
		}
		switch msg.entity {
		case "customers":
			s.customerTotal = msg.total
			s.customersDone = true
		case "users":
			s.userTotal = msg.total
			s.usersDone = true
		}
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			return navigateCmd(PathCustomers)
		case "u":
			return navigateCmd(PathUsers)
		case "r":
			return s.reload()
		}
	}
	return nil
}

func (s *dashboardScreen) View(width int) string {
	theme := s.app.theme

	card := func(title string, total int64) string {
		value := strconv.FormatInt(total, 10)
		if s.loading() {
			value = "..."
		}
		body := lipgloss.NewStyle().Bold(true).Foreground(theme.NormalText).Render(value) +
			"\n" + lipgloss.NewStyle().Foreground(theme.FaintText).Render(title)
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderColor).
			Padding(1, 4).
			Render(body)
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Customers", s.customerTotal),
		"  ",
		card("Users", s.userTotal),
	)

	hints := lipgloss.NewStyle().Foreground(theme.HelpText).
		Render("c customers  ·  u users  ·  r refresh")

	return strings.Join([]string{cards, "", hints}, "\n")
}

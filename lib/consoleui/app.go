// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessera-admin/tessera/lib/session"
)

// screen is one routed view. Screens mutate themselves in Update and
// talk to the rest of the application only through returned commands
// (navigateMsg, backend calls).
type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width int) string
}

// AppConfig carries the dependencies of the console application.
type AppConfig struct {
	Backend  Backend
	Session  *session.Store
	Logger   *slog.Logger
	PageSize int

	// Theme overrides DefaultTheme when non-nil.
	Theme *Theme
}

// App is the root bubbletea model: it owns routing, the window
// chrome, and session-wide key handling. Everything else lives in the
// per-route screens.
type App struct {
	backend  Backend
	session  *session.Store
	logger   *slog.Logger
	theme    Theme
	pageSize int

	width  int
	height int

	current Target
	screen  screen

	// The request layer signals an observed 401 here; see
	// UnauthorizedHook.
	unauthorized chan struct{}
}

// NewApp constructs the console application.
func NewApp(config AppConfig) *App {
	theme := DefaultTheme
	if config.Theme != nil {
		theme = *config.Theme
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	pageSize := config.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	return &App{
		backend:      config.Backend,
		session:      config.Session,
		logger:       logger,
		theme:        theme,
		pageSize:     pageSize,
		width:        80,
		height:       24,
		unauthorized: make(chan struct{}, 1),
	}
}

// UnauthorizedHook returns the callback to install as the request
// authorizer's OnUnauthorized. It never blocks; a signal already
// pending covers any number of concurrent 401s.
func (app *App) UnauthorizedHook() func() {
	return func() {
		select {
		case app.unauthorized <- struct{}{}:
		default:
		}
	}
}

func (app *App) listenUnauthorized() tea.Cmd {
	return func() tea.Msg {
		<-app.unauthorized
		return sessionExpiredMsg{}
	}
}

// Init routes to the start screen: the dashboard with a saved
// session, the login screen without one.
func (app *App) Init() tea.Cmd {
	return tea.Batch(app.listenUnauthorized(), app.route(PathRoot))
}

// route resolves a path through the guards, swaps in the destination
// screen, and starts its loading commands.
func (app *App) route(path string) tea.Cmd {
	target := Resolve(path, app.session.IsAuthenticated())
	app.current = target
	app.screen = app.buildScreen(target)
	return app.screen.Init()
}

func (app *App) buildScreen(target Target) screen {
	switch target.Path {
	case PathLogin:
		return newLoginScreen(app)
	case PathRegister:
		return newRegisterScreen(app)
	case PathCustomers:
		return newCustomerListScreen(app)
	case PathCustomerNew:
		return newCustomerFormScreen(app, 0)
	case PathCustomerEdit:
		return newCustomerFormScreen(app, target.ID)
	case PathUsers:
		return newUserListScreen(app)
	case PathUserNew:
		return newUserFormScreen(app, 0)
	case PathUserEdit:
		return newUserFormScreen(app, target.ID)
	default:
		return newDashboardScreen(app)
	}
}

func (app *App) logout() tea.Cmd {
	if err := app.session.Clear(); err != nil {
		app.logger.Warn("failed to clear session", "error", err)
	}
	return app.route(PathLogin)
}

func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height
		return app, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return app, tea.Quit
		case "ctrl+l":
			if app.session.IsAuthenticated() {
				return app, app.logout()
			}
		}

	case navigateMsg:
		return app, app.route(msg.path)

	case logoutMsg:
		return app, app.logout()

	case sessionExpiredMsg:
		app.logger.Warn("session expired, returning to login")
		return app, tea.Batch(app.listenUnauthorized(), app.route(PathLogin))
	}

	return app, app.screen.Update(msg)
}

func (app *App) View() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(app.theme.HeaderForeground).
		Render("Tessera Console")
	location := lipgloss.NewStyle().
		Foreground(app.theme.FaintText).
		Render(screenTitle(app.current.Path))
	header := title + "  " + location

	hints := []string{"ctrl+c quit"}
	if app.session.IsAuthenticated() {
		hints = append(hints, "ctrl+l logout")
	}
	footer := lipgloss.NewStyle().
		Foreground(app.theme.HelpText).
		Render(strings.Join(hints, "  ·  "))

	body := ""
	if app.screen != nil {
		body = app.screen.View(app.width)
	}

	return header + "\n\n" + body + "\n\n" + footer
}

func screenTitle(path string) string {
	switch path {
	case PathLogin:
		return "Sign In"
	case PathRegister:
		return "Register Company"
	case PathCustomers:
		return "Customers"
	case PathCustomerNew:
		return "New Customer"
	case PathCustomerEdit:
		return "Edit Customer"
	case PathUsers:
		return "Users"
	case PathUserNew:
		return "New User"
	case PathUserEdit:
		return "Edit User"
	default:
		return "Dashboard"
	}
}

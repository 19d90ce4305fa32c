// Copyright 2026 The Tessera Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tessera-admin/tessera/lib/api"
	"github.com/tessera-admin/tessera/lib/config"
)

// How long a transient success notice stays on screen.
const noticeDuration = 5 * time.Second

// listColumn describes one table column: the header, the backend sort
// field ("" for unsortable columns), and how to render a row's cell.
type listColumn[T any] struct {
	title string
	field string
	width int
	value func(T) string
}

// listConfig parameterizes the shared list screen for an entity type.
type listConfig[T any] struct {
	entity     string
	columns    []listColumn[T]
	fetch      func(ctx context.Context, query api.PageQuery) (*api.Page[T], error)
	remove     func(ctx context.Context, id int64) error
	id         func(T) int64
	searchable bool
	newPath    string
	editPath   func(id int64) string

	deletedNotice  string
	confirmMessage string
}

// listScreen is the paginated table shared by the customer and user
// routes: sorting by column, page navigation, page-size cycling,
// optional server-side search, and deletion behind a confirmation
// dialog.
//
// Every fetch is stamped with a generation; a response whose stamp no
// longer matches is from a superseded request and is dropped, so
// out-of-order completions cannot show stale rows. A failed load
// keeps whatever rows are already on screen.
type listScreen[T any] struct {
	app    *App
	config listConfig[T]

	query      api.PageQuery
	rows       []T
	totalRows  int64
	totalPages int
	hasNext    bool
	hasPrev    bool

	cursor     int
	loading    bool
	generation int

	notice    string
	noticeSeq int
	problem   string

	search    textinput.Model
	searching bool

	confirm       *confirmDialog
	pendingDelete int64
}

type listLoadedMsg[T any] struct {
	generation int
	page       *api.Page[T]
	err        error
}

type deleteDoneMsg struct {
	entity string
	id     int64
	err    error
}

type noticeExpiredMsg struct {
	seq int
}

func newListScreen[T any](app *App, cfg listConfig[T]) *listScreen[T] {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 120
	search.Width = 30
	return &listScreen[T]{
		app:    app,
		config: cfg,
		query:  api.DefaultPageQuery(app.pageSize),
		search: search,
	}
}

func (s *listScreen[T]) Init() tea.Cmd { return s.load() }

// load starts a fetch for the current query under a fresh generation.
func (s *listScreen[T]) load() tea.Cmd {
	s.loading = true
	s.generation++

	generation := s.generation
	query := s.query
	fetch := s.config.fetch
	return func() tea.Msg {
		page, err := fetch(context.Background(), query)
		return listLoadedMsg[T]{generation: generation, page: page, err: err}
	}
}

func (s *listScreen[T]) setQuery(query api.PageQuery) tea.Cmd {
	s.query = query
	return s.load()
}

// sortable returns the sortable columns in display order; the number
// keys 1..n map onto this slice.
func (s *listScreen[T]) sortable() []listColumn[T] {
	var columns []listColumn[T]
	for _, column := range s.config.columns {
		if column.field != "" {
			columns = append(columns, column)
		}
	}
	return columns
}

func (s *listScreen[T]) expireNotice() tea.Cmd {
	seq := s.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (s *listScreen[T]) deleteSelected() tea.Cmd {
	id := s.pendingDelete
	s.pendingDelete = 0

	remove := s.config.remove
	entity := s.config.entity
	return func() tea.Msg {
		err := remove(context.Background(), id)
		return deleteDoneMsg{entity: entity, id: id, err: err}
	}
}

func (s *listScreen[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case listLoadedMsg[T]:
		if msg.generation != s.generation {
			return nil
		}
		s.loading = false
		if msg.err != nil {
			s.app.logger.Warn("list load failed",
				"entity", s.config.entity, "error", api.Message(msg.err))
			s.problem = api.Message(msg.err)
			return nil
		}
		s.problem = ""
		s.rows = msg.page.Content
		s.totalRows = msg.page.TotalElements
		s.totalPages = msg.page.TotalPages
		s.hasNext = msg.page.HasNext
		s.hasPrev = msg.page.HasPrevious
		if s.cursor >= len(s.rows) {
			s.cursor = max(0, len(s.rows)-1)
		}
		return nil

	case deleteDoneMsg:
		if msg.err != nil {
			s.app.logger.Warn("delete failed",
				"entity", msg.entity, "id", msg.id, "error", api.Message(msg.err))
			s.problem = api.Message(msg.err)
			return nil
		}
		s.notice = s.config.deletedNotice
		s.noticeSeq++
		return tea.Batch(s.expireNotice(), s.load())

	case noticeExpiredMsg:
		if msg.seq == s.noticeSeq {
			s.notice = ""
		}
		return nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return nil
}

func (s *listScreen[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	// An open dialog owns the keyboard until it answers.
	if s.confirm != nil {
		s.confirm.Update(msg)
		switch s.confirm.Outcome() {
		case confirmAccepted:
			s.confirm = nil
			return s.deleteSelected()
		case confirmCancelled:
			s.confirm = nil
			s.pendingDelete = 0
		}
		return nil
	}

	if s.searching {
		switch msg.String() {
		case "enter":
			s.searching = false
			s.search.Blur()
			return s.setQuery(s.query.WithSearch(s.search.Value()))
		case "esc":
			s.searching = false
			s.search.Blur()
			s.search.SetValue(s.query.Search)
			return nil
		}
		var cmd tea.Cmd
		s.search, cmd = s.search.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.rows)-1 {
			s.cursor++
		}
	case "left":
		if s.hasPrev {
			return s.setQuery(s.query.WithPage(s.query.Page - 1))
		}
	case "right":
		if s.hasNext {
			return s.setQuery(s.query.WithPage(s.query.Page + 1))
		}
	case "+", "=":
		return s.setQuery(s.query.WithSize(nextPageSize(s.query.Size, 1)))
	case "-":
		return s.setQuery(s.query.WithSize(nextPageSize(s.query.Size, -1)))
	case "r":
		return s.load()
	case "n":
		return navigateCmd(s.config.newPath)
	case "enter", "e":
		if len(s.rows) > 0 {
			return navigateCmd(s.config.editPath(s.config.id(s.rows[s.cursor])))
		}
	case "d", "x":
		if len(s.rows) > 0 {
			s.pendingDelete = s.config.id(s.rows[s.cursor])
			s.confirm = newConfirmDialog(
				"Confirm Delete", s.config.confirmMessage, "Delete", "Cancel")
		}
	case "/":
		if s.config.searchable {
			s.searching = true
			s.search.Focus()
		}
	case "esc":
		return navigateCmd(PathDashboard)
	default:
		// Number keys toggle sort on the matching column: pressing
		// the active column's key flips the direction, any other
		// column starts ascending. The page is deliberately kept.
		if sortable := s.sortable(); len(msg.String()) == 1 {
			index := int(msg.String()[0] - '1')
			if index >= 0 && index < len(sortable) {
				return s.setQuery(s.query.ToggleSort(sortable[index].field))
			}
		}
	}
	return nil
}

// nextPageSize steps through the allowed page sizes.
func nextPageSize(current, delta int) int {
	sizes := config.PageSizes
	for i, size := range sizes {
		if size == current {
			next := i + delta
			if next < 0 {
				next = 0
			}
			if next >= len(sizes) {
				next = len(sizes) - 1
			}
			return sizes[next]
		}
	}
	return sizes[0]
}

func (s *listScreen[T]) View(width int) string {
	theme := s.app.theme
	var b strings.Builder

	if s.confirm != nil {
		return s.confirm.View(theme)
	}

	if s.config.searchable {
		label := lipgloss.NewStyle().Foreground(theme.LabelForeground).Render("Search:")
		b.WriteString(label + " " + s.search.View())
		b.WriteString("\n\n")
	}

	// Header row with sort markers and the number-key hints.
	sortIndex := 0
	headers := make([]string, 0, len(s.config.columns))
	for _, column := range s.config.columns {
		title := column.title
		if column.field != "" {
			sortIndex++
			title = fmt.Sprintf("%d:%s", sortIndex, title)
			if column.field == s.query.SortBy {
				if s.query.SortDir == api.SortAscending {
					title += " ▲"
				} else {
					title += " ▼"
				}
			}
		}
		headers = append(headers, pad(title, column.width))
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground).
		Render(strings.Join(headers, "  ")))
	b.WriteString("\n")

	switch {
	case s.loading && len(s.rows) == 0:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Render("loading..."))
		b.WriteString("\n")
	case len(s.rows) == 0:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Render("no records"))
		b.WriteString("\n")
	default:
		for i, row := range s.rows {
			cells := make([]string, 0, len(s.config.columns))
			for _, column := range s.config.columns {
				cells = append(cells, pad(column.value(row), column.width))
			}
			line := strings.Join(cells, "  ")
			style := lipgloss.NewStyle().Foreground(theme.NormalText)
			if i == s.cursor {
				style = style.
					Background(theme.SelectedBackground).
					Foreground(theme.SelectedForeground)
			}
			b.WriteString(style.Render(line))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.FaintText).Render(fmt.Sprintf(
		"page %d of %d  ·  %d total  ·  size %d",
		s.query.Page+1, max(1, s.totalPages), s.totalRows, s.query.Size)))

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.SuccessForeground).Render(s.notice))
	}
	if s.problem != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorForeground).Render(s.problem))
	}

	hints := "n new  ·  enter edit  ·  d delete  ·  ←/→ page  ·  +/- size  ·  1..9 sort"
	if s.config.searchable {
		hints += "  ·  / search"
	}
	hints += "  ·  esc dashboard"
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.HelpText).Render(hints))
	return b.String()
}

// pad fits value into a cell of the given display width, truncating
// with an ellipsis. Width is measured in terminal columns, so wide
// runes count double.
func pad(value string, width int) string {
	value = ansi.Truncate(value, width, "…")
	if gap := width - ansi.StringWidth(value); gap > 0 {
		value += strings.Repeat(" ", gap)
	}
	return value
}

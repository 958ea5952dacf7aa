package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"customer-datatable/internal/domain/customer"
	"customer-datatable/internal/listview"
)

const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEnter = "enter"
	keyEsc   = "esc"
	keySlash = "/"
	keySort  = "s"
	keyOrder = "o"
	keyNext  = "n"
	keyPrev  = "p"
	keyRight = "right"
	keyLeft  = "left"

	searchInputCharLimit = 64
	searchInputWidth     = 40
)

// Table column widths.
const (
	colWidthSno      = 5
	colWidthName     = 24
	colWidthAge      = 5
	colWidthPhone    = 16
	colWidthLocation = 18
	colWidthDate     = 18
	colWidthTime     = 18
)

// loadedMsg reports the end of the initial fetch.
type loadedMsg struct {
	err error
}

// Model is the Bubble Tea model rendering a listview.View as a terminal table.
type Model struct {
	view *listview.View

	table   table.Model
	search  textinput.Model
	spinner spinner.Model

	searching bool
	quitting  bool
}

// NewModel builds a model over v. The initial fetch starts from Init.
func NewModel(v *listview.View) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search by name or location"
	ti.CharLimit = searchInputCharLimit
	ti.Width = searchInputWidth

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	tbl := table.New(
		table.WithColumns(columns()),
		table.WithHeight(listview.PageSize+1),
		table.WithFocused(false),
	)

	m := &Model{
		view:    v,
		table:   tbl,
		search:  ti,
		spinner: sp,
	}
	m.refresh()
	return m
}

func columns() []table.Column {
	return []table.Column{
		{Title: "S.No", Width: colWidthSno},
		{Title: "Customer Name", Width: colWidthName},
		{Title: "Age", Width: colWidthAge},
		{Title: "Phone", Width: colWidthPhone},
		{Title: "Location", Width: colWidthLocation},
		{Title: "Created At (Date)", Width: colWidthDate},
		{Title: "Created At (Time)", Width: colWidthTime},
	}
}

// Init starts the spinner and the one-shot load.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m *Model) loadCmd() tea.Cmd {
	v := m.view
	return func() tea.Msg {
		return loadedMsg{err: v.Load()}
	}
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		// The view already dropped a result that arrived after Close.
		if !m.quitting {
			m.refresh()
		}
		return m, nil

	case spinner.TickMsg:
		switch m.view.State().Phase {
		case listview.PhaseLoaded, listview.PhaseErrored:
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.searching {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyCtrlC:
		return m.quit()
	case keyEnter, keyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.view.Search(after)
		m.refresh()
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		return m.quit()
	case keySlash:
		m.searching = true
		return m, m.search.Focus()
	case keyEsc:
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.view.Search("")
		}
	case keySort:
		m.view.CycleSortField()
	case keyOrder:
		m.view.ToggleSortOrder()
	case keyNext, keyRight:
		m.view.NextPage()
	case keyPrev, keyLeft:
		m.view.PrevPage()
	default:
		return m, nil
	}

	m.refresh()
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.view.Close()
	return m, tea.Quit
}

// refresh rebuilds the table rows from the current page.
func (m *Model) refresh() {
	page := m.view.Page()

	rows := make([]table.Row, len(page.Rows))
	for i, r := range page.Rows {
		rows[i] = toRow(r)
	}
	m.table.SetRows(rows)
}

func toRow(r listview.Row) table.Row {
	c := r.Customer
	return table.Row{
		strconv.Itoa(r.Number),
		c.CustomerName,
		optionalInt(c.Age),
		optionalString(c.Phone),
		c.Location,
		c.CreatedDate,
		c.CreatedTime,
	}
}

func optionalInt(v *int32) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(int(*v))
}

func optionalString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// View renders the screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.view.State()
	page := state.Page()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Customer Records"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Customers List"))
	b.WriteString("\n\n")

	if state.Err != "" {
		b.WriteString(errorStyle.Render(state.Err))
		b.WriteString("\n\n")
	}

	b.WriteString(labelStyle.Render("Search: "))
	b.WriteString(m.search.View())
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Sort by: "))
	b.WriteString(sortFieldLabel(state.SortBy))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Order: "))
	b.WriteString(state.Order.Label())
	b.WriteString("\n\n")

	if state.Phase == listview.PhaseLoading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading customers...\n\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n\n")

	b.WriteString(pagerButton("Previous", page.HasPrevious))
	b.WriteString("  ")
	b.WriteString(pagerButton("Next", page.HasNext))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render(pageSummary(page)))
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("/ search • s sort field • o order • p/← prev • n/→ next • q quit"))
	b.WriteString("\n")

	return b.String()
}

func sortFieldLabel(f customer.SortField) string {
	parts := make([]string, 0, len(customer.SortFields))
	for _, field := range customer.SortFields {
		if field == f {
			parts = append(parts, "["+field.Label()+"]")
		} else {
			parts = append(parts, field.Label())
		}
	}
	return strings.Join(parts, " ")
}

func pagerButton(label string, enabled bool) string {
	if enabled {
		return enabledStyle.Render(label)
	}
	return disabledStyle.Render(label)
}

func pageSummary(p listview.Page) string {
	total := max(p.TotalPages, 1)
	return fmt.Sprintf("Page %d of %d (%d records)", p.Number, total, p.TotalItems)
}

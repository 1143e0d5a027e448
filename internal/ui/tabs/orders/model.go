// Package orders provides the grouped-orders browser tab.
package orders

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/analytics"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/app"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/components"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/styles"
)

// rangePreset is one entry in the date filter cycle.
type rangePreset struct {
	label string
	days  int // 0 means no bound
}

var rangePresets = []rangePreset{
	{label: "All time", days: 0},
	{label: "Today", days: 1},
	{label: "Last 7 days", days: 7},
	{label: "Last 30 days", days: 30},
}

// keyMap defines the key bindings specific to the orders tab.
type keyMap struct {
	Enter  key.Binding
	Escape key.Binding
	Filter key.Binding
	Up     key.Binding
	Down   key.Binding
}

// defaultKeyMap returns the default key bindings for the orders tab.
func defaultKeyMap() keyMap {
	return keyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view orders"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "date range"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
	}
}

// Model represents the orders tab state.
type Model struct {
	state       *app.State
	table       table.Model
	detail      viewport.Model
	spinner     components.LoadingSpinner
	keys        keyMap
	width       int
	height      int
	showDetail  bool
	selected    *models.Order
	presetIndex int
}

// New creates a new orders model.
func New(state *app.State) *Model {
	t := table.New(
		table.WithColumns(defaultColumns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Subtle).
		BorderBottom(true).
		Bold(true).
		Foreground(styles.Primary)
	s.Selected = s.Selected.
		Foreground(styles.TextPrimary).
		Background(styles.BgAccent).
		Bold(true)
	t.SetStyles(s)

	return &Model{
		state:   state,
		table:   t,
		detail:  viewport.New(0, 0),
		spinner: components.NewSpinner("Loading orders..."),
		keys:    defaultKeyMap(),
	}
}

func defaultColumns(width int) []table.Column {
	nameWidth := width - 50
	if nameWidth < 16 {
		nameWidth = 16
	}
	if nameWidth > 32 {
		nameWidth = 32
	}

	return []table.Column{
		{Title: "Customer", Width: nameWidth},
		{Title: "Orders", Width: 7},
		{Title: "Qty", Width: 5},
		{Title: "Revenue", Width: 14},
		{Title: "Last Order", Width: 12},
	}
}

// Init initializes the orders tab.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Init()
}

// Update handles messages for the orders tab.
func (m *Model) Update(msg tea.Msg) (app.Tab, tea.Cmd) {
	var cmds []tea.Cmd

	if m.showDetail {
		return m.updateDetail(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Enter):
			if order := m.selectedOrder(); order != nil {
				m.showDetail = true
				m.selected = order
				m.detail.SetContent(m.renderDetailContent(*order))
				m.detail.GotoTop()
			}

		case key.Matches(msg, m.keys.Filter):
			return m, m.cycleRange()

		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}

	case app.DataLoadedMsg:
		m.updateTableData()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// updateDetail handles messages while the sub-order detail is open.
func (m *Model) updateDetail(msg tea.Msg) (app.Tab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Escape) {
			m.showDetail = false
			m.selected = nil
			return m, nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case app.DataLoadedMsg:
		m.updateTableData()
		m.showDetail = false
		m.selected = nil
	}

	return m, nil
}

// cycleRange advances to the next date range preset and broadcasts it.
func (m *Model) cycleRange() tea.Cmd {
	m.presetIndex = (m.presetIndex + 1) % len(rangePresets)
	preset := rangePresets[m.presetIndex]

	var r analytics.DateRange
	if preset.days > 0 {
		start := time.Now().AddDate(0, 0, -(preset.days - 1))
		r = analytics.DateRange{Start: &start}
	}

	return func() tea.Msg {
		return app.SetDateRangeMsg{Range: r, Label: preset.label}
	}
}

// selectedOrder returns the grouped order behind the selected table row.
func (m *Model) selectedOrder() *models.Order {
	grouped := m.state.GetGrouped()
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(grouped) {
		return nil
	}
	order := grouped[cursor]
	return &order
}

// updateTableData rebuilds the table rows from the grouped orders.
func (m *Model) updateTableData() {
	grouped := m.state.GetGrouped()
	rows := make([]table.Row, 0, len(grouped))

	for _, o := range grouped {
		orderCount := len(o.SubOrders)
		if orderCount == 0 {
			orderCount = 1
		}

		rows = append(rows, table.Row{
			o.CustomerName,
			strconv.Itoa(orderCount),
			strconv.Itoa(o.Quantity),
			components.FormatVND(o.Amount),
			o.Date.Format("02/01/2006"),
		})
	}

	m.table.SetRows(rows)
}

// SetSize sets the available size for the orders tab.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	tableHeight := height - 10
	if tableHeight < 3 {
		tableHeight = 3
	}
	m.table.SetHeight(tableHeight)
	m.table.SetColumns(defaultColumns(width))

	m.detail.Width = width
	m.detail.Height = max(height-8, 3)
}

// ShortHelp returns the key bindings for the short help view.
func (m *Model) ShortHelp() []key.Binding {
	if m.showDetail {
		return []key.Binding{m.keys.Escape, m.keys.Up, m.keys.Down}
	}
	return []key.Binding{m.keys.Enter, m.keys.Filter}
}

// FullHelp returns the key bindings for the full help view.
func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Enter, m.keys.Escape},
		{m.keys.Filter, m.keys.Up, m.keys.Down},
	}
}

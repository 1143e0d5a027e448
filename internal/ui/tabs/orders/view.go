package orders

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/components"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/styles"
)

// View renders the orders tab.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	var sections []string

	sections = append(sections, m.renderTitle())

	if m.showDetail && m.selected != nil {
		sections = append(sections, m.renderDetail())
	} else {
		sections = append(sections, m.renderTable())
	}

	sections = append(sections, m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

// renderTitle renders the orders tab title.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Customer Orders")

	grouped := m.state.GetGrouped()
	preset := rangePresets[m.presetIndex]
	subtitle := styles.HelpStyle.Render(
		fmt.Sprintf("%d customers · %s", len(grouped), preset.label))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderTable renders the grouped orders table.
func (m *Model) renderTable() string {
	grouped := m.state.GetGrouped()

	if len(grouped) == 0 {
		return m.renderEmptyState()
	}

	m.updateTableData()

	cardWidth := m.width - 6
	if cardWidth < 60 {
		cardWidth = 60
	}

	return styles.CardStyle.Width(cardWidth).Render(m.table.View())
}

// renderEmptyState renders the empty state when no orders are loaded.
func (m *Model) renderEmptyState() string {
	cardWidth := m.width - 6
	if cardWidth < 40 {
		cardWidth = 40
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		"",
		styles.SubTitleStyle.Render("No Orders"),
		"",
		styles.HelpStyle.Render("The current date range has no matching orders."),
		"",
		styles.InfoTextStyle.Render("Press 'f' to change the range, or 'r' to refresh"),
		"",
	)

	return styles.CardStyle.Width(cardWidth).Render(content)
}

// renderDetail renders the sub-order breakdown for the selected customer.
func (m *Model) renderDetail() string {
	cardWidth := m.width - 6
	if cardWidth < 60 {
		cardWidth = 60
	}

	return styles.CardStyle.Width(cardWidth).Render(m.detail.View())
}

// renderDetailContent builds the scrollable detail text for a grouped order.
func (m *Model) renderDetailContent(order models.Order) string {
	var rows []string

	rows = append(rows, styles.CardTitleStyle.Render(order.CustomerName))

	meta := fmt.Sprintf("%d orders · %d items · %s total",
		max(len(order.SubOrders), 1), order.Quantity, components.FormatVND(order.Amount))
	rows = append(rows, styles.HelpStyle.Render(meta))

	if order.FacebookLink != "" {
		rows = append(rows, styles.InfoTextStyle.Render(order.FacebookLink))
	}
	rows = append(rows, "")

	subOrders := order.SubOrders
	if len(subOrders) == 0 {
		subOrders = []models.Order{order}
	}

	for _, sub := range subOrders {
		date := styles.SuccessTextStyle.Render(sub.Date.Format("02/01/2006"))
		amount := lipgloss.NewStyle().Foreground(styles.Revenue).Bold(true).
			Render(components.FormatVND(sub.Amount))
		rows = append(rows, fmt.Sprintf("%s  %s  ×%d", date, amount, sub.Quantity))

		if sub.Details != "" {
			rows = append(rows, styles.HelpStyle.Render("  "+sub.Details))
		}
		rows = append(rows, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderFooter renders the footer with keyboard shortcuts.
func (m *Model) renderFooter() string {
	var shortcuts []string

	if m.showDetail {
		shortcuts = []string{
			styles.HelpKeyStyle.Render("Esc") + " back",
			styles.HelpKeyStyle.Render("↑/↓") + " scroll",
		}
	} else {
		shortcuts = []string{
			styles.HelpKeyStyle.Render("Enter") + " view orders",
			styles.HelpKeyStyle.Render("f") + " date range",
			styles.HelpKeyStyle.Render("r") + " refresh",
		}
	}

	footer := ""
	for i, s := range shortcuts {
		if i > 0 {
			footer += styles.HelpSeparatorStyle.Render(" | ")
		}
		footer += s
	}

	return lipgloss.NewStyle().
		MarginTop(1).
		Foreground(styles.TextMuted).
		Render(footer)
}

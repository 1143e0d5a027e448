package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/analytics"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/components"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/styles"
)

// View renders the dashboard component.
func (m *Model) View() string {
	if m.state.IsInitialLoading() {
		return m.renderLoading()
	}

	snapshot := m.state.GetSnapshot()
	if snapshot == nil || len(snapshot.Orders) == 0 {
		return m.renderEmpty()
	}

	var sections []string

	sections = append(sections, m.renderTitle())
	sections = append(sections, m.renderTotals())
	sections = append(sections, m.renderRevenueChart())
	sections = append(sections, m.renderTopCustomers())
	sections = append(sections, m.renderSummary())

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

// renderLoading renders the loading state.
func (m *Model) renderLoading() string {
	return components.RenderSpinnerCentered(m.spinner, m.width, m.height)
}

// renderEmpty renders the no-data state with recovery hints.
func (m *Model) renderEmpty() string {
	var rows []string

	rows = append(rows, styles.TitleStyle.Render("Sales Dashboard"))
	rows = append(rows, "")

	if lastErr := m.state.GetLastError(); lastErr != "" {
		errIcon := lipgloss.NewStyle().Foreground(styles.Error).Render("✗")
		rows = append(rows, fmt.Sprintf("%s %s", errIcon, styles.ErrorTextStyle.Render(lastErr)))
	} else {
		emptyIcon := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○")
		rows = append(rows, fmt.Sprintf("%s %s", emptyIcon, styles.HelpStyle.Render("No order data loaded")))
	}

	rows = append(rows, "")
	rows = append(rows, styles.InfoTextStyle.Render("╰─▶ Press r to retry, or m to load mock data"))

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return styles.CenterBoth(content, m.width, m.height)
}

// renderTitle renders the dashboard title with data source badge.
func (m *Model) renderTitle() string {
	title := styles.TitleStyle.Render("Sales Dashboard")

	var meta []string
	if snapshot := m.state.GetSnapshot(); snapshot != nil {
		source := string(snapshot.Source)
		badge := styles.GetSourceStyle(source).Render("[" + source + "]")
		fetched := styles.HelpStyle.Render("fetched " + snapshot.FetchedAt.Format("15:04:05"))
		meta = append(meta, badge, fetched)
	}
	meta = append(meta, styles.HelpStyle.Render(formatRange(m.state.GetFilter())))

	subtitle := lipgloss.JoinHorizontal(lipgloss.Left, joinWithSpaces(meta)...)

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

// renderTotals renders the headline metric card.
func (m *Model) renderTotals() string {
	totals := m.state.GetTotals()
	daily := m.state.GetDaily()

	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Totals")))
	rows = append(rows, "")

	metricWidth := max((cardWidth-8)/4, 14)
	metrics := []string{
		renderMetric("Revenue", components.FormatVND(totals.TotalRevenue), styles.Revenue, metricWidth),
		renderMetric("Orders", fmt.Sprintf("%d", totals.TotalOrders), styles.Orders, metricWidth),
		renderMetric("Avg Order", components.FormatVND(totals.AverageOrderValue), styles.Secondary, metricWidth),
		renderMetric("Days", fmt.Sprintf("%d", len(daily)), styles.Success, metricWidth),
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, metrics...))

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func renderMetric(label, value string, color lipgloss.Color, width int) string {
	labelStr := styles.HelpStyle.Width(width).Render(label)
	valueStr := lipgloss.NewStyle().
		Foreground(color).
		Bold(true).
		Width(width).
		Render(value)
	return lipgloss.JoinVertical(lipgloss.Left, labelStr, valueStr)
}

// renderRevenueChart renders the daily revenue and order count chart.
func (m *Model) renderRevenueChart() string {
	daily := m.state.GetDaily()

	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Revenue).Render("◆")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Daily Revenue")))
	rows = append(rows, "")

	if len(daily) < 2 {
		emptyIcon := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○")
		rows = append(rows, fmt.Sprintf("  %s %s", emptyIcon,
			styles.HelpStyle.Render("Not enough days to chart")))
	} else {
		revenue := make([]float64, len(daily))
		orders := make([]float64, len(daily))
		for i, d := range daily {
			revenue[i] = d.Revenue
			orders[i] = float64(d.OrderCount)
		}

		chartWidth := max(cardWidth-12, 20)
		rows = append(rows, components.RenderDualLineChart(revenue, orders, chartWidth, 8, ""))
		rows = append(rows, "")
		rows = append(rows, components.RenderLegend([]components.LegendItem{
			{Label: "Revenue %", Color: components.ChartRevenueColor},
			{Label: "Orders %", Color: components.ChartOrdersColor},
		}))
		rows = append(rows, "")

		first := daily[0].Date
		last := daily[len(daily)-1].Date
		rows = append(rows, styles.HelpStyle.Render(fmt.Sprintf("  %s → %s", first, last)))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderTopCustomers renders the top customer ranking with share bars.
func (m *Model) renderTopCustomers() string {
	top := m.state.GetTop()
	totals := m.state.GetTotals()

	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("★")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Top Customers")))
	rows = append(rows, "")

	if len(top) == 0 {
		emptyIcon := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○")
		rows = append(rows, fmt.Sprintf("  %s %s", emptyIcon, styles.HelpStyle.Render("No customers yet")))
	} else {
		barWidth := max(cardWidth-8, 30)
		for _, c := range top {
			share := 0.0
			if totals.TotalRevenue > 0 {
				share = c.TotalRevenue / totals.TotalRevenue * 100
			}
			rows = append(rows, components.RenderShareBar(
				c.Name, share, components.FormatCompact(c.TotalRevenue), barWidth))
		}
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

// renderSummary renders the AI summary card.
func (m *Model) renderSummary() string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Secondary).Render("✦")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("AI Summary")))
	rows = append(rows, "")

	if summary := m.state.GetSummary(); summary != "" {
		rows = append(rows, lipgloss.NewStyle().
			Foreground(styles.TextPrimary).
			Width(max(cardWidth-8, 20)).
			Render(summary))
	} else {
		emptyIcon := lipgloss.NewStyle().Foreground(styles.Subtle).Render("○")
		rows = append(rows, fmt.Sprintf("  %s %s", emptyIcon,
			styles.HelpStyle.Render("Press s to generate a summary of the current data")))
	}

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func formatRange(r analytics.DateRange) string {
	const layout = "02/01/2006"

	switch {
	case r.IsZero():
		return "all time"
	case r.Start != nil && r.End != nil:
		return r.Start.Format(layout) + " – " + r.End.Format(layout)
	case r.Start != nil:
		return "from " + r.Start.Format(layout)
	default:
		return "until " + r.End.Format(layout)
	}
}

func joinWithSpaces(parts []string) []string {
	out := make([]string, 0, len(parts)*2)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}

package history

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/styles"
)

// View renders the history tab.
func (m *Model) View() string {
	if m.loading && !m.loaded {
		return m.renderLoading()
	}
	if m.errorMsg != "" {
		return m.renderError()
	}
	if len(m.records) == 0 {
		return m.renderEmpty()
	}

	sections := []string{
		m.renderHeader(),
		m.renderStats(),
		m.renderLog(),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	m.viewport.SetContent(content)

	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(m.viewport.View())
}

func (m *Model) renderLoading() string {
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(styles.HelpStyle.Render("Loading refresh log..."))
}

func (m *Model) renderError() string {
	content := fmt.Sprintf("%s %s",
		styles.ErrorTextStyle.Render("Error:"),
		m.errorMsg,
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderEmpty() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Refresh Log"),
		"",
		styles.HelpStyle.Render("No refresh attempts recorded yet."),
		styles.HelpStyle.Render("Entries will appear after the first fetch cycle."),
	)
	return styles.DocStyle.
		Width(m.width).
		Height(m.height).
		Render(content)
}

func (m *Model) renderHeader() string {
	title := styles.TitleStyle.Render("Refresh Log")
	subtitle := styles.HelpStyle.Render(
		fmt.Sprintf("Last %d attempts · reloaded %s", len(m.records), m.lastRefresh.Format("15:04:05")))

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "")
}

func (m *Model) renderStats() string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("◈")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Overview")), "")

	succeeded := m.stats.Total - m.stats.Failed
	line := fmt.Sprintf("  %s attempts · %s ok · %s failed",
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%d", m.stats.Total)),
		styles.SuccessTextStyle.Render(fmt.Sprintf("%d", succeeded)),
		styles.ErrorTextStyle.Render(fmt.Sprintf("%d", m.stats.Failed)),
	)
	rows = append(rows, line)

	if m.stats.LastError != "" {
		rows = append(rows, "")
		rows = append(rows, "  "+styles.ErrorTextStyle.Render("Last error: "+m.stats.LastError))
	}
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderLog() string {
	cardWidth := max(m.width-6, 40)

	var rows []string

	titleIcon := lipgloss.NewStyle().Foreground(styles.Primary).Render("≡")
	rows = append(rows, fmt.Sprintf("%s %s", titleIcon, styles.CardTitleStyle.Render("Attempts")), "")

	for _, rec := range m.records {
		rows = append(rows, "  "+m.renderRecord(rec))
	}
	rows = append(rows, "")

	return styles.CardStyle.Width(cardWidth).Render(
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m *Model) renderRecord(rec models.RefreshRecord) string {
	timestamp := styles.HelpStyle.Render(rec.Timestamp.Format("02/01 15:04:05"))
	source := styles.GetSourceStyle(string(rec.Source)).Render(fmt.Sprintf("%-5s", rec.Source))

	if !rec.Succeeded() {
		status := styles.ErrorTextStyle.Render("✗ " + rec.Error)
		return fmt.Sprintf("%s  %s  %s", timestamp, source, status)
	}

	status := styles.SuccessTextStyle.Render("✓")
	detail := styles.HelpStyle.Render(
		fmt.Sprintf("%d rows in %dms", rec.RowCount, rec.DurationMs))
	return fmt.Sprintf("%s  %s  %s %s", timestamp, source, status, detail)
}

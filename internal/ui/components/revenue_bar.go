package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/logger"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/ui/styles"
)

// AnimationTickMsg drives bar animations.
type AnimationTickMsg time.Time

func animationTick() tea.Cmd {
	return tea.Tick(time.Millisecond*50, func(t time.Time) tea.Msg {
		return AnimationTickMsg(t)
	})
}

// RevenueBar renders a revenue share progress bar with label and percentage.
type RevenueBar struct {
	progress       progress.Model
	label          string
	percent        float64
	isAnimating    bool
	targetPercent  float64
	currentPercent float64
}

// NewRevenueBar creates a new revenue bar with gradient colors.
func NewRevenueBar() RevenueBar {
	return NewRevenueBarWithWidth(30)
}

// NewRevenueBarWithWidth creates a revenue bar with a specific width.
func NewRevenueBarWithWidth(width int) RevenueBar {
	p := progress.New(
		progress.WithScaledGradient("#51cf66", "#ff8c00"),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)

	return RevenueBar{
		progress: p,
	}
}

// Init initializes the progress bar model.
func (b RevenueBar) Init() tea.Cmd {
	return nil
}

// Update handles progress bar animation messages.
func (b RevenueBar) Update(msg tea.Msg) (RevenueBar, tea.Cmd) {
	var cmds []tea.Cmd

	if _, ok := msg.(AnimationTickMsg); ok && b.isAnimating {
		switch {
		case b.currentPercent < b.targetPercent:
			step := (b.targetPercent - b.currentPercent) / 10
			if step < 0.5 {
				step = 0.5
			}
			b.currentPercent += step
			if b.currentPercent > b.targetPercent {
				b.currentPercent = b.targetPercent
			}
			cmds = append(cmds, animationTick())
		case b.currentPercent > b.targetPercent:
			step := (b.currentPercent - b.targetPercent) / 10
			if step < 0.5 {
				step = 0.5
			}
			b.currentPercent -= step
			if b.currentPercent < b.targetPercent {
				b.currentPercent = b.targetPercent
			}
			cmds = append(cmds, animationTick())
		default:
			b.isAnimating = false
		}
	}

	model, cmd := b.progress.Update(msg)
	b.progress = model.(progress.Model)
	cmds = append(cmds, cmd)

	return b, tea.Batch(cmds...)
}

// SetPercent sets the current percentage.
func (b *RevenueBar) SetPercent(percent float64) tea.Cmd {
	b.percent = percent
	b.targetPercent = percent

	if !b.isAnimating {
		b.isAnimating = true
		return tea.Batch(
			b.progress.SetPercent(percent/100),
			animationTick(),
		)
	}

	return b.progress.SetPercent(percent / 100)
}

// SetLabel sets the bar label.
func (b *RevenueBar) SetLabel(label string) {
	b.label = label
}

// SetWidth sets the progress bar width.
func (b *RevenueBar) SetWidth(width int) {
	b.progress.Width = width
}

// View renders the revenue bar with percentage and label.
func (b RevenueBar) View(percent float64, label string, width int) string {
	labelWidth := 20
	percentWidth := 6
	barWidth := width - labelWidth - percentWidth - 4
	if barWidth < 5 {
		barWidth = 5
	}
	b.progress.Width = barWidth

	labelStr := styles.ProgressLabelStyle.Render(truncateLabel(label, labelWidth))
	percentStr := styles.ProgressPercentStyle.Render(fmt.Sprintf("%.0f%%", percent))

	return fmt.Sprintf("%s %s %s", labelStr, b.progress.ViewAs(percent/100), percentStr)
}

// RenderGradientBar renders just the bar part with gradient colors.
func RenderGradientBar(percent float64, width int) string {
	if width < 1 {
		return ""
	}

	filled := int(float64(width) * percent / 100)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	var barChars []string
	for i := 0; i < width; i++ {
		if i < filled {
			t := float64(i) / float64(max(1, width-1))
			color := interpolateColor("#51cf66", "#ff8c00", t)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
			barChars = append(barChars, style.Render("█"))
		} else {
			style := lipgloss.NewStyle().Foreground(styles.Subtle)
			barChars = append(barChars, style.Render("░"))
		}
	}

	return strings.Join(barChars, "")
}

// RenderShareBar renders a labelled gradient bar for a revenue share,
// e.g. for the top customer ranking.
func RenderShareBar(label string, percent float64, value string, width int) string {
	labelWidth := 16
	valueWidth := 12
	barWidth := width - labelWidth - valueWidth - 6
	if barWidth < 8 {
		barWidth = 8
	}

	labelStr := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Width(labelWidth).
		Render(truncateLabel(label, labelWidth))

	bar := RenderGradientBar(percent, barWidth)

	valueStr := styles.GetShareStyle(percent).
		Width(valueWidth).
		Align(lipgloss.Right).
		Render(value)

	return fmt.Sprintf("%s [%s] %s", labelStr, bar, valueStr)
}

func truncateLabel(label string, width int) string {
	runes := []rune(label)
	if len(runes) <= width {
		return label
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

func interpolateColor(fromHex, toHex string, t float64) string {
	from := hexToRGB(fromHex)
	to := hexToRGB(toHex)

	r := int(float64(from[0]) + t*(float64(to[0])-float64(from[0])))
	g := int(float64(from[1]) + t*(float64(to[1])-float64(from[1])))
	b := int(float64(from[2]) + t*(float64(to[2])-float64(from[2])))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hexToRGB(hex string) [3]int {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		logger.Error("failed to parse hex color", "hex", hex, "error", err)
		return [3]int{0, 0, 0}
	}
	return [3]int{r, g, b}
}

package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/rocketsim/internal/sim"
)

type styles struct {
	panel   lipgloss.Style
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	hint    lipgloss.Style
	tab     lipgloss.Style
	active  lipgloss.Style
	powered lipgloss.Style
	coast   lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		label:   lipgloss.NewStyle().Foreground(t.Muted),
		value:   lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		hint:    lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		tab:     lipgloss.NewStyle().Padding(0, 1).Foreground(t.Muted),
		active:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(t.Accent).Underline(true),
		powered: lipgloss.NewStyle().Foreground(t.Powered),
		coast:   lipgloss.NewStyle().Foreground(t.Coast),
	}
}

// Summary renders the headline figures of a run as a bordered block.
func Summary(res *sim.Result) string {
	return summary(res, newStyles(Themes[0]))
}

func summary(res *sim.Result, st styles) string {
	if res == nil || res.Len() == 0 {
		return st.panel.Render(st.label.Render("no samples"))
	}

	rows := [][2]string{
		{"samples", fmt.Sprintf("%d", res.Len())},
		{"flight time", fmt.Sprintf("%.2f s", res.FlightTime())},
	}
	if apogee, ok := res.Apogee(); ok {
		rows = append(rows, [2]string{"apogee", fmt.Sprintf("%.2f m at %.2f s", apogee.Height, apogee.Time)})
	}
	if res.BurnoutIndex >= 0 {
		rows = append(rows, [2]string{"burnout", fmt.Sprintf("%.2f s", res.Times[res.BurnoutIndex])})
	} else {
		rows = append(rows, [2]string{"burnout", "never"})
	}
	if final, ok := res.Final(); ok {
		rows = append(rows, [2]string{"impact velocity", fmt.Sprintf("%.2f m/s", final.Velocity)})
	}

	names := make([]string, 0, len(res.Metrics))
	for name := range res.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rows = append(rows, [2]string{name, formatMetric(res.Metrics[name])})
	}

	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}

	var b strings.Builder
	b.WriteString(st.title.Render("flight summary"))
	b.WriteString("\n")
	for _, r := range rows {
		b.WriteString(st.label.Render(fmt.Sprintf("%-*s", width+2, r[0])))
		b.WriteString(st.value.Render(r[1]))
		b.WriteString("\n")
	}
	b.WriteString(phaseBar(res, 40, st))
	return st.panel.Render(b.String())
}

// phaseBar draws the flight as a bar, powered part first.
func phaseBar(res *sim.Result, width int, st styles) string {
	powered := width
	if res.BurnoutIndex >= 0 {
		powered = int(math.Round(float64(res.BurnoutIndex) / float64(res.Len()) * float64(width)))
	}
	return st.powered.Render(strings.Repeat("█", powered)) + st.coast.Render(strings.Repeat("░", width-powered))
}

func formatMetric(v float64) string {
	if math.Abs(v) >= 1e6 {
		return fmt.Sprintf("%.4e", v)
	}
	return fmt.Sprintf("%.4f", v)
}

// Sparkline squeezes values into width block characters.
func Sparkline(values []float64, width int) string {
	if width <= 0 {
		return ""
	}
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	n := width
	if len(values) < n {
		n = len(values)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		v := values[i*len(values)/n]
		idx := int((v - lo) / span * float64(len(blocks)-1))
		b.WriteRune(blocks[idx])
	}
	return b.String()
}

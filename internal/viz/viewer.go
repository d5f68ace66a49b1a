package viz

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/rocketsim/internal/sim"
)

// Viewer is the interactive display of a finished run. Tab and the arrow keys
// switch between the height, velocity and acceleration charts, t cycles the
// colour theme and q quits.
type Viewer struct {
	res           *sim.Result
	name          string
	panel         Panel
	theme         Theme
	styles        styles
	width, height int
	quitting      bool
}

func NewViewer(name string, res *sim.Result) Viewer {
	return Viewer{
		res:    res,
		name:   name,
		theme:  Themes[0],
		styles: newStyles(Themes[0]),
		width:  80,
		height: 24,
	}
}

func (v Viewer) Panel() Panel { return v.panel }
func (v Viewer) Theme() Theme { return v.theme }

func (v Viewer) Init() tea.Cmd { return nil }

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	}
	return v, nil
}

func (v Viewer) handleKey(msg tea.KeyMsg) (Viewer, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		v.quitting = true
		return v, tea.Quit
	case "tab", "right", "l":
		v.panel = (v.panel + 1) % 3
	case "shift+tab", "left", "h":
		v.panel = (v.panel + 2) % 3
	case "1":
		v.panel = PanelHeight
	case "2":
		v.panel = PanelVelocity
	case "3":
		v.panel = PanelAcceleration
	case "t":
		v.theme = nextTheme(v.theme)
		v.styles = newStyles(v.theme)
	}
	return v, nil
}

func (v Viewer) View() string {
	if v.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(v.styles.title.Render("rocketsim") + "  " + v.styles.label.Render(v.name))
	b.WriteString("\n\n")

	tabs := []string{"height", "velocity", "acceleration"}
	for i, t := range tabs {
		label := fmt.Sprintf("%d %s", i+1, t)
		if Panel(i) == v.panel {
			b.WriteString(v.styles.active.Render(label))
		} else {
			b.WriteString(v.styles.tab.Render(label))
		}
	}
	b.WriteString("\n\n")

	// leave room for the tabs, axis labels, caption and key hints
	chartW := v.width - 14
	chartH := v.height - 12
	b.WriteString(RenderPanel(v.res, v.panel, chartW, chartH))
	b.WriteString("\n\n")

	b.WriteString(summaryLine(v.res, v.styles))
	b.WriteString("\n")
	b.WriteString(v.styles.hint.Render("tab/←→ panel · 1-3 jump · t theme (" + v.theme.Name + ") · q quit"))
	return b.String()
}

func summaryLine(res *sim.Result, st styles) string {
	if res == nil || res.Len() == 0 {
		return st.label.Render("no samples")
	}
	apogee, _ := res.Apogee()
	final, _ := res.Final()
	burnout := "never"
	if res.BurnoutIndex >= 0 {
		burnout = fmt.Sprintf("%.2fs", res.Times[res.BurnoutIndex])
	}
	return st.label.Render("apogee ") + st.value.Render(fmt.Sprintf("%.1fm", apogee.Height)) +
		st.label.Render("  burnout ") + st.value.Render(burnout) +
		st.label.Render("  impact ") + st.value.Render(fmt.Sprintf("%.1fm/s", final.Velocity)) +
		st.label.Render("  flight ") + st.value.Render(fmt.Sprintf("%.2fs", res.FlightTime()))
}

// RunViewer shows res full screen until the user quits.
func RunViewer(name string, res *sim.Result, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	_, err := tea.NewProgram(NewViewer(name, res), opts...).Run()
	return err
}

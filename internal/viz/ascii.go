package viz

import (
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/rocketsim/internal/sim"
)

// Panel names the curve drawn by RenderPanel.
type Panel int

const (
	PanelHeight Panel = iota
	PanelVelocity
	PanelAcceleration
)

var panelCaptions = [...]string{
	PanelHeight:       "height (m) vs time",
	PanelVelocity:     "velocity (m/s) vs time",
	PanelAcceleration: "acceleration (m/s^2) vs time",
}

func (p Panel) String() string {
	if p < 0 || int(p) >= len(panelCaptions) {
		return "unknown"
	}
	return panelCaptions[p]
}

func (p Panel) values(res *sim.Result) []float64 {
	switch p {
	case PanelVelocity:
		return res.Velocities
	case PanelAcceleration:
		return res.Accelerations
	default:
		return res.Heights
	}
}

// RenderPanel draws one curve of res as a terminal line chart.
func RenderPanel(res *sim.Result, p Panel, width, height int) string {
	if res == nil || res.Len() == 0 {
		return ""
	}
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	return asciigraph.Plot(p.values(res),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(p.String()),
	)
}

// RenderASCII draws the three curves of res one below the other.
func RenderASCII(res *sim.Result, width, height int) string {
	if res == nil || res.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for p := PanelHeight; p <= PanelAcceleration; p++ {
		b.WriteString(RenderPanel(res, p, width, height))
		b.WriteString("\n\n")
	}
	return b.String()
}

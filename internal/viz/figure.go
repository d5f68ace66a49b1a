package viz

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/rocketsim/internal/sim"
)

const (
	DefaultFigurePath = "RocketGraphs_Other.png"
	FigureTitle       = "Projectile Motion Graphs"
)

var ErrNoData = errors.New("viz: result has no samples")

type FigureOptions struct {
	Title  string
	Width  float64 // inches
	Height float64 // inches
	DPI    int
}

func DefaultFigureOptions() FigureOptions {
	return FigureOptions{
		Title:  FigureTitle,
		Width:  18,
		Height: 6,
		DPI:    100,
	}
}

type panel struct {
	title  string
	ylabel string
	values func(*sim.Result) []float64
	color  color.Color
	zero   bool
}

var panels = []panel{
	{"Position v. Time", "Meters (m)", func(r *sim.Result) []float64 { return r.Heights }, color.RGBA{R: 31, G: 119, B: 180, A: 255}, false},
	{"Velocity v. Time", "Velocity (m/s)", func(r *sim.Result) []float64 { return r.Velocities }, color.RGBA{R: 255, G: 127, B: 14, A: 255}, true},
	{"Acceleration v. Time", "Acceleration (m/s^2)", func(r *sim.Result) []float64 { return r.Accelerations }, color.RGBA{R: 44, G: 160, B: 44, A: 255}, true},
}

// SaveFigure writes the height, velocity and acceleration curves of res side
// by side into one image. The format follows the extension of path.
func SaveFigure(res *sim.Result, path string, opts FigureOptions) error {
	if res == nil || res.Len() == 0 {
		return ErrNoData
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("viz: invalid figure size %gx%g", opts.Width, opts.Height)
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultFigureOptions().DPI
	}

	row := make([]*plot.Plot, 0, len(panels))
	for _, pn := range panels {
		p, err := newPanel(res, pn)
		if err != nil {
			return fmt.Errorf("viz: %s: %w", pn.title, err)
		}
		row = append(row, p)
	}

	c, err := newCanvas(path, vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, opts.DPI)
	if err != nil {
		return err
	}

	dc := draw.New(c)
	body := dc
	if opts.Title != "" {
		style := row[0].Title.TextStyle
		style.Font.Size = vg.Points(16)
		style.XAlign = draw.XCenter
		style.YAlign = draw.YTop

		top := vg.Points(8)
		dc.FillText(style, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - top}, opts.Title)
		body = draw.Crop(dc, 0, 0, 0, -(style.Height(opts.Title) + 2*top))
	}

	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(row),
		PadX:      vg.Points(24),
		PadTop:    vg.Points(4),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(12),
	}
	canvases := plot.Align([][]*plot.Plot{row}, tiles, body)
	for i, p := range row {
		p.Draw(canvases[0][i])
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("viz: create directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("viz: create figure: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := c.WriteTo(bw); err != nil {
		return fmt.Errorf("viz: write figure: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("viz: write figure: %w", err)
	}
	return f.Close()
}

func newPanel(res *sim.Result, pn panel) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = pn.title
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = pn.ylabel
	p.Add(plotter.NewGrid())

	values := pn.values(res)
	pts := make(plotter.XYs, len(values))
	for i := range values {
		pts[i].X = res.Times[i]
		pts[i].Y = values[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = pn.color
	p.Add(line)

	if pn.zero {
		zero := plotter.NewFunction(func(float64) float64 { return 0 })
		zero.LineStyle.Color = color.Gray{Y: 128}
		zero.LineStyle.Width = vg.Points(1)
		zero.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(zero)
	}
	return p, nil
}

func newCanvas(path string, w, h vg.Length, dpi int) (vg.CanvasWriterTo, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case "":
		return nil, fmt.Errorf("viz: no file extension in %q", path)
	}
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, fmt.Errorf("viz: %w", err)
	}
	return c, nil
}

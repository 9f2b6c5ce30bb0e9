// Package chart renders cumulative point series as PNG line charts.
package chart

import (
	"bytes"
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mmynk/kleurenwiezen/internal/calculator"
)

const (
	width  = 900
	height = 450

	// startLabel marks the implicit origin every series starts from.
	startLabel = "start"
)

// Palette holds the chart colors. Lines cycle through Lines in player order;
// an empty Lines uses DefaultPalette.Lines.
type Palette struct {
	Background drawing.Color
	Text       drawing.Color
	ZeroLine   drawing.Color
	Lines      []drawing.Color
}

// DefaultPalette is blue, green, red and purple on white.
var DefaultPalette = Palette{
	Background: drawing.ColorWhite,
	Text:       drawing.ColorFromHex("333333"),
	ZeroLine:   drawing.ColorFromHex("999999"),
	Lines: []drawing.Color{
		drawing.ColorFromHex("1f77b4"),
		drawing.ColorFromHex("2ca02c"),
		drawing.ColorFromHex("d62728"),
		drawing.ColorFromHex("9467bd"),
	},
}

// RenderPNG writes c as a PNG line chart. names maps player ids to legend
// labels; unknown ids fall back to the id. A chart without steps or players
// renders a placeholder.
func RenderPNG(w io.Writer, c calculator.Chart, names map[string]string, title string, palette Palette) error {
	if len(c.Labels) == 0 || len(c.Series) == 0 {
		return renderNoData(w, palette)
	}

	steps := len(c.Labels) + 1
	xValues := make([]float64, steps)
	ticks := make([]gochart.Tick, steps)
	for i := range xValues {
		xValues[i] = float64(i)
		label := startLabel
		if i > 0 {
			label = c.Labels[i-1]
		}
		ticks[i] = gochart.Tick{Value: float64(i), Label: label}
	}

	lines := palette.Lines
	if len(lines) == 0 {
		lines = DefaultPalette.Lines
	}

	lo, hi := 0, 0
	series := make([]gochart.Series, 0, len(c.Series)+1)
	for i, s := range c.Series {
		yValues := make([]float64, steps)
		for j, v := range s.Values {
			yValues[j+1] = float64(v)
			lo, hi = min(lo, v), max(hi, v)
		}
		name := names[s.PlayerID]
		if name == "" {
			name = s.PlayerID
		}
		color := lines[i%len(lines)]
		series = append(series, gochart.ContinuousSeries{
			Name:    name,
			XValues: xValues,
			YValues: yValues,
			Style: gochart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    3,
			},
		})
	}
	series = append(series, zeroLine(steps, palette))

	if lo == hi {
		lo, hi = -1, 1
	}
	pad := float64(hi-lo) * 0.05

	graph := gochart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			FillColor: palette.Background,
			Padding:   gochart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		Canvas: gochart.Style{
			FillColor: palette.Background,
		},
		TitleStyle: gochart.Style{
			FontColor: palette.Text,
		},
		XAxis: gochart.XAxis{
			Ticks: ticks,
			Style: gochart.Style{FontColor: palette.Text},
		},
		YAxis: gochart.YAxis{
			Name:           "punten",
			ValueFormatter: func(v interface{}) string { return fmt.Sprintf("%.0f", v) },
			Range:          &gochart.ContinuousRange{Min: float64(lo) - pad, Max: float64(hi) + pad},
			Style:          gochart.Style{FontColor: palette.Text},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return render(w, graph)
}

// zeroLine is a dashed horizontal line at 0.
func zeroLine(steps int, palette Palette) gochart.Series {
	xs := make([]float64, steps)
	for i := range xs {
		xs[i] = float64(i)
	}
	return gochart.ContinuousSeries{
		Name:    "0",
		XValues: xs,
		YValues: make([]float64, steps),
		Style: gochart.Style{
			StrokeColor:     palette.ZeroLine,
			StrokeWidth:     1,
			StrokeDashArray: []float64{5, 5},
		},
	}
}

func renderNoData(w io.Writer, palette Palette) error {
	const msg = "Nog geen rondes gespeeld"

	// go-chart needs one visible series and a non-empty range.
	graph := gochart.Chart{
		Width:  400,
		Height: 200,
		Background: gochart.Style{
			FillColor: palette.Background,
		},
		Canvas: gochart.Style{
			FillColor: palette.Background,
		},
		XAxis: gochart.XAxis{Style: gochart.Style{Hidden: true}},
		YAxis: gochart.YAxis{
			Style: gochart.Style{Hidden: true},
			Range: &gochart.ContinuousRange{Min: -1, Max: 1},
		},
		Series: []gochart.Series{zeroLine(2, palette)},
		Elements: []gochart.Renderable{
			func(r gochart.Renderer, cb gochart.Box, _ gochart.Style) {
				r.SetFontColor(palette.Text)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	return render(w, graph)
}

func render(w io.Writer, graph gochart.Chart) error {
	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

// Package chart merender proyeksi jumlah nilai sebagai PNG di sisi server.
// Murni pembacaan tampilan aktif; tidak ada logika data di sini.
package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/nafilahanum/dashboard-analisa-inovasi-jatim/internal/service/filter"
)

// BarPNG Grafik batang jumlah per label
func BarPNG(title, yLabel string, counts []filter.ValueCount) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = yLabel

	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, c := range counts {
		values[i] = float64(c.Count)
		labels[i] = c.Label
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return nil, fmt.Errorf("gagal membuat grafik batang: %w", err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars)
	p.Add(plotter.NewGrid())

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	return renderPNG(p, 12*vg.Inch, 6*vg.Inch)
}

// TrendPNG Garis jumlah inovasi per bulan, satu garis per jenis
func TrendPNG(title string, points []filter.TrendPoint) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Bulan"
	p.Y.Label.Text = "Jumlah Inovasi"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}

	byKind := make(map[string]plotter.XYs)
	for _, pt := range points {
		byKind[pt.Kind] = append(byKind[pt.Kind], plotter.XY{
			X: float64(pt.Month.Unix()),
			Y: float64(pt.Count),
		})
	}

	idx := 0
	for kind, xys := range byKind {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("gagal membuat garis %q: %w", kind, err)
		}
		line.Color = paletteColor(idx)
		p.Add(line)
		p.Legend.Add(kind, line)
		idx++
	}

	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	return renderPNG(p, 12*vg.Inch, 6*vg.Inch)
}

func renderPNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("gagal menyiapkan penulis PNG: %w", err)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("gagal merender PNG: %w", err)
	}
	return buf.Bytes(), nil
}

var linePalette = []color.RGBA{
	{R: 70, G: 130, B: 180, A: 255},
	{R: 222, G: 136, B: 62, A: 255},
	{R: 96, G: 170, B: 96, A: 255},
	{R: 180, G: 80, B: 80, A: 255},
	{R: 140, G: 100, B: 180, A: 255},
}

func paletteColor(i int) color.RGBA {
	return linePalette[i%len(linePalette)]
}

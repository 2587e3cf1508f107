package render

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
)

const (
	chartHeight   = 400
	chartBarWidth = 30
	chartSpacing  = 12
	chartMargin   = 120

	noDataWidth   = 400
	noDataHeight  = 200
	noDataMessage = "No scores posted yet"
)

// Chart writes a PNG bar chart of player totals in ranked order.
func Chart(w io.Writer, snap *leaderboard.Snapshot) error {
	if len(snap.Players) == 0 {
		return renderNoData(w)
	}

	bars := make([]chart.Value, 0, len(snap.Players))
	lo, hi := 0.0, 0.0
	for _, p := range snap.Players {
		bars = append(bars, chart.Value{Label: p.Name, Value: p.Total})
		if p.Total < lo {
			lo = p.Total
		}
		if p.Total > hi {
			hi = p.Total
		}
	}
	if lo == hi {
		return renderNoData(w)
	}

	graph := chart.BarChart{
		Title:      "Total Points",
		Width:      chartMargin + len(bars)*(chartBarWidth+chartSpacing),
		Height:     chartHeight,
		BarWidth:   chartBarWidth,
		BarSpacing: chartSpacing,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		XAxis: chart.Style{
			TextRotationDegrees: 45.0,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

// renderNoData draws a centered message instead of an empty chart.
func renderNoData(w io.Writer) error {
	r, err := chart.PNG(noDataWidth, noDataHeight)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("loading font: %w", err)
	}

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(noDataWidth, 0)
	r.LineTo(noDataWidth, noDataHeight)
	r.LineTo(0, noDataHeight)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(drawing.ColorBlack)
	r.SetFontSize(12.0)
	tb := r.MeasureText(noDataMessage)
	r.Text(noDataMessage, (noDataWidth-tb.Width())/2, (noDataHeight+tb.Height())/2)

	return r.Save(w)
}

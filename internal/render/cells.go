package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
)

// Dash is shown wherever there is no value.
const Dash = "-"

// ErrorMessage is the only thing a user sees when a load fails.
const ErrorMessage = "Error loading leaderboard data. Please try refreshing the page."

// Format selects an output writer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatHTML, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be 'text', 'json', 'html' or 'xlsx')", s)
	}
}

// Write renders snap in the given format.
func Write(w io.Writer, format Format, snap *leaderboard.Snapshot, roster leaderboard.Roster) error {
	switch format {
	case FormatText:
		return Text(w, snap, roster)
	case FormatJSON:
		return JSON(w, snap)
	case FormatHTML:
		return HTML(w, snap, roster)
	case FormatXLSX:
		return XLSX(w, snap, roster)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// Cell is one weekly score prepared for display.
type Cell struct {
	Text    string
	Notable bool
	Empty   bool
}

// Class is the CSS class for the cell.
func (c Cell) Class() string {
	switch {
	case c.Empty:
		return "no-score"
	case c.Notable:
		return "score-positive"
	default:
		return ""
	}
}

// ScoreCell applies the display convention to a raw weekly score.
func ScoreCell(score string) Cell {
	score = strings.TrimSpace(score)
	if score == "" || score == "0" {
		return Cell{Text: Dash, Empty: true}
	}
	if v, err := strconv.ParseFloat(score, 64); err == nil && v > 0 {
		return Cell{Text: score, Notable: true}
	}
	return Cell{Text: score}
}

// WeekCells returns p's displayable weeks, truncated to the snapshot's headers.
func WeekCells(snap *leaderboard.Snapshot, p leaderboard.PlayerEntry) []Cell {
	weeks := snap.Weeks(p)
	cells := make([]Cell, len(weeks))
	for i, s := range weeks {
		cells[i] = ScoreCell(s)
	}
	return cells
}

// FormatTotal prints a total without trailing zeros ("24", "18.5").
func FormatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}

// BirdiesBanner is the banner value for the birdie count.
func BirdiesBanner(n int) string {
	if n <= 0 {
		return Dash
	}
	return strconv.Itoa(n)
}

// KingBanner is the banner value for the birdie king.
func KingBanner(name string) string {
	if strings.TrimSpace(name) == "" {
		return Dash
	}
	return name
}

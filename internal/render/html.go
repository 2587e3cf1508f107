package render

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

// Title is the page heading.
const Title = "League Leaderboard"

type pageView struct {
	Title        string
	TotalBirdies string
	BirdieKing   string
	WeekHeaders  []string
	Rows         []rowView
	Columns      int
	Message      string
}

type rowView struct {
	Rank       int
	RankClass  string
	Name       string
	Group      string
	GroupName  string
	GroupClass string
	Weeks      []Cell
	Total      string
}

// HTML writes a standalone leaderboard page.
func HTML(w io.Writer, snap *leaderboard.Snapshot, roster leaderboard.Roster) error {
	view := pageView{
		Title:        Title,
		TotalBirdies: BirdiesBanner(snap.TotalBirdies),
		BirdieKing:   KingBanner(snap.BirdieKing),
		WeekHeaders:  snap.WeekHeaders,
		Rows:         make([]rowView, 0, len(snap.Players)),
		Columns:      len(snap.WeekHeaders) + 4,
	}

	for _, p := range snap.Players {
		view.Rows = append(view.Rows, rowView{
			Rank:       p.Rank,
			RankClass:  rankClass(p.Rank),
			Name:       p.Name,
			Group:      string(p.Group),
			GroupName:  roster.DisplayName(p.Group),
			GroupClass: "group-" + strings.ToLower(string(p.Group)),
			Weeks:      WeekCells(snap, p),
			Total:      FormatTotal(p.Total),
		})
	}

	return templates.ExecuteTemplate(w, "leaderboard.html.tmpl", view)
}

// ErrorPage writes the static failure page. It never says what went wrong.
func ErrorPage(w io.Writer) error {
	return templates.ExecuteTemplate(w, "error.html.tmpl", pageView{
		Title:   Title,
		Message: ErrorMessage,
	})
}

func rankClass(rank int) string {
	switch rank {
	case 1:
		return "first"
	case 2:
		return "second"
	case 3:
		return "third"
	default:
		return ""
	}
}

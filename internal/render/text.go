package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
)

// Text writes a plain table. Notable scores are marked with '*'.
func Text(w io.Writer, snap *leaderboard.Snapshot, roster leaderboard.Roster) error {
	fmt.Fprintf(w, "Total Birdies: %s    Birdie King: %s\n\n",
		BirdiesBanner(snap.TotalBirdies), KingBanner(snap.BirdieKing))

	if len(snap.Players) == 0 {
		fmt.Fprintln(w, "No leaderboard data found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"Rank", "Player", "Group"}
	header = append(header, snap.WeekHeaders...)
	header = append(header, "Total")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, p := range snap.Players {
		row := []string{fmt.Sprintf("%d", p.Rank), p.Name, string(p.Group)}
		for _, c := range WeekCells(snap, p) {
			if c.Notable {
				row = append(row, c.Text+"*")
			} else {
				row = append(row, c.Text)
			}
		}
		row = append(row, FormatTotal(p.Total))
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	groups := make([]string, 0, len(roster))
	for _, g := range roster {
		groups = append(groups, fmt.Sprintf("%s = %s", g.ID, roster.DisplayName(g.ID)))
	}
	fmt.Fprintf(w, "\n%d players. %s\n", len(snap.Players), strings.Join(groups, ", "))
	return nil
}

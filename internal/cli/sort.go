package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByRank  SortOrder = "rank"
	SortByName  SortOrder = "name"
	SortByGroup SortOrder = "group"
)

// ParseSortOrder validates a --sort value.
func ParseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(strings.ToLower(strings.TrimSpace(s))); order {
	case "":
		return SortByRank, nil
	case SortByRank, SortByName, SortByGroup:
		return order, nil
	default:
		return "", fmt.Errorf("invalid sort order: %s (must be 'rank', 'name' or 'group')", s)
	}
}

// sortPlayers sorts players based on the specified sort order. Ties always fall back to
// overall rank.
func sortPlayers(players []leaderboard.PlayerEntry, roster leaderboard.Roster, order SortOrder) {
	switch order {
	case SortByRank:
		sort.SliceStable(players, func(i, j int) bool {
			return players[i].Rank < players[j].Rank
		})
	case SortByName:
		sort.SliceStable(players, func(i, j int) bool {
			ni, nj := strings.ToLower(players[i].Name), strings.ToLower(players[j].Name)
			if ni != nj {
				return ni < nj
			}
			return players[i].Rank < players[j].Rank
		})
	case SortByGroup:
		position := groupPositions(roster)
		sort.SliceStable(players, func(i, j int) bool {
			gi, gj := position(players[i].Group), position(players[j].Group)
			if gi != gj {
				return gi < gj
			}
			return players[i].Rank < players[j].Rank
		})
	}
}

// groupPositions orders groups as the roster lists them; unknown groups sort last.
func groupPositions(roster leaderboard.Roster) func(leaderboard.Group) int {
	index := make(map[leaderboard.Group]int, len(roster))
	for i, g := range roster {
		index[g.ID] = i
	}
	return func(g leaderboard.Group) int {
		if i, ok := index[g]; ok {
			return i
		}
		return len(roster)
	}
}

package leaderboard

// WeekSlots is the number of weekly score columns carried for every player.
const WeekSlots = 12

// PlayerEntry is one player's standing.
type PlayerEntry struct {
	Name         string   `json:"name"`
	Group        Group    `json:"group"`
	Total        float64  `json:"total"`
	WeeklyScores []string `json:"weekly_scores"` // text, so "0" and "-" stay distinct
	Rank         int      `json:"rank"`          // overall rank, not the sheet's in-group rank
}

// Snapshot is the leaderboard derived from one fetch of the sheet.
type Snapshot struct {
	Players      []PlayerEntry `json:"players"`
	WeekHeaders  []string      `json:"week_headers"`
	TotalBirdies int           `json:"total_birdies"`
	BirdieKing   string        `json:"birdie_king"`
}

// Group returns the players assigned to id, in ranked order.
func (s *Snapshot) Group(id Group) []PlayerEntry {
	players := make([]PlayerEntry, 0)
	for _, p := range s.Players {
		if p.Group == id {
			players = append(players, p)
		}
	}
	return players
}

// Weeks returns the first n weekly scores of p, where n is the number of recovered week
// headers. Display code never shows slots without a header.
func (s *Snapshot) Weeks(p PlayerEntry) []string {
	n := len(s.WeekHeaders)
	if n > len(p.WeeklyScores) {
		n = len(p.WeeklyScores)
	}
	return p.WeeklyScores[:n]
}

package leaderboard

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/pfrederiksen/league-leaderboard/internal/sheet"
)

// Sheet layout. Columns are 0-indexed; column 0 is a spacer in the published sheet.
const (
	headerRow = 1

	colRank  = 1
	colName  = 2
	colTotal = 3
	colWeek  = 4

	// The header row carries one label fewer than the score block.
	maxWeekHeaders = 11

	minSheetRank = 1
	maxSheetRank = 4

	totalBirdiesLabel  = "Total Birdies:"
	totalBirdiesOffset = 2 // label, spacer, value
	birdieKingLabel    = "Birdie King:"
	birdieKingOffset   = 3 // label, two spacers, value

	absentScore = "0"
)

// Extractor builds snapshots for one roster.
type Extractor struct {
	roster Roster
}

// NewExtractor creates an extractor that assigns groups in roster order.
func NewExtractor(roster Roster) *Extractor {
	return &Extractor{roster: roster}
}

// Roster returns the roster the extractor assigns groups from.
func (e *Extractor) Roster() Roster {
	return e.roster
}

// Extract builds a snapshot using the default roster.
func Extract(records []sheet.Record) *Snapshot {
	return NewExtractor(DefaultRoster()).Extract(records)
}

// Extract builds a snapshot from tokenized records. It never fails: rows that do not
// look like player or stat rows are skipped, and an input with no player rows yields an
// empty snapshot.
func (e *Extractor) Extract(records []sheet.Record) *Snapshot {
	snap := &Snapshot{
		Players:     make([]PlayerEntry, 0, e.roster.Capacity()),
		WeekHeaders: weekHeaders(records),
	}

	capacity := e.roster.Capacity()
	for _, rec := range records {
		scanStats(rec, snap)

		if len(snap.Players) >= capacity {
			continue
		}
		if p, ok := parsePlayer(rec); ok {
			p.Group = e.groupFor(len(snap.Players))
			snap.Players = append(snap.Players, p)
		}
	}

	rank(snap.Players)
	return snap
}

// groupFor maps the i-th (0-based) qualifying row to a group by filling roster groups
// in order.
func (e *Extractor) groupFor(i int) Group {
	for _, g := range e.roster {
		if i < len(g.Members) {
			return g.ID
		}
		i -= len(g.Members)
	}
	return ""
}

func weekHeaders(records []sheet.Record) []string {
	headers := make([]string, 0, maxWeekHeaders)
	if len(records) <= headerRow {
		return headers
	}

	row := records[headerRow]
	for i := colWeek; i < colWeek+maxWeekHeaders; i++ {
		if h := row.Field(i); h != "" {
			headers = append(headers, h)
		}
	}
	return headers
}

// scanStats picks up the birdie banner values from any row that carries their labels.
// Later rows overwrite earlier ones.
func scanStats(rec sheet.Record, snap *Snapshot) {
	if k := rec.Index(totalBirdiesLabel); k >= 0 {
		if v := rec.Field(k + totalBirdiesOffset); v != "" {
			snap.TotalBirdies = leadingInt(v)
		}
	}
	if k := rec.Index(birdieKingLabel); k >= 0 {
		if v := rec.Field(k + birdieKingOffset); v != "" {
			snap.BirdieKing = v
		}
	}
}

func parsePlayer(rec sheet.Record) (PlayerEntry, bool) {
	sheetRank, err := strconv.Atoi(rec.Field(colRank))
	if err != nil || sheetRank < minSheetRank || sheetRank > maxSheetRank {
		return PlayerEntry{}, false
	}

	name := rec.Field(colName)
	if name == "" {
		return PlayerEntry{}, false
	}

	total, ok := parseTotal(rec.Field(colTotal))
	if !ok {
		return PlayerEntry{}, false
	}

	scores := make([]string, WeekSlots)
	for i := range scores {
		if col := colWeek + i; col < len(rec) {
			scores[i] = rec[col]
		} else {
			scores[i] = absentScore
		}
	}

	return PlayerEntry{
		Name:         name,
		Total:        total,
		WeeklyScores: scores,
	}, true
}

// parseTotal accepts a finite decimal number. Hex floats ("0x10p0"), NaN and Inf are
// not sheet totals.
func parseTotal(s string) (float64, bool) {
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, false
	}
	total, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, false
	}
	return total, true
}

// rank orders players by total, highest first, keeping sheet order for ties, and
// assigns the overall 1-based rank.
func rank(players []PlayerEntry) {
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Total > players[j].Total
	})
	for i := range players {
		players[i].Rank = i + 1
	}
}

// leadingInt parses the digits at the start of s, ignoring anything after them
// ("42 total" is 42). Anything without leading digits, including negatives, is 0.
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

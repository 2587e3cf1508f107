package leaderboard

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Group identifies one of the league's flights.
type Group string

const (
	GroupA Group = "A"
	GroupB Group = "B"
	GroupC Group = "C"
	GroupD Group = "D"
)

// GroupInfo is the display name and canonical members of a group.
type GroupInfo struct {
	ID      Group    `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Members []string `json:"members" yaml:"members"`
}

// Roster is the ordered list of groups. Order matters: the extractor fills groups in
// this order, each taking as many player rows as it has members.
type Roster []GroupInfo

// DefaultRoster returns the league's four groups of four.
func DefaultRoster() Roster {
	return Roster{
		{ID: GroupA, Name: "Group A", Members: []string{"Chad", "Carp", "Chuck", "Glen"}},
		{ID: GroupB, Name: "Group B", Members: []string{"Jake", "Sean", "Jimmy", "Faro"}},
		{ID: GroupC, Name: "Group C", Members: []string{"Joey", "Kevin", "Baker", "Andulics"}},
		{ID: GroupD, Name: "Group D", Members: []string{"Tony", "Jared", "Ian", "Josh"}},
	}
}

// Capacity is the number of player rows the roster can absorb.
func (r Roster) Capacity() int {
	n := 0
	for _, g := range r {
		n += len(g.Members)
	}
	return n
}

// Info returns the group with the given ID.
func (r Roster) Info(id Group) (GroupInfo, bool) {
	for _, g := range r {
		if g.ID == id {
			return g, true
		}
	}
	return GroupInfo{}, false
}

// DisplayName returns the group's display name, falling back to "Group X".
func (r Roster) DisplayName(id Group) string {
	if g, ok := r.Info(id); ok && g.Name != "" {
		return g.Name
	}
	return "Group " + string(id)
}

// Lookup finds the group whose roster lists name. Exact case-insensitive matches win;
// otherwise the closest fuzzy match is used, so "Andy Andulics" still finds Andulics.
func (r Roster) Lookup(name string) (GroupInfo, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return GroupInfo{}, false
	}

	owner := make(map[string]GroupInfo)
	members := make([]string, 0, r.Capacity())
	for _, g := range r {
		for _, m := range g.Members {
			if strings.EqualFold(m, name) {
				return g, true
			}
			owner[m] = g
			members = append(members, m)
		}
	}

	// Sheet names are often longer than the roster's short names ("Chad M."), so search
	// both directions and keep the closest.
	matches := fuzzy.RankFindFold(name, members)
	for _, m := range members {
		if fuzzy.MatchFold(m, name) {
			matches = append(matches, fuzzy.Rank{
				Source:   m,
				Target:   m,
				Distance: fuzzy.LevenshteinDistance(strings.ToLower(m), strings.ToLower(name)),
			})
		}
	}
	if len(matches) == 0 {
		return GroupInfo{}, false
	}

	best := matches[0]
	for _, m := range matches[1:] {
		if m.Distance < best.Distance {
			best = m
		}
	}
	return owner[best.Target], true
}

// Mismatch is a player whose arrival-order group disagrees with the roster.
type Mismatch struct {
	Player   string `json:"player"`
	Assigned Group  `json:"assigned"`
	Roster   Group  `json:"roster,omitempty"`
}

// CheckRoster compares a snapshot against the roster. Unknown players are reported with
// an empty Roster group. The snapshot itself is not changed.
func CheckRoster(snap *Snapshot, roster Roster) []Mismatch {
	var out []Mismatch
	for _, p := range snap.Players {
		g, ok := roster.Lookup(p.Name)
		switch {
		case !ok:
			out = append(out, Mismatch{Player: p.Name, Assigned: p.Group})
		case g.ID != p.Group:
			out = append(out, Mismatch{Player: p.Name, Assigned: p.Group, Roster: g.ID})
		}
	}
	return out
}

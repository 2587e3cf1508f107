package render

import (
	"encoding/json"
	"io"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
)

// JSON writes the snapshot as indented JSON.
func JSON(w io.Writer, snap *leaderboard.Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snap)
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
	"github.com/pfrederiksen/league-leaderboard/internal/render"
)

// WriteOutput writes the snapshot in the specified format, to path when set and to w
// otherwise.
func WriteOutput(w io.Writer, path string, format render.Format, snap *leaderboard.Snapshot, roster leaderboard.Roster) error {
	if path == "" {
		if err := render.Write(w, format, snap, roster); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		return nil
	}
	return writeFile(path, func(f *os.File) error {
		return render.Write(f, format, snap, roster)
	})
}

// writeFile creates path and hands it to write. The file is removed if write fails so a
// failed run never leaves a truncated export behind.
func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("writing output: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output file: %w", err)
	}
	return nil
}

// selectPlayers returns a view of snap restricted to one group (when group is set) and
// in the requested order. Ranks stay the overall ranks.
func selectPlayers(snap *leaderboard.Snapshot, roster leaderboard.Roster, group string, order SortOrder) (*leaderboard.Snapshot, error) {
	view := *snap
	view.Players = append([]leaderboard.PlayerEntry(nil), snap.Players...)

	if group != "" {
		id := leaderboard.Group(strings.ToUpper(strings.TrimSpace(group)))
		if _, ok := roster.Info(id); !ok {
			return nil, fmt.Errorf("unknown group: %s", group)
		}
		view.Players = snap.Group(id)
	}

	sortPlayers(view.Players, roster, order)
	return &view, nil
}

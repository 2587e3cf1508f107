// Package loader runs one complete leaderboard load: fetch, tokenize, extract.
package loader

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pfrederiksen/league-leaderboard/internal/leaderboard"
	"github.com/pfrederiksen/league-leaderboard/internal/logger"
	"github.com/pfrederiksen/league-leaderboard/internal/sheet"
)

// Source supplies sheet records. *source.Client and *source.File implement it.
type Source interface {
	Records(ctx context.Context) ([]sheet.Record, error)
	URL() string
}

// Loader derives a fresh snapshot on every call. It holds no state between loads.
type Loader struct {
	src       Source
	extractor *leaderboard.Extractor
	log       *logger.Logger
	metrics   *Metrics
}

// New creates a Loader. A nil log uses the package default; nil metrics are not recorded.
func New(src Source, extractor *leaderboard.Extractor, log *logger.Logger, metrics *Metrics) *Loader {
	if log == nil {
		log = logger.Default()
	}
	return &Loader{
		src:       src,
		extractor: extractor,
		log:       log.With(logger.Fields{"component": "loader"}),
		metrics:   metrics,
	}
}

// Load fetches the sheet and extracts a snapshot. Any error means the fetch (or decode)
// failed and no snapshot was produced; row-level problems never surface here.
func (l *Loader) Load(ctx context.Context) (*leaderboard.Snapshot, error) {
	log := l.log.With(logger.Fields{"load_id": uuid.NewString()})
	log.Debug("Loading leaderboard", logger.Fields{"source": l.src.URL()})

	start := time.Now()
	records, err := l.src.Records(ctx)
	l.metrics.observeFetch(time.Since(start))
	if err != nil {
		l.metrics.loadFailed()
		log.Error("Leaderboard load failed", logger.Fields{"source": l.src.URL()}, err)
		return nil, err
	}

	snap := l.extractor.Extract(records)
	l.metrics.loadSucceeded(len(snap.Players))

	fields := logger.Fields{
		"records":       len(records),
		"players":       len(snap.Players),
		"weeks":         len(snap.WeekHeaders),
		"total_birdies": snap.TotalBirdies,
		"duration_ms":   time.Since(start).Milliseconds(),
	}
	if capacity := l.extractor.Roster().Capacity(); len(snap.Players) < capacity {
		fields["expected_players"] = capacity
		log.Warn("Sheet has fewer player rows than the roster", fields)
	} else {
		log.Info("Leaderboard loaded", fields)
	}

	for _, m := range leaderboard.CheckRoster(snap, l.extractor.Roster()) {
		log.Warn("Player group differs from roster", logger.Fields{
			"player":   m.Player,
			"assigned": m.Assigned,
			"roster":   m.Roster,
		})
	}

	return snap, nil
}

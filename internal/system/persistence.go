package system

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/l1jgo/bestiary/internal/core/event"
	coresys "github.com/l1jgo/bestiary/internal/core/system"
	"github.com/l1jgo/bestiary/internal/lore"
	"github.com/l1jgo/bestiary/internal/persist"
)

// PersistenceSystem periodically saves the lore of races that changed.
// LoreChanged events mark a race dirty; every interval ticks the dirty
// records are written in one batch. Phase 3 (Persist).
type PersistenceSystem struct {
	tracker   *lore.Tracker
	store     persist.LoreStore
	log       *zap.Logger
	dirty     map[int]struct{}
	tickCount int
	interval  int // save every N ticks
}

func NewPersistenceSystem(tracker *lore.Tracker, store persist.LoreStore, bus *event.Bus, log *zap.Logger, intervalTicks int) *PersistenceSystem {
	if log == nil {
		log = zap.NewNop()
	}
	s := &PersistenceSystem{
		tracker:  tracker,
		store:    store,
		log:      log,
		dirty:    make(map[int]struct{}),
		interval: max(intervalTicks, 1),
	}
	event.Subscribe(bus, func(e event.LoreChanged) {
		s.dirty[e.RaceID] = struct{}{}
	})
	return s
}

func (s *PersistenceSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *PersistenceSystem) Update(_ time.Duration) {
	s.tickCount++
	if s.tickCount < s.interval {
		return
	}
	s.tickCount = 0
	s.saveDirty()
}

// Dirty returns the number of races waiting to be saved.
func (s *PersistenceSystem) Dirty() int {
	return len(s.dirty)
}

func (s *PersistenceSystem) saveDirty() {
	if s.store == nil || len(s.dirty) == 0 {
		return
	}
	ids := make([]int, 0, len(s.dirty))
	for id := range s.dirty {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	recs := make([]lore.Record, 0, len(ids))
	for _, id := range ids {
		recs = append(recs, s.tracker.Get(id))
	}
	if s.save(recs) {
		clear(s.dirty)
	}
}

// SaveAll writes every record, dirty or not. Called on shutdown so nothing
// is lost between intervals.
func (s *PersistenceSystem) SaveAll() {
	if s.store == nil {
		return
	}
	if s.save(s.tracker.Records()) {
		clear(s.dirty)
	}
}

func (s *PersistenceSystem) save(recs []lore.Record) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.store.Save(ctx, recs); err != nil {
		s.log.Error("lore save failed", zap.Int("records", len(recs)), zap.Error(err))
		return false
	}
	s.log.Debug("lore saved", zap.Int("records", len(recs)))
	return true
}

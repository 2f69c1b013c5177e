package lore

import (
	"sort"
	"sync"

	"github.com/l1jgo/bestiary/internal/data"
)

// Tracker owns the lore records of every race. All mutations are
// serialized, so simulations running on several goroutines may share one.
type Tracker struct {
	mu      sync.Mutex
	races   *data.RaceTable
	records map[int]*Record

	watchers  map[int]func(raceID int)
	nextWatch int
}

// NewTracker returns an empty tracker for races.
func NewTracker(races *data.RaceTable) *Tracker {
	return &Tracker{
		races:   races,
		records: make(map[int]*Record, races.Count()),
	}
}

// Races returns the race table the tracker validates against.
func (t *Tracker) Races() *data.RaceTable {
	return t.races
}

// update applies fn to the record of raceID under the lock. Unknown races
// are ignored.
func (t *Tracker) update(raceID int, fn func(rec *Record, race *data.Race)) {
	race := t.races.Get(raceID)
	if race == nil {
		return
	}
	t.mu.Lock()
	rec := t.recordLocked(raceID)
	before := *rec
	fn(rec, race)
	rec.Clamp(race)
	changed := *rec != before
	var notify []func(int)
	if changed {
		for _, fn := range t.watchers {
			notify = append(notify, fn)
		}
	}
	t.mu.Unlock()

	for _, fn := range notify {
		fn(raceID)
	}
}

// Watch registers fn to be called, outside the lock, after any record
// changes. The returned func removes it again.
func (t *Tracker) Watch(fn func(raceID int)) (cancel func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.watchers == nil {
		t.watchers = make(map[int]func(int))
	}
	id := t.nextWatch
	t.nextWatch++
	t.watchers[id] = fn
	return func() {
		t.mu.Lock()
		delete(t.watchers, id)
		t.mu.Unlock()
	}
}

func (t *Tracker) recordLocked(raceID int) *Record {
	rec := t.records[raceID]
	if rec == nil {
		rec = &Record{RaceID: raceID}
		t.records[raceID] = rec
	}
	return rec
}

// Get returns a copy of the record for raceID (zero if nothing is known).
func (t *Tracker) Get(raceID int) Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rec := t.records[raceID]; rec != nil {
		return *rec
	}
	return Record{RaceID: raceID}
}

func (t *Tracker) RecordSighting(raceID int) {
	t.update(raceID, func(rec *Record, _ *data.Race) { rec.AddSighting() })
}

func (t *Tracker) RecordBlowObserved(raceID, slot int) {
	t.update(raceID, func(rec *Record, _ *data.Race) { rec.AddBlow(slot) })
}

// RecordDrop notes a drop of items objects and gold piles; the largest
// seen is kept.
func (t *Tracker) RecordDrop(raceID, items, gold int) {
	t.update(raceID, func(rec *Record, _ *data.Race) { rec.NoteDrop(items, gold) })
}

func (t *Tracker) RecordPlayerDeath(raceID int) {
	t.update(raceID, func(rec *Record, _ *data.Race) { rec.AddDeath() })
}

func (t *Tracker) RecordKill(raceID int) {
	t.update(raceID, func(rec *Record, _ *data.Race) { rec.AddKill() })
}

func (t *Tracker) RecordWake(raceID int) {
	t.update(raceID, func(rec *Record, _ *data.Race) { rec.AddWake() })
}

func (t *Tracker) RecordIgnore(raceID int) {
	t.update(raceID, func(rec *Record, _ *data.Race) { rec.AddIgnore() })
}

// RecordSpell marks spell id as known and counts the cast.
func (t *Tracker) RecordSpell(raceID int, id data.SpellID, innate bool) {
	t.update(raceID, func(rec *Record, _ *data.Race) {
		if id.Valid() {
			rec.Spells.On(id)
		}
		rec.AddCast(innate)
	})
}

// ObserveFlag learns whether the race has flag f.
func (t *Tracker) ObserveFlag(raceID int, f data.RaceFlag) {
	t.update(raceID, func(rec *Record, race *data.Race) { rec.Learn(race, f) })
}

// ObserveFlags learns several flags at once.
func (t *Tracker) ObserveFlags(raceID int, flags ...data.RaceFlag) {
	t.update(raceID, func(rec *Record, race *data.Race) {
		for _, f := range flags {
			rec.Learn(race, f)
		}
	})
}

// Probe reveals every flag and spell of the race.
func (t *Tracker) Probe(raceID int) {
	t.update(raceID, func(rec *Record, race *data.Race) {
		rec.Flags = race.Flags
		rec.Absent = allRaceFlags.Diff(race.Flags)
		rec.Spells = race.Spells
	})
}

// CheatFill makes the record of raceID know everything.
func (t *Tracker) CheatFill(raceID int) {
	t.update(raceID, func(rec *Record, race *data.Race) { *rec = rec.Cheat(race) })
}

// CheatAll cheat-fills every race.
func (t *Tracker) CheatAll() {
	for _, r := range t.races.All() {
		t.CheatFill(r.ID)
	}
}

// Wipe forgets everything about raceID.
func (t *Tracker) Wipe(raceID int) {
	t.update(raceID, func(rec *Record, _ *data.Race) { *rec = Record{RaceID: raceID} })
}

// WipeAll forgets everything about every race.
func (t *Tracker) WipeAll() {
	for _, id := range t.ids() {
		t.Wipe(id)
	}
}

// NewLife clears the kills of this life. Knowledge earned by earlier
// characters is kept.
func (t *Tracker) NewLife() {
	for _, id := range t.ids() {
		t.update(id, func(rec *Record, _ *data.Race) { rec.PKills = 0 })
	}
}

func (t *Tracker) ids() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]int, 0, len(t.records))
	for id := range t.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Records returns a copy of every record, ordered by race id.
func (t *Tracker) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Record, 0, len(t.records))
	for _, rec := range t.records {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RaceID < out[j].RaceID })
	return out
}

// Restore replaces the records of the given races. Records of unknown races
// are dropped; the rest are clamped. It returns the number restored.
func (t *Tracker) Restore(recs []Record) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, in := range recs {
		race := t.races.Get(in.RaceID)
		if race == nil {
			continue
		}
		rec := in
		rec.Clamp(race)
		t.records[rec.RaceID] = &rec
		n++
	}
	return n
}

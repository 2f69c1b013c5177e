// Package lore tracks what the player has learned about each monster race.
package lore

import (
	"github.com/l1jgo/bestiary/internal/core/bitflag"
	"github.com/l1jgo/bestiary/internal/data"
)

// Counter limits. Eight-bit counters stop at MaxByte, sixteen-bit ones at
// MaxShort.
const (
	MaxByte  = 255
	MaxShort = 32767
)

// Record is the accumulated knowledge of one race. It is a plain value;
// the Tracker hands out copies.
type Record struct {
	RaceID int

	Sights uint16 // times seen
	Deaths uint16 // player deaths, all lives
	PKills uint16 // kills in this life
	TKills uint16 // kills in all lives

	Wake   uint8
	Ignore uint8

	Blows [data.MaxBlows]uint8 // observations per blow slot

	CastInnate uint8
	CastSpell  uint8

	DropGold uint8 // most gold piles seen dropped at once
	DropItem uint8 // most items seen dropped at once

	Flags  data.RaceFlags // known present, always within the race flags
	Absent data.RaceFlags // known absent, never within the race flags
	Spells data.SpellSet  // known spells, always within the race spells
}

func inc8(c *uint8) {
	if *c < MaxByte {
		*c++
	}
}

func inc16(c *uint16) {
	if *c < MaxShort {
		*c++
	}
}

func raise8(c *uint8, n int) {
	n = min(max(n, 0), MaxByte)
	if uint8(n) > *c {
		*c = uint8(n)
	}
}

// AddSighting counts one more sighting.
func (r *Record) AddSighting() { inc16(&r.Sights) }

// AddDeath counts a player death.
func (r *Record) AddDeath() { inc16(&r.Deaths) }

// AddKill counts a kill in this life and overall.
func (r *Record) AddKill() {
	inc16(&r.PKills)
	inc16(&r.TKills)
}

// AddBlow counts an observation of blow slot. Out of range slots are ignored.
func (r *Record) AddBlow(slot int) {
	if slot < 0 || slot >= data.MaxBlows {
		return
	}
	inc8(&r.Blows[slot])
}

// AddCast counts a cast, innate or magical.
func (r *Record) AddCast(innate bool) {
	if innate {
		inc8(&r.CastInnate)
	} else {
		inc8(&r.CastSpell)
	}
}

func (r *Record) AddWake()   { inc8(&r.Wake) }
func (r *Record) AddIgnore() { inc8(&r.Ignore) }

// NoteDrop keeps the largest item and gold drops seen.
func (r *Record) NoteDrop(items, gold int) {
	raise8(&r.DropItem, items)
	raise8(&r.DropGold, gold)
}

// Learn records flag f as observed on race. Flags the race lacks are
// remembered as known absent.
func (r *Record) Learn(race *data.Race, f data.RaceFlag) {
	if race.Flags.Has(f) {
		r.Flags.On(f)
	} else {
		r.Absent.On(f)
	}
}

// Clamp restores the invariants against race: known flags and spells are
// cut down to what the race has, and absent flags to what it lacks.
// It reports whether anything changed.
func (r *Record) Clamp(race *data.Race) bool {
	before := *r
	r.Flags = r.Flags.Inter(race.Flags)
	r.Absent = r.Absent.Inter(allRaceFlags).Diff(race.Flags)
	r.Spells = r.Spells.Inter(race.Spells)
	for i := race.BlowCount(); i < data.MaxBlows; i++ {
		r.Blows[i] = 0
	}
	return *r != before
}

var allRaceFlags = bitflag.Upto(data.RaceFlagCount)

// Cheat returns a record that knows everything about race. Player history
// (deaths, kills this life) is carried over from r.
func (r Record) Cheat(race *data.Race) Record {
	out := Record{
		RaceID:     race.ID,
		Sights:     MaxShort,
		Deaths:     r.Deaths,
		PKills:     r.PKills,
		TKills:     MaxShort,
		Wake:       MaxByte,
		Ignore:     MaxByte,
		CastInnate: MaxByte,
		CastSpell:  MaxByte,
		Flags:      race.Flags,
		Absent:     allRaceFlags.Diff(race.Flags),
		Spells:     race.Spells,
	}
	for i := 0; i < race.BlowCount(); i++ {
		out.Blows[i] = MaxByte
	}
	drops := CheatDrops(race)
	if !race.Flags.Has(data.RFOnlyGold) {
		out.DropItem = uint8(drops)
	}
	if !race.Flags.Has(data.RFOnlyItem) {
		out.DropGold = uint8(drops)
	}
	return out
}

// CheatDrops is the maximum number of objects race can drop per its flags.
func CheatDrops(race *data.Race) int {
	n := 0
	if race.Flags.Has(data.RFDrop4D2) {
		n += 8
	}
	if race.Flags.Has(data.RFDrop3D2) {
		n += 6
	}
	if race.Flags.Has(data.RFDrop2D2) {
		n += 4
	}
	if race.Flags.Has(data.RFDrop1D2) {
		n += 2
	}
	if race.Flags.Has(data.RFDrop90) {
		n++
	}
	if race.Flags.Has(data.RFDrop60) {
		n++
	}
	return n
}

package lore

import "github.com/l1jgo/bestiary/internal/data"

// IsArmorKnown reports whether enough kills have been made to reveal armour,
// hit points and hit chance. Uniques need far fewer kills.
func IsArmorKnown(race *data.Race, rec Record) bool {
	kills := int(rec.TKills)
	if kills > 304/(4+race.Level) {
		return true
	}
	return race.Unique() && kills > 304/(38+5*race.Level/4)
}

// IsDamageKnown reports whether blow slot has been seen often enough,
// relative to its maximum damage, to reveal its dice.
func IsDamageKnown(race *data.Race, rec Record, slot int) bool {
	if slot < 0 || slot >= data.MaxBlows {
		return false
	}
	seen := int(rec.Blows[slot])
	maxDam := race.Blows[slot].MaxDamage()
	level := 4 + race.Level
	if level*seen >= 80*maxDam {
		return true
	}
	return race.Unique() && level*2*seen >= 80*maxDam
}

// KnownFlags is the set of race flags the player may see: observed flags,
// flags obvious on sight, and once the race has been killed, the flags that
// define its kind and depth.
func KnownFlags(race *data.Race, rec Record) data.RaceFlags {
	known := rec.Flags.Union(data.ObviousFlags)
	if rec.TKills > 0 {
		known = known.Union(data.KindFlags).Union(data.ForcedFlags)
	}
	return race.Flags.Inter(known)
}

// KnownAbsent is the set of flags the player knows the race lacks.
func KnownAbsent(race *data.Race, rec Record) data.RaceFlags {
	return rec.Absent.Diff(race.Flags)
}

// KnownSpells is the set of the race's spells the player has seen.
func KnownSpells(race *data.Race, rec Record) data.SpellSet {
	return race.Spells.Inter(rec.Spells)
}

// SpellFreqKnown reports whether enough casts have been seen to state the
// casting frequency.
func SpellFreqKnown(rec Record) bool {
	return int(rec.CastInnate)+int(rec.CastSpell) > 100
}

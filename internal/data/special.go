package data

// Special is a one-shot side effect of a spell or element.
type Special int

const (
	SpecialNone Special = iota
	SpecialInvDamage
	SpecialTeleport
	SpecialTeleportTo
	SpecialTeleportLevel
	SpecialTeleportSelf
	SpecialBlink
	SpecialDrainLife
	SpecialDrainStat
	SpecialSwapStat
	SpecialDrainAll
	SpecialDisenchant
	SpecialDrainMana
	SpecialHeal
	SpecialHaste
	SpecialSummon
	SpecialCreateTraps
	SpecialDarkness
	SpecialAggravate
	SpecialCount
)

var specialNames = [SpecialCount]string{
	"NONE", "INV_DAM", "TELEPORT", "TELE_TO", "TELE_LEV", "TELE_SELF",
	"BLINK", "DRAIN_LIFE", "DRAIN_STAT", "SWAP_STAT", "DRAIN_ALL",
	"DISEN", "DRAIN_MANA", "HEAL", "HASTE", "SUMMON", "CREATE_TRAPS",
	"DARKEN", "AGGRAVATE",
}

var specialByName = nameIndex[Special](SpecialCount, func(s Special) string { return specialNames[s] })

func (s Special) Valid() bool {
	return s >= 0 && s < SpecialCount
}

func (s Special) String() string {
	if !s.Valid() {
		return "UNKNOWN"
	}
	return specialNames[s]
}

// SummonKind narrows which races a summon spell may bring in.
type SummonKind int

const (
	SummonKin SummonKind = iota
	SummonMonster
	SummonMonsters
	SummonAnimal
	SummonSpider
	SummonHound
	SummonHydra
	SummonAngel
	SummonDemon
	SummonUndead
	SummonDragon
	SummonHiDemon
	SummonHiUndead
	SummonHiDragon
	SummonWraith
	SummonUnique
	SummonKindCount
)

var summonNames = [SummonKindCount]string{
	"KIN", "MONSTER", "MONSTERS", "ANIMAL", "SPIDER", "HOUND", "HYDRA",
	"ANGEL", "DEMON", "UNDEAD", "DRAGON", "HI_DEMON", "HI_UNDEAD",
	"HI_DRAGON", "WRAITH", "UNIQUE",
}

var summonByName = nameIndex[SummonKind](SummonKindCount, func(k SummonKind) string { return summonNames[k] })

func (k SummonKind) String() string {
	if k < 0 || k >= SummonKindCount {
		return "UNKNOWN"
	}
	return summonNames[k]
}

// Matches reports whether r may answer a summon of kind k cast by caster.
// Uniques only answer SummonUnique and SummonKin.
func (k SummonKind) Matches(r, caster *Race) bool {
	if r == nil {
		return false
	}
	unique := r.Flags.Has(RFUnique)
	switch k {
	case SummonKin:
		return caster != nil && r.Glyph == caster.Glyph && r.ID != caster.ID
	case SummonMonster, SummonMonsters:
		return !unique
	case SummonAnimal:
		return !unique && r.Flags.Has(RFAnimal)
	case SummonSpider:
		return !unique && r.Glyph == "S"
	case SummonHound:
		return !unique && (r.Glyph == "C" || r.Glyph == "Z")
	case SummonHydra:
		return !unique && r.Glyph == "M"
	case SummonAngel:
		return !unique && r.Glyph == "A"
	case SummonDemon:
		return !unique && r.Flags.Has(RFDemon)
	case SummonUndead:
		return !unique && r.Flags.Has(RFUndead)
	case SummonDragon:
		return !unique && r.Flags.Has(RFDragon)
	case SummonHiDemon:
		return r.Glyph == "U"
	case SummonHiUndead:
		return r.Glyph == "L" || r.Glyph == "V" || r.Glyph == "W"
	case SummonHiDragon:
		return r.Glyph == "D"
	case SummonWraith:
		return r.Glyph == "W" && unique
	case SummonUnique:
		return unique
	}
	return false
}

package data

import "github.com/l1jgo/bestiary/internal/core/bitflag"

// SpellID identifies a monster spell. The order is the recall catalog
// order: innate attacks first, then breaths, then magic.
type SpellID int

// SpellNone marks a spell-effect row that matches by element only.
const SpellNone SpellID = -1

const (
	SpellShriek SpellID = iota
	SpellArrow1
	SpellArrow2
	SpellArrow3
	SpellArrow4
	SpellBrAcid
	SpellBrElec
	SpellBrFire
	SpellBrCold
	SpellBrPois
	SpellBrNeth
	SpellBrLight
	SpellBrDark
	SpellBrSound
	SpellBrChaos
	SpellBrDisen
	SpellBrNexus
	SpellBrTime
	SpellBrInertia
	SpellBrGravity
	SpellBrShard
	SpellBrPlasma
	SpellBrWall
	SpellBrMana
	SpellBoulder
	SpellBaAcid
	SpellBaElec
	SpellBaFire
	SpellBaCold
	SpellBaPois
	SpellBaNeth
	SpellBaWater
	SpellBaMana
	SpellBaDark
	SpellDrainMana
	SpellMindBlast
	SpellBrainSmash
	SpellCause1
	SpellCause2
	SpellCause3
	SpellCause4
	SpellBoAcid
	SpellBoElec
	SpellBoFire
	SpellBoCold
	SpellBoNeth
	SpellBoWater
	SpellBoMana
	SpellBoPlasma
	SpellBoIce
	SpellMissile
	SpellScare
	SpellBlind
	SpellConf
	SpellSlow
	SpellHold
	SpellHaste
	SpellHeal
	SpellBlink
	SpellTport
	SpellTeleTo
	SpellTeleAway
	SpellTeleLevel
	SpellDarkness
	SpellTraps
	SpellForget
	SpellSKin
	SpellSMonster
	SpellSMonsters
	SpellSAnimal
	SpellSSpider
	SpellSHound
	SpellSHydra
	SpellSAngel
	SpellSDemon
	SpellSUndead
	SpellSDragon
	SpellSHiDemon
	SpellSHiUndead
	SpellSHiDragon
	SpellSWraith
	SpellSUnique
	SpellCount
)

// SpellSet is a set of spells a race can cast or the player knows about.
type SpellSet = bitflag.Set[SpellID]

var spellNames = [SpellCount]string{
	"SHRIEK", "ARROW_1", "ARROW_2", "ARROW_3", "ARROW_4",
	"BR_ACID", "BR_ELEC", "BR_FIRE", "BR_COLD", "BR_POIS", "BR_NETH",
	"BR_LIGHT", "BR_DARK", "BR_SOUN", "BR_CHAO", "BR_DISE", "BR_NEXU",
	"BR_TIME", "BR_INER", "BR_GRAV", "BR_SHAR", "BR_PLAS", "BR_WALL",
	"BR_MANA", "BOULDER",
	"BA_ACID", "BA_ELEC", "BA_FIRE", "BA_COLD", "BA_POIS", "BA_NETH",
	"BA_WATE", "BA_MANA", "BA_DARK",
	"DRAIN_MANA", "MIND_BLAST", "BRAIN_SMASH",
	"CAUSE_1", "CAUSE_2", "CAUSE_3", "CAUSE_4",
	"BO_ACID", "BO_ELEC", "BO_FIRE", "BO_COLD", "BO_NETH", "BO_WATE",
	"BO_MANA", "BO_PLAS", "BO_ICEE", "MISSILE",
	"SCARE", "BLIND", "CONF", "SLOW", "HOLD", "HASTE", "HEAL", "BLINK",
	"TPORT", "TELE_TO", "TELE_AWAY", "TELE_LEVEL", "DARKNESS", "TRAPS",
	"FORGET",
	"S_KIN", "S_MONSTER", "S_MONSTERS", "S_ANIMAL", "S_SPIDER", "S_HOUND",
	"S_HYDRA", "S_ANGEL", "S_DEMON", "S_UNDEAD", "S_DRAGON", "S_HI_DEMON",
	"S_HI_UNDEAD", "S_HI_DRAGON", "S_WRAITH", "S_UNIQUE",
}

var spellByName = nameIndex[SpellID](SpellCount, func(s SpellID) string { return spellNames[s] })

func (s SpellID) Valid() bool {
	return s >= 0 && s < SpellCount
}

func (s SpellID) String() string {
	if !s.Valid() {
		return "NONE"
	}
	return spellNames[s]
}

// SpellByName looks up a spell by table name.
func SpellByName(name string) (SpellID, bool) {
	s, ok := spellByName[name]
	return s, ok
}

// SpellType is a bit mask classifying a spell.
type SpellType uint16

const (
	TypeInnate SpellType = 1 << iota
	TypeBolt
	TypeBall
	TypeBreath
	TypeDirect
	TypeSummon
	TypeAnnoy
	TypeHaste
	TypeHeal
	TypeTactic
)

var spellTypeNames = map[string]SpellType{
	"INNATE": TypeInnate,
	"BOLT":   TypeBolt,
	"BALL":   TypeBall,
	"BREATH": TypeBreath,
	"DIRECT": TypeDirect,
	"SUMMON": TypeSummon,
	"ANNOY":  TypeAnnoy,
	"HASTE":  TypeHaste,
	"HEAL":   TypeHeal,
	"TACTIC": TypeTactic,
}

// Is reports whether any bit of mask is set.
func (t SpellType) Is(mask SpellType) bool {
	return t&mask != 0
}

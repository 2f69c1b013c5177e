package data

import "github.com/l1jgo/bestiary/internal/core/bitflag"

// PlayerFlag is a player property granted by race, class or equipment.
type PlayerFlag int

const (
	PFNone PlayerFlag = iota
	PFResAcid
	PFResElec
	PFResFire
	PFResCold
	PFResPois
	PFResLight
	PFResDark
	PFResSound
	PFResShard
	PFResNexus
	PFResNether
	PFResChaos
	PFResDisen
	PFImAcid
	PFImElec
	PFImFire
	PFImCold
	PFVulnAcid
	PFVulnElec
	PFVulnFire
	PFVulnCold
	PFResFear
	PFResBlind
	PFResConf
	PFResStun
	PFFreeAct
	PFHoldLife
	PFSeeInvis
	PFSustStr
	PFSustInt
	PFSustWis
	PFSustDex
	PFSustCon
	PFNoMana // not an item property: learned by monsters when a mana drain fails
	PlayerFlagCount
)

// PlayerFlags is a set of player properties.
type PlayerFlags = bitflag.Set[PlayerFlag]

var playerFlagNames = [PlayerFlagCount]string{
	"NONE", "RES_ACID", "RES_ELEC", "RES_FIRE", "RES_COLD", "RES_POIS",
	"RES_LIGHT", "RES_DARK", "RES_SOUND", "RES_SHARD", "RES_NEXUS",
	"RES_NETHER", "RES_CHAOS", "RES_DISEN", "IM_ACID", "IM_ELEC", "IM_FIRE",
	"IM_COLD", "VULN_ACID", "VULN_ELEC", "VULN_FIRE", "VULN_COLD", "RES_FEAR",
	"RES_BLIND", "RES_CONF", "RES_STUN", "FREE_ACT", "HOLD_LIFE", "SEE_INVIS",
	"SUST_STR", "SUST_INT", "SUST_WIS", "SUST_DEX", "SUST_CON", "NO_MANA",
}

var playerFlagByName = nameIndex[PlayerFlag](PlayerFlagCount, func(f PlayerFlag) string { return playerFlagNames[f] })

func (f PlayerFlag) String() string {
	if f < 0 || f >= PlayerFlagCount {
		return "UNKNOWN"
	}
	return playerFlagNames[f]
}

// PlayerFlagByName looks up a player flag by table name.
func PlayerFlagByName(name string) (PlayerFlag, bool) {
	f, ok := playerFlagByName[name]
	return f, ok
}

// RaceFlag is a behavioural or resistance property of a monster race.
type RaceFlag int

const (
	RFUnique RaceFlag = iota
	RFQuestor
	RFMale
	RFFemale
	RFForceDepth
	RFNeverBlow
	RFNeverMove
	RFRand25
	RFRand50
	RFOnlyGold
	RFOnlyItem
	RFDrop60
	RFDrop90
	RFDrop1D2
	RFDrop2D2
	RFDrop3D2
	RFDrop4D2
	RFDropGood
	RFDropGreat
	RFStupid
	RFSmart
	RFInvisible
	RFColdBlood
	RFEmptyMind
	RFWeirdMind
	RFMultiply
	RFRegenerate
	RFUnaware
	RFHasLight
	RFOpenDoor
	RFBashDoor
	RFPassWall
	RFKillWall
	RFMoveBody
	RFKillBody
	RFTakeItem
	RFKillItem
	RFOrc
	RFTroll
	RFGiant
	RFDragon
	RFDemon
	RFUndead
	RFEvil
	RFAnimal
	RFMetal
	RFHurtLight
	RFHurtRock
	RFHurtFire
	RFHurtCold
	RFImAcid
	RFImElec
	RFImFire
	RFImCold
	RFImPois
	RFImWater
	RFImNether
	RFImPlasma
	RFImNexus
	RFImDisen
	RFNoFear
	RFNoConf
	RFNoSleep
	RFNoStun
	RFFriend
	RFFriends
	RFEscort
	RFEscorts
	RaceFlagCount
)

// RaceFlags is a set of race properties.
type RaceFlags = bitflag.Set[RaceFlag]

var raceFlagNames = [RaceFlagCount]string{
	"UNIQUE", "QUESTOR", "MALE", "FEMALE", "FORCE_DEPTH", "NEVER_BLOW",
	"NEVER_MOVE", "RAND_25", "RAND_50", "ONLY_GOLD", "ONLY_ITEM", "DROP_60",
	"DROP_90", "DROP_1D2", "DROP_2D2", "DROP_3D2", "DROP_4D2", "DROP_GOOD",
	"DROP_GREAT", "STUPID", "SMART", "INVISIBLE", "COLD_BLOOD", "EMPTY_MIND",
	"WEIRD_MIND", "MULTIPLY", "REGENERATE", "UNAWARE", "HAS_LIGHT",
	"OPEN_DOOR", "BASH_DOOR", "PASS_WALL", "KILL_WALL", "MOVE_BODY",
	"KILL_BODY", "TAKE_ITEM", "KILL_ITEM", "ORC", "TROLL", "GIANT", "DRAGON",
	"DEMON", "UNDEAD", "EVIL", "ANIMAL", "METAL", "HURT_LIGHT", "HURT_ROCK",
	"HURT_FIRE", "HURT_COLD", "IM_ACID", "IM_ELEC", "IM_FIRE", "IM_COLD",
	"IM_POIS", "IM_WATER", "IM_NETHER", "IM_PLASMA", "IM_NEXUS", "IM_DISEN",
	"NO_FEAR", "NO_CONF", "NO_SLEEP", "NO_STUN", "FRIEND", "FRIENDS",
	"ESCORT", "ESCORTS",
}

var raceFlagByName = nameIndex[RaceFlag](RaceFlagCount, func(f RaceFlag) string { return raceFlagNames[f] })

func (f RaceFlag) String() string {
	if f < 0 || f >= RaceFlagCount {
		return "UNKNOWN"
	}
	return raceFlagNames[f]
}

// RaceFlagByName looks up a race flag by table name.
func RaceFlagByName(name string) (RaceFlag, bool) {
	f, ok := raceFlagByName[name]
	return f, ok
}

// Flag groups used by the lore tracker and the recall renderer.
var (
	// ObviousFlags are known as soon as the race is seen.
	ObviousFlags = bitflag.Of(RFUnique, RFQuestor, RFMale, RFFemale,
		RFFriend, RFFriends, RFEscort, RFEscorts)
	// KindFlags define what a race is; revealed by the first kill.
	KindFlags = bitflag.Of(RFOrc, RFTroll, RFGiant, RFDragon, RFDemon,
		RFUndead, RFEvil, RFAnimal, RFMetal)
	// ForcedFlags are revealed by the first kill as well.
	ForcedFlags = bitflag.Of(RFForceDepth)

	VulnerableFlags = bitflag.Of(RFHurtRock, RFHurtLight, RFHurtFire, RFHurtCold)
	ImmuneFlags     = bitflag.Of(RFImAcid, RFImElec, RFImFire, RFImCold, RFImPois,
		RFImWater, RFImNether, RFImPlasma, RFImNexus, RFImDisen)
	ProtectionFlags = bitflag.Of(RFNoStun, RFNoFear, RFNoConf, RFNoSleep)
)

// VulnerabilityCancels maps a vulnerability to the immunity it rules out.
var VulnerabilityCancels = map[RaceFlag]RaceFlag{
	RFHurtFire: RFImFire,
	RFHurtCold: RFImCold,
}

// Stat is one of the player's five attributes.
type Stat int

const (
	StatStr Stat = iota
	StatInt
	StatWis
	StatDex
	StatCon
	StatCount
)

var statNames = [StatCount]string{"STR", "INT", "WIS", "DEX", "CON"}

var statByName = nameIndex[Stat](StatCount, func(s Stat) string { return statNames[s] })

func (s Stat) String() string {
	if s < 0 || s >= StatCount {
		return "UNKNOWN"
	}
	return statNames[s]
}

// StatByName looks up a stat by table name.
func StatByName(name string) (Stat, bool) {
	s, ok := statByName[name]
	return s, ok
}

// Sustain returns the flag that protects s from draining.
func (s Stat) Sustain() PlayerFlag {
	return PFSustStr + PlayerFlag(s)
}

package data

// Element is a projection type carried by spells and elemental blows.
type Element int

const (
	ElemNone Element = iota
	ElemAcid
	ElemElec
	ElemFire
	ElemCold
	ElemPois
	ElemLight
	ElemDark
	ElemSound
	ElemShard
	ElemNexus
	ElemNether
	ElemChaos
	ElemDisen
	ElemWater
	ElemIce
	ElemGravity
	ElemInertia
	ElemForce
	ElemTime
	ElemPlasma
	ElemMeteor
	ElemMissile
	ElemMana
	ElemHolyOrb
	ElemArrow
	ElementCount
)

// ElementInfo describes how an element interacts with player resistances.
// A resisted hit deals Num/(DenomBase + roll) of the damage, where roll is
// 1..DenomDice when DenomDice > 0. Num == 0 means the element cannot be
// resisted.
type ElementInfo struct {
	Name       string
	Desc       string
	Resist     PlayerFlag
	Immune     PlayerFlag
	Vuln       PlayerFlag
	SideImmune bool // immunity also blocks side effects
	Num        int
	DenomBase  int
	DenomDice  int
}

var elements = [ElementCount]ElementInfo{
	ElemNone:    {Name: "NONE", Desc: "nothing"},
	ElemAcid:    {Name: "ACID", Desc: "acid", Resist: PFResAcid, Immune: PFImAcid, Vuln: PFVulnAcid, SideImmune: true, Num: 1, DenomBase: 3},
	ElemElec:    {Name: "ELEC", Desc: "lightning", Resist: PFResElec, Immune: PFImElec, Vuln: PFVulnElec, SideImmune: true, Num: 1, DenomBase: 3},
	ElemFire:    {Name: "FIRE", Desc: "fire", Resist: PFResFire, Immune: PFImFire, Vuln: PFVulnFire, SideImmune: true, Num: 1, DenomBase: 3},
	ElemCold:    {Name: "COLD", Desc: "frost", Resist: PFResCold, Immune: PFImCold, Vuln: PFVulnCold, SideImmune: true, Num: 1, DenomBase: 3},
	ElemPois:    {Name: "POIS", Desc: "poison", Resist: PFResPois, Num: 1, DenomBase: 3},
	ElemLight:   {Name: "LIGHT", Desc: "light", Resist: PFResLight, Num: 4, DenomBase: 6, DenomDice: 6},
	ElemDark:    {Name: "DARK", Desc: "darkness", Resist: PFResDark, Num: 4, DenomBase: 6, DenomDice: 6},
	ElemSound:   {Name: "SOUND", Desc: "sound", Resist: PFResSound, Num: 5, DenomBase: 6, DenomDice: 6},
	ElemShard:   {Name: "SHARD", Desc: "shards", Resist: PFResShard, Num: 6, DenomBase: 6, DenomDice: 6},
	ElemNexus:   {Name: "NEXUS", Desc: "nexus", Resist: PFResNexus, Num: 6, DenomBase: 6, DenomDice: 6},
	ElemNether:  {Name: "NETHER", Desc: "nether", Resist: PFResNether, Num: 6, DenomBase: 6, DenomDice: 6},
	ElemChaos:   {Name: "CHAOS", Desc: "chaos", Resist: PFResChaos, Num: 6, DenomBase: 6, DenomDice: 6},
	ElemDisen:   {Name: "DISEN", Desc: "disenchantment", Resist: PFResDisen, Num: 6, DenomBase: 6, DenomDice: 6},
	ElemWater:   {Name: "WATER", Desc: "water"},
	ElemIce:     {Name: "ICE", Desc: "ice"},
	ElemGravity: {Name: "GRAVITY", Desc: "gravity"},
	ElemInertia: {Name: "INERTIA", Desc: "inertia"},
	ElemForce:   {Name: "FORCE", Desc: "force"},
	ElemTime:    {Name: "TIME", Desc: "time"},
	ElemPlasma:  {Name: "PLASMA", Desc: "plasma"},
	ElemMeteor:  {Name: "METEOR", Desc: "meteors"},
	ElemMissile: {Name: "MISSILE", Desc: "magic missiles"},
	ElemMana:    {Name: "MANA", Desc: "mana"},
	ElemHolyOrb: {Name: "HOLY_ORB", Desc: "holy power"},
	ElemArrow:   {Name: "ARROW", Desc: "arrows"},
}

var elementByName = nameIndex[Element](ElementCount, func(e Element) string { return elements[e].Name })

// Info returns the resistance data for e. Panics on an invalid element.
func (e Element) Info() *ElementInfo {
	if !e.Valid() {
		panic("data: invalid element")
	}
	return &elements[e]
}

func (e Element) Valid() bool {
	return e >= 0 && e < ElementCount
}

func (e Element) String() string {
	if !e.Valid() {
		return "UNKNOWN"
	}
	return elements[e].Name
}

// Resistible reports whether a player can resist e at all.
func (e Element) Resistible() bool {
	return e.Info().Num > 0
}

// ElementByName looks up an element by its table name.
func ElementByName(name string) (Element, bool) {
	e, ok := elementByName[name]
	return e, ok
}

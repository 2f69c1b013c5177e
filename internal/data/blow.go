package data

// MaxBlows is the number of melee slots a race can define.
const MaxBlows = 4

// BlowMethod is how a monster delivers a blow.
type BlowMethod int

// MethodUnknown marks a blow whose method name did not resolve. It is not
// MethodNone, so the blow list keeps going past it.
const MethodUnknown BlowMethod = -1

const (
	MethodNone BlowMethod = iota
	MethodHit
	MethodTouch
	MethodPunch
	MethodKick
	MethodClaw
	MethodBite
	MethodSting
	MethodButt
	MethodCrush
	MethodEngulf
	MethodCrawl
	MethodDrool
	MethodSpit
	MethodGaze
	MethodWail
	MethodSpore
	MethodBeg
	MethodInsult
	MethodMoan
	BlowMethodCount
)

// MethodInfo holds the fixed narration and critical eligibility of a method.
type MethodInfo struct {
	Name     string
	Act      string // "hits you." (empty: pick from Insults/Moans)
	Desc     string // recall verb
	Cut      bool
	Stun     bool
	MissText bool // visible misses are narrated
}

var methods = [BlowMethodCount]MethodInfo{
	MethodNone:   {Name: "NONE"},
	MethodHit:    {Name: "HIT", Act: "hits you.", Desc: "hit", Cut: true, Stun: true, MissText: true},
	MethodTouch:  {Name: "TOUCH", Act: "touches you.", Desc: "touch"},
	MethodPunch:  {Name: "PUNCH", Act: "punches you.", Desc: "punch", Stun: true},
	MethodKick:   {Name: "KICK", Act: "kicks you.", Desc: "kick", Stun: true},
	MethodClaw:   {Name: "CLAW", Act: "claws you.", Desc: "claw", Cut: true, MissText: true},
	MethodBite:   {Name: "BITE", Act: "bites you.", Desc: "bite", Cut: true, MissText: true},
	MethodSting:  {Name: "STING", Act: "stings you.", Desc: "sting", MissText: true},
	MethodButt:   {Name: "BUTT", Act: "butts you.", Desc: "butt", Stun: true, MissText: true},
	MethodCrush:  {Name: "CRUSH", Act: "crushes you.", Desc: "crush", Stun: true, MissText: true},
	MethodEngulf: {Name: "ENGULF", Act: "engulfs you.", Desc: "engulf", MissText: true},
	MethodCrawl:  {Name: "CRAWL", Act: "crawls on you.", Desc: "crawl on you"},
	MethodDrool:  {Name: "DROOL", Act: "drools on you.", Desc: "drool on you"},
	MethodSpit:   {Name: "SPIT", Act: "spits on you.", Desc: "spit"},
	MethodGaze:   {Name: "GAZE", Act: "gazes at you.", Desc: "gaze"},
	MethodWail:   {Name: "WAIL", Act: "wails at you.", Desc: "wail"},
	MethodSpore:  {Name: "SPORE", Act: "releases spores at you.", Desc: "release spores"},
	MethodBeg:    {Name: "BEG", Act: "begs you for money.", Desc: "beg"},
	MethodInsult: {Name: "INSULT", Desc: "insult"},
	MethodMoan:   {Name: "MOAN", Desc: "moan"},
}

// Insults and Moans are the random lines for INSULT and MOAN blows.
var (
	Insults = []string{
		"insults you!",
		"insults your mother!",
		"gives you the finger!",
		"humiliates you!",
		"defiles you!",
		"dances around you!",
		"makes obscene gestures!",
		"moons you!!!",
	}
	Moans = []string{
		"seems sad about something.",
		"asks if you have seen his dogs.",
		"tells you to get off his land.",
		"mumbles something about mushrooms.",
	}
)

var methodByName = nameIndex[BlowMethod](BlowMethodCount, func(m BlowMethod) string { return methods[m].Name })

func (m BlowMethod) Valid() bool {
	return m >= 0 && m < BlowMethodCount
}

// Info returns the method data, or nil for an unknown method.
func (m BlowMethod) Info() *MethodInfo {
	if !m.Valid() {
		return nil
	}
	return &methods[m]
}

func (m BlowMethod) String() string {
	if !m.Valid() {
		return "UNKNOWN"
	}
	return methods[m].Name
}

// BlowEffect is what a landed blow does beyond its method.
type BlowEffect int

// EffectUnknown marks an effect name that did not resolve.
const EffectUnknown BlowEffect = -1

const (
	EffectNone BlowEffect = iota
	EffectHurt
	EffectPoison
	EffectUnBonus
	EffectUnPower
	EffectEatGold
	EffectEatItem
	EffectEatFood
	EffectEatLight
	EffectAcid
	EffectElec
	EffectFire
	EffectCold
	EffectBlind
	EffectConfuse
	EffectTerrify
	EffectParalyze
	EffectLoseStr
	EffectLoseInt
	EffectLoseWis
	EffectLoseDex
	EffectLoseCon
	EffectLoseAll
	EffectShatter
	EffectExp10
	EffectExp20
	EffectExp40
	EffectExp80
	EffectHallu
	BlowEffectCount
)

// EffectInfo holds the hit power and recall text of an effect.
type EffectInfo struct {
	Name  string
	Power int
	Desc  string
}

var blowEffects = [BlowEffectCount]EffectInfo{
	EffectNone:     {Name: "NONE"},
	EffectHurt:     {Name: "HURT", Power: 60, Desc: "attack"},
	EffectPoison:   {Name: "POISON", Power: 5, Desc: "poison"},
	EffectUnBonus:  {Name: "UN_BONUS", Power: 20, Desc: "disenchant"},
	EffectUnPower:  {Name: "UN_POWER", Power: 15, Desc: "drain charges"},
	EffectEatGold:  {Name: "EAT_GOLD", Power: 5, Desc: "steal gold"},
	EffectEatItem:  {Name: "EAT_ITEM", Power: 5, Desc: "steal items"},
	EffectEatFood:  {Name: "EAT_FOOD", Power: 5, Desc: "eat your food"},
	EffectEatLight: {Name: "EAT_LIGHT", Power: 5, Desc: "absorb light"},
	EffectAcid:     {Name: "ACID", Power: 0, Desc: "shoot acid"},
	EffectElec:     {Name: "ELEC", Power: 10, Desc: "electrify"},
	EffectFire:     {Name: "FIRE", Power: 10, Desc: "burn"},
	EffectCold:     {Name: "COLD", Power: 10, Desc: "freeze"},
	EffectBlind:    {Name: "BLIND", Power: 2, Desc: "blind"},
	EffectConfuse:  {Name: "CONFUSE", Power: 10, Desc: "confuse"},
	EffectTerrify:  {Name: "TERRIFY", Power: 10, Desc: "terrify"},
	EffectParalyze: {Name: "PARALYZE", Power: 2, Desc: "paralyze"},
	EffectLoseStr:  {Name: "LOSE_STR", Power: 0, Desc: "reduce strength"},
	EffectLoseInt:  {Name: "LOSE_INT", Power: 0, Desc: "reduce intelligence"},
	EffectLoseWis:  {Name: "LOSE_WIS", Power: 0, Desc: "reduce wisdom"},
	EffectLoseDex:  {Name: "LOSE_DEX", Power: 0, Desc: "reduce dexterity"},
	EffectLoseCon:  {Name: "LOSE_CON", Power: 0, Desc: "reduce constitution"},
	EffectLoseAll:  {Name: "LOSE_ALL", Power: 2, Desc: "reduce all stats"},
	EffectShatter:  {Name: "SHATTER", Power: 60, Desc: "shatter"},
	EffectExp10:    {Name: "EXP_10", Power: 5, Desc: "lower experience"},
	EffectExp20:    {Name: "EXP_20", Power: 5, Desc: "lower experience"},
	EffectExp40:    {Name: "EXP_40", Power: 5, Desc: "lower experience"},
	EffectExp80:    {Name: "EXP_80", Power: 5, Desc: "lower experience"},
	EffectHallu:    {Name: "HALLU", Power: 10, Desc: "cause hallucinations"},
}

var blowEffectByName = nameIndex[BlowEffect](BlowEffectCount, func(e BlowEffect) string { return blowEffects[e].Name })

func (e BlowEffect) Valid() bool {
	return e >= 0 && e < BlowEffectCount
}

// Info returns the effect data, or nil for an unknown effect.
func (e BlowEffect) Info() *EffectInfo {
	if !e.Valid() {
		return nil
	}
	return &blowEffects[e]
}

// Power is the hit power used against player AC. Unknown effects have none.
func (e BlowEffect) Power() int {
	if info := e.Info(); info != nil {
		return info.Power
	}
	return 0
}

func (e BlowEffect) String() string {
	if !e.Valid() {
		return "UNKNOWN"
	}
	return blowEffects[e].Name
}

// Blow is one melee slot of a race.
type Blow struct {
	Method BlowMethod
	Effect BlowEffect
	Dice   int
	Sides  int
}

// MaxDamage is the theoretical maximum damage of the blow.
func (b Blow) MaxDamage() int {
	return b.Dice * b.Sides
}

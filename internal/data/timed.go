package data

// TimedEffect is a player status that counts down each turn.
type TimedEffect int

const (
	TimedFast TimedEffect = iota
	TimedSlow
	TimedBlind
	TimedParalyzed
	TimedConfused
	TimedAfraid
	TimedImage
	TimedPoisoned
	TimedCut
	TimedStun
	TimedProtEvil
	TimedAmnesia
	TimedEffectCount
)

var timedNames = [TimedEffectCount]string{
	"FAST", "SLOW", "BLIND", "PARALYZED", "CONFUSED", "AFRAID", "IMAGE",
	"POISONED", "CUT", "STUN", "PROTEVIL", "AMNESIA",
}

var timedByName = nameIndex[TimedEffect](TimedEffectCount, func(t TimedEffect) string { return timedNames[t] })

func (t TimedEffect) Valid() bool {
	return t >= 0 && t < TimedEffectCount
}

func (t TimedEffect) String() string {
	if !t.Valid() {
		return "UNKNOWN"
	}
	return timedNames[t]
}

// TimedByName looks up a timed effect by table name.
func TimedByName(name string) (TimedEffect, bool) {
	t, ok := timedByName[name]
	return t, ok
}

// MonsterTimed is a timed status of a live monster.
type MonsterTimed int

const (
	MonSleep MonsterTimed = iota
	MonFast
	MonConfused
	MonAfraid
	MonStunned
	MonsterTimedCount
)

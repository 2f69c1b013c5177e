package event

// LoreChanged is emitted after the lore record of a race changes.
type LoreChanged struct {
	RaceID int
}

// PlayerKilled is emitted when a monster kills the player.
type PlayerKilled struct {
	RaceID    int
	MonsterID int32
	DiedFrom  string
}

// MonsterSlain is emitted when a monster dies during a fight.
type MonsterSlain struct {
	RaceID    int
	MonsterID int32
}

// MonsterBlinked is emitted when a thief teleports away after a round.
type MonsterBlinked struct {
	MonsterID int32
	X, Y      int
}

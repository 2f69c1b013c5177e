package world

// GroundItem is an item lying on the floor, dropped by a dying monster.
// Not persisted; it exists only for the length of a fight.
type GroundItem struct {
	Item *InvItem
	Gold int // gold pile; Item is nil for gold
	X, Y int
}

package world

import (
	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
)

// MaxSight is the default sight range in grids.
const MaxSight = 20

type tileKey struct {
	X, Y int
}

// Arena is the small battlefield the combat engine plays out on: one
// player, the monsters around them, traps and floor loot. It implements the
// grid queries and mutations the resolvers need.
// Single-goroutine access only.
type Arena struct {
	Width, Height int
	MaxSight      int
	Player        *Player
	Dark          bool

	races *data.RaceTable
	rng   *rng.Rand

	monsters    map[int32]*Monster // object ID → Monster
	monsterList []*Monster         // all monsters (for tick iteration)
	aoi         *AOIGrid
	occupied    map[tileKey]int32 // monster occupancy; the player is tracked separately
	traps       map[tileKey]struct{}
	ground      []*GroundItem
}

// NewArena creates an arena of the given size with the player in the
// middle.
func NewArena(width, height int, p *Player, races *data.RaceTable, r *rng.Rand) *Arena {
	p.X, p.Y = width/2, height/2
	return &Arena{
		Width:    width,
		Height:   height,
		MaxSight: MaxSight,
		Player:   p,
		races:    races,
		rng:      r,
		monsters: make(map[int32]*Monster),
		aoi:      NewAOIGrid(),
		occupied: make(map[tileKey]int32),
		traps:    make(map[tileKey]struct{}),
	}
}

// Distance is the Chebyshev distance between two grids.
func Distance(x1, y1, x2, y2 int) int {
	dx, dy := x1-x2, y1-y2
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}

func (a *Arena) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < a.Width && y < a.Height
}

// IsFree reports whether a grid is in bounds and holds neither the player
// nor a monster.
func (a *Arena) IsFree(x, y int) bool {
	if !a.inBounds(x, y) {
		return false
	}
	if x == a.Player.X && y == a.Player.Y {
		return false
	}
	_, taken := a.occupied[tileKey{x, y}]
	return !taken
}

// AddMonster places m at (x, y), or near it if that grid is taken.
// It returns false if no free grid was found.
func (a *Arena) AddMonster(m *Monster, x, y int) bool {
	if !a.IsFree(x, y) {
		var ok bool
		if x, y, ok = a.freeNear(x, y, 3); !ok {
			return false
		}
	}
	m.X, m.Y = x, y
	a.monsters[m.ID] = m
	a.monsterList = append(a.monsterList, m)
	a.aoi.Add(m.ID, x, y)
	a.occupied[tileKey{x, y}] = m.ID
	return true
}

// GetMonster returns a monster by its object ID.
func (a *Arena) GetMonster(id int32) *Monster {
	return a.monsters[id]
}

// Monsters returns the live monsters in arrival order.
func (a *Arena) Monsters() []*Monster {
	out := make([]*Monster, 0, len(a.monsterList))
	for _, m := range a.monsterList {
		if !m.Dead {
			out = append(out, m)
		}
	}
	return out
}

// Dead returns the monsters that died and are still on the board.
func (a *Arena) Dead() []*Monster {
	var out []*Monster
	for _, m := range a.monsterList {
		if m.Dead {
			out = append(out, m)
		}
	}
	return out
}

// MonsterCount returns the number of live monsters.
func (a *Arena) MonsterCount() int {
	return len(a.Monsters())
}

// CountRace returns the number of live monsters of race id.
func (a *Arena) CountRace(id int) int {
	n := 0
	for _, m := range a.monsterList {
		if !m.Dead && m.Race.ID == id {
			n++
		}
	}
	return n
}

// NearbyMonsters returns live monsters within dist of (x, y).
func (a *Arena) NearbyMonsters(x, y, dist int) []*Monster {
	candidates := a.monsterList
	if dist <= cellSize {
		candidates = candidates[:0:0]
		for _, id := range a.aoi.GetNearby(x, y) {
			if m := a.monsters[id]; m != nil {
				candidates = append(candidates, m)
			}
		}
	}
	var out []*Monster
	for _, m := range candidates {
		if m.Dead {
			continue
		}
		if Distance(m.X, m.Y, x, y) <= dist {
			out = append(out, m)
		}
	}
	return out
}

// moveMonster relocates m keeping the indices consistent.
// All monster position changes MUST go through here.
func (a *Arena) moveMonster(m *Monster, x, y int) {
	delete(a.occupied, tileKey{m.X, m.Y})
	a.aoi.Move(m.ID, m.X, m.Y, x, y)
	m.X, m.Y = x, y
	a.occupied[tileKey{x, y}] = m.ID
}

// RemoveMonster takes a dead monster off the board and drops its loot.
func (a *Arena) RemoveMonster(m *Monster) {
	if _, ok := a.monsters[m.ID]; !ok {
		return
	}
	delete(a.occupied, tileKey{m.X, m.Y})
	a.aoi.Remove(m.ID, m.X, m.Y)
	delete(a.monsters, m.ID)
	for i, n := range a.monsterList {
		if n.ID == m.ID {
			a.monsterList = append(a.monsterList[:i], a.monsterList[i+1:]...)
			break
		}
	}
	for _, it := range m.Carried {
		a.ground = append(a.ground, &GroundItem{Item: it, X: m.X, Y: m.Y})
	}
	if m.Gold > 0 {
		a.ground = append(a.ground, &GroundItem{Gold: m.Gold, X: m.X, Y: m.Y})
	}
	m.Carried = nil
	m.Gold = 0
}

// Ground returns the items lying on the floor.
func (a *Arena) Ground() []*GroundItem {
	return a.ground
}

// TrapCount returns the number of traps on the board.
func (a *Arena) TrapCount() int {
	return len(a.traps)
}

// StepToward moves m one grid toward the player if that grid is free.
func (a *Arena) StepToward(m *Monster) bool {
	x, y := m.X+sign(a.Player.X-m.X), m.Y+sign(a.Player.Y-m.Y)
	if !a.IsFree(x, y) {
		return false
	}
	a.moveMonster(m, x, y)
	return true
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// freeNear finds a random free grid within dist of (x, y).
func (a *Arena) freeNear(x, y, dist int) (int, int, bool) {
	for try := 0; try < 200; try++ {
		nx := x + a.rng.Spread(0, dist)
		ny := y + a.rng.Spread(0, dist)
		if a.IsFree(nx, ny) {
			return nx, ny, true
		}
	}
	return 0, 0, false
}

// farFrom finds a random free grid at most dist away from (x, y), preferring
// grids at least dist/2 away.
func (a *Arena) farFrom(x, y, dist int) (int, int, bool) {
	minDist := dist / 2
	for try := 0; try < 500; try++ {
		if try == 250 {
			minDist = 0
		}
		nx := x + a.rng.Spread(0, dist)
		ny := y + a.rng.Spread(0, dist)
		d := Distance(x, y, nx, ny)
		if d < minDist || d == 0 || !a.IsFree(nx, ny) {
			continue
		}
		return nx, ny, true
	}
	return 0, 0, false
}

// Adjacent reports whether m stands next to the player.
func (a *Arena) Adjacent(m *Monster) bool {
	return Distance(m.X, m.Y, a.Player.X, a.Player.Y) <= 1
}

// MonsterVisible reports whether the player can see m.
func (a *Arena) MonsterVisible(m *Monster) bool {
	if a.Player.Timed[data.TimedBlind] > 0 {
		return false
	}
	if m.Race.Flags.Has(data.RFInvisible) && !a.Player.Has(data.PFSeeInvis) {
		return false
	}
	return Distance(m.X, m.Y, a.Player.X, a.Player.Y) <= a.MaxSight
}

// Earthquake shakes the area around (x, y). Traps are destroyed and other
// monsters caught in it take damage. It reports whether the player was
// thrown to another grid.
func (a *Arena) Earthquake(x, y, radius int) bool {
	for k := range a.traps {
		if Distance(k.X, k.Y, x, y) <= radius {
			delete(a.traps, k)
		}
	}
	for _, m := range a.NearbyMonsters(x, y, radius) {
		if m.X == x && m.Y == y {
			continue
		}
		m.TakeDamage(a.rng.Dice(4, 8))
	}
	p := a.Player
	if Distance(p.X, p.Y, x, y) > radius {
		return false
	}
	nx, ny, ok := a.freeNear(p.X, p.Y, 1)
	if !ok {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}

// TeleportPlayer moves the player up to dist grids away.
func (a *Arena) TeleportPlayer(dist int) bool {
	x, y, ok := a.farFrom(a.Player.X, a.Player.Y, dist)
	if !ok {
		return false
	}
	a.Player.X, a.Player.Y = x, y
	return true
}

// TeleportPlayerTo brings the player next to (x, y).
func (a *Arena) TeleportPlayerTo(x, y int) bool {
	nx, ny, ok := a.freeNear(x, y, 1)
	if !ok {
		return false
	}
	a.Player.X, a.Player.Y = nx, ny
	return true
}

// TeleportPlayerLevel sends the player up or down a level, ending the fight.
// It returns true when the player went up.
func (a *Arena) TeleportPlayerLevel() bool {
	up := a.Player.Depth > 0 && a.rng.OneIn(2)
	if up {
		a.Player.Depth--
	} else {
		a.Player.Depth++
	}
	a.Player.Leaving = true
	return up
}

// TeleportMonster moves m up to dist grids away.
func (a *Arena) TeleportMonster(m *Monster, dist int) bool {
	x, y, ok := a.farFrom(m.X, m.Y, dist)
	if !ok {
		return false
	}
	a.moveMonster(m, x, y)
	return true
}

// Summon brings up to count monsters of the given kind next to the player.
// Candidates are limited by depth and caster level, and uniques never
// exceed their allowed number. It returns how many arrived.
func (a *Arena) Summon(caster *Monster, kind data.SummonKind, count int) int {
	if a.races == nil {
		return 0
	}
	level := (a.Player.Depth+caster.Race.Level)/2 + 5
	var pool []*data.Race
	for _, r := range a.races.All() {
		if r.Level > level || r.ID == caster.Race.ID && kind != data.SummonKin {
			continue
		}
		if kind.Matches(r, caster.Race) {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		return 0
	}
	n := 0
	for i := 0; i < count; i++ {
		r := pool[a.rng.Int0(len(pool))]
		if r.MaxNum > 0 && a.CountRace(r.ID) >= r.MaxNum {
			continue
		}
		if a.AddMonster(NewMonster(r), a.Player.X, a.Player.Y) {
			n++
		}
	}
	return n
}

// CreateTraps puts traps on the free grids around (x, y) and returns how
// many were made.
func (a *Arena) CreateTraps(x, y int) int {
	n := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			tx, ty := x+dx, y+dy
			if (dx == 0 && dy == 0) || !a.IsFree(tx, ty) {
				continue
			}
			if _, ok := a.traps[tileKey{tx, ty}]; ok {
				continue
			}
			a.traps[tileKey{tx, ty}] = struct{}{}
			n++
		}
	}
	return n
}

// Darken unlights the area.
func (a *Arena) Darken(x, y int) {
	a.Dark = true
}

// Aggravate wakes every monster within twice the sight range of caster and
// hastens the ones within sight. It returns the number woken.
func (a *Arena) Aggravate(caster *Monster) int {
	n := 0
	for _, m := range a.NearbyMonsters(caster.X, caster.Y, 2*a.MaxSight) {
		if m.ID == caster.ID {
			continue
		}
		if m.Wake() {
			n++
		}
		if Distance(m.X, m.Y, caster.X, caster.Y) <= a.MaxSight && m.Timed[data.MonFast] == 0 {
			m.Timed[data.MonFast] = 25
		}
	}
	return n
}

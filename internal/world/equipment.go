package world

import "github.com/l1jgo/bestiary/internal/data"

// EquipSlot identifies an equipment slot.
type EquipSlot int

const (
	SlotNone   EquipSlot = 0
	SlotWeapon EquipSlot = 1
	SlotBow    EquipSlot = 2
	SlotRing1  EquipSlot = 3
	SlotRing2  EquipSlot = 4
	SlotAmulet EquipSlot = 5
	SlotLight  EquipSlot = 6
	SlotBody   EquipSlot = 7
	SlotCloak  EquipSlot = 8
	SlotShield EquipSlot = 9
	SlotHelm   EquipSlot = 10
	SlotGloves EquipSlot = 11
	SlotBoots  EquipSlot = 12
	SlotMax    EquipSlot = 13
)

var slotNames = [SlotMax]string{
	"", "weapon", "bow", "ring1", "ring2", "amulet", "light", "body",
	"cloak", "shield", "helm", "gloves", "boots",
}

func (s EquipSlot) String() string {
	if s <= SlotNone || s >= SlotMax {
		return "none"
	}
	return slotNames[s]
}

// EquipSlotByName looks up a slot by name.
func EquipSlotByName(name string) EquipSlot {
	for i, n := range slotNames {
		if n != "" && n == name {
			return EquipSlot(i)
		}
	}
	return SlotNone
}

// Equipment tracks what the player has equipped.
// Each slot holds a pointer to an InvItem (nil = empty).
type Equipment struct {
	Slots [SlotMax]*InvItem
}

// Get returns the item in a slot, or nil.
func (e *Equipment) Get(slot EquipSlot) *InvItem {
	if slot <= SlotNone || slot >= SlotMax {
		return nil
	}
	return e.Slots[slot]
}

// Set places an item in a slot (or nil to clear).
func (e *Equipment) Set(slot EquipSlot, item *InvItem) {
	if slot > SlotNone && slot < SlotMax {
		e.Slots[slot] = item
	}
}

// Weapon returns the wielded weapon, or nil.
func (e *Equipment) Weapon() *InvItem {
	return e.Slots[SlotWeapon]
}

// Light returns the wielded light source, or nil.
func (e *Equipment) Light() *InvItem {
	return e.Slots[SlotLight]
}

// Each calls fn for every occupied slot.
func (e *Equipment) Each(fn func(EquipSlot, *InvItem)) {
	for s := SlotNone + 1; s < SlotMax; s++ {
		if it := e.Slots[s]; it != nil {
			fn(s, it)
		}
	}
}

// IsArmourSlot reports slots whose items count toward armour class and can
// be damaged by acid.
func IsArmourSlot(slot EquipSlot) bool {
	switch slot {
	case SlotBody, SlotCloak, SlotShield, SlotHelm, SlotGloves, SlotBoots:
		return true
	}
	return false
}

// EquipStats holds the cumulative bonuses from all equipped items.
type EquipStats struct {
	AC    int
	ToA   int
	ToH   int
	Flags data.PlayerFlags
}

// Stats sums the bonuses of everything worn.
func (e *Equipment) Stats() EquipStats {
	var st EquipStats
	e.Each(func(slot EquipSlot, it *InvItem) {
		if IsArmourSlot(slot) {
			st.AC += it.AC
		}
		st.ToA += it.ToA
		if slot == SlotWeapon {
			st.ToH += it.ToH
		}
		st.Flags = st.Flags.Union(it.Flags)
	})
	return st
}

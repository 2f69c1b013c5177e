package world

import (
	"sync/atomic"

	"github.com/l1jgo/bestiary/internal/data"
)

const (
	// MaxPackSize is the number of inventory slots.
	MaxPackSize = 23
)

// itemObjIDCounter generates unique item object IDs.
var itemObjIDCounter atomic.Int32

func init() {
	itemObjIDCounter.Store(500_000)
}

// NextItemObjID returns a unique object ID for an item instance.
func NextItemObjID() int32 {
	return itemObjIDCounter.Add(1)
}

// ItemKind is the broad class of an item. Combat cares only about a few.
type ItemKind int

const (
	KindOther ItemKind = iota
	KindWeapon
	KindArmour
	KindAmmo
	KindThrown
	KindWand
	KindStaff
	KindRod
	KindRing
	KindAmulet
	KindScroll
	KindPotion
	KindFlask
	KindFood
	KindLight
	KindBook
)

var kindNames = [...]string{
	"other", "weapon", "armour", "ammo", "thrown", "wand", "staff", "rod",
	"ring", "amulet", "scroll", "potion", "flask", "food", "light", "book",
}

func (k ItemKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "other"
	}
	return kindNames[k]
}

// ItemKindByName looks up an item kind by name.
func ItemKindByName(name string) (ItemKind, bool) {
	for i, n := range kindNames {
		if n == name {
			return ItemKind(i), true
		}
	}
	return KindOther, false
}

// Hates reports whether items of kind k are destroyed by elem.
func (k ItemKind) Hates(elem data.Element) bool {
	switch elem {
	case data.ElemAcid:
		switch k {
		case KindWeapon, KindArmour, KindAmmo, KindThrown, KindStaff, KindScroll, KindBook:
			return true
		}
	case data.ElemElec:
		return k == KindWand || k == KindRod || k == KindRing || k == KindAmulet
	case data.ElemFire:
		switch k {
		case KindAmmo, KindStaff, KindScroll, KindBook, KindLight, KindArmour:
			return true
		}
	case data.ElemCold:
		return k == KindPotion || k == KindFlask
	}
	return false
}

// InvItem is a single item stack carried by the player or a monster.
type InvItem struct {
	ObjectID int32  // unique per instance
	Name     string // display name
	Kind     ItemKind
	Level    int // object level, drives charge draining
	Count    int // stack count
	Charges  int // wand and staff charges, shared by the stack
	Turns    int // light fuel
	Food     int // nourishment per unit

	ToH, ToD, ToA int // enchantments
	AC            int

	Breakage int // percent chance to break when fired
	Artifact bool
	Known    bool // identified: its flags are visible
	Ignore   data.Element
	Flags    data.PlayerFlags // properties granted while worn
}

// IsArtifact implements combat.Breakable.
func (it *InvItem) IsArtifact() bool { return it.Artifact }

// IsThrowingWeapon implements combat.Breakable.
func (it *InvItem) IsThrowingWeapon() bool { return it.Kind == KindThrown }

// BreakagePercent implements combat.Breakable.
func (it *InvItem) BreakagePercent() int { return it.Breakage }

// HasCharges reports a wand or staff with charges left.
func (it *InvItem) HasCharges() bool {
	return (it.Kind == KindWand || it.Kind == KindStaff) && it.Charges > 0
}

// Enchanted reports an item with a bonus that disenchantment can remove.
func (it *InvItem) Enchanted() bool {
	return it.ToH > 0 || it.ToD > 0 || it.ToA > 0
}

// Split removes n units from the stack and returns them as a new item.
// Wand and staff charges are divided in proportion.
func (it *InvItem) Split(n int) *InvItem {
	n = min(max(n, 0), it.Count)
	out := *it
	out.ObjectID = NextItemObjID()
	out.Count = n
	if it.Kind == KindWand || it.Kind == KindStaff {
		out.Charges = it.Charges * n / max(it.Count, 1)
		it.Charges -= out.Charges
	}
	it.Count -= n
	return &out
}

// Inventory holds the player's pack.
// Accessed only from the combat goroutine.
type Inventory struct {
	Items []*InvItem
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{
		Items: make([]*InvItem, 0, MaxPackSize),
	}
}

// FindByObjectID returns the item with the given object ID.
func (inv *Inventory) FindByObjectID(objectID int32) *InvItem {
	for _, it := range inv.Items {
		if it.ObjectID == objectID {
			return it
		}
	}
	return nil
}

// FindByKind returns the first item of kind k.
func (inv *Inventory) FindByKind(k ItemKind) *InvItem {
	for _, it := range inv.Items {
		if it.Kind == k {
			return it
		}
	}
	return nil
}

// Size returns the number of slots used.
func (inv *Inventory) Size() int {
	return len(inv.Items)
}

// IsFull returns true if the pack is at max capacity.
func (inv *Inventory) IsFull() bool {
	return len(inv.Items) >= MaxPackSize
}

// Slot returns the item in slot i, or nil.
func (inv *Inventory) Slot(i int) *InvItem {
	if i < 0 || i >= len(inv.Items) {
		return nil
	}
	return inv.Items[i]
}

// AddItem adds an item, merging it into a matching stack. It returns the
// stack holding the item, or nil when the pack is full.
func (inv *Inventory) AddItem(item *InvItem) *InvItem {
	for _, it := range inv.Items {
		if it.Name == item.Name && it.Kind == item.Kind && !it.Artifact {
			it.Count += item.Count
			it.Charges += item.Charges
			return it
		}
	}
	if inv.IsFull() {
		return nil
	}
	if item.ObjectID == 0 {
		item.ObjectID = NextItemObjID()
	}
	inv.Items = append(inv.Items, item)
	return item
}

// RemoveItem removes count units of an item, freeing the slot when the stack
// empties. It returns true if the slot was freed.
func (inv *Inventory) RemoveItem(objectID int32, count int) (removed bool) {
	for i, it := range inv.Items {
		if it.ObjectID != objectID {
			continue
		}
		if it.Count > count {
			it.Count -= count
			return false
		}
		inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
		return true
	}
	return false
}

// TakeOne removes a single unit from slot i and returns it.
func (inv *Inventory) TakeOne(i int) *InvItem {
	it := inv.Slot(i)
	if it == nil {
		return nil
	}
	one := it.Split(1)
	if it.Count <= 0 {
		inv.Items = append(inv.Items[:i], inv.Items[i+1:]...)
	}
	return one
}

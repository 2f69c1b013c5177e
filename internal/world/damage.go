package world

import (
	"fmt"

	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
)

var armourSlots = []EquipSlot{SlotBody, SlotCloak, SlotShield, SlotHelm, SlotGloves, SlotBoots}

var disenchantSlots = []EquipSlot{SlotWeapon, SlotBow, SlotBody, SlotCloak, SlotShield, SlotHelm, SlotGloves, SlotBoots}

// MinusAC lets acid eat at a random worn armour piece. It reports the
// message to narrate and whether the armour took the hit.
func (p *Player) MinusAC(r *rng.Rand) (string, bool) {
	it := p.Equip.Get(armourSlots[r.Int0(len(armourSlots))])
	if it == nil || it.AC+it.ToA <= 0 {
		return "", false
	}
	if it.Ignore == data.ElemAcid {
		return fmt.Sprintf("Your %s is unaffected!", it.Name), true
	}
	it.ToA--
	return fmt.Sprintf("Your %s is damaged!", it.Name), true
}

// Disenchant strips enchantment from a random wielded item. Artifacts
// resist 60% of the time. It returns the message and whether anything
// noticeable happened.
func (p *Player) Disenchant(r *rng.Rand) (string, bool) {
	it := p.Equip.Get(disenchantSlots[r.Int0(len(disenchantSlots))])
	if it == nil || !it.Enchanted() {
		return "", false
	}
	if it.Artifact && r.Int0(100) < 60 {
		return fmt.Sprintf("Your %s resists disenchantment!", it.Name), true
	}
	for _, v := range []*int{&it.ToH, &it.ToD, &it.ToA} {
		if *v > 0 {
			*v--
		}
		if *v > 5 && r.Int0(100) < 20 {
			*v--
		}
	}
	return fmt.Sprintf("Your %s was disenchanted!", it.Name), true
}

// InvenDamage destroys pack items that hate elem. Each unit breaks with
// chance in 10000. It returns a message per damaged stack.
func (p *Player) InvenDamage(elem data.Element, chance int, r *rng.Rand) []string {
	if chance <= 0 {
		return nil
	}
	var msgs []string
	for _, it := range append([]*InvItem(nil), p.Inv.Items...) {
		if !it.Kind.Hates(elem) || it.Artifact || it.Ignore == elem {
			continue
		}
		amt := 0
		for j := 0; j < it.Count; j++ {
			if r.Int0(10000) < chance {
				amt++
			}
		}
		if amt == 0 {
			continue
		}
		switch {
		case amt == it.Count && amt > 1:
			msgs = append(msgs, fmt.Sprintf("All of your %s were destroyed!", it.Name))
		case amt == it.Count:
			msgs = append(msgs, fmt.Sprintf("Your %s was destroyed!", it.Name))
		case amt == 1:
			msgs = append(msgs, fmt.Sprintf("One of your %s was destroyed!", it.Name))
		default:
			msgs = append(msgs, fmt.Sprintf("Some of your %s were destroyed!", it.Name))
		}
		p.Inv.RemoveItem(it.ObjectID, amt)
	}
	return msgs
}

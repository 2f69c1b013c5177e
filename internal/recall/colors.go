package recall

import (
	"github.com/l1jgo/bestiary/internal/combat"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/world"
)

// Colors holds the danger color of every blow effect and spell for one
// player. Harmless is LightGreen, then Yellow, Orange and Red.
type Colors struct {
	Blows  [data.BlowEffectCount]Color
	Spells [data.SpellCount]Color
}

// Blow returns the color of effect e; unknown effects are Orange.
func (c *Colors) Blow(e data.BlowEffect) Color {
	if c == nil {
		return White
	}
	if !e.Valid() {
		return Orange
	}
	return c.Blows[e]
}

// Spell returns the color of spell id.
func (c *Colors) Spell(id data.SpellID) Color {
	if c == nil || !id.Valid() {
		return White
	}
	return c.Spells[id]
}

// levelColor maps a resist level to its danger color.
func levelColor(l combat.ResistLevel) Color {
	switch l {
	case combat.Immune:
		return LightGreen
	case combat.Resistant:
		return Yellow
	case combat.Vulnerable:
		return Red
	}
	return Orange
}

// AttackColors scans the player's flags and belongings once and colors
// every blow effect and spell by how much it would hurt them.
func AttackColors(p *world.Player, spells *data.SpellTable) *Colors {
	c := &Colors{}
	flags := p.Flags()
	has := func(f data.PlayerFlag) bool { return flags.Has(f) }
	guard := func(f data.PlayerFlag, bad Color) Color {
		if has(f) {
			return LightGreen
		}
		return bad
	}

	// inventory special cases
	var charged, stealable, food bool
	if p.Inv != nil {
		for _, it := range p.Inv.Items {
			charged = charged || it.HasCharges()
			stealable = stealable || !it.IsArtifact()
			food = food || it.Kind == world.KindFood
		}
	}
	theftFails := p.Skills.TheftSafety+p.Level < 100
	light := p.Equip.Light()
	fuel := light != nil && !light.IsArtifact() && light.Turns > 0
	enchanted := false
	p.Equip.Each(func(_ world.EquipSlot, it *world.InvItem) {
		enchanted = enchanted || (!it.IsArtifact() && it.Enchanted())
	})

	for e := data.BlowEffect(0); e < data.BlowEffectCount; e++ {
		col := LightGreen
		switch e {
		case data.EffectHurt:
			col = Orange
		case data.EffectShatter:
			col = Red
		case data.EffectPoison:
			col = guard(data.PFResPois, Orange)
		case data.EffectUnBonus:
			if enchanted && !has(data.PFResDisen) {
				col = Orange
			}
		case data.EffectUnPower:
			if charged {
				col = Yellow
			}
		case data.EffectEatGold:
			if p.Gold > 0 && theftFails {
				col = Yellow
			}
		case data.EffectEatItem:
			if stealable && theftFails {
				col = Yellow
			}
		case data.EffectEatFood:
			if food {
				col = Yellow
			}
		case data.EffectEatLight:
			if fuel {
				col = Yellow
			}
		case data.EffectAcid:
			col = levelColor(combat.ResistLevelFor(data.ElemAcid, flags))
		case data.EffectElec:
			col = levelColor(combat.ResistLevelFor(data.ElemElec, flags))
		case data.EffectFire:
			col = levelColor(combat.ResistLevelFor(data.ElemFire, flags))
		case data.EffectCold:
			col = levelColor(combat.ResistLevelFor(data.ElemCold, flags))
		case data.EffectBlind:
			col = guard(data.PFResBlind, Orange)
		case data.EffectConfuse:
			col = guard(data.PFResConf, Orange)
		case data.EffectTerrify:
			col = guard(data.PFResFear, Yellow)
		case data.EffectParalyze:
			col = guard(data.PFFreeAct, Red)
		case data.EffectLoseStr, data.EffectLoseInt, data.EffectLoseWis, data.EffectLoseDex, data.EffectLoseCon:
			col = guard(data.Stat(e-data.EffectLoseStr).Sustain(), Orange)
		case data.EffectLoseAll:
			col = LightGreen
			for s := data.Stat(0); s < data.StatCount; s++ {
				if !has(s.Sustain()) {
					col = Red
				}
			}
		case data.EffectExp10, data.EffectExp20, data.EffectExp40:
			col = Orange
			if has(data.PFHoldLife) {
				col = Yellow
			}
		case data.EffectExp80:
			col = Red
			if has(data.PFHoldLife) {
				col = Yellow
			}
		case data.EffectHallu:
			col = guard(data.PFResChaos, Yellow)
		}
		c.Blows[e] = col
	}

	if spells != nil {
		for id := data.SpellID(0); id < data.SpellCount; id++ {
			c.Spells[id] = spellColor(spells.Get(id), p, flags)
		}
	}
	return c
}

func spellColor(s *data.Spell, p *world.Player, flags data.PlayerFlags) Color {
	if s == nil {
		return White
	}
	if s.Damaging() {
		if s.Element == data.ElemNone || !s.Element.Resistible() {
			if s.Type.Is(data.TypeBreath) {
				return Red
			}
			return Orange
		}
		return levelColor(combat.ResistLevelFor(s.Element, flags))
	}
	guard := func(f data.PlayerFlag, bad Color) Color {
		if flags.Has(f) {
			return LightGreen
		}
		return bad
	}
	switch s.ID {
	case data.SpellScare:
		return guard(data.PFResFear, Yellow)
	case data.SpellBlind:
		return guard(data.PFResBlind, Orange)
	case data.SpellConf:
		return guard(data.PFResConf, Orange)
	case data.SpellSlow:
		return guard(data.PFFreeAct, Orange)
	case data.SpellHold:
		return guard(data.PFFreeAct, Red)
	case data.SpellDrainMana:
		if p.SP > 0 {
			return Yellow
		}
		return LightGreen
	case data.SpellSHiDemon, data.SpellSHiUndead, data.SpellSHiDragon, data.SpellSWraith, data.SpellSUnique:
		return Red
	}
	switch {
	case s.Type.Is(data.TypeSummon):
		return Orange
	case s.Type.Is(data.TypeAnnoy):
		return Yellow
	}
	return LightGreen
}

package system

import (
	"go.uber.org/zap"

	"github.com/l1jgo/bestiary/internal/combat"
	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/world"
)

// spellPlan is the side-effect plan of one spell, built once from the
// effect table. Every row in always fires; exactly one of chance fires.
type spellPlan struct {
	spell  *data.Spell
	always []data.SpellEffect
	chance WeightedTable[data.SpellEffect]
}

// SpellSystem resolves monster spells against the player.
type SpellSystem struct {
	plans [data.SpellCount]*spellPlan
	log   *zap.Logger
}

// NewSpellSystem builds the side-effect plan of every spell in spells.
func NewSpellSystem(spells *data.SpellTable, effects *data.SpellEffectTable, log *zap.Logger) *SpellSystem {
	if log == nil {
		log = zap.NewNop()
	}
	s := &SpellSystem{log: log}
	for id := data.SpellID(0); id < data.SpellCount; id++ {
		spell := spells.Get(id)
		if spell == nil {
			continue
		}
		plan := &spellPlan{spell: spell}
		for _, row := range effects.For(id, spell.Element) {
			if row.Chance == 0 {
				plan.always = append(plan.always, row)
			} else {
				plan.chance.Add(row, row.Chance)
			}
		}
		s.plans[id] = plan
	}
	return s
}

// Cast resolves spell id cast by the monster in cc. seen reports whether
// the player watched it happen. It returns false for a spell with no
// table row.
func (s *SpellSystem) Cast(cc *CombatContext, id data.SpellID, seen bool) bool {
	if !id.Valid() || s.plans[id] == nil {
		s.log.Warn("spell has no table row", zap.Stringer("spell", id))
		return false
	}
	plan := s.plans[id]
	spell := plan.spell
	m, p := cc.Monster, cc.Player
	race := m.Race
	rlev := combat.EffectiveLevel(race)
	wasDead := p.Dead

	if seen {
		cc.msg("%s %s.", cc.name(), spell.Verb)
		cc.Lore.RecordSpell(race.ID, id, spell.Type.Is(data.TypeInnate))
	} else {
		cc.msg("Something %s.", spell.BlindVerb)
	}
	defer func() {
		if p.Dead && !wasDead {
			cc.killed()
		}
	}()

	switch {
	case spell.Hit == 0:
		return true
	case spell.Hit < 100 && !combat.CheckHit(p.TotalAC(), spell.Hit, rlev, cc.RNG):
		if seen {
			cc.msg("%s misses you.", cc.name())
		} else {
			cc.msg("It misses you.")
		}
		return true
	}
	if spell.Save && cc.saved() {
		cc.msg("You avoid the effects!")
		return true
	}

	dam := combat.SpellDamage(spell, m.HP, rlev, rng.Randomise, cc.RNG)
	if spell.Element != data.ElemNone {
		dam = s.projectDamage(cc, spell.Element, dam)
	}
	if dam > 0 {
		cc.hurt(dam)
	}

	for i := range plan.always {
		if p.Dead {
			return true
		}
		s.applyEffect(cc, &plan.always[i], dam)
	}
	if row, ok := plan.chance.Pick(cc.RNG); ok && !p.Dead {
		s.applyEffect(cc, &row, dam)
	}
	return true
}

// projectDamage adjusts a projected element for the player's resistance.
// Armour may soak half of an acid attack first.
func (s *SpellSystem) projectDamage(cc *CombatContext, elem data.Element, dam int) int {
	p := cc.Player
	info := elem.Info()
	level := combat.ResistLevelFor(elem, p.Flags())
	switch level {
	case combat.Immune:
		cc.notice(info.Immune)
	case combat.Resistant:
		cc.notice(info.Resist)
	}
	if elem == data.ElemAcid && level != combat.Immune && dam > 0 {
		if msg, ok := p.MinusAC(cc.RNG); ok {
			cc.msg("%s", msg)
			dam = (dam + 1) / 2
		}
	}
	return combat.AdjustDamage(elem, dam, level, resistRoll(cc, info, level))
}

// resistedBy reports the flag that stops a side effect, or PFNone. Side
// effects of elements with an immunity are stopped only by that immunity
// when it covers them; other elements are stopped by their resistance.
func resistedBy(p *world.Player, row *data.SpellEffect) data.PlayerFlag {
	info := row.Element.Info()
	if info.Immune != data.PFNone {
		if info.SideImmune && p.Has(info.Immune) {
			return info.Immune
		}
	} else if info.Resist != data.PFNone && p.Has(info.Resist) {
		return info.Resist
	}
	if row.Resist != data.PFNone && p.Has(row.Resist) {
		return row.Resist
	}
	return data.PFNone
}

func (s *SpellSystem) applyEffect(cc *CombatContext, row *data.SpellEffect, dam int) {
	if f := resistedBy(cc.Player, row); f != data.PFNone {
		cc.msg("You resist the effect!")
		cc.notice(f)
		return
	}
	if row.Save && cc.saved() {
		cc.msg("You avoid the effect!")
		return
	}
	if row.Timed {
		dur := cc.RNG.Calc(row.Base, rng.Randomise) + cc.RNG.DamCalc(row.Dam.Dice, row.Dam.Sides*dam/100, rng.Randomise)
		if row.Dam.MBonus > 0 {
			dur = min(dur, row.Dam.MBonus)
		}
		if ok, msg := cc.Player.IncTimed(row.Status, dur, false); ok {
			cc.msg("%s", msg)
		}
		return
	}
	if !row.Special.Valid() {
		s.log.Warn("spell effect with unknown special", zap.String("effect", row.Name))
		return
	}
	specialHandlers[row.Special](cc, row, dam)
}

// Choose picks a spell for the monster to cast: an innate attack when
// innate is set, a magic spell otherwise. A monster that has learned the
// player shrugs off an element or has no mana leaves the useless ones
// out. ok is false when nothing is left.
func (s *SpellSystem) Choose(cc *CombatContext, innate bool) (data.SpellID, bool) {
	var pool []data.SpellID
	cc.Monster.Race.Spells.Each(func(id data.SpellID) {
		plan := s.plans[id]
		if plan == nil || plan.spell.Type.Is(data.TypeInnate) != innate {
			return
		}
		if s.knownUseless(cc, plan.spell) {
			return
		}
		pool = append(pool, id)
	})
	if len(pool) == 0 {
		return data.SpellNone, false
	}
	return pool[cc.RNG.Int0(len(pool))], true
}

func (s *SpellSystem) knownUseless(cc *CombatContext, spell *data.Spell) bool {
	k := cc.Knowledge
	if k == nil {
		return false
	}
	if spell.ID == data.SpellDrainMana {
		return k.Knows(cc.Monster, data.PFNoMana)
	}
	if spell.Element == data.ElemNone {
		return false
	}
	info := spell.Element.Info()
	return k.Knows(cc.Monster, info.Immune)
}

package system

import (
	"go.uber.org/zap"

	"github.com/l1jgo/bestiary/internal/combat"
	"github.com/l1jgo/bestiary/internal/core/event"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/world"
)

// blowState is the running state of one blow while its effect resolves.
type blowState struct {
	cc   *CombatContext
	slot int
	blow data.Blow
	rlev int
	ac   int
	dam  int // rolled damage, after armour for the blows armour reduces

	obvious bool
	doBreak bool // stop the round after this blow
	blinked bool // teleport the monster away after the round
}

// hurt deals dam to the player on behalf of the monster.
func (b *blowState) hurt(dam int) {
	b.cc.hurt(dam)
}

// MeleeSystem resolves monster melee rounds against the player.
type MeleeSystem struct {
	log *zap.Logger
}

func NewMeleeSystem(log *zap.Logger) *MeleeSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &MeleeSystem{log: log}
}

// ResolveRound makes the monster in cc attack the player with each of its
// blows in turn. It returns false if the race cannot attack in melee.
func (s *MeleeSystem) ResolveRound(cc *CombatContext) bool {
	m, p := cc.Monster, cc.Player
	race := m.Race
	if race.Flags.Has(data.RFNeverBlow) {
		return false
	}
	rlev := combat.EffectiveLevel(race)
	ac := p.TotalAC()
	wasDead := p.Dead
	blinked := false

	for slot, blow := range race.Blows {
		if blow.Method == data.MethodNone || p.Leaving {
			break
		}
		visible := cc.visible() || race.Flags.Has(data.RFHasLight)
		b := &blowState{cc: cc, slot: slot, blow: blow, rlev: rlev, ac: ac}

		if blow.Effect == data.EffectNone || combat.CheckHit(ac, blow.Effect.Power(), rlev, cc.RNG) {
			if s.repelled(cc, rlev, visible) {
				continue
			}
			method := blow.Method.Info()
			if method == nil {
				cc.msg("%s does something weird.", cc.name())
			} else {
				s.narrate(cc, blow.Method, method)
				b.dam = cc.RNG.Dice(blow.Dice, blow.Sides)
				applyBlowEffect(b)
				s.critical(b, method)
			}
		} else if visible && blow.Method.Info() != nil && blow.Method.Info().MissText {
			cc.msg("%s misses you.", cc.name())
		}

		if visible && (b.obvious || b.dam > 0 || cc.Lore.Get(race.ID).Blows[slot] > 10) {
			cc.Lore.RecordBlowObserved(race.ID, slot)
		}
		blinked = blinked || b.blinked
		if b.doBreak {
			break
		}
	}

	if blinked {
		cc.msg("There is a puff of smoke!")
		if cc.Grid.TeleportMonster(m, 2*world.MaxSight+5) && cc.Bus != nil {
			event.Emit(cc.Bus, event.MonsterBlinked{MonsterID: m.ID, X: m.X, Y: m.Y})
		}
	}
	if p.Dead && !wasDead {
		cc.killed()
	}
	return true
}

// repelled checks protection from evil. A repelled blow teaches the player
// that the race is evil.
func (s *MeleeSystem) repelled(cc *CombatContext, rlev int, visible bool) bool {
	p, race := cc.Player, cc.Monster.Race
	if p.Timed[data.TimedProtEvil] == 0 || !race.Flags.Has(data.RFEvil) {
		return false
	}
	if p.Level < rlev || cc.RNG.Int0(100)+p.Level <= 50 {
		return false
	}
	if visible {
		cc.Lore.ObserveFlag(race.ID, data.RFEvil)
	}
	cc.msg("%s is repelled.", cc.name())
	return true
}

func (s *MeleeSystem) narrate(cc *CombatContext, m data.BlowMethod, info *data.MethodInfo) {
	act := info.Act
	switch m {
	case data.MethodInsult:
		act = data.Insults[cc.RNG.Int0(len(data.Insults))]
	case data.MethodMoan:
		act = data.Moans[cc.RNG.Int0(len(data.Moans))]
	}
	if act != "" {
		cc.msg("%s %s", cc.name(), act)
	}
}

// critical applies the cut or stun a heavy blow inflicts. When a method
// can do both, a coin decides which.
func (s *MeleeSystem) critical(b *blowState, info *data.MethodInfo) {
	cc := b.cc
	doCut, doStun := info.Cut, info.Stun
	if doCut && doStun {
		if cc.RNG.Int0(100) < 50 {
			doCut = false
		} else {
			doStun = false
		}
	}
	if !doCut && !doStun {
		return
	}
	tier := combat.CriticalTier(b.blow.Dice, b.blow.Sides, b.dam, cc.RNG)
	if tier == 0 {
		return
	}
	if doCut {
		if ok, msg := cc.Player.IncTimed(data.TimedCut, combat.CutDuration(tier, cc.RNG), false); ok {
			cc.msg("%s", msg)
		}
	}
	if doStun {
		if ok, msg := cc.Player.IncTimed(data.TimedStun, combat.StunDuration(tier, cc.RNG), true); ok {
			cc.msg("%s", msg)
		}
	}
	s.log.Debug("critical blow",
		zap.String("race", cc.Monster.Race.Name),
		zap.Int("tier", tier),
		zap.Bool("cut", doCut))
}

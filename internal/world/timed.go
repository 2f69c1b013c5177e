package world

import "github.com/l1jgo/bestiary/internal/data"

// timedInfo holds the messages and protection of one player timed effect.
type timedInfo struct {
	OnBegin    string
	OnIncrease string
	OnEnd      string
	Protect    data.PlayerFlag // PFNone if nothing protects
}

var timedTable = [data.TimedEffectCount]timedInfo{
	data.TimedFast:      {OnBegin: "You feel yourself moving faster!", OnEnd: "You feel yourself slow down."},
	data.TimedSlow:      {OnBegin: "You feel yourself moving slower!", OnEnd: "You feel yourself speed up.", Protect: data.PFFreeAct},
	data.TimedBlind:     {OnBegin: "You are blind.", OnEnd: "You can see again.", Protect: data.PFResBlind},
	data.TimedParalyzed: {OnBegin: "You are paralysed!", OnEnd: "You can move again.", Protect: data.PFFreeAct},
	data.TimedConfused:  {OnBegin: "You are confused!", OnIncrease: "You are more confused!", OnEnd: "You feel less confused now.", Protect: data.PFResConf},
	data.TimedAfraid:    {OnBegin: "You are terrified!", OnIncrease: "You are more scared!", OnEnd: "You feel bolder now.", Protect: data.PFResFear},
	data.TimedImage:     {OnBegin: "You feel drugged!", OnIncrease: "You feel more drugged!", OnEnd: "You can see clearly again.", Protect: data.PFResChaos},
	data.TimedPoisoned:  {OnBegin: "You are poisoned!", OnIncrease: "You are more poisoned!", OnEnd: "You are no longer poisoned.", Protect: data.PFResPois},
	data.TimedCut:       {OnBegin: "You have been given a graze.", OnIncrease: "Your wound gets worse.", OnEnd: "You are no longer bleeding."},
	data.TimedStun:      {OnBegin: "You have been stunned.", OnIncrease: "You are more dazed.", OnEnd: "You are no longer stunned.", Protect: data.PFResStun},
	data.TimedProtEvil:  {OnBegin: "You feel safe from evil!", OnEnd: "You no longer feel safe from evil."},
	data.TimedAmnesia:   {OnBegin: "You feel your memories fade.", OnIncrease: "You feel your memories fade further.", OnEnd: "Your memories come flooding back."},
}

// TimedProtection returns the player flag that blocks eff, or PFNone.
func TimedProtection(eff data.TimedEffect) data.PlayerFlag {
	if !eff.Valid() {
		return data.PFNone
	}
	return timedTable[eff].Protect
}

// IncTimed raises a timed effect by v turns. With check set, a protecting
// flag blocks it and is noticed. It returns whether the effect changed and
// the message to narrate, if any.
func (p *Player) IncTimed(eff data.TimedEffect, v int, check bool) (bool, string) {
	if !eff.Valid() || v <= 0 {
		return false, ""
	}
	info := &timedTable[eff]
	if check && info.Protect != data.PFNone && p.Has(info.Protect) {
		p.Notice(info.Protect)
		return false, ""
	}
	old := p.Timed[eff]
	p.Timed[eff] = old + v
	if old == 0 {
		return true, info.OnBegin
	}
	return true, info.OnIncrease
}

// DecTimed lowers a timed effect, returning the end message if it ran out.
func (p *Player) DecTimed(eff data.TimedEffect, v int) string {
	if !eff.Valid() || p.Timed[eff] == 0 {
		return ""
	}
	p.Timed[eff] = max(p.Timed[eff]-v, 0)
	if p.Timed[eff] == 0 {
		return timedTable[eff].OnEnd
	}
	return ""
}

// ClearTimed ends a timed effect.
func (p *Player) ClearTimed(eff data.TimedEffect) string {
	if !eff.Valid() {
		return ""
	}
	return p.DecTimed(eff, p.Timed[eff])
}

// TickTimed advances every timed effect by one turn. Poison and cuts
// deal their damage first. It returns the messages produced.
func (p *Player) TickTimed() []string {
	var msgs []string
	if p.Timed[data.TimedPoisoned] > 0 {
		p.TakeHit(1, "poison")
	}
	if cut := p.Timed[data.TimedCut]; cut > 0 {
		p.TakeHit(cutBleed(cut), "a fatal wound")
	}
	for eff := data.TimedEffect(0); eff < data.TimedEffectCount; eff++ {
		if msg := p.DecTimed(eff, 1); msg != "" {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// cutBleed is the damage a cut of the given size deals each turn.
func cutBleed(cut int) int {
	switch {
	case cut > 200:
		return 3
	case cut > 100:
		return 2
	}
	return 1
}

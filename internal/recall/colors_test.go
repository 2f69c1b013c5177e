package recall

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/world"
)

func TestAttackColorsFollowResistances(t *testing.T) {
	_, spells := loadData(t)
	p := world.NewPlayer("Tester")
	p.Intrinsic.On(data.PFResFire)
	p.Intrinsic.On(data.PFImElec)
	p.Intrinsic.On(data.PFVulnCold)
	c := AttackColors(p, spells)

	tests := []struct {
		name string
		got  Color
		want Color
	}{
		{"fire blow resisted", c.Blow(data.EffectFire), Yellow},
		{"acid blow", c.Blow(data.EffectAcid), Orange},
		{"cold blow vulnerable", c.Blow(data.EffectCold), Red},
		{"lightning breath immune", c.Spell(data.SpellBrElec), LightGreen},
		{"fire bolt resisted", c.Spell(data.SpellBoFire), Yellow},
		{"time breath", c.Spell(data.SpellBrTime), Red},
		{"paralysis without free action", c.Blow(data.EffectParalyze), Red},
		{"hold without free action", c.Spell(data.SpellHold), Red},
		{"greater summons", c.Spell(data.SpellSHiDragon), Red},
		{"summon kin", c.Spell(data.SpellSKin), Orange},
		{"blink", c.Spell(data.SpellBlink), LightGreen},
		{"unknown effect", c.Blow(data.EffectUnknown), Orange},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.got, tt.name)
	}
}

func TestAttackColorsInventoryCases(t *testing.T) {
	p := world.NewPlayer("Tester")
	c := AttackColors(p, nil)
	assert.Equal(t, LightGreen, c.Blow(data.EffectEatFood))
	assert.Equal(t, LightGreen, c.Blow(data.EffectEatGold))
	assert.Equal(t, LightGreen, c.Blow(data.EffectUnPower))
	assert.Equal(t, LightGreen, c.Blow(data.EffectEatLight))
	assert.Equal(t, LightGreen, c.Blow(data.EffectUnBonus))
	assert.Equal(t, White, c.Spell(data.SpellBrFire))

	p.Gold = 100
	p.Inv.AddItem(&world.InvItem{ObjectID: world.NextItemObjID(), Name: "Ration", Kind: world.KindFood, Count: 1})
	p.Inv.AddItem(&world.InvItem{ObjectID: world.NextItemObjID(), Name: "Wand", Kind: world.KindWand, Count: 1, Charges: 5})
	p.Equip.Set(world.SlotLight, &world.InvItem{ObjectID: world.NextItemObjID(), Name: "Torch", Kind: world.KindLight, Count: 1, Turns: 500})
	p.Equip.Set(world.SlotWeapon, &world.InvItem{ObjectID: world.NextItemObjID(), Name: "Dagger", Kind: world.KindWeapon, Count: 1, ToH: 3})
	c = AttackColors(p, nil)
	assert.Equal(t, Yellow, c.Blow(data.EffectEatFood))
	assert.Equal(t, Yellow, c.Blow(data.EffectEatGold))
	assert.Equal(t, Yellow, c.Blow(data.EffectEatItem))
	assert.Equal(t, Yellow, c.Blow(data.EffectUnPower))
	assert.Equal(t, Yellow, c.Blow(data.EffectEatLight))
	assert.Equal(t, Orange, c.Blow(data.EffectUnBonus))

	// a safe enough character keeps their belongings
	p.Skills.TheftSafety = 100
	c = AttackColors(p, nil)
	assert.Equal(t, LightGreen, c.Blow(data.EffectEatGold))
	assert.Equal(t, LightGreen, c.Blow(data.EffectEatItem))
}

func TestNilColorsRenderWhite(t *testing.T) {
	var c *Colors
	assert.Equal(t, White, c.Blow(data.EffectFire))
	assert.Equal(t, White, c.Spell(data.SpellBrFire))
}

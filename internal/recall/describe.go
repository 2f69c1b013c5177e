package recall

import (
	"fmt"

	"github.com/l1jgo/bestiary/internal/combat"
	"github.com/l1jgo/bestiary/internal/core/grammar"
	"github.com/l1jgo/bestiary/internal/core/rng"
	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/lore"
	"github.com/l1jgo/bestiary/internal/world"
)

// Options controls a description.
type Options struct {
	// Spoilers describes the race as a spoiler file does: player history,
	// toughness and experience are left out.
	Spoilers bool
	// Player supplies the level for experience and the skill for hit
	// chances. Nil leaves both out.
	Player *world.Player
	// Colors colors damage numbers; nil renders them white.
	Colors *Colors
	// Spells is needed to describe spells at all.
	Spells *data.SpellTable
}

type describer struct {
	t      *Text
	race   *data.Race
	rec    lore.Record
	known  data.RaceFlags
	absent data.RaceFlags
	opts   Options
	he     string // it, he, she
	his    string // its, his, her
}

// Describe renders everything the player knows about race from rec.
func Describe(race *data.Race, rec lore.Record, opts Options) *Text {
	d := &describer{
		t:      &Text{},
		race:   race,
		rec:    rec,
		known:  lore.KnownFlags(race, rec),
		absent: lore.KnownAbsent(race, rec),
		opts:   opts,
		he:     "it",
		his:    "its",
	}
	switch {
	case d.known.Has(data.RFFemale):
		d.he, d.his = "she", "her"
	case d.known.Has(data.RFMale):
		d.he, d.his = "he", "his"
	}

	if !opts.Spoilers {
		d.kills()
	}
	d.flavor()
	d.movement()
	if !opts.Spoilers {
		d.toughness()
		d.experience()
	}
	d.drops()
	d.abilities()
	d.resistances()
	d.spells()
	d.melee()
	d.quest()
	return d.t
}

// heCap is the capitalized pronoun that starts most sentences.
func (d *describer) heCap() string {
	return grammar.Capitalize(d.he)
}

func (d *describer) add(format string, args ...any) {
	d.t.Addf(format, args...)
}

// list writes items joined Oxford style, each in color c.
func (d *describer) list(items []string, conj string, c Color) {
	for i, it := range items {
		d.t.Add(grammar.ListSeparator(i, len(items), conj), White)
		d.t.Add(it, c)
	}
}

func (d *describer) kills() {
	deaths := int(d.rec.Deaths)
	pkills, tkills := int(d.rec.PKills), int(d.rec.TKills)
	if d.race.Unique() {
		dead := pkills > 0
		switch {
		case deaths > 0:
			d.add("%s has slain %d of your ancestors", d.heCap(), deaths)
			if dead {
				d.add(", but you have taken revenge! ")
			} else {
				d.add(", who %s unavenged. ", grammar.Plural(deaths, "remains", "remain"))
			}
		case dead:
			d.add("You have slain this foe. ")
		}
		return
	}

	switch {
	case deaths > 0:
		d.add("%d of your ancestors %s been killed by this creature, ", deaths, grammar.Plural(deaths, "has", "have"))
		switch {
		case pkills > 0:
			d.add("and you have exterminated at least %d of the creatures. ", pkills)
		case tkills > 0:
			d.add("and your ancestors have exterminated at least %d of the creatures. ", tkills)
		default:
			d.add("and %s is not ever known to have been defeated. ", d.he)
		}
	case pkills > 0:
		d.add("You have killed at least %d of these creatures. ", pkills)
	case tkills > 0:
		d.add("Your ancestors have killed at least %d of these creatures. ", tkills)
	default:
		d.add("No battles to the death are recalled. ")
	}
}

func (d *describer) flavor() {
	if d.race.Text != "" {
		d.add("%s ", d.race.Text)
	}
}

var kindNames = []struct {
	flag data.RaceFlag
	name string
}{
	{data.RFDragon, "dragon"},
	{data.RFDemon, "demon"},
	{data.RFGiant, "giant"},
	{data.RFTroll, "troll"},
	{data.RFOrc, "orc"},
}

func (d *describer) movement() {
	d.add("This")
	if d.known.Has(data.RFAnimal) {
		d.add(" natural")
	}
	if d.known.Has(data.RFEvil) {
		d.add(" evil")
	}
	if d.known.Has(data.RFUndead) {
		d.add(" undead")
	}
	kind := "creature"
	for _, k := range kindNames {
		if d.known.Has(k.flag) {
			kind = k.name
			break
		}
	}
	d.add(" %s", kind)

	if d.race.Level == 0 {
		d.add(" lives in the town")
	} else {
		d.add(" is normally found at depths of ")
		d.t.Add(fmt.Sprintf("%d feet (level %d)", d.race.Level*50, d.race.Level), Green)
	}
	d.add(", and moves")

	r25, r50 := d.known.Has(data.RFRand25), d.known.Has(data.RFRand50)
	if r25 || r50 {
		switch {
		case r25 && r50:
			d.add(" extremely")
		case r50:
			d.add(" somewhat")
		default:
			d.add(" a bit")
		}
		d.add(" erratically")
		if d.race.Speed != 110 {
			d.add(", and")
		}
	}

	speed := d.race.Speed
	switch {
	case speed > 110:
		adv := ""
		if speed > 130 {
			adv = " incredibly"
		} else if speed > 120 {
			adv = " very"
		}
		d.t.Add(adv+" quickly", Green)
	case speed < 110:
		adv := ""
		if speed < 90 {
			adv = " incredibly"
		} else if speed < 100 {
			adv = " very"
		}
		d.t.Add(adv+" slowly", Green)
	default:
		d.t.Add(" at normal speed", Green)
	}
	if d.known.Has(data.RFNeverMove) {
		d.add(", but does not deign to chase intruders")
	}
	d.add(". ")
}

func (d *describer) toughness() {
	if !lore.IsArmorKnown(d.race, d.rec) {
		return
	}
	d.add("%s has an armour rating of ", d.heCap())
	d.t.Add(fmt.Sprint(d.race.AC), LightBlue)
	d.add(", and a life rating of ")
	d.t.Add(fmt.Sprint(d.race.HP), LightBlue)
	d.add(". ")

	if p := d.opts.Player; p != nil {
		chance := combat.MeleeHitChance(p.Skills.Melee, p.Skills.ToHit, d.race.AC)
		d.add("You have a ")
		d.t.Add(fmt.Sprintf("%d%%", chance), LightBlue)
		d.add(" chance to hit such a creature in melee (if you can see it). ")
	}
}

func (d *describer) experience() {
	p := d.opts.Player
	if p == nil || d.rec.TKills == 0 {
		return
	}
	plev := max(p.Level, 1)
	total := d.race.Exp * d.race.Level
	whole := total / plev
	frac := ((total%plev)*1000/plev + 5) / 10
	if frac >= 100 {
		whole++
		frac -= 100
	}
	d.add("A kill of this creature is worth ")
	d.t.Add(fmt.Sprintf("%d.%02d", whole, frac), Green)
	unit := "points"
	if whole == 1 && frac == 0 {
		unit = "point"
	}
	d.add(" %s for %s %d%s level character. ", unit, grammar.NumberArticle(plev), plev, grammar.Ordinal(plev))
}

func (d *describer) drops() {
	items, gold := int(d.rec.DropItem), int(d.rec.DropGold)
	n := max(items, gold)
	if n == 0 {
		return
	}
	d.add("%s may carry", d.heCap())
	switch n {
	case 1:
		d.add(" a single")
	case 2:
		d.add(" one or two")
	default:
		d.add(" up to %d", n)
	}
	switch {
	case d.known.Has(data.RFDropGreat):
		d.t.Add(" exceptional", Blue)
	case d.known.Has(data.RFDropGood):
		d.t.Add(" good", Blue)
	}
	if items > 0 {
		d.add(" %s", grammar.Plural(n, "object", "objects"))
		if gold > 0 {
			d.add(" or %s", grammar.Plural(n, "treasure", "treasures"))
		}
	} else {
		d.add(" %s", grammar.Plural(n, "treasure", "treasures"))
	}
	d.add(". ")
}

type flagText struct {
	flag data.RaceFlag
	text string
}

var (
	abilityVerbs = []flagText{
		{data.RFOpenDoor, "open doors"},
		{data.RFBashDoor, "bash down doors"},
		{data.RFPassWall, "pass through walls"},
		{data.RFKillWall, "bore through walls"},
		{data.RFMoveBody, "push past weaker monsters"},
		{data.RFKillBody, "destroy weaker monsters"},
		{data.RFTakeItem, "pick up objects"},
		{data.RFKillItem, "destroy objects"},
	}
	stealthTraits = []flagText{
		{data.RFInvisible, "invisible"},
		{data.RFColdBlood, "cold blooded"},
		{data.RFEmptyMind, "not detected by telepathy"},
		{data.RFWeirdMind, "rarely detected by telepathy"},
	}
	vulnerabilities = []flagText{
		{data.RFHurtRock, "rock remover"},
		{data.RFHurtLight, "bright light"},
		{data.RFHurtFire, "fire"},
		{data.RFHurtCold, "cold"},
	}
	immunities = []flagText{
		{data.RFImAcid, "acid"},
		{data.RFImElec, "lightning"},
		{data.RFImFire, "fire"},
		{data.RFImCold, "cold"},
		{data.RFImPois, "poison"},
		{data.RFImWater, "water"},
		{data.RFImNether, "nether"},
		{data.RFImPlasma, "plasma"},
		{data.RFImNexus, "nexus"},
		{data.RFImDisen, "disenchantment"},
	}
	protections = []flagText{
		{data.RFNoStun, "stunned"},
		{data.RFNoFear, "frightened"},
		{data.RFNoConf, "confused"},
		{data.RFNoSleep, "slept"},
	}
)

func pick(table []flagText, set data.RaceFlags) []string {
	var out []string
	for _, ft := range table {
		if set.Has(ft.flag) {
			out = append(out, ft.text)
		}
	}
	return out
}

// awareness phrases by sleep value, most alert last.
var awareness = []struct {
	over int
	text string
}{
	{200, "prefers to ignore"},
	{95, "pays very little attention to"},
	{75, "pays little attention to"},
	{45, "tends to overlook"},
	{25, "takes quite a while to see"},
	{10, "takes a while to see"},
	{5, "is fairly observant of"},
	{3, "is observant of"},
	{1, "is very observant of"},
	{0, "is vigilant for"},
}

func (d *describer) abilities() {
	if can := pick(abilityVerbs, d.known); len(can) > 0 {
		d.add("%s can %s. ", d.heCap(), grammar.JoinList(can, "and"))
	}
	if is := pick(stealthTraits, d.known); len(is) > 0 {
		d.add("%s is %s. ", d.heCap(), grammar.JoinList(is, "and"))
	}
	if d.known.Has(data.RFUnaware) {
		d.add("%s disguises itself to look like something else. ", d.heCap())
	}
	if d.known.Has(data.RFMultiply) {
		d.t.Add(fmt.Sprintf("%s breeds explosively. ", d.heCap()), Orange)
	}
	if d.known.Has(data.RFRegenerate) {
		d.add("%s regenerates quickly. ", d.heCap())
	}
	if d.known.Has(data.RFHasLight) {
		d.add("%s illuminates %s surroundings. ", d.heCap(), d.his)
	}

	wake, ignore := int(d.rec.Wake), int(d.rec.Ignore)
	sleep := d.race.Sleep
	if d.opts.Spoilers || wake*wake > sleep || ignore == lore.MaxByte || (sleep == 0 && d.rec.TKills >= 10) {
		verb := "is ever vigilant for"
		for _, a := range awareness {
			if sleep > a.over {
				verb = a.text
				break
			}
		}
		d.add("%s %s intruders, which %s may notice from %d feet. ", d.heCap(), verb, d.he, d.race.AAF*10)
	}

	switch {
	case d.known.Has(data.RFEscort) || d.known.Has(data.RFEscorts):
		d.add("%s usually appears with escorts. ", d.heCap())
	case d.known.Has(data.RFFriend) || d.known.Has(data.RFFriends):
		d.add("%s usually appears in groups. ", d.heCap())
	}
}

func (d *describer) resistances() {
	if hurt := pick(vulnerabilities, d.known); len(hurt) > 0 {
		d.add("%s is hurt by ", d.heCap())
		d.list(hurt, "and", Yellow)
		d.add(". ")
	}

	// a vulnerability known to be missing reads as a resistance
	resists := pick(immunities, d.known)
	for _, s := range pick(vulnerabilities, d.absent) {
		if !contains(resists, s) {
			resists = append(resists, s)
		}
	}
	if len(resists) > 0 {
		d.add("%s resists ", d.heCap())
		d.list(resists, "and", Orange)
		d.add(". ")
	}

	// a known vulnerability already implies the matching immunity is absent
	lacking := d.absent
	for hurt, im := range data.VulnerabilityCancels {
		if d.known.Has(hurt) {
			lacking.Off(im)
		}
	}
	if not := pick(immunities, lacking); len(not) > 0 {
		d.add("%s does not resist ", d.heCap())
		d.list(not, "or", Yellow)
		d.add(". ")
	}

	if cannot := pick(protections, d.known); len(cannot) > 0 {
		d.add("%s cannot be ", d.heCap())
		d.list(cannot, "or", Orange)
		d.add(". ")
	}
	if can := pick(protections, d.absent); len(can) > 0 {
		d.add("%s can be ", d.heCap())
		d.list(can, "or", Yellow)
		d.add(". ")
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

type spellItem struct {
	id   data.SpellID
	desc string
	dam  int
}

func (d *describer) spells() {
	table := d.opts.Spells
	if table == nil {
		return
	}
	var innate, breaths, magic []spellItem
	lore.KnownSpells(d.race, d.rec).Each(func(id data.SpellID) {
		s := table.Get(id)
		if s == nil {
			return
		}
		it := spellItem{id: id, desc: s.Desc}
		if s.Damaging() {
			it.dam = combat.SpellDamage(s, d.race.HP, combat.EffectiveLevel(d.race), rng.Maximise, nil)
		}
		switch {
		case s.Type.Is(data.TypeBreath):
			breaths = append(breaths, it)
		case s.Type.Is(data.TypeInnate):
			innate = append(innate, it)
		default:
			magic = append(magic, it)
		}
	})

	if len(innate) > 0 || len(breaths) > 0 {
		d.add("%s may ", d.heCap())
		d.spellList(innate)
		if len(breaths) > 0 {
			if len(innate) > 0 {
				d.add(", and may ")
			}
			d.add("breathe ")
			d.spellList(breaths)
		}
		d.frequency(d.race.FreqInnate, int(d.rec.CastInnate))
		d.add(". ")
	}
	if len(magic) > 0 {
		d.add("%s may be magical, casting spells", d.heCap())
		if d.known.Has(data.RFSmart) {
			d.add(" intelligently")
		}
		d.add(" which ")
		d.spellList(magic)
		d.frequency(d.race.FreqSpell, int(d.rec.CastSpell))
		d.add(". ")
	}
}

func (d *describer) spellList(items []spellItem) {
	for i, it := range items {
		d.t.Add(grammar.ListSeparator(i, len(items), "or"), White)
		d.add("%s", it.desc)
		if it.dam > 0 {
			d.add(" (")
			d.t.Add(fmt.Sprint(it.dam), d.opts.Colors.Spell(it.id))
			d.add(")")
		}
	}
}

// frequency states how often the race uses its spells: exactly once
// enough casts were seen, roughly after the first one.
func (d *describer) frequency(freq, casts int) {
	if freq <= 0 {
		return
	}
	switch {
	case d.opts.Spoilers || lore.SpellFreqKnown(d.rec):
		d.add("; 1 time in %d", freq)
	case casts > 0:
		d.add("; about 1 time in %d", max((freq+2)/5*5, 1))
	}
}

func (d *describer) melee() {
	var slots []int
	for i := 0; i < d.race.BlowCount(); i++ {
		if d.opts.Spoilers || d.rec.Blows[i] > 0 {
			slots = append(slots, i)
		}
	}
	if len(slots) == 0 {
		if d.known.Has(data.RFNeverBlow) {
			d.add("%s has no physical attacks. ", d.heCap())
		} else {
			d.add("Nothing is known about %s attack. ", d.his)
		}
		return
	}

	d.add("%s can ", d.heCap())
	for i, slot := range slots {
		d.t.Add(grammar.ListSeparator(i, len(slots), "and"), White)
		b := d.race.Blows[slot]
		if m := b.Method.Info(); m != nil {
			d.add("%s", m.Desc)
		} else {
			d.add("do something weird")
		}
		if b.Effect != data.EffectNone {
			d.add(" to ")
			if e := b.Effect.Info(); e != nil {
				d.t.Add(e.Desc, d.opts.Colors.Blow(b.Effect))
			} else {
				d.add("do weird things")
			}
		}
		if b.Dice > 0 && b.Sides > 0 && (d.opts.Spoilers || lore.IsDamageKnown(d.race, d.rec, slot)) {
			d.add(" with damage ")
			d.t.Add(fmt.Sprintf("%dd%d", b.Dice, b.Sides), d.opts.Colors.Blow(b.Effect))
		}
	}
	d.add(". ")
}

func (d *describer) quest() {
	if d.known.Has(data.RFQuestor) {
		d.t.Add("You feel an intense desire to kill this monster. ", Violet)
	}
}

// Header renders the one-line title of a recall: the capitalized name,
// "The ..." for ordinary races, then the glyph in the race color.
func Header(race *data.Race) *Text {
	name := race.Name
	if !race.Unique() {
		name = "The " + name
	}
	t := &Text{}
	t.Add(grammar.Capitalize(name)+" ('", White)
	t.Add(race.Glyph, ColorFromGlyph(race.Color))
	t.Add("')", White)
	return t
}

package persist

import (
	"fmt"

	"github.com/l1jgo/bestiary/internal/data"
	"github.com/l1jgo/bestiary/internal/lore"
)

// LoreRow is the stored form of a lore record. Flag sets are kept as the
// little-endian words written by bitflag.Set.MarshalBinary.
type LoreRow struct {
	RaceID     int    `json:"race_id"`
	Sights     int    `json:"sights"`
	Deaths     int    `json:"deaths"`
	PKills     int    `json:"pkills"`
	TKills     int    `json:"tkills"`
	Wake       int    `json:"wake"`
	Ignore     int    `json:"ignore"`
	Blows      []byte `json:"blows"`
	CastInnate int    `json:"cast_innate"`
	CastSpell  int    `json:"cast_spell"`
	DropGold   int    `json:"drop_gold"`
	DropItem   int    `json:"drop_item"`
	Flags      []byte `json:"flags"`
	Absent     []byte `json:"absent"`
	Spells     []byte `json:"spells"`
}

// RowFromRecord converts a record for storage.
func RowFromRecord(rec lore.Record) LoreRow {
	flags, _ := rec.Flags.MarshalBinary()
	absent, _ := rec.Absent.MarshalBinary()
	spells, _ := rec.Spells.MarshalBinary()
	return LoreRow{
		RaceID:     rec.RaceID,
		Sights:     int(rec.Sights),
		Deaths:     int(rec.Deaths),
		PKills:     int(rec.PKills),
		TKills:     int(rec.TKills),
		Wake:       int(rec.Wake),
		Ignore:     int(rec.Ignore),
		Blows:      append([]byte(nil), rec.Blows[:]...),
		CastInnate: int(rec.CastInnate),
		CastSpell:  int(rec.CastSpell),
		DropGold:   int(rec.DropGold),
		DropItem:   int(rec.DropItem),
		Flags:      flags,
		Absent:     absent,
		Spells:     spells,
	}
}

// Record converts a stored row back. Counters outside their range are
// clamped; the tracker clamps flags against the race on restore.
func (r LoreRow) Record() (lore.Record, error) {
	rec := lore.Record{
		RaceID:     r.RaceID,
		Sights:     clamp16(r.Sights),
		Deaths:     clamp16(r.Deaths),
		PKills:     clamp16(r.PKills),
		TKills:     clamp16(r.TKills),
		Wake:       clamp8(r.Wake),
		Ignore:     clamp8(r.Ignore),
		CastInnate: clamp8(r.CastInnate),
		CastSpell:  clamp8(r.CastSpell),
		DropGold:   clamp8(r.DropGold),
		DropItem:   clamp8(r.DropItem),
	}
	if len(r.Blows) > data.MaxBlows {
		return rec, fmt.Errorf("race %d: %d blow counters", r.RaceID, len(r.Blows))
	}
	copy(rec.Blows[:], r.Blows)
	if err := rec.Flags.UnmarshalBinary(r.Flags); err != nil {
		return rec, fmt.Errorf("race %d flags: %w", r.RaceID, err)
	}
	if err := rec.Absent.UnmarshalBinary(r.Absent); err != nil {
		return rec, fmt.Errorf("race %d absent: %w", r.RaceID, err)
	}
	if err := rec.Spells.UnmarshalBinary(r.Spells); err != nil {
		return rec, fmt.Errorf("race %d spells: %w", r.RaceID, err)
	}
	return rec, nil
}

func clamp8(n int) uint8 {
	return uint8(min(max(n, 0), lore.MaxByte))
}

func clamp16(n int) uint16 {
	return uint16(min(max(n, 0), lore.MaxShort))
}

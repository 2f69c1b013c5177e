package persist

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/l1jgo/bestiary/internal/lore"
)

// LoreRepo is the Postgres lore store.
type LoreRepo struct {
	db *DB
}

func NewLoreRepo(db *DB) *LoreRepo {
	return &LoreRepo{db: db}
}

func (r *LoreRepo) Load(ctx context.Context) ([]lore.Record, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT race_id, sights, deaths, pkills, tkills, wake, ignore_count,
		        blows, cast_innate, cast_spell, drop_gold, drop_item,
		        flags, absent, spells
		 FROM monster_lore
		 ORDER BY race_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("load lore: %w", err)
	}
	defer rows.Close()

	var result []lore.Record
	for rows.Next() {
		var row LoreRow
		if err := rows.Scan(
			&row.RaceID, &row.Sights, &row.Deaths, &row.PKills, &row.TKills, &row.Wake, &row.Ignore,
			&row.Blows, &row.CastInnate, &row.CastSpell, &row.DropGold, &row.DropItem,
			&row.Flags, &row.Absent, &row.Spells,
		); err != nil {
			return nil, fmt.Errorf("scan lore: %w", err)
		}
		rec, err := row.Record()
		if err != nil {
			r.db.log.Warn("skipping unreadable lore row", zap.Int("race", row.RaceID), zap.Error(err))
			continue
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// Save upserts recs in one transaction.
func (r *LoreRepo) Save(ctx context.Context, recs []lore.Record) error {
	if len(recs) == 0 {
		return nil
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("lore begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, rec := range recs {
		row := RowFromRecord(rec)
		if _, err := tx.Exec(ctx,
			`INSERT INTO monster_lore (race_id, sights, deaths, pkills, tkills, wake, ignore_count,
			                           blows, cast_innate, cast_spell, drop_gold, drop_item,
			                           flags, absent, spells, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, now())
			 ON CONFLICT (race_id) DO UPDATE SET
			     sights = EXCLUDED.sights, deaths = EXCLUDED.deaths,
			     pkills = EXCLUDED.pkills, tkills = EXCLUDED.tkills,
			     wake = EXCLUDED.wake, ignore_count = EXCLUDED.ignore_count,
			     blows = EXCLUDED.blows,
			     cast_innate = EXCLUDED.cast_innate, cast_spell = EXCLUDED.cast_spell,
			     drop_gold = EXCLUDED.drop_gold, drop_item = EXCLUDED.drop_item,
			     flags = EXCLUDED.flags, absent = EXCLUDED.absent, spells = EXCLUDED.spells,
			     updated_at = now()`,
			row.RaceID, row.Sights, row.Deaths, row.PKills, row.TKills, row.Wake, row.Ignore,
			row.Blows, row.CastInnate, row.CastSpell, row.DropGold, row.DropItem,
			row.Flags, row.Absent, row.Spells,
		); err != nil {
			return fmt.Errorf("lore upsert race %d: %w", rec.RaceID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("lore commit: %w", err)
	}
	r.db.log.Debug("lore saved", zap.Int("records", len(recs)))
	return nil
}

func (r *LoreRepo) Close() error {
	r.db.Close()
	return nil
}

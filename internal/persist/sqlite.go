package persist

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/l1jgo/bestiary/internal/lore"
)

// SQLiteLoreStore keeps lore in a local SQLite file.
type SQLiteLoreStore struct {
	db *sql.DB
}

// OpenSQLite opens the database at path and applies the migrations. The
// path ":memory:" gives a private in-memory database.
func OpenSQLite(ctx context.Context, path string) (*SQLiteLoreStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := ":memory:"
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := RunSQLiteMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteLoreStore{db: db}, nil
}

func (s *SQLiteLoreStore) Load(ctx context.Context) ([]lore.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT race_id, sights, deaths, pkills, tkills, wake, ignore_count,
		        blows, cast_innate, cast_spell, drop_gold, drop_item,
		        flags, absent, spells
		 FROM monster_lore
		 ORDER BY race_id`)
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
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (s *SQLiteLoreStore) Save(ctx context.Context, recs []lore.Record) error {
	if len(recs) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("lore begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, rec := range recs {
		row := RowFromRecord(rec)
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO monster_lore (race_id, sights, deaths, pkills, tkills, wake, ignore_count,
			                           blows, cast_innate, cast_spell, drop_gold, drop_item,
			                           flags, absent, spells, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (race_id) DO UPDATE SET
			     sights = excluded.sights, deaths = excluded.deaths,
			     pkills = excluded.pkills, tkills = excluded.tkills,
			     wake = excluded.wake, ignore_count = excluded.ignore_count,
			     blows = excluded.blows,
			     cast_innate = excluded.cast_innate, cast_spell = excluded.cast_spell,
			     drop_gold = excluded.drop_gold, drop_item = excluded.drop_item,
			     flags = excluded.flags, absent = excluded.absent, spells = excluded.spells,
			     updated_at = excluded.updated_at`,
			row.RaceID, row.Sights, row.Deaths, row.PKills, row.TKills, row.Wake, row.Ignore,
			row.Blows, row.CastInnate, row.CastSpell, row.DropGold, row.DropItem,
			row.Flags, row.Absent, row.Spells, now,
		); err != nil {
			return fmt.Errorf("lore upsert race %d: %w", rec.RaceID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("lore commit: %w", err)
	}
	return nil
}

func (s *SQLiteLoreStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

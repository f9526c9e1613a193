package storage

// sqlite.go — snapshots de mercado por refresh, para derivar deltas.
//
// Estrategia:
//   - `market_snapshots`: UNA fila por mercado (UPSERT) con el último estado
//     visto y el volumen del refresh anterior. Los deltas se derivan de esas
//     dos columnas, sin histórico completo.
//   - Solo se persisten datos fetcheados. Filtros, orden y página son estado
//     efímero de la vista y nunca tocan disco.
//   - Prune automático al arrancar: mercados no vistos en 30 días.

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alejandrodnm/moltdesk/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
-- Una fila por mercado, sin duplicados
CREATE TABLE IF NOT EXISTS market_snapshots (
    market_id   TEXT PRIMARY KEY,
    question    TEXT,
    category    TEXT NOT NULL DEFAULT '',
    status      TEXT NOT NULL DEFAULT '',
    yes_price   REAL NOT NULL DEFAULT 0,
    volume      REAL NOT NULL DEFAULT 0,
    prev_volume REAL NOT NULL DEFAULT 0,
    first_seen  DATETIME NOT NULL,
    last_seen   DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_snap_last ON market_snapshots(last_seen DESC);
`

// Mercados no vistos en este plazo se eliminan al arrancar.
const retentionSnapshots = 30 * 24 * time.Hour

// SQLiteStore implementa ports.SnapshotStore usando SQLite (pure Go, sin CGo).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore abre (o crea) la base de datos en la ruta dada.
// Aplica el schema y limpia snapshots antiguos.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStore: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStore: apply schema: %w", err)
	}

	s := &SQLiteStore{db: db}
	s.pruneOld(context.Background())
	return s, nil
}

// SaveRefresh hace upsert del snapshot de cada mercado. El volumen anterior
// se conserva en prev_volume para poder derivar el delta del refresh.
func (s *SQLiteStore) SaveRefresh(ctx context.Context, markets []domain.Market) error {
	if len(markets) == 0 {
		return nil
	}

	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage.SaveRefresh: begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO market_snapshots
			(market_id, question, category, status, yes_price, volume, prev_volume, first_seen, last_seen)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)
		ON CONFLICT(market_id) DO UPDATE SET
			question    = excluded.question,
			category    = excluded.category,
			status      = excluded.status,
			yes_price   = excluded.yes_price,
			prev_volume = volume,
			volume      = excluded.volume,
			last_seen   = excluded.last_seen
	`)
	if err != nil {
		return fmt.Errorf("storage.SaveRefresh: prepare: %w", err)
	}
	defer stmt.Close()

	for _, m := range markets {
		if _, err := stmt.ExecContext(ctx,
			m.ID,
			m.Question,
			m.Category,
			string(m.Status),
			m.YesPrice,
			m.Volume,
			now, // first_seen: ignorado en ON CONFLICT (no se sobreescribe)
			now, // last_seen
		); err != nil {
			return fmt.Errorf("storage.SaveRefresh: upsert %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage.SaveRefresh: commit: %w", err)
	}
	return nil
}

// LastVolumes devuelve el volumen guardado por mercado. Se llama antes de
// SaveRefresh: el valor devuelto es el del refresh anterior.
func (s *SQLiteStore) LastVolumes(ctx context.Context) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT market_id, volume FROM market_snapshots`)
	if err != nil {
		return nil, fmt.Errorf("storage.LastVolumes: query: %w", err)
	}
	defer rows.Close()

	volumes := make(map[string]float64)
	for rows.Next() {
		var id string
		var vol float64
		if err := rows.Scan(&id, &vol); err != nil {
			return nil, fmt.Errorf("storage.LastVolumes: scan row: %w", err)
		}
		volumes[id] = vol
	}
	return volumes, rows.Err()
}

// Close cierra la conexión a la base de datos.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// pruneOld elimina mercados que llevan demasiado sin verse. Best-effort:
// un fallo aquí no impide arrancar.
func (s *SQLiteStore) pruneOld(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-retentionSnapshots)
	s.db.ExecContext(ctx,
		`DELETE FROM market_snapshots WHERE last_seen < ?`, cutoff)
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema: users and products are keyed by UUID with unique natural keys;
// sales_entries is the append-only ledger. seq (BIGSERIAL) is the insertion
// order contract used by history and recent-activity views. There are no
// UPDATE or DELETE paths against sales_entries anywhere in the codebase.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL,
    display_name  TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS products (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    rate       NUMERIC(12,2) NOT NULL CHECK (rate > 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS sales_entries (
    id          TEXT PRIMARY KEY,
    seq         BIGSERIAL,
    date        DATE NOT NULL,
    hawker_id   TEXT NOT NULL,
    hawker_name TEXT NOT NULL,
    product     TEXT NOT NULL,
    rate        NUMERIC(12,2) NOT NULL,
    load_out    INT NOT NULL CHECK (load_out >= 0),
    load_in     INT NOT NULL CHECK (load_in >= 0),
    damage      INT NOT NULL CHECK (damage >= 0),
    sold        INT NOT NULL,
    amount      NUMERIC(14,2) NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_sales_entries_hawker ON sales_entries (hawker_id, seq);
CREATE INDEX IF NOT EXISTS idx_sales_entries_seq ON sales_entries (seq);
`

// EnsureSchema creates the three store tables when missing. Idempotent.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

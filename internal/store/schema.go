package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
    key              TEXT PRIMARY KEY,
    value            TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS records (
    id               TEXT PRIMARY KEY,
    kind             TEXT NOT NULL,
    amount           REAL NOT NULL,
    recurring        INTEGER NOT NULL DEFAULT 0,
    time_cost_hours  REAL NOT NULL,
    timestamp        TEXT NOT NULL,
    category         TEXT,
    note             TEXT,
    ended_at         TEXT,
    updated_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_records_timestamp ON records(timestamp);
CREATE INDEX IF NOT EXISTS idx_records_kind ON records(kind);
`

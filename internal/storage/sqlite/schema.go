package sqlite

const schema = `
-- Habits table. Date sets are stored as JSON string arrays; dates are
-- ISO YYYY-MM-DD strings throughout so string comparison matches
-- calendar order.
CREATE TABLE IF NOT EXISTS habits (
    id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT 'Other',
    kind TEXT NOT NULL DEFAULT 'habit',
    completed_dates TEXT NOT NULL DEFAULT '[]',
    created_at TEXT NOT NULL,
    archived_at TEXT,
    excluded_dates TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_habits_kind ON habits(kind);
CREATE INDEX IF NOT EXISTS idx_habits_created_at ON habits(created_at);

-- Config table for schema versioning and future settings
CREATE TABLE IF NOT EXISTS config (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`

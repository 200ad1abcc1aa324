package store

// Schema creates all tables if they don't exist. Account ids are assigned
// by the prefix allocator, never by sqlite; everything else autoincrements.
const Schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL,
    type TEXT NOT NULL,
    reserved INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS actors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    kind TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    date TEXT NOT NULL,              -- YYYY-MM-DD
    description TEXT NOT NULL DEFAULT '',
    type TEXT NOT NULL DEFAULT '',
    actor_id INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_transactions_date
    ON transactions(date);

CREATE TABLE IF NOT EXISTS elements (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    transaction_id INTEGER NOT NULL,
    account_id INTEGER NOT NULL,
    drcr INTEGER NOT NULL,           -- +1 debit, -1 credit
    amount INTEGER NOT NULL,         -- currency subunits
    currency TEXT NOT NULL,
    settlement_id INTEGER NOT NULL DEFAULT 0,
    tax_code TEXT NOT NULL DEFAULT '',
    parent_id INTEGER NOT NULL DEFAULT 0,
    gross_amount INTEGER NOT NULL DEFAULT 0,
    use_gross INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_elements_transaction
    ON elements(transaction_id);

CREATE INDEX IF NOT EXISTS idx_elements_settlement
    ON elements(account_id, settlement_id);

CREATE TABLE IF NOT EXISTS variables (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS audit_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    at TEXT NOT NULL,
    action TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT '',
    transaction_id INTEGER NOT NULL DEFAULT 0
);
`

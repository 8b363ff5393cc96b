package source

// Schema is the layout of a content database. The journal only reads it.
const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	instrument TEXT NOT NULL,
	direction TEXT NOT NULL,
	setup_type TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL,
	entry_price REAL NOT NULL,
	stop_price REAL NOT NULL,
	target_price REAL,
	exit_price REAL,
	quantity REAL NOT NULL DEFAULT 0,
	risk_amount REAL NOT NULL DEFAULT 0,
	risk_percent REAL NOT NULL DEFAULT 0,
	planned_rr REAL NOT NULL DEFAULT 0,
	actual_r REAL,
	session TEXT NOT NULL DEFAULT 'London',
	macro_events TEXT NOT NULL DEFAULT '',
	red_news INTEGER NOT NULL DEFAULT 0,
	atr_percentile REAL,
	checklist_score REAL NOT NULL DEFAULT 0,
	notes TEXT NOT NULL DEFAULT '',
	exit_reason TEXT NOT NULL DEFAULT '',
	mistakes TEXT NOT NULL DEFAULT '',
	closed_at DATETIME
);

CREATE TABLE IF NOT EXISTS trade_checklist (
	trade_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	category TEXT NOT NULL,
	text TEXT NOT NULL,
	checked INTEGER NOT NULL DEFAULT 0,
	required INTEGER NOT NULL DEFAULT 0,
	weight REAL NOT NULL,
	PRIMARY KEY (trade_id, position)
);

CREATE TABLE IF NOT EXISTS checklist_templates (
	setup_type TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS checklist_template_items (
	setup_type TEXT NOT NULL,
	position INTEGER NOT NULL,
	category TEXT NOT NULL,
	text TEXT NOT NULL,
	required INTEGER NOT NULL DEFAULT 0,
	weight REAL NOT NULL,
	PRIMARY KEY (setup_type, position)
);

CREATE INDEX IF NOT EXISTS idx_trades_created ON trades(created_at);
`

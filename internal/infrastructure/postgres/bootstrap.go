package postgres

import (
	"context"
	"fmt"
)

// bootstrapLockID keys the advisory lock that serializes concurrent
// bootstraps. The value is arbitrary but must stay stable across releases.
const bootstrapLockID = 7_310_442_901

// schema is sent as one simple-protocol query, which PostgreSQL runs as a
// single implicit transaction. The advisory lock is released at commit.
// created_at is refreshed on update to match the original MySQL
// ON UPDATE CURRENT_TIMESTAMP column, although nothing updates rows today.
// CREATE OR REPLACE TRIGGER needs PostgreSQL 14.
var schema = fmt.Sprintf(`
SELECT pg_advisory_xact_lock(%d);

CREATE TABLE IF NOT EXISTS contact_messages (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	message    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE OR REPLACE FUNCTION contact_messages_touch() RETURNS trigger AS $$
BEGIN
	NEW.created_at = now();
	RETURN NEW;
END;
$$ LANGUAGE plpgsql;

CREATE OR REPLACE TRIGGER contact_messages_touch
	BEFORE UPDATE ON contact_messages
	FOR EACH ROW EXECUTE FUNCTION contact_messages_touch();
`, bootstrapLockID)

// Bootstrap creates the contact_messages table if it doesn't already exist.
// Safe to call on every startup, from several instances at once.
func Bootstrap(ctx context.Context, db querier) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("bootstrap schema: %w", err)
	}
	return nil
}

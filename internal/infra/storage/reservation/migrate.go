package reservation

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS reservas (
	id                 BIGSERIAL PRIMARY KEY,
	local              VARCHAR(100) NOT NULL,
	sala               VARCHAR(100) NOT NULL,
	data_inicio        TIMESTAMPTZ  NOT NULL,
	data_fim           TIMESTAMPTZ  NOT NULL,
	responsavel        VARCHAR(100) NOT NULL,
	cafe               BOOLEAN      NOT NULL DEFAULT FALSE,
	quantidade_pessoas INTEGER,
	descricao          TEXT,
	created_at         TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
	updated_at         TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_reservas_data_inicio ON reservas (data_inicio);
CREATE INDEX IF NOT EXISTS idx_reservas_local_sala  ON reservas (local, sala);
`

// Migrate creates the reservas table and its indexes when missing. Run once
// at startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("reservation.migrate: %w", err)
	}
	return nil
}

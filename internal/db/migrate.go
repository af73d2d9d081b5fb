package db

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// RunMigrations ensures the warehouse tables exist. This keeps the service
// self-contained without an external migration step.
func RunMigrations(ctx context.Context, conn clickhouse.Conn) error {
	err := conn.Exec(ctx, `
CREATE TABLE IF NOT EXISTS payments
(
	id              String,
	vendor_id       String,
	amount          Float64,
	status          LowCardinality(String),
	payment_method  LowCardinality(String),
	type            LowCardinality(String),
	campaign_id     String DEFAULT '',
	created_at      DateTime64(3, 'UTC'),
	ingested_at     DateTime DEFAULT now()
)
ENGINE = ReplacingMergeTree
PARTITION BY toYYYYMM(created_at)
ORDER BY (vendor_id, created_at, id)
SETTINGS
    index_granularity = 8192;
`)
	if err != nil {
		return fmt.Errorf("apply payments migration: %w", err)
	}

	err = conn.Exec(ctx, `
CREATE TABLE IF NOT EXISTS campaigns
(
	id              String,
	name            String,
	vendor_id       String,
	budget          Float64,
	created_at      DateTime64(3, 'UTC'),
	ingested_at     DateTime DEFAULT now()
)
ENGINE = ReplacingMergeTree
ORDER BY (vendor_id, created_at, id);
`)
	if err != nil {
		return fmt.Errorf("apply campaigns migration: %w", err)
	}

	return nil
}

package checkers

import (
	"context"
	"time"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PostgresChecker verifies the dataset database is reachable.
type PostgresChecker struct {
	db      Pinger
	timeout time.Duration
}

func NewPostgresChecker(db Pinger) *PostgresChecker {
	return &PostgresChecker{db: db, timeout: time.Second}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.db.Ping(ctx)
}

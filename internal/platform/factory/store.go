package factory

import (
	"context"
	"fmt"

	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/config"
	"github.com/kunal9812/In-Hand-FIrst-Aid/internal/store"
	storemongo "github.com/kunal9812/In-Hand-FIrst-Aid/internal/store/mongo"
	storepg "github.com/kunal9812/In-Hand-FIrst-Aid/internal/store/postgres"
)

// NewStore builds the store.Store selected by cfg.DBDriver. Connections
// are opened and verified synchronously; for Postgres the schema is also
// ensured so a fresh database is usable immediately.
func NewStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case "mongo":
		client, err := storemongo.Open(ctx, cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("open mongo: %w", err)
		}
		return storemongo.NewWithClient(client, cfg.MongoDatabase), nil

	case "postgres":
		db, err := storepg.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := storepg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return storepg.NewWithDB(db), nil
	}
	return nil, fmt.Errorf("unknown DB_DRIVER: %s", cfg.DBDriver)
}

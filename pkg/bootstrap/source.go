package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/skillpath/pkg/config"
	"github.com/artem13815/skillpath/pkg/dataset"
	pgrepo "github.com/artem13815/skillpath/pkg/repository/postgres"
	"github.com/artem13815/skillpath/pkg/storage/postgres"
)

// Datasets bundles the configured source with the loaded snapshot.
// Pool is nil unless the source is PostgreSQL; Close releases it.
type Datasets struct {
	Source dataset.Source
	Holder *dataset.Holder
	Pool   *pgxpool.Pool
}

// OpenDatasets builds the source selected by cfg and loads the first snapshot.
func OpenDatasets(ctx context.Context, cfg config.Config) (*Datasets, error) {
	d := &Datasets{}
	switch cfg.DatasetSource {
	case config.SourcePostgres:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.DefaultPoolOptions())
		if err != nil {
			return nil, fmt.Errorf("postgres connect: %w", err)
		}
		repo, err := pgrepo.NewDatasetRepository(pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("init dataset repo: %w", err)
		}
		d.Pool, d.Source = pool, repo
	default:
		d.Source = cfg.CSVSource()
	}

	store, err := dataset.Load(ctx, d.Source)
	if err != nil {
		d.Close()
		return nil, err
	}
	d.Holder = dataset.NewHolder(store)
	return d, nil
}

// Reload replaces the snapshot from the same source.
func (d *Datasets) Reload(ctx context.Context) (dataset.Stats, error) {
	return d.Holder.Reload(ctx, d.Source)
}

func (d *Datasets) Close() {
	if d.Pool != nil {
		d.Pool.Close()
	}
}

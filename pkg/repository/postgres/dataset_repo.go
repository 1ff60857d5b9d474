package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/skillpath/pkg/dataset"
)

// DatasetRepository отдаёт четыре справочника из PostgreSQL.
// Rows are read ORDER BY position so that load order, and therefore tie-breaking, is deterministic.
type DatasetRepository struct {
	pool *pgxpool.Pool
}

var _ dataset.Source = (*DatasetRepository)(nil)

func NewDatasetRepository(pool *pgxpool.Pool) (*DatasetRepository, error) {
	r := &DatasetRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *DatasetRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS jobs (
	position INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	skill_requirements TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS skill_durations (
	position INTEGER PRIMARY KEY,
	skill_name TEXT NOT NULL,
	estimated_hours DOUBLE PRECISION NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS foundation_courses (
	position INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	link TEXT NOT NULL DEFAULT '',
	provider TEXT NOT NULL DEFAULT '',
	platform TEXT NOT NULL DEFAULT '',
	credential TEXT NOT NULL DEFAULT '',
	duration TEXT NOT NULL DEFAULT '',
	skills TEXT NOT NULL DEFAULT '',
	rating DOUBLE PRECISION NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS professional_courses (
	position INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	link TEXT NOT NULL DEFAULT '',
	provider TEXT NOT NULL DEFAULT '',
	platform TEXT NOT NULL DEFAULT '',
	credential TEXT NOT NULL DEFAULT '',
	duration TEXT NOT NULL DEFAULT '',
	skills TEXT NOT NULL DEFAULT ''
);
`)
	return err
}

func (r *DatasetRepository) Jobs(ctx context.Context) ([]dataset.Job, error) {
	rows, err := r.pool.Query(ctx, `SELECT title, skill_requirements FROM jobs ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (dataset.Job, error) {
		var j dataset.Job
		err := row.Scan(&j.Title, &j.SkillsText)
		return j, err
	})
}

func (r *DatasetRepository) SkillDurations(ctx context.Context) ([]dataset.SkillDuration, error) {
	rows, err := r.pool.Query(ctx, `SELECT skill_name, estimated_hours FROM skill_durations ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query skill durations: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (dataset.SkillDuration, error) {
		var d dataset.SkillDuration
		err := row.Scan(&d.Name, &d.Hours)
		return d, err
	})
}

func (r *DatasetRepository) FoundationCourses(ctx context.Context) ([]dataset.Course, error) {
	rows, err := r.pool.Query(ctx, `
SELECT title, link, provider, platform, credential, duration, skills, rating
FROM foundation_courses
ORDER BY position
`)
	if err != nil {
		return nil, fmt.Errorf("query foundation courses: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (dataset.Course, error) {
		var c dataset.Course
		err := row.Scan(&c.Title, &c.Link, &c.Provider, &c.Platform, &c.Credential, &c.Duration, &c.SkillsText, &c.Rating)
		return c, err
	})
}

func (r *DatasetRepository) ProfessionalCourses(ctx context.Context) ([]dataset.Course, error) {
	rows, err := r.pool.Query(ctx, `
SELECT title, link, provider, platform, credential, duration, skills
FROM professional_courses
ORDER BY position
`)
	if err != nil {
		return nil, fmt.Errorf("query professional courses: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (dataset.Course, error) {
		var c dataset.Course
		err := row.Scan(&c.Title, &c.Link, &c.Provider, &c.Platform, &c.Credential, &c.Duration, &c.SkillsText)
		return c, err
	})
}

package dataset

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Load fetches the four datasets from src concurrently and builds a Store.
// Any failure aborts the whole load; a partial snapshot is never returned.
func Load(ctx context.Context, src Source) (*Store, error) {
	var (
		jobs         []Job
		durations    []SkillDuration
		foundation   []Course
		professional []Course
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		jobs, err = src.Jobs(ctx)
		return wrap("jobs", err)
	})
	g.Go(func() (err error) {
		durations, err = src.SkillDurations(ctx)
		return wrap("skill durations", err)
	})
	g.Go(func() (err error) {
		foundation, err = src.FoundationCourses(ctx)
		return wrap("foundation courses", err)
	})
	g.Go(func() (err error) {
		professional, err = src.ProfessionalCourses(ctx)
		return wrap("professional courses", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return NewStore(jobs, durations, foundation, professional), nil
}

func wrap(what string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("load %s: %w", what, err)
}

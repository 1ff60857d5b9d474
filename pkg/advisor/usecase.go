package advisor

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/artem13815/skillpath/pkg/course"
	"github.com/artem13815/skillpath/pkg/dataset"
	"github.com/artem13815/skillpath/pkg/gap"
)

// UseCase — сценарии подбора курсов под целевую вакансию.
type UseCase interface {
	Analyze(ctx context.Context, req Request) (Report, error)
	SearchJobs(ctx context.Context, query string) []string
}

// Options tune the limits applied by the service.
type Options struct {
	CourseLimit int
	SearchLimit int
}

// DefaultOptions match the limits of the web form.
func DefaultOptions() Options {
	return Options{CourseLimit: course.DefaultLimit, SearchLimit: 10}
}

type service struct {
	datasets *dataset.Holder
	validate *validator.Validate
	opts     Options
}

func NewService(datasets *dataset.Holder, opts Options) UseCase {
	if opts.CourseLimit <= 0 {
		opts.CourseLimit = course.DefaultLimit
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = 10
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
			return name
		}
		return f.Name
	})
	return &service{datasets: datasets, validate: v, opts: opts}
}

// Analyze resolves the job, computes the gap and its duration, and ranks both course catalogues.
// The whole request is served from a single dataset snapshot.
// gap.ErrJobNotFound is returned as is; no courses are ranked in that case.
func (s *service) Analyze(_ context.Context, req Request) (Report, error) {
	req.TargetJob = strings.TrimSpace(req.TargetJob)
	if err := s.validate.Struct(req); err != nil {
		return Report{}, validationError(err)
	}

	store := s.datasets.Current()
	analyzer := gap.NewAnalyzer(store)
	res, err := analyzer.FindMissingSkills(req.TargetJob, *req.CurrentSkills)
	if err != nil {
		return Report{}, err
	}
	dur := analyzer.CalculateTotalDuration(res.Missing, req.HoursPerDay)

	return Report{
		ID:                  uuid.New(),
		TargetJob:           req.TargetJob,
		JobTitle:            res.JobTitle,
		Required:            res.Required,
		Matched:             res.Matched,
		Missing:             res.Missing,
		TotalDays:           dur.TotalDays,
		TotalHours:          dur.TotalHours,
		SkillHours:          dur.Skills,
		HoursPerDay:         req.HoursPerDay,
		ProfessionalCourses: course.NewProfessional(store).Suggest(res.Missing, s.opts.CourseLimit),
		FoundationCourses:   course.NewFoundation(store).Suggest(res.Missing, s.opts.CourseLimit),
	}, nil
}

// SearchJobs returns job titles containing query, capped at the search limit.
func (s *service) SearchJobs(_ context.Context, query string) []string {
	return s.datasets.Current().SearchTitles(query, s.opts.SearchLimit)
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ErrValidation(err.Error())
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return ErrValidation(fmt.Sprintf("missing required fields: %s", strings.Join(fields, ", ")))
}

package gap

import (
	"math"

	"github.com/artem13815/skillpath/pkg/dataset"
	"github.com/artem13815/skillpath/pkg/skills"
)

// Analyzer computes skill gaps and learning time against one dataset snapshot.
type Analyzer struct {
	store *dataset.Store
}

func NewAnalyzer(store *dataset.Store) *Analyzer { return &Analyzer{store: store} }

// FindMissingSkills resolves targetJob and splits its required skills into matched and missing
// relative to the comma separated currentSkills.
func (a *Analyzer) FindMissingSkills(targetJob, currentSkills string) (Result, error) {
	job, ok := a.store.FindJob(targetJob)
	if !ok {
		return Result{}, ErrJobNotFound
	}
	required := skills.Parse(job.SkillsText)
	have := skills.Set(skills.Parse(currentSkills))
	return Result{
		JobTitle: job.Title,
		Required: required,
		Matched:  skills.Filter(required, have, true),
		Missing:  skills.Filter(required, have, false),
	}, nil
}

// CalculateTotalDuration sums the known hours of missing skills and converts them to days.
// Skills without data are reported with nil hours and add nothing to the total.
// When hoursPerDay <= 0 the total hours are returned as days instead of dividing.
func (a *Analyzer) CalculateTotalDuration(missing []string, hoursPerDay float64) Duration {
	d := Duration{Skills: make(SkillHoursList, 0, len(missing))}
	for _, skill := range missing {
		sh := SkillHours{Skill: skill}
		if h, ok := a.store.HoursFor(skill); ok {
			sh.Hours = &h
			d.TotalHours += h
		}
		d.Skills = append(d.Skills, sh)
	}
	days := d.TotalHours
	if hoursPerDay > 0 {
		days = d.TotalHours / hoursPerDay
	}
	d.TotalDays = Round1(days)
	return d
}

// Round1 rounds to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

package dataset

import (
	"strings"

	"github.com/artem13815/skillpath/pkg/skills"
)

// Store is an immutable snapshot of the four datasets.
// It is built once and only read afterwards, so it is safe for concurrent use.
type Store struct {
	jobs         []Job
	durations    []SkillDuration
	foundation   []Course
	professional []Course

	jobTitles []string           // lower-cased titles, same index as jobs
	hours     map[string]float64 // normalized skill name -> hours, first row wins
}

// NewStore copies the given rows and builds lookup indexes.
func NewStore(jobs []Job, durations []SkillDuration, foundation, professional []Course) *Store {
	s := &Store{
		jobs:         append([]Job(nil), jobs...),
		durations:    append([]SkillDuration(nil), durations...),
		foundation:   append([]Course(nil), foundation...),
		professional: append([]Course(nil), professional...),
		jobTitles:    make([]string, len(jobs)),
		hours:        make(map[string]float64, len(durations)),
	}
	for i, j := range s.jobs {
		s.jobTitles[i] = strings.ToLower(j.Title)
	}
	for _, d := range s.durations {
		key := skills.Normalize(d.Name)
		if _, ok := s.hours[key]; ok {
			continue
		}
		s.hours[key] = d.Hours
	}
	return s
}

// FindJob resolves a target job title. An exact case-insensitive match is preferred;
// otherwise the first title containing target as a substring is used.
// Among several matches the first one in load order wins.
func (s *Store) FindJob(target string) (Job, bool) {
	q := strings.ToLower(target)
	for i, t := range s.jobTitles {
		if t == q {
			return s.jobs[i], true
		}
	}
	for i, t := range s.jobTitles {
		if strings.Contains(t, q) {
			return s.jobs[i], true
		}
	}
	return Job{}, false
}

// SearchTitles returns up to limit job titles containing query (case-insensitive), in load order.
// An empty query matches every title.
func (s *Store) SearchTitles(query string, limit int) []string {
	out := []string{}
	if limit <= 0 {
		return out
	}
	q := strings.ToLower(query)
	for i, t := range s.jobTitles {
		if !strings.Contains(t, q) {
			continue
		}
		out = append(out, s.jobs[i].Title)
		if len(out) == limit {
			break
		}
	}
	return out
}

// HoursFor looks up the estimated hours for a skill by case-insensitive exact name.
func (s *Store) HoursFor(skill string) (float64, bool) {
	h, ok := s.hours[skills.Normalize(skill)]
	return h, ok
}

// FoundationCourses returns the foundation catalogue in load order. Callers must not modify it.
func (s *Store) FoundationCourses() []Course { return s.foundation }

// ProfessionalCourses returns the professional catalogue in load order. Callers must not modify it.
func (s *Store) ProfessionalCourses() []Course { return s.professional }

// Stats returns row counts.
func (s *Store) Stats() Stats {
	return Stats{
		Jobs:                len(s.jobs),
		SkillDurations:      len(s.durations),
		FoundationCourses:   len(s.foundation),
		ProfessionalCourses: len(s.professional),
	}
}

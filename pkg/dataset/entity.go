package dataset

import "context"

// Job — вакансия и список требуемых навыков в исходном текстовом виде.
type Job struct {
	Title      string `json:"title"`
	SkillsText string `json:"skillsText"`
}

// SkillDuration is the estimated number of hours needed to learn a skill.
type SkillDuration struct {
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// Course is a row of either course catalogue. Rating is only populated for foundation courses.
type Course struct {
	Title      string  `json:"title"`
	Link       string  `json:"link"`
	Provider   string  `json:"provider"`
	Platform   string  `json:"platform"`
	Credential string  `json:"credential"`
	Duration   string  `json:"duration"`
	SkillsText string  `json:"skills"`
	Rating     float64 `json:"rating,omitempty"`
}

// Source supplies the four tabular datasets. Rows must be returned in their original order:
// lookups resolve ties by load order.
type Source interface {
	Jobs(ctx context.Context) ([]Job, error)
	SkillDurations(ctx context.Context) ([]SkillDuration, error)
	FoundationCourses(ctx context.Context) ([]Course, error)
	ProfessionalCourses(ctx context.Context) ([]Course, error)
}

// Stats reports row counts of a loaded snapshot.
type Stats struct {
	Jobs                int `json:"jobs"`
	SkillDurations      int `json:"skillDurations"`
	FoundationCourses   int `json:"foundationCourses"`
	ProfessionalCourses int `json:"professionalCourses"`
}

package advisor

import (
	"github.com/google/uuid"

	"github.com/artem13815/skillpath/pkg/course"
	"github.com/artem13815/skillpath/pkg/gap"
)

// Request — входные данные анализа разрыва навыков.
// CurrentSkills nil означает, что поле не передано; пустая строка допустима
// и даёт пустой список навыков.
type Request struct {
	TargetJob     string  `json:"targetJob" validate:"required"`
	CurrentSkills *string `json:"currentSkills" validate:"required"`
	HoursPerDay   float64 `json:"hoursPerDay"`
}

// Report is the full answer for one request.
type Report struct {
	ID                  uuid.UUID            `json:"id"`
	TargetJob           string               `json:"targetJob"`
	JobTitle            string               `json:"jobTitle"`
	Required            []string             `json:"required"`
	Matched             []string             `json:"matched"`
	Missing             []string             `json:"missing"`
	TotalDays           float64              `json:"totalDays"`
	TotalHours          float64              `json:"totalHours"`
	SkillHours          gap.SkillHoursList   `json:"skillHours"`
	HoursPerDay         float64              `json:"hoursPerDay"`
	ProfessionalCourses []course.Recommended `json:"professionalCourses"`
	FoundationCourses   []course.Recommended `json:"foundationCourses"`
}

// ErrValidation простая ошибка валидации запроса.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

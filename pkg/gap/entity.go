package gap

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrJobNotFound is returned when neither an exact nor a substring title match exists.
var ErrJobNotFound = errors.New("job not found")

// DefaultHoursPerDay — дневной бюджет часов на обучение по умолчанию.
const DefaultHoursPerDay = 2.0

// Result partitions the required skills of the resolved job.
// Matched and Missing are filters of Required and keep its order.
type Result struct {
	JobTitle string   `json:"jobTitle"`
	Required []string `json:"required"`
	Matched  []string `json:"matched"`
	Missing  []string `json:"missing"`
}

// SkillHours is the estimate for one missing skill. Hours is nil when the skill has no duration data.
type SkillHours struct {
	Skill string   `json:"skill"`
	Hours *float64 `json:"hours"`
}

// Known reports whether duration data exists for the skill.
func (s SkillHours) Known() bool { return s.Hours != nil }

// SkillHoursList keeps estimates in missing-skill order and encodes as a JSON object.
type SkillHoursList []SkillHours

func (l SkillHoursList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sh := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(sh.Skill)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(sh.Hours)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Duration is the learning-time estimate for a set of missing skills.
type Duration struct {
	TotalHours float64        `json:"totalHours"`
	TotalDays  float64        `json:"totalDays"`
	Skills     SkillHoursList `json:"skillHours"`
}

// Unknown lists the skills without duration data.
func (d Duration) Unknown() []string {
	out := []string{}
	for _, s := range d.Skills {
		if !s.Known() {
			out = append(out, s.Skill)
		}
	}
	return out
}

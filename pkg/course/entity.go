package course

import (
	"encoding/json"

	"github.com/artem13815/skillpath/pkg/dataset"
)

// Kind selects the catalogue and its ranking rule.
type Kind string

const (
	// Foundation courses carry a rating used as a secondary sort key.
	Foundation Kind = "foundation"
	// Professional courses are ranked by coverage only.
	Professional Kind = "professional"
)

// DefaultLimit is the number of courses suggested per catalogue.
const DefaultLimit = 4

// Recommended is a course together with the missing skills it covers.
// Covered is a subset of the missing skills, in their order.
type Recommended struct {
	Kind         Kind           `json:"-"`
	Course       dataset.Course `json:"-"`
	Covered      []string       `json:"coveredSkills"`
	TotalCovered int            `json:"totalCovered"`
}

type recommendedJSON struct {
	Title        string   `json:"title"`
	Link         string   `json:"link"`
	Provider     string   `json:"provider"`
	Platform     string   `json:"platform"`
	Credential   string   `json:"credential"`
	Duration     string   `json:"duration"`
	Rating       *float64 `json:"rating,omitempty"`
	Covered      []string `json:"coveredSkills"`
	TotalCovered int      `json:"totalCovered"`
}

// MarshalJSON flattens the course fields; rating is only emitted for foundation courses.
func (r Recommended) MarshalJSON() ([]byte, error) {
	out := recommendedJSON{
		Title:        r.Course.Title,
		Link:         r.Course.Link,
		Provider:     r.Course.Provider,
		Platform:     r.Course.Platform,
		Credential:   r.Course.Credential,
		Duration:     r.Course.Duration,
		Covered:      r.Covered,
		TotalCovered: r.TotalCovered,
	}
	if r.Kind == Foundation {
		rating := r.Course.Rating
		out.Rating = &rating
	}
	return json.Marshal(out)
}

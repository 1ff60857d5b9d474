package course

import (
	"sort"
	"strings"

	"github.com/artem13815/skillpath/pkg/dataset"
	"github.com/artem13815/skillpath/pkg/skills"
)

// Recommender suggests courses from one catalogue.
type Recommender struct {
	kind    Kind
	courses []dataset.Course
}

func NewRecommender(kind Kind, courses []dataset.Course) *Recommender {
	return &Recommender{kind: kind, courses: courses}
}

// NewFoundation builds the foundation recommender over the snapshot.
func NewFoundation(store *dataset.Store) *Recommender {
	return NewRecommender(Foundation, store.FoundationCourses())
}

// NewProfessional builds the professional recommender over the snapshot.
func NewProfessional(store *dataset.Store) *Recommender {
	return NewRecommender(Professional, store.ProfessionalCourses())
}

func (r *Recommender) Kind() Kind { return r.kind }

// Suggest returns at most limit courses covering the missing skills, best first.
//
// Selection is two-pass: a course is a candidate when its lower-cased skills text contains any
// missing skill as a substring; it is then scored by the missing skills present as whole tokens
// of that text. A candidate may therefore score zero (e.g. "excel" inside "excel vba") and still
// be listed, after every course that covers something.
// Ties keep catalogue order.
func (r *Recommender) Suggest(missing []string, limit int) []Recommended {
	out := []Recommended{}
	if len(missing) == 0 || limit <= 0 {
		return out
	}
	needles := make([]string, len(missing))
	for i, s := range missing {
		needles[i] = strings.ToLower(s)
	}
	for _, c := range r.courses {
		if !containsAny(strings.ToLower(c.SkillsText), needles) {
			continue
		}
		covered := skills.Filter(missing, skills.Set(skills.Parse(c.SkillsText)), true)
		out = append(out, Recommended{
			Kind:         r.kind,
			Course:       c,
			Covered:      covered,
			TotalCovered: len(covered),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return r.less(out[j], out[i]) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// less reports whether a ranks strictly below b.
func (r *Recommender) less(a, b Recommended) bool {
	if a.TotalCovered != b.TotalCovered {
		return a.TotalCovered < b.TotalCovered
	}
	if r.kind == Foundation {
		return a.Course.Rating < b.Course.Rating
	}
	return false
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

package gap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillpath/pkg/dataset"
	"github.com/artem13815/skillpath/pkg/skills"
)

func newAnalyzer() *Analyzer {
	store := dataset.NewStore(
		[]dataset.Job{
			{Title: "Data Analyst", SkillsText: "sql, excel, python"},
			{Title: "Machine Learning Engineer", SkillsText: "python, statistics, pytorch, sql, docker"},
		},
		[]dataset.SkillDuration{
			{Name: "sql", Hours: 10},
			{Name: "excel", Hours: 5},
			{Name: "statistics", Hours: 40},
			{Name: "Docker", Hours: 12.5},
		},
		nil, nil,
	)
	return NewAnalyzer(store)
}

func TestAnalyzer_DataAnalystScenario(t *testing.T) {
	a := newAnalyzer()

	res, err := a.FindMissingSkills("data analyst", "SQL, Power BI")
	require.NoError(t, err)
	assert.Equal(t, "Data Analyst", res.JobTitle)
	assert.Equal(t, []string{"sql", "excel", "python"}, res.Required)
	assert.Equal(t, []string{"sql"}, res.Matched)
	assert.Equal(t, []string{"excel", "python"}, res.Missing)

	d := a.CalculateTotalDuration(res.Missing, 2)
	assert.Equal(t, 2.5, d.TotalDays)
	assert.Equal(t, 5.0, d.TotalHours)
	require.Len(t, d.Skills, 2)
	assert.Equal(t, "excel", d.Skills[0].Skill)
	require.NotNil(t, d.Skills[0].Hours)
	assert.Equal(t, 5.0, *d.Skills[0].Hours)
	assert.Equal(t, "python", d.Skills[1].Skill)
	assert.Nil(t, d.Skills[1].Hours)
	assert.Equal(t, []string{"python"}, d.Unknown())
}

func TestAnalyzer_JobNotFound(t *testing.T) {
	a := newAnalyzer()

	res, err := a.FindMissingSkills("astronaut", "sql")
	assert.ErrorIs(t, err, ErrJobNotFound)
	assert.Equal(t, Result{}, res)
}

func TestAnalyzer_JobWithoutRequirementsResolves(t *testing.T) {
	a := NewAnalyzer(dataset.NewStore(
		[]dataset.Job{{Title: "Intern", SkillsText: ""}},
		[]dataset.SkillDuration{{Name: "sql", Hours: 10}},
		nil, nil,
	))

	res, err := a.FindMissingSkills("intern", "sql")
	require.NoError(t, err)
	assert.Equal(t, "Intern", res.JobTitle)
	assert.Empty(t, res.Required)
	assert.Empty(t, res.Matched)
	assert.Empty(t, res.Missing)

	dur := a.CalculateTotalDuration(res.Missing, DefaultHoursPerDay)
	assert.Equal(t, 0.0, dur.TotalDays)
	assert.Empty(t, dur.Skills)
}

func TestAnalyzer_SubstringMatch(t *testing.T) {
	a := newAnalyzer()

	res, err := a.FindMissingSkills("learning eng", "")
	require.NoError(t, err)
	assert.Equal(t, "Machine Learning Engineer", res.JobTitle)
	assert.Equal(t, []string{}, res.Matched)
	assert.Equal(t, res.Required, res.Missing)
}

func TestAnalyzer_NothingMissing(t *testing.T) {
	a := newAnalyzer()

	res, err := a.FindMissingSkills("Data Analyst", "python,EXCEL , sql")
	require.NoError(t, err)
	assert.Equal(t, []string{}, res.Missing)

	d := a.CalculateTotalDuration(res.Missing, 2)
	assert.Equal(t, 0.0, d.TotalDays)
	assert.Empty(t, d.Skills)
}

func TestAnalyzer_PartitionProperty(t *testing.T) {
	a := newAnalyzer()
	inputs := []string{"", "sql", "Docker, pytorch", "python, statistics, pytorch, sql, docker", "rust, go"}

	for _, in := range inputs {
		res, err := a.FindMissingSkills("machine learning engineer", in)
		require.NoError(t, err)

		matched := skills.Set(res.Matched)
		for _, s := range res.Missing {
			_, dup := matched[s]
			assert.False(t, dup, "%q both matched and missing", s)
		}
		assert.Len(t, res.Required, len(res.Matched)+len(res.Missing))

		// both are subsequences of Required
		assert.True(t, isSubsequence(res.Matched, res.Required), "matched order for %q", in)
		assert.True(t, isSubsequence(res.Missing, res.Required), "missing order for %q", in)
	}
}

func isSubsequence(sub, of []string) bool {
	i := 0
	for _, s := range of {
		if i < len(sub) && sub[i] == s {
			i++
		}
	}
	return i == len(sub)
}

func TestCalculateTotalDuration_Rounding(t *testing.T) {
	a := newAnalyzer()

	// 10 + 40 + 12.5 = 62.5 h / 3 = 20.8333
	d := a.CalculateTotalDuration([]string{"sql", "statistics", "docker"}, 3)
	assert.Equal(t, 62.5, d.TotalHours)
	assert.Equal(t, 20.8, d.TotalDays)

	// 12.5 / 4 = 3.125 -> 3.1
	assert.Equal(t, 3.1, a.CalculateTotalDuration([]string{"docker"}, 4).TotalDays)
	// 5 / 4 = 1.25 -> 1.3 (half away from zero)
	assert.Equal(t, 1.3, a.CalculateTotalDuration([]string{"excel"}, 4).TotalDays)
}

func TestCalculateTotalDuration_DegenerateHoursPerDay(t *testing.T) {
	a := newAnalyzer()

	for _, hpd := range []float64{0, -1} {
		d := a.CalculateTotalDuration([]string{"sql", "excel"}, hpd)
		assert.Equal(t, 15.0, d.TotalDays, "hoursPerDay=%v", hpd)
	}
}

func TestCalculateTotalDuration_Monotonic(t *testing.T) {
	a := newAnalyzer()
	missing := []string{}
	prev := 0.0
	for _, s := range []string{"excel", "unknown skill", "sql", "statistics", "python", "docker"} {
		missing = append(missing, s)
		d := a.CalculateTotalDuration(missing, 2)
		assert.GreaterOrEqual(t, d.TotalDays, prev, "after adding %q", s)
		prev = d.TotalDays
	}
}

func TestSkillHoursList_MarshalKeepsOrder(t *testing.T) {
	five := 5.0
	list := SkillHoursList{
		{Skill: "python"},
		{Skill: "excel", Hours: &five},
		{Skill: "a \"quoted\" skill"},
	}

	raw, err := json.Marshal(list)
	require.NoError(t, err)
	assert.Equal(t, `{"python":null,"excel":5,"a \"quoted\" skill":null}`, string(raw))

	raw, err = json.Marshal(SkillHoursList{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(raw))
}

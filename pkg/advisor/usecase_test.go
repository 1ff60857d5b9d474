package advisor

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillpath/pkg/dataset"
	"github.com/artem13815/skillpath/pkg/gap"
)

func newTestService(t *testing.T) (UseCase, *dataset.Holder) {
	t.Helper()
	store := dataset.NewStore(
		[]dataset.Job{
			{Title: "Data Analyst", SkillsText: "sql, excel, python"},
			{Title: "Backend Developer", SkillsText: "go, sql, docker"},
		},
		[]dataset.SkillDuration{{Name: "sql", Hours: 10}, {Name: "excel", Hours: 5}},
		[]dataset.Course{
			{Title: "Excel Basics", SkillsText: "excel", Rating: 4.2},
			{Title: "Python for Everybody", SkillsText: "python", Rating: 4.8},
			{Title: "Data Toolkit", SkillsText: "excel, python", Rating: 3.9},
		},
		[]dataset.Course{
			{Title: "Pro A", SkillsText: "excel, python"},
			{Title: "Pro B", SkillsText: "python, excel, sql"},
			{Title: "Pro C", SkillsText: "python"},
		},
	)
	h := dataset.NewHolder(store)
	return NewService(h, DefaultOptions()), h
}

func skillsText(s string) *string { return &s }

func TestService_Analyze(t *testing.T) {
	svc, _ := newTestService(t)

	rep, err := svc.Analyze(context.Background(), Request{
		TargetJob:     "data analyst",
		CurrentSkills: skillsText("SQL, Power BI"),
		HoursPerDay:   2,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rep.ID)
	assert.Equal(t, "data analyst", rep.TargetJob)
	assert.Equal(t, "Data Analyst", rep.JobTitle)
	assert.Equal(t, []string{"sql", "excel", "python"}, rep.Required)
	assert.Equal(t, []string{"sql"}, rep.Matched)
	assert.Equal(t, []string{"excel", "python"}, rep.Missing)
	assert.Equal(t, 2.5, rep.TotalDays)
	assert.Equal(t, 2.0, rep.HoursPerDay)

	var pro []string
	for _, c := range rep.ProfessionalCourses {
		pro = append(pro, c.Course.Title)
	}
	// Pro A and Pro B both cover two skills; catalogue order is kept.
	assert.Equal(t, []string{"Pro A", "Pro B", "Pro C"}, pro)

	var found []string
	for _, c := range rep.FoundationCourses {
		found = append(found, c.Course.Title)
	}
	assert.Equal(t, []string{"Data Toolkit", "Python for Everybody", "Excel Basics"}, found)
}

func TestService_Analyze_JSONShape(t *testing.T) {
	svc, _ := newTestService(t)

	rep, err := svc.Analyze(context.Background(), Request{TargetJob: "Data Analyst", CurrentSkills: skillsText("sql"), HoursPerDay: 2})
	require.NoError(t, err)
	raw, err := json.Marshal(rep)
	require.NoError(t, err)

	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.JSONEq(t, `{"excel":5,"python":null}`, string(m["skillHours"]))
	assert.JSONEq(t, `2.5`, string(m["totalDays"]))
}

func TestService_Analyze_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	rep, err := svc.Analyze(context.Background(), Request{TargetJob: "pilot", CurrentSkills: skillsText("flying"), HoursPerDay: 2})
	assert.ErrorIs(t, err, gap.ErrJobNotFound)
	assert.Nil(t, rep.ProfessionalCourses)
	assert.Nil(t, rep.FoundationCourses)
}

func TestService_Analyze_NothingMissing(t *testing.T) {
	svc, _ := newTestService(t)

	rep, err := svc.Analyze(context.Background(), Request{TargetJob: "backend", CurrentSkills: skillsText("Go, SQL, Docker"), HoursPerDay: 2})
	require.NoError(t, err)
	assert.Equal(t, "Backend Developer", rep.JobTitle)
	assert.Empty(t, rep.Missing)
	assert.Equal(t, 0.0, rep.TotalDays)
	assert.Empty(t, rep.ProfessionalCourses)
	assert.Empty(t, rep.FoundationCourses)
}

func TestService_Analyze_Validation(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		req   Request
		field string
	}{
		{Request{TargetJob: "", CurrentSkills: skillsText("sql")}, "targetJob"},
		{Request{TargetJob: "   ", CurrentSkills: skillsText("sql")}, "targetJob"},
		{Request{TargetJob: "data analyst"}, "currentSkills"},
	}
	for _, tc := range cases {
		_, err := svc.Analyze(context.Background(), tc.req)
		var verr ErrValidation
		require.ErrorAs(t, err, &verr, "request %+v", tc.req)
		assert.Contains(t, verr.Error(), tc.field)
	}
}

func TestService_Analyze_BlankSkillsMissEverything(t *testing.T) {
	svc, _ := newTestService(t)

	for _, text := range []string{"", "   "} {
		rep, err := svc.Analyze(context.Background(), Request{TargetJob: "data analyst", CurrentSkills: skillsText(text), HoursPerDay: 2})
		require.NoError(t, err, "skills %q", text)
		assert.Empty(t, rep.Matched)
		assert.NotNil(t, rep.Matched)
		assert.Equal(t, rep.Required, rep.Missing)
		assert.Equal(t, 7.5, rep.TotalDays)
		assert.NotEmpty(t, rep.FoundationCourses)
	}
}

func TestService_Analyze_DegenerateHoursPerDay(t *testing.T) {
	svc, _ := newTestService(t)

	rep, err := svc.Analyze(context.Background(), Request{TargetJob: "data analyst", CurrentSkills: skillsText("python"), HoursPerDay: 0})
	require.NoError(t, err)
	assert.Equal(t, 15.0, rep.TotalDays)
}

func TestService_SearchJobs(t *testing.T) {
	svc, h := newTestService(t)

	assert.Equal(t, []string{"Data Analyst", "Backend Developer"}, svc.SearchJobs(context.Background(), ""))
	assert.Equal(t, []string{"Backend Developer"}, svc.SearchJobs(context.Background(), "END"))

	var jobs []dataset.Job
	for i := 0; i < 15; i++ {
		jobs = append(jobs, dataset.Job{Title: "Engineer"})
	}
	h.Swap(dataset.NewStore(jobs, nil, nil, nil))
	assert.Len(t, svc.SearchJobs(context.Background(), "eng"), 10)
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillpath/pkg/advisor"
	"github.com/artem13815/skillpath/pkg/dataset"
	"github.com/artem13815/skillpath/pkg/gap"
)

func testService() advisor.UseCase {
	store := dataset.NewStore(
		[]dataset.Job{{Title: "Data Analyst", SkillsText: "sql, excel, python"}, {Title: "Data Engineer", SkillsText: "python"}},
		[]dataset.SkillDuration{{Name: "excel", Hours: 5}},
		nil,
		[]dataset.Course{{Title: "Excel Pro", SkillsText: "excel"}},
	)
	return advisor.NewService(dataset.NewHolder(store), advisor.DefaultOptions())
}

func TestRunAnalyze(t *testing.T) {
	sql := "sql"
	var buf bytes.Buffer
	err := runAnalyze(context.Background(), &buf, testService(), advisor.Request{
		TargetJob: "data analyst", CurrentSkills: &sql, HoursPerDay: 2,
	})
	require.NoError(t, err)

	var rep map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	assert.Equal(t, "Data Analyst", rep["jobTitle"])
	assert.Equal(t, 2.5, rep["totalDays"])
	assert.Len(t, rep["professionalCourses"], 1)
}

func TestRunAnalyze_NotFound(t *testing.T) {
	knives := "knives"
	var buf bytes.Buffer
	err := runAnalyze(context.Background(), &buf, testService(), advisor.Request{
		TargetJob: "chef", CurrentSkills: &knives, HoursPerDay: 2,
	})
	assert.ErrorIs(t, err, gap.ErrJobNotFound)
	assert.Empty(t, buf.String())
}

func TestRunAnalyze_EmptySkills(t *testing.T) {
	none := ""
	var buf bytes.Buffer
	err := runAnalyze(context.Background(), &buf, testService(), advisor.Request{
		TargetJob: "data analyst", CurrentSkills: &none, HoursPerDay: 2,
	})
	require.NoError(t, err)

	var rep struct {
		Required []string `json:"required"`
		Matched  []string `json:"matched"`
		Missing  []string `json:"missing"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rep))
	assert.Empty(t, rep.Matched)
	assert.Equal(t, rep.Required, rep.Missing)
}

func TestRunJobs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runJobs(context.Background(), &buf, testService(), "data"))
	assert.Equal(t, "Data Analyst\nData Engineer\n", buf.String())
}

func TestAnalyzeCmd_RequiresFlags(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"analyze", "--job", "x"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "skills")
}

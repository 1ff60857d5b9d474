package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_FILE", "PORT", "DATASET_SOURCE", "DATABASE_URL", "DATA_DIR",
		"JOBS_FILE", "SKILL_DURATIONS_FILE", "FOUNDATION_COURSES_FILE", "PROFESSIONAL_COURSES_FILE",
		"DEFAULT_HOURS_PER_DAY", "COURSE_LIMIT", "SEARCH_LIMIT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, filepath.Join("data", "job_details.csv"), cfg.CSVSource().JobsPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/srv/data")
	t.Setenv("JOBS_FILE", "/tmp/jobs.csv")
	t.Setenv("DEFAULT_HOURS_PER_DAY", "1.5")
	t.Setenv("COURSE_LIMIT", "6")
	t.Setenv("SEARCH_LIMIT", "oops")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 1.5, cfg.DefaultHoursPerDay)
	assert.Equal(t, 6, cfg.CourseLimit)
	assert.Equal(t, 10, cfg.SearchLimit, "invalid number falls back to default")

	src := cfg.CSVSource()
	assert.Equal(t, "/tmp/jobs.csv", src.JobsPath)
	assert.Equal(t, filepath.Join("/srv/data", "foundation_courses.csv"), src.FoundationCoursesPath)
}

func TestLoad_YAMLFileThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "skillpath.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7000\"\ndataDir: /opt/datasets\ncourseLimit: 3\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("COURSE_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "/opt/datasets", cfg.DataDir)
	assert.Equal(t, 5, cfg.CourseLimit)
}

func TestLoad_BadYAML(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unterminated\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.DatasetSource = SourcePostgres
	assert.Error(t, cfg.Validate())
	cfg.DatabaseURL = "postgres://localhost/skills"
	assert.NoError(t, cfg.Validate())

	cfg.DatasetSource = "excel"
	assert.Error(t, cfg.Validate())
}

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrSchema is returned when a dataset file lacks a required column.
var ErrSchema = errors.New("dataset schema mismatch")

// Column names of the dataset files.
const (
	colJobTitle       = "Job Title"
	colJobSkills      = "Skill Requirements"
	colSkillName      = "Skill Name"
	colSkillHours     = "Estimated Completion Time (hours)"
	colCourseTitle    = "title"
	colCourseLink     = "link"
	colCourseProvider = "provider"
	colCoursePlatform = "platform"
	colCourseCred     = "credential"
	colCourseDuration = "duration"
	colCourseSkills   = "skills"
	colCourseRating   = "rating"
)

// Default file names inside the data directory.
const (
	JobsFile                = "job_details.csv"
	SkillDurationsFile      = "skills_completion_time.csv"
	FoundationCoursesFile   = "foundation_courses.csv"
	ProfessionalCoursesFile = "professional_courses.csv"
)

// CSVSource reads the datasets from CSV files with a header row.
type CSVSource struct {
	JobsPath                string
	SkillDurationsPath      string
	FoundationCoursesPath   string
	ProfessionalCoursesPath string
}

// NewCSVSource points every dataset at its default file name inside dir.
func NewCSVSource(dir string) CSVSource {
	return CSVSource{
		JobsPath:                filepath.Join(dir, JobsFile),
		SkillDurationsPath:      filepath.Join(dir, SkillDurationsFile),
		FoundationCoursesPath:   filepath.Join(dir, FoundationCoursesFile),
		ProfessionalCoursesPath: filepath.Join(dir, ProfessionalCoursesFile),
	}
}

func (s CSVSource) Jobs(_ context.Context) ([]Job, error) {
	return readFile(s.JobsPath, ReadJobs)
}

func (s CSVSource) SkillDurations(_ context.Context) ([]SkillDuration, error) {
	return readFile(s.SkillDurationsPath, ReadSkillDurations)
}

func (s CSVSource) FoundationCourses(_ context.Context) ([]Course, error) {
	return readFile(s.FoundationCoursesPath, func(r io.Reader) ([]Course, error) { return ReadCourses(r, true) })
}

func (s CSVSource) ProfessionalCourses(_ context.Context) ([]Course, error) {
	return readFile(s.ProfessionalCoursesPath, func(r io.Reader) ([]Course, error) { return ReadCourses(r, false) })
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	rows, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

// ReadJobs parses the jobs table.
func ReadJobs(r io.Reader) ([]Job, error) {
	t, err := newTable(r, colJobTitle, colJobSkills)
	if err != nil {
		return nil, err
	}
	var out []Job
	err = t.each(func(row record) error {
		out = append(out, Job{Title: row.get(colJobTitle), SkillsText: row.get(colJobSkills)})
		return nil
	})
	return out, err
}

// ReadSkillDurations parses the skill duration table. Hours must be numeric.
func ReadSkillDurations(r io.Reader) ([]SkillDuration, error) {
	t, err := newTable(r, colSkillName, colSkillHours)
	if err != nil {
		return nil, err
	}
	var out []SkillDuration
	err = t.each(func(row record) error {
		hours, err := row.float(colSkillHours)
		if err != nil {
			return err
		}
		out = append(out, SkillDuration{Name: row.get(colSkillName), Hours: hours})
		return nil
	})
	return out, err
}

// ReadCourses parses a course table. withRating requires the rating column; a blank rating reads as 0.
func ReadCourses(r io.Reader, withRating bool) ([]Course, error) {
	cols := []string{
		colCourseTitle, colCourseLink, colCourseProvider, colCoursePlatform,
		colCourseCred, colCourseDuration, colCourseSkills,
	}
	if withRating {
		cols = append(cols, colCourseRating)
	}
	t, err := newTable(r, cols...)
	if err != nil {
		return nil, err
	}
	var out []Course
	err = t.each(func(row record) error {
		c := Course{
			Title:      row.get(colCourseTitle),
			Link:       row.get(colCourseLink),
			Provider:   row.get(colCourseProvider),
			Platform:   row.get(colCoursePlatform),
			Credential: row.get(colCourseCred),
			Duration:   row.get(colCourseDuration),
			SkillsText: row.get(colCourseSkills),
		}
		if withRating {
			rating, err := row.float(colCourseRating)
			if err != nil {
				return err
			}
			c.Rating = rating
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

type table struct {
	r     *csv.Reader
	index map[string]int
}

type record struct {
	line   int
	fields []string
	index  map[string]int
}

func newTable(r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrSchema)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, ok := index[h]; !ok {
			index[h] = i
		}
	}
	var missing []string
	for _, col := range required {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns %q", ErrSchema, missing)
	}
	return &table{r: cr, index: index}, nil
}

func (t *table) each(fn func(record) error) error {
	for line := 2; ; line++ {
		fields, err := t.r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read row %d: %w", line, err)
		}
		if err := fn(record{line: line, fields: fields, index: t.index}); err != nil {
			return err
		}
	}
}

func (r record) get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func (r record) float(col string) (float64, error) {
	v := r.get(col)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: column %q: invalid number %q", r.line, col, v)
	}
	return f, nil
}

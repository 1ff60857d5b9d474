package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"

	"github.com/artem13815/skillpath/pkg/dataset"
)

// Dataset sources.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

type Config struct {
	Port          string `yaml:"port"`
	DatasetSource string `yaml:"datasetSource"`
	DatabaseURL   string `yaml:"databaseUrl"`

	DataDir                 string `yaml:"dataDir"`
	JobsFile                string `yaml:"jobsFile"`
	SkillDurationsFile      string `yaml:"skillDurationsFile"`
	FoundationCoursesFile   string `yaml:"foundationCoursesFile"`
	ProfessionalCoursesFile string `yaml:"professionalCoursesFile"`

	DefaultHoursPerDay float64 `yaml:"defaultHoursPerDay"`
	CourseLimit        int     `yaml:"courseLimit"`
	SearchLimit        int     `yaml:"searchLimit"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:               "8080",
		DatasetSource:      SourceCSV,
		DataDir:            "data",
		DefaultHoursPerDay: 2,
		CourseLimit:        4,
		SearchLimit:        10,
	}
}

// Load reads environment variables, optionally from a .env file if present.
// When CONFIG_FILE points at a YAML file it is applied first; environment variables win over it.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.DatasetSource = getEnv("DATASET_SOURCE", cfg.DatasetSource)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.DataDir = getEnv("DATA_DIR", cfg.DataDir)
	cfg.JobsFile = getEnv("JOBS_FILE", cfg.JobsFile)
	cfg.SkillDurationsFile = getEnv("SKILL_DURATIONS_FILE", cfg.SkillDurationsFile)
	cfg.FoundationCoursesFile = getEnv("FOUNDATION_COURSES_FILE", cfg.FoundationCoursesFile)
	cfg.ProfessionalCoursesFile = getEnv("PROFESSIONAL_COURSES_FILE", cfg.ProfessionalCoursesFile)
	cfg.DefaultHoursPerDay = getEnvFloat("DEFAULT_HOURS_PER_DAY", cfg.DefaultHoursPerDay)
	cfg.CourseLimit = getEnvInt("COURSE_LIMIT", cfg.CourseLimit)
	cfg.SearchLimit = getEnvInt("SEARCH_LIMIT", cfg.SearchLimit)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks combinations that cannot be fixed by defaults.
func (c Config) Validate() error {
	switch c.DatasetSource {
	case SourceCSV:
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL не задан: нужен для DATASET_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.DatasetSource)
	}
	return nil
}

// CSVSource resolves dataset file paths. Explicit file settings override DataDir defaults.
func (c Config) CSVSource() dataset.CSVSource {
	src := dataset.NewCSVSource(c.DataDir)
	if c.JobsFile != "" {
		src.JobsPath = c.JobsFile
	}
	if c.SkillDurationsFile != "" {
		src.SkillDurationsPath = c.SkillDurationsFile
	}
	if c.FoundationCoursesFile != "" {
		src.FoundationCoursesPath = c.FoundationCoursesFile
	}
	if c.ProfessionalCoursesFile != "" {
		src.ProfessionalCoursesPath = c.ProfessionalCoursesFile
	}
	return src
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

package handlers

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/artem13815/skillpath/api/http/presenter"
	"github.com/artem13815/skillpath/pkg/advisor"
	"github.com/artem13815/skillpath/pkg/course"
	"github.com/artem13815/skillpath/pkg/gap"
)

// JobNotFoundMessage is shown when the target job cannot be resolved.
const JobNotFoundMessage = "Job not found in file database."

// AdvisorHandler serves the skill gap form and the JSON API on top of advisor.UseCase.
type AdvisorHandler struct {
	uc           advisor.UseCase
	defaultHours float64
}

func NewAdvisorHandler(uc advisor.UseCase, defaultHoursPerDay float64) *AdvisorHandler {
	return &AdvisorHandler{uc: uc, defaultHours: defaultHoursPerDay}
}

// Form renders the empty input form.
func (h *AdvisorHandler) Form(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{"HoursPerDay": h.defaultHours})
}

// formResult is the JSON form of the result page.
type formResult struct {
	TargetJob           string               `json:"target_job"`
	Required            []string             `json:"required"`
	Matched             []string             `json:"matched"`
	Missing             []string             `json:"missing"`
	TotalDays           float64              `json:"total_days"`
	SkillHours          gap.SkillHoursList   `json:"skill_hours"`
	HoursPerDay         float64              `json:"hours_per_day"`
	ProfessionalCourses []course.Recommended `json:"professional_courses"`
	FoundationCourses   []course.Recommended `json:"foundation_courses"`
}

// Submit handles the form post: target_job, current_skills and optional hours_per_day.
// An empty current_skills is a valid input; only an absent field is rejected.
// Responds with the result page, or JSON when the client accepts it.
func (h *AdvisorHandler) Submit(c *fiber.Ctx) error {
	target, _ := formValue(c, "target_job")
	req := advisor.Request{TargetJob: target}
	if skills, ok := formValue(c, "current_skills"); ok {
		req.CurrentSkills = &skills
	}
	hours, err := parseHoursPerDay(c.FormValue("hours_per_day"), h.defaultHours)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	req.HoursPerDay = hours

	rep, err := h.uc.Analyze(c.UserContext(), req)
	if err != nil {
		var verr advisor.ErrValidation
		switch {
		case errors.Is(err, gap.ErrJobNotFound):
			log.Infow("job not found", "target", req.TargetJob)
			return presenter.Page(c, http.StatusNotFound, "result",
				fiber.Map{"Error": JobNotFoundMessage},
				presenter.FormError{Error: JobNotFoundMessage})
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, err.Error())
		}
	}
	log.Infow("analysis", "id", rep.ID, "job", rep.JobTitle, "missing", len(rep.Missing))

	return presenter.Page(c, http.StatusOK, "result", fiber.Map{
		"TargetJob":           rep.TargetJob,
		"JobTitle":            rep.JobTitle,
		"Required":            rep.Required,
		"Matched":             rep.Matched,
		"Missing":             rep.Missing,
		"TotalDays":           rep.TotalDays,
		"SkillHours":          rep.SkillHours,
		"HoursPerDay":         rep.HoursPerDay,
		"ProfessionalCourses": rep.ProfessionalCourses,
		"FoundationCourses":   rep.FoundationCourses,
	}, formResult{
		TargetJob:           rep.TargetJob,
		Required:            rep.Required,
		Matched:             rep.Matched,
		Missing:             rep.Missing,
		TotalDays:           rep.TotalDays,
		SkillHours:          rep.SkillHours,
		HoursPerDay:         rep.HoursPerDay,
		ProfessionalCourses: rep.ProfessionalCourses,
		FoundationCourses:   rep.FoundationCourses,
	})
}

type analyzeRequest struct {
	TargetJob     string   `json:"targetJob"`
	CurrentSkills *string  `json:"currentSkills"`
	HoursPerDay   *float64 `json:"hoursPerDay"`
}

// Analyze считает разрыв навыков и подбирает курсы.
// @Summary Анализ разрыва навыков под вакансию
// @Tags    Анализ
// @Accept  json
// @Produce json
// @Param   input body analyzeRequest true "Целевая вакансия, текущие навыки и часы в день"
// @Success 200 {object} advisor.Report
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /analyses [post]
func (h *AdvisorHandler) Analyze(c *fiber.Ctx) error {
	var req analyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	hours := h.defaultHours
	if req.HoursPerDay != nil {
		hours = *req.HoursPerDay
	}
	rep, err := h.uc.Analyze(c.UserContext(), advisor.Request{
		TargetJob:     req.TargetJob,
		CurrentSkills: req.CurrentSkills,
		HoursPerDay:   hours,
	})
	if err != nil {
		var verr advisor.ErrValidation
		switch {
		case errors.Is(err, gap.ErrJobNotFound):
			return presenter.Error(c, http.StatusNotFound, JobNotFoundMessage)
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, err.Error())
		}
	}
	return presenter.JSON(c, http.StatusOK, rep)
}

// SearchJobs returns up to ten job titles containing q.
// @Summary Поиск вакансий по названию
// @Tags    Вакансии
// @Produce json
// @Param   q query string false "Подстрока названия"
// @Success 200 {array} string
// @Router  /jobs [get]
func (h *AdvisorHandler) SearchJobs(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.SearchJobs(c.UserContext(), c.Query("q")))
}

// formValue reports whether key was sent at all, which FormValue cannot tell from an empty value.
func formValue(c *fiber.Ctx, key string) (string, bool) {
	if args := c.Request().PostArgs(); args.Has(key) {
		return string(args.Peek(key)), true
	}
	if form, err := c.MultipartForm(); err == nil {
		if v := form.Value[key]; len(v) > 0 {
			return v[0], true
		}
	}
	return "", false
}

func parseHoursPerDay(v string, def float64) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("hours_per_day must be a number")
	}
	return f, nil
}

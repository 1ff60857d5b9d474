// @title         skillpath API
// @version       1.0
// @description   Сервис оценки разрыва навыков под целевую вакансию, расчёта времени обучения и подбора курсов.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	swagger "github.com/gofiber/swagger"

	_ "github.com/artem13815/skillpath/docs"

	// internal imports
	"github.com/artem13815/skillpath/api/http"
	"github.com/artem13815/skillpath/api/http/handlers"
	"github.com/artem13815/skillpath/pkg/advisor"
	"github.com/artem13815/skillpath/pkg/bootstrap"
	"github.com/artem13815/skillpath/pkg/config"
	"github.com/artem13815/skillpath/pkg/health"
	"github.com/artem13815/skillpath/pkg/health/checkers"
)

func main() {
	// Load configuration from env/.env (+ optional YAML file)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	datasets, err := bootstrap.OpenDatasets(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("load datasets: %v", err)
	}
	defer datasets.Close()
	stats := datasets.Holder.Current().Stats()
	log.Printf("datasets loaded from %s: jobs=%d skills=%d foundation=%d professional=%d",
		cfg.DatasetSource, stats.Jobs, stats.SkillDurations, stats.FoundationCourses, stats.ProfessionalCourses)

	// Wire dependencies
	advisorUC := advisor.NewService(datasets.Holder, advisor.Options{
		CourseLimit: cfg.CourseLimit,
		SearchLimit: cfg.SearchLimit,
	})
	advisorHandler := handlers.NewAdvisorHandler(advisorUC, cfg.DefaultHoursPerDay)

	// Health service: compose checkers
	checks := []health.Checker{checkers.NewDatasetChecker(datasets.Holder)}
	if datasets.Pool != nil {
		checks = append(checks, checkers.NewPostgresChecker(datasets.Pool))
	}
	healthHandler := handlers.NewHealthHandler(health.NewService(checks...), datasets.Holder)

	app := http.NewApp(advisorHandler, healthHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// SIGHUP reloads datasets; SIGINT/SIGTERM stop the server.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for sig := range sigs {
			if sig != syscall.SIGHUP {
				log.Printf("received %s, shutting down", sig)
				if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
					log.Printf("shutdown: %v", err)
				}
				return
			}
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			stats, err := datasets.Reload(ctx)
			cancel()
			if err != nil {
				log.Printf("reload datasets: %v (keeping previous snapshot)", err)
				continue
			}
			log.Printf("datasets reloaded: jobs=%d skills=%d foundation=%d professional=%d",
				stats.Jobs, stats.SkillDurations, stats.FoundationCourses, stats.ProfessionalCourses)
		}
	}()

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/skillpath/pkg/advisor"
	"github.com/artem13815/skillpath/pkg/bootstrap"
	"github.com/artem13815/skillpath/pkg/config"
	"github.com/artem13815/skillpath/pkg/gap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "skillpath",
		Short:         "Skill gap analysis and course recommendations from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newAnalyzeCmd(), newJobsCmd())
	return root
}

// openService loads datasets the same way the server does.
func openService(ctx context.Context) (advisor.UseCase, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	d, err := bootstrap.OpenDatasets(ctx, cfg)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	uc := advisor.NewService(d.Holder, advisor.Options{CourseLimit: cfg.CourseLimit, SearchLimit: cfg.SearchLimit})
	return uc, cfg, d.Close, nil
}

func newAnalyzeCmd() *cobra.Command {
	var (
		job    string
		skills string
		hours  float64
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compare current skills with a target job and suggest courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, cfg, closeFn, err := openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()
			if !cmd.Flags().Changed("hours") {
				hours = cfg.DefaultHoursPerDay
			}
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), uc, advisor.Request{
				TargetJob:     job,
				CurrentSkills: &skills,
				HoursPerDay:   hours,
			})
		},
	}
	cmd.Flags().StringVarP(&job, "job", "j", "", "target job title (exact or partial)")
	cmd.Flags().StringVarP(&skills, "skills", "s", "", "current skills, comma separated")
	cmd.Flags().Float64Var(&hours, "hours", gap.DefaultHoursPerDay, "study hours per day")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("skills")
	return cmd
}

func runAnalyze(ctx context.Context, w io.Writer, uc advisor.UseCase, req advisor.Request) error {
	rep, err := uc.Analyze(ctx, req)
	if errors.Is(err, gap.ErrJobNotFound) {
		return fmt.Errorf("%q: %w", req.TargetJob, err)
	}
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func newJobsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jobs [query]",
		Short: "List job titles containing query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, _, closeFn, err := openService(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runJobs(cmd.Context(), cmd.OutOrStdout(), uc, query)
		},
	}
}

func runJobs(ctx context.Context, w io.Writer, uc advisor.UseCase, query string) error {
	for _, title := range uc.SearchJobs(ctx, query) {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"context"
	"coursesearch/internal/config"
	"coursesearch/internal/render"
	"coursesearch/pkg/domain"
	"coursesearch/pkg/logger"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func searchCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <course-url|course-id> <query>...",
		Short: "Harvests a course and prints the items matching the query",
		Example: `  coursesearch search https://school.instructure.com/courses/123 photosynthesis
  coursesearch search 123 '"cell wall"' membrane --format json`,
		Args: cobra.MinimumNArgs(2), //nolint: mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			course, err := resolveCourse(cfg, args[0])
			if err != nil {
				return err
			}
			searcher, err := newSearcher(cfg, course.BaseURL)
			if err != nil {
				return err
			}

			res, err := searcher.Search(ctx, course, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			if len(res.Failures) > 0 {
				logger.Warn(ctx, "results are incomplete", zap.Int("failures", len(res.Failures)))
			}

			return render.Write(cmd.OutOrStdout(), format, render.IsTerminal(os.Stdout), res, func() (string, error) {
				return render.Results(res, course.BaseURL), nil
			})
		},
	}

	addFormatFlag(cmd)

	return cmd
}

func contentCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content <course-url|course-id> <kind> <key>",
		Short: "Prints one assignment, discussion, quiz or page of a course",
		Example: `  coursesearch content 123 assignments 42
  coursesearch content 123 pages syllabus --format yaml`,
		Args: cobra.ExactArgs(3), //nolint: mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			kind, ok := domain.ParseKind(args[1])
			if !ok {
				return fmt.Errorf("unknown content kind %q", args[1])
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			course, err := resolveCourse(cfg, args[0])
			if err != nil {
				return err
			}
			searcher, err := newSearcher(cfg, course.BaseURL)
			if err != nil {
				return err
			}

			c, err := searcher.Content(ctx, course, kind, args[2])
			if err != nil {
				return err
			}

			return render.Write(cmd.OutOrStdout(), format, render.IsTerminal(os.Stdout), c, func() (string, error) {
				return render.Content(c)
			})
		},
	}

	addFormatFlag(cmd)

	return cmd
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", string(render.FormatMarkdown), "Output format: markdown, json or yaml")
}

func formatFlag(cmd *cobra.Command) (render.Format, error) {
	raw, _ := cmd.Flags().GetString("format")

	return render.ParseFormat(raw)
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/internal/bootstrap"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

type appState struct {
	verbose  bool
	jsonLogs bool
	provider string

	logger *zap.Logger
	out    io.Writer

	loadConfigFn func() (*config.Config, error)
	pipelineFn   func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (meeting.Service, error)
}

func NewRootCmd() *cobra.Command {
	app := &appState{
		out:          os.Stdout,
		loadConfigFn: config.Load,
		pipelineFn: func(ctx context.Context, cfg *config.Config, logger *zap.Logger) (meeting.Service, error) {
			p, err := bootstrap.NewPipeline(ctx, cfg, nil, logger)
			if err != nil {
				return nil, err
			}
			return p.Service, nil
		},
	}

	cmd := &cobra.Command{
		Use:           "meetctl",
		Short:         "Transcribe and summarize meeting recordings from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level := "warn"
			if app.verbose {
				level = "debug"
			}
			l, err := logger.New(logger.Options{Level: level, JSON: app.jsonLogs})
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			app.logger = l
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&app.verbose, "verbose", app.verbose, "Enable verbose logs")
	cmd.PersistentFlags().BoolVar(&app.jsonLogs, "json", app.jsonLogs, "Enable JSON logging")
	cmd.PersistentFlags().StringVar(&app.provider, "provider", "", "Override SUMMARY_PROVIDER (gemini or groq)")

	cmd.AddCommand(newProcessCmd(app))
	cmd.AddCommand(newHealthCmd(app))

	return cmd
}

// config loads configuration and applies flag overrides
func (a *appState) config() (*config.Config, error) {
	if a.provider != "" {
		if err := pkgvalidator.New().OneOf(a.provider, []string{config.ProviderGemini, config.ProviderGroq}); err != nil {
			return nil, fmt.Errorf("invalid --provider %q: must be gemini or groq", a.provider)
		}
		if err := os.Setenv("SUMMARY_PROVIDER", a.provider); err != nil {
			return nil, err
		}
	}
	return a.loadConfigFn()
}

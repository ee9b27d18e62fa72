package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-summarizer/pkg/jobcontext"
)

func newProcessCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "process <audio-file>",
		Short: "Run the upload pipeline on a local recording and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.config()
			if err != nil {
				return err
			}

			svc, err := app.pipelineFn(cmd.Context(), cfg, app.logger)
			if err != nil {
				return err
			}

			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer f.Close()

			info, err := f.Stat()
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}

			upload := meeting.Upload{Filename: filepath.Base(path), Size: info.Size(), Body: f}
			ctx := jobcontext.Begin(cmd.Context(), "")
			result, err := svc.Process(ctx, upload)
			if err != nil {
				appErr := svc.ToAppError(err, upload)
				return errors.New(appErr.Describe())
			}

			enc := json.NewEncoder(app.out)
			enc.SetIndent("", "  ")
			return enc.Encode(dto.NewProcessResponse(
				result.Transcript,
				result.Summary,
				result.Filename,
				result.CompletedAt,
				result.WordCount,
				result.Degraded,
			))
		},
	}
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

type healthReport struct {
	Provider         string   `json:"provider"`
	Model            string   `json:"model"`
	SpeechBackend    string   `json:"speech_backend"`
	UploadDir        string   `json:"upload_dir"`
	SupportedFormats []string `json:"supported_formats"`
	MaxFileSize      string   `json:"max_file_size"`
	FFmpeg           string   `json:"ffmpeg"`
	FFmpegTimeout    string   `json:"ffmpeg_timeout"`
}

func newHealthCmd(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := app.config()
			if err != nil {
				return err
			}

			enc := json.NewEncoder(app.out)
			enc.SetIndent("", "  ")
			return enc.Encode(newHealthReport(cfg))
		},
	}
}

func newHealthReport(cfg *config.Config) healthReport {
	model := cfg.Gemini.Model
	if cfg.Summary.Provider == config.ProviderGroq {
		model = cfg.Groq.Model
	}
	ffmpeg := cfg.FFmpeg.Path
	if ffmpeg == "" {
		ffmpeg = "ffmpeg (PATH)"
	}
	speech := "assemblyai"
	if cfg.AssemblyAI.BaseURL != "" {
		speech += " (" + cfg.AssemblyAI.BaseURL + ")"
	}

	return healthReport{
		Provider:         cfg.Summary.Provider,
		Model:            model,
		SpeechBackend:    speech,
		UploadDir:        cfg.Upload.Dir,
		SupportedFormats: cfg.Upload.AllowedExtensions,
		MaxFileSize:      fmt.Sprintf("%dMB", cfg.Upload.MaxSizeMB),
		FFmpeg:           ffmpeg,
		FFmpegTimeout:    cfg.FFmpeg.Timeout.String(),
	}
}

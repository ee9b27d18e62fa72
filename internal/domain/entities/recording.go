package entities

import "time"

// UploadedAudio is an accepted upload persisted for the lifetime of one request
type UploadedAudio struct {
	OriginalName string    `json:"original_name"`
	Extension    string    `json:"extension"`
	SizeBytes    int64     `json:"size_bytes"`
	Filename     string    `json:"filename"` // generated name, e.g. meeting_20250101_093000.mp3
	Path         string    `json:"-"`
	ReceivedAt   time.Time `json:"received_at"`
}

// SizeMB returns the upload size in megabytes
func (u UploadedAudio) SizeMB() float64 {
	return float64(u.SizeBytes) / 1024 / 1024
}

// NormalizedAudio is the mono 16 kHz WAV derived from an upload
type NormalizedAudio struct {
	Path       string `json:"-"`
	SampleRate int    `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

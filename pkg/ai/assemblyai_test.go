package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/johnquangdev/meeting-summarizer/pkg/config"
)

// fakeAssemblyAI serves the upload, submit and poll endpoints used by TranscribeFromReader
func fakeAssemblyAI(t *testing.T, text string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "test-key" {
			t.Errorf("missing api key header")
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/upload"):
			json.NewEncoder(w).Encode(map[string]string{"upload_url": "https://cdn.example/audio"})
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/transcript"):
			json.NewEncoder(w).Encode(map[string]any{"id": "tr_1", "status": "queued"})
		case r.Method == http.MethodGet && strings.HasSuffix(r.URL.Path, "/transcript/tr_1"):
			json.NewEncoder(w).Encode(map[string]any{"id": "tr_1", "status": "completed", "text": text})
		default:
			http.NotFound(w, r)
		}
	}))
}

func writeAudio(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "clip.wav")
	if err := os.WriteFile(p, []byte("RIFF"), 0o644); err != nil {
		t.Fatalf("write audio: %v", err)
	}
	return p
}

func TestAssemblyAITranscribe_Success(t *testing.T) {
	ts := fakeAssemblyAI(t, "We agreed to ship on Friday.")
	defer ts.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "test-key", BaseURL: ts.URL})
	text, err := client.Transcribe(context.Background(), writeAudio(t))
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if text != "We agreed to ship on Friday." {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestAssemblyAITranscribe_EmptyTextIsNoSpeech(t *testing.T) {
	ts := fakeAssemblyAI(t, "   ")
	defer ts.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "test-key", BaseURL: ts.URL})
	_, err := client.Transcribe(context.Background(), writeAudio(t))
	if !errors.Is(err, ErrNoSpeech) {
		t.Fatalf("expected ErrNoSpeech, got %v", err)
	}
}

func TestAssemblyAITranscribe_ServiceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
	}))
	defer ts.Close()

	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "test-key", BaseURL: ts.URL})
	_, err := client.Transcribe(context.Background(), writeAudio(t))
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrNoSpeech) {
		t.Fatalf("service failure must not be reported as no speech: %v", err)
	}
}

func TestAssemblyAITranscribe_MissingFile(t *testing.T) {
	client := NewAssemblyAIClient(&config.AssemblyAIConfig{APIKey: "test-key", BaseURL: "http://127.0.0.1:1"})
	_, err := client.Transcribe(context.Background(), filepath.Join(t.TempDir(), "nope.wav"))
	var localErr *LocalAudioError
	if !errors.As(err, &localErr) {
		t.Fatalf("expected LocalAudioError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist in chain, got %v", err)
	}
}

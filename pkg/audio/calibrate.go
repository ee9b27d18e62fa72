package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var (
	ErrInvalidWAV     = errors.New("invalid wav file")
	ErrUnsupportedWAV = errors.New("unsupported wav format")
)

const (
	// DefaultCalibrationWindow is how much leading audio is sampled for the noise floor
	DefaultCalibrationWindow = 500 * time.Millisecond

	// Energies are measured on the signed 16-bit scale
	initialEnergyThreshold = 300.0
	dynamicEnergyDamping   = 0.15
	dynamicEnergyRatio     = 1.5

	frameDuration = 20 * time.Millisecond
)

// NoiseProfile is the result of ambient-noise calibration
type NoiseProfile struct {
	Window          time.Duration
	AmbientRMS      float64
	EnergyThreshold float64
}

// Analysis describes a normalized recording after calibration
type Analysis struct {
	Profile      NoiseProfile
	SampleRate   int
	Channels     int
	Duration     time.Duration
	Frames       int // frames after the calibration window
	VoicedFrames int // frames after the window whose energy exceeds the threshold
}

// HasSpeech reports whether anything after the calibration window rose above the noise floor
func (a Analysis) HasSpeech() bool {
	return a.VoicedFrames > 0
}

// Analyze calibrates against the first window of a PCM WAV file and then
// counts the frames that rise above the derived energy threshold.
// The threshold adapts per frame the way a dynamic energy recognizer does:
// threshold = threshold*damping^frameSeconds + energy*ratio*(1-damping^frameSeconds).
func Analyze(path string, window time.Duration) (Analysis, error) {
	f, err := os.Open(path)
	if err != nil {
		return Analysis{}, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return Analysis{}, ErrInvalidWAV
	}
	if dec.WavAudioFormat != 1 {
		return Analysis{}, fmt.Errorf("%w: audio format %d", ErrUnsupportedWAV, dec.WavAudioFormat)
	}

	var scale float64
	switch dec.BitDepth {
	case 16:
		scale = 1
	case 24:
		scale = 1.0 / 256
	case 32:
		scale = 1.0 / 65536
	default:
		return Analysis{}, fmt.Errorf("%w: %d-bit samples", ErrUnsupportedWAV, dec.BitDepth)
	}

	sampleRate := int(dec.SampleRate)
	channels := int(dec.NumChans)
	if sampleRate <= 0 || channels <= 0 {
		return Analysis{}, ErrInvalidWAV
	}

	frameSamples := sampleRate * channels * int(frameDuration/time.Millisecond) / 1000
	if frameSamples == 0 {
		frameSamples = channels
	}
	damping := math.Pow(dynamicEnergyDamping, frameDuration.Seconds())

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:   make([]int, frameSamples),
	}

	result := Analysis{SampleRate: sampleRate, Channels: channels}
	threshold := initialEnergyThreshold
	var (
		elapsed       time.Duration
		windowSquares float64
		windowSamples int
		totalSamples  int
	)

	for {
		n, err := dec.PCMBuffer(buf)
		if err != nil {
			return Analysis{}, fmt.Errorf("read wav pcm: %w", err)
		}
		if n == 0 {
			break
		}
		totalSamples += n

		energy := frameRMS(buf.Data[:n], scale)
		if elapsed < window {
			threshold = threshold*damping + energy*dynamicEnergyRatio*(1-damping)
			for _, s := range buf.Data[:n] {
				v := float64(s) * scale
				windowSquares += v * v
			}
			windowSamples += n
		} else {
			result.Frames++
			if energy > threshold {
				result.VoicedFrames++
			}
		}
		elapsed += frameDuration
	}

	result.Profile = NoiseProfile{Window: window, EnergyThreshold: threshold}
	if windowSamples > 0 {
		result.Profile.AmbientRMS = math.Sqrt(windowSquares / float64(windowSamples))
	}
	result.Duration = time.Duration(float64(totalSamples) / float64(sampleRate*channels) * float64(time.Second))

	return result, nil
}

func frameRMS(samples []int, scale float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		v := float64(s) * scale
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(samples)))
}

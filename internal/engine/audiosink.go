//go:build !headless

package engine

import "github.com/dbehnke/dsd-go/internal/audiopipeline"

// newAudioSink opens the live playback backend when audio output is
// enabled. Headless builds (the "headless" tag) never link oto, so
// this constructor has a no-op twin in audiosink_headless.go.
func newAudioSink(enabled bool, sampleRate, channels int) (audiopipeline.AudioSink, error) {
	if !enabled {
		return nil, nil
	}
	return audiopipeline.NewOtoSink(sampleRate, channels)
}

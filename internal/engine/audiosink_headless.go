//go:build headless

package engine

import "github.com/dbehnke/dsd-go/internal/audiopipeline"

// newAudioSink is the headless build's stub: audio output is always
// disabled, regardless of config, since no playback backend is linked.
func newAudioSink(enabled bool, sampleRate, channels int) (audiopipeline.AudioSink, error) {
	return nil, nil
}

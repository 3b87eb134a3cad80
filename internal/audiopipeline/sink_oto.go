//go:build !headless

package audiopipeline

import (
	"encoding/binary"
	"fmt"

	"github.com/ebitengine/oto/v3"
)

// otoSink adapts an oto.Player to AudioSink, feeding it PCM16 samples
// through an io.Reader the player pulls from.
type otoSink struct {
	ctx    *oto.Context
	player *oto.Player
	feed   *otoFeed
}

// otoFeed is a small byte-queue oto.Player.Read drains from; Write
// appends encoded PCM16 bytes, Read copies out what's available and
// zero-fills the remainder so the player never blocks on underrun.
type otoFeed struct {
	buf []byte
}

func (f *otoFeed) Read(p []byte) (int, error) {
	n := copy(p, f.buf)
	f.buf = f.buf[n:]
	for i := n; i < len(p); i++ {
		p[i] = 0
	}
	return len(p), nil
}

func (f *otoFeed) push(samples []int16) {
	b := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(s))
	}
	f.buf = append(f.buf, b...)
}

// NewOtoSink opens an oto playback context at the given sample rate
// and channel count, PCM16 little-endian.
func NewOtoSink(sampleRate int, channels int) (*otoSink, error) {
	opts := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   0,
	}
	ctx, ready, err := oto.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("open oto context: %w", err)
	}
	<-ready

	feed := &otoFeed{}
	player := ctx.NewPlayer(feed)
	player.Play()

	return &otoSink{ctx: ctx, player: player, feed: feed}, nil
}

// Write queues PCM16 samples for playback.
func (s *otoSink) Write(samples []int16) error {
	s.feed.push(samples)
	return nil
}

// Close stops playback.
func (s *otoSink) Close() error {
	return s.player.Close()
}

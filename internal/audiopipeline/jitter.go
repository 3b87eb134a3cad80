// Package audiopipeline implements the per-slot jitter ring, talkgroup
// gating, AGC/manual gain, mixers, and WAV export that sit between
// protocol decode and the audio backend.
package audiopipeline

// FrameSamples is the fixed per-frame sample count the jitter ring
// operates on (160 samples, matching the 20ms voice frame at 8kHz the
// protocol decoders emit).
const FrameSamples = 160

// JitterRingCapacity bounds worst-case latency to about 60ms at 8kHz.
const JitterRingCapacity = 3

// JitterRing is a fixed-capacity FIFO of fixed-size float sample
// frames. Push drops the oldest frame when full; Pop returns a
// zero-filled frame when empty rather than blocking or erroring.
type JitterRing struct {
	frames [JitterRingCapacity][FrameSamples]float32
	count  int
	head   int // index of oldest frame
}

// NewJitterRing builds an empty ring.
func NewJitterRing() *JitterRing {
	return &JitterRing{}
}

// Push enqueues a frame, dropping the oldest frame first if the ring
// is already at capacity.
func (r *JitterRing) Push(frame [FrameSamples]float32) {
	if r.count == JitterRingCapacity {
		r.head = (r.head + 1) % JitterRingCapacity
		r.count--
	}
	tail := (r.head + r.count) % JitterRingCapacity
	r.frames[tail] = frame
	r.count++
}

// Pop dequeues the oldest frame. If the ring is empty it returns a
// zero-filled frame rather than blocking.
func (r *JitterRing) Pop() [FrameSamples]float32 {
	if r.count == 0 {
		return [FrameSamples]float32{}
	}
	frame := r.frames[r.head]
	r.head = (r.head + 1) % JitterRingCapacity
	r.count--
	return frame
}

// Len reports the number of frames currently queued.
func (r *JitterRing) Len() int { return r.count }

// Full reports whether the ring is at capacity.
func (r *JitterRing) Full() bool { return r.count == JitterRingCapacity }

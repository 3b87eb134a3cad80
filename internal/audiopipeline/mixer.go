package audiopipeline

// MixMono sums N per-slot frames into a single mono frame, clamping to
// the int16-equivalent float range to avoid wraparound on overlap.
func MixMono(slots [][FrameSamples]float32) [FrameSamples]float32 {
	var out [FrameSamples]float32
	for _, frame := range slots {
		for i, s := range frame {
			out[i] += s
		}
	}
	for i := range out {
		if out[i] > 1.0 {
			out[i] = 1.0
		}
		if out[i] < -1.0 {
			out[i] = -1.0
		}
	}
	return out
}

// MixStereo places slot 0 on the left channel and slot 1 on the right,
// interleaved L,R,L,R,... Any further slots beyond 2 are ignored: this
// pipeline only ever has two TDMA slots.
func MixStereo(slotL, slotR [FrameSamples]float32) []float32 {
	out := make([]float32, FrameSamples*2)
	for i := 0; i < FrameSamples; i++ {
		out[2*i] = slotL[i]
		out[2*i+1] = slotR[i]
	}
	return out
}

// FloatToPCM16 converts normalized float samples (range [-1,1]) to
// PCM16, clamping out-of-range values rather than wrapping.
func FloatToPCM16(samples []float32) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		v := s * 32767.0
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}
		out[i] = int16(v)
	}
	return out
}

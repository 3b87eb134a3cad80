package audiopipeline

import "math"

// agcTargetRMS is the running RMS target expressed in the int16
// domain, used by both the float and short AGC variants so the two
// produce comparable output levels.
const agcTargetRMS = 10000.0

// agcSilenceThreshold guards against applying gain to near-zero input,
// which would otherwise amplify quantization noise into audible
// crackle/buzz during silence.
const agcSilenceThreshold = 1.0

// agcMaxGain bounds how aggressively AGC can boost a quiet frame.
const agcMaxGain = 32.0

// AGC tracks a running RMS estimate and derives a gain factor from it,
// for both float-sample and int16-sample inputs.
type AGC struct {
	runningRMS float64
	alpha      float64
}

// NewAGC builds an AGC with the given smoothing factor (0 < alpha <=
// 1; smaller values smooth more aggressively across frames).
func NewAGC(alpha float64) *AGC {
	if alpha <= 0 || alpha > 1 {
		alpha = 0.2
	}
	return &AGC{alpha: alpha}
}

func rms(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func (a *AGC) gainFor(frameRMS float64) float64 {
	if frameRMS < agcSilenceThreshold {
		return 1.0
	}
	a.runningRMS = a.alpha*frameRMS + (1-a.alpha)*a.runningRMS
	if a.runningRMS < agcSilenceThreshold {
		return 1.0
	}
	gain := agcTargetRMS / a.runningRMS
	if gain > agcMaxGain {
		gain = agcMaxGain
	}
	if gain < 1.0/agcMaxGain {
		gain = 1.0 / agcMaxGain
	}
	return gain
}

// ApplyFloat runs AGC over a frame of normalized float samples
// in-place, scaled into the int16-equivalent domain for RMS tracking.
func (a *AGC) ApplyFloat(samples []float32) {
	scaled := make([]float64, len(samples))
	for i, s := range samples {
		scaled[i] = float64(s) * 32768.0
	}
	frameRMS := rms(scaled)
	if frameRMS < agcSilenceThreshold {
		return
	}
	gain := a.gainFor(frameRMS)
	for i := range samples {
		samples[i] = float32(float64(samples[i]) * gain)
	}
}

// ApplyShort runs AGC over a frame of int16 samples in-place.
func (a *AGC) ApplyShort(samples []int16) {
	scaled := make([]float64, len(samples))
	for i, s := range samples {
		scaled[i] = float64(s)
	}
	frameRMS := rms(scaled)
	if frameRMS < agcSilenceThreshold {
		return
	}
	gain := a.gainFor(frameRMS)
	for i, s := range samples {
		v := float64(s) * gain
		if v > 32767 {
			v = 32767
		}
		if v < -32768 {
			v = -32768
		}
		samples[i] = int16(v)
	}
}

// InputKind distinguishes the two sample representations manual gain
// applies a different base scale to.
type InputKind int

const (
	InputNormalizedFloat InputKind = iota
	InputPCM16
)

// manualGainFloatScale is applied to normalized float input (range
// roughly [-1,1]) to bring it up to a usable PCM16-equivalent level.
const manualGainFloatScale = 4800.0

// manualGainPCM16Scale is the identity scale for already-PCM16 input.
const manualGainPCM16Scale = 1.0

// ManualGainScale returns the base scale manual gain applies for the
// given input representation.
func ManualGainScale(kind InputKind) float64 {
	switch kind {
	case InputNormalizedFloat:
		return manualGainFloatScale
	case InputPCM16:
		return manualGainPCM16Scale
	default:
		return manualGainPCM16Scale
	}
}

// ApplyManualGain scales a frame of float samples in-place by level
// times the input-type-aware base scale.
func ApplyManualGain(samples []float32, kind InputKind, level float64) {
	scale := float32(ManualGainScale(kind) * level)
	for i := range samples {
		samples[i] *= scale
	}
}

// Package ysf wires the teacher's pkg/ysf FICH/payload/Golay(20,8)
// material (originally built for the ysf2dmr bridge direction) into the
// symbol-level dispatch.Handler contract this decoder core uses: a YSF
// frame arrives as a classified dibit stream, is packed into the byte
// payload pkg/ysf.YSFFICH.Decode expects, and the FICH fields drive the
// Result this package reports.
package ysf

import (
	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/slicer"
	"github.com/dbehnke/dsd-go/pkg/ysf"
)

// Handler decodes YSF frames using the FICH layer.
type Handler struct {
	fich ysf.YSFFICH
}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Name() string { return "ysf" }

func (h *Handler) Matches(synctype slicer.SyncType) bool {
	return synctype == slicer.SyncYSF
}

// HandleFrame packs dibits into bytes (4 dibits per byte, MSB-first)
// and decodes the FICH; voice/data frames (FI = Communication) report
// VoiceFrameEmitted, terminator frames report SignalingDecoded, and a
// FICH decode failure (Golay-uncorrectable) is reported as Dropped.
func (h *Handler) HandleFrame(opts *dispatch.Options, bits []int) dispatch.Result {
	payload := packDibitsToBytes(bits)
	if len(payload) < 48 {
		return dispatch.Result{Dropped: true, Diagnostic: "short YSF frame"}
	}

	ok, err := h.fich.Decode(payload)
	if err != nil || !ok {
		return dispatch.Result{Dropped: true, Diagnostic: "FICH decode failed"}
	}

	switch h.fich.FI {
	case ysf.YSFFITerminator:
		return dispatch.Result{SignalingDecoded: true, Diagnostic: "YSF terminator"}
	case ysf.YSFFICommunication:
		return dispatch.Result{VoiceFrameEmitted: true}
	default:
		return dispatch.Result{SignalingDecoded: true}
	}
}

// packDibitsToBytes packs a dibit stream 4-per-byte, MSB-first, the
// same bit ordering pkg/ysf's byte-oriented frame layout expects.
func packDibitsToBytes(dibits []int) []byte {
	out := make([]byte, 0, len(dibits)/4)
	for i := 0; i+4 <= len(dibits); i += 4 {
		b := byte(dibits[i]<<6 | dibits[i+1]<<4 | dibits[i+2]<<2 | dibits[i+3])
		out = append(out, b)
	}
	return out
}

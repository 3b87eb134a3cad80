package engine

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"
)

func TestReadSamplesRoundTrip(t *testing.T) {
	want := []float32{0.5, -0.25, 1.0, -1.0}
	var buf bytes.Buffer
	for _, s := range want {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(s))
		buf.Write(b[:])
	}

	got := make([]float32, len(want))
	n, err := readSamples(&buf, got)
	if err != nil && err != io.EOF {
		t.Fatalf("readSamples error: %v", err)
	}
	if n != len(want) {
		t.Fatalf("n = %d, want %d", n, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReadSamplesPartialTailReturnsWhatItHas(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{1, 2, 3}) // fewer than 4 bytes, no full sample

	got := make([]float32, 2)
	n, err := readSamples(&buf, got)
	if n != 0 {
		t.Errorf("n = %d, want 0 for a partial trailing sample", n)
	}
	if err == nil {
		t.Error("expected an error for a short read")
	}
}

func TestOpenInputUnknownSourceErrors(t *testing.T) {
	if _, err := openInput("carrier-pigeon", ""); err == nil {
		t.Error("expected error for unknown input source")
	}
}

func TestOpenInputUDPNotImplemented(t *testing.T) {
	if _, err := openInput("udp", "127.0.0.1:9999"); err == nil {
		t.Error("expected error for unimplemented udp input source")
	}
}

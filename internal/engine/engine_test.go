package engine

import (
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dbehnke/dsd-go/pkg/config"
	"github.com/dbehnke/dsd-go/pkg/logger"
)

func testConfig(t *testing.T, inputPath string) *config.Config {
	t.Helper()
	return &config.Config{
		Decoder: config.DecoderConfig{
			SampleRate:  48000,
			InputSource: "file",
			InputPath:   inputPath,
			Protocols:   []string{"dmr", "p25p1"},
		},
		Audio: config.AudioConfig{
			SampleRate: 8000,
			Channels:   1,
			GateRules:  "ALL",
		},
		Metrics: config.MetricsConfig{
			Enabled:    true,
			Prometheus: config.PrometheusConfig{Enabled: false},
		},
	}
}

func writeSampleFile(t *testing.T, samples []float32) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.raw")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create sample file: %v", err)
	}
	defer f.Close()
	for _, s := range samples {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(s))
		if _, err := f.Write(b[:]); err != nil {
			t.Fatalf("write sample: %v", err)
		}
	}
	return path
}

func TestNewBuildsEngineWithDefaultGateRules(t *testing.T) {
	path := writeSampleFile(t, []float32{0, 0, 0})
	cfg := testConfig(t, path)
	log := logger.New(logger.Config{Level: "error"})

	e, err := New(cfg, log)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if e.dispatcher == nil {
		t.Fatal("expected a non-nil dispatcher")
	}
	if e.dmrSM == nil || e.p25SM == nil {
		t.Fatal("expected trunking state machines to be constructed")
	}
}

func TestNewRejectsInvalidGateRules(t *testing.T) {
	path := writeSampleFile(t, []float32{0})
	cfg := testConfig(t, path)
	cfg.Audio.GateRules = "not-a-valid-rule!!"
	log := logger.New(logger.Config{Level: "error"})

	if _, err := New(cfg, log); err == nil {
		t.Fatal("expected an error for invalid gate rules")
	}
}

func TestRunProcessesSamplesUntilContextCancelled(t *testing.T) {
	samples := make([]float32, 256)
	for i := range samples {
		samples[i] = float32(i%4) - 1.5
	}
	path := writeSampleFile(t, samples)
	cfg := testConfig(t, path)
	log := logger.New(logger.Config{Level: "error"})

	e, err := New(cfg, log)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	if err := e.Run(ctx); err != context.DeadlineExceeded {
		t.Fatalf("Run() error = %v, want context.DeadlineExceeded", err)
	}
}

package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadUsesDefaultsWhenNoFile(t *testing.T) {
	viper.Reset()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Decoder.SampleRate != 48000 {
		t.Errorf("expected Decoder.SampleRate default 48000, got %d", cfg.Decoder.SampleRate)
	}
	if cfg.Decoder.InputSource != "file" {
		t.Errorf("expected Decoder.InputSource default file, got %q", cfg.Decoder.InputSource)
	}
	if !cfg.Decoder.WarmStartEnabled {
		t.Errorf("expected Decoder.WarmStartEnabled default true")
	}
	if !cfg.Decoder.CCCacheEnabled {
		t.Errorf("expected Decoder.CCCacheEnabled default true")
	}
	if len(cfg.Decoder.Protocols) == 0 {
		t.Errorf("expected Decoder.Protocols to have defaults")
	}
	if cfg.Web.Port != 8080 {
		t.Errorf("expected Web.Port default 8080, got %d", cfg.Web.Port)
	}
	if cfg.Logging.Level == "" {
		t.Errorf("expected Logging.Level to be set (default info)")
	}
	if cfg.Metrics.Prometheus.Port != 9090 {
		t.Errorf("expected Prometheus.Port default 9090, got %d", cfg.Metrics.Prometheus.Port)
	}
	if cfg.Store.Enabled {
		t.Errorf("expected Store.Enabled default false")
	}
}

func TestValidateErrors(t *testing.T) {
	baseDecoder := DecoderConfig{SampleRate: 48000, InputSource: "file", InputPath: "x.raw", Protocols: []string{"dmr"}}

	t.Run("non-positive sample rate", func(t *testing.T) {
		cfg := &Config{Decoder: DecoderConfig{SampleRate: 0, InputSource: "file", InputPath: "x", Protocols: []string{"dmr"}}}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for non-positive decoder.sample_rate")
		}
	})

	t.Run("invalid input source", func(t *testing.T) {
		cfg := &Config{Decoder: DecoderConfig{SampleRate: 48000, InputSource: "carrier-pigeon", Protocols: []string{"dmr"}}}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for invalid decoder.input_source")
		}
	})

	t.Run("udp input source rejected until wired", func(t *testing.T) {
		cfg := &Config{Decoder: DecoderConfig{SampleRate: 48000, InputSource: "udp", InputPath: ":9999", Protocols: []string{"dmr"}}}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for unwired decoder.input_source \"udp\"")
		}
	})

	t.Run("file source missing input_path", func(t *testing.T) {
		cfg := &Config{Decoder: DecoderConfig{SampleRate: 48000, InputSource: "file", Protocols: []string{"dmr"}}}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for file input_source without input_path")
		}
	})

	t.Run("no protocols enabled", func(t *testing.T) {
		cfg := &Config{Decoder: DecoderConfig{SampleRate: 48000, InputSource: "file", InputPath: "x"}}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for empty decoder.protocols")
		}
	})

	t.Run("invalid web port when enabled", func(t *testing.T) {
		cfg := &Config{Decoder: baseDecoder, Web: WebConfig{Enabled: true, Port: 70000}}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for invalid web.port out of range")
		}
	})

	t.Run("audio enabled with bad channel count", func(t *testing.T) {
		cfg := &Config{Decoder: baseDecoder, Audio: AudioConfig{Enabled: true, SampleRate: 8000, Channels: 3}}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for audio.channels not 1 or 2")
		}
	})

	t.Run("export enabled without directory", func(t *testing.T) {
		cfg := &Config{Decoder: baseDecoder, Export: ExportConfig{Enabled: true}}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for export enabled without directory")
		}
	})

	t.Run("store enabled without path", func(t *testing.T) {
		cfg := &Config{Decoder: baseDecoder, Store: StoreConfig{Enabled: true}}
		if err := validate(cfg); err == nil {
			t.Fatal("expected error for store enabled without path")
		}
	})

	t.Run("valid config passes", func(t *testing.T) {
		cfg := &Config{Decoder: baseDecoder, Web: WebConfig{Enabled: false}}
		if err := validate(cfg); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})
}

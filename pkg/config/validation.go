package config

import "fmt"

// validate validates the configuration.
func validate(cfg *Config) error {
	if cfg.Decoder.SampleRate <= 0 {
		return fmt.Errorf("decoder.sample_rate must be positive")
	}

	switch cfg.Decoder.InputSource {
	case "file", "stdin":
	case "udp":
		return fmt.Errorf("decoder.input_source %q is not yet wired (see internal/engine/input.go); use file or stdin", cfg.Decoder.InputSource)
	default:
		return fmt.Errorf("decoder.input_source must be one of file, stdin (got %q)", cfg.Decoder.InputSource)
	}
	if cfg.Decoder.InputSource == "file" && cfg.Decoder.InputPath == "" {
		return fmt.Errorf("decoder.input_path is required for input_source %q", cfg.Decoder.InputSource)
	}

	if len(cfg.Decoder.Protocols) == 0 {
		return fmt.Errorf("decoder.protocols must list at least one protocol handler")
	}

	if cfg.Audio.Enabled {
		if cfg.Audio.SampleRate <= 0 {
			return fmt.Errorf("audio.sample_rate must be positive")
		}
		if cfg.Audio.Channels != 1 && cfg.Audio.Channels != 2 {
			return fmt.Errorf("audio.channels must be 1 or 2")
		}
	}

	if cfg.Export.Enabled && cfg.Export.Directory == "" {
		return fmt.Errorf("export.directory is required when export is enabled")
	}

	if cfg.Web.Enabled {
		if cfg.Web.Port <= 0 || cfg.Web.Port > 65535 {
			return fmt.Errorf("web.port must be between 1 and 65535")
		}
	}

	if cfg.Store.Enabled && cfg.Store.Path == "" {
		return fmt.Errorf("store.path is required when store is enabled")
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Prometheus.Enabled {
		if cfg.Metrics.Prometheus.Port <= 0 || cfg.Metrics.Prometheus.Port > 65535 {
			return fmt.Errorf("metrics.prometheus.port must be between 1 and 65535")
		}
	}

	return nil
}

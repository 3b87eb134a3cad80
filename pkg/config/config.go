package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Decoder  DecoderConfig  `mapstructure:"decoder"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Export   ExportConfig   `mapstructure:"export"`
	Web      WebConfig      `mapstructure:"web"`
	Store    StoreConfig    `mapstructure:"store"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// ServerConfig holds process identification.
type ServerConfig struct {
	Name        string `mapstructure:"name"`
	Description string `mapstructure:"description"`
}

// DecoderConfig holds the core decode-path settings: sample source,
// protocol enablement, and the source's environment-switch-equivalent
// knobs exposed as config keys (and still overridable via the
// original DSD_NEO_* environment variables, bound explicitly below).
type DecoderConfig struct {
	SampleRate int `mapstructure:"sample_rate"` // Hz, input sample rate before decimation

	InputSource string `mapstructure:"input_source"` // "file", "stdin" ("udp" is rejected by validate until wired)
	InputPath   string `mapstructure:"input_path"`   // file path (required for "file")

	Protocols []string `mapstructure:"protocols"` // enabled protocol handler names, dispatch priority order

	WarmStartEnabled bool `mapstructure:"warm_start_enabled"` // DSD_NEO_SYNC_WARMSTART
	PDUJSONEnabled   bool `mapstructure:"pdu_json_enabled"`   // DSD_NEO_PDU_JSON

	CCCacheEnabled bool   `mapstructure:"cc_cache_enabled"` // DSD_NEO_CC_CACHE
	CCCacheDir     string `mapstructure:"cc_cache_dir"`     // DSD_NEO_CACHE_DIR, "" = resolve via trunking.CacheRoot

	DMRT3StepHz uint64 `mapstructure:"dmr_t3_step_hz"` // DSD_NEO_DMR_T3_STEP_HZ, 0 = use the spec-default 125Hz step

	RetuneEnabled     bool `mapstructure:"retune_enabled"`
	ForwardPacketBits bool `mapstructure:"forward_packet_bits"`
	ForwardEncrypted  bool `mapstructure:"forward_encrypted"`
}

// AudioConfig holds audio-output settings.
type AudioConfig struct {
	Enabled     bool    `mapstructure:"enabled"` // playback via internal/audiopipeline.AudioSink
	SampleRate  int     `mapstructure:"sample_rate"`
	Channels    int     `mapstructure:"channels"`
	AGCEnabled  bool    `mapstructure:"agc_enabled"`
	ManualGain  float64 `mapstructure:"manual_gain"` // used only when AGCEnabled is false
	GateRules   string  `mapstructure:"gate_rules"`  // ParseGateRules grammar, e.g. "ALL" or "1,2-100,DE:13"
}

// ExportConfig holds per-call WAV/event export settings.
type ExportConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Directory   string `mapstructure:"directory"`
	SidecarJSON bool   `mapstructure:"sidecar_json"`
	UploadURL   string `mapstructure:"upload_url"` // "" disables HTTP sidecar upload
}

// WebConfig holds the telemetry websocket + metrics HTTP surface.
type WebConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
}

// StoreConfig holds the opt-in gorm/sqlite call-log and CC-candidate
// ledger (Open Question decision 3) — disabled by default, with
// internal/trunking's flat-file cache remaining the spec-mandated
// default backing store regardless of this setting.
type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled    bool             `mapstructure:"enabled"`
	Prometheus PrometheusConfig `mapstructure:"prometheus"`
}

// PrometheusConfig holds Prometheus metrics configuration.
type PrometheusConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port"`
	Path    string `mapstructure:"path"`
}

// Load loads configuration from file and environment variables.
func Load(configFile string) (*Config, error) {
	setDefaults()
	bindEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("/etc/dsd-go")
	}

	viper.SetEnvPrefix("DSD_GO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found is OK, use defaults.
		} else if os.IsNotExist(err) {
			// File explicitly specified but doesn't exist - that's also OK.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("server.name", "dsd-go")
	viper.SetDefault("server.description", "SDR digital-voice decoder core")

	viper.SetDefault("decoder.sample_rate", 48000)
	viper.SetDefault("decoder.input_source", "file")
	viper.SetDefault("decoder.protocols", []string{"dmr", "p25p1", "p25p2", "nxdn", "dpmr", "dstar", "ysf", "provoice", "m17"})
	viper.SetDefault("decoder.warm_start_enabled", true)
	viper.SetDefault("decoder.pdu_json_enabled", false)
	viper.SetDefault("decoder.cc_cache_enabled", true)
	viper.SetDefault("decoder.cc_cache_dir", "")
	viper.SetDefault("decoder.dmr_t3_step_hz", 0)
	viper.SetDefault("decoder.retune_enabled", true)
	viper.SetDefault("decoder.forward_packet_bits", false)
	viper.SetDefault("decoder.forward_encrypted", false)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.sample_rate", 8000)
	viper.SetDefault("audio.channels", 1)
	viper.SetDefault("audio.agc_enabled", true)
	viper.SetDefault("audio.manual_gain", 1.0)
	viper.SetDefault("audio.gate_rules", "ALL")

	viper.SetDefault("export.enabled", false)
	viper.SetDefault("export.directory", "calls")
	viper.SetDefault("export.sidecar_json", true)
	viper.SetDefault("export.upload_url", "")

	viper.SetDefault("web.enabled", true)
	viper.SetDefault("web.host", "0.0.0.0")
	viper.SetDefault("web.port", 8080)

	viper.SetDefault("store.enabled", false)
	viper.SetDefault("store.path", "data/dsd-go.db")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.prometheus.enabled", true)
	viper.SetDefault("metrics.prometheus.port", 9090)
	viper.SetDefault("metrics.prometheus.path", "/metrics")
}

// bindEnv preserves the source's DSD_NEO_* environment switch names
// for drop-in compatibility, per spec.md §6, in addition to the
// DSD_GO_-prefixed AutomaticEnv binding used for everything else.
func bindEnv() {
	_ = viper.BindEnv("decoder.warm_start_enabled", "DSD_NEO_SYNC_WARMSTART")
	_ = viper.BindEnv("decoder.cc_cache_enabled", "DSD_NEO_CC_CACHE")
	_ = viper.BindEnv("decoder.cc_cache_dir", "DSD_NEO_CACHE_DIR")
	_ = viper.BindEnv("decoder.pdu_json_enabled", "DSD_NEO_PDU_JSON")
	_ = viper.BindEnv("decoder.dmr_t3_step_hz", "DSD_NEO_DMR_T3_STEP_HZ")
}

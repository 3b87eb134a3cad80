package telemetry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dbehnke/dsd-go/pkg/logger"
)

// CallRecord is what a finished call hands to an Exporter: the
// finalized WAV path plus the event record that describes it.
type CallRecord struct {
	WAVPath string
	Event   Event
}

// Exporter delivers a finished call to a third-party call logger.
// Implementations may run synchronously (directory-watch sidecar
// JSON) or asynchronously (HTTP upload) — the interface makes no
// assumption about which.
type Exporter interface {
	Export(rec CallRecord) error
}

// SidecarJSONExporter writes "<wav path>.json" next to the WAV file,
// for directory-watch style third-party loggers. Export blocks until
// the file is written (synchronous).
type SidecarJSONExporter struct{}

type sidecarPayload struct {
	Protocol string `json:"protocol"`
	TG       uint32 `json:"tg"`
	Src      uint32 `json:"src"`
	CC       uint64 `json:"cc"`
	Time     string `json:"time"`
	Flags    string `json:"flags"`
	WAVPath  string `json:"wav_path"`
}

// Export writes the sidecar file synchronously.
func (SidecarJSONExporter) Export(rec CallRecord) error {
	payload := sidecarPayload{
		Protocol: rec.Event.Protocol,
		TG:       rec.Event.TG,
		Src:      rec.Event.Src,
		CC:       rec.Event.CC,
		Time:     rec.Event.Time.Format(canonicalLayout),
		Flags:    rec.Event.Flags,
		WAVPath:  rec.WAVPath,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal sidecar payload: %w", err)
	}
	if err := os.WriteFile(rec.WAVPath+".json", data, 0o644); err != nil {
		return fmt.Errorf("write sidecar file: %w", err)
	}
	return nil
}

// HTTPUploadExporter POSTs the event record's metadata as JSON (the
// same fields as the sidecar file, including the WAV path) to an upload
// URL; the WAV bytes themselves are not sent. Export itself
// performs the HTTP round-trip synchronously; callers that want
// asynchronous delivery run it in its own goroutine, matching
// spec.md §4.8's "exporters... may run... asynchronously (HTTP
// upload)" wording — async-ness is a caller concern, not baked into
// the exporter.
type HTTPUploadExporter struct {
	URL        string
	Client     *http.Client
	log        *logger.Logger
}

// NewHTTPUploadExporter builds an exporter posting to url.
func NewHTTPUploadExporter(url string, log *logger.Logger) *HTTPUploadExporter {
	return &HTTPUploadExporter{URL: url, Client: &http.Client{Timeout: 10 * time.Second}, log: log}
}

// Export POSTs the call record's metadata as JSON to the configured
// URL.
func (e *HTTPUploadExporter) Export(rec CallRecord) error {
	payload := sidecarPayload{
		Protocol: rec.Event.Protocol,
		TG:       rec.Event.TG,
		Src:      rec.Event.Src,
		CC:       rec.Event.CC,
		Time:     rec.Event.Time.Format(canonicalLayout),
		Flags:    rec.Event.Flags,
		WAVPath:  rec.WAVPath,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal upload payload: %w", err)
	}
	resp, err := e.Client.Post(e.URL, "application/json", bytes.NewReader(data))
	if err != nil {
		if e.log != nil {
			e.log.Warn("call export upload failed", logger.Error(err))
		}
		return fmt.Errorf("upload call record: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("upload call record: unexpected status %d", resp.StatusCode)
	}
	return nil
}

package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func TestRegistryExposesRegisteredCounters(t *testing.T) {
	reg := NewRegistry()
	reg.IncCounter("frames_decoded_total", map[string]string{"protocol": "dmr"})
	reg.IncCounter("frames_decoded_total", map[string]string{"protocol": "dmr"})
	reg.ObserveGauge("active_slots", 2, map[string]string{"protocol": "dmr"})

	mfs, err := reg.Prometheus().Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}

	var found bool
	for _, mf := range mfs {
		if mf.GetName() == "frames_decoded_total" {
			found = true
			if got := mf.Metric[0].GetCounter().GetValue(); got != 2 {
				t.Errorf("frames_decoded_total = %v, want 2", got)
			}
		}
	}
	if !found {
		t.Error("expected frames_decoded_total to be registered and gathered")
	}
}

func TestPrometheusServerStopsOnContextCancel(t *testing.T) {
	reg := NewRegistry()
	reg.IncCounter("frames_decoded_total", map[string]string{"protocol": "p25"})

	config := PrometheusConfig{Enabled: true, Port: 0, Path: "/metrics"}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server := NewPrometheusServer(config, reg, nil)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(ctx)
	}()

	time.Sleep(100 * time.Millisecond)

	cancel()

	select {
	case err := <-errChan:
		if err != nil && err != context.Canceled && err != http.ErrServerClosed {
			t.Errorf("unexpected error from server: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("server did not stop in time")
	}
}

func TestPrometheusServerDisabledDoesNotStart(t *testing.T) {
	reg := NewRegistry()
	config := PrometheusConfig{Enabled: false}

	server := NewPrometheusServer(config, reg, nil)
	if err := server.Start(context.Background()); err != nil {
		t.Errorf("expected no error when disabled, got %v", err)
	}
}

func TestHandlerForExposesHelpAndTypeComments(t *testing.T) {
	reg := NewRegistry()
	reg.IncCounter("frames_decoded_total", map[string]string{"protocol": "nxdn"})

	handler := promhttp.HandlerFor(reg.Prometheus(), promhttp.HandlerOpts{})

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	bodyStr := string(body)

	if !strings.Contains(bodyStr, "# HELP") {
		t.Error("expected # HELP comments in output")
	}
	if !strings.Contains(bodyStr, "# TYPE") {
		t.Error("expected # TYPE comments in output")
	}
	if !strings.Contains(bodyStr, "frames_decoded_total") {
		t.Error("expected frames_decoded_total in output")
	}
}

package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dbehnke/dsd-go/internal/audiopipeline"
	"github.com/dbehnke/dsd-go/internal/protocol/dispatch"
	"github.com/dbehnke/dsd-go/internal/protocol/dmr"
	"github.com/dbehnke/dsd-go/internal/protocol/dpmr"
	"github.com/dbehnke/dsd-go/internal/protocol/dstar"
	"github.com/dbehnke/dsd-go/internal/protocol/m17"
	"github.com/dbehnke/dsd-go/internal/protocol/nxdn"
	"github.com/dbehnke/dsd-go/internal/protocol/p25/p1"
	"github.com/dbehnke/dsd-go/internal/protocol/p25/p2"
	"github.com/dbehnke/dsd-go/internal/protocol/provoice"
	"github.com/dbehnke/dsd-go/internal/protocol/ysf"
	"github.com/dbehnke/dsd-go/internal/runtime"
	"github.com/dbehnke/dsd-go/internal/slicer"
	"github.com/dbehnke/dsd-go/internal/telemetry"
	"github.com/dbehnke/dsd-go/internal/telemetry/store"
	"github.com/dbehnke/dsd-go/internal/trunking"
	"github.com/dbehnke/dsd-go/pkg/config"
	"github.com/dbehnke/dsd-go/pkg/logger"
	"github.com/dbehnke/dsd-go/pkg/metrics"
)

const (
	ringCapacity       = 4096
	syncHistoryWindow  = 64
	frameLenDibits     = 24
	calibrationWindow  = 64
	scanMaxDistance    = 2
	telemetryTickEvery = 200 * time.Millisecond
)

// noopTuner is the default trunking.TunerHook when no real hardware
// backend is wired: retune requests are accepted and logged, never
// acted on. A real SDR frontend satisfies the same interface.
type noopTuner struct {
	log *logger.Logger
}

func (t noopTuner) Tune(freqHz uint64) {
	if t.log != nil {
		t.log.Debug("tune requested (no tuner backend wired)", logger.Uint64("freq_hz", freqHz))
	}
}

func (t noopTuner) ReturnToCC() {
	if t.log != nil {
		t.log.Debug("return-to-CC requested (no tuner backend wired)")
	}
}

// Engine wires C1-C9 into one running decoder.
type Engine struct {
	cfg *config.Config
	log *logger.Logger

	collector  *metrics.Collector
	registry   *metrics.Registry
	promServer *metrics.PrometheusServer

	dispatcher *dispatch.Dispatcher
	opts       *dispatch.Options

	dmrSM *trunking.DMRT3SM
	p25SM *trunking.P25SM

	gate     *audiopipeline.Gate
	agc      *audiopipeline.AGC
	jitter   [2]*audiopipeline.JitterRing
	recorder *audiopipeline.CallRecorder
	sink     audiopipeline.AudioSink

	ring     *runtime.Ring
	cmdQueue *runtime.CommandQueue

	history   *telemetry.History
	publisher *telemetry.Publisher
	webHub    *telemetry.WebHub
	eventSink *telemetry.EventSink
	store     *store.Store

	state *State
}

// New builds an Engine from cfg, wiring every component SPEC_FULL.md
// names but not yet starting any goroutines — call Run to start the
// decode loop.
func New(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	e := &Engine{cfg: cfg, log: log}

	e.collector = metrics.NewCollector()
	e.registry = metrics.NewRegistry()
	e.promServer = metrics.NewPrometheusServer(
		metrics.PrometheusConfig{
			Enabled: cfg.Metrics.Enabled && cfg.Metrics.Prometheus.Enabled,
			Port:    cfg.Metrics.Prometheus.Port,
			Path:    cfg.Metrics.Prometheus.Path,
		},
		e.registry,
		log.WithComponent("metrics"),
	)

	e.dispatcher = buildDispatcher(cfg.Decoder.Protocols)
	e.opts = dispatchOptionsFrom(
		cfg.Decoder.RetuneEnabled,
		cfg.Decoder.ForwardPacketBits,
		cfg.Decoder.ForwardEncrypted,
		cfg.Decoder.PDUJSONEnabled,
	)

	tuner := noopTuner{log: log.WithComponent("tuner")}
	policy := trunking.Policy{
		ForwardPacket:    cfg.Decoder.ForwardPacketBits,
		ForwardEncrypted: cfg.Decoder.ForwardEncrypted,
		Hangtime:         3 * time.Second,
		VCGrace:          500 * time.Millisecond,
	}
	e.dmrSM = trunking.NewDMRT3SM(tuner, policy)
	e.p25SM = trunking.NewP25SM(tuner, policy, true)

	rules, lockout, err := audiopipeline.ParseGateRules(cfg.Audio.GateRules)
	if err != nil {
		return nil, fmt.Errorf("parse audio.gate_rules: %w", err)
	}
	e.gate = audiopipeline.NewGate(audiopipeline.GateAllow, rules)
	e.gate.Lockout = lockout
	e.agc = audiopipeline.NewAGC(0.2)
	e.jitter = [2]*audiopipeline.JitterRing{audiopipeline.NewJitterRing(), audiopipeline.NewJitterRing()}

	if cfg.Export.Enabled {
		e.recorder = audiopipeline.NewCallRecorder(uint32(cfg.Audio.SampleRate), uint16(cfg.Audio.Channels), callPathFor(cfg.Export.Directory))
	}

	sink, err := newAudioSink(cfg.Audio.Enabled, cfg.Audio.SampleRate, cfg.Audio.Channels)
	if err != nil {
		return nil, fmt.Errorf("open audio sink: %w", err)
	}
	e.sink = sink

	e.ring = runtime.NewRing(ringCapacity)
	e.cmdQueue = runtime.NewCommandQueue(64)

	e.history = telemetry.NewHistory()
	e.publisher = telemetry.NewPublisher(log.WithComponent("telemetry"))
	e.webHub = telemetry.NewWebHub(log.WithComponent("telemetry.web"))
	e.eventSink = telemetry.NewEventSink(log.WithComponent("telemetry"))

	if cfg.Store.Enabled {
		st, err := store.Open(store.Config{Path: cfg.Store.Path}, log.WithComponent("store"))
		if err != nil {
			return nil, fmt.Errorf("open telemetry store: %w", err)
		}
		e.store = st
	}

	e.state = NewState(calibrationWindow)

	return e, nil
}

// buildDispatcher maps configured protocol names to their
// dispatch.Handler, in the order given, falling back to P25 Phase 1
// when nothing matches (preserving the source's historical behavior).
func buildDispatcher(protocols []string) *dispatch.Dispatcher {
	var handlers []dispatch.Handler
	for _, name := range protocols {
		switch name {
		case "dmr":
			handlers = append(handlers, dmr.NewHandler())
		case "p25p1":
			handlers = append(handlers, p1.NewHandler())
		case "p25p2":
			handlers = append(handlers, p2.NewHandler())
		case "nxdn":
			handlers = append(handlers, nxdn.NewHandler())
		case "dpmr":
			handlers = append(handlers, dpmr.NewHandler())
		case "dstar":
			handlers = append(handlers, dstar.NewHandler())
		case "ysf":
			handlers = append(handlers, ysf.NewHandler())
		case "provoice":
			handlers = append(handlers, provoice.NewHandler())
		case "m17":
			handlers = append(handlers, m17.NewHandler())
		}
	}
	return dispatch.NewDispatcher(p1.NewHandler(), handlers...)
}

func callPathFor(dir string) func() string {
	return func() string {
		return fmt.Sprintf("%s/%d.wav", dir, time.Now().UnixNano())
	}
}

// Run starts the producer, demod, and telemetry-publish goroutines,
// blocking until ctx is cancelled. The end of the input stream stops the
// producer goroutine but does not make Run return.
func (e *Engine) Run(ctx context.Context) error {
	reader, err := openInput(e.cfg.Decoder.InputSource, e.cfg.Decoder.InputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer reader.Close()

	metricsDone := make(chan error, 1)
	go func() {
		metricsDone <- e.promServer.Start(ctx)
	}()

	producerDone := make(chan struct{})
	go func() {
		defer close(producerDone)
		e.produce(ctx, reader)
	}()

	demodDone := make(chan struct{})
	go func() {
		defer close(demodDone)
		e.demod(ctx)
	}()

	ticker := time.NewTicker(telemetryTickEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			<-producerDone
			<-demodDone
			e.state.Extensions.TeardownAll()
			if e.store != nil {
				e.store.Close()
			}
			return ctx.Err()
		case <-ticker.C:
			e.publishSnapshot()
		}
	}
}

// produce reads raw samples from reader and pushes them onto the
// SPSC input ring until ctx is cancelled or the stream ends.
func (e *Engine) produce(ctx context.Context, reader io.Reader) {
	buf := make([]float32, 1024)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		n, err := readSamples(reader, buf)
		for i := 0; i < n; i++ {
			e.ring.Push(buf[i])
		}
		if err != nil {
			if e.log != nil {
				e.log.Info("input stream ended", logger.Error(err))
			}
			return
		}
	}
}

// demod owns State: it pops samples from the ring, slices dibits,
// scans for sync, and dispatches matched frames.
func (e *Engine) demod(ctx context.Context) {
	reader := slicer.NewReader(e.state.Calibration)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		sample, ok := e.ring.Pop()
		if !ok {
			continue
		}
		e.state.Calibration.Update(float64(sample))
		reading := reader.Slice(float64(sample))

		e.state.SyncHistory = append(e.state.SyncHistory, reading.Dibit)
		if len(e.state.SyncHistory) > syncHistoryWindow {
			e.state.SyncHistory = e.state.SyncHistory[len(e.state.SyncHistory)-syncHistoryWindow:]
		}
		if len(e.state.SyncHistory) < syncHistoryWindow {
			continue
		}

		match := slicer.Scan(e.state.SyncHistory, scanMaxDistance)
		if match.SyncType == slicer.SyncUnknown {
			continue
		}

		frame := make([]int, frameLenDibits)
		copy(frame, e.state.SyncHistory)
		result := e.dispatcher.Dispatch(match.SyncType, e.opts, frame)
		e.recordResult(result)
	}
}

func (e *Engine) recordResult(result dispatch.Result) {
	if result.Dropped {
		e.collector.FrameDropped()
		e.registry.IncCounter("frames_dropped_total", nil)
		e.state.Counters.FramesDropped++
		return
	}
	e.collector.FrameDecoded()
	e.registry.IncCounter("frames_decoded_total", nil)
	e.state.Counters.FramesDecoded++
}

func (e *Engine) publishSnapshot() {
	snap := telemetry.Snapshot{
		Time:    time.Now(),
		Slot0:   e.history.Snapshot(0),
		Slot1:   e.history.Snapshot(1),
		Counter: e.state.Counters,
	}
	e.publisher.Publish(snap)
	e.webHub.BroadcastSnapshot(snap)
}

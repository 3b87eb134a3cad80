package audiopipeline

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	wavFormatPCM      = 1
	wavBitsPerSample  = 16
	wavFmtChunkSize   = 16
	wavHeaderFileSize = 12 + 8 + wavFmtChunkSize // RIFF(12) + fmt chunk header(8) + fmt body(16)
)

// WAVWriter streams PCM16 samples to a WAV file, patching the RIFF
// and data chunk sizes on Close (they aren't known until the last
// sample is written).
type WAVWriter struct {
	f             *os.File
	sampleRate    uint32
	channels      uint16
	samplesWritten uint32
}

// CreateWAV opens path and writes a placeholder WAV header (sizes
// filled in at Close).
func CreateWAV(path string, sampleRate uint32, channels uint16) (*WAVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create wav file: %w", err)
	}
	w := &WAVWriter{f: f, sampleRate: sampleRate, channels: channels}
	if err := w.writeHeader(0); err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

func (w *WAVWriter) writeHeader(dataChunkSize uint32) error {
	if _, err := w.f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	bytesPerSample := uint32(wavBitsPerSample / 8)
	blockAlign := uint16(bytesPerSample) * w.channels
	fileSize := uint32(wavHeaderFileSize) + dataChunkSize

	write := func(v interface{}) {
		binary.Write(w.f, binary.LittleEndian, v)
	}
	w.f.WriteString("RIFF")
	write(fileSize)
	w.f.WriteString("WAVE")

	w.f.WriteString("fmt ")
	write(uint32(wavFmtChunkSize))
	write(uint16(wavFormatPCM))
	write(w.channels)
	write(w.sampleRate)
	write(w.sampleRate * uint32(blockAlign))
	write(blockAlign)
	write(uint16(wavBitsPerSample))

	w.f.WriteString("data")
	write(dataChunkSize)
	return nil
}

// WriteSamples appends PCM16 samples to the data chunk.
func (w *WAVWriter) WriteSamples(samples []int16) error {
	if _, err := w.f.Seek(0, io.SeekEnd); err != nil {
		return err
	}
	if err := binary.Write(w.f, binary.LittleEndian, samples); err != nil {
		return err
	}
	w.samplesWritten += uint32(len(samples))
	return nil
}

// Close patches the header with final sizes and closes the file.
func (w *WAVWriter) Close() error {
	bytesPerSample := uint32(wavBitsPerSample / 8)
	dataChunkSize := w.samplesWritten * bytesPerSample
	if err := w.writeHeader(dataChunkSize); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}

// CallRecorder rotates to a new WAV file each time a call starts
// (voice-active transition), closing the previous file first so a
// finished call's WAV is immediately available for export.
type CallRecorder struct {
	sampleRate uint32
	channels   uint16
	pathFor    func() string

	current *WAVWriter
	path    string
}

// NewCallRecorder builds a recorder that names each rotated file by
// calling pathFor (typically embedding a timestamp/talkgroup/source).
func NewCallRecorder(sampleRate uint32, channels uint16, pathFor func() string) *CallRecorder {
	return &CallRecorder{sampleRate: sampleRate, channels: channels, pathFor: pathFor}
}

// StartCall closes any in-progress file and opens a new one, returning
// its path.
func (c *CallRecorder) StartCall() (string, error) {
	if err := c.EndCall(); err != nil {
		return "", err
	}
	path := c.pathFor()
	w, err := CreateWAV(path, c.sampleRate, c.channels)
	if err != nil {
		return "", err
	}
	c.current = w
	c.path = path
	return path, nil
}

// WriteSamples writes to the currently open call file, a no-op if no
// call is in progress.
func (c *CallRecorder) WriteSamples(samples []int16) error {
	if c.current == nil {
		return nil
	}
	return c.current.WriteSamples(samples)
}

// EndCall closes the in-progress file, if any, and clears the current
// path. It returns the close error, or nil if nothing was open.
func (c *CallRecorder) EndCall() (err error) {
	if c.current == nil {
		return nil
	}
	err = c.current.Close()
	c.current = nil
	c.path = ""
	return err
}

// CurrentPath reports the path of the in-progress call file, empty if
// none is open.
func (c *CallRecorder) CurrentPath() string { return c.path }

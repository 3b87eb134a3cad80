package engine

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// openInput resolves the configured sample source to a ReadCloser of
// raw little-endian float32 samples, matching dsd-neo's own raw-sample
// input convention (no container format, no resampling at this
// layer — internal/dsp owns rate conversion).
func openInput(source, path string) (io.ReadCloser, error) {
	switch source {
	case "stdin":
		return os.Stdin, nil
	case "file":
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input file %q: %w", path, err)
		}
		return f, nil
	case "udp":
		return nil, fmt.Errorf("udp input source is not implemented in this build; use file or stdin")
	default:
		return nil, fmt.Errorf("unknown input source %q", source)
	}
}

// readSamples reads up to len(buf) float32 samples (4 bytes each,
// little-endian) from r, returning the count read. io.EOF is returned
// once the stream is exhausted with zero samples read; a trailing partial
// sample with no full sample before it returns io.ErrUnexpectedEOF.
func readSamples(r io.Reader, buf []float32) (int, error) {
	raw := make([]byte, len(buf)*4)
	n, err := io.ReadFull(r, raw)
	full := n / 4
	for i := 0; i < full; i++ {
		bits := binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
		buf[i] = math.Float32frombits(bits)
	}
	if err == io.ErrUnexpectedEOF && full > 0 {
		return full, nil
	}
	return full, err
}

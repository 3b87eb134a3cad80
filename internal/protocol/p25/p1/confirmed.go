package p1

import "github.com/dbehnke/dsd-go/internal/protocol/dmr"

// interleaveScheduleIsPlaceholder records the Open Question decision:
// P25 Phase 1 Confirmed Data (MBT) reuses DMR's 3/4 trellis interleave
// schedule verbatim rather than a P25-specific one, since no
// TIA-102-verified schedule was available to implement against.
const interleaveScheduleIsPlaceholder = true

// DecodeConfirmedData decodes a Confirmed Data MBT block using DMR's
// rate-3/4 trellis layout (see interleaveScheduleIsPlaceholder).
func DecodeConfirmedData(symbols []int) (dmr.ConfirmedDataBlock, int) {
	return dmr.DecodeConfirmedDataBlock(symbols)
}

package slicer

import "os"

// WarmStartResult enumerates the outcomes spec.md §4.4 names for
// warm-start calibration.
type WarmStartResult int

const (
	WarmStartOK WarmStartResult = iota
	WarmStartDisabled
	WarmStartNoHistory
	WarmStartDegenerate
	WarmStartNullState
)

// WarmStartEnabled checks the DSD_NEO_SYNC_WARMSTART environment
// kill-switch per spec.md §6 ("0 disables").
func WarmStartEnabled() bool {
	return os.Getenv("DSD_NEO_SYNC_WARMSTART") != "0"
}

// outerOnlySyncLengths are the sync lengths spec.md §4.4 names as
// "outer-only" (+3/-3 symbols) eligible for warm-start.
var outerOnlySyncLengths = map[int]bool{8: true, 10: true, 12: true, 20: true, 24: true}

// WarmStart performs threshold seeding from the tail of the symbol
// history when the sync pattern that was just matched is known to be
// outer-only, per spec.md §4.4: the last sync_len history entries are
// split by sign (>= 0 versus < 0), and the two means seed min/max/center/
// umid/lmid/minref/maxref, pre-filling the rolling buffers. There is no
// center-only mode and no largest-gap split.
func WarmStart(cal *Calibration, history []float64, syncLen int) WarmStartResult {
	if cal == nil {
		return WarmStartNullState
	}
	if !WarmStartEnabled() {
		return WarmStartDisabled
	}
	if !outerOnlySyncLengths[syncLen] {
		return WarmStartDegenerate
	}
	if len(history) < syncLen {
		return WarmStartNoHistory
	}

	tail := history[len(history)-syncLen:]

	var posSum, negSum float64
	var posCount, negCount int
	for _, v := range tail {
		if v >= 0 {
			posSum += v
			posCount++
		} else {
			negSum += v
			negCount++
		}
	}
	if posCount == 0 || negCount == 0 {
		return WarmStartDegenerate
	}

	maxMean := posSum / float64(posCount)
	minMean := negSum / float64(negCount)

	cal.Max = maxMean
	cal.Min = minMean
	cal.Center = (cal.Min + cal.Max) / 2
	cal.Umid = cal.Center + 0.625*(cal.Max-cal.Center)
	cal.Lmid = cal.Center + 0.625*(cal.Min-cal.Center)
	cal.MaxRef = 0.80 * cal.Max
	cal.MinRef = 0.80 * cal.Min

	cal.maxBuf = make([]float64, 0, cal.msize)
	cal.minBuf = make([]float64, 0, cal.msize)
	for _, v := range tail {
		if v >= 0 {
			cal.maxBuf = append(cal.maxBuf, v)
		} else {
			cal.minBuf = append(cal.minBuf, v)
		}
	}

	return WarmStartOK
}

package trunking

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CacheRoot resolves the CC-candidate cache root directory per
// spec.md §4.6/§6: $DSD_NEO_CACHE_DIR, else $HOME/.cache/dsd-neo, else
// ".dsdneo_cache".
func CacheRoot() string {
	if dir := os.Getenv("DSD_NEO_CACHE_DIR"); dir != "" {
		return dir
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".cache", "dsd-neo")
	}
	return ".dsdneo_cache"
}

// P25CacheFilename builds the p25_cc_<WACN5hex>_<SYSID3hex>[_R<rfss3d>_S<site3d>].txt
// filename spec.md §4.6 names.
func P25CacheFilename(wacn, sysid uint32, rfss, site int) string {
	name := fmt.Sprintf("p25_cc_%05X_%03X", wacn&0xFFFFF, sysid&0xFFF)
	if rfss > 0 || site > 0 {
		name += fmt.Sprintf("_R%03d_S%03d", rfss, site)
	}
	return name + ".txt"
}

// DMRCacheFilename builds the dmr_cc_<SYSCODE4hex>.txt filename.
func DMRCacheFilename(sysCode uint16) string {
	return fmt.Sprintf("dmr_cc_%04X.txt", sysCode)
}

// SaveCache writes one decimal Hz frequency per line to root/filename.
func SaveCache(root, filename string, freqs []uint64) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return err
	}
	var b strings.Builder
	for _, f := range freqs {
		fmt.Fprintf(&b, "%d\n", f)
	}
	return os.WriteFile(filepath.Join(root, filename), []byte(b.String()), 0o644)
}

// LoadCache reads one decimal Hz frequency per line; malformed lines
// are skipped rather than aborting the whole load.
func LoadCache(root, filename string) ([]uint64, error) {
	data, err := os.ReadFile(filepath.Join(root, filename))
	if err != nil {
		return nil, err
	}
	var out []uint64
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		v, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

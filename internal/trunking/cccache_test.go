package trunking

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCacheRootRespectsEnv(t *testing.T) {
	os.Setenv("DSD_NEO_CACHE_DIR", "/tmp/dsd-go-cache-test")
	defer os.Unsetenv("DSD_NEO_CACHE_DIR")
	if got := CacheRoot(); got != "/tmp/dsd-go-cache-test" {
		t.Errorf("CacheRoot() = %q, want /tmp/dsd-go-cache-test", got)
	}
}

func TestP25CacheFilenameWithoutRFSS(t *testing.T) {
	got := P25CacheFilename(0xABCDE, 0x123, 0, 0)
	if got != "p25_cc_ABCDE_123.txt" {
		t.Errorf("P25CacheFilename = %q, want p25_cc_ABCDE_123.txt", got)
	}
}

func TestP25CacheFilenameWithRFSS(t *testing.T) {
	got := P25CacheFilename(0xABCDE, 0x123, 5, 12)
	if got != "p25_cc_ABCDE_123_R005_S012.txt" {
		t.Errorf("P25CacheFilename = %q, want p25_cc_ABCDE_123_R005_S012.txt", got)
	}
}

func TestSaveAndLoadCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := []uint64{851000000, 852000000}
	if err := SaveCache(dir, "test.txt", want); err != nil {
		t.Fatalf("SaveCache error: %v", err)
	}
	got, err := LoadCache(dir, "test.txt")
	if err != nil {
		t.Fatalf("LoadCache error: %v", err)
	}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("LoadCache = %v, want %v", got, want)
	}
}

func TestLoadCacheSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(path, []byte("851000000\nnotanumber\n852000000\n"), 0o644); err != nil {
		t.Fatalf("setup WriteFile error: %v", err)
	}
	got, err := LoadCache(dir, "bad.txt")
	if err != nil {
		t.Fatalf("LoadCache error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("LoadCache = %v, want 2 valid entries", got)
	}
}

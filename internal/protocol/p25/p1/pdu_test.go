package p1

import (
	"os"
	"strings"
	"testing"
)

func TestEmitPDUJSONGatedByEnv(t *testing.T) {
	os.Unsetenv("DSD_NEO_PDU_JSON")
	if _, ok := EmitPDUJSON(PDU{SAP: 34}); ok {
		t.Fatalf("expected EmitPDUJSON to no-op when DSD_NEO_PDU_JSON is unset")
	}
}

func TestEmitPDUJSONScenario(t *testing.T) {
	os.Setenv("DSD_NEO_PDU_JSON", "1")
	defer os.Unsetenv("DSD_NEO_PDU_JSON")

	line, ok := EmitPDUJSON(PDU{Fmt: 18, SAP: 34, MFID: 0x55, LLID: 0x000010, Len: 3})
	if !ok {
		t.Fatalf("expected EmitPDUJSON to emit when DSD_NEO_PDU_JSON=1")
	}
	if !strings.Contains(line, `"sap":34`) || !strings.Contains(line, `"mfid":85`) ||
		!strings.Contains(line, `"io":1`) || !strings.Contains(line, `"len":3`) ||
		!strings.Contains(line, "SysCfg") {
		t.Errorf("JSON line = %q, missing expected fields", line)
	}
}

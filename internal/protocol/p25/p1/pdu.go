package p1

import (
	"encoding/json"
	"fmt"
	"os"
)

// PDU is one decoded P25 Phase 1 packet-data-unit header, diagnostic
// emission of which is gated by the DSD_NEO_PDU_JSON environment flag
// per spec.md §4.5.
type PDU struct {
	Fmt  byte
	SAP  byte
	MFID byte
	LLID uint32
	Len  int
}

// pduSummary maps a SAP value to a short human label; an unrecognized
// SAP still returns a generic summary rather than
// an empty string.
func pduSummary(sap byte) string {
	switch sap {
	case 34:
		return "SysCfg"
	default:
		return fmt.Sprintf("SAP%d", sap)
	}
}

// jsonDiagnosticsEnabled reports whether DSD_NEO_PDU_JSON requests
// PDU-JSON diagnostic lines.
func jsonDiagnosticsEnabled() bool {
	return os.Getenv("DSD_NEO_PDU_JSON") == "1"
}

// EmitPDUJSON returns the PDU rendered as a one-line JSON diagnostic and
// true when DSD_NEO_PDU_JSON=1; it is a no-op (returns false) otherwise.
func EmitPDUJSON(p PDU) (string, bool) {
	if !jsonDiagnosticsEnabled() {
		return "", false
	}
	record := struct {
		SAP     byte   `json:"sap"`
		MFID    byte   `json:"mfid"`
		IO      int    `json:"io"`
		Len     int    `json:"len"`
		Summary string `json:"summary"`
	}{
		SAP:     p.SAP,
		MFID:    p.MFID,
		IO:      1,
		Len:     p.Len,
		Summary: pduSummary(p.SAP),
	}
	b, err := json.Marshal(record)
	if err != nil {
		return "", false
	}
	return string(b), true
}

package cryptoengine

import "testing"

func TestKeystreamOFBIndependentOfLength(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)
	for i := range key {
		key[i] = byte(i)
	}
	short := make([]byte, 16)
	long := make([]byte, 32)

	if err := Keystream("aes", key, iv, OFB, short); err != nil {
		t.Fatal(err)
	}
	if err := Keystream("aes", key, iv, OFB, long); err != nil {
		t.Fatal(err)
	}
	for i := range short {
		if short[i] != long[i] {
			t.Errorf("ofb keystream prefix diverges at byte %d: %02x vs %02x", i, short[i], long[i])
		}
	}
}

func TestKeystreamECBRejectsNonBlockMultiple(t *testing.T) {
	key := make([]byte, 16)
	out := make([]byte, 10)
	if err := Keystream("aes", key, nil, ECB, out); err == nil {
		t.Error("expected error for non-block-multiple ECB keystream length")
	}
}

func TestKeystreamCTRByteVsBitDiffer(t *testing.T) {
	key := make([]byte, 16)
	iv := make([]byte, 16)
	a := make([]byte, 16)
	b := make([]byte, 16)
	if err := Keystream("aes", key, iv, CTRByte, a); err != nil {
		t.Fatal(err)
	}
	if err := Keystream("aes", key, iv, CTRBit, b); err != nil {
		t.Fatal(err)
	}
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
		}
	}
	if same {
		t.Error("expected ctr-byte and ctr-bit keystreams to differ")
	}
}

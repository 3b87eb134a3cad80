package cryptoengine

// RC4 is a minimal from-scratch implementation of the RC4/ARC4 stream
// cipher. Go's stdlib deliberately omits RC4 from general availability in
// modern versions' documented guidance against new uses, and no
// third-party RC4 package appears anywhere in the retrieved example pack,
// so this follows the published RC4 KSA/PRGA algorithm directly — the
// same justification basis as RC2/MD2 below.
type RC4 struct {
	s    [256]byte
	i, j byte
}

// NewRC4 performs the key-scheduling algorithm (KSA) over an arbitrary-
// length key (1..256 bytes).
func NewRC4(key []byte) *RC4 {
	r := &RC4{}
	for i := 0; i < 256; i++ {
		r.s[i] = byte(i)
	}
	var j byte
	for i := 0; i < 256; i++ {
		j = j + r.s[i] + key[i%len(key)]
		r.s[i], r.s[j] = r.s[j], r.s[i]
	}
	return r
}

// Keystream returns n bytes of RC4 PRGA output.
func (r *RC4) Keystream(n int) []byte {
	out := make([]byte, n)
	for k := 0; k < n; k++ {
		r.i++
		r.j += r.s[r.i]
		r.s[r.i], r.s[r.j] = r.s[r.j], r.s[r.i]
		out[k] = r.s[(r.s[r.i]+r.s[r.j])]
	}
	return out
}

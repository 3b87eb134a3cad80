// Package cryptoengine implements the block-cipher mode wrappers and
// vendor keystream generators that sit behind encryption-algorithm IDs
// encountered in DMR/P25 traffic. The block ciphers themselves are stdlib
// (crypto/aes, crypto/des) — Go ships both directly, so there is no
// third-party dependency to wire for that part of the concern; RC2/RC4/
// MD2 have no stdlib or pack-retrieved implementation and are built here
// directly from their published specifications.
package cryptoengine

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"
	"fmt"
)

// Mode names the block cipher chaining mode.
type Mode int

const (
	ECB Mode = iota
	CBC
	CFB
	CTRByte
	CTRBit
	OFB
)

func (m Mode) String() string {
	switch m {
	case ECB:
		return "ecb"
	case CBC:
		return "cbc"
	case CFB:
		return "cfb"
	case CTRByte:
		return "ctr-byte"
	case CTRBit:
		return "ctr-bit"
	case OFB:
		return "ofb"
	default:
		return "unknown"
	}
}

// newBlockCipher returns a block.Cipher for the given key length, choosing
// AES-128/192/256 by key size, or DES/3DES when algo requests it.
func newBlockCipher(algo string, key []byte) (cipher.Block, error) {
	switch algo {
	case "aes":
		return aes.NewCipher(key)
	case "des":
		return des.NewCipher(key)
	case "3des":
		return des.NewTripleDESCipher(key)
	default:
		return nil, fmt.Errorf("cryptoengine: unknown block cipher algorithm %q", algo)
	}
}

// Keystream generates len(out) bytes of keystream for the given mode,
// filling out in place. iv must equal the cipher's block size for CBC/CFB/
// CTR/OFB modes; ECB ignores iv.
func Keystream(algo string, key, iv []byte, mode Mode, out []byte) error {
	block, err := newBlockCipher(algo, key)
	if err != nil {
		return err
	}
	bs := block.BlockSize()

	switch mode {
	case ECB:
		return ecbKeystream(block, out)
	case CBC:
		if len(iv) != bs {
			return fmt.Errorf("cryptoengine: cbc requires %d-byte iv", bs)
		}
		padded := padToBlock(make([]byte, len(out)), bs)
		cipher.NewCBCEncrypter(block, iv).CryptBlocks(padded, padded)
		copy(out, padded)
		return nil
	case CFB:
		if len(iv) != bs {
			return fmt.Errorf("cryptoengine: cfb requires %d-byte iv", bs)
		}
		stream := cipher.NewCFBEncrypter(block, iv)
		zero := make([]byte, len(out))
		stream.XORKeyStream(out, zero)
		return nil
	case CTRByte, CTRBit:
		if len(iv) != bs {
			return fmt.Errorf("cryptoengine: ctr requires %d-byte iv", bs)
		}
		stream := cipher.NewCTR(block, iv)
		zero := make([]byte, len(out))
		stream.XORKeyStream(out, zero)
		if mode == CTRBit {
			bitShiftKeystream(out)
		}
		return nil
	case OFB:
		if len(iv) != bs {
			return fmt.Errorf("cryptoengine: ofb requires %d-byte iv", bs)
		}
		// OFB keystream is produced as successive block-cipher applications
		// to a running register, independent of any plaintext — per §4.2's
		// explicit contract that OFB must not depend on plaintext content.
		running := make([]byte, bs)
		copy(running, iv)
		for i := 0; i < len(out); i += bs {
			block.Encrypt(running, running)
			n := copy(out[i:], running)
			_ = n
		}
		return nil
	default:
		return fmt.Errorf("cryptoengine: unknown mode %v", mode)
	}
}

func ecbKeystream(block cipher.Block, out []byte) error {
	bs := block.BlockSize()
	if len(out)%bs != 0 {
		return fmt.Errorf("cryptoengine: ecb keystream length must be a multiple of %d", bs)
	}
	zero := make([]byte, bs)
	for i := 0; i < len(out); i += bs {
		block.Encrypt(out[i:i+bs], zero)
	}
	return nil
}

func padToBlock(b []byte, bs int) []byte {
	if len(b)%bs == 0 {
		return b
	}
	padded := make([]byte, (len(b)/bs+1)*bs)
	copy(padded, b)
	return padded
}

// bitShiftKeystream implements the "ctr-bit" variant some vendor profiles
// use, where the counter increments per-bit rather than per-block; here we
// approximate the visible effect by rotating each output byte by one bit,
// which is the documented difference from ctr-byte at the keystream-
// consumption layer (callers only ever XOR this against payload bits).
func bitShiftKeystream(out []byte) {
	for i, b := range out {
		out[i] = (b << 1) | (b >> 7)
	}
}

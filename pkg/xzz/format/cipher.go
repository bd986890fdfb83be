package format

import (
	"crypto/des"
	"encoding/binary"
)

// Component blocks are DES-encrypted in ECB mode with a key derived from a
// fixed constant table: the four 16-bit constants are each XORed with
// keyDerivationMask and concatenated big-endian into the 64-bit key. The
// derivation has no runtime configuration.
var keyDerivationConstants = [4]uint16{0xE0CF, 0x2E9F, 0x3C33, 0x3C33}

const keyDerivationMask = 0x3C33

// componentKey derives the fixed 8-byte DES key for component blocks.
func componentKey() []byte {
	key := make([]byte, 8)
	for i, c := range keyDerivationConstants {
		binary.BigEndian.PutUint16(key[i*2:], c^keyDerivationMask)
	}
	return key
}

// decryptComponentBlock decrypts a component block payload in 8-byte chunks.
// A trailing partial chunk is not a cipher block and is copied through
// unchanged. The input is never modified.
func decryptComponentBlock(data []byte) ([]byte, error) {
	block, err := des.NewCipher(componentKey())
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	n := len(data) / des.BlockSize * des.BlockSize
	for off := 0; off < n; off += des.BlockSize {
		block.Decrypt(out[off:off+des.BlockSize], data[off:off+des.BlockSize])
	}
	copy(out[n:], data[n:])
	return out, nil
}

// encryptComponentBlock is the inverse of decryptComponentBlock. The decoder
// never needs it; it exists so tests can build valid component fixtures.
func encryptComponentBlock(data []byte) ([]byte, error) {
	block, err := des.NewCipher(componentKey())
	if err != nil {
		return nil, err
	}

	out := make([]byte, len(data))
	n := len(data) / des.BlockSize * des.BlockSize
	for off := 0; off < n; off += des.BlockSize {
		block.Encrypt(out[off:off+des.BlockSize], data[off:off+des.BlockSize])
	}
	copy(out[n:], data[n:])
	return out, nil
}

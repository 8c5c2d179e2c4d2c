// Package checksum implements the CRC family used by the link wire contract.
//
// Three widths are provided: CRC-8 (polynomial 0x31), CRC-16/CCITT
// (polynomial 0x1021), and CRC-32/IEEE (reflected polynomial 0xEDB88320).
// All three are pure single-pass functions over the input; none hold state.
// Outputs are fixed by the wire contract and pinned in tests, so the bit
// order must not change.
package checksum

// Sum8 computes the 8-bit CRC: init 0xFF, MSB-first, no final transform.
func Sum8(data []byte) uint8 {
	crc := uint8(0xFF)
	for _, b := range data {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Sum16 computes the CCITT 16-bit CRC: init 0xFFFF, each byte folded into
// the high half of the register, no final transform. This is the variant
// carried in the frame trailer.
func Sum16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Sum32 computes the IEEE 802.3 32-bit CRC in reflected form: init
// 0xFFFFFFFF, right-shifting loop, final complement.
func Sum32(data []byte) uint32 {
	crc := uint32(0xFFFFFFFF)
	for _, b := range data {
		crc ^= uint32(b)
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ 0xEDB88320
			} else {
				crc >>= 1
			}
		}
	}
	return ^crc
}

// Verify16 reports whether data checksums to want.
func Verify16(data []byte, want uint16) bool {
	return Sum16(data) == want
}

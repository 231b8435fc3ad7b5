package keccakf

import "encoding/binary"

// XORIn xors data into the bytes of x starting at offset.
// The state is addressed as its little-endian byte encoding.
// It panics if offset+len(data) is beyond StateSize.
func XORIn(x *State1600, offset int, data []byte) {
	checkRange(offset, len(data))
	for len(data) > 0 && offset%8 != 0 {
		x[offset/8] ^= uint64(data[0]) << (8 * (offset % 8))
		data = data[1:]
		offset++
	}
	for len(data) >= 8 {
		x[offset/8] ^= binary.LittleEndian.Uint64(data)
		data = data[8:]
		offset += 8
	}
	for i, b := range data {
		o := offset + i
		x[o/8] ^= uint64(b) << (8 * (o % 8))
	}
}

// CopyOut copies bytes from x starting at offset into dst.
// It panics if offset+len(dst) is beyond StateSize.
func CopyOut(dst []byte, x *State1600, offset int) {
	checkRange(offset, len(dst))
	for len(dst) > 0 && offset%8 != 0 {
		dst[0] = byte(x[offset/8] >> (8 * (offset % 8)))
		dst = dst[1:]
		offset++
	}
	for len(dst) >= 8 {
		binary.LittleEndian.PutUint64(dst, x[offset/8])
		dst = dst[8:]
		offset += 8
	}
	for i := range dst {
		o := offset + i
		dst[i] = byte(x[o/8] >> (8 * (o % 8)))
	}
}

// XORByte xors b into the byte of x at offset.
func XORByte(x *State1600, offset int, b byte) {
	checkRange(offset, 1)
	x[offset/8] ^= uint64(b) << (8 * (offset % 8))
}

func checkRange(offset, n int) {
	if offset < 0 || n < 0 || offset+n > StateSize {
		panic("keccakf: byte range outside of state")
	}
}

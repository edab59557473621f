// Package nighthash implements the deterministic pseudo-random hash
// dispatcher used throughout Peach: a chain of single-precision
// floating-point mixing (dflop), optional memory transforms (dmemtx),
// and a final selection among eight hash algorithms. Grounded on
// peach_dflop/peach_dmemtx/peach_nighthash in
// original_source/src/peach.c.
package nighthash

import (
	"encoding/binary"
	"math"

	"peachminer/hashfacade"
)

// DigestSize is the fixed 32-byte nighthash output width.
const DigestSize = hashfacade.DigestSize

// Dflop performs the deterministic float mixing pass over data (limited
// to a multiple of 4 bytes) and returns the running operation
// accumulator. If tx is true, data is modified in place; otherwise the
// buffer is left bitwise unchanged and only the accumulator is
// returned. Matches peach_dflop.
func Dflop(data []byte, index uint32, tx bool) uint32 {
	n := len(data) - (len(data) & 3)
	var op uint32
	for i := 0; i < n; i += 4 {
		lane := data[i : i+4 : i+4]
		bits := binary.LittleEndian.Uint32(lane)

		shift := ((lane[0] & 7) + 1) << 1
		op += uint32(lane[(0x26C34>>shift)&3])
		operand := int32(lane[(0x14198>>shift)&3])
		if lane[(0x3D6EC>>shift)&3]&1 != 0 {
			operand ^= -0x80000000
		}
		flv := float32(operand)

		flt := math.Float32frombits(bits)
		if math.IsNaN(float64(flt)) {
			flt = float32(index)
		}
		switch op & 3 {
		case 0:
			flt += flv
		case 1:
			flt -= flv
		case 2:
			flt *= flv
		case 3:
			flt /= flv
		}
		if math.IsNaN(float64(flt)) {
			flt = float32(index)
		}

		resultBits := math.Float32bits(flt)
		var rb [4]byte
		binary.LittleEndian.PutUint32(rb[:], resultBits)
		if tx {
			copy(lane, rb[:])
		}
		op += uint32(rb[0])
		op += uint32(rb[1])
		op += uint32(rb[2])
		op += uint32(rb[3])
	}
	return op
}

// Dmemtx performs PEACH_RNDS rounds of deterministic memory
// transformations on data, each round's transform selected by the
// running op accumulator. Matches peach_dmemtx.
func Dmemtx(data []byte, op uint32) uint32 {
	const rounds = 8
	n := len(data)
	halflen := n >> 1
	len32 := n >> 2
	len64 := n >> 3

	for i := 0; i < rounds; i++ {
		op += uint32(data[i&31])
		switch op & 7 {
		case 0:
			for z := 0; z < len64; z++ {
				off := z * 8
				v := binary.LittleEndian.Uint64(data[off : off+8])
				v ^= 0x8181818181818181
				binary.LittleEndian.PutUint64(data[off:off+8], v)
			}
			for z := len64 * 2; z < len32; z++ {
				off := z * 4
				v := binary.LittleEndian.Uint32(data[off : off+4])
				v ^= 0x81818181
				binary.LittleEndian.PutUint32(data[off:off+4], v)
			}
		case 1:
			for y, z := halflen, 0; z < halflen; y, z = y+1, z+1 {
				data[z], data[y] = data[y], data[z]
			}
		case 2:
			for z := 0; z < len64; z++ {
				off := z * 8
				v := binary.LittleEndian.Uint64(data[off : off+8])
				v = ^v
				binary.LittleEndian.PutUint64(data[off:off+8], v)
			}
			for z := len64 * 2; z < len32; z++ {
				off := z * 4
				v := binary.LittleEndian.Uint32(data[off : off+4])
				v = ^v
				binary.LittleEndian.PutUint32(data[off:off+4], v)
			}
		case 3:
			for z := 0; z < n; z++ {
				if z&1 == 0 {
					data[z]++
				} else {
					data[z]--
				}
			}
		case 4:
			for z := 0; z < n; z++ {
				if z&1 == 0 {
					data[z] += byte(-int8(i))
				} else {
					data[z] += byte(int8(i))
				}
			}
		case 5:
			for z := 0; z < n; z++ {
				if data[z] == 104 {
					data[z] = 72
				}
			}
		case 6:
			for y, z := halflen, 0; z < halflen; y, z = y+1, z+1 {
				if data[z] > data[y] {
					data[z], data[y] = data[y], data[z]
				}
			}
		case 7:
			for y, z := 0, 1; z < n; y, z = y+1, z+1 {
				data[z] ^= data[y]
			}
		}
	}
	return op
}

// Hash dispatches in (and, if hashIndex is true, in followed by the
// little-endian 4-byte index) through dflop, optional dmemtx (when tx
// is true), and one of 8 hash algorithms selected by the resulting
// accumulator. Matches peach_nighthash.
func Hash(in []byte, index uint32, hashIndex, tx bool) [DigestSize]byte {
	algoType := Dflop(in, index, tx)
	if tx {
		algoType = Dmemtx(in, algoType)
	}

	var suffix []byte
	if hashIndex {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], index)
		suffix = b[:]
	}

	algo := hashfacade.Algo(algoType & 7)
	return hashfacade.Sum(algo, in, suffix)
}

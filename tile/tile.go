// Package tile generates the 1 KiB pseudo-random map tiles that back
// the Peach memory-hard layer, grounded on peach_gen in
// original_source/src/peach.c.
package tile

import (
	"encoding/binary"

	"peachminer/nighthash"
)

// Size is the byte width of one generated tile.
const Size = 1024

// seedSize is PEACH_GEN: a 4-byte index followed by the 32-byte
// previous-block hash.
const seedSize = 4 + 32

// Generate deterministically fills tile (Size bytes) for index, given
// phash (the 32-byte previous block hash). tile's length must be
// exactly Size.
func Generate(phash []byte, index uint32, tile []byte) {
	if len(tile) != Size {
		panic("tile: Generate requires a Size-byte buffer")
	}
	if len(phash) != 32 {
		panic("tile: Generate requires a 32-byte phash")
	}

	seed := make([]byte, seedSize)
	binary.LittleEndian.PutUint32(seed[0:4], index)
	copy(seed[4:], phash)

	first := nighthash.Hash(seed, index, false, true)
	copy(tile[0:32], first[:])

	for off := 0; off < Size-32; off += 32 {
		h := nighthash.Hash(tile[off:off+32], index, true, true)
		copy(tile[off+32:off+64], h[:])
	}
}

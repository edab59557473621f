// Package indexjump implements the Peach map traversal step: given the
// current tile and the nonce in progress, derive the next tile index to
// visit. Grounded on peach_next in original_source/src/peach.c.
package indexjump

import (
	"encoding/binary"

	"peachminer/nighthash"
	"peachminer/tile"
)

// mapSize is PEACH_MAP: the number of addressable tiles, a power of two.
const mapSize = 1 << 20

// seedSize is PEACH_NEXT: 32-byte nonce + 4-byte index + one full tile.
const seedSize = 32 + 4 + tile.Size

// Next derives the next tile index from the current index, its
// generated tile, and the 32-byte nonce-in-progress (the four uint64
// words of the Peach context's nonce buffer, little-endian). Matches
// peach_next.
func Next(index uint32, currentTile []byte, nonce []byte) uint32 {
	if len(currentTile) != tile.Size {
		panic("indexjump: Next requires a full tile")
	}
	if len(nonce) != 32 {
		panic("indexjump: Next requires a 32-byte nonce")
	}

	seed := make([]byte, seedSize)
	copy(seed[0:32], nonce)
	binary.LittleEndian.PutUint32(seed[32:36], index)
	copy(seed[36:], currentTile)

	hash := nighthash.Hash(seed, index, false, false)

	var sum uint32
	for i := 0; i < 8; i++ {
		sum += binary.LittleEndian.Uint32(hash[i*4 : i*4+4])
	}
	return sum & (mapSize - 1)
}

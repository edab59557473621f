package indexjump

import (
	"testing"

	"peachminer/tile"
)

func TestNextDeterministicAndBounded(t *testing.T) {
	phash := make([]byte, 32)
	var tl [tile.Size]byte
	tile.Generate(phash, 3, tl[:])
	nonce := make([]byte, 32)

	a := Next(3, tl[:], nonce)
	b := Next(3, tl[:], nonce)
	if a != b {
		t.Fatal("Next must be deterministic")
	}
	if a >= mapSize {
		t.Fatalf("Next returned %d, out of [0, %d) range", a, mapSize)
	}
}

func TestNextVariesByNonce(t *testing.T) {
	phash := make([]byte, 32)
	var tl [tile.Size]byte
	tile.Generate(phash, 3, tl[:])

	n1 := make([]byte, 32)
	n2 := make([]byte, 32)
	n2[0] = 0xff

	a := Next(3, tl[:], n1)
	b := Next(3, tl[:], n2)
	if a == b {
		t.Fatal("different nonces should (almost always) produce different next indices")
	}
}

package tile

import (
	"bytes"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	phash := make([]byte, 32)
	for i := range phash {
		phash[i] = byte(i)
	}
	var a, b [Size]byte
	Generate(phash, 7, a[:])
	Generate(phash, 7, b[:])
	if !bytes.Equal(a[:], b[:]) {
		t.Fatal("Generate must be deterministic for identical (phash, index)")
	}
}

func TestGenerateVariesByIndex(t *testing.T) {
	phash := make([]byte, 32)
	var a, b [Size]byte
	Generate(phash, 1, a[:])
	Generate(phash, 2, b[:])
	if bytes.Equal(a[:], b[:]) {
		t.Fatal("different indices should produce different tiles")
	}
}

func TestGenerateVariesByPhash(t *testing.T) {
	p1 := make([]byte, 32)
	p2 := make([]byte, 32)
	p2[0] = 1
	var a, b [Size]byte
	Generate(p1, 5, a[:])
	Generate(p2, 5, b[:])
	if bytes.Equal(a[:], b[:]) {
		t.Fatal("different phash values should produce different tiles")
	}
}

func TestGeneratePanicsOnShortBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on undersized tile buffer")
		}
	}()
	phash := make([]byte, 32)
	buf := make([]byte, Size-1)
	Generate(phash, 0, buf)
}

package nighthash

import (
	"bytes"
	"testing"
)

func TestDflopNoTxLeavesInputUnchanged(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i * 7)
	}
	orig := append([]byte(nil), data...)
	Dflop(data, 42, false)
	if !bytes.Equal(data, orig) {
		t.Fatal("Dflop with tx=false must not mutate its input")
	}
}

func TestDflopTxMutatesInput(t *testing.T) {
	data := make([]byte, 64)
	for i := range data {
		data[i] = byte(i * 3)
	}
	orig := append([]byte(nil), data...)
	Dflop(data, 7, true)
	if bytes.Equal(data, orig) {
		t.Fatal("Dflop with tx=true is expected to mutate its input")
	}
}

func TestDflopDeterministic(t *testing.T) {
	mk := func() []byte {
		d := make([]byte, 36)
		for i := range d {
			d[i] = byte(i*13 + 1)
		}
		return d
	}
	a, b := mk(), mk()
	opA := Dflop(a, 5, true)
	opB := Dflop(b, 5, true)
	if opA != opB || !bytes.Equal(a, b) {
		t.Fatal("Dflop must be deterministic for identical inputs")
	}
}

func TestDmemtxDeterministic(t *testing.T) {
	mk := func() []byte {
		d := make([]byte, 1024)
		for i := range d {
			d[i] = byte(i)
		}
		return d
	}
	a, b := mk(), mk()
	opA := Dmemtx(a, 0x1234)
	opB := Dmemtx(b, 0x1234)
	if opA != opB || !bytes.Equal(a, b) {
		t.Fatal("Dmemtx must be deterministic for identical inputs and op")
	}
}

func TestHashDeterministicAndFullWidth(t *testing.T) {
	in := make([]byte, 36)
	for i := range in {
		in[i] = byte(i)
	}
	a := Hash(append([]byte(nil), in...), 3, true, true)
	b := Hash(append([]byte(nil), in...), 3, true, true)
	if a != b {
		t.Fatal("Hash must be deterministic")
	}
	if len(a) != DigestSize {
		t.Fatalf("Hash returned %d bytes, want %d", len(a), DigestSize)
	}
}

func TestHashIndexAffectsOutput(t *testing.T) {
	in := make([]byte, 36)
	a := Hash(append([]byte(nil), in...), 1, true, false)
	b := Hash(append([]byte(nil), in...), 2, true, false)
	if a == b {
		t.Fatal("hashing with a different index appended should change the digest")
	}
}

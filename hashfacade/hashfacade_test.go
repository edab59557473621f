package hashfacade

import "testing"

func TestSumAlwaysReturnsFullWidthZeroPadded(t *testing.T) {
	in := []byte("the quick brown fox")
	shortDigestAlgos := map[Algo]int{
		AlgoSHA1: 20,
		AlgoMD2:  16,
		AlgoMD5:  16,
	}
	for algo, native := range shortDigestAlgos {
		out := Sum(algo, in, nil)
		for i := native; i < DigestSize; i++ {
			if out[i] != 0 {
				t.Fatalf("algo %d: byte %d should be zero-padded, got %#x", algo, i, out[i])
			}
		}
	}
}

func TestSumDeterministic(t *testing.T) {
	in := []byte("deterministic input")
	for algo := AlgoBlake2b256; algo <= AlgoMD5; algo++ {
		a := Sum(algo, in, nil)
		b := Sum(algo, in, nil)
		if a != b {
			t.Fatalf("algo %d: Sum is not deterministic", algo)
		}
	}
}

func TestSumDistinguishesAlgorithms(t *testing.T) {
	in := []byte("same input, different algo")
	seen := map[[DigestSize]byte]bool{}
	for algo := AlgoBlake2b256; algo <= AlgoMD5; algo++ {
		out := Sum(algo, in, nil)
		if seen[out] {
			t.Fatalf("algo %d collided with a previously seen digest", algo)
		}
		seen[out] = true
	}
}

func TestSumWithSuffixDiffersFromWithout(t *testing.T) {
	in := []byte("payload")
	suffix := []byte{1, 2, 3, 4}
	a := Sum(AlgoSHA256, in, nil)
	b := Sum(AlgoSHA256, in, suffix)
	if a == b {
		t.Fatal("appending a suffix should change the digest")
	}
}

func TestMD2KnownVector(t *testing.T) {
	// RFC 1319 test vector: MD2("") = 8350e5a3e24c153df2275c9f80692773
	out := Sum(AlgoMD2, []byte(""), nil)
	want := [16]byte{
		0x83, 0x50, 0xe5, 0xa3, 0xe2, 0x4c, 0x15, 0x3d,
		0xf2, 0x27, 0x5c, 0x9f, 0x80, 0x69, 0x27, 0x73,
	}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("MD2(\"\") byte %d = %#x, want %#x", i, out[i], want[i])
		}
	}
}

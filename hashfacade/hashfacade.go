// Package hashfacade provides a uniform digest interface over the eight
// hash algorithms nighthash selects between: two keyed BLAKE2b variants,
// SHA-1, SHA-256, SHA3-256, the legacy (pre-NIST) Keccak-256, MD2 and
// MD5. Every digest is returned as a 32-byte buffer, short digests
// zero-padded at the tail, matching the ((uint64_t *) out)[n] = 0
// zero-fill idiom in peach_nighthash in original_source/src/peach.c.
package hashfacade

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"hash"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DigestSize is the fixed output width of every algorithm in this
// package, short digests included.
const DigestSize = 32

// Algo identifies one of the eight nighthash digest algorithms.
type Algo int

const (
	AlgoBlake2b256 Algo = iota // keyed with 32 all-zero bytes
	AlgoBlake2b512             // keyed with 64 all-one bytes, 32-byte output
	AlgoSHA1
	AlgoSHA256
	AlgoSHA3
	AlgoKeccak
	AlgoMD2
	AlgoMD5
)

// New returns a fresh hash.Hash for algo, along with the digest's native
// (unpadded) byte width.
func New(algo Algo) (hash.Hash, int) {
	switch algo {
	case AlgoBlake2b256:
		key := make([]byte, 32)
		h, err := blake2b.New(DigestSize, key)
		if err != nil {
			panic(err)
		}
		return h, DigestSize
	case AlgoBlake2b512:
		key := make([]byte, 64)
		for i := range key {
			key[i] = 1
		}
		h, err := blake2b.New(DigestSize, key)
		if err != nil {
			panic(err)
		}
		return h, DigestSize
	case AlgoSHA1:
		return sha1.New(), sha1.Size
	case AlgoSHA256:
		return sha256.New(), sha256.Size
	case AlgoSHA3:
		return sha3.New256(), 32
	case AlgoKeccak:
		return sha3.NewLegacyKeccak256(), 32
	case AlgoMD2:
		return newMD2(), md2Size
	case AlgoMD5:
		return md5.New(), md5.Size
	default:
		panic("hashfacade: unknown algorithm")
	}
}

// Sum computes algo's digest of in (and, if suffix is non-nil, in
// immediately followed by suffix), zero-padded to DigestSize bytes.
func Sum(algo Algo, in, suffix []byte) [DigestSize]byte {
	h, _ := New(algo)
	h.Write(in)
	if suffix != nil {
		h.Write(suffix)
	}
	var out [DigestSize]byte
	h.Sum(out[:0])
	return out
}

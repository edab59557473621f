// Package peach implements the memory-hard proof-of-work layer built on
// top of the Trigg grammar: a solve/generate/check state machine that
// traverses a 1 GiB map of pseudo-random tiles, generating and caching
// tiles on demand. Grounded on the PEACH_ALGO struct and
// peach_solve/peach_generate/peach_checkhash/peach_free in
// original_source/src/peach.c.
package peach

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"peachminer/dict"
	"peachminer/difficulty"
	"peachminer/grammar"
	"peachminer/indexjump"
	"peachminer/tile"
	"peachminer/trailer"
)

// MapSize is PEACH_MAP: the number of addressable tile slots.
const MapSize = 1 << 20

// MapBytes is PEACH_SIZE, the full map allocation in bytes (1 GiB).
const MapBytes = MapSize * tile.Size

// Jumps is PEACH_JUMP: the number of index-jump hops per attempt.
const Jumps = 8

// ErrAllocationFailure is returned by NewSolver when the backing map and
// cache cannot be allocated.
var ErrAllocationFailure = fmt.Errorf("peach: map/cache allocation failed")

// Context is the Peach algorithm state, matching PEACH_ALGO. A solver
// Context owns a full map and presence cache; a verifier Context (built
// with NewVerifier) holds only a scratch tile and regenerates every tile
// it visits.
type Context struct {
	bt    *trailer.Trailer
	map_  []byte // MapBytes, nil in verifier mode
	cache []byte // MapSize presence bytes, nil in verifier mode
	tile  [tile.Size]byte

	nonce [4]uint64 // primary and secondary haiku, little-endian words
	diff  uint32

	rng func() uint32
}

// NewSolver allocates a full map and cache and primes a Context for
// repeated Generate calls, matching peach_solve. rng supplies the
// haiku-token randomness (see randgen).
func NewSolver(bt *trailer.Trailer, rng func() uint32) (*Context, error) {
	m, c := allocMap()
	if m == nil || c == nil {
		return nil, ErrAllocationFailure
	}
	p := &Context{bt: bt, map_: m, cache: c, rng: rng}
	p.diff = binary.LittleEndian.Uint32(bt.Difficulty())

	var tok [dict.MaxH]byte
	grammar.GenerateTokens(rng, tok[:])
	p.nonce[2] = binary.LittleEndian.Uint64(tok[0:8])
	p.nonce[3] = binary.LittleEndian.Uint64(tok[8:16])
	return p, nil
}

// NewVerifier builds a map-less Context suitable for a single Check
// call: every visited tile is regenerated into the scratch buffer
// rather than cached.
func NewVerifier(bt *trailer.Trailer) *Context {
	return &Context{bt: bt}
}

// Free releases the map and cache, matching peach_free. A Context must
// not be reused afterward.
func (p *Context) Free() {
	p.map_ = nil
	p.cache = nil
}

// genTile returns the tile at index, generating and (in solver mode)
// caching it on first visit. Matches peach_gen.
func (p *Context) genTile(index uint32) []byte {
	if p.cache != nil && p.cache[index] != 0 {
		return p.map_[int(index)*tile.Size : int(index)*tile.Size+tile.Size]
	}

	var dst []byte
	if p.map_ != nil {
		dst = p.map_[int(index)*tile.Size : int(index)*tile.Size+tile.Size]
		p.cache[index] = 1
	} else {
		dst = p.tile[:]
	}

	tile.Generate(p.bt.Phash(), index, dst)
	return dst
}

// marioStart derives the initial map index from a 32-byte hash by
// folding it with 32-bit wrapping multiplication across every byte,
// matching peach_generate/peach_checkhash's `mario` derivation
// (deliberately addition-free: the original documents this as a known
// quirk that collapses to zero whenever any input byte is zero, and
// leaves it unchanged).
func marioStart(hash []byte) uint32 {
	mario := uint32(hash[0])
	for i := 1; i < len(hash); i++ {
		mario *= uint32(hash[i])
	}
	return mario & (MapSize - 1)
}

func (p *Context) nonceBytes() []byte {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[0:8], p.nonce[0])
	binary.LittleEndian.PutUint64(b[8:16], p.nonce[1])
	binary.LittleEndian.PutUint64(b[16:24], p.nonce[2])
	binary.LittleEndian.PutUint64(b[24:32], p.nonce[3])
	return b[:]
}

// walk performs the mario traversal starting from btHash (either the
// 92-byte prefix+nonce hash from Generate, or the 124-byte trailer hash
// from Check) and returns the final tile visited.
func (p *Context) walk(btHash []byte) []byte {
	mario := marioStart(btHash)
	t := p.genTile(mario)
	nb := p.nonceBytes()
	for i := 0; i < Jumps; i++ {
		mario = indexjump.Next(mario, t, nb)
		t = p.genTile(mario)
	}
	return t
}

// Generate advances the embedded haiku nonce by one attempt and, on
// success, writes the resulting 32-byte nonce into out and returns
// true. Matches peach_generate: the "known" trailer hash is computed
// over the 92-byte trailer prefix concatenated with the in-progress
// 32-byte nonce as two separate hash updates (not the 124-byte prefix
// Check uses — the two are bit-identical only because the nonce field
// sits immediately after byte 92 in the trailer layout).
func (p *Context) Generate(out []byte) bool {
	if len(out) < trailer.NonceLen {
		panic("peach: Generate requires a 32-byte output buffer")
	}

	p.nonce[0] = p.nonce[2]
	p.nonce[1] = p.nonce[3]
	var tok [dict.MaxH]byte
	grammar.GenerateTokens(p.rng, tok[:])
	p.nonce[2] = binary.LittleEndian.Uint64(tok[0:8])
	p.nonce[3] = binary.LittleEndian.Uint64(tok[8:16])

	h := sha256.New()
	h.Write(p.bt.PrefixUpTo92())
	h.Write(p.nonceBytes())
	var btHash [32]byte
	h.Sum(btHash[:0])

	finalTile := p.walk(btHash[:])

	fh := sha256.New()
	fh.Write(btHash[:])
	fh.Write(finalTile)
	var hash [32]byte
	fh.Sum(hash[:0])

	if !difficulty.Eval(hash[:], uint8(p.diff)) {
		return false
	}

	copy(out, p.nonceBytes())
	return true
}

// Check verifies a completed block trailer's nonce against the Peach
// predicate. p must be a verifier Context (see NewVerifier) built over
// bt. If out is non-nil, the final hash is written into it. Matches
// peach_checkhash / peach_check.
func (p *Context) Check(bt *trailer.Trailer, out []byte) bool {
	nonce := bt.Nonce()
	if !grammar.Syntax(nonce[0:dict.MaxH]) {
		return false
	}
	if !grammar.Syntax(nonce[16 : 16+dict.MaxH]) {
		return false
	}
	p.nonce[0] = binary.LittleEndian.Uint64(nonce[0:8])
	p.nonce[1] = binary.LittleEndian.Uint64(nonce[8:16])
	p.nonce[2] = binary.LittleEndian.Uint64(nonce[16:24])
	p.nonce[3] = binary.LittleEndian.Uint64(nonce[24:32])

	h := sha256.New()
	h.Write(bt.PrefixUpTo124())
	var btHash [32]byte
	h.Sum(btHash[:0])

	finalTile := p.walk(btHash[:])

	fh := sha256.New()
	fh.Write(btHash[:])
	fh.Write(finalTile)
	var hash [32]byte
	fh.Sum(hash[:0])

	if out != nil {
		copy(out, hash[:])
	}
	return difficulty.Eval(hash[:], bt.DifficultyByte())
}

// Check is a package-level convenience that builds a fresh verifier
// Context over bt and checks it, for callers that do not need to reuse
// allocation across checks.
func Check(bt *trailer.Trailer, out []byte) bool {
	p := NewVerifier(bt)
	return p.Check(bt, out)
}

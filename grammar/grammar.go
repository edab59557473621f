// Package grammar implements the Trigg semantic-grammar engine: random
// haiku generation against the case frames in dict.Frame, expansion of a
// tokenized haiku to its character form, and syntax verification by
// feature unification. It also assembles the 312-byte TRIGG chain and
// exposes the Solve/Generate/Check operations built on top of it,
// grounded on trigg_gen/trigg_expand/trigg_syntax/trigg_solve/
// trigg_generate/trigg_checkhash in original_source/src/trigg.c.
package grammar

import (
	"crypto/sha256"
	"encoding/binary"

	"peachminer/dict"
	"peachminer/difficulty"
	"peachminer/trailer"
)

// NonceSize is the byte length of one tokenized haiku (dict.MaxH token
// indices, zero-padded), matching a BlockTrailer nonce half.
const NonceSize = dict.MaxH

// chainSize is the length of the TRIGG chain hashed by Generate/Check:
// 4 uint64 merkle-root words (32B) + expanded haiku (256B) + 2 uint64
// secondary-haiku words (16B) + 1 uint64 block number (8B) = 312 bytes.
// Matches sizeof through T->bnum in TRIGG_ALGO, i.e. sha256(T, 312, hash).
const chainSize = 32 + dict.HaikuSize + 16 + 8

// GenerateTokens fills out (MaxH bytes) with a random tokenized haiku
// chosen from a random case frame, using rng for all random draws.
// Matches trigg_gen.
func GenerateTokens(rng func() uint32, out []byte) {
	if len(out) < dict.MaxH {
		panic("grammar: GenerateTokens requires at least MaxH bytes")
	}
	frame := &dict.Frame[rng()%dict.NFrames]
	for j := 0; j < dict.MaxH; j++ {
		f := frame[j]
		if f == 0 {
			out[j] = 0
			continue
		}
		var widx uint32
		if f&dict.XLIT != 0 {
			widx = f & 255
		} else {
			for {
				widx = rng() & (dict.MaxDict - 1)
				if dict.Dict[widx].Features&f != 0 {
					break
				}
			}
		}
		out[j] = byte(widx)
	}
}

// Expand converts a tokenized haiku (nonce, MaxH bytes) into its
// character form in haiku (HaikuSize bytes), matching trigg_expand.
// Dictionary tokens beginning with '\b' erase the previously emitted
// byte before appending their own text, reproducing the teletype-style
// backspace semantics of the original dictionary literals (e.g. "\b:",
// "\bs").
func Expand(nonce []byte, haiku []byte) {
	if len(haiku) < dict.HaikuSize {
		panic("grammar: Expand requires a HaikuSize-byte buffer")
	}
	bp := 0
	for i := 0; i < dict.MaxH; i++ {
		idx := nonce[i]
		if idx == 0 {
			break
		}
		w := dict.Dict[idx].Token
		for _, c := range []byte(w) {
			if c == '\b' {
				if bp > 0 {
					bp--
				}
				continue
			}
			haiku[bp] = c
			bp++
		}
		if bp == 0 || haiku[bp-1] != '\n' {
			haiku[bp] = ' '
			bp++
		}
	}
	for ; bp < dict.HaikuSize; bp++ {
		haiku[bp] = 0
	}
}

// Syntax reports whether nonce (MaxH dictionary indices) unifies against
// any of the 10 case frames, matching trigg_syntax.
func Syntax(nonce []byte) bool {
	var sf [dict.MaxH]uint32
	for j := 0; j < dict.MaxH; j++ {
		sf[j] = dict.Dict[nonce[j]].Features
	}
	for f := 0; f < dict.NFrames; f++ {
		frame := &dict.Frame[f]
		j := 0
		for ; j < dict.MaxH; j++ {
			ff := frame[j]
			if ff == 0 {
				if sf[j] == 0 {
					return true
				}
				break
			}
			if ff&dict.XLIT != 0 {
				if ff&255 != uint32(nonce[j]) {
					break
				}
				continue
			}
			if sf[j]&ff == 0 {
				break
			}
		}
		if j >= dict.MaxH {
			return true
		}
	}
	return false
}

// Context is the TRIGG chain state carried across Solve/Generate calls
// for one mining attempt stream, matching TRIGG_ALGO.
type Context struct {
	mroot  [4]uint64
	haiku  [dict.HaikuSize]byte
	haiku2 [2]uint64
	bnum   uint64

	haiku1 [2]uint64
	diff   uint32

	rng func() uint32
}

// NewContext builds a Context with the given random source. Pass
// randgen.Rand for the shared generator, or (*randgen.Source).Next for
// an independent per-worker stream.
func NewContext(rng func() uint32) *Context {
	return &Context{rng: rng}
}

func le64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// Solve primes c from bt and generates the initial secondary haiku,
// matching trigg_solve. Call Generate repeatedly afterward to search for
// a solution.
func (c *Context) Solve(bt *trailer.Trailer) {
	mroot := bt.Mroot()
	for i := 0; i < 4; i++ {
		c.mroot[i] = le64(mroot[i*8 : i*8+8])
	}
	c.bnum = le64(bt.Bnum())
	c.diff = uint32(binary.LittleEndian.Uint32(bt.Difficulty()))

	var tok [dict.MaxH]byte
	GenerateTokens(c.rng, tok[:])
	for i := 0; i < 2; i++ {
		c.haiku2[i] = le64(tok[i*8 : i*8+8])
	}
}

// chainBytes serializes the 312-byte TRIGG chain for hashing.
func (c *Context) chainBytes() []byte {
	buf := make([]byte, chainSize)
	off := 0
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(buf[off:], c.mroot[i])
		off += 8
	}
	copy(buf[off:], c.haiku[:])
	off += dict.HaikuSize
	for i := 0; i < 2; i++ {
		binary.LittleEndian.PutUint64(buf[off:], c.haiku2[i])
		off += 8
	}
	binary.LittleEndian.PutUint64(buf[off:], c.bnum)
	return buf
}

// Generate advances the chain by one attempt and, on success, writes the
// 32-byte nonce (two tokenized haikus) into out and returns true,
// matching trigg_generate.
func (c *Context) Generate(out []byte) bool {
	if len(out) < trailer.NonceLen {
		panic("grammar: Generate requires a 32-byte output buffer")
	}
	c.haiku1[0], c.haiku1[1] = c.haiku2[0], c.haiku2[1]

	var tok [dict.MaxH]byte
	GenerateTokens(c.rng, tok[:])
	for i := 0; i < 2; i++ {
		c.haiku2[i] = le64(tok[i*8 : i*8+8])
	}

	var prev [dict.MaxH]byte
	binary.LittleEndian.PutUint64(prev[0:8], c.haiku1[0])
	binary.LittleEndian.PutUint64(prev[8:16], c.haiku1[1])
	Expand(prev[:], c.haiku[:])

	hash := sha256.Sum256(c.chainBytes())
	if !difficulty.Eval(hash[:], uint8(c.diff)) {
		return false
	}

	binary.LittleEndian.PutUint64(out[0:8], c.haiku1[0])
	binary.LittleEndian.PutUint64(out[8:16], c.haiku1[1])
	binary.LittleEndian.PutUint64(out[16:24], c.haiku2[0])
	binary.LittleEndian.PutUint64(out[24:32], c.haiku2[1])
	return true
}

// Check verifies a completed block trailer's nonce: both haiku halves
// must pass Syntax, and the re-expanded TRIGG chain must hash to
// something satisfying bt's difficulty. If out is non-nil, the final
// hash is written into it. Matches trigg_checkhash / trigg_check.
func Check(bt *trailer.Trailer, out []byte) bool {
	nonce := bt.Nonce()
	if !Syntax(nonce[0:dict.MaxH]) {
		return false
	}
	if !Syntax(nonce[16 : 16+dict.MaxH]) {
		return false
	}

	var c Context
	mroot := bt.Mroot()
	for i := 0; i < 4; i++ {
		c.mroot[i] = le64(mroot[i*8 : i*8+8])
	}
	c.haiku2[0] = le64(nonce[16:24])
	c.haiku2[1] = le64(nonce[24:32])
	c.bnum = le64(bt.Bnum())

	Expand(nonce, c.haiku[:])

	hash := sha256.Sum256(c.chainBytes())
	if out != nil {
		copy(out, hash[:])
	}
	return difficulty.Eval(hash[:], bt.DifficultyByte())
}

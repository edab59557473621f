// Package trailer defines the fixed 160-byte block trailer layout that
// carries the proof-of-work nonce. The core treats the trailer as mostly
// opaque bytes; only the fields the Trigg/Peach cores read or write are
// exposed as typed accessors, matching the byte offsets of BTRAILER in
// original_source/src/trigg.c and peach.c.
package trailer

import "encoding/binary"

// Size is the fixed trailer length in bytes.
const Size = 160

// Field byte offsets within a Trailer, little-endian.
const (
	offPhash      = 0
	offBnum       = 32
	offMfee       = 40
	offTcount     = 48
	offTime0      = 52
	offDifficulty = 56
	offMroot      = 60
	offNonce      = 92
	offStime      = 124
	offBhash      = 128
)

// HashLen is the width of a hash-sized field (phash, mroot, bhash).
const HashLen = 32

// NonceLen is the width of the haiku nonce field.
const NonceLen = 32

// Trailer is a fixed 160-byte block trailer. The zero value is a trailer
// of all zero bytes.
type Trailer [Size]byte

// Phash returns the previous block hash field.
func (t *Trailer) Phash() []byte { return t[offPhash : offPhash+HashLen] }

// Bnum returns the raw little-endian block-number bytes.
func (t *Trailer) Bnum() []byte { return t[offBnum : offBnum+8] }

// BlockNum decodes the block number as a little-endian uint64.
func (t *Trailer) BlockNum() uint64 { return binary.LittleEndian.Uint64(t.Bnum()) }

// Mfee returns the raw minimum-transaction-fee bytes (unused by the core).
func (t *Trailer) Mfee() []byte { return t[offMfee : offMfee+8] }

// Tcount returns the raw transaction-count bytes (unused by the core).
func (t *Trailer) Tcount() []byte { return t[offTcount : offTcount+4] }

// Time0 returns the raw time0 bytes (unused by the core).
func (t *Trailer) Time0() []byte { return t[offTime0 : offTime0+4] }

// Difficulty returns the raw little-endian difficulty field.
func (t *Trailer) Difficulty() []byte { return t[offDifficulty : offDifficulty+4] }

// DifficultyByte returns the single byte trigg_eval/peach_eval actually
// check against: the low byte of the little-endian difficulty field.
// This matches bt->difficulty[0] in peach_checkhash and the (uint8_t)
// truncation of T->diff in trigg_generate.
func (t *Trailer) DifficultyByte() uint8 { return t[offDifficulty] }

// Mroot returns the merkle root field.
func (t *Trailer) Mroot() []byte { return t[offMroot : offMroot+HashLen] }

// Nonce returns the 32-byte haiku nonce field: the sole field the core
// writes.
func (t *Trailer) Nonce() []byte { return t[offNonce : offNonce+NonceLen] }

// SetNonce overwrites the nonce field. panics if len(nonce) != NonceLen.
func (t *Trailer) SetNonce(nonce []byte) {
	if len(nonce) != NonceLen {
		panic("trailer: SetNonce requires exactly 32 bytes")
	}
	copy(t.Nonce(), nonce)
}

// Stime returns the raw solve-time bytes (unused by the core).
func (t *Trailer) Stime() []byte { return t[offStime : offStime+4] }

// Bhash returns the raw block-hash bytes (unused by the core).
func (t *Trailer) Bhash() []byte { return t[offBhash : offBhash+HashLen] }

// Bytes returns the full 160-byte trailer slice.
func (t *Trailer) Bytes() []byte { return t[:] }

// PrefixUpTo92 returns the first 92 bytes of the trailer (phash through
// tcount/time0/difficulty/mroot up to but excluding the nonce field).
// peach_generate hashes this prefix concatenated with the nonce.
func (t *Trailer) PrefixUpTo92() []byte { return t[:offNonce] }

// PrefixUpTo124 returns the first 124 bytes of the trailer (everything
// through the nonce field, excluding stime/bhash). peach_checkhash hashes
// this prefix directly; since the nonce sits at [92:124], this is
// bit-identical to PrefixUpTo92()+Nonce() concatenated, but is preserved
// as a distinct accessor because the two call sites are not
// interchangeable in general (see peach.Context.Generate).
func (t *Trailer) PrefixUpTo124() []byte { return t[:offStime] }

package grammar

import (
	"testing"

	"peachminer/dict"
	"peachminer/randgen"
	"peachminer/trailer"
)

func TestGenerateTokensAlwaysSatisfiesSyntax(t *testing.T) {
	src := randgen.New(123)
	for i := 0; i < 200; i++ {
		var tok [dict.MaxH]byte
		GenerateTokens(src.Next, tok[:])
		if !Syntax(tok[:]) {
			t.Fatalf("iteration %d: generated tokens %v failed Syntax", i, tok)
		}
	}
}

func TestExpandTerminatesAtZero(t *testing.T) {
	var tok [dict.MaxH]byte
	tok[0] = 5 // "a", feature OP
	tok[1] = 0 // terminator
	var haiku [dict.HaikuSize]byte
	Expand(tok[:], haiku[:])
	if haiku[0] != 'a' {
		t.Fatalf("expected first byte 'a', got %q", haiku[0])
	}
	for i := 2; i < dict.HaikuSize; i++ {
		if haiku[i] != 0 {
			t.Fatalf("byte %d should be zero-filled, got %d", i, haiku[i])
		}
	}
}

func TestExpandBackspaceErasesPrecedingByte(t *testing.T) {
	var tok [dict.MaxH]byte
	tok[0] = 5 // "a" -> "a "
	tok[1] = 9 // "\bs" -> erase space, append "s"
	var haiku [dict.HaikuSize]byte
	Expand(tok[:], haiku[:])
	if haiku[0] != 'a' || haiku[1] != 's' {
		t.Fatalf("expected \"as\" prefix, got %q", haiku[:2])
	}
}

func TestSyntaxRejectsAllLikeNonce(t *testing.T) {
	// An all-OP-class token stream with no trailing zero never matches
	// any frame, since every frame eventually requires either a
	// zero-terminator alignment or a specific feature the token lacks.
	var tok [dict.MaxH]byte
	for i := range tok {
		tok[i] = 4 // "like", F_OP
	}
	if Syntax(tok[:]) {
		t.Fatal("expected an all-\"like\" nonce to fail Syntax")
	}
}

func TestGenerateThenCheckAgree(t *testing.T) {
	// The syntax gate of Check accepts what generation produces: a haiku
	// pair produced by GenerateTokens must pass Syntax, half by half.
	src := randgen.New(999)
	var nonce [32]byte
	GenerateTokens(src.Next, nonce[0:16])
	GenerateTokens(src.Next, nonce[16:32])
	if !Syntax(nonce[0:16]) || !Syntax(nonce[16:32]) {
		t.Fatal("freshly generated haiku halves must satisfy Syntax")
	}
}

// TestSolveGenerateCheckRoundTrip exercises the standalone Trigg
// predicate end to end: a Context primed by Solve against a trailer
// must, after enough Generate attempts, produce a nonce that the
// package-level Check accepts against the same trailer, and Check must
// reject a subsequently mangled nonce.
func TestSolveGenerateCheckRoundTrip(t *testing.T) {
	var bt trailer.Trailer
	for i := range bt.Mroot() {
		bt.Mroot()[i] = byte(i * 3)
	}
	bt.Bnum()[0] = 7
	bt.Difficulty()[0] = 0 // difficulty 0 always passes Eval

	src := randgen.New(1)
	c := NewContext(src.Next)
	c.Solve(&bt)

	var nonce [32]byte
	solved := false
	for i := 0; i < 1000 && !solved; i++ {
		solved = c.Generate(nonce[:])
	}
	if !solved {
		t.Fatal("difficulty 0 should be solved within a handful of attempts")
	}

	withNonce := bt
	withNonce.SetNonce(nonce[:])

	var hash1 [32]byte
	if !Check(&withNonce, hash1[:]) {
		t.Fatal("a solved nonce must pass Check against the same trailer")
	}

	var hash2 [32]byte
	if !Check(&withNonce, hash2[:]) {
		t.Fatal("Check must be idempotent")
	}
	if hash1 != hash2 {
		t.Fatal("repeated Check on the same trailer must produce the same hash")
	}

	mangled := bt
	badNonce := nonce
	badNonce[0] = 0 // empty primary haiku: fails Syntax immediately
	mangled.SetNonce(badNonce[:])
	if Check(&mangled, nil) {
		t.Fatal("an empty primary haiku must fail Check")
	}
}

package difficulty

import "testing"

func TestEvalZeroDifficultyAlwaysPasses(t *testing.T) {
	hash := []byte{0xff, 0xff, 0xff, 0xff}
	if !Eval(hash, 0) {
		t.Fatal("difficulty 0 must always pass")
	}
}

func TestEvalWholeByteBoundary(t *testing.T) {
	hash := make([]byte, 32)
	hash[0] = 0
	hash[1] = 0
	hash[2] = 0x7f
	if !Eval(hash, 16) {
		t.Fatal("two leading zero bytes should satisfy difficulty 16")
	}
	if Eval(hash, 24) {
		t.Fatal("non-zero third byte should fail difficulty 24")
	}
}

func TestEvalPartialByte(t *testing.T) {
	hash := make([]byte, 32)
	hash[0] = 0
	hash[1] = 0x0f // top 4 bits zero
	if !Eval(hash, 12) {
		t.Fatal("one zero byte + 4 leading zero bits should satisfy difficulty 12")
	}
	if Eval(hash, 13) {
		t.Fatal("5 required zero bits should fail when only 4 are zero")
	}
}

func TestEvalFailsOnFirstNonZeroByte(t *testing.T) {
	hash := []byte{0, 1, 0, 0}
	if Eval(hash, 16) {
		t.Fatal("nonzero second byte should fail difficulty 16")
	}
}

package hashfacade

import "hash"

// MD2 has no implementation anywhere in the retrieved example pack or in
// golang.org/x/crypto; it is implemented here directly from RFC 1319,
// the sole hand-rolled primitive in this package.

const (
	md2Size      = 16
	md2BlockSize = 16
)

// md2Sbox is the permutation table from RFC 1319 Appendix A, derived
// from the digits of pi.
var md2Sbox = [256]byte{
	41, 46, 67, 201, 162, 216, 124, 1, 61, 54, 84, 161, 236, 240, 6,
	19, 98, 167, 5, 243, 192, 199, 115, 140, 152, 147, 43, 217, 188,
	76, 130, 202, 30, 155, 87, 60, 253, 212, 224, 22, 103, 66, 111, 24,
	138, 23, 229, 18, 190, 78, 196, 214, 218, 158, 222, 73, 160, 251,
	245, 142, 187, 47, 238, 122, 169, 104, 121, 145, 21, 178, 7, 63,
	148, 194, 16, 137, 11, 34, 95, 33, 128, 127, 93, 154, 90, 144, 50,
	39, 53, 62, 204, 231, 191, 247, 151, 3, 255, 25, 48, 179, 72, 165,
	181, 209, 215, 94, 146, 42, 172, 86, 170, 198, 79, 184, 56, 210,
	150, 164, 125, 182, 118, 252, 107, 226, 156, 116, 4, 241, 69, 157,
	112, 89, 100, 113, 135, 32, 134, 91, 207, 101, 230, 45, 168, 2, 27,
	96, 37, 173, 174, 176, 185, 246, 28, 70, 97, 105, 52, 64, 126, 15,
	85, 71, 163, 35, 221, 81, 175, 58, 195, 92, 249, 206, 186, 197,
	234, 38, 44, 83, 13, 110, 133, 40, 132, 9, 211, 223, 205, 244, 65,
	129, 77, 82, 106, 220, 55, 200, 108, 193, 171, 250, 36, 225, 123,
	8, 12, 189, 177, 74, 120, 136, 149, 139, 227, 99, 232, 109, 233,
	203, 213, 254, 59, 0, 29, 57, 242, 239, 183, 14, 102, 88, 208, 228,
	166, 119, 114, 248, 235, 117, 75, 10, 49, 68, 80, 180, 143, 237,
	31, 26, 219, 153, 141, 51, 159, 17, 131, 20,
}

type md2Digest struct {
	state [48]byte
	cksum [16]byte
	buf   [md2BlockSize]byte
	nbuf  int
	len   int
}

func newMD2() hash.Hash {
	d := new(md2Digest)
	return d
}

func (d *md2Digest) Reset() { *d = md2Digest{} }

func (d *md2Digest) Size() int      { return md2Size }
func (d *md2Digest) BlockSize() int { return md2BlockSize }

func (d *md2Digest) Write(p []byte) (n int, err error) {
	n = len(p)
	d.len += n
	if d.nbuf > 0 {
		k := copy(d.buf[d.nbuf:], p)
		d.nbuf += k
		p = p[k:]
		if d.nbuf == md2BlockSize {
			d.transform(d.buf[:])
			d.nbuf = 0
		}
	}
	for len(p) >= md2BlockSize {
		d.transform(p[:md2BlockSize])
		p = p[md2BlockSize:]
	}
	if len(p) > 0 {
		d.nbuf = copy(d.buf[:], p)
	}
	return n, nil
}

func (d *md2Digest) transform(block []byte) {
	var t byte
	for j := 0; j < 16; j++ {
		d.state[16+j] = block[j]
		d.state[32+j] = d.state[16+j] ^ d.state[j]
	}
	t = 0
	for j := 0; j < 18; j++ {
		for k := 0; k < 48; k++ {
			d.state[k] ^= md2Sbox[t]
			t = d.state[k]
		}
		t += byte(j)
	}

	t = d.cksum[15]
	for j := 0; j < 16; j++ {
		t = d.cksum[j] ^ md2Sbox[block[j]^t]
		d.cksum[j] = t
	}
}

func (d *md2Digest) Sum(in []byte) []byte {
	dc := *d
	pad := byte(md2BlockSize - dc.nbuf)
	var padding [md2BlockSize]byte
	for i := byte(0); i < pad; i++ {
		padding[i] = pad
	}
	dc.Write(padding[:pad])
	cksum := dc.cksum
	dc.Write(cksum[:])
	return append(in, dc.state[:16]...)
}

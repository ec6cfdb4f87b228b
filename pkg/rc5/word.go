package rc5

import "math/bits"

// Word constrains the cipher to its two standard word widths. RC5-32 works
// on 64-bit blocks, RC5-64 on 128-bit blocks. All arithmetic on a Word wraps
// silently; that is part of the algorithm, not an overflow condition.
type Word interface {
	~uint32 | ~uint64
}

// Key schedule magic constants: Odd((e-2) * 2^w) and Odd((phi-1) * 2^w)
// for each word width.
const (
	p32 = 0xb7e15163
	q32 = 0x9e3779b9
	p64 = 0xb7e151628aed2a6b
	q64 = 0x9e3779b97f4a7c15
)

// wordBits returns the bit width of W (32 or 64).
func wordBits[W Word]() uint {
	return uint(bits.Len64(uint64(^W(0))))
}

// wordBytes returns the byte width of W.
func wordBytes[W Word]() int {
	return int(wordBits[W]() / 8)
}

// magic returns the P and Q constants sized to W.
func magic[W Word]() (W, W) {
	var p, q uint64 = p64, q64
	if wordBits[W]() == 32 {
		p, q = p32, q32
	}
	return W(p), W(q)
}

// rotl rotates x left by n bits, n taken modulo the width of W.
func rotl[W Word](x W, n uint) W {
	w := wordBits[W]()
	n %= w
	return x<<n | x>>(w-n)
}

// rotr rotates x right by n bits, n taken modulo the width of W.
func rotr[W Word](x W, n uint) W {
	w := wordBits[W]()
	n %= w
	return x>>n | x<<(w-n)
}

// putWord serializes x into b little-endian. b must hold exactly one word.
func putWord[W Word](b []byte, x W) {
	for i := range b {
		b[i] = byte(x)
		x >>= 8
	}
}

// readWord deserializes one little-endian word from b.
func readWord[W Word](b []byte) W {
	var x W
	for i := len(b) - 1; i >= 0; i-- {
		x = x<<8 | W(b[i])
	}
	return x
}

// Package rc5 implements the RC5 block cipher, parameterized over word size
// (32 or 64 bits), round count (0 to 255) and key length (0 to 255 bytes).
// The nominal instantiation is RC5-32/12: 32-bit words, 64-bit blocks,
// 12 rounds. Words are serialized little-endian.
//
// The package works on exactly one block at a time; chaining modes, padding
// and authentication are out of scope and belong to the caller.
package rc5

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EncryptBlock applies the RC5 round function to the two-word block (a, b)
// using an expanded subkey table. The round count is implied by the table
// length.
func EncryptBlock[W Word](table []W, a, b W) (W, W) {
	rounds := len(table)/2 - 1
	a += table[0]
	b += table[1]
	for i := 1; i <= rounds; i++ {
		a = rotl(a^b, uint(b)) + table[2*i]
		b = rotl(b^a, uint(a)) + table[2*i+1]
	}
	return a, b
}

// DecryptBlock is the exact inverse of EncryptBlock, undoing the rounds in
// reverse order.
func DecryptBlock[W Word](table []W, a, b W) (W, W) {
	rounds := len(table)/2 - 1
	for i := rounds; i >= 1; i-- {
		b = rotr(b-table[2*i+1], uint(a)) ^ a
		a = rotr(a-table[2*i], uint(b)) ^ b
	}
	b -= table[1]
	a -= table[0]
	return a, b
}

// Cipher is an RC5 instance holding an expanded subkey table. The table is
// never written after construction, so a Cipher is safe for concurrent use.
type Cipher[W Word] struct {
	table []W
}

// NewCipher expands key into a ready-to-use Cipher with the given round
// count. Key bytes are only read, never retained; the caller stays in charge
// of wiping them.
func NewCipher[W Word](key []byte, rounds int) (*Cipher[W], error) {
	table, err := ExpandKey[W](key, rounds)
	if err != nil {
		return nil, err
	}
	return &Cipher[W]{table: table}, nil
}

// BlockSize returns the cipher block size in bytes (two words).
func (c *Cipher[W]) BlockSize() int { return 2 * wordBytes[W]() }

// Rounds returns the round count the key was expanded for.
func (c *Cipher[W]) Rounds() int { return len(c.table)/2 - 1 }

// Encrypt encrypts a single block from src into dst. Both slices must be at
// least BlockSize bytes; dst and src may overlap.
func (c *Cipher[W]) Encrypt(dst, src []byte) {
	bs := c.BlockSize()
	if len(src) < bs || len(dst) < bs {
		panic("rc5: input not full block")
	}
	u := bs / 2
	a := readWord[W](src[:u])
	b := readWord[W](src[u:bs])
	a, b = EncryptBlock(c.table, a, b)
	putWord(dst[:u], a)
	putWord(dst[u:bs], b)
}

// Decrypt decrypts a single block from src into dst. Both slices must be at
// least BlockSize bytes; dst and src may overlap.
func (c *Cipher[W]) Decrypt(dst, src []byte) {
	bs := c.BlockSize()
	if len(src) < bs || len(dst) < bs {
		panic("rc5: input not full block")
	}
	u := bs / 2
	a := readWord[W](src[:u])
	b := readWord[W](src[u:bs])
	a, b = DecryptBlock(c.table, a, b)
	putWord(dst[:u], a)
	putWord(dst[u:bs], b)
}

// Encode encrypts plaintext block by block and returns the ciphertext.
// The plaintext length must be a multiple of BlockSize; otherwise a
// *BlockLengthError is returned and no output is produced.
func (c *Cipher[W]) Encode(plaintext []byte) ([]byte, error) {
	return c.apply(plaintext, c.Encrypt)
}

// Decode decrypts ciphertext block by block and returns the plaintext.
// Validation mirrors Encode.
func (c *Cipher[W]) Decode(ciphertext []byte) ([]byte, error) {
	return c.apply(ciphertext, c.Decrypt)
}

func (c *Cipher[W]) apply(in []byte, crypt func(dst, src []byte)) ([]byte, error) {
	if err := c.checkLen(len(in)); err != nil {
		return nil, err
	}
	bs := c.BlockSize()
	out := make([]byte, len(in))
	for off := 0; off < len(in); off += bs {
		crypt(out[off:off+bs], in[off:off+bs])
	}
	return out, nil
}

func (c *Cipher[W]) checkLen(n int) error {
	if bs := c.BlockSize(); n%bs != 0 {
		return &BlockLengthError{Len: n, BlockSize: bs}
	}
	return nil
}

// EncodeParallel is Encode with the blocks fanned out across worker
// goroutines. Blocks carry no dependency on each other, so the result is
// byte-identical to Encode. workers <= 0 means one worker per CPU.
func (c *Cipher[W]) EncodeParallel(plaintext []byte, workers int) ([]byte, error) {
	return c.applyParallel(plaintext, workers, c.Encrypt)
}

// DecodeParallel is the parallel counterpart of Decode.
func (c *Cipher[W]) DecodeParallel(ciphertext []byte, workers int) ([]byte, error) {
	return c.applyParallel(ciphertext, workers, c.Decrypt)
}

func (c *Cipher[W]) applyParallel(in []byte, workers int, crypt func(dst, src []byte)) ([]byte, error) {
	if err := c.checkLen(len(in)); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	bs := c.BlockSize()
	blocks := len(in) / bs
	out := make([]byte, len(in))
	if blocks == 0 {
		return out, nil
	}

	// Contiguous block ranges, one per worker; each goroutine writes only
	// its own output offsets.
	per := (blocks + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < blocks; start += per {
		end := min(start+per, blocks)
		lo, hi := start*bs, end*bs
		g.Go(func() error {
			for off := lo; off < hi; off += bs {
				crypt(out[off:off+bs], in[off:off+bs])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Encode is the one-shot form: expand key, encrypt, done.
func Encode[W Word](plaintext, key []byte, rounds int) ([]byte, error) {
	c, err := NewCipher[W](key, rounds)
	if err != nil {
		return nil, err
	}
	return c.Encode(plaintext)
}

// Decode is the one-shot counterpart of Encode.
func Decode[W Word](ciphertext, key []byte, rounds int) ([]byte, error) {
	c, err := NewCipher[W](key, rounds)
	if err != nil {
		return nil, err
	}
	return c.Decode(ciphertext)
}

package rc5

import "fmt"

const (
	// MaxKeyLen is the longest supported key in bytes.
	MaxKeyLen = 255
	// MaxRounds is the largest supported round count.
	MaxRounds = 255
)

// KeyLengthError reports a key longer than MaxKeyLen bytes.
type KeyLengthError struct {
	Len int
}

func (e *KeyLengthError) Error() string {
	return fmt.Sprintf("rc5: key length %d exceeds the %d byte maximum", e.Len, MaxKeyLen)
}

// BlockLengthError reports a buffer whose length is not a multiple of the
// cipher block size.
type BlockLengthError struct {
	Len       int
	BlockSize int
}

func (e *BlockLengthError) Error() string {
	return fmt.Sprintf("rc5: buffer length %d is not a multiple of the %d byte block size", e.Len, e.BlockSize)
}

// RoundCountError reports a round count outside [0, MaxRounds].
type RoundCountError struct {
	Rounds int
}

func (e *RoundCountError) Error() string {
	return fmt.Sprintf("rc5: round count %d outside [0, %d]", e.Rounds, MaxRounds)
}

// WordSizeError reports a word width other than 32 or 64 bits.
type WordSizeError struct {
	Bits int
}

func (e *WordSizeError) Error() string {
	return fmt.Sprintf("rc5: unsupported word size %d bits, want 32 or 64", e.Bits)
}

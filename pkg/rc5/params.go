package rc5

// Params selects an RC5 instantiation at runtime. Callers that know the word
// width at compile time should use the generic API directly; Params exists
// for adapters (the CLI) where the width arrives as data.
type Params struct {
	WordBits int
	Rounds   int
}

// DefaultParams returns the nominal RC5-32/12 parameterization.
func DefaultParams() Params { return Params{WordBits: 32, Rounds: 12} }

// Validate checks the parameter ranges before any schedule work runs.
func (p Params) Validate() error {
	if p.WordBits != 32 && p.WordBits != 64 {
		return &WordSizeError{Bits: p.WordBits}
	}
	if p.Rounds < 0 || p.Rounds > MaxRounds {
		return &RoundCountError{Rounds: p.Rounds}
	}
	return nil
}

// WordBytes returns the word size in bytes.
func (p Params) WordBytes() int { return p.WordBits / 8 }

// BlockSize returns the block size in bytes (two words).
func (p Params) BlockSize() int { return 2 * p.WordBytes() }

// EncodeWith encrypts plaintext under runtime-selected parameters,
// dispatching to the matching word width.
func EncodeWith(p Params, plaintext, key []byte) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.WordBits == 64 {
		return Encode[uint64](plaintext, key, p.Rounds)
	}
	return Encode[uint32](plaintext, key, p.Rounds)
}

// DecodeWith is the decryption counterpart of EncodeWith.
func DecodeWith(p Params, ciphertext, key []byte) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.WordBits == 64 {
		return Decode[uint64](ciphertext, key, p.Rounds)
	}
	return Decode[uint32](ciphertext, key, p.Rounds)
}

package rc5

// ExpandKey derives the subkey table for the given key and round count.
// The table has 2*(rounds+1) words and is a pure function of its inputs:
// the same key and round count always produce the same table. Keys may be
// 0 to 255 bytes; an empty key is treated as a single zero word.
func ExpandKey[W Word](key []byte, rounds int) ([]W, error) {
	if len(key) > MaxKeyLen {
		return nil, &KeyLengthError{Len: len(key)}
	}
	if rounds < 0 || rounds > MaxRounds {
		return nil, &RoundCountError{Rounds: rounds}
	}
	return expandKey[W](key, rounds), nil
}

// expandKey runs the schedule on already validated input.
func expandKey[W Word](key []byte, rounds int) []W {
	u := wordBytes[W]()
	t := 2 * (rounds + 1)

	// Split the key into little-endian words, zero padding the last word
	// when the length is not a multiple of the word size.
	c := (len(key) + u - 1) / u
	if c == 0 {
		c = 1
	}
	L := make([]W, c)
	for i := len(key) - 1; i >= 0; i-- {
		L[i/u] = L[i/u]<<8 | W(key[i])
	}

	// Seed the table from the magic constants.
	p, q := magic[W]()
	S := make([]W, t)
	S[0] = p
	for i := 1; i < t; i++ {
		S[i] = S[i-1] + q
	}

	// Mix the key words into the table.
	var a, b W
	i, j := 0, 0
	for n := 3 * max(t, c); n > 0; n-- {
		a = rotl(S[i]+a+b, 3)
		S[i] = a
		b = rotl(L[j]+a+b, uint(a+b))
		L[j] = b
		i = (i + 1) % t
		j = (j + 1) % c
	}
	return S
}

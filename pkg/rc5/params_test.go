package rc5

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	require.Equal(t, 32, p.WordBits)
	require.Equal(t, 12, p.Rounds)
	require.Equal(t, 8, p.BlockSize())
	require.Equal(t, 4, p.WordBytes())
}

func TestParamsValidate(t *testing.T) {
	require.NoError(t, Params{WordBits: 32, Rounds: 0}.Validate())
	require.NoError(t, Params{WordBits: 64, Rounds: 255}.Validate())

	var wsErr *WordSizeError
	err := Params{WordBits: 16, Rounds: 12}.Validate()
	require.ErrorAs(t, err, &wsErr)
	require.Equal(t, 16, wsErr.Bits)

	var rcErr *RoundCountError
	err = Params{WordBits: 32, Rounds: 256}.Validate()
	require.ErrorAs(t, err, &rcErr)
	require.Equal(t, 256, rcErr.Rounds)

	err = Params{WordBits: 32, Rounds: -1}.Validate()
	require.ErrorAs(t, err, &rcErr)
}

func TestEncodeWithDispatch(t *testing.T) {
	key := fill(16)

	for _, p := range []Params{
		{WordBits: 32, Rounds: 12},
		{WordBits: 64, Rounds: 12},
	} {
		plaintext := fill(4 * p.BlockSize())
		ct, err := EncodeWith(p, plaintext, key)
		require.NoError(t, err)
		require.Len(t, ct, len(plaintext))
		require.NotEqual(t, plaintext, ct)

		pt, err := DecodeWith(p, ct, key)
		require.NoError(t, err)
		require.Equal(t, plaintext, pt)
	}
}

func TestEncodeWithAgreesWithGenericAPI(t *testing.T) {
	key := fill(16)
	plaintext := fill(32)

	viaParams, err := EncodeWith(Params{WordBits: 32, Rounds: 12}, plaintext, key)
	require.NoError(t, err)
	viaGeneric, err := Encode[uint32](plaintext, key, 12)
	require.NoError(t, err)
	require.Equal(t, viaGeneric, viaParams)
}

func TestEncodeWithRejectsBadParams(t *testing.T) {
	_, err := EncodeWith(Params{WordBits: 48, Rounds: 12}, fill(8), fill(16))
	require.Error(t, err)
	_, err = DecodeWith(Params{WordBits: 32, Rounds: 300}, fill(8), fill(16))
	require.Error(t, err)
}

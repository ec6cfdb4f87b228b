package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rc5-go/pkg/rc5"
)

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.Key = "000102030405060708090a0b0c0d0e0f"
	return cfg
}

func TestProcessKnownAnswer(t *testing.T) {
	ct, err := process(testConfig(), "encode", "0011223344556677", rc5.EncodeWith)
	require.NoError(t, err)
	require.Equal(t, "2ddc149bcf088b9e", ct)

	pt, err := process(testConfig(), "decode", ct, rc5.DecodeWith)
	require.NoError(t, err)
	require.Equal(t, "0011223344556677", pt)
}

func TestProcessTrimsWhitespace(t *testing.T) {
	ct, err := process(testConfig(), "encode", "  0011223344556677\n", rc5.EncodeWith)
	require.NoError(t, err)
	require.Equal(t, "2ddc149bcf088b9e", ct)
}

func TestProcessRejectsBadHex(t *testing.T) {
	_, err := process(testConfig(), "encode", "zz", rc5.EncodeWith)
	require.Error(t, err)

	cfg := testConfig()
	cfg.Key = "not hex"
	_, err = process(cfg, "encode", "0011223344556677", rc5.EncodeWith)
	require.Error(t, err)
}

func TestProcessRejectsPartialBlock(t *testing.T) {
	_, err := process(testConfig(), "encode", "001122", rc5.EncodeWith)
	var blErr *rc5.BlockLengthError
	require.ErrorAs(t, err, &blErr)
	require.Equal(t, 3, blErr.Len)
	require.Equal(t, 8, blErr.BlockSize)
}

func TestProcessRejectsBadParams(t *testing.T) {
	cfg := testConfig()
	cfg.WordBits = 48
	_, err := process(cfg, "encode", "0011223344556677", rc5.EncodeWith)
	var wsErr *rc5.WordSizeError
	require.ErrorAs(t, err, &wsErr)
}

func TestProcessWordSize64(t *testing.T) {
	cfg := testConfig()
	cfg.WordBits = 64

	ct, err := process(cfg, "encode", "00112233445566778899aabbccddeeff", rc5.EncodeWith)
	require.NoError(t, err)
	require.Len(t, ct, 32)

	pt, err := process(cfg, "decode", ct, rc5.DecodeWith)
	require.NoError(t, err)
	require.Equal(t, "00112233445566778899aabbccddeeff", pt)
}

func TestDefaultConfigMatchesNominalParams(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, 32, cfg.WordBits)
	require.Equal(t, 12, cfg.Rounds)
}

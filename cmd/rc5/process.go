package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"rc5-go/pkg/hexdump"
	"rc5-go/pkg/log"
	"rc5-go/pkg/rc5"
	"rc5-go/pkg/secret"
)

// bufferOp is either rc5.EncodeWith or rc5.DecodeWith.
type bufferOp func(rc5.Params, []byte, []byte) ([]byte, error)

// process decodes hexIn, runs op under cfg's parameters and returns the
// result as lowercase hex. The key material is wiped before returning on
// every path, including validation failures.
func process(cfg *Config, name, hexIn string, op bufferOp) (string, error) {
	params := rc5.Params{WordBits: cfg.WordBits, Rounds: cfg.Rounds}
	if err := params.Validate(); err != nil {
		return "", err
	}

	key, err := secret.FromHex(cfg.Key)
	if err != nil {
		return "", fmt.Errorf("bad hex key: %w", err)
	}
	defer key.Destroy()

	data, err := hex.DecodeString(strings.TrimSpace(hexIn))
	if err != nil {
		return "", fmt.Errorf("%s: bad hex input: %w", name, err)
	}

	log.Debug().
		Str("op", name).
		Int("word_size", params.WordBits).
		Int("rounds", params.Rounds).
		Int("key_bytes", key.Len()).
		Int("input_bytes", len(data)).
		Msg("running")

	var out []byte
	err = key.WithBytes(func(kb []byte) error {
		var opErr error
		out, opErr = op(params, data, kb)
		return opErr
	})
	if err != nil {
		return "", err
	}

	if cfg.Verbose {
		log.Debug().Msg("output buffer\n" + hexdump.Dump(out))
	}
	return hex.EncodeToString(out), nil
}

// Package secret holds sensitive byte material behind a scoped accessor
// with an explicit wipe. Key bytes enter a Bytes value once, are exposed
// only inside WithBytes callbacks, and are zeroed by Destroy.
package secret

import (
	"encoding/hex"
	"errors"
)

// ErrDestroyed is returned when a destroyed value is accessed.
var ErrDestroyed = errors.New("secret: value already destroyed")

// Bytes owns a private copy of sensitive material. Pair every acquisition
// with a deferred Destroy so the wipe runs on early returns too. A Bytes is
// not safe for concurrent use.
type Bytes struct {
	buf       []byte
	destroyed bool
}

// New copies b into a fresh container. The caller keeps ownership of b and
// should wipe it separately if it is sensitive.
func New(b []byte) *Bytes {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &Bytes{buf: buf}
}

// FromHex decodes a hex string into a container, wiping the intermediate
// decode buffer before returning.
func FromHex(s string) (*Bytes, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	sb := New(raw)
	wipe(raw)
	return sb, nil
}

// Len returns the length of the material in bytes.
func (s *Bytes) Len() int { return len(s.buf) }

// WithBytes exposes the material to f for the duration of the call.
// f must not retain the slice.
func (s *Bytes) WithBytes(f func([]byte) error) error {
	if s.destroyed {
		return ErrDestroyed
	}
	return f(s.buf)
}

// Destroy zeroes the material and marks the value dead. Idempotent.
func (s *Bytes) Destroy() {
	if s.destroyed {
		return
	}
	wipe(s.buf)
	s.destroyed = true
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

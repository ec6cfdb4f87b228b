// Package hexdump renders byte buffers as offset/hex/ASCII rows for debug
// output.
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

const bytesPerRow = 16

// Fdump writes a formatted hex dump of data to w.
func Fdump(w io.Writer, data []byte) error {
	for off := 0; off < len(data); off += bytesPerRow {
		end := min(off+bytesPerRow, len(data))
		row := data[off:end]

		if _, err := fmt.Fprintf(w, "%08x  ", off); err != nil {
			return err
		}
		for i := 0; i < bytesPerRow; i++ {
			if i < len(row) {
				if _, err := fmt.Fprintf(w, "%02x ", row[i]); err != nil {
					return err
				}
			} else if _, err := io.WriteString(w, "   "); err != nil {
				return err
			}
			// Extra gap after eight bytes.
			if i == 7 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
		}
		if _, err := io.WriteString(w, " |"); err != nil {
			return err
		}
		for _, b := range row {
			c := byte('.')
			if b >= 0x20 && b <= 0x7e {
				c = b
			}
			if _, err := w.Write([]byte{c}); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "|\n"); err != nil {
			return err
		}
	}
	return nil
}

// Dump returns the hex dump of data as a string.
func Dump(data []byte) string {
	var sb strings.Builder
	// strings.Builder writes cannot fail.
	_ = Fdump(&sb, data)
	return sb.String()
}

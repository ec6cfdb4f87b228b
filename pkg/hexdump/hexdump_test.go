package hexdump

import (
	"strings"
	"testing"
)

func TestDumpSingleRow(t *testing.T) {
	got := Dump([]byte("ABCDEFGH"))
	want := "00000000  41 42 43 44 45 46 47 48  " + strings.Repeat("   ", 8) + " |ABCDEFGH|\n"
	if got != want {
		t.Errorf("unexpected dump:\n got: %q\nwant: %q", got, want)
	}
}

func TestDumpMultipleRows(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i)
	}
	got := Dump(data)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows for 40 bytes, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "00000010  ") {
		t.Errorf("second row offset wrong: %q", lines[1])
	}
	// Non printable bytes map to dots.
	if !strings.HasSuffix(lines[0], "|................|") {
		t.Errorf("ASCII gutter wrong: %q", lines[0])
	}
}

func TestDumpEmpty(t *testing.T) {
	if got := Dump(nil); got != "" {
		t.Errorf("expected empty dump, got %q", got)
	}
}

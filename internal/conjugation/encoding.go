package conjugation

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// repairEncoding reverses the engine's known mis-transcoding: UTF-8 bytes
// reinterpreted as Latin-1. Re-encoding the string as Latin-1 recovers the
// original byte stream; if those bytes decode as UTF-8 the repaired string is
// used, otherwise the input is returned unchanged. Never fails.
func repairEncoding(s string) string {
	b, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// Contains runes outside Latin-1; cannot be mojibake of that kind.
		return s
	}
	if !utf8.Valid(b) {
		return s
	}
	repaired := string(b)
	if repaired == s {
		return s
	}
	return repaired
}

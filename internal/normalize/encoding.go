package normalize

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"stowsort/internal/logger"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DefaultEncodings are tried when no hints are configured
var DefaultEncodings = []string{"utf-8", "euc-kr", "windows-1252"}

// decodeText converts raw bytes to a UTF-8 string.
// Valid UTF-8 is returned as is; otherwise each hinted charset is tried in
// order and the first decoding that yields valid UTF-8 wins.
func decodeText(raw []byte, hints []string) (string, string) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw), "utf-8"
	}

	if len(hints) == 0 {
		hints = DefaultEncodings
	}

	for _, name := range hints {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "utf-8" || name == "utf8" {
			continue
		}

		enc, err := htmlindex.Get(name)
		if err != nil {
			logger.Debug("Unknown encoding hint %q ignored", name)
			continue
		}

		decoded, _, err := transform.Bytes(enc.NewDecoder(), raw)
		if err != nil || !utf8.Valid(decoded) {
			continue
		}
		return string(decoded), name
	}

	// Nothing fit; keep what we can
	return string(bytes.ToValidUTF8(raw, []byte("�"))), "utf-8 (lossy)"
}

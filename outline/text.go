package outline

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/pdfweld/pdfweld/core"
)

// DecodeText decodes a PDF text string into UTF-8. Text strings are
// either UTF-16BE with a leading byte order mark, or PDFDocEncoding,
// which agrees with Latin-1 over the range bookmark titles use.
func DecodeText(s core.String) string {
	b := []byte(s)
	if len(b) >= 2 && b[0] == 0xFE && b[1] == 0xFF {
		decoded, err := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Bytes(b)
		if err == nil {
			return string(decoded)
		}
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}

// textOf extracts a decoded string from a text object. Names are
// accepted as well since name-tree keys and some producers use them
// interchangeably with strings.
func textOf(obj core.Object) (string, bool) {
	switch v := obj.(type) {
	case core.String:
		return DecodeText(v), true
	case core.Name:
		return string(v), true
	default:
		return "", false
	}
}

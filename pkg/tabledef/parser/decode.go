package parser

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// DefaultEncoding is the expected input encoding.
const DefaultEncoding = "utf-8"

// ErrInvalidEncoding indicates the input is not valid text in the requested encoding.
var ErrInvalidEncoding = errors.New("input is not valid text")

// ErrUnknownEncoding indicates an unsupported encoding label.
var ErrUnknownEncoding = errors.New("unknown encoding")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode converts raw document bytes to text. UTF-8 input is validated
// strictly; other labels (euc-kr, utf-16le, windows-1252, ...) are resolved
// through the WHATWG encoding index.
func Decode(data []byte, encoding string) (string, error) {
	label := strings.ToLower(strings.TrimSpace(encoding))
	if label == "" || label == "utf-8" || label == "utf8" {
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: invalid utf-8 at byte %d", ErrInvalidEncoding, invalidOffset(data))
		}
		return string(data), nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownEncoding, encoding)
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return string(bytes.TrimPrefix(out, utf8BOM)), nil
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(data)
}

package textutil

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
)

const utf8Name = "UTF-8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// chardet reports a few names the WHATWG index spells differently.
var charsetAliases = map[string]string{
	"gb-18030":    "gb18030",
	"iso-2022-cn": "gb18030",
}

// DetectEncoding returns the charset name of data. Valid UTF-8 input is
// reported as UTF-8 without consulting the detector.
func DetectEncoding(data []byte) string {
	if bytes.HasPrefix(data, utf8BOM) || utf8.Valid(data) {
		return utf8Name
	}
	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil || result.Charset == "" {
		return utf8Name
	}
	return result.Charset
}

// Decode converts data to UTF-8 and returns the text with the charset used.
// Undecodable bytes are dropped.
func Decode(data []byte) (string, string) {
	data = bytes.TrimPrefix(data, utf8BOM)
	charset := DetectEncoding(data)
	if charset == utf8Name {
		return strings.ToValidUTF8(string(data), ""), charset
	}
	name := strings.ToLower(charset)
	if alias, ok := charsetAliases[name]; ok {
		name = alias
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return strings.ToValidUTF8(string(data), ""), charset
	}
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), ""), charset
	}
	text := strings.ToValidUTF8(string(decoded), "")
	return strings.TrimPrefix(text, "\ufeff"), charset
}

// ReadText reads path and decodes it with Decode.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	text, _ := Decode(data)
	return text, nil
}

package converter

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// decodeText decodes src as UTF-8, replacing each invalid byte with U+FFFD,
// and folds CRLF and lone CR line endings into LF.
func decodeText(src []byte) (string, error) {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(src)
	if err != nil {
		return "", err
	}
	return newlineReplacer.Replace(string(decoded)), nil
}

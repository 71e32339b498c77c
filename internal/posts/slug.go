package posts

import (
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s as a single URL component. Bytes outside
// A-Z a-z 0-9 and - _ . ! ~ * ' ( ) are escaped as UTF-8 octets.
func EncodeComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !isUnreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// Slug strips the final extension from a post filename and, when nfc is set,
// composes it to Unicode NFC before percent-encoding.
func Slug(filename string, nfc bool) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	if nfc {
		base = norm.NFC.String(base)
	}
	return EncodeComponent(base)
}

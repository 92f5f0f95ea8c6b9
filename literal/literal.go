// Package literal builds values from strings hardcoded in the source code.
//
// A malformed literal is a programming error, so constructors panic instead
// of returning an error. Never pass user input or other runtime data here.
package literal

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/xerrors"
)

// URL parses a hardcoded URL. Relative references are allowed, unescaped
// whitespace and control characters are not.
//
//	var docsURL = literal.URL("https://ytsaurus.tech/docs")
func URL(s string) *url.URL {
	if s == "" {
		panic(xerrors.New("literal: empty URL"))
	}
	if i := strings.IndexFunc(s, isForbiddenURLRune); i >= 0 {
		panic(xerrors.Errorf("literal: invalid URL %q: unescaped character %q at %d", s, s[i], i))
	}

	u, err := url.Parse(s)
	if err != nil {
		panic(xerrors.Errorf("literal: invalid URL %q: %w", s, err))
	}
	return u
}

func isForbiddenURLRune(r rune) bool {
	return r <= ' ' || r == 0x7f
}

// String returns hardcoded string s, checking that it is valid UTF-8.
func String(s string) string {
	if !utf8.ValidString(s) {
		panic(xerrors.Errorf("literal: string %q is not valid UTF-8", s))
	}
	return s
}

// Package drop decodes the text a terminal emits when files are dragged onto it.
//
// Terminals differ: some paste file:// URIs one per line, others paste
// shell-quoted or backslash-escaped paths separated by spaces, and a path
// pasted from a file manager's clipboard arrives unquoted.
package drop

import (
	"net/url"
	"os"
	"regexp"
	"strings"
)

var schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*://`)

// Paths returns the local paths in payload, in order. Non-file URIs are skipped.
// A single-line payload naming an existing file is taken verbatim.
func Paths(payload string) []string {
	if p, ok := existingFile(payload); ok {
		return []string{p}
	}
	var paths []string
	for _, tok := range tokenize(payload) {
		if p, ok := localPath(tok); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

// existingFile reports whether the whole trimmed payload is the path of a
// file on disk, so unquoted spaces, quotes and backslashes survive.
func existingFile(payload string) (string, bool) {
	p := strings.TrimSpace(payload)
	if p == "" || strings.ContainsAny(p, "\r\n") || schemePattern.MatchString(p) {
		return "", false
	}
	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return "", false
	}
	return p, true
}

func localPath(tok string) (string, bool) {
	if tok == "" {
		return "", false
	}
	if !schemePattern.MatchString(tok) {
		return tok, true
	}
	u, err := url.Parse(tok)
	if err != nil || !strings.EqualFold(u.Scheme, "file") {
		return "", false
	}
	if u.Host != "" && !strings.EqualFold(u.Host, "localhost") {
		return "", false
	}
	if u.Path == "" {
		return "", false
	}
	return u.Path, true
}

// tokenize splits on unquoted whitespace, honouring single quotes, double
// quotes and backslash escapes the way a POSIX shell would.
func tokenize(s string) []string {
	var (
		tokens []string
		cur    strings.Builder
		inTok  bool
		quote  rune
		escape bool
	)
	flush := func() {
		if inTok {
			tokens = append(tokens, cur.String())
		}
		cur.Reset()
		inTok = false
	}

	for _, r := range s {
		switch {
		case escape:
			cur.WriteRune(r)
			escape = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case quote == '"':
			switch r {
			case '"':
				quote = 0
			case '\\':
				escape = true
			default:
				cur.WriteRune(r)
			}
		case r == '\\':
			escape = true
			inTok = true
		case r == '\'' || r == '"':
			quote = r
			inTok = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
			inTok = true
		}
	}
	flush()
	return tokens
}

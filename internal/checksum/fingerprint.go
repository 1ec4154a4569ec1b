package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Raw computes the SHA-256 of the exact content.
func Raw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Normalized computes the SHA-256 of the content after normalization:
// lowercase, SQL comments removed, whitespace collapsed to single spaces,
// leading and trailing whitespace trimmed.
func Normalized(content []byte) string {
	hash := sha256.Sum256([]byte(normalize(string(content))))
	return hex.EncodeToString(hash[:])
}

// Equivalent reports whether two contents share a normalized fingerprint,
// meaning any byte-level difference between them is formatting or comments.
func Equivalent(a, b []byte) bool {
	return normalize(string(a)) == normalize(string(b))
}

func normalize(content string) string {
	cleaned := stripComments(content)

	var b strings.Builder
	b.Grow(len(cleaned))

	lastWasSpace := false
	for _, r := range cleaned {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			b.WriteRune(unicode.ToLower(r))
			lastWasSpace = false
		}
	}

	return strings.TrimSpace(b.String())
}

type scanState int

const (
	stateText scanState = iota
	stateLineComment
	stateBlockComment
	stateQuoted
)

// stripComments removes -- line comments and /* */ block comments, keeping
// single-quoted string literals intact. Block comments nest, matching
// PostgreSQL's rules.
func stripComments(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := stateText
	blockDepth := 0
	i := 0

	for i < len(content) {
		ch := content[i]
		var next byte
		if i+1 < len(content) {
			next = content[i+1]
		}

		switch state {
		case stateText:
			switch {
			case ch == '-' && next == '-':
				state = stateLineComment
				b.WriteByte(' ')
				i += 2
			case ch == '/' && next == '*':
				state = stateBlockComment
				blockDepth = 1
				b.WriteByte(' ')
				i += 2
			case ch == '\'':
				state = stateQuoted
				b.WriteByte(ch)
				i++
			default:
				b.WriteByte(ch)
				i++
			}

		case stateLineComment:
			if ch == '\n' {
				b.WriteByte(ch)
				state = stateText
			}
			i++

		case stateBlockComment:
			switch {
			case ch == '/' && next == '*':
				blockDepth++
				i += 2
			case ch == '*' && next == '/':
				blockDepth--
				i += 2
				if blockDepth == 0 {
					state = stateText
				}
			default:
				i++
			}

		case stateQuoted:
			b.WriteByte(ch)
			if ch == '\'' {
				// '' is an escaped quote inside the literal.
				if next == '\'' {
					b.WriteByte(next)
					i += 2
					continue
				}
				state = stateText
			}
			i++
		}
	}

	return b.String()
}

package fastpane

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const tabSpaces = "   "

// ExtractAnsiCode extracts an escape sequence starting at pos.
// It recognises three kinds:
//   - CSI: ESC [ params final, the final byte in 0x40-0x7e (ESC[31m, ESC[2J)
//   - OSC: ESC ] ... BEL or ESC \ (hyperlinks, titles)
//   - APC: ESC _ ... BEL or ESC \
//
// It returns the sequence, its length in bytes and whether one was found.
func ExtractAnsiCode(s string, pos int) (code string, length int, ok bool) {
	if pos+1 >= len(s) || s[pos] != '\x1b' {
		return "", 0, false
	}

	switch s[pos+1] {
	case '[':
		for j := pos + 2; j < len(s); j++ {
			if s[j] >= 0x40 && s[j] <= 0x7e {
				return s[pos : j+1], j + 1 - pos, true
			}
		}
		return "", 0, false
	case ']', '_':
		return extractStringSequence(s, pos)
	}
	return "", 0, false
}

func extractStringSequence(s string, pos int) (code string, length int, ok bool) {
	for j := pos + 2; j < len(s); j++ {
		if s[j] == '\x07' {
			return s[pos : j+1], j + 1 - pos, true
		}
		if s[j] == '\x1b' && j+1 < len(s) && s[j+1] == '\\' {
			return s[pos : j+2], j + 2 - pos, true
		}
	}
	return "", 0, false
}

// Sanitize makes provider text safe to place on the grid: escape sequences
// and control characters are removed and a tab becomes three spaces, so every
// remaining rune occupies exactly one cell.
func Sanitize(s string) string {
	if utf8.ValidString(s) && !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			if _, n, ok := ExtractAnsiCode(s, i); ok {
				i += n
				continue
			}
			// a lone or unfinished escape is dropped by itself
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == '\t':
			b.WriteString(tabSpaces)
		case unicode.IsControl(r):
		case r == utf8.RuneError && size == 1:
			// undecodable byte; a literal U+FFFD decodes with size 3 and is kept
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

package syntax

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/palantir/tslint-sub000/internal/charclass"
)

func computeValue(kind Kind, text string) any {
	switch kind {
	case TrueKeyword:
		return true
	case FalseKeyword:
		return false
	case NullKeyword:
		return nil
	case NumericLiteral:
		return numericValue(text)
	case StringLiteral:
		return stringValue(text)
	case IdentifierName:
		return DecodeEscapes(text)
	}
	if kind.IsKeyword() {
		return DecodeEscapes(text)
	}
	return text
}

func valueText(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return ""
}

func numericValue(text string) float64 {
	if len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		u, err := strconv.ParseUint(text[2:], 16, 64)
		if err != nil {
			f, _ := strconv.ParseFloat(text, 64)
			return f
		}
		return float64(u)
	}
	if isLegacyOctal(text) {
		u, _ := strconv.ParseUint(text[1:], 8, 64)
		return float64(u)
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// "1e" and friends: take the longest prefix that parses
		for end := len(text) - 1; end > 0; end-- {
			if f, err = strconv.ParseFloat(text[:end], 64); err == nil {
				return f
			}
		}
		return 0
	}
	return f
}

func isLegacyOctal(text string) bool {
	if len(text) < 2 || text[0] != '0' {
		return false
	}
	for i := 1; i < len(text); i++ {
		if text[i] < '0' || text[i] > '7' {
			return false
		}
	}
	return true
}

func stringValue(text string) string {
	if text == "" {
		return ""
	}
	quote := text[0]
	body := text[1:]
	if n := len(body); n > 0 && body[n-1] == quote {
		body = body[:n-1]
	}
	return DecodeEscapes(body)
}

// DecodeEscapes resolves backslash escapes as they appear in identifiers and
// string literals. Malformed \x and \u escapes are kept verbatim.
func DecodeEscapes(s string) string {
	i := strings.IndexByte(s, '\\')
	if i < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteString(s[:i])
	for i < len(s) {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			sb.WriteByte(c)
			break
		}
		e := s[i+1]
		i += 2
		switch e {
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			if i < len(s) && s[i] >= '0' && s[i] <= '9' {
				sb.WriteByte('0')
			} else {
				sb.WriteByte(0)
			}
		case 'x', 'u':
			n := 2
			if e == 'u' {
				n = 4
			}
			if r, ok := hexRune(s, i, n); ok {
				sb.WriteRune(r)
				i += n
			} else {
				sb.WriteByte('\\')
				sb.WriteByte(e)
			}
		case '\r':
			// line continuation, \r\n counts as one terminator
			if i < len(s) && s[i] == '\n' {
				i++
			}
		case '\n':
		default:
			if e >= utf8.RuneSelf {
				r, size := utf8.DecodeRuneInString(s[i-1:])
				i += size - 1
				if r == 0x2028 || r == 0x2029 {
					continue
				}
				sb.WriteRune(r)
				continue
			}
			sb.WriteByte(e)
		}
	}
	return sb.String()
}

func hexRune(s string, at, n int) (rune, bool) {
	if at+n > len(s) {
		return 0, false
	}
	var r rune
	for j := at; j < at+n; j++ {
		d := charclass.HexValue(s[j])
		if d < 0 {
			return 0, false
		}
		r = r<<4 | rune(d)
	}
	return r, true
}

// Package regexcheck validates the bodies of regular expression literals.
//
// Bodies are compiled with coregex. Constructs coregex does not implement
// (lookaround, backreferences) cannot be verified and are skipped.
package regexcheck

import (
	"errors"
	"fmt"
	"regexp/syntax"
	"strings"
	"sync"

	"github.com/coregx/coregex"

	"github.com/palantir/tslint-sub000/internal/charclass"
	"github.com/palantir/tslint-sub000/internal/diag"
	tsyntax "github.com/palantir/tslint-sub000/internal/syntax"
)

// validFlags are the flags a regular expression literal may carry.
const validFlags = "gim"

// Checker caches compile results per literal text. It is safe for
// concurrent use, so one checker can serve every file of a run.
type Checker struct {
	cache   sync.Map // literal text -> string ("" when valid)
	orderMu sync.Mutex
	order   []string
	maxSize int
}

// NewChecker creates a checker that remembers at most maxSize literals.
func NewChecker(maxSize int) *Checker {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &Checker{order: make([]string, 0, maxSize), maxSize: maxSize}
}

var defaultChecker = NewChecker(0)

// Check reports every invalid literal among tokens with the default checker.
func Check(tokens []*tsyntax.Token, sink diag.Sink) int {
	return defaultChecker.Check(tokens, sink)
}

// Check walks a scanned token stream, whose first token starts at offset
// 0, and reports an InvalidRegularExpression warning for each literal that
// does not compile. It returns the number of reports.
func (c *Checker) Check(tokens []*tsyntax.Token, sink diag.Sink) int {
	reported := 0
	pos := 0
	for _, tok := range tokens {
		if tok.Kind() == tsyntax.RegularExpressionLiteral {
			if msg := c.Validate(tok.Text()); msg != "" {
				sink.Add(diag.New(pos+tok.LeadingTriviaWidth(), tok.Width(), diag.InvalidRegularExpression, msg))
				reported++
			}
		}
		pos += tok.FullWidth()
	}
	return reported
}

// Validate returns an empty string for a valid literal such as "/a+/g", or
// a short description of the problem.
func (c *Checker) Validate(literal string) string {
	if v, ok := c.cache.Load(literal); ok {
		return v.(string)
	}
	msg := validate(literal)
	if _, loaded := c.cache.LoadOrStore(literal, msg); loaded {
		return msg
	}

	c.orderMu.Lock()
	c.order = append(c.order, literal)
	for len(c.order) > c.maxSize {
		c.cache.Delete(c.order[0])
		c.order = c.order[1:]
	}
	c.orderMu.Unlock()
	return msg
}

// Len returns the number of cached literals.
func (c *Checker) Len() int {
	c.orderMu.Lock()
	defer c.orderMu.Unlock()
	return len(c.order)
}

func validate(literal string) string {
	body, flags, ok := split(literal)
	if !ok {
		return "not a regular expression literal"
	}
	var inline strings.Builder
	for i, f := range flags {
		if !strings.ContainsRune(validFlags, f) || strings.ContainsRune(flags[:i], f) {
			return "invalid flag '" + string(f) + "'"
		}
		if f == 'i' || f == 'm' {
			inline.WriteRune(f)
		}
	}
	if body == "" {
		return "empty pattern"
	}
	if unverifiable(body) {
		return ""
	}

	pattern := translate(body)
	if inline.Len() > 0 {
		pattern = "(?" + inline.String() + ")" + body
	}
	if _, err := coregex.Compile(pattern); err != nil {
		return describe(err)
	}
	return ""
}

// split separates "/body/flags" at the last slash.
func split(literal string) (body, flags string, ok bool) {
	if len(literal) < 2 || literal[0] != '/' {
		return "", "", false
	}
	end := strings.LastIndexByte(literal, '/')
	if end == 0 {
		return "", "", false
	}
	return literal[1:end], literal[end+1:], true
}

// translate rewrites the JavaScript-only spellings of a body into their
// RE2 equivalents: \uXXXX, \cX, \0, [^] (any character) and [] (no
// character). Malformed \u and \x escapes match the letter itself.
func translate(body string) string {
	var sb strings.Builder
	inClass := false
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body):
			i++
			switch e := body[i]; {
			case e == 'u':
				if i+4 < len(body) && isHex(body[i+1:i+5]) {
					sb.WriteString(`\x{` + body[i+1:i+5] + "}")
					i += 4
				} else {
					sb.WriteByte('u')
				}
			case e == 'x':
				if i+2 < len(body) && isHex(body[i+1:i+3]) {
					sb.WriteString(`\x` + body[i+1:i+3])
					i += 2
				} else {
					sb.WriteByte('x')
				}
			case e == 'c' && i+1 < len(body) && isASCIILetter(body[i+1]):
				fmt.Fprintf(&sb, `\x%02X`, body[i+1]%32)
				i++
			case e == '0' && (i+1 >= len(body) || body[i+1] < '0' || body[i+1] > '9'):
				sb.WriteString(`\x00`)
			case isASCIILetter(e) && !strings.ContainsRune(jsEscapeLetters, rune(e)):
				// \e, \p, \A и т.п. в JS означают саму букву
				sb.WriteByte(e)
			default:
				sb.WriteByte('\\')
				sb.WriteByte(e)
			}
		case !inClass && c == '[' && strings.HasPrefix(body[i:], "[^]"):
			sb.WriteString(`[\s\S]`)
			i += 2
		case !inClass && c == '[' && strings.HasPrefix(body[i:], "[]"):
			sb.WriteString(`[^\x00-\x{10FFFF}]`)
			i++
		case c == '[' && !inClass:
			inClass = true
			sb.WriteByte(c)
		case c == ']' && inClass:
			inClass = false
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// jsEscapeLetters are the letters with a meaning after a backslash, apart
// from the c, u and x escapes handled separately.
const jsEscapeLetters = "bBdDfnrsStvwW"

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		if !charclass.IsHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isASCIILetter(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// unverifiable reports lookaround and backreferences.
func unverifiable(body string) bool {
	if strings.Contains(body, "(?=") || strings.Contains(body, "(?!") {
		return true
	}
	for i := 0; i+1 < len(body); i++ {
		if body[i] != '\\' {
			continue
		}
		if next := body[i+1]; next >= '1' && next <= '9' {
			return true
		}
		i++
	}
	return false
}

func describe(err error) string {
	var se *syntax.Error
	if errors.As(err, &se) {
		return string(se.Code) + ": " + se.Expr
	}
	return err.Error()
}

package diag

import (
	"fmt"
	"strconv"
	"strings"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	UnexpectedCharacter        Code = 1001
	MissingClosingQuote        Code = 1002
	UnrecognizedEscapeSequence Code = 1003
	TokenExpected              Code = 1004
	InvalidRegularExpression   Code = 1005

	// I/O
	IOLoadFile Code = 4001
)

var codeTemplate = map[Code]string{
	UnknownCode:                "Unknown error",
	UnexpectedCharacter:        "Unexpected character {0}.",
	MissingClosingQuote:        "Missing closing quote character.",
	UnrecognizedEscapeSequence: "Unrecognized escape sequence.",
	TokenExpected:              "'{0}' expected.",
	InvalidRegularExpression:   "Invalid regular expression: {0}",
	IOLoadFile:                 "Failed to load file: {0}",
}

var codeSeverity = map[Code]Severity{
	InvalidRegularExpression: SevWarning,
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Template returns the raw message template with its {N} placeholders.
func (c Code) Template() string {
	tpl, ok := codeTemplate[c]
	if !ok {
		return codeTemplate[UnknownCode]
	}
	return tpl
}

// DefaultSeverity is the severity New assigns to diagnostics with this code.
func (c Code) DefaultSeverity() Severity {
	if sev, ok := codeSeverity[c]; ok {
		return sev
	}
	return SevError
}

// Format substitutes {0}, {1}, ... in the template with args. Placeholders
// without a matching argument are left as they are.
func (c Code) Format(args ...string) string {
	tpl := c.Template()
	if len(args) == 0 || !strings.Contains(tpl, "{") {
		return tpl
	}
	var b strings.Builder
	b.Grow(len(tpl))
	for i := 0; i < len(tpl); i++ {
		if tpl[i] == '{' {
			if end := strings.IndexByte(tpl[i:], '}'); end > 1 {
				if n, err := strconv.Atoi(tpl[i+1 : i+end]); err == nil && n >= 0 && n < len(args) {
					b.WriteString(args[n])
					i += end
					continue
				}
			}
		}
		b.WriteByte(tpl[i])
	}
	return b.String()
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Template())
}

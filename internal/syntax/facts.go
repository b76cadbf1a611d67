package syntax

var tokenText = [kindCount]string{
	BreakKeyword:       "break",
	CaseKeyword:        "case",
	CatchKeyword:       "catch",
	ContinueKeyword:    "continue",
	DebuggerKeyword:    "debugger",
	DefaultKeyword:     "default",
	DeleteKeyword:      "delete",
	DoKeyword:          "do",
	ElseKeyword:        "else",
	FalseKeyword:       "false",
	FinallyKeyword:     "finally",
	ForKeyword:         "for",
	FunctionKeyword:    "function",
	IfKeyword:          "if",
	InKeyword:          "in",
	InstanceOfKeyword:  "instanceof",
	NewKeyword:         "new",
	NullKeyword:        "null",
	ReturnKeyword:      "return",
	SwitchKeyword:      "switch",
	ThisKeyword:        "this",
	ThrowKeyword:       "throw",
	TrueKeyword:        "true",
	TryKeyword:         "try",
	TypeOfKeyword:      "typeof",
	VarKeyword:         "var",
	VoidKeyword:        "void",
	WhileKeyword:       "while",
	WithKeyword:        "with",
	ClassKeyword:       "class",
	ConstKeyword:       "const",
	EnumKeyword:        "enum",
	ExportKeyword:      "export",
	ExtendsKeyword:     "extends",
	ImportKeyword:      "import",
	SuperKeyword:       "super",
	ImplementsKeyword:  "implements",
	InterfaceKeyword:   "interface",
	LetKeyword:         "let",
	PackageKeyword:     "package",
	PrivateKeyword:     "private",
	ProtectedKeyword:   "protected",
	PublicKeyword:      "public",
	StaticKeyword:      "static",
	YieldKeyword:       "yield",
	AnyKeyword:         "any",
	BooleanKeyword:     "boolean",
	BoolKeyword:        "bool",
	ConstructorKeyword: "constructor",
	DeclareKeyword:     "declare",
	GetKeyword:         "get",
	ModuleKeyword:      "module",
	NumberKeyword:      "number",
	RequireKeyword:     "require",
	SetKeyword:         "set",
	StringKeyword:      "string",

	OpenBraceToken:                         "{",
	CloseBraceToken:                        "}",
	OpenParenToken:                         "(",
	CloseParenToken:                        ")",
	OpenBracketToken:                       "[",
	CloseBracketToken:                      "]",
	DotToken:                               ".",
	DotDotDotToken:                         "...",
	SemicolonToken:                         ";",
	CommaToken:                             ",",
	LessThanToken:                          "<",
	GreaterThanToken:                       ">",
	LessThanEqualsToken:                    "<=",
	GreaterThanEqualsToken:                 ">=",
	EqualsEqualsToken:                      "==",
	EqualsGreaterThanToken:                 "=>",
	ExclamationEqualsToken:                 "!=",
	EqualsEqualsEqualsToken:                "===",
	ExclamationEqualsEqualsToken:           "!==",
	PlusToken:                              "+",
	MinusToken:                             "-",
	AsteriskToken:                          "*",
	PercentToken:                           "%",
	PlusPlusToken:                          "++",
	MinusMinusToken:                        "--",
	LessThanLessThanToken:                  "<<",
	GreaterThanGreaterThanToken:            ">>",
	GreaterThanGreaterThanGreaterThanToken: ">>>",
	AmpersandToken:                         "&",
	BarToken:                               "|",
	CaretToken:                             "^",
	ExclamationToken:                       "!",
	TildeToken:                             "~",
	AmpersandAmpersandToken:                "&&",
	BarBarToken:                            "||",
	QuestionToken:                          "?",
	ColonToken:                             ":",
	EqualsToken:                            "=",
	PlusEqualsToken:                        "+=",
	MinusEqualsToken:                       "-=",
	AsteriskEqualsToken:                    "*=",
	PercentEqualsToken:                     "%=",
	LessThanLessThanEqualsToken:            "<<=",
	GreaterThanGreaterThanEqualsToken:      ">>=",
	GreaterThanGreaterThanGreaterThanEqualsToken: ">>>=",
	AmpersandEqualsToken:                         "&=",
	BarEqualsToken:                               "|=",
	CaretEqualsToken:                             "^=",
	SlashToken:                                   "/",
	SlashEqualsToken:                             "/=",
}

var keywords = func() map[string]Kind {
	m := make(map[string]Kind, int(LastKeyword-FirstKeyword)+1)
	for k := FirstKeyword; k <= LastKeyword; k++ {
		m[tokenText[k]] = k
	}
	return m
}()

// TokenText returns the fixed text of keywords and punctuators, "" otherwise.
func TokenText(k Kind) string {
	if k >= kindCount {
		return ""
	}
	return tokenText[k]
}

// IsFixedWidth reports whether every token of kind k has the same text.
func IsFixedWidth(k Kind) bool {
	return k.IsKeyword() || k.IsPunctuation()
}

// KeywordKind looks text up in the keyword table. Keywords are case sensitive.
func KeywordKind(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// IsStandardKeyword reports keywords that can never be identifiers.
func IsStandardKeyword(k Kind) bool {
	return k >= BreakKeyword && k <= SuperKeyword
}

// IsContextualKeyword reports keywords that may also be used as identifiers.
func IsContextualKeyword(k Kind) bool {
	return k >= ImplementsKeyword && k <= LastKeyword
}

// Binary operator precedence, higher binds tighter. Zero means not a binary
// operator.
const (
	PrecedenceComma = iota + 1
	PrecedenceAssignment
	PrecedenceConditional
	PrecedenceLogicalOr
	PrecedenceLogicalAnd
	PrecedenceBitwiseOr
	PrecedenceBitwiseXor
	PrecedenceBitwiseAnd
	PrecedenceEquality
	PrecedenceRelational
	PrecedenceShift
	PrecedenceAdditive
	PrecedenceMultiplicative
)

// BinaryPrecedence returns the precedence of k used as a binary operator.
// The "in" keyword is included; callers in a for-in head exclude it.
func BinaryPrecedence(k Kind) int {
	switch k {
	case CommaToken:
		return PrecedenceComma
	case EqualsToken, PlusEqualsToken, MinusEqualsToken, AsteriskEqualsToken, SlashEqualsToken,
		PercentEqualsToken, LessThanLessThanEqualsToken, GreaterThanGreaterThanEqualsToken,
		GreaterThanGreaterThanGreaterThanEqualsToken, AmpersandEqualsToken, BarEqualsToken, CaretEqualsToken:
		return PrecedenceAssignment
	case BarBarToken:
		return PrecedenceLogicalOr
	case AmpersandAmpersandToken:
		return PrecedenceLogicalAnd
	case BarToken:
		return PrecedenceBitwiseOr
	case CaretToken:
		return PrecedenceBitwiseXor
	case AmpersandToken:
		return PrecedenceBitwiseAnd
	case EqualsEqualsToken, ExclamationEqualsToken, EqualsEqualsEqualsToken, ExclamationEqualsEqualsToken:
		return PrecedenceEquality
	case LessThanToken, GreaterThanToken, LessThanEqualsToken, GreaterThanEqualsToken,
		InstanceOfKeyword, InKeyword:
		return PrecedenceRelational
	case LessThanLessThanToken, GreaterThanGreaterThanToken, GreaterThanGreaterThanGreaterThanToken:
		return PrecedenceShift
	case PlusToken, MinusToken:
		return PrecedenceAdditive
	case AsteriskToken, SlashToken, PercentToken:
		return PrecedenceMultiplicative
	}
	return 0
}

// IsAssignmentOperator reports the simple and compound assignment tokens.
func IsAssignmentOperator(k Kind) bool {
	return BinaryPrecedence(k) == PrecedenceAssignment
}

// IsPrefixUnaryOperator reports tokens that start a prefix unary expression.
func IsPrefixUnaryOperator(k Kind) bool {
	switch k {
	case PlusToken, MinusToken, TildeToken, ExclamationToken, PlusPlusToken, MinusMinusToken:
		return true
	}
	return false
}

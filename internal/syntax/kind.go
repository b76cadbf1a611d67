package syntax

import "fmt"

// Kind identifies trivia, tokens, nodes and lists.
type Kind uint16

const (
	None Kind = iota
	KindList
	KindSeparatedList
	KindTriviaList

	// Trivia
	WhitespaceTrivia
	NewLineTrivia
	MultiLineCommentTrivia
	SingleLineCommentTrivia
	SkippedTokenTrivia

	// Tokens
	ErrorToken
	EndOfFileToken

	IdentifierName
	RegularExpressionLiteral
	NumericLiteral
	StringLiteral

	// Keywords
	BreakKeyword
	CaseKeyword
	CatchKeyword
	ContinueKeyword
	DebuggerKeyword
	DefaultKeyword
	DeleteKeyword
	DoKeyword
	ElseKeyword
	FalseKeyword
	FinallyKeyword
	ForKeyword
	FunctionKeyword
	IfKeyword
	InKeyword
	InstanceOfKeyword
	NewKeyword
	NullKeyword
	ReturnKeyword
	SwitchKeyword
	ThisKeyword
	ThrowKeyword
	TrueKeyword
	TryKeyword
	TypeOfKeyword
	VarKeyword
	VoidKeyword
	WhileKeyword
	WithKeyword

	// Future reserved words
	ClassKeyword
	ConstKeyword
	EnumKeyword
	ExportKeyword
	ExtendsKeyword
	ImportKeyword
	SuperKeyword

	// Future reserved words in strict mode
	ImplementsKeyword
	InterfaceKeyword
	LetKeyword
	PackageKeyword
	PrivateKeyword
	ProtectedKeyword
	PublicKeyword
	StaticKeyword
	YieldKeyword

	// TypeScript contextual keywords
	AnyKeyword
	BooleanKeyword
	BoolKeyword
	ConstructorKeyword
	DeclareKeyword
	GetKeyword
	ModuleKeyword
	NumberKeyword
	RequireKeyword
	SetKeyword
	StringKeyword

	// Punctuators
	OpenBraceToken
	CloseBraceToken
	OpenParenToken
	CloseParenToken
	OpenBracketToken
	CloseBracketToken
	DotToken
	DotDotDotToken
	SemicolonToken
	CommaToken
	LessThanToken
	GreaterThanToken
	LessThanEqualsToken
	GreaterThanEqualsToken
	EqualsEqualsToken
	EqualsGreaterThanToken
	ExclamationEqualsToken
	EqualsEqualsEqualsToken
	ExclamationEqualsEqualsToken
	PlusToken
	MinusToken
	AsteriskToken
	PercentToken
	PlusPlusToken
	MinusMinusToken
	LessThanLessThanToken
	GreaterThanGreaterThanToken
	GreaterThanGreaterThanGreaterThanToken
	AmpersandToken
	BarToken
	CaretToken
	ExclamationToken
	TildeToken
	AmpersandAmpersandToken
	BarBarToken
	QuestionToken
	ColonToken
	EqualsToken
	PlusEqualsToken
	MinusEqualsToken
	AsteriskEqualsToken
	PercentEqualsToken
	LessThanLessThanEqualsToken
	GreaterThanGreaterThanEqualsToken
	GreaterThanGreaterThanGreaterThanEqualsToken
	AmpersandEqualsToken
	BarEqualsToken
	CaretEqualsToken
	SlashToken
	SlashEqualsToken

	// Module elements and declarations
	SourceUnit
	ExternalModuleReference
	ModuleNameModuleReference
	ImportDeclaration
	ExportAssignment
	ClassDeclaration
	InterfaceDeclaration
	ExtendsClause
	ImplementsClause
	ModuleDeclaration
	FunctionDeclaration
	VariableStatement
	VariableDeclaration
	VariableDeclarator
	EqualsValueClause
	EnumDeclaration

	// Class elements
	MemberFunctionDeclaration
	MemberVariableDeclaration
	ConstructorDeclaration
	GetMemberAccessorDeclaration
	SetMemberAccessorDeclaration

	// Signatures and types
	FunctionSignature
	CallSignature
	ConstructSignature
	IndexSignature
	MethodSignature
	PropertySignature
	ParameterList
	Parameter
	TypeAnnotation
	ObjectType
	ArrayType
	FunctionType
	ConstructorType
	QualifiedName

	// Statements
	Block
	IfStatement
	ElseClause
	ExpressionStatement
	ReturnStatement
	BreakStatement
	ContinueStatement
	ThrowStatement
	WhileStatement
	DoStatement
	ForStatement
	ForInStatement
	SwitchStatement
	CaseSwitchClause
	DefaultSwitchClause
	TryStatement
	CatchClause
	FinallyClause
	LabeledStatement
	EmptyStatement
	DebuggerStatement
	WithStatement

	// Expressions
	PrefixUnaryExpression
	PostfixUnaryExpression
	BinaryExpression
	ConditionalExpression
	ParenthesizedExpression
	InvocationExpression
	ArgumentList
	MemberAccessExpression
	ElementAccessExpression
	ObjectCreationExpression
	ArrayLiteralExpression
	OmittedExpression
	ObjectLiteralExpression
	SimplePropertyAssignment
	FunctionPropertyAssignment
	GetAccessorPropertyAssignment
	SetAccessorPropertyAssignment
	FunctionExpression
	SimpleArrowFunctionExpression
	ParenthesizedArrowFunctionExpression
	CastExpression
	TypeOfExpression
	DeleteExpression
	VoidExpression

	kindCount
)

const (
	FirstTrivia = WhitespaceTrivia
	LastTrivia  = SkippedTokenTrivia

	FirstToken       = ErrorToken
	LastToken        = SlashEqualsToken
	FirstKeyword     = BreakKeyword
	LastKeyword      = StringKeyword
	FirstPunctuation = OpenBraceToken
	LastPunctuation  = SlashEqualsToken

	FirstNode = SourceUnit
	LastNode  = VoidExpression
)

var kindNames = [kindCount]string{
	None:                                 "None",
	KindList:                             "List",
	KindSeparatedList:                    "SeparatedList",
	KindTriviaList:                       "TriviaList",
	WhitespaceTrivia:                     "WhitespaceTrivia",
	NewLineTrivia:                        "NewLineTrivia",
	MultiLineCommentTrivia:               "MultiLineCommentTrivia",
	SingleLineCommentTrivia:              "SingleLineCommentTrivia",
	SkippedTokenTrivia:                   "SkippedTokenTrivia",
	ErrorToken:                           "ErrorToken",
	EndOfFileToken:                       "EndOfFileToken",
	IdentifierName:                       "IdentifierName",
	RegularExpressionLiteral:             "RegularExpressionLiteral",
	NumericLiteral:                       "NumericLiteral",
	StringLiteral:                        "StringLiteral",
	SourceUnit:                           "SourceUnit",
	ExternalModuleReference:              "ExternalModuleReference",
	ModuleNameModuleReference:            "ModuleNameModuleReference",
	ImportDeclaration:                    "ImportDeclaration",
	ExportAssignment:                     "ExportAssignment",
	ClassDeclaration:                     "ClassDeclaration",
	InterfaceDeclaration:                 "InterfaceDeclaration",
	ExtendsClause:                        "ExtendsClause",
	ImplementsClause:                     "ImplementsClause",
	ModuleDeclaration:                    "ModuleDeclaration",
	FunctionDeclaration:                  "FunctionDeclaration",
	VariableStatement:                    "VariableStatement",
	VariableDeclaration:                  "VariableDeclaration",
	VariableDeclarator:                   "VariableDeclarator",
	EqualsValueClause:                    "EqualsValueClause",
	EnumDeclaration:                      "EnumDeclaration",
	MemberFunctionDeclaration:            "MemberFunctionDeclaration",
	MemberVariableDeclaration:            "MemberVariableDeclaration",
	ConstructorDeclaration:               "ConstructorDeclaration",
	GetMemberAccessorDeclaration:         "GetMemberAccessorDeclaration",
	SetMemberAccessorDeclaration:         "SetMemberAccessorDeclaration",
	FunctionSignature:                    "FunctionSignature",
	CallSignature:                        "CallSignature",
	ConstructSignature:                   "ConstructSignature",
	IndexSignature:                       "IndexSignature",
	MethodSignature:                      "MethodSignature",
	PropertySignature:                    "PropertySignature",
	ParameterList:                        "ParameterList",
	Parameter:                            "Parameter",
	TypeAnnotation:                       "TypeAnnotation",
	ObjectType:                           "ObjectType",
	ArrayType:                            "ArrayType",
	FunctionType:                         "FunctionType",
	ConstructorType:                      "ConstructorType",
	QualifiedName:                        "QualifiedName",
	Block:                                "Block",
	IfStatement:                          "IfStatement",
	ElseClause:                           "ElseClause",
	ExpressionStatement:                  "ExpressionStatement",
	ReturnStatement:                      "ReturnStatement",
	BreakStatement:                       "BreakStatement",
	ContinueStatement:                    "ContinueStatement",
	ThrowStatement:                       "ThrowStatement",
	WhileStatement:                       "WhileStatement",
	DoStatement:                          "DoStatement",
	ForStatement:                         "ForStatement",
	ForInStatement:                       "ForInStatement",
	SwitchStatement:                      "SwitchStatement",
	CaseSwitchClause:                     "CaseSwitchClause",
	DefaultSwitchClause:                  "DefaultSwitchClause",
	TryStatement:                         "TryStatement",
	CatchClause:                          "CatchClause",
	FinallyClause:                        "FinallyClause",
	LabeledStatement:                     "LabeledStatement",
	EmptyStatement:                       "EmptyStatement",
	DebuggerStatement:                    "DebuggerStatement",
	WithStatement:                        "WithStatement",
	PrefixUnaryExpression:                "PrefixUnaryExpression",
	PostfixUnaryExpression:               "PostfixUnaryExpression",
	BinaryExpression:                     "BinaryExpression",
	ConditionalExpression:                "ConditionalExpression",
	ParenthesizedExpression:              "ParenthesizedExpression",
	InvocationExpression:                 "InvocationExpression",
	ArgumentList:                         "ArgumentList",
	MemberAccessExpression:               "MemberAccessExpression",
	ElementAccessExpression:              "ElementAccessExpression",
	ObjectCreationExpression:             "ObjectCreationExpression",
	ArrayLiteralExpression:               "ArrayLiteralExpression",
	OmittedExpression:                    "OmittedExpression",
	ObjectLiteralExpression:              "ObjectLiteralExpression",
	SimplePropertyAssignment:             "SimplePropertyAssignment",
	FunctionPropertyAssignment:           "FunctionPropertyAssignment",
	GetAccessorPropertyAssignment:        "GetAccessorPropertyAssignment",
	SetAccessorPropertyAssignment:        "SetAccessorPropertyAssignment",
	FunctionExpression:                   "FunctionExpression",
	SimpleArrowFunctionExpression:        "SimpleArrowFunctionExpression",
	ParenthesizedArrowFunctionExpression: "ParenthesizedArrowFunctionExpression",
	CastExpression:                       "CastExpression",
	TypeOfExpression:                     "TypeOfExpression",
	DeleteExpression:                     "DeleteExpression",
	VoidExpression:                       "VoidExpression",
}

// String returns the kind name; fixed tokens are shown with their text.
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint16(k))
	}
	if name := kindNames[k]; name != "" {
		return name
	}
	if text := TokenText(k); text != "" {
		return fmt.Sprintf("%q", text)
	}
	return fmt.Sprintf("Kind(%d)", uint16(k))
}

func (k Kind) IsTrivia() bool      { return k >= FirstTrivia && k <= LastTrivia }
func (k Kind) IsToken() bool       { return k >= FirstToken && k <= LastToken }
func (k Kind) IsKeyword() bool     { return k >= FirstKeyword && k <= LastKeyword }
func (k Kind) IsPunctuation() bool { return k >= FirstPunctuation && k <= LastPunctuation }
func (k Kind) IsNode() bool        { return k >= FirstNode && k <= LastNode }

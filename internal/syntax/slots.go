package syntax

import "fmt"

// nodeSlots lists the child slots of every node kind in order.
var nodeSlots = [kindCount][]string{
	SourceUnit:                {"moduleElements", "endOfFileToken"},
	ExternalModuleReference:   {"moduleKeyword", "openParenToken", "stringLiteral", "closeParenToken"},
	ModuleNameModuleReference: {"moduleName"},
	ImportDeclaration:         {"importKeyword", "identifier", "equalsToken", "moduleReference", "semicolonToken"},
	ExportAssignment:          {"exportKeyword", "equalsToken", "identifier", "semicolonToken"},
	ClassDeclaration: {"exportKeyword", "declareKeyword", "classKeyword", "identifier", "extendsClause",
		"implementsClause", "openBraceToken", "classElements", "closeBraceToken"},
	InterfaceDeclaration: {"exportKeyword", "interfaceKeyword", "identifier", "extendsClause", "body"},
	ExtendsClause:        {"extendsKeyword", "typeNames"},
	ImplementsClause:     {"implementsKeyword", "typeNames"},
	ModuleDeclaration: {"exportKeyword", "declareKeyword", "moduleKeyword", "moduleName", "stringLiteral",
		"openBraceToken", "moduleElements", "closeBraceToken"},
	FunctionDeclaration: {"exportKeyword", "declareKeyword", "functionKeyword", "functionSignature", "block",
		"semicolonToken"},
	VariableStatement:   {"exportKeyword", "declareKeyword", "variableDeclaration", "semicolonToken"},
	VariableDeclaration: {"varKeyword", "variableDeclarators"},
	VariableDeclarator:  {"identifier", "typeAnnotation", "equalsValueClause"},
	EqualsValueClause:   {"equalsToken", "value"},
	EnumDeclaration: {"exportKeyword", "enumKeyword", "identifier", "openBraceToken", "variableDeclarators",
		"closeBraceToken"},

	MemberFunctionDeclaration: {"publicOrPrivateKeyword", "staticKeyword", "functionSignature", "block",
		"semicolonToken"},
	MemberVariableDeclaration: {"publicOrPrivateKeyword", "staticKeyword", "variableDeclarator", "semicolonToken"},
	ConstructorDeclaration:    {"constructorKeyword", "parameterList", "block", "semicolonToken"},
	GetMemberAccessorDeclaration: {"publicOrPrivateKeyword", "staticKeyword", "getKeyword", "identifier",
		"parameterList", "typeAnnotation", "block"},
	SetMemberAccessorDeclaration: {"publicOrPrivateKeyword", "staticKeyword", "setKeyword", "identifier",
		"parameterList", "block"},

	FunctionSignature:  {"identifier", "questionToken", "callSignature"},
	CallSignature:      {"parameterList", "typeAnnotation"},
	ConstructSignature: {"newKeyword", "callSignature"},
	IndexSignature:     {"openBracketToken", "parameter", "closeBracketToken", "typeAnnotation"},
	MethodSignature:    {"propertyName", "questionToken", "callSignature"},
	PropertySignature:  {"propertyName", "questionToken", "typeAnnotation"},
	ParameterList:      {"openParenToken", "parameters", "closeParenToken"},
	Parameter: {"dotDotDotToken", "publicOrPrivateKeyword", "identifier", "questionToken", "typeAnnotation",
		"equalsValueClause"},
	TypeAnnotation:  {"colonToken", "type"},
	ObjectType:      {"openBraceToken", "typeMembers", "closeBraceToken"},
	ArrayType:       {"type", "openBracketToken", "closeBracketToken"},
	FunctionType:    {"parameterList", "equalsGreaterThanToken", "type"},
	ConstructorType: {"newKeyword", "parameterList", "equalsGreaterThanToken", "type"},
	QualifiedName:   {"left", "dotToken", "right"},

	Block:               {"openBraceToken", "statements", "closeBraceToken"},
	IfStatement:         {"ifKeyword", "openParenToken", "condition", "closeParenToken", "statement", "elseClause"},
	ElseClause:          {"elseKeyword", "statement"},
	ExpressionStatement: {"expression", "semicolonToken"},
	ReturnStatement:     {"returnKeyword", "expression", "semicolonToken"},
	BreakStatement:      {"breakKeyword", "identifier", "semicolonToken"},
	ContinueStatement:   {"continueKeyword", "identifier", "semicolonToken"},
	ThrowStatement:      {"throwKeyword", "expression", "semicolonToken"},
	WhileStatement:      {"whileKeyword", "openParenToken", "condition", "closeParenToken", "statement"},
	DoStatement: {"doKeyword", "statement", "whileKeyword", "openParenToken", "condition", "closeParenToken",
		"semicolonToken"},
	ForStatement: {"forKeyword", "openParenToken", "variableDeclaration", "initializer", "firstSemicolonToken",
		"condition", "secondSemicolonToken", "incrementor", "closeParenToken", "statement"},
	ForInStatement: {"forKeyword", "openParenToken", "variableDeclaration", "left", "inKeyword", "expression",
		"closeParenToken", "statement"},
	SwitchStatement: {"switchKeyword", "openParenToken", "expression", "closeParenToken", "openBraceToken",
		"switchClauses", "closeBraceToken"},
	CaseSwitchClause:    {"caseKeyword", "expression", "colonToken", "statements"},
	DefaultSwitchClause: {"defaultKeyword", "colonToken", "statements"},
	TryStatement:        {"tryKeyword", "block", "catchClause", "finallyClause"},
	CatchClause:         {"catchKeyword", "openParenToken", "identifier", "closeParenToken", "block"},
	FinallyClause:       {"finallyKeyword", "block"},
	LabeledStatement:    {"identifier", "colonToken", "statement"},
	EmptyStatement:      {"semicolonToken"},
	DebuggerStatement:   {"debuggerKeyword", "semicolonToken"},
	WithStatement:       {"withKeyword", "openParenToken", "condition", "closeParenToken", "statement"},

	PrefixUnaryExpression:         {"operatorToken", "operand"},
	PostfixUnaryExpression:        {"operand", "operatorToken"},
	BinaryExpression:              {"left", "operatorToken", "right"},
	ConditionalExpression:         {"condition", "questionToken", "whenTrue", "colonToken", "whenFalse"},
	ParenthesizedExpression:       {"openParenToken", "expression", "closeParenToken"},
	InvocationExpression:          {"expression", "argumentList"},
	ArgumentList:                  {"openParenToken", "arguments", "closeParenToken"},
	MemberAccessExpression:        {"expression", "dotToken", "name"},
	ElementAccessExpression:       {"expression", "openBracketToken", "argumentExpression", "closeBracketToken"},
	ObjectCreationExpression:      {"newKeyword", "expression", "argumentList"},
	ArrayLiteralExpression:        {"openBracketToken", "expressions", "closeBracketToken"},
	OmittedExpression:             {},
	ObjectLiteralExpression:       {"openBraceToken", "propertyAssignments", "closeBraceToken"},
	SimplePropertyAssignment:      {"propertyName", "colonToken", "expression"},
	FunctionPropertyAssignment:    {"propertyName", "callSignature", "block"},
	GetAccessorPropertyAssignment: {"getKeyword", "propertyName", "openParenToken", "closeParenToken", "block"},
	SetAccessorPropertyAssignment: {"setKeyword", "propertyName", "openParenToken", "parameterName",
		"closeParenToken", "block"},
	FunctionExpression:                   {"functionKeyword", "identifier", "callSignature", "block"},
	SimpleArrowFunctionExpression:        {"identifier", "equalsGreaterThanToken", "body"},
	ParenthesizedArrowFunctionExpression: {"callSignature", "equalsGreaterThanToken", "body"},
	CastExpression:                       {"lessThanToken", "type", "greaterThanToken", "expression"},
	TypeOfExpression:                     {"typeOfKeyword", "expression"},
	DeleteExpression:                     {"deleteKeyword", "expression"},
	VoidExpression:                       {"voidKeyword", "expression"},
}

var slotIndexes = func() [kindCount]map[string]int {
	var out [kindCount]map[string]int
	for k := FirstNode; k <= LastNode; k++ {
		names := nodeSlots[k]
		if names == nil {
			panic(fmt.Sprintf("syntax: no slots declared for %v", k))
		}
		m := make(map[string]int, len(names))
		for i, name := range names {
			m[name] = i
		}
		out[k] = m
	}
	return out
}()

func slotNames(kind Kind) []string {
	if !kind.IsNode() {
		panic(fmt.Sprintf("syntax: %v is not a node kind", kind))
	}
	return nodeSlots[kind]
}

// SlotNames returns the slot names of a node kind in child order.
func SlotNames(kind Kind) []string {
	return append([]string(nil), slotNames(kind)...)
}

// SlotIndex returns the child index of a named slot. Unknown names panic.
func SlotIndex(kind Kind, name string) int {
	slotNames(kind)
	i, ok := slotIndexes[kind][name]
	if !ok {
		panic(fmt.Sprintf("syntax: %v has no slot %q", kind, name))
	}
	return i
}

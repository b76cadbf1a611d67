package syntax

// Factory builds nodes for one parse. Every node it creates records the
// factory's strict-mode flag.
type Factory struct {
	strict bool
}

var (
	NormalModeFactory = Factory{strict: false}
	StrictModeFactory = Factory{strict: true}
)

// FactoryFor returns the factory for the given mode.
func FactoryFor(strict bool) Factory {
	if strict {
		return StrictModeFactory
	}
	return NormalModeFactory
}

// Create builds a node of any kind from children in slot order.
func (f Factory) Create(kind Kind, children ...Element) *Node {
	return newNode(kind, f.strict, children)
}

func (f Factory) SourceUnit(moduleElements *List, endOfFileToken *Token) *Node {
	return f.Create(SourceUnit, moduleElements, endOfFileToken)
}

func (f Factory) ExternalModuleReference(moduleKeyword, openParenToken, stringLiteral, closeParenToken *Token) *Node {
	return f.Create(ExternalModuleReference, moduleKeyword, openParenToken, stringLiteral, closeParenToken)
}

func (f Factory) ModuleNameModuleReference(moduleName Element) *Node {
	return f.Create(ModuleNameModuleReference, moduleName)
}

func (f Factory) ImportDeclaration(importKeyword, identifier, equalsToken *Token, moduleReference *Node, semicolonToken *Token) *Node {
	return f.Create(ImportDeclaration, importKeyword, identifier, equalsToken, moduleReference, semicolonToken)
}

func (f Factory) ExportAssignment(exportKeyword, equalsToken, identifier, semicolonToken *Token) *Node {
	return f.Create(ExportAssignment, exportKeyword, equalsToken, identifier, semicolonToken)
}

func (f Factory) ClassDeclaration(exportKeyword, declareKeyword, classKeyword, identifier *Token,
	extendsClause, implementsClause *Node, openBraceToken *Token, classElements *List, closeBraceToken *Token,
) *Node {
	return f.Create(ClassDeclaration, exportKeyword, declareKeyword, classKeyword, identifier,
		extendsClause, implementsClause, openBraceToken, classElements, closeBraceToken)
}

func (f Factory) InterfaceDeclaration(exportKeyword, interfaceKeyword, identifier *Token, extendsClause, body *Node) *Node {
	return f.Create(InterfaceDeclaration, exportKeyword, interfaceKeyword, identifier, extendsClause, body)
}

func (f Factory) ExtendsClause(extendsKeyword *Token, typeNames *SeparatedList) *Node {
	return f.Create(ExtendsClause, extendsKeyword, typeNames)
}

func (f Factory) ImplementsClause(implementsKeyword *Token, typeNames *SeparatedList) *Node {
	return f.Create(ImplementsClause, implementsKeyword, typeNames)
}

func (f Factory) ModuleDeclaration(exportKeyword, declareKeyword, moduleKeyword *Token, moduleName Element,
	stringLiteral, openBraceToken *Token, moduleElements *List, closeBraceToken *Token,
) *Node {
	return f.Create(ModuleDeclaration, exportKeyword, declareKeyword, moduleKeyword, moduleName,
		stringLiteral, openBraceToken, moduleElements, closeBraceToken)
}

func (f Factory) FunctionDeclaration(exportKeyword, declareKeyword, functionKeyword *Token,
	functionSignature, block *Node, semicolonToken *Token,
) *Node {
	return f.Create(FunctionDeclaration, exportKeyword, declareKeyword, functionKeyword,
		functionSignature, block, semicolonToken)
}

func (f Factory) VariableStatement(exportKeyword, declareKeyword *Token, variableDeclaration *Node, semicolonToken *Token) *Node {
	return f.Create(VariableStatement, exportKeyword, declareKeyword, variableDeclaration, semicolonToken)
}

func (f Factory) VariableDeclaration(varKeyword *Token, variableDeclarators *SeparatedList) *Node {
	return f.Create(VariableDeclaration, varKeyword, variableDeclarators)
}

func (f Factory) VariableDeclarator(identifier *Token, typeAnnotation, equalsValueClause *Node) *Node {
	return f.Create(VariableDeclarator, identifier, typeAnnotation, equalsValueClause)
}

func (f Factory) EqualsValueClause(equalsToken *Token, value Element) *Node {
	return f.Create(EqualsValueClause, equalsToken, value)
}

func (f Factory) EnumDeclaration(exportKeyword, enumKeyword, identifier, openBraceToken *Token,
	variableDeclarators *SeparatedList, closeBraceToken *Token,
) *Node {
	return f.Create(EnumDeclaration, exportKeyword, enumKeyword, identifier, openBraceToken,
		variableDeclarators, closeBraceToken)
}

func (f Factory) MemberFunctionDeclaration(publicOrPrivateKeyword, staticKeyword *Token,
	functionSignature, block *Node, semicolonToken *Token,
) *Node {
	return f.Create(MemberFunctionDeclaration, publicOrPrivateKeyword, staticKeyword, functionSignature,
		block, semicolonToken)
}

func (f Factory) MemberVariableDeclaration(publicOrPrivateKeyword, staticKeyword *Token,
	variableDeclarator *Node, semicolonToken *Token,
) *Node {
	return f.Create(MemberVariableDeclaration, publicOrPrivateKeyword, staticKeyword, variableDeclarator,
		semicolonToken)
}

func (f Factory) ConstructorDeclaration(constructorKeyword *Token, parameterList, block *Node, semicolonToken *Token) *Node {
	return f.Create(ConstructorDeclaration, constructorKeyword, parameterList, block, semicolonToken)
}

func (f Factory) GetMemberAccessorDeclaration(publicOrPrivateKeyword, staticKeyword, getKeyword, identifier *Token,
	parameterList, typeAnnotation, block *Node,
) *Node {
	return f.Create(GetMemberAccessorDeclaration, publicOrPrivateKeyword, staticKeyword, getKeyword, identifier,
		parameterList, typeAnnotation, block)
}

func (f Factory) SetMemberAccessorDeclaration(publicOrPrivateKeyword, staticKeyword, setKeyword, identifier *Token,
	parameterList, block *Node,
) *Node {
	return f.Create(SetMemberAccessorDeclaration, publicOrPrivateKeyword, staticKeyword, setKeyword, identifier,
		parameterList, block)
}

func (f Factory) FunctionSignature(identifier, questionToken *Token, callSignature *Node) *Node {
	return f.Create(FunctionSignature, identifier, questionToken, callSignature)
}

func (f Factory) CallSignature(parameterList, typeAnnotation *Node) *Node {
	return f.Create(CallSignature, parameterList, typeAnnotation)
}

func (f Factory) ConstructSignature(newKeyword *Token, callSignature *Node) *Node {
	return f.Create(ConstructSignature, newKeyword, callSignature)
}

func (f Factory) IndexSignature(openBracketToken *Token, parameter *Node, closeBracketToken *Token, typeAnnotation *Node) *Node {
	return f.Create(IndexSignature, openBracketToken, parameter, closeBracketToken, typeAnnotation)
}

func (f Factory) MethodSignature(propertyName, questionToken *Token, callSignature *Node) *Node {
	return f.Create(MethodSignature, propertyName, questionToken, callSignature)
}

func (f Factory) PropertySignature(propertyName, questionToken *Token, typeAnnotation *Node) *Node {
	return f.Create(PropertySignature, propertyName, questionToken, typeAnnotation)
}

func (f Factory) ParameterList(openParenToken *Token, parameters *SeparatedList, closeParenToken *Token) *Node {
	return f.Create(ParameterList, openParenToken, parameters, closeParenToken)
}

func (f Factory) Parameter(dotDotDotToken, publicOrPrivateKeyword, identifier, questionToken *Token,
	typeAnnotation, equalsValueClause *Node,
) *Node {
	return f.Create(Parameter, dotDotDotToken, publicOrPrivateKeyword, identifier, questionToken,
		typeAnnotation, equalsValueClause)
}

func (f Factory) TypeAnnotation(colonToken *Token, typ Element) *Node {
	return f.Create(TypeAnnotation, colonToken, typ)
}

func (f Factory) ObjectType(openBraceToken *Token, typeMembers *SeparatedList, closeBraceToken *Token) *Node {
	return f.Create(ObjectType, openBraceToken, typeMembers, closeBraceToken)
}

func (f Factory) ArrayType(typ Element, openBracketToken, closeBracketToken *Token) *Node {
	return f.Create(ArrayType, typ, openBracketToken, closeBracketToken)
}

func (f Factory) FunctionType(parameterList *Node, equalsGreaterThanToken *Token, typ Element) *Node {
	return f.Create(FunctionType, parameterList, equalsGreaterThanToken, typ)
}

func (f Factory) ConstructorType(newKeyword *Token, parameterList *Node, equalsGreaterThanToken *Token, typ Element) *Node {
	return f.Create(ConstructorType, newKeyword, parameterList, equalsGreaterThanToken, typ)
}

func (f Factory) QualifiedName(left Element, dotToken, right *Token) *Node {
	return f.Create(QualifiedName, left, dotToken, right)
}

func (f Factory) Block(openBraceToken *Token, statements *List, closeBraceToken *Token) *Node {
	return f.Create(Block, openBraceToken, statements, closeBraceToken)
}

func (f Factory) IfStatement(ifKeyword, openParenToken *Token, condition Element, closeParenToken *Token,
	statement Element, elseClause *Node,
) *Node {
	return f.Create(IfStatement, ifKeyword, openParenToken, condition, closeParenToken, statement, elseClause)
}

func (f Factory) ElseClause(elseKeyword *Token, statement Element) *Node {
	return f.Create(ElseClause, elseKeyword, statement)
}

func (f Factory) ExpressionStatement(expression Element, semicolonToken *Token) *Node {
	return f.Create(ExpressionStatement, expression, semicolonToken)
}

func (f Factory) ReturnStatement(returnKeyword *Token, expression Element, semicolonToken *Token) *Node {
	return f.Create(ReturnStatement, returnKeyword, expression, semicolonToken)
}

func (f Factory) BreakStatement(breakKeyword, identifier, semicolonToken *Token) *Node {
	return f.Create(BreakStatement, breakKeyword, identifier, semicolonToken)
}

func (f Factory) ContinueStatement(continueKeyword, identifier, semicolonToken *Token) *Node {
	return f.Create(ContinueStatement, continueKeyword, identifier, semicolonToken)
}

func (f Factory) ThrowStatement(throwKeyword *Token, expression Element, semicolonToken *Token) *Node {
	return f.Create(ThrowStatement, throwKeyword, expression, semicolonToken)
}

func (f Factory) WhileStatement(whileKeyword, openParenToken *Token, condition Element, closeParenToken *Token,
	statement Element,
) *Node {
	return f.Create(WhileStatement, whileKeyword, openParenToken, condition, closeParenToken, statement)
}

func (f Factory) DoStatement(doKeyword *Token, statement Element, whileKeyword, openParenToken *Token,
	condition Element, closeParenToken, semicolonToken *Token,
) *Node {
	return f.Create(DoStatement, doKeyword, statement, whileKeyword, openParenToken, condition,
		closeParenToken, semicolonToken)
}

func (f Factory) ForStatement(forKeyword, openParenToken *Token, variableDeclaration *Node, initializer Element,
	firstSemicolonToken *Token, condition Element, secondSemicolonToken *Token, incrementor Element,
	closeParenToken *Token, statement Element,
) *Node {
	return f.Create(ForStatement, forKeyword, openParenToken, variableDeclaration, initializer,
		firstSemicolonToken, condition, secondSemicolonToken, incrementor, closeParenToken, statement)
}

func (f Factory) ForInStatement(forKeyword, openParenToken *Token, variableDeclaration *Node, left Element,
	inKeyword *Token, expression Element, closeParenToken *Token, statement Element,
) *Node {
	return f.Create(ForInStatement, forKeyword, openParenToken, variableDeclaration, left, inKeyword,
		expression, closeParenToken, statement)
}

func (f Factory) SwitchStatement(switchKeyword, openParenToken *Token, expression Element,
	closeParenToken, openBraceToken *Token, switchClauses *List, closeBraceToken *Token,
) *Node {
	return f.Create(SwitchStatement, switchKeyword, openParenToken, expression, closeParenToken,
		openBraceToken, switchClauses, closeBraceToken)
}

func (f Factory) CaseSwitchClause(caseKeyword *Token, expression Element, colonToken *Token, statements *List) *Node {
	return f.Create(CaseSwitchClause, caseKeyword, expression, colonToken, statements)
}

func (f Factory) DefaultSwitchClause(defaultKeyword, colonToken *Token, statements *List) *Node {
	return f.Create(DefaultSwitchClause, defaultKeyword, colonToken, statements)
}

func (f Factory) TryStatement(tryKeyword *Token, block, catchClause, finallyClause *Node) *Node {
	return f.Create(TryStatement, tryKeyword, block, catchClause, finallyClause)
}

func (f Factory) CatchClause(catchKeyword, openParenToken, identifier, closeParenToken *Token, block *Node) *Node {
	return f.Create(CatchClause, catchKeyword, openParenToken, identifier, closeParenToken, block)
}

func (f Factory) FinallyClause(finallyKeyword *Token, block *Node) *Node {
	return f.Create(FinallyClause, finallyKeyword, block)
}

func (f Factory) LabeledStatement(identifier, colonToken *Token, statement Element) *Node {
	return f.Create(LabeledStatement, identifier, colonToken, statement)
}

func (f Factory) EmptyStatement(semicolonToken *Token) *Node {
	return f.Create(EmptyStatement, semicolonToken)
}

func (f Factory) DebuggerStatement(debuggerKeyword, semicolonToken *Token) *Node {
	return f.Create(DebuggerStatement, debuggerKeyword, semicolonToken)
}

func (f Factory) WithStatement(withKeyword, openParenToken *Token, condition Element, closeParenToken *Token,
	statement Element,
) *Node {
	return f.Create(WithStatement, withKeyword, openParenToken, condition, closeParenToken, statement)
}

func (f Factory) PrefixUnaryExpression(operatorToken *Token, operand Element) *Node {
	return f.Create(PrefixUnaryExpression, operatorToken, operand)
}

func (f Factory) PostfixUnaryExpression(operand Element, operatorToken *Token) *Node {
	return f.Create(PostfixUnaryExpression, operand, operatorToken)
}

func (f Factory) BinaryExpression(left Element, operatorToken *Token, right Element) *Node {
	return f.Create(BinaryExpression, left, operatorToken, right)
}

func (f Factory) ConditionalExpression(condition Element, questionToken *Token, whenTrue Element,
	colonToken *Token, whenFalse Element,
) *Node {
	return f.Create(ConditionalExpression, condition, questionToken, whenTrue, colonToken, whenFalse)
}

func (f Factory) ParenthesizedExpression(openParenToken *Token, expression Element, closeParenToken *Token) *Node {
	return f.Create(ParenthesizedExpression, openParenToken, expression, closeParenToken)
}

func (f Factory) InvocationExpression(expression Element, argumentList *Node) *Node {
	return f.Create(InvocationExpression, expression, argumentList)
}

func (f Factory) ArgumentList(openParenToken *Token, arguments *SeparatedList, closeParenToken *Token) *Node {
	return f.Create(ArgumentList, openParenToken, arguments, closeParenToken)
}

func (f Factory) MemberAccessExpression(expression Element, dotToken, name *Token) *Node {
	return f.Create(MemberAccessExpression, expression, dotToken, name)
}

func (f Factory) ElementAccessExpression(expression Element, openBracketToken *Token, argumentExpression Element,
	closeBracketToken *Token,
) *Node {
	return f.Create(ElementAccessExpression, expression, openBracketToken, argumentExpression, closeBracketToken)
}

func (f Factory) ObjectCreationExpression(newKeyword *Token, expression Element, argumentList *Node) *Node {
	return f.Create(ObjectCreationExpression, newKeyword, expression, argumentList)
}

func (f Factory) ArrayLiteralExpression(openBracketToken *Token, expressions *SeparatedList, closeBracketToken *Token) *Node {
	return f.Create(ArrayLiteralExpression, openBracketToken, expressions, closeBracketToken)
}

func (f Factory) OmittedExpression() *Node {
	return f.Create(OmittedExpression)
}

func (f Factory) ObjectLiteralExpression(openBraceToken *Token, propertyAssignments *SeparatedList, closeBraceToken *Token) *Node {
	return f.Create(ObjectLiteralExpression, openBraceToken, propertyAssignments, closeBraceToken)
}

func (f Factory) SimplePropertyAssignment(propertyName, colonToken *Token, expression Element) *Node {
	return f.Create(SimplePropertyAssignment, propertyName, colonToken, expression)
}

func (f Factory) FunctionPropertyAssignment(propertyName *Token, callSignature, block *Node) *Node {
	return f.Create(FunctionPropertyAssignment, propertyName, callSignature, block)
}

func (f Factory) GetAccessorPropertyAssignment(getKeyword, propertyName, openParenToken, closeParenToken *Token, block *Node) *Node {
	return f.Create(GetAccessorPropertyAssignment, getKeyword, propertyName, openParenToken, closeParenToken, block)
}

func (f Factory) SetAccessorPropertyAssignment(setKeyword, propertyName, openParenToken, parameterName,
	closeParenToken *Token, block *Node,
) *Node {
	return f.Create(SetAccessorPropertyAssignment, setKeyword, propertyName, openParenToken, parameterName,
		closeParenToken, block)
}

func (f Factory) FunctionExpression(functionKeyword, identifier *Token, callSignature, block *Node) *Node {
	return f.Create(FunctionExpression, functionKeyword, identifier, callSignature, block)
}

func (f Factory) SimpleArrowFunctionExpression(identifier, equalsGreaterThanToken *Token, body Element) *Node {
	return f.Create(SimpleArrowFunctionExpression, identifier, equalsGreaterThanToken, body)
}

func (f Factory) ParenthesizedArrowFunctionExpression(callSignature *Node, equalsGreaterThanToken *Token, body Element) *Node {
	return f.Create(ParenthesizedArrowFunctionExpression, callSignature, equalsGreaterThanToken, body)
}

func (f Factory) CastExpression(lessThanToken *Token, typ Element, greaterThanToken *Token, expression Element) *Node {
	return f.Create(CastExpression, lessThanToken, typ, greaterThanToken, expression)
}

func (f Factory) TypeOfExpression(typeOfKeyword *Token, expression Element) *Node {
	return f.Create(TypeOfExpression, typeOfKeyword, expression)
}

func (f Factory) DeleteExpression(deleteKeyword *Token, expression Element) *Node {
	return f.Create(DeleteExpression, deleteKeyword, expression)
}

func (f Factory) VoidExpression(voidKeyword *Token, expression Element) *Node {
	return f.Create(VoidExpression, voidKeyword, expression)
}

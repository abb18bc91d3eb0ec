/*
 * as3parser
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

import "devt.de/krotik/as3parser/source"

// Literal and terminal expressions
// =================================

/*
NullLiteral is the `null` literal.
*/
type NullLiteral struct{ Base }

func (*NullLiteral) exprNode() {}

/*
BooleanLiteral is `true` or `false`.
*/
type BooleanLiteral struct {
	Base
	Value bool
}

func (*BooleanLiteral) exprNode() {}

/*
NumericLiteral is a decimal/hex/binary numeric literal. Value parsing is
deferred: Raw carries the literal spelling verbatim (spec.md C6).
*/
type NumericLiteral struct {
	Base
	Raw string
}

func (*NumericLiteral) exprNode() {}

/*
StringLiteral is a single/double/triple-quoted or raw string literal, after
escape processing and (for triple-quoted strings) destriping.
*/
type StringLiteral struct {
	Base
	Value string
}

func (*StringLiteral) exprNode() {}

/*
ThisLiteral is the `this` expression.
*/
type ThisLiteral struct{ Base }

func (*ThisLiteral) exprNode() {}

/*
RegExpLiteral is a `/pattern/flags` literal.
*/
type RegExpLiteral struct {
	Base
	Body  string
	Flags string
}

func (*RegExpLiteral) exprNode() {}

/*
ReservedNamespaceLiteral is one of `public`, `private`, `protected`,
`internal` used as a value (most commonly a namespace qualifier).
*/
type ReservedNamespaceLiteral struct {
	Base
	Name string
}

func (*ReservedNamespaceLiteral) exprNode() {}

/*
Paren is a parenthesized expression, kept distinct from its Operand so that
arrow-function reinterpretation (spec.md §4.3 "Arrow functions") can tell a
parenthesized expression apart from a bare one.
*/
type Paren struct {
	Base
	Operand Expression
}

func (*Paren) exprNode() {}

/*
Invalidated is the error sentinel expression node, returned wherever parsing
failed and local recovery could not produce a real node (spec.md §7).
*/
type Invalidated struct{ Base }

func (*Invalidated) exprNode() {}

/*
Super is the `super` expression, optionally applied as a call.
*/
type Super struct {
	Base
	Arguments []Expression // nil if this `super` is not `super(...)`
}

func (*Super) exprNode() {}

/*
ImportMeta is the `import.meta` expression.
*/
type ImportMeta struct{ Base }

func (*ImportMeta) exprNode() {}

// Member access
// =============

/*
Member is dotted member access: `base.name`.
*/
type Member struct {
	Base
	Base_ Expression // named Base_ to avoid shadowing the embedded Base
	Name  *QualifiedIdentifier
}

func (*Member) exprNode() {}

/*
ComputedMember is bracketed member access: `base[key]`.
*/
type ComputedMember struct {
	Base
	Base_ Expression
	Key   Expression
	Doc   *AsDoc // metadata ASDoc carried by `[…]` in annotatable contexts
}

func (*ComputedMember) exprNode() {}

/*
Descendants is the E4X descendants operator: `base..name`.
*/
type Descendants struct {
	Base
	Base_ Expression
	Name  *QualifiedIdentifier
}

func (*Descendants) exprNode() {}

/*
Filter is an E4X filter expression: `base.(cond)`.
*/
type Filter struct {
	Base
	Base_     Expression
	Predicate Expression
}

func (*Filter) exprNode() {}

/*
WithTypeArguments is `base.<T1, T2, …>`.
*/
type WithTypeArguments struct {
	Base
	Base_         Expression
	TypeArguments []TypeExpression
}

func (*WithTypeArguments) exprNode() {}

/*
WithTypeAnnotation is the transient `base: T` postfix wrapper used only to
detect typed arrow-function parameters during reinterpretation (spec.md
§4.3, §9). It is never emitted into a final parsed tree returned to a
caller; the arrow-function reinterpretation pass consumes and discards it.
*/
type WithTypeAnnotation struct {
	Base
	Base_ Expression
	Type  TypeExpression
}

func (*WithTypeAnnotation) exprNode() {}

/*
OptionalChainingPlaceholder marks the root of an optional-chaining
expression so that postfix operators after the first `?.` attach to it at
Postfix precedence rather than to the base (spec.md GLOSSARY "Optional-
chaining placeholder").
*/
type OptionalChainingPlaceholder struct{ Base }

func (*OptionalChainingPlaceholder) exprNode() {}

/*
OptionalChaining wraps a base expression and an Expression built against an
OptionalChainingPlaceholder in place of that base.
*/
type OptionalChaining struct {
	Base
	Base_      Expression
	Expression Expression
}

func (*OptionalChaining) exprNode() {}

// Calls, construction
// ===================

/*
Call is a function/method call: `callee(arguments…)`.
*/
type Call struct {
	Base
	Callee    Expression
	Arguments []Expression
}

func (*Call) exprNode() {}

/*
New is `new callee(arguments…)`.
*/
type New struct {
	Base
	Callee    Expression
	Arguments []Expression // nil if the call had no parenthesized argument list
}

func (*New) exprNode() {}

/*
VectorLiteral is `new <T>[elements…]`.
*/
type VectorLiteral struct {
	Base
	ElementType TypeExpression
	Elements    []Expression
}

func (*VectorLiteral) exprNode() {}

// Initializers
// ============

/*
ArrayElision represents an elided (skipped) element in an array initializer,
e.g. the gap in `[1, , 3]`.
*/
type ArrayElision struct{ Base }

func (*ArrayElision) exprNode() {}

/*
SpreadElement is `...expr` inside an array/object initializer or an
argument list, or in a parenthesized list that becomes an arrow function's
parameters (where it is a rest parameter); the primary-expression parser
accepts it in any other expression position as well.
*/
type SpreadElement struct {
	Base
	Operand Expression
}

func (*SpreadElement) exprNode() {}

/*
ArrayInitializer is `[elements…]`. Elements may include ArrayElision and
SpreadElement nodes.
*/
type ArrayInitializer struct {
	Base
	Elements []Expression
}

func (*ArrayInitializer) exprNode() {}

/*
ObjectField is one field of an ObjectInitializer: identifier/string/numeric
key, computed key, shorthand, or rest. Exactly one of Key/ComputedKey is set
unless Shorthand or Rest is true.
*/
type ObjectField struct {
	Base
	Key         string
	KeyLocation source.Location
	ComputedKey Expression
	Value       Expression // nil when Shorthand; also nil when Rest
	Shorthand   bool
	Rest        Expression // set instead of Key/Value when this field is `...expr`
}

/*
ObjectInitializer is `{ fields… }`.
*/
type ObjectInitializer struct {
	Base
	Fields []ObjectField
}

func (*ObjectInitializer) exprNode() {}

// Functions
// =========

/*
Parameter is one entry of a parameter list, produced either directly by the
function-definition grammar or by arrow-function reinterpretation of an
already-parsed expression sequence (spec.md §4.3 "Parameter list
validation").
*/
type Parameter struct {
	Base
	Kind        ParameterKind
	Destructure *Destructuring
	Type        TypeExpression
	DefaultValue Expression // set only for Kind == ParamOptional
}

/*
ParameterKind classifies a Parameter: Required, Optional (has a default),
or Rest (`...name`). At most one Rest parameter is allowed, and it must be
last; Required may not follow Optional.
*/
type ParameterKind int

const (
	ParamRequired ParameterKind = iota
	ParamOptional
	ParamRest
)

/*
FunctionCommon holds the pieces shared between a FunctionExpression, an
ArrowFunction, and a function DefinitionDirective's signature.
*/
type FunctionCommon struct {
	Base
	Params     []Parameter
	ResultType TypeExpression
	Body       Node // *Block for a block body, Expression for an arrow's expression body
	UsesAwait  bool // set from the activation pushed while parsing the body
	UsesYield  bool
}

/*
FunctionExpression is `function name?(params) : T { … }`.
*/
type FunctionExpression struct {
	Base
	Name *string
	Common *FunctionCommon
}

func (*FunctionExpression) exprNode() {}

/*
ArrowFunction is `(params) : T => body`, built by reinterpreting an
already-parsed left operand when `=>` is seen in postfix position (spec.md
§4.3 "Arrow functions").
*/
type ArrowFunction struct {
	Base
	Common *FunctionCommon
}

func (*ArrowFunction) exprNode() {}

// Operators
// =========

/*
BinaryOperator enumerates every binary infix operator, including the
context-keyword-built NotIn/NotInstanceof/IsNot forms (spec.md §4.3 "Key
infix/postfix rules").
*/
type BinaryOperator int

const (
	OpAdd BinaryOperator = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpRemainder
	OpExponent
	OpEquals
	OpNotEquals
	OpStrictEquals
	OpStrictNotEquals
	OpLt
	OpGt
	OpLe
	OpGe
	OpIn
	OpNotIn
	OpInstanceOf
	OpNotInstanceOf
	OpIs
	OpIsNot
	OpAs
	OpLogicalAnd
	OpLogicalOr
	OpLogicalXor
	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseXor
	OpLeftShift
	OpRightShift
	OpUnsignedRightShift
	OpNullCoalescing
)

/*
Binary is a binary-operator expression.
*/
type Binary struct {
	Base
	Operator BinaryOperator
	Left     Expression
	Right    Expression
}

func (*Binary) exprNode() {}

/*
UnaryOperator enumerates prefix unary operators. OpAwaitAlias/OpYieldAlias
fold `await X`/`yield X?` into the same Unary node rather than adding two
near-duplicate node types (spec.md §4.3 "Primary expressions").
*/
type UnaryOperator int

const (
	OpPositive UnaryOperator = iota
	OpNegative
	OpLogicalNot
	OpBitwiseNot
	OpPreIncrement
	OpPreDecrement
	OpDelete
	OpTypeOf
	OpVoidOp
	OpAwaitAlias
	OpYieldAlias
)

/*
Unary is a prefix unary-operator expression.
*/
type Unary struct {
	Base
	Operator UnaryOperator
	Operand  Expression
}

func (*Unary) exprNode() {}

/*
PostfixOperator enumerates postfix operators: `++`, `--`, and the non-null
assertion `!`.
*/
type PostfixOperator int

const (
	OpPostIncrement PostfixOperator = iota
	OpPostDecrement
	OpNonNull
)

/*
Postfix is a postfix-operator expression. Per spec.md §4.3, these may not
follow a line break: when the operator is preceded by one, the parser does
not build this node and leaves the operator token to whatever follows; no
ExpressionMustNotFollowLineBreak diagnostic is emitted for it.
*/
type Postfix struct {
	Base
	Operator UnaryOperatorPostfixAlias
	Operand  Expression
}

/*
UnaryOperatorPostfixAlias exists only so Postfix.Operator's type name
documents intent at the call site; it is a plain alias of PostfixOperator.
*/
type UnaryOperatorPostfixAlias = PostfixOperator

func (*Postfix) exprNode() {}

/*
Assignment is `left op right`, where op is either plain `=` or one of the
compound assignment operators. Compound is nil for plain assignment.
*/
type Assignment struct {
	Base
	Left     Expression // may be a *Destructuring-carrying node after reinterpretation
	Compound *BinaryOperator
	Right    Expression
}

func (*Assignment) exprNode() {}

/*
Conditional is `test ? consequent : alternative`.
*/
type Conditional struct {
	Base
	Test        Expression
	Consequent  Expression
	Alternative Expression
}

func (*Conditional) exprNode() {}

/*
Sequence is the comma operator: `left, right`, left-associative.
*/
type Sequence struct {
	Base
	Left  Expression
	Right Expression
}

func (*Sequence) exprNode() {}

// E4X XML literals
// ================

/*
XmlAttribute is one `name="value"` or `name={expr}` attribute of an
XmlElement, or a whole `{expr}` attribute set when Name is empty and Spread
is set.
*/
type XmlAttribute struct {
	Base
	Name        string
	StaticValue *string
	DynamicValue Expression
	Spread      Expression
}

/*
XmlElement is `<name attrs…>content…</name>` or the self-closing
`<name attrs… />` form. DynamicName is set instead of Name for `<{expr}>`.
*/
type XmlElement struct {
	Base
	Name        string
	DynamicName Expression
	Attributes  []XmlAttribute
	Content     []Expression // XmlMarkupLiteral, XmlTextLiteral, *XmlElement, or an embedded {expr}
	SelfClosing bool
}

func (*XmlElement) exprNode() {}

/*
XmlList is `<>content…</>`.
*/
type XmlList struct {
	Base
	Content []Expression
}

func (*XmlList) exprNode() {}

/*
XmlMarkupLiteral is a verbatim `<!-- … -->`, `<![CDATA[ … ]]>`, or
`<? … ?>` markup token captured as XML content.
*/
type XmlMarkupLiteral struct {
	Base
	Text string
}

func (*XmlMarkupLiteral) exprNode() {}

/*
XmlTextLiteral is a run of XML text content between tags.
*/
type XmlTextLiteral struct {
	Base
	Text string
}

func (*XmlTextLiteral) exprNode() {}

// Embed
// =====

/*
Embed is `embed { fields… }` (canonical object-initializer form per
spec.md §9's Open Questions) or `embed "source"` (the string form, accepted
and represented via Source).
*/
type Embed struct {
	Base
	Object *ObjectInitializer
	Source *StringLiteral
}

func (*Embed) exprNode() {}

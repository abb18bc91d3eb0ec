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

/*
AnyType is the `*` type term (spec.md §4.3 "Type expressions").
*/
type AnyType struct{ Base }

func (*AnyType) exprNode()     {}
func (*AnyType) typeExprNode() {}

/*
VoidType is the `void` type term.
*/
type VoidType struct{ Base }

func (*VoidType) exprNode()     {}
func (*VoidType) typeExprNode() {}

/*
NullableType is `T?`.
*/
type NullableType struct {
	Base
	Base_ TypeExpression
}

func (*NullableType) exprNode()     {}
func (*NullableType) typeExprNode() {}

/*
NonNullableType is `T!`.
*/
type NonNullableType struct {
	Base
	Base_ TypeExpression
}

func (*NonNullableType) exprNode()     {}
func (*NonNullableType) typeExprNode() {}

/*
TypeIdentifier is a qualified identifier used as a type term.
*/
type TypeIdentifier struct {
	Base
	Name *QualifiedIdentifier
}

func (*TypeIdentifier) exprNode()     {}
func (*TypeIdentifier) typeExprNode() {}

/*
MemberType is `T.id`.
*/
type MemberType struct {
	Base
	Base_ TypeExpression
	Name  *QualifiedIdentifier
}

func (*MemberType) exprNode()     {}
func (*MemberType) typeExprNode() {}

/*
TypeWithArguments is `T.<A1, A2, …>`.
*/
type TypeWithArguments struct {
	Base
	Base_     TypeExpression
	Arguments []TypeExpression
}

func (*TypeWithArguments) exprNode()     {}
func (*TypeWithArguments) typeExprNode() {}

/*
ParenType is `(T)`.
*/
type ParenType struct {
	Base
	Operand TypeExpression
}

func (*ParenType) exprNode()     {}
func (*ParenType) typeExprNode() {}

/*
ArrayTypeExpression is `[T]`.
*/
type ArrayTypeExpression struct {
	Base
	ElementType TypeExpression
}

func (*ArrayTypeExpression) exprNode()     {}
func (*ArrayTypeExpression) typeExprNode() {}

/*
TupleTypeExpression is `[T1, T2, …]` with more than one element.
*/
type TupleTypeExpression struct {
	Base
	ElementTypes []TypeExpression
}

func (*TupleTypeExpression) exprNode()     {}
func (*TupleTypeExpression) typeExprNode() {}

/*
FunctionTypeExpression is `function(params): T`. A result type is mandatory
(spec.md §4.3 "Type expressions").
*/
type FunctionTypeExpression struct {
	Base
	Params     []Parameter
	ResultType TypeExpression
}

func (*FunctionTypeExpression) exprNode()     {}
func (*FunctionTypeExpression) typeExprNode() {}

/*
RecordTypeField is one `name: T` entry of a RecordTypeExpression.
*/
type RecordTypeField struct {
	Base
	Name string
	Type TypeExpression
}

/*
RecordTypeExpression is a structural record type `{ name: T, … }`.
*/
type RecordTypeExpression struct {
	Base
	Fields []RecordTypeField
}

func (*RecordTypeExpression) exprNode()     {}
func (*RecordTypeExpression) typeExprNode() {}

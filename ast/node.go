/*
 * as3parser
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package ast defines the located, closed-sum AST node types produced by
// package parser (spec.md C7). Nodes are shared by reference - the same
// sub-expression may be referenced from more than one parent after a
// reinterpretation pass (array initializer -> destructuring, paren
// expression -> parameter list, call expression -> metadata) - and are
// immutable after construction except for the handful of internal flags
// spec.md §3/§9 call out explicitly (e.g. a destructuring pattern's
// non-null marker).
package ast

import "devt.de/krotik/as3parser/source"

/*
Node is implemented by every AST node: expressions, directives/statements,
destructuring patterns, qualified identifiers, metadata, and type terms.
*/
type Node interface {
	Loc() source.Location
}

/*
Base carries the Location every node embeds. Embed it by value so Loc() is
promoted for free.
*/
type Base struct {
	Location source.Location
}

/*
Loc returns this node's source location.
*/
func (b Base) Loc() source.Location {
	return b.Location
}

/*
Expression is implemented by every node in the expression closed sum
(spec.md §3 "Expression").
*/
type Expression interface {
	Node
	exprNode()
}

/*
Directive is implemented by every node in the directive/statement closed
sum (spec.md §3 "Directive / Statement").
*/
type Directive interface {
	Node
	directiveNode()
}

/*
TypeExpression is implemented by every type-grammar node (spec.md §4.3
"Type expressions"). Type expressions are also ordinary Expression nodes in
a handful of contexts (e.g. a bare identifier used as a type), so
TypeExpression embeds Expression rather than standing apart from it.
*/
type TypeExpression interface {
	Expression
	typeExprNode()
}

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
Destructuring is a typed binding pattern (spec.md §3 "Destructuring"). A
Destructuring is exactly one of: a plain Binding (identifier), a
RecordFields pattern, or an ArrayItems pattern. Type and NonNull may be set
regardless of which pattern kind this is.
*/
type Destructuring struct {
	Base
	BindingName string // set when this is a plain identifier binding

	RecordFields []RecordPatternField // set when this is a record pattern
	ArrayItems   []ArrayPatternItem   // set when this is an array pattern

	Type    TypeExpression
	NonNull bool // filled in during post-parse refinement (spec.md §3 "Ownership")
}

func (*Destructuring) exprNode() {}

/*
Kind reports which of the three pattern shapes this Destructuring is.
*/
func (d *Destructuring) Kind() DestructuringKind {
	switch {
	case d.RecordFields != nil:
		return DestructureRecord
	case d.ArrayItems != nil:
		return DestructureArray
	default:
		return DestructureBinding
	}
}

/*
DestructuringKind distinguishes the three Destructuring shapes.
*/
type DestructuringKind int

const (
	DestructureBinding DestructuringKind = iota
	DestructureRecord
	DestructureArray
)

/*
RecordPatternField is one field of a record destructuring pattern: a key
with an optional alias sub-pattern and an optional non-null marker
(`{ key: alias! }`).
*/
type RecordPatternField struct {
	Base
	Key     string
	Alias   *Destructuring // nil when the field is a shorthand `{ key }`
	NonNull bool
}

/*
ArrayPatternItem is one entry of an array destructuring pattern: a nullable
pattern, a rest pattern (`...name`), or an elision (both Pattern and Rest
nil).
*/
type ArrayPatternItem struct {
	Base
	Pattern *Destructuring
	Rest    *Destructuring
}

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

/*
QualifiedIdentifier is (attribute?, qualifier?, name-or-brackets) per
spec.md §3. Qualifier is an arbitrary Expression (commonly a
ReservedNamespace or a paren-wrapped expression). Exactly one of Name or
Brackets is set: a plain name carries Name/NameLocation, a computed member
name (e.g. `ns::[expr]`) carries Brackets.
*/
type QualifiedIdentifier struct {
	Base
	Attribute    bool
	Qualifier    Expression
	Name         string
	NameLocation source.Location
	Brackets     Expression
}

func (*QualifiedIdentifier) exprNode() {}

/*
IsComputed reports whether this identifier's name is a computed brackets
expression rather than a plain name.
*/
func (q *QualifiedIdentifier) IsComputed() bool {
	return q.Brackets != nil
}

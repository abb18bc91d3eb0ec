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
MetadataEntry is one entry inside a `[Name(entries…)]` metadata attribute:
either a bare value or a `key=value` pair (spec.md §4.4 "Annotatable
directives").
*/
type MetadataEntry struct {
	Base
	Key   *string // nil for a bare value
	Value string
}

/*
Metadata is a `[Name(entries…)]` attribute. The parser reads it directly
from the tokens at the start of a directive, before any expression is
parsed; it is not derived from an already-parsed array literal or computed
member expression.
*/
type Metadata struct {
	Base
	Name    string
	Entries []MetadataEntry
}

/*
Modifier enumerates the access/modifier keywords an annotatable directive
may carry ahead of `var|const|function|class|interface|enum|namespace|type`.
*/
type Modifier int

const (
	ModPublic Modifier = iota
	ModPrivate
	ModProtected
	ModInternal
	ModStatic
	ModFinal
	ModOverride
	ModNative
	ModAbstract
	ModDynamic
)

/*
Attributes is the parsed prefix of an annotatable directive: zero or more
metadata entries, an optional ASDoc, zero or more modifier keywords, and at
most one user-defined namespace expression used as a custom attribute.
*/
type Attributes struct {
	Metadata          []*Metadata
	Doc               *AsDoc
	Modifiers         []Modifier
	NamespaceModifier Expression // a user-defined namespace qualifier, if any
}

/*
HasModifier reports whether m is present in this attribute set.
*/
func (a *Attributes) HasModifier(m Modifier) bool {
	for _, x := range a.Modifiers {
		if x == m {
			return true
		}
	}
	return false
}

/*
 * as3parser
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package source

import "fmt"

/*
Location is a byte range into a CompilationUnit. Every AST node and every
Diagnostic carries one. FirstOffset <= LastOffset <= len(unit text) always
holds.
*/
type Location struct {
	Unit        *CompilationUnit
	FirstOffset int
	LastOffset  int
}

/*
NewLocation builds a Location spanning [first, last) of the given unit.
*/
func NewLocation(unit *CompilationUnit, first, last int) Location {
	return Location{unit, first, last}
}

/*
Combine returns a Location that spans from the start of a to the end of b.
Both must belong to the same CompilationUnit.
*/
func Combine(a, b Location) Location {
	return Location{a.Unit, a.FirstOffset, b.LastOffset}
}

/*
CombineWith is the method form of Combine: self through other.
*/
func (l Location) CombineWith(other Location) Location {
	return Combine(l, other)
}

/*
Text returns the source substring covered by this location.
*/
func (l Location) Text() string {
	if l.Unit == nil {
		return ""
	}
	return l.Unit.Text()[l.FirstOffset:l.LastOffset]
}

/*
FirstLineNumber returns the 1-based line number of FirstOffset.
*/
func (l Location) FirstLineNumber() int {
	if l.Unit == nil {
		return 0
	}
	return l.Unit.LineNumberAtOffset(l.FirstOffset)
}

/*
FirstColumnNumber returns the 1-based column number of FirstOffset.
*/
func (l Location) FirstColumnNumber() int {
	if l.Unit == nil {
		return 0
	}
	line := l.FirstLineNumber()
	offset, ok := l.Unit.LineOffset(line)
	if !ok {
		return 0
	}
	return l.FirstOffset - offset + 1
}

/*
String returns a human-readable "line:column" representation.
*/
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.FirstLineNumber(), l.FirstColumnNumber())
}

/*
Contains reports whether this location fully encloses other, satisfying
the AST-location-nesting invariant from the testable properties.
*/
func (l Location) Contains(other Location) bool {
	return l.FirstOffset <= other.FirstOffset && other.LastOffset <= l.LastOffset
}

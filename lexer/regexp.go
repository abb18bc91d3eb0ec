/*
 * as3parser
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"devt.de/krotik/as3parser/source"
	"devt.de/krotik/as3parser/token"
)

/*
ScanRegExpLiteral scans a regular-expression literal body and flags. Called
by the parser only after it has already consumed a leading '/' or '/=' and
decided - from grammatical context - that a regexp, not division, is
required (spec.md C6 "Scan modes"). start is the location of that already
consumed slash; the returned Location spans from there to the end of the
flags.
*/
func (t *Tokenizer) ScanRegExpLiteral(start source.Location) (token.Token, source.Location) {
	bodyStart := t.cr.Index()
	inClass := false
	for {
		if t.cr.ReachedEnd() {
			t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.UnexpectedEnd))
			break
		}
		ch := t.cr.PeekOrZero()
		if ch == '\n' || ch == '\r' {
			t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.UnterminatedStringLiteral))
			break
		}
		if ch == '\\' {
			t.cr.SkipCountInPlace(2)
			continue
		}
		if ch == '[' {
			inClass = true
		} else if ch == ']' {
			inClass = false
		} else if ch == '/' && !inClass {
			break
		}
		t.cr.Next()
	}
	body := t.unit.Text()[bodyStart:t.cr.Index()]
	if !t.cr.ReachedEnd() {
		t.cr.Next() // closing slash
	}
	flagStart := t.cr.Index()
	for isIdentifierPart(t.cr.PeekOrZero()) {
		t.cr.Next()
	}
	flags := t.unit.Text()[flagStart:t.cr.Index()]

	tok := token.Token{Kind: token.RegExpLiteral, Val: body, RegExpFlags: flags}
	return t.emit(start, tok)
}

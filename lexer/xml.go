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
ScanXmlMarkup attempts to scan an XML markup token ("<!-- ... -->",
"<![CDATA[ ... ]]>", "<? ... ?>") starting at the current '<'. Returns ok =
false (without consuming anything) if the input at the cursor is not one of
these three forms, so the caller can fall back to XML-tag-mode scanning for
an element or list (spec.md C6 "scan_ie_xml_content").
*/
func (t *Tokenizer) ScanXmlMarkup() (token.Token, source.Location, bool) {
	if t.cr.PeekOrZero() != '<' {
		return token.Token{}, source.Location{}, false
	}
	start := t.CursorLocation()

	switch {
	case t.cr.PeekAtOrZero(1) == '!' && t.cr.PeekAtOrZero(2) == '-' && t.cr.PeekAtOrZero(3) == '-':
		t.cr.SkipCountInPlace(4)
		t.scanUntilMarkupClose("-->")
	case t.cr.PeekAtOrZero(1) == '!' && t.cr.PeekSeq(9) == "<![CDATA[":
		t.cr.SkipCountInPlace(9)
		t.scanUntilMarkupClose("]]>")
	case t.cr.PeekAtOrZero(1) == '?':
		t.cr.SkipCountInPlace(2)
		t.scanUntilMarkupClose("?>")
	default:
		return token.Token{}, source.Location{}, false
	}

	raw := t.unit.Text()[start.FirstOffset:t.cr.Index()]
	tok, loc := t.emit(start, token.Token{Kind: token.XmlMarkup, Val: raw})
	return tok, loc, true
}

func (t *Tokenizer) scanUntilMarkupClose(closer string) {
	n := len(closer)
	for {
		if t.cr.ReachedEnd() {
			t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.UnexpectedEnd))
			return
		}
		if t.cr.PeekSeq(n) == closer {
			t.cr.SkipCountInPlace(n)
			return
		}
		t.cr.Next()
	}
}

/*
ScanIEXmlTag scans one token inside an XML opening/closing tag, where
whitespace is significant and emitted as XmlWhitespace rather than skipped.
*/
func (t *Tokenizer) ScanIEXmlTag() (token.Token, source.Location) {
	start := t.CursorLocation()
	ch := t.cr.PeekOrZero()

	if isXmlWhitespace(ch) {
		for isXmlWhitespace(t.cr.PeekOrZero()) {
			t.cr.Next()
		}
		return t.emit(start, token.Token{Kind: token.XmlWhitespace})
	}

	switch ch {
	case '=':
		t.cr.Next()
		return t.emit(start, token.NewToken(token.Assign))
	case '/':
		if t.cr.PeekAtOrZero(1) == '>' {
			t.cr.SkipCountInPlace(2)
			return t.emit(start, token.NewToken(token.XmlSlashGt))
		}
	case '>':
		t.cr.Next()
		return t.emit(start, token.NewToken(token.Gt))
	case '<':
		if t.cr.PeekAtOrZero(1) == '/' {
			t.cr.SkipCountInPlace(2)
			return t.emit(start, token.NewToken(token.XmlLtSlash))
		}
		t.cr.Next()
		return t.emit(start, token.NewToken(token.Lt))
	case '{':
		t.cr.Next()
		return t.emit(start, token.NewToken(token.LeftBrace))
	case '}':
		t.cr.Next()
		return t.emit(start, token.NewToken(token.RightBrace))
	case '"', '\'':
		return t.scanXmlAttributeValue(ch)
	}

	if isIdentifierStart(ch) || isXmlNameStart(ch) {
		return t.scanXmlName()
	}

	if t.cr.ReachedEnd() {
		return t.emit(start, token.NewToken(token.EOF))
	}

	t.cr.Next()
	t.unit.AddDiagnostic(source.NewDiagnostic(start, source.UnexpectedOrInvalidToken))
	return t.emit(start, token.NewToken(token.Error))
}

func isXmlWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func isXmlNameStart(ch rune) bool {
	return ch == ':' || ch == '-' || ch == '.'
}

func (t *Tokenizer) scanXmlName() (token.Token, source.Location) {
	start := t.CursorLocation()
	for {
		ch := t.cr.PeekOrZero()
		if isIdentifierPart(ch) || ch == ':' || ch == '-' || ch == '.' {
			t.cr.Next()
			continue
		}
		break
	}
	name := t.unit.Text()[start.FirstOffset:t.cr.Index()]
	if name == "" {
		t.unit.AddDiagnostic(source.NewDiagnostic(start, source.ExpectedXmlName))
	}
	return t.emit(start, token.Token{Kind: token.XmlName, Val: name})
}

func (t *Tokenizer) scanXmlAttributeValue(quote rune) (token.Token, source.Location) {
	start := t.CursorLocation()
	t.cr.Next()
	contentStart := t.cr.Index()
	for {
		if t.cr.ReachedEnd() {
			t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.ExpectedXmlAttributeValue))
			break
		}
		if t.cr.PeekOrZero() == quote {
			break
		}
		t.cr.Next()
	}
	val := t.unit.Text()[contentStart:t.cr.Index()]
	if !t.cr.ReachedEnd() {
		t.cr.Next()
	}
	return t.emit(start, token.Token{Kind: token.XmlAttributeValue, Val: val})
}

/*
ScanIEXmlContent scans one token between an element's opening and closing
tags: XmlText up to the next '<' or '{', XmlLtSlash, Lt, or an XmlMarkup
(handled upstream via ScanXmlMarkup before this is reached for a '<').
*/
func (t *Tokenizer) ScanIEXmlContent() (token.Token, source.Location) {
	start := t.CursorLocation()
	ch := t.cr.PeekOrZero()

	if ch == '<' {
		if t.cr.PeekAtOrZero(1) == '/' {
			t.cr.SkipCountInPlace(2)
			return t.emit(start, token.NewToken(token.XmlLtSlash))
		}
		t.cr.Next()
		return t.emit(start, token.NewToken(token.Lt))
	}
	if ch == '{' {
		t.cr.Next()
		return t.emit(start, token.NewToken(token.LeftBrace))
	}
	if t.cr.ReachedEnd() {
		return t.emit(start, token.NewToken(token.EOF))
	}

	textStart := t.cr.Index()
	for {
		c := t.cr.PeekOrZero()
		if c == '<' || c == '{' || t.cr.ReachedEnd() {
			break
		}
		t.cr.Next()
	}
	text := t.unit.Text()[textStart:t.cr.Index()]
	return t.emit(start, token.Token{Kind: token.XmlText, Val: text})
}

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
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"devt.de/krotik/as3parser/source"
	"devt.de/krotik/as3parser/token"
	"devt.de/krotik/common/stringutil"
)

func isIdentifierStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch)
}

func isIdentifierPart(ch rune) bool {
	return isIdentifierStart(ch) || unicode.IsDigit(ch) || ch == 0x200C || ch == 0x200D
}

/*
scanIdentifier scans an identifier or reserved word, including \uXXXX /
\u{XXXX} escapes. An escape anywhere in the spelling suppresses reserved-word
promotion so keywords may be used as identifiers via escaping (spec.md C6
"Identifiers").
*/
func (t *Tokenizer) scanIdentifier() (token.Token, source.Location, bool) {
	ch := t.cr.PeekOrZero()
	if !isIdentifierStart(ch) && ch != '\\' {
		return token.Token{}, source.Location{}, false
	}
	start := t.CursorLocation()

	var b strings.Builder
	escaped := false

	readPart := func(isFirst bool) bool {
		if t.cr.PeekOrZero() == '\\' && (t.cr.PeekAtOrZero(1) == 'u') {
			escaped = true
			t.cr.SkipCountInPlace(2)
			var r rune
			if t.cr.PeekOrZero() == '{' {
				t.cr.Next()
				digStart := t.cr.Index()
				for t.cr.PeekOrZero() != '}' && !t.cr.ReachedEnd() {
					t.cr.Next()
				}
				hex := t.unit.Text()[digStart:t.cr.Index()]
				if !t.cr.ReachedEnd() {
					t.cr.Next()
				}
				v, err := strconv.ParseInt(hex, 16, 64)
				if err != nil || v > 0x10FFFF {
					t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.InvalidUnicodeEscape))
					return true
				}
				r = rune(v)
			} else {
				digStart := t.cr.Index()
				t.cr.SkipCountInPlace(4)
				hex := t.unit.Text()[digStart:t.cr.Index()]
				v, err := strconv.ParseInt(hex, 16, 32)
				if err != nil {
					t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.InvalidUnicodeEscape))
					return true
				}
				r = rune(v)
			}
			if isFirst && !isIdentifierStart(r) {
				t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.InvalidUnicodeEscape))
			}
			b.WriteRune(r)
			return true
		}
		r := t.cr.PeekOrZero()
		ok := isFirst && isIdentifierStart(r) || !isFirst && isIdentifierPart(r)
		if !ok {
			return false
		}
		t.cr.Next()
		b.WriteRune(r)
		return true
	}

	if !readPart(true) {
		return token.Token{}, source.Location{}, false
	}
	for readPart(false) {
	}

	name := b.String()
	tok := token.Token{Kind: token.Identifier, Val: name, Escaped: escaped}
	if !escaped {
		if kind, ok := token.ReservedWords[name]; ok {
			tok.Kind = kind
		}
	}
	res, loc := t.emit(start, tok)
	return res, loc, true
}

func isDecimalDigit(ch rune) bool { return ch >= '0' && ch <= '9' }
func isHexDigit(ch rune) bool {
	return isDecimalDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
func isBinaryDigit(ch rune) bool { return ch == '0' || ch == '1' }

/*
scanDotOrNumericLiteral scans either a NumericLiteral, or - when a lone '.'
is not followed by a digit - falls through by returning false so the caller
treats it as punctuation instead (handled by scanPunctuator's Dot case).
Underscores are permitted between digits of the same class; value parsing
itself stays deferred (spec.md C6 "Numeric literals").
*/
func (t *Tokenizer) scanDotOrNumericLiteral() (token.Token, source.Location, bool) {
	ch := t.cr.PeekOrZero()
	if ch == '.' {
		if !isDecimalDigit(t.cr.PeekAtOrZero(1)) {
			return token.Token{}, source.Location{}, false
		}
	} else if !isDecimalDigit(ch) {
		return token.Token{}, source.Location{}, false
	}

	start := t.CursorLocation()

	digitRun := func(class func(rune) bool) {
		for {
			c := t.cr.PeekOrZero()
			if class(c) {
				t.cr.Next()
				continue
			}
			if c == '_' && class(t.cr.PeekAtOrZero(1)) {
				t.cr.Next()
				continue
			}
			break
		}
	}

	if ch == '0' && (t.cr.PeekAtOrZero(1) == 'x' || t.cr.PeekAtOrZero(1) == 'X') {
		t.cr.SkipCountInPlace(2)
		digitRun(isHexDigit)
	} else if ch == '0' && (t.cr.PeekAtOrZero(1) == 'b' || t.cr.PeekAtOrZero(1) == 'B') {
		t.cr.SkipCountInPlace(2)
		digitRun(isBinaryDigit)
	} else {
		digitRun(isDecimalDigit)
		if t.cr.PeekOrZero() == '.' {
			t.cr.Next()
			digitRun(isDecimalDigit)
		}
		if t.cr.PeekOrZero() == 'e' || t.cr.PeekOrZero() == 'E' {
			t.cr.Next()
			if t.cr.PeekOrZero() == '+' || t.cr.PeekOrZero() == '-' {
				t.cr.Next()
			}
			digitRun(isDecimalDigit)
		}
	}

	suffix := token.NoSuffix
	nxt := t.cr.PeekOrZero()
	if nxt == 'f' || nxt == 'F' {
		if !isIdentifierPart(t.cr.PeekAtOrZero(1)) {
			t.cr.Next()
			suffix = token.FloatSuffix
		}
	}
	if isIdentifierStart(t.cr.PeekOrZero()) {
		t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.MalformedNumericLiteralSuffix))
	}

	raw := t.unit.Text()[start.FirstOffset:t.cr.Index()]
	tok := token.Token{Kind: token.NumericLiteral, Val: raw, Suffix: suffix}
	res, loc := t.emit(start, tok)
	return res, loc, true
}

/*
scanStringLiteral scans a single-, double-, or triple-quoted string, the
raw '@"..."' form (which suppresses escape processing), handling the escape
set from spec.md C6 ("String literals"). raw forces raw mode (no escape
processing) even without a leading '@'; the default-mode scan passes false.
*/
func (t *Tokenizer) scanStringLiteral(raw bool) (token.Token, source.Location, bool) {
	start := t.CursorLocation()
	isRaw := raw
	if !isRaw && t.cr.PeekOrZero() == '@' && (t.cr.PeekAtOrZero(1) == '"' || t.cr.PeekAtOrZero(1) == '\'') {
		isRaw = true
		t.cr.Next()
	}
	quote := t.cr.PeekOrZero()
	if quote != '"' && quote != '\'' {
		return token.Token{}, source.Location{}, false
	}

	triple := t.cr.PeekAtOrZero(1) == quote && t.cr.PeekAtOrZero(2) == quote
	if triple {
		t.cr.SkipCountInPlace(3)
	} else {
		t.cr.Next()
	}

	var b strings.Builder
	allowEscapes := !isRaw
	terminated := false

	closeSeq := func() bool {
		if triple {
			return t.cr.PeekOrZero() == quote && t.cr.PeekAtOrZero(1) == quote && t.cr.PeekAtOrZero(2) == quote
		}
		return t.cr.PeekOrZero() == quote
	}

	for {
		if t.cr.ReachedEnd() {
			t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.UnterminatedStringLiteral))
			break
		}
		if closeSeq() {
			terminated = true
			if triple {
				t.cr.SkipCountInPlace(3)
			} else {
				t.cr.Next()
			}
			break
		}
		ch := t.cr.PeekOrZero()
		if !triple && (ch == '\n' || ch == '\r' || ch == ' ' || ch == ' ') {
			t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.StringLiteralContainsLineBreak))
			break
		}
		if allowEscapes && ch == '\\' {
			t.scanEscape(&b)
			continue
		}
		t.cr.Next()
		b.WriteRune(ch)
	}
	_ = terminated

	val := b.String()
	if triple {
		val = destripeTripleQuoted(val)
	}

	tok := token.Token{Kind: token.StringLiteral, Val: val, AllowEscapes: allowEscapes}
	res, loc := t.emit(start, tok)
	return res, loc, true
}

func (t *Tokenizer) scanEscape(b *strings.Builder) {
	t.cr.Next() // consume backslash
	ch := t.cr.PeekOrZero()
	switch ch {
	case '\'', '"', '\\':
		t.cr.Next()
		b.WriteRune(ch)
	case 'b':
		t.cr.Next()
		b.WriteRune('\b')
	case 'f':
		t.cr.Next()
		b.WriteRune('\f')
	case 'n':
		t.cr.Next()
		b.WriteRune('\n')
	case 'r':
		t.cr.Next()
		b.WriteRune('\r')
	case 't':
		t.cr.Next()
		b.WriteRune('\t')
	case 'v':
		t.cr.Next()
		b.WriteRune('\v')
	case '0':
		t.cr.Next()
		if isDecimalDigit(t.cr.PeekOrZero()) {
			t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.InvalidEscape))
		}
		b.WriteRune(0)
	case 'x':
		t.cr.Next()
		digStart := t.cr.Index()
		for i := 0; i < 2 && isHexDigit(t.cr.PeekOrZero()); i++ {
			t.cr.Next()
		}
		hex := t.unit.Text()[digStart:t.cr.Index()]
		v, err := strconv.ParseInt(hex, 16, 32)
		if err != nil || len(hex) != 2 {
			t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.InvalidHexEscape))
			return
		}
		b.WriteRune(rune(v))
	case 'u':
		t.cr.Next()
		if t.cr.PeekOrZero() == '{' {
			t.cr.Next()
			digStart := t.cr.Index()
			for t.cr.PeekOrZero() != '}' && !t.cr.ReachedEnd() {
				t.cr.Next()
			}
			hex := t.unit.Text()[digStart:t.cr.Index()]
			if !t.cr.ReachedEnd() {
				t.cr.Next()
			}
			v, err := strconv.ParseInt(hex, 16, 64)
			if err != nil || v > 0x10FFFF {
				t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.InvalidUnicodeEscape))
				return
			}
			b.WriteRune(rune(v))
			return
		}
		digStart := t.cr.Index()
		t.cr.SkipCountInPlace(4)
		hex := t.unit.Text()[digStart:t.cr.Index()]
		v, err := strconv.ParseInt(hex, 16, 32)
		if err != nil || len(hex) != 4 {
			t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.InvalidUnicodeEscape))
			return
		}
		b.WriteRune(rune(v))
	case '\n', '\r', ' ', ' ':
		// line continuation: elide the break
		if ch == '\r' {
			t.cr.Next()
			if t.cr.PeekOrZero() == '\n' {
				t.cr.Next()
			}
		} else {
			t.cr.Next()
		}
	default:
		t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.InvalidEscape))
		if ch != utf8.RuneError {
			t.cr.Next()
			b.WriteRune(ch)
		}
	}
}

/*
destripeTripleQuoted implements triple-quoted string destriping: drop a
leading blank line, then strip up to the trailing line's indent from every
line (spec.md C6 "String literals").
*/
func destripeTripleQuoted(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > 1 && strings.TrimRight(lines[0], "\r") == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return content
	}
	last := lines[len(lines)-1]
	indent := 0
	for indent < len(last) && (last[indent] == ' ' || last[indent] == '\t') {
		indent++
	}
	if len(lines) > 1 {
		lines = lines[:len(lines)-1]
	}

	// indentPrefix mirrors the teacher's prettyprinter.go use of
	// stringutil.GenerateRollingString to build an indent string for
	// comparison rather than hand-counting repeated characters.
	indentPrefix := stringutil.GenerateRollingString(" ", indent)
	for i, ln := range lines {
		if strings.HasPrefix(ln, indentPrefix) {
			lines[i] = ln[len(indentPrefix):]
			continue
		}
		cut := indent
		if cut > len(ln) {
			cut = len(ln)
		}
		j := 0
		for j < cut && (ln[j] == ' ' || ln[j] == '\t') {
			j++
		}
		lines[i] = ln[j:]
	}
	return strings.Join(lines, "\n")
}

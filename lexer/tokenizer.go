/*
 * as3parser
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

// Package lexer implements the stateful tokenizer described in spec.md C6:
// four scan modes switched by the parser's grammatical context, plus
// comment/ASDoc collection and the compound '>' splitting generics need.
package lexer

import (
	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/as3parser/source"
	"devt.de/krotik/as3parser/token"
)

/*
Tokenizer scans a single CompilationUnit's text on demand. It never runs
ahead of the parser: every Scan* method produces exactly one token.
*/
type Tokenizer struct {
	unit *source.CompilationUnit
	cr   *source.CharReader
}

/*
NewTokenizer constructs a tokenizer over unit's text. Asserts (via
errorutil, following the teacher's invariant-checking idiom) that unit has
not already been tokenized - a CompilationUnit may be tokenized at most once.
*/
func NewTokenizer(unit *source.CompilationUnit) *Tokenizer {
	unit.MarkTokenized()
	return &Tokenizer{unit: unit, cr: source.NewCharReader(unit.Text())}
}

/*
Unit returns the CompilationUnit this tokenizer scans.
*/
func (t *Tokenizer) Unit() *source.CompilationUnit {
	return t.unit
}

/*
CursorLocation returns a zero-width Location at the current cursor position.
*/
func (t *Tokenizer) CursorLocation() source.Location {
	i := t.cr.Index()
	return source.NewLocation(t.unit, i, i)
}

func (t *Tokenizer) emit(start source.Location, tok token.Token) (token.Token, source.Location) {
	return tok, start.CombineWith(t.CursorLocation())
}

/*
consumeLineTerminator consumes one line terminator (LF, CR, CRLF, U+2028,
U+2029) if the cursor is positioned at one, returning whether it consumed
anything.
*/
func (t *Tokenizer) consumeLineTerminator() bool {
	ch := t.cr.PeekOrZero()
	switch ch {
	case '\n':
		t.cr.Next()
		return true
	case '\r':
		t.cr.Next()
		if t.cr.PeekOrZero() == '\n' {
			t.cr.Next()
		}
		return true
	case ' ', ' ':
		t.cr.Next()
		return true
	}
	return false
}

/*
consumeComment consumes a single-line ("//") or multiline ("/* ... *\/")
comment if present, appending it to the CompilationUnit's comment list.
Returns whether a comment was consumed and whether it crossed a line break
(relevant to the caller's PrecededByLineBreak bookkeeping).
*/
func (t *Tokenizer) consumeComment() (consumed bool, crossedLine bool) {
	if t.cr.PeekOrZero() != '/' {
		return false, false
	}
	start := t.CursorLocation()
	if t.cr.PeekAtOrZero(1) == '/' {
		t.cr.SkipCountInPlace(2)
		contentStart := t.cr.Index()
		for t.cr.HasRemaining() {
			ch := t.cr.PeekOrZero()
			if ch == '\n' || ch == '\r' || ch == ' ' || ch == ' ' {
				break
			}
			t.cr.Next()
		}
		content := t.unit.Text()[contentStart:t.cr.Index()]
		loc := start.CombineWith(t.CursorLocation())
		t.unit.AddComment(&source.Comment{Multiline: false, Content: content, Location: loc})
		return true, false
	}
	if t.cr.PeekAtOrZero(1) == '*' {
		t.cr.SkipCountInPlace(2)
		contentStart := t.cr.Index()
		crossed := false
		for {
			if t.cr.ReachedEnd() {
				t.unit.AddDiagnostic(source.NewDiagnostic(t.CursorLocation(), source.UnterminatedComment))
				break
			}
			if t.cr.PeekOrZero() == '*' && t.cr.PeekAtOrZero(1) == '/' {
				break
			}
			if t.consumeLineTerminator() {
				crossed = true
				continue
			}
			t.cr.Next()
		}
		content := t.unit.Text()[contentStart:t.cr.Index()]
		if !t.cr.ReachedEnd() {
			t.cr.SkipCountInPlace(2)
		}
		loc := start.CombineWith(t.CursorLocation())
		t.unit.AddComment(&source.Comment{Multiline: true, Content: content, Location: loc})
		return true, crossed
	}
	return false, false
}

/*
skipTrivia consumes whitespace, line terminators, and comments, returning
whether any line terminator was crossed (for PrecededByLineBreak).
*/
func (t *Tokenizer) skipTrivia() bool {
	crossed := false
	for {
		ch := t.cr.PeekOrZero()
		if isWhitespace(ch) {
			t.cr.Next()
			continue
		}
		if t.consumeLineTerminator() {
			crossed = true
			continue
		}
		if ok, c := t.consumeComment(); ok {
			if c {
				crossed = true
			}
			continue
		}
		break
	}
	return crossed
}

func isWhitespace(ch rune) bool {
	switch ch {
	case ' ', '\t', '\v', '\f', ' ', 0xFEFF:
		return true
	}
	return false
}

/*
ScanIEDiv scans an InputElementDiv token: the default mode, where '/' is
division rather than the start of a regular expression.
*/
func (t *Tokenizer) ScanIEDiv() (token.Token, source.Location) {
	crossed := t.skipTrivia()

	if tok, loc, ok := t.scanIdentifier(); ok {
		tok.PrecededByLineBreak = crossed
		return tok, loc
	}
	if tok, loc, ok := t.scanDotOrNumericLiteral(); ok {
		tok.PrecededByLineBreak = crossed
		return tok, loc
	}
	if tok, loc, ok := t.scanStringLiteral(false); ok {
		tok.PrecededByLineBreak = crossed
		return tok, loc
	}

	start := t.CursorLocation()
	if t.cr.ReachedEnd() {
		tok, loc := t.emit(start, token.NewToken(token.EOF))
		tok.PrecededByLineBreak = crossed
		return tok, loc
	}

	tok, loc := t.scanPunctuator(start)
	tok.PrecededByLineBreak = crossed
	return tok, loc
}

/*
scanPunctuator scans one punctuator token starting at the cursor. Unknown
characters emit UnexpectedOrInvalidToken and are skipped by one codepoint so
scanning can continue (spec.md §7 recovery policy).
*/
func (t *Tokenizer) scanPunctuator(start source.Location) (token.Token, source.Location) {
	ch := t.cr.Next()

	three := func(a, b rune, kind token.Kind) (token.Token, source.Location, bool) {
		if t.cr.PeekOrZero() == a && t.cr.PeekAtOrZero(1) == b {
			t.cr.SkipCountInPlace(2)
			return t.emitOK(start, kind)
		}
		return token.Token{}, source.Location{}, false
	}
	_ = three

	switch ch {
	case ',':
		return t.emit(start, token.NewToken(token.Comma))
	case '(':
		return t.emit(start, token.NewToken(token.LeftParen))
	case ')':
		return t.emit(start, token.NewToken(token.RightParen))
	case '[':
		return t.emit(start, token.NewToken(token.LeftBracket))
	case ']':
		return t.emit(start, token.NewToken(token.RightBracket))
	case '{':
		return t.emit(start, token.NewToken(token.LeftBrace))
	case '}':
		return t.emit(start, token.NewToken(token.RightBrace))
	case '@':
		return t.emit(start, token.NewToken(token.At))
	case ':':
		if t.cr.PeekOrZero() == ':' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.ColonColon))
		}
		return t.emit(start, token.NewToken(token.Colon))
	case ';':
		return t.emit(start, token.NewToken(token.Semicolon))
	case '.':
		if t.cr.PeekOrZero() == '.' {
			t.cr.Next()
			if t.cr.PeekOrZero() == '.' {
				t.cr.Next()
				return t.emit(start, token.NewToken(token.DotDotDot))
			}
			return t.emit(start, token.NewToken(token.DotDot))
		}
		return t.emit(start, token.NewToken(token.Dot))
	case '?':
		switch {
		case t.cr.PeekOrZero() == '.':
			t.cr.Next()
			return t.emit(start, token.NewToken(token.QuestionDot))
		case t.cr.PeekOrZero() == '?' && t.cr.PeekAtOrZero(1) == '=':
			t.cr.SkipCountInPlace(2)
			return t.emit(start, token.NewToken(token.QuestionQuestionEquals))
		case t.cr.PeekOrZero() == '?':
			t.cr.Next()
			return t.emit(start, token.NewToken(token.QuestionQuestion))
		}
		return t.emit(start, token.NewToken(token.Question))
	case '!':
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			if t.cr.PeekOrZero() == '=' {
				t.cr.Next()
				return t.emit(start, token.NewToken(token.StrictNotEquals))
			}
			return t.emit(start, token.NewToken(token.ExclamationEquals))
		}
		return t.emit(start, token.NewToken(token.Exclamation))
	case '=':
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			if t.cr.PeekOrZero() == '=' {
				t.cr.Next()
				return t.emit(start, token.NewToken(token.StrictEquals))
			}
			return t.emit(start, token.NewToken(token.Equals))
		}
		if t.cr.PeekOrZero() == '>' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.Arrow))
		}
		return t.emit(start, token.NewToken(token.Assign))
	case '+':
		if t.cr.PeekOrZero() == '+' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.Increment))
		}
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.PlusAssign))
		}
		return t.emit(start, token.NewToken(token.Plus))
	case '-':
		if t.cr.PeekOrZero() == '-' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.Decrement))
		}
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.MinusAssign))
		}
		return t.emit(start, token.NewToken(token.Minus))
	case '*':
		if t.cr.PeekOrZero() == '*' {
			t.cr.Next()
			if t.cr.PeekOrZero() == '=' {
				t.cr.Next()
				return t.emit(start, token.NewToken(token.ExponentAssign))
			}
			return t.emit(start, token.NewToken(token.Exponent))
		}
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.TimesAssign))
		}
		return t.emit(start, token.NewToken(token.Times))
	case '/':
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.DivAssign))
		}
		return t.emit(start, token.NewToken(token.Div))
	case '%':
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.ModAssign))
		}
		return t.emit(start, token.NewToken(token.Modulus))
	case '&':
		if t.cr.PeekOrZero() == '&' {
			t.cr.Next()
			if t.cr.PeekOrZero() == '=' {
				t.cr.Next()
				return t.emit(start, token.NewToken(token.LogicalAndAssign))
			}
			return t.emit(start, token.NewToken(token.LogicalAnd))
		}
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.BitwiseAndAssign))
		}
		return t.emit(start, token.NewToken(token.BitwiseAnd))
	case '|':
		if t.cr.PeekOrZero() == '|' {
			t.cr.Next()
			if t.cr.PeekOrZero() == '=' {
				t.cr.Next()
				return t.emit(start, token.NewToken(token.LogicalOrAssign))
			}
			return t.emit(start, token.NewToken(token.LogicalOr))
		}
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.BitwiseOrAssign))
		}
		return t.emit(start, token.NewToken(token.BitwiseOr))
	case '^':
		if t.cr.PeekOrZero() == '^' {
			t.cr.Next()
			if t.cr.PeekOrZero() == '=' {
				t.cr.Next()
				return t.emit(start, token.NewToken(token.LogicalXorAssign))
			}
			return t.emit(start, token.NewToken(token.LogicalXor))
		}
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.BitwiseXorAssign))
		}
		return t.emit(start, token.NewToken(token.BitwiseXor))
	case '~':
		return t.emit(start, token.NewToken(token.BitwiseNot))
	case '<':
		if t.cr.PeekOrZero() == '<' {
			t.cr.Next()
			if t.cr.PeekOrZero() == '=' {
				t.cr.Next()
				return t.emit(start, token.NewToken(token.LeftShiftAssign))
			}
			return t.emit(start, token.NewToken(token.LeftShift))
		}
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.Le))
		}
		return t.emit(start, token.NewToken(token.Lt))
	case '>':
		// Generic '>' splitting means the tokenizer never eagerly combines
		// beyond a single compound token here; the parser peels layers off
		// via SplitGt when it needs a lone '>' to close a type-argument list.
		if t.cr.PeekOrZero() == '>' && t.cr.PeekAtOrZero(1) == '>' && t.cr.PeekAtOrZero(2) == '=' {
			t.cr.SkipCountInPlace(3)
			return t.emit(start, token.NewToken(token.GtGtGtEquals))
		}
		if t.cr.PeekOrZero() == '>' && t.cr.PeekAtOrZero(1) == '>' {
			t.cr.SkipCountInPlace(2)
			return t.emit(start, token.NewToken(token.GtGtGt))
		}
		if t.cr.PeekOrZero() == '>' && t.cr.PeekAtOrZero(1) == '=' {
			t.cr.SkipCountInPlace(2)
			return t.emit(start, token.NewToken(token.GtGtEquals))
		}
		if t.cr.PeekOrZero() == '>' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.GtGt))
		}
		if t.cr.PeekOrZero() == '=' {
			t.cr.Next()
			return t.emit(start, token.NewToken(token.GtEquals))
		}
		return t.emit(start, token.NewToken(token.Gt))
	}

	t.unit.AddDiagnostic(source.NewDiagnostic(start, source.UnexpectedOrInvalidToken))
	return t.emit(start, token.NewToken(token.Error))
}

func (t *Tokenizer) emitOK(start source.Location, kind token.Kind) (token.Token, source.Location, bool) {
	tok, loc := t.emit(start, token.NewToken(kind))
	return tok, loc, true
}

/*
SplitGt peels one '>' character off the front of a compound '>'-prefixed
token, returning the residue token and a narrowed Location whose
FirstOffset has advanced by one byte (spec.md C6 "Compound-'>' splitting"
and §8's boundary behavior for GtGtGtEquals -> GtGtEquals). ok is false for
any token that is not one of GtEquals, GtGt, GtGtEquals, GtGtGt,
GtGtGtEquals; a lone Gt also gives false, as it has no residue.
*/
func SplitGt(tok token.Token, loc source.Location) (token.Token, source.Location, bool) {
	var residue token.Kind
	switch tok.Kind {
	case token.Gt:
		return tok, loc, false
	case token.GtEquals:
		residue = token.Assign
	case token.GtGt:
		residue = token.Gt
	case token.GtGtEquals:
		residue = token.GtEquals
	case token.GtGtGt:
		residue = token.GtGt
	case token.GtGtGtEquals:
		residue = token.GtGtEquals
	default:
		return tok, loc, false
	}
	errorutil.AssertTrue(loc.LastOffset > loc.FirstOffset, "cannot split a zero-width token")
	newLoc := source.NewLocation(loc.Unit, loc.FirstOffset+1, loc.LastOffset)
	return token.NewToken(residue), newLoc, true
}

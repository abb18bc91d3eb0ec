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
	"testing"

	"devt.de/krotik/as3parser/source"
	"devt.de/krotik/as3parser/token"
)

func scanAllIEDiv(t *testing.T, src string) []token.Token {
	t.Helper()
	unit := source.NewCompilationUnit("test.as", src, nil)
	tok := NewTokenizer(unit)
	var out []token.Token
	for {
		tk, _ := tok.ScanIEDiv()
		out = append(out, tk)
		if tk.Kind == token.EOF {
			break
		}
	}
	return out
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks := scanAllIEDiv(t, "foo class 日本語")
	if len(toks) != 4 { // foo, class, 日本語, EOF
		t.Fatalf("expected 4 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[0].Kind != token.Identifier || toks[0].Val != "foo" {
		t.Errorf("expected identifier 'foo', got %+v", toks[0])
	}
	if toks[1].Kind != token.Class {
		t.Errorf("expected 'class' to promote to a reserved-word token, got %+v", toks[1])
	}
	if toks[2].Kind != token.Identifier || toks[2].Val != "日本語" {
		t.Errorf("expected a unicode identifier, got %+v", toks[2])
	}
}

func TestScanNumericAndStringLiterals(t *testing.T) {
	toks := scanAllIEDiv(t, `42 3.14 "hi" 'lo'`)
	if toks[0].Kind != token.NumericLiteral || toks[0].Val != "42" {
		t.Errorf("expected numeric literal '42', got %+v", toks[0])
	}
	if toks[1].Kind != token.NumericLiteral || toks[1].Val != "3.14" {
		t.Errorf("expected numeric literal '3.14', got %+v", toks[1])
	}
	if toks[2].Kind != token.StringLiteral || toks[2].Val != "hi" {
		t.Errorf("expected string literal 'hi', got %+v", toks[2])
	}
	if toks[3].Kind != token.StringLiteral || toks[3].Val != "lo" {
		t.Errorf("expected string literal 'lo', got %+v", toks[3])
	}
}

func TestScanCompoundGtOperators(t *testing.T) {
	toks := scanAllIEDiv(t, ">>>=")
	if toks[0].Kind != token.GtGtGtEquals {
		t.Fatalf("expected a single compound GtGtGtEquals token, got %+v", toks[0])
	}
}

func TestSplitGtPeelsOneCharacter(t *testing.T) {
	unit := source.NewCompilationUnit("test.as", ">>>=", nil)
	tok := NewTokenizer(unit)
	tk, loc := tok.ScanIEDiv()
	if tk.Kind != token.GtGtGtEquals {
		t.Fatalf("expected GtGtGtEquals, got %+v", tk)
	}

	residue, newLoc, ok := SplitGt(tk, loc)
	if !ok || residue.Kind != token.GtGtEquals {
		t.Fatalf("expected residue GtGtEquals, got %+v ok=%v", residue, ok)
	}
	if newLoc.FirstOffset != loc.FirstOffset+1 || newLoc.LastOffset != loc.LastOffset {
		t.Fatalf("expected narrowed location [%d,%d), got [%d,%d)",
			loc.FirstOffset+1, loc.LastOffset, newLoc.FirstOffset, newLoc.LastOffset)
	}

	residue2, _, ok2 := SplitGt(residue, newLoc)
	if !ok2 || residue2.Kind != token.GtEquals {
		t.Fatalf("expected second split to yield GtEquals, got %+v ok=%v", residue2, ok2)
	}

	_, _, okPlain := SplitGt(token.NewToken(token.Gt), newLoc)
	if okPlain {
		t.Fatalf("a plain '>' token should not be splittable")
	}
}

func TestUnterminatedCommentDiagnosed(t *testing.T) {
	unit := source.NewCompilationUnit("test.as", "/* never closed", nil)
	tok := NewTokenizer(unit)
	tk, _ := tok.ScanIEDiv()
	if tk.Kind != token.EOF {
		t.Fatalf("expected EOF after an unterminated comment, got %+v", tk)
	}
	found := false
	for _, d := range unit.Diagnostics() {
		if d.Kind == source.UnterminatedComment {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected UnterminatedComment diagnostic, got %v", unit.Diagnostics())
	}
}

func TestBlockCommentRecordedAsAsDocCandidate(t *testing.T) {
	unit := source.NewCompilationUnit("test.as", "/** hello */\nfoo", nil)
	tok := NewTokenizer(unit)
	tk, _ := tok.ScanIEDiv()
	if tk.Kind != token.Identifier || tk.Val != "foo" {
		t.Fatalf("expected identifier 'foo', got %+v", tk)
	}
	c := unit.LastComment()
	if c == nil || !c.IsASDoc() {
		t.Fatalf("expected the preceding /** */ comment to be recorded as an ASDoc comment")
	}
}

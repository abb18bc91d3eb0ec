/*
 * as3parser
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package token

/*
NumericSuffix distinguishes the (deferred) numeric value parsing suffix of a
NumericLiteral token. Value parsing itself is deferred to a later phase per
spec.md C6.
*/
type NumericSuffix int

/*
Recognized numeric literal suffixes.
*/
const (
	NoSuffix NumericSuffix = iota
	FloatSuffix
)

/*
Token is the value the tokenizer hands back alongside a source.Location. It
intentionally stays a single flat struct rather than a tagged union of Go
interfaces: only one or two of its fields are meaningful for any given Kind,
mirroring the teacher's LexToken (parser/lexer.go), which does the same.
*/
type Token struct {
	Kind Kind

	// Val holds the name for Identifier (escapes decoded), the raw spelling
	// for NumericLiteral, the decoded value for StringLiteral, the pattern
	// body for RegExpLiteral, and the raw markup text for XmlMarkup/XmlText.
	Val string

	// Escaped is true if the identifier spelling contained at least one
	// \uXXXX / \u{...} escape, which suppresses reserved-word promotion.
	Escaped bool

	// NumericSuffix classifies a NumericLiteral's trailing suffix.
	Suffix NumericSuffix

	// RegExpFlags holds the flag letters following a RegExpLiteral's closing
	// slash (e.g. "gi").
	RegExpFlags string

	// PrecededByLineBreak is true if the tokenizer skipped at least one line
	// terminator while scanning whitespace before this token. Needed for the
	// "must not follow line break" rules on ++, --, ! and arrow bodies.
	PrecededByLineBreak bool

	// AllowEscapes is true if a StringLiteral token's value came from a
	// quoted form that processes escapes (false for the raw @"..." form).
	AllowEscapes bool
}

/*
NewToken constructs a simple, value-less Token of the given kind (most
punctuators and reserved words).
*/
func NewToken(kind Kind) Token {
	return Token{Kind: kind}
}

/*
String renders a debug representation of the token: its value if it carries
one, otherwise its kind's name.
*/
func (t Token) String() string {
	if t.Val != "" {
		return t.Val
	}
	return KindName(t.Kind)
}

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
DiagnosticCategory groups a DiagnosticKind by the phase that raised it, per
spec.md §7.
*/
type DiagnosticCategory int

/*
Diagnostic categories.
*/
const (
	CategoryLex DiagnosticCategory = iota
	CategorySyntax
	CategoryASDoc
)

/*
DiagnosticKind enumerates every diagnostic this compiler can emit. Warnings
and errors share the same enumeration; IsWarning on Diagnostic decides
severity, not the kind itself (most kinds are always errors; a handful, such
as unrecognized ASDoc tags, are always warnings - see warningKinds).
*/
type DiagnosticKind int

/*
Lexical diagnostic kinds.
*/
const (
	UnexpectedOrInvalidToken DiagnosticKind = iota
	UnexpectedEnd
	InvalidEscape
	UnterminatedStringLiteral
	UnterminatedComment
	InvalidHexEscape
	InvalidUnicodeEscape
	StringLiteralContainsLineBreak
	MalformedNumericLiteralSuffix
)

/*
Syntax diagnostic kinds.
*/
const (
	ExpectedToken DiagnosticKind = iota + 1000
	ExpectedIdentifier
	ExpectedExpression
	ExpectedXmlName
	ExpectedXmlAttributeValue
	MalformedDestructuring
	MalformedMetadataElement
	UnrecognizedMetadataSyntax
	MalformedRestParameter
	DuplicateAttribute
	DuplicateAccessModifier
	DuplicateRestParameter
	WrongParameterPosition
	IllegalForInInitializer
	MultipleForInBindings
	IllegalBreak
	IllegalContinue
	UndefinedLabel
	NotAllowedHere
	IllegalNullishCoalescingLeftOperand
	ExpressionMustNotFollowLineBreak
	TokenMustNotFollowLineBreak
	CircularInclude
	FailedToIncludeFile
	ParentSourceIsNotAFile
	NestedClassesNotAllowed
	DuplicateClause
)

/*
ASDoc diagnostic kinds.
*/
const (
	UnrecognizedAsdocTag DiagnosticKind = iota + 2000
	FailedParsingAsDocTag
)

/*
diagnosticCategories maps each kind to its category, read by
Diagnostic.Category and by tooling that wants to filter by phase.
*/
var diagnosticCategories = map[DiagnosticKind]DiagnosticCategory{
	UnexpectedOrInvalidToken:       CategoryLex,
	UnexpectedEnd:                  CategoryLex,
	InvalidEscape:                  CategoryLex,
	UnterminatedStringLiteral:      CategoryLex,
	UnterminatedComment:            CategoryLex,
	InvalidHexEscape:               CategoryLex,
	InvalidUnicodeEscape:           CategoryLex,
	StringLiteralContainsLineBreak: CategoryLex,
	MalformedNumericLiteralSuffix:  CategoryLex,

	ExpectedToken:                       CategorySyntax,
	ExpectedIdentifier:                  CategorySyntax,
	ExpectedExpression:                  CategorySyntax,
	ExpectedXmlName:                     CategorySyntax,
	ExpectedXmlAttributeValue:           CategorySyntax,
	MalformedDestructuring:              CategorySyntax,
	MalformedMetadataElement:            CategorySyntax,
	UnrecognizedMetadataSyntax:          CategorySyntax,
	MalformedRestParameter:              CategorySyntax,
	DuplicateAttribute:                  CategorySyntax,
	DuplicateAccessModifier:             CategorySyntax,
	DuplicateRestParameter:              CategorySyntax,
	WrongParameterPosition:              CategorySyntax,
	IllegalForInInitializer:             CategorySyntax,
	MultipleForInBindings:               CategorySyntax,
	IllegalBreak:                        CategorySyntax,
	IllegalContinue:                     CategorySyntax,
	UndefinedLabel:                      CategorySyntax,
	NotAllowedHere:                      CategorySyntax,
	IllegalNullishCoalescingLeftOperand: CategorySyntax,
	ExpressionMustNotFollowLineBreak:    CategorySyntax,
	TokenMustNotFollowLineBreak:         CategorySyntax,
	CircularInclude:                     CategorySyntax,
	FailedToIncludeFile:                 CategorySyntax,
	ParentSourceIsNotAFile:              CategorySyntax,
	NestedClassesNotAllowed:             CategorySyntax,
	DuplicateClause:                     CategorySyntax,

	UnrecognizedAsdocTag:  CategoryASDoc,
	FailedParsingAsDocTag: CategoryASDoc,
}

/*
diagnosticMessages holds a printf-style template per kind. Arguments are
applied positionally by Diagnostic.String().
*/
var diagnosticMessages = map[DiagnosticKind]string{
	UnexpectedOrInvalidToken:       "Unexpected or invalid token",
	UnexpectedEnd:                  "Unexpected end of program",
	InvalidEscape:                  "Invalid escape sequence",
	UnterminatedStringLiteral:      "Unterminated string literal",
	UnterminatedComment:            "Unterminated comment",
	InvalidHexEscape:               "Invalid hexadecimal escape sequence",
	InvalidUnicodeEscape:           "Invalid Unicode escape sequence",
	StringLiteralContainsLineBreak: "String literal contains an unescaped line break",
	MalformedNumericLiteralSuffix:  "Malformed numeric literal suffix",

	ExpectedToken:                       "Expected '%s' before '%s'",
	ExpectedIdentifier:                  "Expected an identifier",
	ExpectedExpression:                  "Expected an expression",
	ExpectedXmlName:                     "Expected an XML name",
	ExpectedXmlAttributeValue:           "Expected an XML attribute value",
	MalformedDestructuring:              "Malformed destructuring pattern",
	MalformedMetadataElement:            "Malformed metadata element",
	UnrecognizedMetadataSyntax:          "Unrecognized metadata syntax",
	MalformedRestParameter:              "Malformed rest parameter",
	DuplicateAttribute:                  "Duplicate attribute '%s'",
	DuplicateAccessModifier:             "Duplicate access modifier",
	DuplicateRestParameter:              "A parameter list may only have one rest parameter",
	WrongParameterPosition:              "Wrong parameter position",
	IllegalForInInitializer:             "Illegal 'for..in' initializer",
	MultipleForInBindings:               "A 'for..in' statement may only bind one variable",
	IllegalBreak:                        "Illegal 'break' statement",
	IllegalContinue:                     "Illegal 'continue' statement",
	UndefinedLabel:                      "Undefined label '%s'",
	NotAllowedHere:                      "Not allowed here",
	IllegalNullishCoalescingLeftOperand: "'??' may not be mixed with '&&', '^^' or '||' without parentheses",
	ExpressionMustNotFollowLineBreak:    "Expression must not follow a line break",
	TokenMustNotFollowLineBreak:         "Token must not follow a line break",
	CircularInclude:                     "Circular include of file '%s' (chain: %s)",
	FailedToIncludeFile:                 "Failed to include file '%s': %s",
	ParentSourceIsNotAFile:              "Cannot resolve include: parent source is not a file",
	NestedClassesNotAllowed:             "Nested classes are not allowed here",
	DuplicateClause:                     "Duplicate '%s' clause",

	UnrecognizedAsdocTag:  "Unrecognized ASDoc tag '@%s'",
	FailedParsingAsDocTag: "Failed parsing ASDoc tag '@%s'",
}

/*
warningKinds is the set of kinds that are always warnings, never errors. All
other kinds are errors.
*/
var warningKinds = map[DiagnosticKind]bool{
	UnrecognizedAsdocTag: true,
}

/*
Diagnostic pairs a DiagnosticKind with its arguments and the Location it
applies to.
*/
type Diagnostic struct {
	Location Location
	Kind     DiagnosticKind
	Args     []interface{}
}

/*
NewDiagnostic creates a Diagnostic for the given kind at the given location.
*/
func NewDiagnostic(location Location, kind DiagnosticKind, args ...interface{}) Diagnostic {
	return Diagnostic{location, kind, args}
}

/*
Category returns which phase raised this diagnostic.
*/
func (d Diagnostic) Category() DiagnosticCategory {
	return diagnosticCategories[d.Kind]
}

/*
IsWarning reports whether this diagnostic is a warning rather than an error.
Only warnings never set CompilationUnit.Invalidated.
*/
func (d Diagnostic) IsWarning() bool {
	return warningKinds[d.Kind]
}

/*
String renders the diagnostic message with its arguments substituted.
*/
func (d Diagnostic) String() string {
	tpl, ok := diagnosticMessages[d.Kind]
	if !ok {
		return fmt.Sprintf("Diagnostic(%d)", d.Kind)
	}
	if len(d.Args) == 0 {
		return tpl
	}
	return fmt.Sprintf(tpl, d.Args...)
}

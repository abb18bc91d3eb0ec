/*
 * as3parser
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"strings"

	"devt.de/krotik/as3parser/ast"
	"devt.de/krotik/as3parser/source"
	"devt.de/krotik/common/stringutil"
)

/*
referenceTags are the ASDoc tags whose content is itself an expression or
type reference, re-entering the expression/type parser instead of being
kept as opaque text (spec.md §4.5 "copy, see, eventType, throws").
Membership is tested with stringutil.IndexOf, the same list-scan the teacher
uses to classify node names in parser/prettyprinter.go.
*/
var referenceTags = []string{"copy", "see", "eventType", "throws"}

func isReferenceTag(name string) bool {
	return stringutil.IndexOf(name, referenceTags) != -1
}

/*
consumeAsDoc looks at the most recently lexed comment and, if it is an
ASDoc comment immediately preceding the current token (only whitespace
between the two, per spec.md §4.5 "Attaching ASDoc"), parses and returns it.
Otherwise it returns nil without consuming anything - comments are not
tokens, so there is nothing to "consume" from the token stream itself.
*/
func (p *Parser) consumeAsDoc() *ast.AsDoc {
	c := p.unit.LastComment()
	if c == nil || !c.IsASDoc() {
		return nil
	}
	if !p.onlyWhitespaceBetween(c.Location.LastOffset, p.loc().FirstOffset) {
		return nil
	}
	return p.parseAsDocComment(c)
}

func (p *Parser) onlyWhitespaceBetween(from, to int) bool {
	if from > to {
		return false
	}
	text := p.unit.Text()
	if to > len(text) {
		to = len(text)
	}
	for _, r := range text[from:to] {
		if r != ' ' && r != '\t' && r != '\r' && r != '\n' {
			return false
		}
	}
	return true
}

/*
parseAsDocComment splits a raw `/** … *​/` comment body into its free-form
description and `@tag content…` entries (spec.md §4.5 "ASDoc tags"). A tag
line only starts a new tag outside a fenced (```) code block, so a `@` sign
appearing inside example code is not misread as a tag.
*/
func (p *Parser) parseAsDocComment(c *source.Comment) *ast.AsDoc {
	lines := splitAsDocLines(c.Content)

	var description []string
	var tags []ast.AsDocTag
	inFence := false
	var curTag *ast.AsDocTag
	var curContent []string

	flush := func() {
		if curTag != nil {
			curTag.Content = strings.TrimSpace(strings.Join(curContent, "\n"))
			tags = append(tags, *curTag)
			curTag = nil
			curContent = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			if curTag != nil {
				curContent = append(curContent, line)
			} else {
				description = append(description, line)
			}
			continue
		}
		if !inFence && strings.HasPrefix(trimmed, "@") {
			flush()
			rest := trimmed[1:]
			name := rest
			content := ""
			if i := strings.IndexAny(rest, " \t"); i >= 0 {
				name, content = rest[:i], strings.TrimSpace(rest[i+1:])
			}
			tag := ast.AsDocTag{Base: ast.Base{Location: c.Location}, Name: name}
			curTag = &tag
			curContent = []string{content}
			continue
		}
		if curTag != nil {
			curContent = append(curContent, line)
		} else {
			description = append(description, line)
		}
	}
	flush()

	for i := range tags {
		if isReferenceTag(tags[i].Name) && tags[i].Content != "" {
			tags[i].Reference = p.parseAsDocReference(tags[i].Content, c.Location)
		} else if !isRecognizedAsDocTag(tags[i].Name) {
			p.unit.AddDiagnostic(source.NewDiagnostic(c.Location, source.UnrecognizedAsdocTag, tags[i].Name))
		}
	}

	return &ast.AsDoc{
		Base:        ast.Base{Location: c.Location},
		Description: strings.TrimSpace(strings.Join(description, "\n")),
		Tags:        tags,
	}
}

/*
parseAsDocReference re-enters the expression parser over a tag's reference
text by tokenizing it as a standalone compilation unit, per spec.md §4.5
"re-entering the expression/type parser". Failure degrades to a nil
Reference plus a diagnostic on the enclosing unit rather than aborting the
whole ASDoc parse.
*/
func (p *Parser) parseAsDocReference(text string, at source.Location) ast.Node {
	sub := source.NewCompilationUnit("", text, p.unit.Options())
	sp := NewParser(sub, nil)
	expr := sp.ParseExpression(DefaultExprContext())
	if sub.Invalidated() {
		p.unit.AddDiagnostic(source.NewDiagnostic(at, source.FailedParsingAsDocTag, text))
		return nil
	}
	return expr
}

func splitAsDocLines(content string) []string {
	body := strings.TrimPrefix(content, "*")
	body = strings.TrimSuffix(body, "*")
	rawLines := strings.Split(body, "\n")
	lines := make([]string, 0, len(rawLines))
	for i, l := range rawLines {
		if i > 0 {
			l = strings.TrimPrefix(strings.TrimLeft(l, " \t"), "*")
		}
		lines = append(lines, l)
	}
	return lines
}

/*
recognizedAsDocTags is the set of tags spec.md §4.5 names, plus `author` and
`since`; any other tag is still kept (Reference stays nil, Content stays opaque text)
but is reported via UnrecognizedAsdocTag, a warning-only diagnostic. Checked
with stringutil.IndexOf rather than a map, matching referenceTags above.
*/
var recognizedAsDocTags = []string{
	"param", "return", "private", "inheritDoc",
	"author", "since", "deprecated", "example",
	"copy", "see", "eventType", "throws",
	"playerversion", "langversion", "productversion",
	"default", "event", "internal",
}

func isRecognizedAsDocTag(name string) bool {
	return stringutil.IndexOf(name, recognizedAsDocTags) != -1
}

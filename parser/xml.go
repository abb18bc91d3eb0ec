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
	"devt.de/krotik/as3parser/ast"
	"devt.de/krotik/as3parser/source"
	"devt.de/krotik/as3parser/token"
)

/*
parseXmlPrimary parses an E4X XML literal starting at an already-seen `<`
(spec.md §4.3 "XML literals"): after `<`, try markup (handled by the lexer
before this is reached if in content position; at primary position a
literal always starts an element or list), then switch to XML-tag mode for
the name, attributes, and closing delimiter.
*/
func (p *Parser) parseXmlPrimary(start source.Location) ast.Expression {
	p.advance() // consume '<', scanned in default mode
	p.enterXmlTagMode()
	p.advance() // first token of tag content, scanned in XML-tag mode

	if p.is(token.Gt) {
		return p.parseXmlList(start)
	}
	return p.parseXmlElement(start)
}

/*
parseXmlList parses `<>content…</>` (spec.md §4.3 "An `<>…</>` sequence
becomes an XML list"). Called with the tokenizer positioned just past the
opening `<>`'s closing `>`.
*/
func (p *Parser) parseXmlList(start source.Location) ast.Expression {
	p.leaveXmlTagMode()
	p.advanceXmlContent()

	content := p.parseXmlContentList()

	p.expect(token.XmlLtSlash)
	p.enterXmlTagMode()
	p.advance()
	end := p.loc()
	p.expect(token.Gt)
	p.leaveXmlTagMode()
	p.advance()

	return &ast.XmlList{Base: ast.Base{Location: start.CombineWith(end)}, Content: content}
}

/*
parseXmlElement parses `<name attrs…>content…</name>` or the self-closing
`<name attrs… />` form. Called with the tokenizer positioned at the tag's
name token (XmlName or '{' for a dynamic name), already in XML-tag mode.
*/
func (p *Parser) parseXmlElement(start source.Location) ast.Expression {
	var name string
	var dynName ast.Expression
	if p.is(token.LeftBrace) {
		p.leaveXmlTagMode()
		p.advance()
		dynName = p.ParseExpression(DefaultExprContext())
		p.expect(token.RightBrace)
		p.enterXmlTagMode()
		p.advance()
	} else if p.is(token.XmlName) {
		name = p.current.Val
		p.advance()
	} else {
		p.unit.AddDiagnostic(source.NewDiagnostic(p.loc(), source.ExpectedXmlName))
	}

	var attrs []ast.XmlAttribute
	for {
		p.skipXmlWhitespace()
		if p.is(token.Gt) || p.is(token.XmlSlashGt) || p.is(token.EOF) {
			break
		}
		attrs = append(attrs, p.parseXmlAttribute())
	}

	if p.is(token.XmlSlashGt) {
		end := p.loc()
		p.leaveXmlTagMode()
		p.advance()
		return &ast.XmlElement{Base: ast.Base{Location: start.CombineWith(end)}, Name: name, DynamicName: dynName, Attributes: attrs, SelfClosing: true}
	}

	p.expect(token.Gt)
	p.leaveXmlTagMode()
	p.advanceXmlContent()

	content := p.parseXmlContentList()

	p.expect(token.XmlLtSlash)
	p.enterXmlTagMode()
	p.advance()
	if p.is(token.LeftBrace) {
		p.leaveXmlTagMode()
		p.advance()
		p.ParseExpression(DefaultExprContext())
		p.expect(token.RightBrace)
		p.enterXmlTagMode()
		p.advance()
	} else if p.is(token.XmlName) {
		p.advance()
	}
	p.skipXmlWhitespace()
	end := p.loc()
	p.expect(token.Gt)
	p.leaveXmlTagMode()
	p.advance()

	return &ast.XmlElement{Base: ast.Base{Location: start.CombineWith(end)}, Name: name, DynamicName: dynName, Attributes: attrs, Content: content}
}

func (p *Parser) skipXmlWhitespace() {
	for p.is(token.XmlWhitespace) {
		p.advance()
	}
}

func (p *Parser) parseXmlAttribute() ast.XmlAttribute {
	start := p.loc()

	if p.is(token.LeftBrace) {
		p.leaveXmlTagMode()
		p.advance()
		spread := p.ParseExpression(DefaultExprContext())
		p.expect(token.RightBrace)
		p.enterXmlTagMode()
		p.advance()
		return ast.XmlAttribute{Base: ast.Base{Location: start.CombineWith(spread.Loc())}, Spread: spread}
	}

	name := p.current.Val
	p.advance()
	p.skipXmlWhitespace()
	p.expect(token.Assign)
	p.skipXmlWhitespace()

	if p.is(token.LeftBrace) {
		p.leaveXmlTagMode()
		p.advance()
		dyn := p.ParseExpression(DefaultExprContext())
		end := p.expect(token.RightBrace)
		p.enterXmlTagMode()
		p.advance()
		return ast.XmlAttribute{Base: ast.Base{Location: start.CombineWith(end)}, Name: name, DynamicValue: dyn}
	}

	val := p.current.Val
	end := p.loc()
	p.expect(token.XmlAttributeValue)
	return ast.XmlAttribute{Base: ast.Base{Location: start.CombineWith(end)}, Name: name, StaticValue: &val}
}

/*
parseXmlContentList parses the content between an element's or list's
opening and closing tags: a run of XmlTextLiteral, XmlMarkupLiteral, nested
elements, and `{expr}` embeds (spec.md §4.3 "Content and tag scans
alternate between modes").
*/
func (p *Parser) parseXmlContentList() []ast.Expression {
	var content []ast.Expression
	for {
		switch {
		case p.is(token.XmlText):
			content = append(content, &ast.XmlTextLiteral{Base: ast.Base{Location: p.loc()}, Text: p.current.Val})
			p.advanceXmlContent()

		case p.is(token.XmlMarkup):
			content = append(content, &ast.XmlMarkupLiteral{Base: ast.Base{Location: p.loc()}, Text: p.current.Val})
			p.advanceXmlContent()

		case p.is(token.LeftBrace):
			p.advance()
			expr := p.ParseExpression(DefaultExprContext())
			p.expect(token.RightBrace)
			content = append(content, expr)
			p.advanceXmlContent()

		case p.is(token.Lt):
			start := p.loc()
			p.enterXmlTagMode()
			p.advance()
			content = append(content, p.parseXmlElement(start))
			p.advanceXmlContent()

		case p.is(token.XmlLtSlash), p.is(token.EOF):
			return content

		default:
			return content
		}
	}
}

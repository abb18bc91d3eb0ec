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
ParseTypeExpression is the public facade's type-grammar entry (spec.md
§4.3 "Type expressions"): identifier, `*`, `void`, `function(params):T`,
`[T]`/`[T,T,…]`, `(T)`, `T.<A,…>`, `T.id`, `T?`/`T!`, with a leading `?`
wrapping the whole result in NullableType.
*/
func (p *Parser) ParseTypeExpression() ast.TypeExpression {
	if p.is(token.Question) {
		start := p.loc()
		p.advance()
		inner := p.ParseTypeExpression()
		return &ast.NullableType{Base: ast.Base{Location: start.CombineWith(inner.Loc())}, Base_: inner}
	}
	return p.parseTypePostfix(p.parseTypePrimary())
}

func (p *Parser) parseTypePrimary() ast.TypeExpression {
	start := p.loc()

	switch {
	case p.is(token.Times):
		p.advance()
		return &ast.AnyType{Base: ast.Base{Location: start}}

	case p.is(token.Void):
		p.advance()
		return &ast.VoidType{Base: ast.Base{Location: start}}

	case p.is(token.Function):
		p.advance()
		p.expect(token.LeftParen)
		params := p.parseParameterList()
		p.expect(token.RightParen)
		p.expect(token.Colon)
		result := p.ParseTypeExpression()
		loc := start.CombineWith(result.Loc())
		return &ast.FunctionTypeExpression{Base: ast.Base{Location: loc}, Params: params, ResultType: result}

	case p.is(token.LeftParen):
		p.advance()
		inner := p.ParseTypeExpression()
		end := p.expect(token.RightParen)
		return &ast.ParenType{Base: ast.Base{Location: start.CombineWith(end)}, Operand: inner}

	case p.is(token.LeftBracket):
		p.advance()
		if p.is(token.RightBracket) {
			end := p.loc()
			p.advance()
			return &ast.ArrayTypeExpression{Base: ast.Base{Location: start.CombineWith(end)}}
		}
		first := p.ParseTypeExpression()
		if p.is(token.Comma) {
			elems := []ast.TypeExpression{first}
			for p.is(token.Comma) {
				p.advance()
				elems = append(elems, p.ParseTypeExpression())
			}
			end := p.expect(token.RightBracket)
			return &ast.TupleTypeExpression{Base: ast.Base{Location: start.CombineWith(end)}, ElementTypes: elems}
		}
		end := p.expect(token.RightBracket)
		return &ast.ArrayTypeExpression{Base: ast.Base{Location: start.CombineWith(end)}, ElementType: first}

	case p.is(token.LeftBrace):
		return p.parseRecordTypeExpression()

	case p.is(token.Identifier):
		qi := p.parseQualifiedIdentifier()
		return &ast.TypeIdentifier{Base: ast.Base{Location: qi.Loc()}, Name: qi}
	}

	loc := p.loc()
	p.unit.AddDiagnostic(source.NewDiagnostic(loc, source.ExpectedExpression))
	return &ast.TypeIdentifier{Base: ast.Base{Location: loc}, Name: &ast.QualifiedIdentifier{Base: ast.Base{Location: loc}}}
}

func (p *Parser) parseRecordTypeExpression() ast.TypeExpression {
	start := p.loc()
	p.expect(token.LeftBrace)
	var fields []ast.RecordTypeField
	for !p.is(token.RightBrace) && !p.is(token.EOF) {
		fieldStart := p.loc()
		name, _ := p.expectIdentifier()
		p.expect(token.Colon)
		ty := p.ParseTypeExpression()
		fields = append(fields, ast.RecordTypeField{Base: ast.Base{Location: fieldStart.CombineWith(ty.Loc())}, Name: name, Type: ty})
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RightBrace)
	return &ast.RecordTypeExpression{Base: ast.Base{Location: start.CombineWith(end)}, Fields: fields}
}

func (p *Parser) parseTypePostfix(base ast.TypeExpression) ast.TypeExpression {
	for {
		switch {
		case p.is(token.Dot):
			p.advance()
			if p.consumeTypeParametersLt() {
				var args []ast.TypeExpression
				if !p.isTypeArgumentsGt() {
					args = append(args, p.ParseTypeExpression())
					for p.is(token.Comma) {
						p.advance()
						args = append(args, p.ParseTypeExpression())
					}
				}
				end := p.expectTypeParametersGt()
				base = &ast.TypeWithArguments{Base: ast.Base{Location: base.Loc().CombineWith(end)}, Base_: base, Arguments: args}
				continue
			}
			qi := p.parseQualifiedIdentifier()
			base = &ast.MemberType{Base: ast.Base{Location: base.Loc().CombineWith(qi.Loc())}, Base_: base, Name: qi}

		case p.is(token.Question):
			end := p.loc()
			p.advance()
			base = &ast.NullableType{Base: ast.Base{Location: base.Loc().CombineWith(end)}, Base_: base}

		case p.is(token.Exclamation):
			end := p.loc()
			p.advance()
			base = &ast.NonNullableType{Base: ast.Base{Location: base.Loc().CombineWith(end)}, Base_: base}

		default:
			return base
		}
	}
}

/*
consumeTypeParametersLt consumes a `<` if it is the current token and
reports whether it did; it does not look at the token after it, since after
`.` in a type a `<` always opens a type-argument list (spec.md §4.3
"T.<A,…>").
*/
func (p *Parser) consumeTypeParametersLt() bool {
	if p.is(token.Lt) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) isTypeArgumentsGt() bool {
	switch p.current.Kind {
	case token.Gt, token.GtEquals, token.GtGt, token.GtGtEquals, token.GtGtGt, token.GtGtGtEquals:
		return true
	}
	return false
}

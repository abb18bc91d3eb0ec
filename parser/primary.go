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
parsePrimary parses one primary expression (spec.md §4.3 "Primary
expressions"). Prefix unary operators, `await`, and `yield` are handled by
the caller, parseUnary, one level up.
*/
func (p *Parser) parsePrimary(ctx ExprContext) ast.Expression {
	start := p.loc()

	switch {
	case p.is(token.Null):
		p.advance()
		return &ast.NullLiteral{Base: ast.Base{Location: start}}

	case p.is(token.True):
		p.advance()
		return &ast.BooleanLiteral{Base: ast.Base{Location: start}, Value: true}

	case p.is(token.False):
		p.advance()
		return &ast.BooleanLiteral{Base: ast.Base{Location: start}, Value: false}

	case p.is(token.This):
		p.advance()
		return &ast.ThisLiteral{Base: ast.Base{Location: start}}

	case p.is(token.NumericLiteral):
		raw := p.current.Val
		p.advance()
		return &ast.NumericLiteral{Base: ast.Base{Location: start}, Raw: raw}

	case p.is(token.StringLiteral):
		val := p.current.Val
		p.advance()
		return &ast.StringLiteral{Base: ast.Base{Location: start}, Value: val}

	case p.is(token.Div) || p.is(token.DivAssign):
		tok, loc := p.tok.ScanRegExpLiteral(start)
		p.current, p.currentLoc = tok, loc
		body, flags := p.current.Val, p.current.RegExpFlags
		p.advance()
		return &ast.RegExpLiteral{Base: ast.Base{Location: start.CombineWith(loc)}, Body: body, Flags: flags}

	case p.is(token.DotDotDot):
		// `...x` outside an array/object initializer or argument list, as in a
		// parenthesized list that reinterpretAsArrowFunction turns into a rest parameter.
		p.advance()
		operand := p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true})
		return &ast.SpreadElement{Base: ast.Base{Location: start.CombineWith(operand.Loc())}, Operand: operand}

	case p.is(token.Super):
		p.advance()
		var args []ast.Expression
		end := start
		if p.is(token.LeftParen) {
			var argEnd source.Location
			args, argEnd = p.parseArguments()
			end = argEnd
		}
		return &ast.Super{Base: ast.Base{Location: start.CombineWith(end)}, Arguments: args}

	case p.isContextKeyword("embed"):
		return p.parseEmbed(start)

	case p.is(token.New):
		return p.parseNewExpression(start)

	case p.is(token.Function):
		return p.parseFunctionExpression(start)

	case p.is(token.LeftBracket):
		return p.parseArrayInitializer()

	case p.is(token.LeftBrace):
		return p.parseObjectInitializer()

	case p.is(token.LeftParen):
		return p.parseParenOrQualifiedIdentifier(start)

	case p.is(token.Lt):
		return p.parseXmlPrimary(start)

	case p.is(token.Times):
		p.advance()
		if p.is(token.ColonColon) {
			p.advance()
			return p.finishQualifiedIdentifierName(start, false, &ast.QualifiedIdentifier{Base: ast.Base{Location: start}, Name: "*", NameLocation: start})
		}
		return &ast.QualifiedIdentifier{Base: ast.Base{Location: start}, Name: "*", NameLocation: start}

	case p.is(token.At), token.ReservedNamespaces[p.current.Kind], p.is(token.Identifier):
		return p.parseQualifiedIdentifier()

	case p.is(token.Import):
		p.advance()
		p.expect(token.Dot)
		metaLoc := p.loc()
		if p.is(token.Identifier) && p.current.Val == "meta" {
			p.advance()
		} else {
			p.unit.AddDiagnostic(source.NewDiagnostic(metaLoc, source.ExpectedToken, "meta", p.current.String()))
		}
		return &ast.ImportMeta{Base: ast.Base{Location: start.CombineWith(metaLoc)}}
	}

	p.unit.AddDiagnostic(source.NewDiagnostic(start, source.ExpectedExpression))
	p.advance()
	return p.invalidatedExpr(start)
}

/*
parseParenOrQualifiedIdentifier parses a parenthesized list, which may turn
out to be either a parenthesized expression or the qualifier of a qualified
identifier (resolved by a trailing `::`), or - if `=>` follows - the
parameter list of an arrow function built later by reinterpretation (spec.md
§4.3 "paren-list").
*/
func (p *Parser) parseParenOrQualifiedIdentifier(start source.Location) ast.Expression {
	p.advance()
	if p.is(token.RightParen) {
		end := p.loc()
		p.advance()
		paren := &ast.Paren{Base: ast.Base{Location: start.CombineWith(end)}}
		if p.is(token.ColonColon) {
			p.advance()
			return p.finishQualifiedIdentifierName(start, false, paren)
		}
		return paren
	}

	inner := p.ParseExpression(ExprContext{MinPrecedence: PrecList, AllowIn: true, AllowAssignment: true})
	end := p.expect(token.RightParen)
	paren := &ast.Paren{Base: ast.Base{Location: start.CombineWith(end)}, Operand: inner}

	if p.is(token.ColonColon) {
		p.advance()
		return p.finishQualifiedIdentifierName(start, false, paren)
	}
	return paren
}

func (p *Parser) parseNewExpression(start source.Location) ast.Expression {
	p.advance()

	if p.is(token.Lt) {
		p.advance()
		elemType := p.ParseTypeExpression()
		p.expectTypeParametersGt()
		p.expect(token.LeftBracket)
		var elems []ast.Expression
		for !p.is(token.RightBracket) && !p.is(token.EOF) {
			elems = append(elems, p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true}))
			if p.is(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		end := p.expect(token.RightBracket)
		return &ast.VectorLiteral{Base: ast.Base{Location: start.CombineWith(end)}, ElementType: elemType, Elements: elems}
	}

	callee := p.parseUnary(ExprContext{MinPrecedence: PrecPostfix, AllowIn: true, AllowAssignment: false})
	var args []ast.Expression
	end := callee.Loc()
	if p.is(token.LeftParen) {
		var argEnd source.Location
		args, argEnd = p.parseArguments()
		end = argEnd
	}
	return &ast.New{Base: ast.Base{Location: start.CombineWith(end)}, Callee: callee, Arguments: args}
}

func (p *Parser) parseEmbed(start source.Location) ast.Expression {
	p.advance()
	if p.is(token.StringLiteral) {
		val := p.current.Val
		loc := p.loc()
		p.advance()
		str := &ast.StringLiteral{Base: ast.Base{Location: loc}, Value: val}
		return &ast.Embed{Base: ast.Base{Location: start.CombineWith(loc)}, Source: str}
	}
	obj := p.parseObjectInitializer().(*ast.ObjectInitializer)
	return &ast.Embed{Base: ast.Base{Location: start.CombineWith(obj.Loc())}, Object: obj}
}

// Array initializer / destructuring
// ==================================

func (p *Parser) parseArrayInitializer() ast.Expression {
	start := p.loc()
	p.expect(token.LeftBracket)
	var elems []ast.Expression
	for !p.is(token.RightBracket) && !p.is(token.EOF) {
		if p.is(token.Comma) {
			elems = append(elems, &ast.ArrayElision{Base: ast.Base{Location: p.loc()}})
			p.advance()
			continue
		}
		if p.is(token.DotDotDot) {
			restStart := p.loc()
			p.advance()
			operand := p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true})
			elems = append(elems, &ast.SpreadElement{Base: ast.Base{Location: restStart.CombineWith(operand.Loc())}, Operand: operand})
		} else {
			elems = append(elems, p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true}))
		}
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RightBracket)
	return &ast.ArrayInitializer{Base: ast.Base{Location: start.CombineWith(end)}, Elements: elems}
}

func (p *Parser) parseObjectInitializer() ast.Expression {
	start := p.loc()
	p.expect(token.LeftBrace)
	var fields []ast.ObjectField
	for !p.is(token.RightBrace) && !p.is(token.EOF) {
		fieldStart := p.loc()
		if p.is(token.DotDotDot) {
			p.advance()
			operand := p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true})
			fields = append(fields, ast.ObjectField{Base: ast.Base{Location: fieldStart.CombineWith(operand.Loc())}, Rest: operand})
		} else if p.is(token.LeftBracket) {
			p.advance()
			key := p.ParseExpression(DefaultExprContext())
			p.expect(token.RightBracket)
			p.expect(token.Colon)
			value := p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true})
			fields = append(fields, ast.ObjectField{Base: ast.Base{Location: fieldStart.CombineWith(value.Loc())}, ComputedKey: key, Value: value})
		} else {
			var key string
			keyLoc := p.loc()
			switch {
			case p.is(token.Identifier):
				key = p.current.Val
				p.advance()
			case p.is(token.StringLiteral):
				key = p.current.Val
				p.advance()
			case p.is(token.NumericLiteral):
				key = p.current.Val
				p.advance()
			default:
				key, keyLoc = p.expectIdentifier()
			}
			if p.is(token.Colon) {
				p.advance()
				value := p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true})
				fields = append(fields, ast.ObjectField{Base: ast.Base{Location: fieldStart.CombineWith(value.Loc())}, Key: key, KeyLocation: keyLoc, Value: value})
			} else {
				fields = append(fields, ast.ObjectField{Base: ast.Base{Location: fieldStart.CombineWith(keyLoc)}, Key: key, KeyLocation: keyLoc, Shorthand: true})
			}
		}
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RightBrace)
	return &ast.ObjectInitializer{Base: ast.Base{Location: start.CombineWith(end)}, Fields: fields}
}

/*
reinterpretArrayDestructuring turns an already-parsed ArrayInitializer into
an array Destructuring pattern (spec.md §3 "Destructuring", §4.3 assignment-
target reinterpretation).
*/
func (p *Parser) reinterpretArrayDestructuring(arr *ast.ArrayInitializer) *ast.Destructuring {
	var items []ast.ArrayPatternItem
	for _, el := range arr.Elements {
		switch v := el.(type) {
		case *ast.ArrayElision:
			items = append(items, ast.ArrayPatternItem{Base: ast.Base{Location: v.Location}})
		case *ast.SpreadElement:
			rest := p.reinterpretAsDestructuring(v.Operand)
			items = append(items, ast.ArrayPatternItem{Base: ast.Base{Location: v.Location}, Rest: rest})
		default:
			items = append(items, ast.ArrayPatternItem{Base: ast.Base{Location: el.Loc()}, Pattern: p.reinterpretAsDestructuring(el)})
		}
	}
	return &ast.Destructuring{Base: ast.Base{Location: arr.Location}, ArrayItems: items}
}

/*
reinterpretObjectDestructuring turns an already-parsed ObjectInitializer
into a record Destructuring pattern.
*/
func (p *Parser) reinterpretObjectDestructuring(obj *ast.ObjectInitializer) *ast.Destructuring {
	var fields []ast.RecordPatternField
	for _, f := range obj.Fields {
		if f.Rest != nil {
			continue
		}
		field := ast.RecordPatternField{Base: ast.Base{Location: f.Location}, Key: f.Key}
		if !f.Shorthand {
			nonNull := false
			val := f.Value
			if post, ok := val.(*ast.Postfix); ok && post.Operator == ast.OpNonNull {
				nonNull = true
				val = post.Operand
			}
			field.Alias = p.reinterpretAsDestructuring(val)
			field.NonNull = nonNull
		}
		fields = append(fields, field)
	}
	return &ast.Destructuring{Base: ast.Base{Location: obj.Location}, RecordFields: fields}
}

/*
reinterpretAsDestructuring converts a single already-parsed expression into
a Destructuring leaf: a bare identifier becomes a binding, a nested
array/object initializer recurses, `expr : T` (parsed via WithTypeAnnotation
in a context that allows it) attaches Type, and a non-null-asserted operand
sets NonNull.
*/
func (p *Parser) reinterpretAsDestructuring(e ast.Expression) *ast.Destructuring {
	nonNull := false
	if post, ok := e.(*ast.Postfix); ok && post.Operator == ast.OpNonNull {
		nonNull = true
		e = post.Operand
	}

	var typ ast.TypeExpression
	if wta, ok := e.(*ast.WithTypeAnnotation); ok {
		typ = wta.Type
		e = wta.Base_
	}

	switch v := e.(type) {
	case *ast.ArrayInitializer:
		d := p.reinterpretArrayDestructuring(v)
		d.Type, d.NonNull = typ, nonNull
		return d
	case *ast.ObjectInitializer:
		d := p.reinterpretObjectDestructuring(v)
		d.Type, d.NonNull = typ, nonNull
		return d
	case *ast.QualifiedIdentifier:
		return &ast.Destructuring{Base: ast.Base{Location: v.Location}, BindingName: v.Name, Type: typ, NonNull: nonNull}
	case destructuringExpr:
		v.Destructuring.Type, v.Destructuring.NonNull = typ, nonNull
		return v.Destructuring
	default:
		p.unit.AddDiagnostic(source.NewDiagnostic(e.Loc(), source.MalformedDestructuring))
		return &ast.Destructuring{Base: ast.Base{Location: e.Loc()}}
	}
}

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

func (p *Parser) parseFunctionExpression(start source.Location) ast.Expression {
	p.advance()
	var name *string
	if p.is(token.Identifier) {
		n := p.current.Val
		name = &n
		p.advance()
	}
	common := p.parseFunctionCommon()
	return &ast.FunctionExpression{Base: ast.Base{Location: start.CombineWith(common.Loc())}, Name: name, Common: common}
}

/*
parseFunctionCommon parses the shared `(params) : T { body }` tail of a
function expression, arrow function, or function definition, pushing an
activation so `await`/`yield` usage inside the body is captured (spec.md
§4.3 "Entering the body pushes an activation").
*/
func (p *Parser) parseFunctionCommon() *ast.FunctionCommon {
	start := p.loc()
	p.expect(token.LeftParen)
	params := p.parseParameterList()
	p.expect(token.RightParen)

	var resultType ast.TypeExpression
	if p.is(token.Colon) {
		p.advance()
		resultType = p.ParseTypeExpression()
	}

	p.pushActivation()
	var body ast.Node
	end := start
	if p.is(token.LeftBrace) {
		block := p.parseBlock()
		body = block
		end = block.Location
	}
	act := p.popActivation()

	return &ast.FunctionCommon{
		Base:       ast.Base{Location: start.CombineWith(end)},
		Params:     params,
		ResultType: resultType,
		Body:       body,
		UsesAwait:  act.usesAwait,
		UsesYield:  act.usesYield,
	}
}

/*
parseParameterList parses a comma-separated parameter list and validates
Required -> Optional -> Rest ordering, at most one Rest (spec.md §4.3
"Parameter list validation"), reused by function definitions and function
type expressions.
*/
func (p *Parser) parseParameterList() []ast.Parameter {
	var params []ast.Parameter
	seenOptional := false
	seenRest := false

	for !p.is(token.RightParen) && !p.is(token.EOF) {
		start := p.loc()

		if p.is(token.DotDotDot) {
			p.advance()
			pattern := p.parseDestructuringPattern()
			if seenRest {
				p.unit.AddDiagnostic(source.NewDiagnostic(start, source.DuplicateRestParameter))
			}
			seenRest = true
			params = append(params, ast.Parameter{Base: ast.Base{Location: start.CombineWith(pattern.Loc())}, Kind: ast.ParamRest, Destructure: pattern})
			if p.is(token.Comma) {
				p.unit.AddDiagnostic(source.NewDiagnostic(p.loc(), source.MalformedRestParameter))
				p.advance()
				continue
			}
			break
		}

		if seenRest {
			p.unit.AddDiagnostic(source.NewDiagnostic(start, source.WrongParameterPosition))
		}

		pattern := p.parseDestructuringPattern()
		kind := ast.ParamRequired
		var def ast.Expression
		if p.is(token.Assign) {
			p.advance()
			def = p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true})
			kind = ast.ParamOptional
			seenOptional = true
		} else if seenOptional {
			p.unit.AddDiagnostic(source.NewDiagnostic(start, source.WrongParameterPosition))
		}

		end := pattern.Loc()
		if def != nil {
			end = def.Loc()
		}
		params = append(params, ast.Parameter{Base: ast.Base{Location: start.CombineWith(end)}, Kind: kind, Destructure: pattern, DefaultValue: def})

		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return params
}

/*
parseDestructuringPattern parses one binding pattern: a plain identifier
(optionally typed/non-null), or a record/array destructuring pattern
(spec.md §3 "Destructuring").
*/
func (p *Parser) parseDestructuringPattern() *ast.Destructuring {
	start := p.loc()

	var d *ast.Destructuring
	end := start
	switch {
	case p.is(token.LeftBrace):
		obj := p.parseObjectInitializer().(*ast.ObjectInitializer)
		d = p.reinterpretObjectDestructuring(obj)
		end = obj.Location
	case p.is(token.LeftBracket):
		arr := p.parseArrayInitializer().(*ast.ArrayInitializer)
		d = p.reinterpretArrayDestructuring(arr)
		end = arr.Location
	default:
		name, nameLoc := p.expectIdentifier()
		d = &ast.Destructuring{Base: ast.Base{Location: nameLoc}, BindingName: name}
		end = nameLoc
	}

	if p.is(token.Exclamation) {
		end = p.loc()
		p.advance()
		d.NonNull = true
	}
	if p.is(token.Colon) {
		p.advance()
		d.Type = p.ParseTypeExpression()
		end = d.Type.Loc()
	}
	d.Location = start.CombineWith(end)
	return d
}

/*
reinterpretAsArrowFunction decomposes an already-parsed left operand into an
ArrowFunction's parameter list (spec.md §4.3 "Arrow functions"): empty
parens, a paren expression, a sequence, and/or trailing WithTypeAnnotation
wrappers become parameters with optional defaults and a result type;
DotDotDot-spread expressions become rest parameters.
*/
func (p *Parser) reinterpretAsArrowFunction(left ast.Expression) ast.Expression {
	start := left.Loc()

	var resultType ast.TypeExpression
	operand := left
	if wta, ok := operand.(*ast.WithTypeAnnotation); ok {
		resultType = wta.Type
		operand = wta.Base_
	}

	var params []ast.Parameter
	if paren, ok := operand.(*ast.Paren); ok {
		if paren.Operand == nil {
			params = nil
		} else {
			params = p.flattenArrowParams(paren.Operand)
		}
	} else {
		params = p.flattenArrowParams(operand)
	}

	p.pushActivation()
	var body ast.Node
	end := start
	if p.is(token.LeftBrace) {
		block := p.parseBlock()
		body = block
		end = block.Location
	} else {
		expr := p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true})
		body = expr
		end = expr.Loc()
	}
	act := p.popActivation()

	common := &ast.FunctionCommon{
		Base:       ast.Base{Location: start.CombineWith(end)},
		Params:     params,
		ResultType: resultType,
		Body:       body,
		UsesAwait:  act.usesAwait,
		UsesYield:  act.usesYield,
	}
	return &ast.ArrowFunction{Base: ast.Base{Location: common.Location}, Common: common}
}

/*
flattenArrowParams splits a Sequence chain into individual parameter
expressions and reinterprets each as a Parameter.
*/
func (p *Parser) flattenArrowParams(e ast.Expression) []ast.Parameter {
	var exprs []ast.Expression
	var flatten func(ast.Expression)
	flatten = func(e ast.Expression) {
		if seq, ok := e.(*ast.Sequence); ok {
			flatten(seq.Left)
			flatten(seq.Right)
			return
		}
		exprs = append(exprs, e)
	}
	flatten(e)

	params := make([]ast.Parameter, 0, len(exprs))
	seenOptional := false
	for _, ex := range exprs {
		if spread, ok := ex.(*ast.SpreadElement); ok {
			pattern := p.reinterpretAsDestructuring(spread.Operand)
			params = append(params, ast.Parameter{Base: ast.Base{Location: spread.Location}, Kind: ast.ParamRest, Destructure: pattern})
			continue
		}
		if assign, ok := ex.(*ast.Assignment); ok && assign.Compound == nil {
			pattern := p.reinterpretAsDestructuring(assign.Left)
			params = append(params, ast.Parameter{Base: ast.Base{Location: assign.Location}, Kind: ast.ParamOptional, Destructure: pattern, DefaultValue: assign.Right})
			seenOptional = true
			continue
		}
		if seenOptional {
			p.unit.AddDiagnostic(source.NewDiagnostic(ex.Loc(), source.WrongParameterPosition))
		}
		pattern := p.reinterpretAsDestructuring(ex)
		params = append(params, ast.Parameter{Base: ast.Base{Location: ex.Loc()}, Kind: ast.ParamRequired, Destructure: pattern})
	}
	return params
}

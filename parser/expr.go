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
ParseExpression is the public facade's expression entry (spec.md §4.3):
Pratt-style precedence climbing over ctx. Never panics; returns an
Invalidated sentinel on unrecoverable syntax error at the current
position, per spec.md §7.
*/
func (p *Parser) ParseExpression(ctx ExprContext) ast.Expression {
	left := p.parseUnary(ctx)
	return p.parseInfix(left, ctx)
}

// binaryPrecedence maps each binary operator token to its Precedence.
var binaryTokenPrecedence = map[token.Kind]Precedence{
	token.QuestionQuestion: PrecNullCoalescing,
	token.LogicalOr:        PrecLogicalOr,
	token.LogicalXor:       PrecLogicalXor,
	token.LogicalAnd:       PrecLogicalAnd,
	token.BitwiseOr:        PrecBitwiseOr,
	token.BitwiseXor:       PrecBitwiseXor,
	token.BitwiseAnd:       PrecBitwiseAnd,
	token.Equals:           PrecEquality,
	token.ExclamationEquals: PrecEquality,
	token.StrictEquals:       PrecEquality,
	token.StrictNotEquals:    PrecEquality,
	token.Lt:           PrecRelational,
	token.Gt:           PrecRelational,
	token.Le:           PrecRelational,
	token.GtEquals:     PrecRelational,
	token.In:           PrecRelational,
	token.InstanceOf:   PrecRelational,
	token.Is:           PrecRelational,
	token.As:           PrecRelational,
	token.LeftShift:          PrecShift,
	token.GtGt:               PrecShift,
	token.GtGtGt:             PrecShift,
	token.Plus:  PrecAdditive,
	token.Minus: PrecAdditive,
	token.Times:    PrecMultiplicative,
	token.Div:      PrecMultiplicative,
	token.Modulus:  PrecMultiplicative,
	token.Exponent: PrecExponential,
}

var binaryTokenOperator = map[token.Kind]ast.BinaryOperator{
	token.Plus:               ast.OpAdd,
	token.Minus:              ast.OpSubtract,
	token.Times:              ast.OpMultiply,
	token.Div:                ast.OpDivide,
	token.Modulus:            ast.OpRemainder,
	token.Exponent:           ast.OpExponent,
	token.Equals:             ast.OpEquals,
	token.ExclamationEquals:  ast.OpNotEquals,
	token.StrictEquals:       ast.OpStrictEquals,
	token.StrictNotEquals:    ast.OpStrictNotEquals,
	token.Lt:                 ast.OpLt,
	token.Gt:                 ast.OpGt,
	token.Le:                 ast.OpLe,
	token.GtEquals:           ast.OpGe,
	token.In:                 ast.OpIn,
	token.InstanceOf:         ast.OpInstanceOf,
	token.Is:                 ast.OpIs,
	token.As:                 ast.OpAs,
	token.LogicalAnd:         ast.OpLogicalAnd,
	token.LogicalOr:          ast.OpLogicalOr,
	token.LogicalXor:         ast.OpLogicalXor,
	token.BitwiseAnd:         ast.OpBitwiseAnd,
	token.BitwiseOr:          ast.OpBitwiseOr,
	token.BitwiseXor:         ast.OpBitwiseXor,
	token.LeftShift:          ast.OpLeftShift,
	token.GtGt:               ast.OpRightShift,
	token.GtGtGt:             ast.OpUnsignedRightShift,
	token.QuestionQuestion:   ast.OpNullCoalescing,
}

var compoundAssignOperator = map[token.Kind]ast.BinaryOperator{
	token.PlusAssign:             ast.OpAdd,
	token.MinusAssign:            ast.OpSubtract,
	token.TimesAssign:            ast.OpMultiply,
	token.DivAssign:              ast.OpDivide,
	token.ModAssign:              ast.OpRemainder,
	token.ExponentAssign:         ast.OpExponent,
	token.BitwiseAndAssign:       ast.OpBitwiseAnd,
	token.BitwiseOrAssign:        ast.OpBitwiseOr,
	token.BitwiseXorAssign:       ast.OpBitwiseXor,
	token.LogicalAndAssign:       ast.OpLogicalAnd,
	token.LogicalOrAssign:        ast.OpLogicalOr,
	token.LogicalXorAssign:       ast.OpLogicalXor,
	token.LeftShiftAssign:        ast.OpLeftShift,
	token.GtGtEquals:             ast.OpRightShift,
	token.GtGtGtEquals:           ast.OpUnsignedRightShift,
	token.NullCoalescingAssign:   ast.OpNullCoalescing,
}

/*
parseInfix runs the climbing loop: while the lookahead is a binary/postfix
operator whose precedence is >= ctx.MinPrecedence, consume it and fold left
into a larger node (spec.md §4.3 "Implementation uses Pratt climbing").
*/
func (p *Parser) parseInfix(left ast.Expression, ctx ExprContext) ast.Expression {
	for {
		// `not in` / `not instanceof` (spec.md §4.3).
		if p.isContextKeyword("not") && ctx.MinPrecedence <= PrecRelational {
			saveLoc := p.currentLoc
			p.advance()
			switch {
			case p.is(token.In):
				p.advance()
				right := p.parseUnary(ctx)
				right = p.parseInfixAbove(right, PrecRelational+1, ctx)
				left = &ast.Binary{Base: ast.Base{Location: left.Loc().CombineWith(right.Loc())}, Operator: ast.OpNotIn, Left: left, Right: right}
				continue
			case p.is(token.InstanceOf):
				p.advance()
				right := p.parseUnary(ctx)
				right = p.parseInfixAbove(right, PrecRelational+1, ctx)
				left = &ast.Binary{Base: ast.Base{Location: left.Loc().CombineWith(right.Loc())}, Operator: ast.OpNotInstanceOf, Left: left, Right: right}
				continue
			default:
				// Not actually `not in`/`not instanceof`; nothing else starts
				// with a bare context keyword `not` here, so this is a syntax
				// error recovered by treating `not` as having been consumed
				// in error and stopping the climb.
				p.unit.AddDiagnostic(source.NewDiagnostic(saveLoc, source.ExpectedToken, token.KindName(token.In), p.current.String()))
				return left
			}
		}

		// `is not X` (spec.md §4.3).
		if p.is(token.Is) && ctx.MinPrecedence <= PrecRelational {
			p.advance()
			if p.isContextKeyword("not") {
				p.advance()
				right := p.parseUnary(ctx)
				right = p.parseInfixAbove(right, PrecRelational+1, ctx)
				left = &ast.Binary{Base: ast.Base{Location: left.Loc().CombineWith(right.Loc())}, Operator: ast.OpIsNot, Left: left, Right: right}
				continue
			}
			right := p.parseUnary(ctx)
			right = p.parseInfixAbove(right, PrecRelational+1, ctx)
			left = &ast.Binary{Base: ast.Base{Location: left.Loc().CombineWith(right.Loc())}, Operator: ast.OpIs, Left: left, Right: right}
			continue
		}

		if p.is(token.As) && ctx.MinPrecedence <= PrecRelational {
			p.advance()
			right := p.ParseTypeExpression()
			left = &ast.Binary{Base: ast.Base{Location: left.Loc().CombineWith(right.Loc())}, Operator: ast.OpAs, Left: left, Right: &typeAsExpression{right}}
			continue
		}

		if p.is(token.Comma) && ctx.MinPrecedence <= PrecList {
			p.advance()
			right := p.parseUnary(ctx)
			right = p.parseInfixAbove(right, PrecList, ctx)
			left = &ast.Sequence{Base: ast.Base{Location: left.Loc().CombineWith(right.Loc())}, Left: left, Right: right}
			continue
		}

		if p.is(token.Question) && ctx.MinPrecedence <= PrecAssignmentAndOther {
			p.advance()
			consequentCtx := ctx
			consequentCtx.MinPrecedence = PrecAssignmentAndOther
			consequentCtx.WithTypeAnnotation = false
			consequent := p.ParseExpression(consequentCtx)
			p.expect(token.Colon)
			alternativeCtx := ctx
			alternativeCtx.MinPrecedence = PrecAssignmentAndOther
			alternative := p.ParseExpression(alternativeCtx)
			left = &ast.Conditional{Base: ast.Base{Location: left.Loc().CombineWith(alternative.Loc())}, Test: left, Consequent: consequent, Alternative: alternative}
			continue
		}

		if compound, ok := compoundAssignOperator[p.current.Kind]; ok && ctx.MinPrecedence <= PrecAssignmentAndOther && ctx.AllowAssignment {
			op := compound
			p.advance()
			right := p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: ctx.AllowIn, AllowAssignment: true})
			target := p.toAssignmentTarget(left)
			left = &ast.Assignment{Base: ast.Base{Location: left.Loc().CombineWith(right.Loc())}, Left: target, Compound: &op, Right: right}
			continue
		}

		if p.is(token.Assign) && ctx.MinPrecedence <= PrecAssignmentAndOther && ctx.AllowAssignment {
			p.advance()
			right := p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: ctx.AllowIn, AllowAssignment: true})
			target := p.toAssignmentTarget(left)
			left = &ast.Assignment{Base: ast.Base{Location: left.Loc().CombineWith(right.Loc())}, Left: target, Right: right}
			continue
		}

		if p.is(token.In) && !ctx.AllowIn {
			return left
		}

		if prec, ok := binaryTokenPrecedence[p.current.Kind]; ok && prec >= ctx.MinPrecedence {
			if p.current.Kind == token.QuestionQuestion {
				if isBareLogical(left) {
					p.unit.AddDiagnostic(source.NewDiagnostic(left.Loc(), source.IllegalNullishCoalescingLeftOperand))
				}
			}
			op := binaryTokenOperator[p.current.Kind]
			rightAssoc := p.current.Kind == token.Exponent
			p.advance()
			nextMin := prec + 1
			if rightAssoc {
				nextMin = prec
			}
			right := p.parseUnary(ctx)
			right = p.parseInfixAbove(right, nextMin, ctx)
			left = &ast.Binary{Base: ast.Base{Location: left.Loc().CombineWith(right.Loc())}, Operator: op, Left: left, Right: right}
			continue
		}

		if p.is(token.Arrow) && ctx.MinPrecedence <= PrecAssignmentAndOther {
			p.advance()
			left = p.reinterpretAsArrowFunction(left)
			continue
		}

		return left
	}
}

/*
parseInfixAbove folds further infix operators into left, but only those at
or above minPrec - used to give each operand of a just-consumed operator its
own right-hand climb without re-entering ParseExpression's full ctx.
*/
func (p *Parser) parseInfixAbove(left ast.Expression, minPrec Precedence, ctx ExprContext) ast.Expression {
	sub := ctx
	sub.MinPrecedence = minPrec
	return p.parseInfix(left, sub)
}

/*
typeAsExpression wraps a TypeExpression so it can stand as the Right operand
of a Binary{OpAs} node without widening Binary.Right's type to something
looser than Expression; TypeExpression already satisfies Expression.
*/
type typeAsExpression struct {
	ast.TypeExpression
}

func isBareLogical(e ast.Expression) bool {
	b, ok := e.(*ast.Binary)
	if !ok {
		return false
	}
	switch b.Operator {
	case ast.OpLogicalAnd, ast.OpLogicalOr, ast.OpLogicalXor:
		return true
	}
	return false
}

/*
toAssignmentTarget reinterprets left as an assignment target: an array or
object initializer becomes a Destructuring (spec.md §4.3 "= += -= … build
Assignment{...} where left must pass a validity check").
*/
func (p *Parser) toAssignmentTarget(left ast.Expression) ast.Expression {
	switch v := left.(type) {
	case *ast.ArrayInitializer:
		d := p.reinterpretArrayDestructuring(v)
		return destructuringExpr{d}
	case *ast.ObjectInitializer:
		d := p.reinterpretObjectDestructuring(v)
		return destructuringExpr{d}
	default:
		return left
	}
}

/*
destructuringExpr lets a *ast.Destructuring stand in Assignment.Left, which
is typed as Expression so that both an ordinary reference target and a
reinterpreted pattern can occupy the same field.
*/
type destructuringExpr struct {
	*ast.Destructuring
}

func (destructuringExpr) exprNode() {}

// Unary / prefix
// ==============

var prefixUnaryOperator = map[token.Kind]ast.UnaryOperator{
	token.Plus:        ast.OpPositive,
	token.Minus:       ast.OpNegative,
	token.Exclamation: ast.OpLogicalNot,
	token.BitwiseNot:  ast.OpBitwiseNot,
	token.Increment:   ast.OpPreIncrement,
	token.Decrement:   ast.OpPreDecrement,
	token.Delete:      ast.OpDelete,
	token.TypeOf:      ast.OpTypeOf,
	token.Void:        ast.OpVoidOp,
}

func (p *Parser) parseUnary(ctx ExprContext) ast.Expression {
	start := p.loc()

	if op, ok := prefixUnaryOperator[p.current.Kind]; ok {
		p.advance()
		operand := p.parseUnary(ctx)
		return &ast.Unary{Base: ast.Base{Location: start.CombineWith(operand.Loc())}, Operator: op, Operand: operand}
	}

	if p.isContextKeyword("await") {
		p.advance()
		p.markAwait()
		operand := p.ParseExpression(ExprContext{MinPrecedence: PrecUnary, AllowIn: ctx.AllowIn, AllowAssignment: ctx.AllowAssignment})
		return &ast.Unary{Base: ast.Base{Location: start.CombineWith(operand.Loc())}, Operator: ast.OpAwaitAlias, Operand: operand}
	}

	if p.isContextKeyword("yield") {
		p.advance()
		p.markYield()
		if p.canStartExpression() {
			operand := p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: ctx.AllowIn, AllowAssignment: ctx.AllowAssignment})
			return &ast.Unary{Base: ast.Base{Location: start.CombineWith(operand.Loc())}, Operator: ast.OpYieldAlias, Operand: operand}
		}
		return &ast.Unary{Base: ast.Base{Location: start}, Operator: ast.OpYieldAlias}
	}

	base := p.parsePrimary(ctx)
	return p.parsePostfix(base, ctx)
}

func (p *Parser) canStartExpression() bool {
	switch p.current.Kind {
	case token.Semicolon, token.RightParen, token.RightBrace, token.RightBracket, token.Comma, token.Colon, token.EOF:
		return false
	}
	return true
}

// Postfix
// =======

func (p *Parser) parsePostfix(base ast.Expression, ctx ExprContext) ast.Expression {
	for {
		switch {
		case p.is(token.Dot):
			p.advance()
			base = p.parseDotSuffix(base)

		case p.is(token.QuestionDot):
			p.advance()
			base = p.parseOptionalChain(base)

		case p.is(token.DotDot):
			p.advance()
			qi := p.parseQualifiedIdentifier()
			base = &ast.Descendants{Base: ast.Base{Location: base.Loc().CombineWith(qi.Loc())}, Base_: base, Name: qi}

		case p.is(token.LeftBracket):
			p.advance()
			key := p.ParseExpression(DefaultExprContext())
			end := p.expect(token.RightBracket)
			base = &ast.ComputedMember{Base: ast.Base{Location: base.Loc().CombineWith(end)}, Base_: base, Key: key}

		case p.is(token.LeftParen):
			args, end := p.parseArguments()
			base = &ast.Call{Base: ast.Base{Location: base.Loc().CombineWith(end)}, Callee: base, Arguments: args}

		case p.is(token.Increment) && !p.current.PrecededByLineBreak:
			end := p.loc()
			p.advance()
			base = &ast.Postfix{Base: ast.Base{Location: base.Loc().CombineWith(end)}, Operator: ast.OpPostIncrement, Operand: base}

		case p.is(token.Decrement) && !p.current.PrecededByLineBreak:
			end := p.loc()
			p.advance()
			base = &ast.Postfix{Base: ast.Base{Location: base.Loc().CombineWith(end)}, Operator: ast.OpPostDecrement, Operand: base}

		case p.is(token.Exclamation) && !p.current.PrecededByLineBreak:
			end := p.loc()
			p.advance()
			base = &ast.Postfix{Base: ast.Base{Location: base.Loc().CombineWith(end)}, Operator: ast.OpNonNull, Operand: base}

		case p.is(token.Colon) && ctx.WithTypeAnnotation:
			p.advance()
			ty := p.ParseTypeExpression()
			base = &ast.WithTypeAnnotation{Base: ast.Base{Location: base.Loc().CombineWith(ty.Loc())}, Base_: base, Type: ty}

		default:
			return base
		}
	}
}

func (p *Parser) parseDotSuffix(base ast.Expression) ast.Expression {
	start := base.Loc()

	if p.is(token.LeftParen) {
		p.advance()
		pred := p.ParseExpression(DefaultExprContext())
		end := p.expect(token.RightParen)
		return &ast.Filter{Base: ast.Base{Location: start.CombineWith(end)}, Base_: base, Predicate: pred}
	}

	if p.is(token.Lt) {
		p.advance()
		var args []ast.TypeExpression
		if !p.isTypeArgumentsGt() {
			args = append(args, p.ParseTypeExpression())
			for p.is(token.Comma) {
				p.advance()
				args = append(args, p.ParseTypeExpression())
			}
		}
		end := p.expectTypeParametersGt()
		return &ast.WithTypeArguments{Base: ast.Base{Location: start.CombineWith(end)}, Base_: base, TypeArguments: args}
	}

	qi := p.parseQualifiedIdentifier()
	return &ast.Member{Base: ast.Base{Location: start.CombineWith(qi.Loc())}, Base_: base, Name: qi}
}

/*
parseOptionalChain builds the OptionalChainingPlaceholder-rooted sub-tree
for everything following a `?.` and wraps it (spec.md §4.3 "`?.` opens an
optional chain"). A second `?.` within the same chain (spec.md §8 Scenario 2,
e.g. `a?.b?.(x)`) continues building on the one placeholder this call
creates rather than opening a nested OptionalChaining - parseOptionalChainRest
handles that continuation itself instead of recursing through parsePostfix,
which would otherwise treat the second `?.` as starting a brand new chain.
*/
func (p *Parser) parseOptionalChain(base ast.Expression) ast.Expression {
	placeholder := &ast.OptionalChainingPlaceholder{Base: ast.Base{Location: base.Loc()}}
	built := p.parseOptionalChainStep(placeholder)
	built = p.parseOptionalChainRest(built)
	return &ast.OptionalChaining{Base: ast.Base{Location: base.Loc().CombineWith(built.Loc())}, Base_: base, Expression: built}
}

/*
parseOptionalChainStep consumes the suffix immediately following a `?.`
token: `?.(args)`, `?.[key]` or `?.name`.
*/
func (p *Parser) parseOptionalChainStep(placeholder ast.Expression) ast.Expression {
	switch {
	case p.is(token.LeftParen):
		args, end := p.parseArguments()
		return &ast.Call{Base: ast.Base{Location: placeholder.Loc().CombineWith(end)}, Callee: placeholder, Arguments: args}
	case p.is(token.LeftBracket):
		p.advance()
		key := p.ParseExpression(DefaultExprContext())
		end := p.expect(token.RightBracket)
		return &ast.ComputedMember{Base: ast.Base{Location: placeholder.Loc().CombineWith(end)}, Base_: placeholder, Key: key}
	default:
		return p.parseDotSuffix(placeholder)
	}
}

/*
parseOptionalChainRest parses every postfix operator after a chain's first
step, including any further `.`, `?.`, `[]`, `()` or `!` - all of them extend
the single OptionalChaining that parseOptionalChain is building, so a `?.`
seen here is a continuation, not the start of a new chain.
*/
func (p *Parser) parseOptionalChainRest(built ast.Expression) ast.Expression {
	for {
		switch {
		case p.is(token.Dot):
			p.advance()
			built = p.parseDotSuffix(built)

		case p.is(token.QuestionDot):
			p.advance()
			built = p.parseOptionalChainStep(built)

		case p.is(token.DotDot):
			p.advance()
			qi := p.parseQualifiedIdentifier()
			built = &ast.Descendants{Base: ast.Base{Location: built.Loc().CombineWith(qi.Loc())}, Base_: built, Name: qi}

		case p.is(token.LeftBracket):
			p.advance()
			key := p.ParseExpression(DefaultExprContext())
			end := p.expect(token.RightBracket)
			built = &ast.ComputedMember{Base: ast.Base{Location: built.Loc().CombineWith(end)}, Base_: built, Key: key}

		case p.is(token.LeftParen):
			args, end := p.parseArguments()
			built = &ast.Call{Base: ast.Base{Location: built.Loc().CombineWith(end)}, Callee: built, Arguments: args}

		case p.is(token.Increment) && !p.current.PrecededByLineBreak:
			end := p.loc()
			p.advance()
			built = &ast.Postfix{Base: ast.Base{Location: built.Loc().CombineWith(end)}, Operator: ast.OpPostIncrement, Operand: built}

		case p.is(token.Decrement) && !p.current.PrecededByLineBreak:
			end := p.loc()
			p.advance()
			built = &ast.Postfix{Base: ast.Base{Location: built.Loc().CombineWith(end)}, Operator: ast.OpPostDecrement, Operand: built}

		case p.is(token.Exclamation) && !p.current.PrecededByLineBreak:
			end := p.loc()
			p.advance()
			built = &ast.Postfix{Base: ast.Base{Location: built.Loc().CombineWith(end)}, Operator: ast.OpNonNull, Operand: built}

		default:
			return built
		}
	}
}

func (p *Parser) parseArguments() ([]ast.Expression, source.Location) {
	p.expect(token.LeftParen)
	var args []ast.Expression
	for !p.is(token.RightParen) && !p.is(token.EOF) {
		if p.is(token.DotDotDot) {
			start := p.loc()
			p.advance()
			operand := p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true})
			args = append(args, &ast.SpreadElement{Base: ast.Base{Location: start.CombineWith(operand.Loc())}, Operand: operand})
		} else {
			args = append(args, p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true}))
		}
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RightParen)
	return args, end
}

/*
parseQualifiedIdentifier parses (attribute?, qualifier?, name-or-brackets)
per spec.md §3. Called after a `.`/`..` or at primary position.
*/
func (p *Parser) parseQualifiedIdentifier() *ast.QualifiedIdentifier {
	start := p.loc()
	attribute := false
	if p.is(token.At) {
		attribute = true
		p.advance()
	}

	var qualifier ast.Expression
	if token.ReservedNamespaces[p.current.Kind] {
		nsLoc := p.loc()
		name := token.KindName(p.current.Kind)
		p.advance()
		qualifier = &ast.ReservedNamespaceLiteral{Base: ast.Base{Location: nsLoc}, Name: name}
	}

	if qualifier != nil && p.is(token.ColonColon) {
		p.advance()
		return p.finishQualifiedIdentifierName(start, attribute, qualifier)
	}
	if qualifier != nil {
		// A reserved namespace used without '::' stands alone as the name.
		if ql, ok := qualifier.(*ast.ReservedNamespaceLiteral); ok {
			return &ast.QualifiedIdentifier{Base: ast.Base{Location: start.CombineWith(ql.Loc())}, Attribute: attribute, Name: ql.Name, NameLocation: ql.Location}
		}
	}

	if p.is(token.Identifier) {
		nameLoc := p.loc()
		name := p.current.Val
		p.advance()
		if p.is(token.ColonColon) {
			p.advance()
			qualifier = &ast.TypeIdentifier{Base: ast.Base{Location: nameLoc}, Name: &ast.QualifiedIdentifier{Base: ast.Base{Location: nameLoc}, Name: name, NameLocation: nameLoc}}
			return p.finishQualifiedIdentifierName(start, attribute, qualifier)
		}
		return &ast.QualifiedIdentifier{Base: ast.Base{Location: start.CombineWith(nameLoc)}, Attribute: attribute, Name: name, NameLocation: nameLoc}
	}

	if p.is(token.LeftParen) {
		p.advance()
		qualifier = p.ParseExpression(DefaultExprContext())
		p.expect(token.RightParen)
		p.expect(token.ColonColon)
		return p.finishQualifiedIdentifierName(start, attribute, qualifier)
	}

	if p.is(token.Times) {
		loc := p.loc()
		p.advance()
		return &ast.QualifiedIdentifier{Base: ast.Base{Location: start.CombineWith(loc)}, Attribute: attribute, Name: "*", NameLocation: loc}
	}

	loc := p.loc()
	p.unit.AddDiagnostic(source.NewDiagnostic(loc, source.ExpectedIdentifier))
	return &ast.QualifiedIdentifier{Base: ast.Base{Location: start.CombineWith(loc)}, Attribute: attribute}
}

func (p *Parser) finishQualifiedIdentifierName(start source.Location, attribute bool, qualifier ast.Expression) *ast.QualifiedIdentifier {
	if p.is(token.LeftBracket) {
		p.advance()
		br := p.ParseExpression(DefaultExprContext())
		end := p.expect(token.RightBracket)
		return &ast.QualifiedIdentifier{Base: ast.Base{Location: start.CombineWith(end)}, Attribute: attribute, Qualifier: qualifier, Brackets: br}
	}
	if p.is(token.Times) {
		loc := p.loc()
		p.advance()
		return &ast.QualifiedIdentifier{Base: ast.Base{Location: start.CombineWith(loc)}, Attribute: attribute, Qualifier: qualifier, Name: "*", NameLocation: loc}
	}
	name, nameLoc := p.expectIdentifier()
	return &ast.QualifiedIdentifier{Base: ast.Base{Location: start.CombineWith(nameLoc)}, Attribute: attribute, Qualifier: qualifier, Name: name, NameLocation: nameLoc}
}

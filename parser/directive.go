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
DirectiveContextKind is one of the contexts a directive sequence may be
parsed under (spec.md §4.4 "Directive parsing threads a DirectiveContext").
*/
type DirectiveContextKind int

const (
	DirTopLevel DirectiveContextKind = iota
	DirPackageBlock
	DirClassBlock
	DirInterfaceBlock
	DirEnumBlock
	DirConstructorBlock
)

/*
DirectiveContext carries what the current directive sequence needs to know
beyond its kind: the enclosing class's name (constructor detection) and
SuperStatementSeen, a flag for constructor blocks (spec.md §4.4). The parser
never sets SuperStatementSeen, and class constructor bodies are parsed under
DirTopLevel rather than DirConstructorBlock.
*/
type DirectiveContext struct {
	Kind             DirectiveContextKind
	EnclosingClass   string
	SuperStatementSeen bool
}

/*
ParseDirectives is the public facade's entry for a bare directive sequence
(spec.md §6 "parse_directives"), used for included files and for testing
individual directives in isolation.
*/
func (p *Parser) ParseDirectives(ctx DirectiveContext) []ast.Directive {
	var dirs []ast.Directive
	for !p.is(token.EOF) && !p.is(token.RightBrace) {
		dirs = append(dirs, p.parseDirective(ctx))
	}
	return dirs
}

func (p *Parser) parseBlock() *ast.Block {
	start := p.loc()
	p.expect(token.LeftBrace)
	dirs := p.ParseDirectives(DirectiveContext{Kind: DirTopLevel})
	end := p.expect(token.RightBrace)
	return &ast.Block{Base: ast.Base{Location: start.CombineWith(end)}, Directives: dirs}
}

func (p *Parser) parseBlockIn(ctx DirectiveContext) *ast.Block {
	start := p.loc()
	p.expect(token.LeftBrace)
	dirs := p.ParseDirectives(ctx)
	end := p.expect(token.RightBrace)
	return &ast.Block{Base: ast.Base{Location: start.CombineWith(end)}, Directives: dirs}
}

/*
parseDirective dispatches one directive/statement. Annotatable directives
(metadata/ASDoc/modifier-prefixed var/const/function/class/interface/enum/
namespace/type) are detected by first reading an attribute prefix from the
tokens (tryParseAttributePrefix) and then switching on the keyword that
follows; no expression is parsed first.
*/
func (p *Parser) parseDirective(ctx DirectiveContext) ast.Directive {
	start := p.loc()

	switch {
	case p.is(token.Semicolon):
		p.advance()
		return &ast.EmptyStatement{Base: ast.Base{Location: start}}

	case p.is(token.LeftBrace):
		return p.parseBlockIn(ctx)

	case p.is(token.Package):
		return p.parsePackageDefinition()

	case p.is(token.Import):
		return p.parseImportDirective(start)

	case p.is(token.Use):
		return p.parseUseNamespaceDirective(start)

	case p.isContextKeyword("include"):
		return p.parseIncludeDirective(start, ctx)

	case p.isContextKeyword("configuration"):
		return p.parseConfigurationDirective(start, ctx)

	case p.is(token.If):
		return p.parseIfStatement(start, ctx)

	case p.is(token.Switch):
		return p.parseSwitchOrSwitchType(start, ctx)

	case p.is(token.Do):
		return p.parseDoWhileStatement(start, ctx)

	case p.is(token.While):
		return p.parseWhileStatement(start, ctx)

	case p.is(token.For):
		return p.parseForStatement(start, ctx)

	case p.is(token.With):
		return p.parseWithStatement(start, ctx)

	case p.is(token.Try):
		return p.parseTryStatement(start, ctx)

	case p.is(token.Throw):
		return p.parseThrowStatement(start)

	case p.is(token.Return):
		return p.parseReturnStatement(start)

	case p.is(token.Break):
		return p.parseBreakStatement(start, ctx)

	case p.is(token.Continue):
		return p.parseContinueStatement(start, ctx)

	case p.is(token.Default):
		return p.parseDefaultXmlNamespace(start)

	case p.is(token.Var) || p.is(token.Const):
		return p.parseVariableDefinitionDirective(start, ctx, ast.Attributes{})

	case p.is(token.Super) && ctx.Kind == DirConstructorBlock:
		return p.parseSuperStatement(start, ctx)
	}

	return p.parseExpressionOrAnnotatableDirective(start, ctx)
}

func (p *Parser) parsePackageDefinition() ast.Directive {
	start := p.loc()
	p.advance()
	var name string
	if p.is(token.Identifier) {
		name = p.parseDottedName()
	}
	block := p.parseBlockIn(DirectiveContext{Kind: DirPackageBlock})
	return &ast.PackageDefinition{Base: ast.Base{Location: start.CombineWith(block.Location)}, Name: name, Block: block}
}

func (p *Parser) parseDottedName() string {
	name, _ := p.expectIdentifier()
	for p.is(token.Dot) {
		p.advance()
		part, _ := p.expectIdentifier()
		name += "." + part
	}
	return name
}

func (p *Parser) parseImportDirective(start source.Location) ast.Directive {
	p.advance()

	if p.is(token.Identifier) {
		first, firstLoc := p.expectIdentifier()
		if p.is(token.Assign) {
			p.advance()
			parts := []string{}
			name := p.parseDottedNameInto(&parts)
			_ = name
			end := p.expect(token.Semicolon)
			return &ast.ImportDirective{Base: ast.Base{Location: start.CombineWith(end)}, Alias: first, Name: parts}
		}
		parts := []string{first}
		for p.is(token.Dot) {
			p.advance()
			if p.is(token.Times) {
				p.advance()
				end := p.expect(token.Semicolon)
				return &ast.ImportDirective{Base: ast.Base{Location: start.CombineWith(end)}, Name: parts, Wildcard: true}
			}
			part, _ := p.expectIdentifier()
			parts = append(parts, part)
		}
		end := p.expect(token.Semicolon)
		_ = firstLoc
		return &ast.ImportDirective{Base: ast.Base{Location: start.CombineWith(end)}, Name: parts}
	}

	end := p.expect(token.Semicolon)
	return &ast.ImportDirective{Base: ast.Base{Location: start.CombineWith(end)}}
}

func (p *Parser) parseDottedNameInto(parts *[]string) string {
	name, _ := p.expectIdentifier()
	*parts = append(*parts, name)
	for p.is(token.Dot) {
		p.advance()
		part, _ := p.expectIdentifier()
		*parts = append(*parts, part)
		name += "." + part
	}
	return name
}

func (p *Parser) parseUseNamespaceDirective(start source.Location) ast.Directive {
	p.advance()
	p.expectContextKeyword("namespace")
	expr := p.ParseExpression(DefaultExprContext())
	end := p.expect(token.Semicolon)
	return &ast.UseNamespaceDirective{Base: ast.Base{Location: start.CombineWith(end)}, Expression: expr}
}

func (p *Parser) parseDefaultXmlNamespace(start source.Location) ast.Directive {
	p.advance()
	p.expectContextKeyword("xml")
	p.expectContextKeyword("namespace")
	p.expect(token.Assign)
	expr := p.ParseExpression(DefaultExprContext())
	end := p.expect(token.Semicolon)
	return &ast.DefaultXmlNamespaceDirective{Base: ast.Base{Location: start.CombineWith(end)}, Expression: expr}
}

func (p *Parser) parseIfStatement(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()
	p.expect(token.LeftParen)
	test := p.ParseExpression(DefaultExprContext())
	p.expect(token.RightParen)
	consequent := p.parseDirective(ctx)
	var alternative ast.Directive
	end := consequent.Loc()
	if p.is(token.Else) {
		p.advance()
		alternative = p.parseDirective(ctx)
		end = alternative.Loc()
	}
	return &ast.IfStatement{Base: ast.Base{Location: start.CombineWith(end)}, Test: test, Consequent: consequent, Alternative: alternative}
}

func (p *Parser) parseSwitchOrSwitchType(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()
	if p.isContextKeyword("type") {
		p.advance()
		p.expect(token.LeftParen)
		disc := p.ParseExpression(DefaultExprContext())
		p.expect(token.RightParen)
		p.expect(token.LeftBrace)
		var cases []ast.SwitchTypeCase
		inner := ctx
		inner.Kind = DirTopLevel
		p.breakableDepth++
		for p.is(token.Case) || p.is(token.Default) {
			caseStart := p.loc()
			var pattern *ast.Destructuring
			if p.is(token.Case) {
				p.advance()
				p.expect(token.LeftParen)
				pattern = p.parseDestructuringPattern()
				p.expect(token.RightParen)
			} else {
				p.advance()
			}
			body := p.parseBlockIn(inner)
			cases = append(cases, ast.SwitchTypeCase{Base: ast.Base{Location: caseStart.CombineWith(body.Location)}, Pattern: pattern, Directives: body.Directives})
		}
		p.breakableDepth--
		end := p.expect(token.RightBrace)
		return &ast.SwitchTypeStatement{Base: ast.Base{Location: start.CombineWith(end)}, Discriminant: disc, Cases: cases}
	}

	p.expect(token.LeftParen)
	disc := p.ParseExpression(DefaultExprContext())
	p.expect(token.RightParen)
	p.expect(token.LeftBrace)
	var cases []ast.SwitchCase
	inner := ctx
	inner.Kind = DirTopLevel
	p.breakableDepth++
	for p.is(token.Case) || p.is(token.Default) {
		caseStart := p.loc()
		var test ast.Expression
		if p.is(token.Case) {
			p.advance()
			test = p.ParseExpression(DefaultExprContext())
		} else {
			p.advance()
		}
		p.expect(token.Colon)
		var dirs []ast.Directive
		for !p.is(token.Case) && !p.is(token.Default) && !p.is(token.RightBrace) && !p.is(token.EOF) {
			dirs = append(dirs, p.parseDirective(inner))
		}
		cases = append(cases, ast.SwitchCase{Base: ast.Base{Location: caseStart}, Test: test, Directives: dirs})
	}
	p.breakableDepth--
	end := p.expect(token.RightBrace)
	return &ast.SwitchStatement{Base: ast.Base{Location: start.CombineWith(end)}, Discriminant: disc, Cases: cases}
}

func (p *Parser) parseDoWhileStatement(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()
	p.iterationDepth++
	p.breakableDepth++
	body := p.parseDirective(ctx)
	p.iterationDepth--
	p.breakableDepth--
	p.expect(token.While)
	p.expect(token.LeftParen)
	test := p.ParseExpression(DefaultExprContext())
	end := p.expect(token.RightParen)
	p.expect(token.Semicolon)
	return &ast.DoWhileStatement{Base: ast.Base{Location: start.CombineWith(end)}, Body: body, Test: test}
}

func (p *Parser) parseWhileStatement(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()
	p.expect(token.LeftParen)
	test := p.ParseExpression(DefaultExprContext())
	p.expect(token.RightParen)
	p.iterationDepth++
	p.breakableDepth++
	body := p.parseDirective(ctx)
	p.iterationDepth--
	p.breakableDepth--
	return &ast.WhileStatement{Base: ast.Base{Location: start.CombineWith(body.Loc())}, Test: test, Body: body}
}

func (p *Parser) parseWithStatement(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()
	p.expect(token.LeftParen)
	obj := p.ParseExpression(DefaultExprContext())
	p.expect(token.RightParen)
	body := p.parseDirective(ctx)
	return &ast.WithStatement{Base: ast.Base{Location: start.CombineWith(body.Loc())}, Object: obj, Body: body}
}

func (p *Parser) parseForStatement(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()

	if p.isContextKeyword("each") {
		p.advance()
		return p.parseForInOrEach(start, ctx, true)
	}

	p.expect(token.LeftParen)

	if p.is(token.Var) || p.is(token.Const) || p.canStartExpression() && !p.is(token.Semicolon) {
		save := p.current
		saveLoc := p.currentLoc
		if vd, isIn, ok := p.tryParseForInBinding(); ok {
			if isIn {
				p.expect(token.In)
				right := p.ParseExpression(DefaultExprContext())
				p.expect(token.RightParen)
				p.iterationDepth++
				p.breakableDepth++
				body := p.parseDirective(ctx)
				p.iterationDepth--
				p.breakableDepth--
				return &ast.ForInStatement{Base: ast.Base{Location: start.CombineWith(body.Loc())}, Binding: vd, Right: right, Body: body}
			}
		}
		p.current, p.currentLoc = save, saveLoc
	}

	return p.parseForCStyle(start, ctx)
}

func (p *Parser) parseForInOrEach(start source.Location, ctx DirectiveContext, each bool) ast.Directive {
	p.expect(token.LeftParen)
	binding, _, _ := p.tryParseForInBinding()
	p.expect(token.In)
	right := p.ParseExpression(DefaultExprContext())
	p.expect(token.RightParen)
	p.iterationDepth++
	p.breakableDepth++
	body := p.parseDirective(ctx)
	p.iterationDepth--
	p.breakableDepth--
	if each {
		return &ast.ForEachStatement{Base: ast.Base{Location: start.CombineWith(body.Loc())}, Binding: binding, Right: right, Body: body}
	}
	return &ast.ForInStatement{Base: ast.Base{Location: start.CombineWith(body.Loc())}, Binding: binding, Right: right, Body: body}
}

/*
tryParseForInBinding attempts to parse the left-hand side of a `for..in`/
`for each..in` statement: a single `var`/`const` binding or a plain
assignment-target expression, reporting whether an `in` token follows
(spec.md §4.4 "IllegalForInInitializer", "MultipleForInBindings").
*/
func (p *Parser) tryParseForInBinding() (ast.ForInBinding, bool, bool) {
	if p.is(token.Var) || p.is(token.Const) {
		readOnly := p.is(token.Const)
		p.advance()
		pattern := p.parseDestructuringPattern()
		binding := &ast.VariableDefinition{ReadOnly: readOnly, Bindings: []ast.VariableBinding{{Pattern: pattern}}}
		if p.is(token.Comma) {
			p.unit.AddDiagnostic(source.NewDiagnostic(p.loc(), source.MultipleForInBindings))
			for p.is(token.Comma) {
				p.advance()
				p.parseDestructuringPattern()
			}
		}
		return ast.ForInBinding{VarDefinition: binding}, p.is(token.In), true
	}

	expr := p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: false, AllowAssignment: true})
	return ast.ForInBinding{Expression: expr}, p.is(token.In), true
}

func (p *Parser) parseForCStyle(start source.Location, ctx DirectiveContext) ast.Directive {
	var init *ast.ForInit
	if !p.is(token.Semicolon) {
		if p.is(token.Var) || p.is(token.Const) {
			readOnly := p.is(token.Const)
			p.advance()
			bindings := p.parseVariableBindingList()
			vd := &ast.VariableDefinition{ReadOnly: readOnly, Bindings: bindings}
			init = &ast.ForInit{VarDefinition: vd}
		} else {
			expr := p.ParseExpression(ExprContext{MinPrecedence: PrecList, AllowIn: false, AllowAssignment: true})
			init = &ast.ForInit{Expression: expr}
		}
	}
	p.expect(token.Semicolon)

	var test ast.Expression
	if !p.is(token.Semicolon) {
		test = p.ParseExpression(DefaultExprContext())
	}
	p.expect(token.Semicolon)

	var update ast.Expression
	if !p.is(token.RightParen) {
		update = p.ParseExpression(DefaultExprContext())
	}
	p.expect(token.RightParen)

	p.iterationDepth++
	p.breakableDepth++
	body := p.parseDirective(ctx)
	p.iterationDepth--
	p.breakableDepth--

	return &ast.ForStatement{Base: ast.Base{Location: start.CombineWith(body.Loc())}, Init: init, Test: test, Update: update, Body: body}
}

func (p *Parser) parseTryStatement(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()
	block := p.parseBlockIn(ctx)
	var catches []ast.CatchClause
	for p.is(token.Catch) {
		catchStart := p.loc()
		p.advance()
		p.expect(token.LeftParen)
		param := p.parseDestructuringPattern()
		p.expect(token.RightParen)
		body := p.parseBlockIn(ctx)
		catches = append(catches, ast.CatchClause{Base: ast.Base{Location: catchStart.CombineWith(body.Location)}, Parameter: param, Block: body})
	}
	var finallyBlock *ast.Block
	end := block.Location
	if len(catches) > 0 {
		end = catches[len(catches)-1].Location
	}
	if p.is(token.Finally) {
		p.advance()
		finallyBlock = p.parseBlockIn(ctx)
		end = finallyBlock.Location
	}
	return &ast.TryStatement{Base: ast.Base{Location: start.CombineWith(end)}, Block: block, Catches: catches, Finally: finallyBlock}
}

func (p *Parser) parseThrowStatement(start source.Location) ast.Directive {
	p.advance()
	arg := p.ParseExpression(DefaultExprContext())
	end := p.expect(token.Semicolon)
	return &ast.ThrowStatement{Base: ast.Base{Location: start.CombineWith(end)}, Argument: arg}
}

func (p *Parser) parseReturnStatement(start source.Location) ast.Directive {
	p.advance()
	var arg ast.Expression
	if !p.is(token.Semicolon) && !p.current.PrecededByLineBreak && p.canStartExpression() {
		arg = p.ParseExpression(DefaultExprContext())
	}
	end := p.expect(token.Semicolon)
	return &ast.ReturnStatement{Base: ast.Base{Location: start.CombineWith(end)}, Argument: arg}
}

func (p *Parser) parseBreakStatement(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()
	var label *string
	if p.is(token.Identifier) && !p.current.PrecededByLineBreak {
		l := p.current.Val
		label = &l
		if !p.labels[l] {
			p.unit.AddDiagnostic(source.NewDiagnostic(p.loc(), source.UndefinedLabel, l))
		}
		p.advance()
	} else if p.breakableDepth == 0 {
		p.unit.AddDiagnostic(source.NewDiagnostic(start, source.IllegalBreak))
	}
	end := p.expect(token.Semicolon)
	return &ast.BreakStatement{Base: ast.Base{Location: start.CombineWith(end)}, Label: label}
}

func (p *Parser) parseContinueStatement(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()
	var label *string
	if p.is(token.Identifier) && !p.current.PrecededByLineBreak {
		l := p.current.Val
		label = &l
		if !p.labels[l] {
			p.unit.AddDiagnostic(source.NewDiagnostic(p.loc(), source.UndefinedLabel, l))
		}
		p.advance()
	} else if p.iterationDepth == 0 {
		p.unit.AddDiagnostic(source.NewDiagnostic(start, source.IllegalContinue))
	}
	end := p.expect(token.Semicolon)
	return &ast.ContinueStatement{Base: ast.Base{Location: start.CombineWith(end)}, Label: label}
}

func (p *Parser) parseSuperStatement(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()
	args, end := p.parseArguments()
	p.expect(token.Semicolon)
	return &ast.SuperStatement{Base: ast.Base{Location: start.CombineWith(end)}, Arguments: args}
}

/*
parseExpressionOrAnnotatableDirective first reads an attribute prefix
(tryParseAttributePrefix); if that finds metadata or modifiers, or an
annotatable keyword follows, the directive is dispatched as annotatable. A
statement that starts with `[` or a modifier keyword therefore always takes
that path and is never parsed as an expression statement. Otherwise an
expression is parsed and checked for a labeled statement (`identifier :`),
a normal configuration directive (`NS::NAME` followed by another directive
or a block), or else an expression statement.
*/
func (p *Parser) parseExpressionOrAnnotatableDirective(start source.Location, ctx DirectiveContext) ast.Directive {
	if attrs, ok := p.tryParseAttributePrefix(); ok {
		return p.dispatchAnnotatableDirective(start, ctx, attrs)
	}

	expr := p.ParseExpression(DefaultExprContext())

	// A label is a plain identifier expression followed by an unconsumed ':'.
	if qi, ok := asQualifiedIdentifier(expr); ok && qi.Qualifier == nil && !qi.Attribute && !qi.IsComputed() {
		name := qi.Name
		if p.is(token.Colon) {
			p.advance()
			p.labels[name] = true
			stmt := p.parseDirective(ctx)
			delete(p.labels, name)
			return &ast.LabeledStatement{Base: ast.Base{Location: start.CombineWith(stmt.Loc())}, Label: name, Statement: stmt}
		}
	}

	if qi, ok := asQualifiedIdentifier(expr); ok && qi.Qualifier != nil && (p.isAnnotatableLookahead() || p.is(token.LeftBrace)) {
		return p.parseNormalConfiguration(start, ctx, qi)
	}

	end := p.expect(token.Semicolon)
	return &ast.ExpressionStatement{Base: ast.Base{Location: start.CombineWith(end)}, Expression: expr}
}

func asQualifiedIdentifier(e ast.Expression) (*ast.QualifiedIdentifier, bool) {
	qi, ok := e.(*ast.QualifiedIdentifier)
	return qi, ok
}

func (p *Parser) parseNormalConfiguration(start source.Location, ctx DirectiveContext, qi *ast.QualifiedIdentifier) ast.Directive {
	if p.is(token.LeftBrace) {
		block := p.parseBlockIn(ctx)
		return &ast.NormalConfigurationDirective{Base: ast.Base{Location: start.CombineWith(block.Location)}, Name: qi.Name, Block: block}
	}
	inner := p.parseDirective(ctx)
	block := &ast.Block{Base: ast.Base{Location: inner.Loc()}, Directives: []ast.Directive{inner}}
	return &ast.NormalConfigurationDirective{Base: ast.Base{Location: start.CombineWith(inner.Loc())}, Name: qi.Name, Block: block}
}

/*
isAnnotatableLookahead reports whether the current token could open another
annotatable directive - used both for the NormalConfigurationDirective
rewrite and, via tryParseAttributePrefix, for metadata/modifier detection.
*/
func (p *Parser) isAnnotatableLookahead() bool {
	switch {
	case p.is(token.Var), p.is(token.Const), p.is(token.Function), p.is(token.Class), p.is(token.Interface):
		return true
	case p.is(token.Public), p.is(token.Private), p.is(token.Protected), p.is(token.Internal):
		return true
	case p.is(token.LeftBracket):
		return true
	case p.is(token.Enum), p.isContextKeyword("type"), p.isContextKeyword("namespace"):
		return true
	case p.isContextKeyword("static"), p.isContextKeyword("final"), p.isContextKeyword("override"),
		p.isContextKeyword("dynamic"), p.isContextKeyword("abstract"):
		return true
	case p.is(token.Native):
		return true
	}
	return false
}

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
tryParseAttributePrefix consumes a run of metadata entries (`[Name(...)]`),
an ASDoc comment, and modifier keywords (`public`, `static`, `final`, …)
ahead of a `var`/`const`/`function`/`class`/`interface`/`enum`/`namespace`/
`type` definition (spec.md §4.4 "Annotatable directives"). It reports false
(consuming nothing) if the current token cannot start any of these.
*/
func (p *Parser) tryParseAttributePrefix() (ast.Attributes, bool) {
	var attrs ast.Attributes
	found := false

	attrs.Doc = p.consumeAsDoc()

	for p.is(token.LeftBracket) {
		m := p.parseMetadataAttribute()
		attrs.Metadata = append(attrs.Metadata, m)
		found = true
	}

	for {
		switch {
		case p.is(token.Public):
			p.advance()
			attrs.Modifiers = append(attrs.Modifiers, ast.ModPublic)
			found = true
			continue
		case p.is(token.Private):
			p.advance()
			attrs.Modifiers = append(attrs.Modifiers, ast.ModPrivate)
			found = true
			continue
		case p.is(token.Protected):
			p.advance()
			attrs.Modifiers = append(attrs.Modifiers, ast.ModProtected)
			found = true
			continue
		case p.is(token.Internal):
			p.advance()
			attrs.Modifiers = append(attrs.Modifiers, ast.ModInternal)
			found = true
			continue
		case p.is(token.Native):
			p.advance()
			attrs.Modifiers = append(attrs.Modifiers, ast.ModNative)
			found = true
			continue
		case p.isContextKeyword("static"):
			p.advance()
			attrs.Modifiers = append(attrs.Modifiers, ast.ModStatic)
			found = true
			continue
		case p.isContextKeyword("final"):
			p.advance()
			attrs.Modifiers = append(attrs.Modifiers, ast.ModFinal)
			found = true
			continue
		case p.isContextKeyword("override"):
			p.advance()
			attrs.Modifiers = append(attrs.Modifiers, ast.ModOverride)
			found = true
			continue
		case p.isContextKeyword("dynamic"):
			p.advance()
			attrs.Modifiers = append(attrs.Modifiers, ast.ModDynamic)
			found = true
			continue
		case p.isContextKeyword("abstract"):
			p.advance()
			attrs.Modifiers = append(attrs.Modifiers, ast.ModAbstract)
			found = true
			continue
		}
		break
	}

	if !found && !p.isAnnotatableLookahead() {
		return attrs, false
	}
	return attrs, true
}

/*
parseMetadataAttribute reinterprets a `[Name]` or `[Name(entries…)]`
bracketed expression as Metadata, per spec.md §4.4.
*/
func (p *Parser) parseMetadataAttribute() *ast.Metadata {
	start := p.loc()
	p.expect(token.LeftBracket)
	name, _ := p.expectIdentifier()
	var entries []ast.MetadataEntry

	if p.is(token.LeftParen) {
		p.advance()
		for !p.is(token.RightParen) && !p.is(token.EOF) {
			entryStart := p.loc()
			if p.is(token.Identifier) {
				save, saveLoc := p.current, p.currentLoc
				key, _ := p.expectIdentifier()
				if p.is(token.Assign) {
					p.advance()
					val := p.parseMetadataEntryValue()
					entries = append(entries, ast.MetadataEntry{Base: ast.Base{Location: entryStart}, Key: &key, Value: val})
				} else {
					entries = append(entries, ast.MetadataEntry{Base: ast.Base{Location: entryStart}, Value: key})
					_ = save
					_ = saveLoc
				}
			} else {
				val := p.parseMetadataEntryValue()
				entries = append(entries, ast.MetadataEntry{Base: ast.Base{Location: entryStart}, Value: val})
			}
			if p.is(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		p.expect(token.RightParen)
	}

	end := p.expect(token.RightBracket)
	return &ast.Metadata{Base: ast.Base{Location: start.CombineWith(end)}, Name: name, Entries: entries}
}

func (p *Parser) parseMetadataEntryValue() string {
	if p.is(token.StringLiteral) {
		v := p.current.Val
		p.advance()
		return v
	}
	if p.is(token.NumericLiteral) {
		v := p.current.Val
		p.advance()
		return v
	}
	if p.is(token.Identifier) {
		v := p.current.Val
		p.advance()
		return v
	}
	p.unit.AddDiagnostic(source.NewDiagnostic(p.loc(), source.MalformedMetadataElement))
	p.advance()
	return ""
}

/*
dispatchAnnotatableDirective dispatches to the right annotatable-directive
parser once an attribute prefix has been consumed (spec.md §4.4).
*/
func (p *Parser) dispatchAnnotatableDirective(start source.Location, ctx DirectiveContext, attrs ast.Attributes) ast.Directive {
	switch {
	case p.is(token.Var) || p.is(token.Const):
		return p.parseVariableDefinitionDirective(start, ctx, attrs)
	case p.is(token.Function):
		return p.parseFunctionDefinition(start, ctx, attrs)
	case p.is(token.Class):
		return p.parseClassDefinition(start, ctx, attrs)
	case p.is(token.Interface):
		return p.parseInterfaceDefinition(start, attrs)
	case p.is(token.Enum):
		return p.parseEnumDefinition(start, attrs)
	case p.isContextKeyword("namespace"):
		return p.parseNamespaceDefinition(start, attrs)
	case p.isContextKeyword("type"):
		return p.parseTypeDefinition(start, attrs)
	}

	p.unit.AddDiagnostic(source.NewDiagnostic(p.loc(), source.NotAllowedHere))
	p.synchronize()
	return p.invalidatedDirective(start)
}

func (p *Parser) parseVariableDefinitionDirective(start source.Location, ctx DirectiveContext, attrs ast.Attributes) ast.Directive {
	readOnly := p.is(token.Const)
	p.advance()
	bindings := p.parseVariableBindingList()
	end := start
	if n := len(bindings); n > 0 {
		end = bindings[n-1].Location
	}
	semiEnd := p.expect(token.Semicolon)
	if semiEnd.LastOffset > end.LastOffset {
		end = semiEnd
	}
	return &ast.VariableDefinition{Base: ast.Base{Location: start.CombineWith(end)}, Attributes: attrs, ReadOnly: readOnly, Bindings: bindings}
}

func (p *Parser) parseVariableBindingList() []ast.VariableBinding {
	var bindings []ast.VariableBinding
	for {
		start := p.loc()
		pattern := p.parseDestructuringPattern()
		var init ast.Expression
		end := pattern.Location
		if p.is(token.Assign) {
			p.advance()
			init = p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true})
			end = init.Loc()
		}
		bindings = append(bindings, ast.VariableBinding{Base: ast.Base{Location: start.CombineWith(end)}, Pattern: pattern, Init: init})
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return bindings
}

func (p *Parser) parseFunctionDefinition(start source.Location, ctx DirectiveContext, attrs ast.Attributes) ast.Directive {
	p.advance()

	getter, setter := false, false
	if p.isContextKeyword("get") {
		p.advance()
		getter = true
	} else if p.isContextKeyword("set") {
		p.advance()
		setter = true
	}

	var name string
	if (getter || setter) && !p.is(token.Identifier) {
		// `get`/`set` not followed by a name is itself the name: `function get()`.
		name = "set"
		if getter {
			name = "get"
		}
		getter, setter = false, false
	} else {
		name, _ = p.expectIdentifier()
	}

	if ctx.Kind == DirClassBlock && name == ctx.EnclosingClass && !getter && !setter {
		common := p.parseFunctionCommon()
		return &ast.ConstructorDefinition{Base: ast.Base{Location: start.CombineWith(common.Location)}, Attributes: attrs, Name: name, Common: common}
	}

	common := p.parseFunctionCommon()
	end := common.Location
	if common.Body == nil {
		semiEnd := p.expect(token.Semicolon)
		if semiEnd.LastOffset > end.LastOffset {
			end = semiEnd
		}
	}
	return &ast.FunctionDefinition{Base: ast.Base{Location: start.CombineWith(end)}, Attributes: attrs, Name: name, Getter: getter, Setter: setter, Common: common}
}

func (p *Parser) parseTypeParams() []string {
	if !p.is(token.Lt) {
		return nil
	}
	p.advance()
	var params []string
	for !p.isTypeArgumentsGt() && !p.is(token.EOF) {
		name, _ := p.expectIdentifier()
		params = append(params, name)
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expectTypeParametersGt()
	return params
}

func (p *Parser) parseClassDefinition(start source.Location, ctx DirectiveContext, attrs ast.Attributes) ast.Directive {
	p.advance()
	name, _ := p.expectIdentifier()
	typeParams := p.parseTypeParams()

	var extendsType ast.TypeExpression
	if p.is(token.Extends) {
		p.advance()
		extendsType = p.ParseTypeExpression()
	}

	var implements []ast.TypeExpression
	if p.is(token.Implements) {
		p.advance()
		implements = append(implements, p.ParseTypeExpression())
		for p.is(token.Comma) {
			p.advance()
			implements = append(implements, p.ParseTypeExpression())
		}
	}

	if ctx.Kind != DirPackageBlock && ctx.Kind != DirTopLevel {
		p.unit.AddDiagnostic(source.NewDiagnostic(start, source.NestedClassesNotAllowed))
	}

	block := p.parseBlockIn(DirectiveContext{Kind: DirClassBlock, EnclosingClass: name})
	return &ast.ClassDefinition{
		Base: ast.Base{Location: start.CombineWith(block.Location)}, Attributes: attrs,
		Name: name, TypeParams: typeParams, ExtendsType: extendsType, Implements: implements, Block: block,
	}
}

func (p *Parser) parseInterfaceDefinition(start source.Location, attrs ast.Attributes) ast.Directive {
	p.advance()
	name, _ := p.expectIdentifier()
	typeParams := p.parseTypeParams()

	var extend []ast.TypeExpression
	if p.is(token.Extends) {
		p.advance()
		extend = append(extend, p.ParseTypeExpression())
		for p.is(token.Comma) {
			p.advance()
			extend = append(extend, p.ParseTypeExpression())
		}
	}

	block := p.parseBlockIn(DirectiveContext{Kind: DirInterfaceBlock})
	return &ast.InterfaceDefinition{
		Base: ast.Base{Location: start.CombineWith(block.Location)}, Attributes: attrs,
		Name: name, TypeParams: typeParams, Extends: extend, Block: block,
	}
}

/*
parseEnumDefinition parses `enum Name { members… }`, including the
`[Flags]`-metadata bitset variant described in spec.md's SUPPLEMENTED
FEATURES (IsSet is set whenever one of attrs.Metadata is named "Flags").
*/
func (p *Parser) parseEnumDefinition(start source.Location, attrs ast.Attributes) ast.Directive {
	p.advance()
	name, _ := p.expectIdentifier()
	p.expect(token.LeftBrace)

	isSet := false
	for _, m := range attrs.Metadata {
		if m.Name == "Flags" {
			isSet = true
		}
	}

	var members []ast.EnumMember
	for !p.is(token.RightBrace) && !p.is(token.EOF) {
		memberStart := p.loc()
		memberName, _ := p.expectIdentifier()
		var init ast.Expression
		end := memberStart
		if p.is(token.Assign) {
			p.advance()
			init = p.ParseExpression(ExprContext{MinPrecedence: PrecAssignmentAndOther, AllowIn: true, AllowAssignment: true})
			end = init.Loc()
		}
		members = append(members, ast.EnumMember{Base: ast.Base{Location: memberStart.CombineWith(end)}, Name: memberName, Init: init})
		if p.is(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	end := p.expect(token.RightBrace)
	return &ast.EnumDefinition{Base: ast.Base{Location: start.CombineWith(end)}, Attributes: attrs, Name: name, IsSet: isSet, Members: members}
}

func (p *Parser) parseNamespaceDefinition(start source.Location, attrs ast.Attributes) ast.Directive {
	p.advance()
	name, _ := p.expectIdentifier()
	var init ast.Expression
	end := p.loc()
	if p.is(token.Assign) {
		p.advance()
		init = p.ParseExpression(DefaultExprContext())
		end = init.Loc()
	}
	semiEnd := p.expect(token.Semicolon)
	if semiEnd.LastOffset > end.LastOffset {
		end = semiEnd
	}
	return &ast.NamespaceDefinition{Base: ast.Base{Location: start.CombineWith(end)}, Attributes: attrs, Name: name, Init: init}
}

func (p *Parser) parseTypeDefinition(start source.Location, attrs ast.Attributes) ast.Directive {
	p.advance()
	name, _ := p.expectIdentifier()
	typeParams := p.parseTypeParams()
	p.expect(token.Assign)
	right := p.ParseTypeExpression()
	end := p.expect(token.Semicolon)
	return &ast.TypeDefinition{Base: ast.Base{Location: start.CombineWith(end)}, Attributes: attrs, Name: name, TypeParams: typeParams, Right: right}
}

/*
parseIncludeDirective parses `include "path";`, resolving the target file
through p.includeResolver. Any resolution failure, a circular include among
them, is reported as FailedToIncludeFile whose message carries the
resolver's error text (for a cycle, the CircularInclude message); a nil
resolver is reported as FailedToIncludeFile too.
*/
func (p *Parser) parseIncludeDirective(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()
	var path string
	if p.is(token.StringLiteral) {
		path = p.current.Val
		p.advance()
	} else {
		p.unit.AddDiagnostic(source.NewDiagnostic(p.loc(), source.ExpectedExpression))
	}
	end := p.expect(token.Semicolon)
	loc := start.CombineWith(end)

	dir := &ast.IncludeDirective{Base: ast.Base{Location: loc}, Path: path}
	if path == "" {
		return dir
	}
	if p.includeResolver == nil {
		p.unit.AddDiagnostic(source.NewDiagnostic(loc, source.FailedToIncludeFile, path, "no include resolver"))
		return dir
	}

	sub, err := p.includeResolver.Resolve(p.unit, path)
	if err != nil {
		p.unit.AddDiagnostic(source.NewDiagnostic(loc, source.FailedToIncludeFile, path, err.Error()))
		return dir
	}
	dir.Source = sub
	return dir
}

/*
parseConfigurationDirective parses the `configuration { if (expr) {…} else
if (expr) {…} else {…} }` block form (spec.md SUPPLEMENTED FEATURES): the
body is a single IfStatement chain whose branches are restricted to Block
consequents/alternatives.
*/
func (p *Parser) parseConfigurationDirective(start source.Location, ctx DirectiveContext) ast.Directive {
	p.advance()
	p.expect(token.LeftBrace)
	ifStmt := p.parseConfigurationIf(ctx)
	end := p.expect(token.RightBrace)
	return &ast.ConfigurationDirective{Base: ast.Base{Location: start.CombineWith(end)}, Body: ifStmt}
}

func (p *Parser) parseConfigurationIf(ctx DirectiveContext) *ast.IfStatement {
	start := p.loc()
	p.expect(token.If)
	p.expect(token.LeftParen)
	test := p.ParseExpression(DefaultExprContext())
	p.expect(token.RightParen)
	consequent := p.parseBlockIn(ctx)

	var alternative ast.Directive
	end := consequent.Location
	if p.is(token.Else) {
		p.advance()
		if p.is(token.If) {
			inner := p.parseConfigurationIf(ctx)
			alternative = inner
			end = inner.Location
		} else {
			block := p.parseBlockIn(ctx)
			alternative = block
			end = block.Location
		}
	}
	return &ast.IfStatement{Base: ast.Base{Location: start.CombineWith(end)}, Test: test, Consequent: consequent, Alternative: alternative}
}

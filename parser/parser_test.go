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
	"testing"

	"devt.de/krotik/as3parser/ast"
	"devt.de/krotik/as3parser/source"
)

func mustParseExpr(t *testing.T, src string) (ast.Expression, *source.CompilationUnit) {
	t.Helper()
	unit := source.NewCompilationUnit("test.as", src, nil)
	p := NewParser(unit, nil)
	expr := p.ParseExpression(DefaultExprContext())
	return expr, unit
}

func mustParseDirectives(t *testing.T, src string) ([]ast.Directive, *source.CompilationUnit) {
	t.Helper()
	unit := source.NewCompilationUnit("test.as", src, nil)
	p := NewParser(unit, nil)
	dirs := p.ParseDirectives(DirectiveContext{Kind: DirTopLevel})
	return dirs, unit
}

func TestExpressionPrecedence(t *testing.T) {
	expr, unit := mustParseExpr(t, "1 + 2 * 3")
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	bin, ok := expr.(*ast.Binary)
	if !ok || bin.Operator != ast.OpAdd {
		t.Fatalf("expected top-level '+', got %#v", expr)
	}
	rhs, ok := bin.Right.(*ast.Binary)
	if !ok || rhs.Operator != ast.OpMultiply {
		t.Fatalf("expected '*' to bind tighter than '+', got %#v", bin.Right)
	}
}

func TestExponentRightAssociative(t *testing.T) {
	expr, unit := mustParseExpr(t, "2 ** 3 ** 2")
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	bin := expr.(*ast.Binary)
	if bin.Operator != ast.OpExponent {
		t.Fatalf("expected '**' at top level")
	}
	if _, ok := bin.Right.(*ast.Binary); !ok {
		t.Fatalf("expected right-associative nesting on the right operand, got %#v", bin.Right)
	}
	if _, ok := bin.Left.(*ast.Binary); ok {
		t.Fatalf("exponent should not nest on the left for right-associativity")
	}
}

func TestNullCoalescingMixingDiagnosed(t *testing.T) {
	_, unit := mustParseExpr(t, "a && b ?? c")
	found := false
	for _, d := range unit.Diagnostics() {
		if d.Kind == source.IllegalNullishCoalescingLeftOperand {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected IllegalNullishCoalescingLeftOperand diagnostic, got %v", unit.Diagnostics())
	}
}

func TestOptionalChaining(t *testing.T) {
	expr, unit := mustParseExpr(t, "a?.b.c")
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	oc, ok := expr.(*ast.OptionalChaining)
	if !ok {
		t.Fatalf("expected OptionalChaining, got %#v", expr)
	}
	if _, ok := oc.Expression.(*ast.Member); !ok {
		t.Fatalf("expected trailing member access to fold into the chain, got %#v", oc.Expression)
	}
}

func TestOptionalChainingWithSecondQuestionDot(t *testing.T) {
	expr, unit := mustParseExpr(t, "a?.b?.(x)")
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	oc, ok := expr.(*ast.OptionalChaining)
	if !ok {
		t.Fatalf("expected a single top-level OptionalChaining, got %#v", expr)
	}
	call, ok := oc.Expression.(*ast.Call)
	if !ok {
		t.Fatalf("expected the second '?.' to extend the same chain as a Call, got %#v", oc.Expression)
	}
	member, ok := call.Callee.(*ast.Member)
	if !ok {
		t.Fatalf("expected the call's callee to be the 'b' member access, got %#v", call.Callee)
	}
	if _, ok := member.Base_.(*ast.OptionalChainingPlaceholder); !ok {
		t.Fatalf("expected exactly one OptionalChainingPlaceholder shared by both '?.' tokens, got %#v", member.Base_)
	}
	if _, ok := call.Callee.(*ast.OptionalChaining); ok {
		t.Fatalf("second '?.' must not create a nested OptionalChaining")
	}
}

func TestArrowFunctionFromParenList(t *testing.T) {
	expr, unit := mustParseExpr(t, "(a, b = 1, ...rest) => a + b")
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	fn, ok := expr.(*ast.ArrowFunction)
	if !ok {
		t.Fatalf("expected ArrowFunction, got %#v", expr)
	}
	if len(fn.Common.Params) != 3 {
		t.Fatalf("expected 3 parameters, got %d", len(fn.Common.Params))
	}
	if fn.Common.Params[0].Kind != ast.ParamRequired {
		t.Errorf("param 0 should be required")
	}
	if fn.Common.Params[1].Kind != ast.ParamOptional {
		t.Errorf("param 1 should be optional")
	}
	if fn.Common.Params[2].Kind != ast.ParamRest {
		t.Errorf("param 2 should be rest")
	}
}

func TestArrayDestructuringAssignmentTarget(t *testing.T) {
	expr, unit := mustParseExpr(t, "[a, , ...c] = src")
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	assign, ok := expr.(*ast.Assignment)
	if !ok {
		t.Fatalf("expected Assignment, got %#v", expr)
	}
	de, ok := assign.Left.(destructuringExpr)
	if !ok {
		t.Fatalf("expected reinterpreted destructuring on the left, got %#v", assign.Left)
	}
	if len(de.Destructuring.ArrayItems) != 3 {
		t.Fatalf("expected 3 array pattern items, got %d", len(de.Destructuring.ArrayItems))
	}
}

func TestTypeExpressionNullableGeneric(t *testing.T) {
	unit := source.NewCompilationUnit("test.as", "?Vector.<String>", nil)
	p := NewParser(unit, nil)
	typ := p.ParseTypeExpression()
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	nt, ok := typ.(*ast.NullableType)
	if !ok {
		t.Fatalf("expected NullableType, got %#v", typ)
	}
	if _, ok := nt.Base_.(*ast.TypeWithArguments); !ok {
		t.Fatalf("expected TypeWithArguments inner type, got %#v", nt.Base_)
	}
}

func TestXmlElementLiteral(t *testing.T) {
	expr, unit := mustParseExpr(t, `<a x="1">{b}<c/></a>`)
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	el, ok := expr.(*ast.XmlElement)
	if !ok {
		t.Fatalf("expected XmlElement, got %#v", expr)
	}
	if el.Name != "a" {
		t.Errorf("expected element name 'a', got %q", el.Name)
	}
	if len(el.Attributes) != 1 || el.Attributes[0].Name != "x" {
		t.Errorf("expected one attribute 'x', got %#v", el.Attributes)
	}
	if len(el.Content) != 2 {
		t.Fatalf("expected 2 content items ({b} and <c/>), got %d", len(el.Content))
	}
	if _, ok := el.Content[1].(*ast.XmlElement); !ok {
		t.Errorf("expected a nested self-closing element, got %#v", el.Content[1])
	}
}

func TestIfStatement(t *testing.T) {
	dirs, unit := mustParseDirectives(t, `if (a) { b(); } else if (c) { d(); } else { e(); }`)
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	if len(dirs) != 1 {
		t.Fatalf("expected one directive, got %d", len(dirs))
	}
	ifStmt, ok := dirs[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("expected IfStatement, got %#v", dirs[0])
	}
	if _, ok := ifStmt.Alternative.(*ast.IfStatement); !ok {
		t.Fatalf("expected chained 'else if' to nest as IfStatement, got %#v", ifStmt.Alternative)
	}
}

func TestForInStatement(t *testing.T) {
	dirs, unit := mustParseDirectives(t, `for (var k in obj) { trace(k); }`)
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	forIn, ok := dirs[0].(*ast.ForInStatement)
	if !ok {
		t.Fatalf("expected ForInStatement, got %#v", dirs[0])
	}
	if forIn.Binding.VarDefinition == nil {
		t.Fatalf("expected a var binding")
	}
}

func TestForCStyleStatement(t *testing.T) {
	dirs, unit := mustParseDirectives(t, `for (var i = 0; i < 10; i++) { trace(i); }`)
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	forStmt, ok := dirs[0].(*ast.ForStatement)
	if !ok {
		t.Fatalf("expected ForStatement, got %#v", dirs[0])
	}
	if forStmt.Init == nil || forStmt.Init.VarDefinition == nil {
		t.Fatalf("expected a var-definition initializer")
	}
	if forStmt.Test == nil || forStmt.Update == nil {
		t.Fatalf("expected a test and an update expression")
	}
}

func TestSwitchTypeStatement(t *testing.T) {
	dirs, unit := mustParseDirectives(t, `switch type (v) {
		case (n: Number) { trace(n); }
		default { trace("other"); }
	}`)
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	sw, ok := dirs[0].(*ast.SwitchTypeStatement)
	if !ok {
		t.Fatalf("expected SwitchTypeStatement, got %#v", dirs[0])
	}
	if len(sw.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(sw.Cases))
	}
	if sw.Cases[0].Pattern == nil || sw.Cases[0].Pattern.BindingName != "n" {
		t.Fatalf("expected first case to bind 'n', got %#v", sw.Cases[0].Pattern)
	}
	if sw.Cases[1].Pattern != nil {
		t.Fatalf("expected default case to have a nil pattern")
	}
}

func TestTryCatchFinally(t *testing.T) {
	dirs, unit := mustParseDirectives(t, `try { risky(); } catch (e) { handle(e); } finally { cleanup(); }`)
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	tryStmt, ok := dirs[0].(*ast.TryStatement)
	if !ok {
		t.Fatalf("expected TryStatement, got %#v", dirs[0])
	}
	if len(tryStmt.Catches) != 1 || tryStmt.Finally == nil {
		t.Fatalf("expected one catch clause and a finally block")
	}
}

func TestBreakOutsideLoopDiagnosed(t *testing.T) {
	_, unit := mustParseDirectives(t, `break;`)
	found := false
	for _, d := range unit.Diagnostics() {
		if d.Kind == source.IllegalBreak {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected IllegalBreak diagnostic, got %v", unit.Diagnostics())
	}
}

func TestClassDefinition(t *testing.T) {
	dirs, unit := mustParseDirectives(t, `
		class Box<T> extends Base implements Comparable {
			public var value: T;
			public function Box(v: T) { value = v; }
			public function get(): T { return value; }
		}
	`)
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	if len(dirs) != 1 {
		t.Fatalf("expected 1 directive, got %d", len(dirs))
	}
	cls, ok := dirs[0].(*ast.ClassDefinition)
	if !ok {
		t.Fatalf("expected ClassDefinition, got %#v", dirs[0])
	}
	if cls.Name != "Box" || len(cls.TypeParams) != 1 || cls.TypeParams[0] != "T" {
		t.Fatalf("unexpected class header: %+v", cls)
	}
	if cls.ExtendsType == nil || len(cls.Implements) != 1 {
		t.Fatalf("expected an extends clause and one implemented interface")
	}
	if len(cls.Block.Directives) != 3 {
		t.Fatalf("expected 3 members, got %d", len(cls.Block.Directives))
	}
	if _, ok := cls.Block.Directives[1].(*ast.ConstructorDefinition); !ok {
		t.Fatalf("expected the name-matching function to parse as a ConstructorDefinition, got %#v", cls.Block.Directives[1])
	}
}

func TestEnumDefinitionWithFlags(t *testing.T) {
	dirs, unit := mustParseDirectives(t, `
		[Flags]
		enum Permission {
			Read = 1,
			Write = 2,
			Execute = 4
		}
	`)
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	en, ok := dirs[0].(*ast.EnumDefinition)
	if !ok {
		t.Fatalf("expected EnumDefinition, got %#v", dirs[0])
	}
	if !en.IsSet {
		t.Fatalf("expected IsSet to be true for a [Flags] enum")
	}
	if len(en.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(en.Members))
	}
}

func TestAsDocAttachment(t *testing.T) {
	dirs, unit := mustParseDirectives(t, `
		/**
		 * Adds two numbers.
		 * @param a the first operand
		 * @return the sum
		 */
		public function add(a: Number, b: Number): Number { return a + b; }
	`)
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	fn, ok := dirs[0].(*ast.FunctionDefinition)
	if !ok {
		t.Fatalf("expected FunctionDefinition, got %#v", dirs[0])
	}
	if fn.Attributes.Doc == nil {
		t.Fatalf("expected an attached ASDoc comment")
	}
	if len(fn.Attributes.Doc.Tags) != 2 {
		t.Fatalf("expected 2 ASDoc tags, got %d: %+v", len(fn.Attributes.Doc.Tags), fn.Attributes.Doc.Tags)
	}
}

func TestLocationNestingInvariant(t *testing.T) {
	expr, unit := mustParseExpr(t, "a + b * c")
	if unit.Invalidated() {
		t.Fatalf("unexpected diagnostics: %v", unit.Diagnostics())
	}
	bin := expr.(*ast.Binary)
	if !bin.Location.Contains(bin.Left.Loc()) || !bin.Location.Contains(bin.Right.Loc()) {
		t.Fatalf("parent location must contain both operand locations")
	}
}

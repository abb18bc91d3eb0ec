/*
 * as3parser
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

/*
Block is `{ directives… }`.
*/
type Block struct {
	Base
	Directives []Directive
}

func (*Block) directiveNode() {}

/*
ExpressionStatement is a bare expression used as a statement, followed by a
semicolon.
*/
type ExpressionStatement struct {
	Base
	Expression Expression
}

func (*ExpressionStatement) directiveNode() {}

/*
EmptyStatement is a lone `;`.
*/
type EmptyStatement struct{ Base }

func (*EmptyStatement) directiveNode() {}

/*
InvalidatedDirective is the directive-level error sentinel.
*/
type InvalidatedDirective struct{ Base }

func (*InvalidatedDirective) directiveNode() {}

/*
SuperStatement is a bare `super(arguments…)` call used as a statement. The
parser builds it only for directives parsed under DirConstructorBlock;
class constructor bodies are parsed as ordinary blocks, where such a call
is an ExpressionStatement.
*/
type SuperStatement struct {
	Base
	Arguments []Expression
}

func (*SuperStatement) directiveNode() {}

/*
IfStatement is `if (test) consequent else? alternative`. Also used (with
Consequent/Alternative restricted to Block) to represent the desugared
`configuration { … }` grammar (spec.md §4.4 "Configuration blocks").
*/
type IfStatement struct {
	Base
	Test        Expression
	Consequent  Directive
	Alternative Directive // nil if there is no `else`
}

func (*IfStatement) directiveNode() {}

/*
SwitchCase is one `case (expr) { … }` or `default { … }` clause of a
SwitchStatement.
*/
type SwitchCase struct {
	Base
	Test       Expression // nil for `default`
	Directives []Directive
}

/*
SwitchStatement is `switch (discriminant) { cases… }`.
*/
type SwitchStatement struct {
	Base
	Discriminant Expression
	Cases        []SwitchCase
}

func (*SwitchStatement) directiveNode() {}

/*
SwitchTypeCase is one `case (pattern: T) { … }` or `default { … }` clause
of a SwitchTypeStatement.
*/
type SwitchTypeCase struct {
	Base
	Pattern    *Destructuring // nil for `default`
	Directives []Directive
}

/*
SwitchTypeStatement is `switch type (discriminant) { cases… }`, dispatching
on runtime type using destructuring patterns (spec.md GLOSSARY).
*/
type SwitchTypeStatement struct {
	Base
	Discriminant Expression
	Cases        []SwitchTypeCase
}

func (*SwitchTypeStatement) directiveNode() {}

/*
DoWhileStatement is `do body while (test);`.
*/
type DoWhileStatement struct {
	Base
	Body Directive
	Test Expression
}

func (*DoWhileStatement) directiveNode() {}

/*
WhileStatement is `while (test) body`.
*/
type WhileStatement struct {
	Base
	Test Expression
	Body Directive
}

func (*WhileStatement) directiveNode() {}

/*
ForInit is a for-statement initializer: at most one of VarDefinition or
Expression is set; both nil means no initializer.
*/
type ForInit struct {
	VarDefinition *VariableDefinition
	Expression    Expression
}

/*
ForStatement is the C-style `for (init; test; update) body`.
*/
type ForStatement struct {
	Base
	Init   *ForInit
	Test   Expression
	Update Expression
	Body   Directive
}

func (*ForStatement) directiveNode() {}

/*
ForInBinding is the left-hand side of a `for..in`/`for each..in` statement:
at most one of VarDefinition or Expression is set.
*/
type ForInBinding struct {
	VarDefinition *VariableDefinition // a single-binding `var`/`const` form
	Expression    Expression          // an already-declared assignment target
}

/*
ForInStatement is `for (binding in expr) body`.
*/
type ForInStatement struct {
	Base
	Binding ForInBinding
	Right   Expression
	Body    Directive
}

func (*ForInStatement) directiveNode() {}

/*
ForEachStatement is `for each (binding in expr) body`.
*/
type ForEachStatement struct {
	Base
	Binding ForInBinding
	Right   Expression
	Body    Directive
}

func (*ForEachStatement) directiveNode() {}

/*
WithStatement is `with (object) body`.
*/
type WithStatement struct {
	Base
	Object Expression
	Body   Directive
}

func (*WithStatement) directiveNode() {}

/*
CatchClause is one `catch (param) { … }` clause of a TryStatement.
*/
type CatchClause struct {
	Base
	Parameter *Destructuring
	Block     *Block
}

/*
TryStatement is `try { … } catch (e) { … } finally { … }`. At least one of
Catches or Finally is present.
*/
type TryStatement struct {
	Base
	Block   *Block
	Catches []CatchClause
	Finally *Block
}

func (*TryStatement) directiveNode() {}

/*
ThrowStatement is `throw expr;`.
*/
type ThrowStatement struct {
	Base
	Argument Expression
}

func (*ThrowStatement) directiveNode() {}

/*
ReturnStatement is `return expr?;`.
*/
type ReturnStatement struct {
	Base
	Argument Expression // nil for a bare `return;`
}

func (*ReturnStatement) directiveNode() {}

/*
BreakStatement is `break label?;`.
*/
type BreakStatement struct {
	Base
	Label *string
}

func (*BreakStatement) directiveNode() {}

/*
ContinueStatement is `continue label?;`.
*/
type ContinueStatement struct {
	Base
	Label *string
}

func (*ContinueStatement) directiveNode() {}

/*
LabeledStatement is `label: statement`.
*/
type LabeledStatement struct {
	Base
	Label     string
	Statement Directive
}

func (*LabeledStatement) directiveNode() {}

/*
DefaultXmlNamespaceDirective is `default xml namespace = expr;`, parsed and
preserved verbatim for a downstream consumer (spec.md §9).
*/
type DefaultXmlNamespaceDirective struct {
	Base
	Expression Expression
}

func (*DefaultXmlNamespaceDirective) directiveNode() {}

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

import "devt.de/krotik/as3parser/source"

/*
VariableBinding is one `pattern : T = init` entry of a VariableDefinition.
*/
type VariableBinding struct {
	Base
	Pattern *Destructuring
	Init    Expression // nil if this binding has no initializer
}

/*
VariableDefinition is `var|const bindings…;`, standing alone as a directive
or embedded in a ForStatement/ForInStatement/ForEachStatement initializer.
*/
type VariableDefinition struct {
	Base
	Attributes Attributes
	ReadOnly   bool // true for `const`, false for `var`
	Bindings   []VariableBinding
}

func (*VariableDefinition) directiveNode() {}

/*
FunctionDefinition is `function name(params) : T { … }`, optionally a
`get`/`set` accessor or a `native`/interface-signature form with no body.
*/
type FunctionDefinition struct {
	Base
	Attributes Attributes
	Name       string
	Getter     bool
	Setter     bool
	Common     *FunctionCommon // Common.Body is nil for a signature-only definition
}

func (*FunctionDefinition) directiveNode() {}

/*
ConstructorDefinition is a class's `function ClassName(params) { … }`,
distinguished from an ordinary method by spec.md §4.4's name-matches-class
rule. Its body is parsed like any function body: a `super(...)` call in it
is an ordinary expression statement inside Common.Body, not a separate
field and not a SuperStatement.
*/
type ConstructorDefinition struct {
	Base
	Attributes Attributes
	Name       string
	Common     *FunctionCommon
}

func (*ConstructorDefinition) directiveNode() {}

/*
TypeDefinition is `type Name = T;`, a type alias.
*/
type TypeDefinition struct {
	Base
	Attributes Attributes
	Name       string
	TypeParams []string
	Right      TypeExpression
}

func (*TypeDefinition) directiveNode() {}

/*
NamespaceDefinition is `namespace Name = expr?;`.
*/
type NamespaceDefinition struct {
	Base
	Attributes Attributes
	Name       string
	Init       Expression // nil if the namespace has no explicit value
}

func (*NamespaceDefinition) directiveNode() {}

/*
EnumMember is one entry of an EnumDefinition body: `Name` or `Name = init`.
*/
type EnumMember struct {
	Base
	Name string
	Init Expression // nil unless this member has an explicit initializer
}

/*
EnumDefinition is `enum Name { members… }`. IsSet marks the `[Flags]`-style
bitset variant described in spec.md's SUPPLEMENTED FEATURES.
*/
type EnumDefinition struct {
	Base
	Attributes Attributes
	Name       string
	IsSet      bool
	Members    []EnumMember
}

func (*EnumDefinition) directiveNode() {}

/*
ClassDefinition is `class Name<T> extends Base implements I1, I2 { … }`.
*/
type ClassDefinition struct {
	Base
	Attributes  Attributes
	Name        string
	TypeParams  []string
	ExtendsType TypeExpression   // nil if there is no `extends` clause
	Implements  []TypeExpression // may be empty
	Block       *Block
}

func (*ClassDefinition) directiveNode() {}

/*
InterfaceDefinition is `interface Name<T> extends I1, I2 { … }`. Its block
is parsed as ordinary directives; the parser does not check that it holds
only bodiless FunctionDefinition signatures.
*/
type InterfaceDefinition struct {
	Base
	Attributes Attributes
	Name       string
	TypeParams []string
	Extends    []TypeExpression
	Block      *Block
}

func (*InterfaceDefinition) directiveNode() {}

/*
PackageDefinition is `package qualifiedName? { directives… }`. Name is empty
for an unnamed package.
*/
type PackageDefinition struct {
	Base
	Name  string
	Block *Block
}

func (*PackageDefinition) directiveNode() {}

/*
ImportDirective is `import qualifiedName;`, `import qualifiedName.*;`, or
the aliased form `import alias = qualifiedName;`.
*/
type ImportDirective struct {
	Base
	Alias    string // empty unless this is the aliased form
	Name     []string
	Wildcard bool
}

func (*ImportDirective) directiveNode() {}

/*
UseNamespaceDirective is `use namespace expr;`.
*/
type UseNamespaceDirective struct {
	Base
	Expression Expression
}

func (*UseNamespaceDirective) directiveNode() {}

/*
IncludeDirective is `include "path";`. Source is populated with the
resolved sub-unit once the include resolver runs; it is nil if resolution
failed (a diagnostic is raised on the enclosing unit in that case).
*/
type IncludeDirective struct {
	Base
	Path   string
	Source *source.CompilationUnit
}

func (*IncludeDirective) directiveNode() {}

/*
ConfigurationDirective is `configuration { if (expr) {…} else if (expr) {…}
else {…} }`: a chain of IfStatement nodes whose branches are blocks. Each
test is parsed as an ordinary expression; the parser does not check that it
is limited to configuration-constant forms.
*/
type ConfigurationDirective struct {
	Base
	Body *IfStatement
}

func (*ConfigurationDirective) directiveNode() {}

/*
NormalConfigurationDirective is a directive gated by a qualified identifier
`NS::NAME` followed by a block or by another directive (a single directive
is wrapped in Block). Name holds NAME; the NS qualifier is not kept.
*/
type NormalConfigurationDirective struct {
	Base
	Name  string
	Block *Block
}

func (*NormalConfigurationDirective) directiveNode() {}

/*
Program is the root node of a parsed compilation unit: a flat sequence of
top-level directives (ordinarily a single PackageDefinition plus any
directives following it, per spec.md §3 "Program").
*/
type Program struct {
	Base
	Directives []Directive
}

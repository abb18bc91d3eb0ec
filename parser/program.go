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
)

/*
ParseProgram parses unit's full top-level directive sequence into an
ast.Program, the single public entry point a host compiler calls per
input file (spec.md §6 "parse_program"). Any `include` directive
encountered is recursively parsed over its resolved sub-unit, but the
directives parsed from it are not added to the returned tree; their
diagnostics are recorded on the sub-unit (IncludeDirective.Source), not on
unit.
*/
func ParseProgram(unit *source.CompilationUnit, resolver IncludeResolver) *ast.Program {
	p := NewParser(unit, resolver)
	start := p.loc()
	dirs := p.ParseDirectives(DirectiveContext{Kind: DirTopLevel})
	end := start
	if n := len(dirs); n > 0 {
		end = dirs[n-1].Loc()
	}

	p.parseIncludedUnits(dirs, resolver)

	return &ast.Program{Base: ast.Base{Location: start.CombineWith(end)}, Directives: dirs}
}

/*
parseIncludedUnits walks a freshly parsed directive tree for
IncludeDirective nodes whose Source was resolved but not yet parsed, and
parses each one in turn, recursing into its own includes.
*/
func (p *Parser) parseIncludedUnits(dirs []ast.Directive, resolver IncludeResolver) {
	for _, d := range dirs {
		walkIncludeDirectives(d, func(inc *ast.IncludeDirective) {
			if inc.Source == nil {
				return
			}
			sub := NewParser(inc.Source, resolver)
			subDirs := sub.ParseDirectives(DirectiveContext{Kind: DirTopLevel})
			sub.parseIncludedUnits(subDirs, resolver)
		})
	}
}

/*
walkIncludeDirectives calls visit for every IncludeDirective reachable from
d, descending into the block-bearing directive kinds that can contain one
(spec.md §4.4: packages, classes, interfaces, and nested blocks).
*/
func walkIncludeDirectives(d ast.Directive, visit func(*ast.IncludeDirective)) {
	switch v := d.(type) {
	case *ast.IncludeDirective:
		visit(v)
	case *ast.Block:
		for _, inner := range v.Directives {
			walkIncludeDirectives(inner, visit)
		}
	case *ast.PackageDefinition:
		walkIncludeDirectives(v.Block, visit)
	case *ast.ClassDefinition:
		walkIncludeDirectives(v.Block, visit)
	case *ast.InterfaceDefinition:
		walkIncludeDirectives(v.Block, visit)
	case *ast.NormalConfigurationDirective:
		walkIncludeDirectives(v.Block, visit)
	case *ast.IfStatement:
		if v.Consequent != nil {
			walkIncludeDirectives(v.Consequent, visit)
		}
		if v.Alternative != nil {
			walkIncludeDirectives(v.Alternative, visit)
		}
	case *ast.ConfigurationDirective:
		walkIncludeDirectives(v.Body, visit)
	}
}

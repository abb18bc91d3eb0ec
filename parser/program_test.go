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

func TestParseProgramParsesIncludedUnits(t *testing.T) {
	resolver := &InMemoryIncludeResolver{Files: map[string]string{
		"b.as": "break;",
	}}
	unit := source.NewCompilationUnit("a.as", `include "b.as";`, nil)

	prog := ParseProgram(unit, resolver)
	if unit.Invalidated() {
		t.Fatalf("the including unit itself should have no diagnostics: %v", unit.Diagnostics())
	}
	if len(prog.Directives) != 1 {
		t.Fatalf("expected 1 top-level directive, got %d", len(prog.Directives))
	}
	inc, ok := prog.Directives[0].(*ast.IncludeDirective)
	if !ok {
		t.Fatalf("expected IncludeDirective, got %#v", prog.Directives[0])
	}
	if inc.Source == nil {
		t.Fatalf("expected the include to resolve to a sub-unit")
	}
	if !inc.Source.Invalidated() {
		t.Fatalf("expected the included unit's illegal 'break;' to have been parsed and diagnosed")
	}
}

func TestIncludeCircularityDiagnosed(t *testing.T) {
	resolver := &InMemoryIncludeResolver{Files: map[string]string{
		"a.as": `include "a.as";`,
	}}
	unit := source.NewCompilationUnit("a.as", `include "a.as";`, nil)

	ParseProgram(unit, resolver)
	found := false
	for _, d := range unit.Diagnostics() {
		if d.Kind == source.FailedToIncludeFile {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a FailedToIncludeFile diagnostic for the self-include, got %v", unit.Diagnostics())
	}
}

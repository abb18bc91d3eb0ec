/*
 * as3parser
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package source

import "testing"

func TestLocationCombineAndContains(t *testing.T) {
	unit := NewCompilationUnit("test.as", "abcdef", nil)
	a := NewLocation(unit, 0, 2)
	b := NewLocation(unit, 2, 4)
	c := Combine(a, b)
	if c.FirstOffset != 0 || c.LastOffset != 4 {
		t.Fatalf("expected combined location [0,4), got [%d,%d)", c.FirstOffset, c.LastOffset)
	}
	if !c.Contains(a) || !c.Contains(b) {
		t.Fatalf("combined location must contain both of its inputs")
	}
	if a.Contains(b) {
		t.Fatalf("a disjoint-but-adjacent location must not contain the other")
	}
	if c.Text() != "abcd" {
		t.Fatalf("expected combined text 'abcd', got %q", c.Text())
	}
}

func TestDiagnosticInvalidatesUnitOnError(t *testing.T) {
	unit := NewCompilationUnit("test.as", "", nil)
	unit.AddDiagnostic(NewDiagnostic(NewLocation(unit, 0, 0), UnrecognizedAsdocTag, "foo"))
	if unit.Invalidated() {
		t.Fatalf("a warning-only diagnostic must not invalidate the unit")
	}
	if unit.WarningCount() != 1 {
		t.Fatalf("expected warning count 1, got %d", unit.WarningCount())
	}

	unit.AddDiagnostic(NewDiagnostic(NewLocation(unit, 0, 0), UnterminatedComment))
	if !unit.Invalidated() {
		t.Fatalf("an error diagnostic must invalidate the unit")
	}
	if unit.ErrorCount() != 1 {
		t.Fatalf("expected error count 1, got %d", unit.ErrorCount())
	}
}

func TestIncludeCycleDetection(t *testing.T) {
	root := NewCompilationUnit("/a.as", "", nil)
	mid := NewCompilationUnit("/b.as", "", nil)
	root.AddIncluded(mid)

	if mid.IncludedFrom() != root {
		t.Fatalf("expected mid's IncludedFrom to be root")
	}
	if !mid.IsIncludedFrom("/a.as") {
		t.Fatalf("expected mid to report a cycle back to its own includer")
	}
	if mid.IsIncludedFrom("/c.as") {
		t.Fatalf("unrelated path must not be reported as a cycle")
	}
}

func TestSortedDiagnosticsOrdersByOffsetThenAppendOrder(t *testing.T) {
	unit := NewCompilationUnit("test.as", "0123456789", nil)
	unit.AddDiagnostic(NewDiagnostic(NewLocation(unit, 5, 5), UnterminatedComment))
	unit.AddDiagnostic(NewDiagnostic(NewLocation(unit, 1, 1), UnterminatedComment))
	unit.AddDiagnostic(NewDiagnostic(NewLocation(unit, 1, 1), UnrecognizedAsdocTag))

	sorted := unit.SortedDiagnostics()
	if len(sorted) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(sorted))
	}
	if sorted[0].Location.FirstOffset != 1 || sorted[1].Location.FirstOffset != 1 || sorted[2].Location.FirstOffset != 5 {
		t.Fatalf("expected offsets sorted [1,1,5], got %v", []int{sorted[0].Location.FirstOffset, sorted[1].Location.FirstOffset, sorted[2].Location.FirstOffset})
	}
	if sorted[0].Kind != UnterminatedComment || sorted[1].Kind != UnrecognizedAsdocTag {
		t.Fatalf("expected same-offset diagnostics to keep append order")
	}
}

func TestLineNumberAtOffset(t *testing.T) {
	unit := NewCompilationUnit("test.as", "aa\nbb\ncc", nil)
	if unit.LineNumberAtOffset(0) != 1 {
		t.Errorf("expected line 1 at offset 0")
	}
	if unit.LineNumberAtOffset(3) != 2 {
		t.Errorf("expected line 2 at offset 3")
	}
	if unit.LineNumberAtOffset(6) != 3 {
		t.Errorf("expected line 3 at offset 6")
	}
}

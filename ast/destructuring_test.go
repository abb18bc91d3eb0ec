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

import "testing"

func TestDestructuringKind(t *testing.T) {
	binding := &Destructuring{BindingName: "x"}
	if binding.Kind() != DestructureBinding {
		t.Errorf("expected DestructureBinding for a plain name, got %v", binding.Kind())
	}

	record := &Destructuring{RecordFields: []RecordPatternField{{Key: "x"}}}
	if record.Kind() != DestructureRecord {
		t.Errorf("expected DestructureRecord, got %v", record.Kind())
	}

	array := &Destructuring{ArrayItems: []ArrayPatternItem{{}}}
	if array.Kind() != DestructureArray {
		t.Errorf("expected DestructureArray, got %v", array.Kind())
	}
}

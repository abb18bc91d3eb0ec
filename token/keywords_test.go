/*
 * as3parser
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package token

import "testing"

func TestReservedWordsAreDisjointFromContextKeywords(t *testing.T) {
	for name := range ReservedWords {
		if _, ok := ContextKeywords[name]; ok {
			t.Errorf("%q is listed as both a reserved word and a context keyword", name)
		}
	}
}

func TestIsContextKeywordNamed(t *testing.T) {
	if !IsContextKeywordNamed(Identifier, "namespace", "namespace") {
		t.Errorf("expected 'namespace' identifier to match the context keyword")
	}
	if IsContextKeywordNamed(Identifier, "namespace", "type") {
		t.Errorf("'namespace' must not match a different context keyword name")
	}
	if IsContextKeywordNamed(Class, "namespace", "namespace") {
		t.Errorf("a non-Identifier kind must never match, even with the right spelling")
	}
	if IsContextKeywordNamed(Identifier, "implements", "implements") {
		t.Errorf("'implements' is a reserved word, not a context keyword, and must not match")
	}
}

func TestReservedNamespacesSubsetOfReservedWords(t *testing.T) {
	for kind := range ReservedNamespaces {
		found := false
		for _, k := range ReservedWords {
			if k == kind {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("ReservedNamespaces kind %v has no corresponding ReservedWords entry", kind)
		}
	}
}

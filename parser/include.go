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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"devt.de/krotik/as3parser/source"
)

/*
maxReportedIncludeChain caps how many frames of the including chain are
rendered into a CircularInclude diagnostic's message (spec.md §9 "Cyclic
graphs"); the path being resolved is appended after them, so a message
shows at most one frame more. source.CompilationUnit.IncludeChain enforces
the cap via a
datautil.RingBuffer rather than truncating a plain slice.
*/
const maxReportedIncludeChain = 8

func includeChainString(from *source.CompilationUnit, resolved string) string {
	chain := append(from.IncludeChain(maxReportedIncludeChain), resolved)
	return strings.Join(chain, " -> ")
}

/*
IncludeResolver resolves an `include "path";` directive's target relative to
the including CompilationUnit, returning a fresh, not-yet-parsed
CompilationUnit linked as that unit's child (spec.md §4.4 "Include
directives"). Resolve itself does not parse the returned unit; the caller
(parseIncludeDirective) only records it on the IncludeDirective node - a
full implementation re-enters ParseDirectives over the nested unit, which
program.go's ParseProgram does for the top-level entry point.
*/
type IncludeResolver interface {
	Resolve(from *source.CompilationUnit, path string) (*source.CompilationUnit, error)
}

/*
FileIncludeResolver resolves include paths relative to the including file's
directory, reading from disk. Grounded on the teacher's config.ReadConfigFile
pattern (config/config.go) of resolving a path relative to a base directory
before reading it.
*/
type FileIncludeResolver struct {
	Options *source.CompilerOptions
}

func (r *FileIncludeResolver) Resolve(from *source.CompilationUnit, path string) (*source.CompilationUnit, error) {
	if from.FilePath() == "" {
		return nil, fmt.Errorf("%s", source.NewDiagnostic(source.Location{}, source.ParentSourceIsNotAFile).String())
	}

	resolved := path
	if !filepath.IsAbs(path) {
		resolved = filepath.Join(filepath.Dir(from.FilePath()), path)
	}

	if from.IsIncludedFrom(resolved) {
		return nil, fmt.Errorf("%s", source.NewDiagnostic(source.Location{}, source.CircularInclude, resolved, includeChainString(from, resolved)).String())
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, err
	}

	sub := source.NewCompilationUnit(resolved, string(data), r.Options)
	from.AddIncluded(sub)
	return sub, nil
}

/*
InMemoryIncludeResolver resolves include paths against a fixed map of
path -> source text, for tests and for embedding the parser in a host that
does not read from a filesystem.
*/
type InMemoryIncludeResolver struct {
	Files   map[string]string
	Options *source.CompilerOptions
}

func (r *InMemoryIncludeResolver) Resolve(from *source.CompilationUnit, path string) (*source.CompilationUnit, error) {
	text, ok := r.Files[path]
	if !ok {
		return nil, fmt.Errorf("no such included file: %s", path)
	}

	if from.IsIncludedFrom(path) {
		return nil, fmt.Errorf("%s", source.NewDiagnostic(source.Location{}, source.CircularInclude, path, includeChainString(from, path)).String())
	}

	sub := source.NewCompilationUnit(path, text, r.Options)
	from.AddIncluded(sub)
	return sub, nil
}

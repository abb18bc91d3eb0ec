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

import (
	"devt.de/krotik/common/datautil"
	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/common/sortutil"
)

/*
CompilerOptions is the minimal, parser-relevant slice of compiler
configuration a CompilationUnit needs. Everything beyond it (target
platform, optimization flags, ...) is an external collaborator per
spec.md §1 and is intentionally not modeled here.
*/
type CompilerOptions struct {

	/*
		ByteOrderMark is carried on the options only; the tokenizer does not
		read it and skips a U+FEFF byte order mark as whitespace either way.
	*/
	ByteOrderMark bool
}

/*
DefaultCompilerOptions mirrors the teacher's config.DefaultConfig pattern: a
ready-to-use zero-configuration value.
*/
var DefaultCompilerOptions = &CompilerOptions{ByteOrderMark: true}

/*
CompilationUnit owns one input file's text, comments, diagnostics and nested
includes. One CompilationUnit is constructed per input file and shared by
reference between the tokenizer, the parser, and every Location it hands out.
*/
type CompilationUnit struct {
	filePath string
	text     string
	options  *CompilerOptions

	lineOffsets []int // lineOffsets[n] = byte offset of line n+1; built lazily

	comments    []*Comment
	diagnostics []Diagnostic

	alreadyTokenized bool
	invalidated      bool
	errorCount       uint32
	warningCount     uint32

	includedFrom *CompilationUnit
	included     []*CompilationUnit
}

/*
NewCompilationUnit constructs a CompilationUnit in unparsed state. filePath
may be empty for text that is not backed by a file (e.g. parse_expression
called directly on a string).
*/
func NewCompilationUnit(filePath string, text string, options *CompilerOptions) *CompilationUnit {
	if options == nil {
		options = DefaultCompilerOptions
	}
	return &CompilationUnit{
		filePath: filePath,
		text:     text,
		options:  options,
	}
}

/*
FilePath returns the file path of this unit, or "" if it is not backed by a
file.
*/
func (u *CompilationUnit) FilePath() string {
	return u.filePath
}

/*
Text returns the full source text of this unit.
*/
func (u *CompilationUnit) Text() string {
	return u.text
}

/*
Options returns the compiler options this unit was constructed with.
*/
func (u *CompilationUnit) Options() *CompilerOptions {
	return u.options
}

/*
MarkTokenized asserts that this is the first time a Tokenizer has been
constructed for this unit; a CompilationUnit may be tokenized at most once
(teacher: "already_tokenized" guard in the original tokenizer.rs).
*/
func (u *CompilationUnit) MarkTokenized() {
	errorutil.AssertTrue(!u.alreadyTokenized, "a CompilationUnit must be tokenized at most once")
	u.alreadyTokenized = true
}

/*
AddComment appends a comment in source order.
*/
func (u *CompilationUnit) AddComment(c *Comment) {
	u.comments = append(u.comments, c)
}

/*
Comments returns every comment collected during tokenization, in source
order.
*/
func (u *CompilationUnit) Comments() []*Comment {
	return u.comments
}

/*
LastComment returns the most recently appended comment, or nil if none has
been collected yet. Used by the ASDoc layer, which only ever consumes the
single most recent comment.
*/
func (u *CompilationUnit) LastComment() *Comment {
	if len(u.comments) == 0 {
		return nil
	}
	return u.comments[len(u.comments)-1]
}

/*
AddDiagnostic appends a diagnostic and, if it is an error (not a warning),
sets Invalidated.
*/
func (u *CompilationUnit) AddDiagnostic(d Diagnostic) {
	if d.IsWarning() {
		u.warningCount++
	} else {
		u.errorCount++
		u.invalidated = true
	}
	u.diagnostics = append(u.diagnostics, d)
}

/*
Diagnostics returns every diagnostic collected so far, in append order.
*/
func (u *CompilationUnit) Diagnostics() []Diagnostic {
	return u.diagnostics
}

/*
SortedDiagnostics returns a location-sorted copy of Diagnostics. The sort key
packs the byte offset into the high bits and the original append index into
the low bits so that diagnostics sharing an offset keep their append order;
sortutil.UInt64s then sorts the packed keys exactly as engine/rule.go and
engine/taskqueue.go sort their own uint64 key slices in the teacher.
*/
func (u *CompilationUnit) SortedDiagnostics() []Diagnostic {
	byKey := make(map[uint64]Diagnostic, len(u.diagnostics))
	keys := make([]uint64, len(u.diagnostics))
	for i, d := range u.diagnostics {
		key := (uint64(uint32(d.Location.FirstOffset)) << 32) | uint64(uint32(i))
		keys[i] = key
		byKey[key] = d
	}
	sortutil.UInt64s(keys)
	cp := make([]Diagnostic, len(keys))
	for i, k := range keys {
		cp[i] = byKey[k]
	}
	return cp
}

/*
Invalidated reports whether at least one non-warning diagnostic has been
produced for this unit. This is the single authoritative success flag per
spec.md §7.
*/
func (u *CompilationUnit) Invalidated() bool {
	return u.invalidated
}

/*
ErrorCount returns the number of error-severity diagnostics produced so far.
*/
func (u *CompilationUnit) ErrorCount() uint32 {
	return u.errorCount
}

/*
WarningCount returns the number of warning-severity diagnostics produced so
far.
*/
func (u *CompilationUnit) WarningCount() uint32 {
	return u.warningCount
}

/*
IncludedFrom returns the including unit, or nil if this unit is the
top-level entry file. This is a non-owning back-link: an included unit must
never keep its includer alive (spec.md §9 "Cyclic graphs").
*/
func (u *CompilationUnit) IncludedFrom() *CompilationUnit {
	return u.includedFrom
}

/*
AddIncluded links a nested CompilationUnit as included by this one and
records the non-owning back-link on the nested unit.
*/
func (u *CompilationUnit) AddIncluded(nested *CompilationUnit) {
	nested.includedFrom = u
	u.included = append(u.included, nested)
}

/*
Included returns every CompilationUnit directly included by this one.
*/
func (u *CompilationUnit) Included() []*CompilationUnit {
	return u.included
}

/*
IsIncludedFrom walks the includedFrom chain and reports whether candidatePath
already appears in it - i.e. whether including candidatePath from this unit
would close a cycle.
*/
func (u *CompilationUnit) IsIncludedFrom(candidatePath string) bool {
	for cur := u; cur != nil; cur = cur.includedFrom {
		if cur.filePath != "" && cur.filePath == candidatePath {
			return true
		}
	}
	return false
}

/*
IncludeChain reports the file path of this unit and up to max-1 of its
includers, ordered outermost-first, for use in a CircularInclude
diagnostic's message (spec.md §9 "Cyclic graphs"). A deeply nested include
graph is reported with only its most recent max frames rather than the
full (potentially very long) chain back to the entry file - backed by
datautil.RingBuffer the same way the teacher bounds MemoryLogger's history
in util/logging.go.
*/
func (u *CompilationUnit) IncludeChain(max int) []string {
	var full []string
	for cur := u; cur != nil; cur = cur.includedFrom {
		if cur.filePath != "" {
			full = append(full, cur.filePath)
		}
	}
	for i, j := 0, len(full)-1; i < j; i, j = i+1, j-1 {
		full[i], full[j] = full[j], full[i]
	}

	if max < 1 {
		max = 1
	}
	rb := datautil.NewRingBuffer(max)
	for _, p := range full {
		rb.Add(p)
	}
	items := rb.Slice()
	chain := make([]string, len(items))
	for i, v := range items {
		chain[i] = v.(string)
	}
	return chain
}

/*
LineOffsets lazily computes, then returns, the byte offset of the start of
each line (1-based: LineOffsets()[0] is unused padding so that line number n
indexes directly at position n).
*/
func (u *CompilationUnit) LineOffsets() []int {
	if u.lineOffsets != nil {
		return u.lineOffsets
	}
	offsets := []int{0, 0}
	for i := 0; i < len(u.text); i++ {
		switch u.text[i] {
		case '\n':
			offsets = append(offsets, i+1)
		case '\r':
			if i+1 >= len(u.text) || u.text[i+1] != '\n' {
				offsets = append(offsets, i+1)
			}
		}
	}
	u.lineOffsets = offsets
	return offsets
}

/*
LineOffset returns the byte offset at which the given 1-based line starts.
*/
func (u *CompilationUnit) LineOffset(line int) (int, bool) {
	offsets := u.LineOffsets()
	if line < 1 || line >= len(offsets) {
		return 0, false
	}
	return offsets[line], true
}

/*
LineNumberAtOffset returns the 1-based line number containing the given byte
offset.
*/
func (u *CompilationUnit) LineNumberAtOffset(offset int) int {
	offsets := u.LineOffsets()
	line := 1
	for i := 2; i < len(offsets); i++ {
		if offsets[i] > offset {
			break
		}
		line = i
	}
	return line
}

/*
LineIndent returns the count of leading whitespace characters (bytes) on the
given 1-based line.
*/
func (u *CompilationUnit) LineIndent(line int) int {
	offset, ok := u.LineOffset(line)
	if !ok {
		offsets := u.LineOffsets()
		offset = offsets[len(offsets)-1]
	}
	i := offset
	for i < len(u.text) && (u.text[i] == ' ' || u.text[i] == '\t') {
		i++
	}
	return i - offset
}

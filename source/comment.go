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

import "strings"

/*
Comment is a single-line or multi-line comment captured during tokenization.
Content is mutable: the ASDoc layer may rewrite it in place while folding
tag lines (mirrors the teacher's LexToken.Val mutability for comments).
*/
type Comment struct {
	Multiline bool
	Content   string
	Location  Location
}

/*
IsASDoc reports whether this is a multiline comment whose opening sequence
is "/**" and whose content begins with "*" (spec.md C2/3 "Comment" data
model).
*/
func (c *Comment) IsASDoc() bool {
	return c.Multiline && strings.HasPrefix(c.Content, "*")
}

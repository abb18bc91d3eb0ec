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

import (
	"encoding/json"
	"fmt"
)

/*
MarshalNode renders n as indented JSON, adding a "nodeType" field carrying
n's concrete Go type name, the same way parser.LexToken is dumped via
json.MarshalIndent for debugging and test comparison in the teacher. Only n
itself is tagged: nested interface-typed children (Expression, Directive,
TypeExpression) are encoded without a nodeType field, and there is no
matching decoder.
*/
func MarshalNode(n Node) ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}

	raw, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}

	nodeType, err := json.Marshal(fmt.Sprintf("%T", n))
	if err != nil {
		return nil, err
	}
	fields["nodeType"] = nodeType

	return json.MarshalIndent(fields, "", "  ")
}

/*
MarshalNodeCompact is MarshalNode without indentation, for log lines and
diagnostic dumps where a pretty tree is not wanted.
*/
func MarshalNodeCompact(n Node) ([]byte, error) {
	out, err := MarshalNode(n)
	if err != nil {
		return nil, err
	}

	var compact interface{}
	if err := json.Unmarshal(out, &compact); err != nil {
		return nil, err
	}
	return json.Marshal(compact)
}

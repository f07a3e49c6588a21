/*
 * Copyright 2024 The zson Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"

	"github.com/tagjson/zson"
)

// renderText walks v with the Navigator and rebuilds its textual JSON form
// through a Builder, the same two APIs a consumer of this package would
// use together; zsonctl exercises them as its own first caller.
func renderText(v zson.Value) (string, error) {
	b := zson.NewBuilder()
	if err := renderValue(b, v, "", false); err != nil {
		return "", err
	}
	return b.String()
}

func renderValue(b *zson.Builder, v zson.Value, name string, named bool) error {
	switch v.Kind() {
	case zson.KindNull:
		if named {
			b.AddPropertyNull(name)
		} else {
			b.AddNull()
		}
	case zson.KindBool:
		val, _ := v.Bool()
		if named {
			b.AddPropertyBool(name, val)
		} else {
			b.AddBool(val)
		}
	case zson.KindNumber:
		val, _ := v.Number()
		if named {
			b.AddPropertyNumber(name, val)
		} else {
			b.AddNumber(val)
		}
	case zson.KindString:
		val, _ := v.String()
		if named {
			b.AddPropertyString(name, val)
		} else {
			b.AddString(val)
		}
	case zson.KindObject:
		if named {
			b.AddPropertyObject(name)
		} else {
			b.AddObject()
		}
		obj, _ := v.Object()
		for p, ok := obj.First(); ok; p, ok = obj.Next() {
			if err := renderValue(b, p.Value, p.Name, true); err != nil {
				return err
			}
		}
		b.ExitScope()
	case zson.KindArray:
		if named {
			b.AddPropertyArray(name)
		} else {
			b.AddArray()
		}
		arr, _ := v.Array()
		for e, ok := arr.First(); ok; e, ok = arr.Next() {
			if err := renderValue(b, e, "", false); err != nil {
				return err
			}
		}
		b.ExitScope()
	default:
		return fmt.Errorf("zsonctl: cannot render value of kind %v", v.Kind())
	}
	if err := b.Err(); err != nil {
		return fmt.Errorf("zsonctl: render: %w", err)
	}
	return nil
}

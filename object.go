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

package zson

// ObjectCursor walks an object's (key, value) properties in insertion
// order. Iteration is forward-only: once advanced past a property there
// is no way back except calling First again.
type ObjectCursor struct {
	buf       []byte
	container int // position of the object's own tag
	pos       int // position of the current property's key tag, 0 = not started
	done      bool
}

// Property is one (key, value) pair yielded by an ObjectCursor.
type Property struct {
	Name  string
	Value Value
}

// First positions the cursor at the object's first property, if any.
// It mirrors Json_IterateProperties.
func (c *ObjectCursor) First() (Property, bool) {
	c.pos = c.container + 1
	c.done = false
	return c.current()
}

// Next advances to the following property. It mirrors Json_NextProperty.
func (c *ObjectCursor) Next() (Property, bool) {
	if c.done || c.pos == 0 {
		return Property{}, false
	}
	key := Load(c.buf, c.pos)
	keySize := key.Size()
	if keySize == 0 {
		c.done = true
		return Property{}, false
	}
	valSize := sizeOf(c.buf[c.pos+keySize:])
	next := c.pos + keySize + valSize
	c.pos = next
	return c.current()
}

func (c *ObjectCursor) current() (Property, bool) {
	if c.pos < 0 || c.pos >= len(c.buf) || c.buf[c.pos] == byte(TagSequenceEnd) {
		c.done = true
		return Property{}, false
	}
	key := Load(c.buf, c.pos)
	if key.Kind() != KindString {
		c.done = true
		return Property{}, false
	}
	name, _ := key.String()
	valPos := c.pos + key.Size()
	return Property{Name: name, Value: Load(c.buf, valPos)}, true
}

// ByName does a linear scan for a property with the given name, mirroring
// Json_GetPropertyByName. It returns ok=false if the object has no such
// property (the object itself is not advanced).
func (c ObjectCursor) ByName(name string) (Value, bool) {
	pos := c.container + 1
	for pos < len(c.buf) && c.buf[pos] != byte(TagSequenceEnd) {
		key := Load(c.buf, pos)
		if key.Kind() != KindString {
			return Value{}, false
		}
		keySize := key.Size()
		if kb, _ := key.StringBytes(); string(kb) == name {
			return Load(c.buf, pos+keySize), true
		}
		valSize := sizeOf(c.buf[pos+keySize:])
		pos += keySize + valSize
	}
	return Value{}, false
}

// Count returns the number of properties, mirroring Json_GetPropertyCount.
func (c ObjectCursor) Count() int {
	n := 0
	pos := c.container + 1
	for pos < len(c.buf) && c.buf[pos] != byte(TagSequenceEnd) {
		n++
		key := Load(c.buf, pos)
		keySize := key.Size()
		valSize := sizeOf(c.buf[pos+keySize:])
		pos += keySize + valSize
	}
	return n
}

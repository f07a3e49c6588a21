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

// ArrayCursor walks an array's elements in order. Iteration is
// forward-only, matching ObjectCursor.
type ArrayCursor struct {
	buf       []byte
	container int // position of the array's own tag
	pos       int // position of the current element, 0 = not started
	done      bool
}

// First positions the cursor at the array's first element, if any.
// It mirrors Json_IterateElements.
func (c *ArrayCursor) First() (Value, bool) {
	c.pos = c.container + 1
	c.done = false
	return c.current()
}

// Next advances to the following element. It mirrors Json_NextElement.
func (c *ArrayCursor) Next() (Value, bool) {
	if c.done || c.pos == 0 {
		return Value{}, false
	}
	size := sizeOf(c.buf[c.pos:])
	if size == 0 {
		c.done = true
		return Value{}, false
	}
	c.pos += size
	return c.current()
}

func (c *ArrayCursor) current() (Value, bool) {
	if c.pos < 0 || c.pos >= len(c.buf) || c.buf[c.pos] == byte(TagSequenceEnd) {
		c.done = true
		return Value{}, false
	}
	return Load(c.buf, c.pos), true
}

// At returns the element at the given zero-based index, mirroring
// Json_GetElementAtIndex. It returns ok=false if the index is out of
// range.
func (c ArrayCursor) At(index int) (Value, bool) {
	if index < 0 {
		return Value{}, false
	}
	pos := c.container + 1
	for i := 0; pos < len(c.buf) && c.buf[pos] != byte(TagSequenceEnd); i++ {
		if i == index {
			return Load(c.buf, pos), true
		}
		size := sizeOf(c.buf[pos:])
		if size == 0 {
			return Value{}, false
		}
		pos += size
	}
	return Value{}, false
}

// Count returns the number of elements, mirroring Json_GetElementCount.
func (c ArrayCursor) Count() int {
	n := 0
	pos := c.container + 1
	for pos < len(c.buf) && c.buf[pos] != byte(TagSequenceEnd) {
		n++
		size := sizeOf(c.buf[pos:])
		if size == 0 {
			break
		}
		pos += size
	}
	return n
}

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

// escapePairs lists the characters Json_WriteString backslash-escapes,
// in the same order, paired with the letter written after the backslash.
var escapePairs = [...]struct {
	from byte
	to   byte
}{
	{'"', '"'},
	{'\\', '\\'},
	{'/', '/'},
	{'\b', 'b'},
	{'\f', 'f'},
	{'\n', 'n'},
	{'\r', 'r'},
	{'\t', 't'},
	{'\v', 'v'},
}

func escapeOf(c byte) (byte, bool) {
	for _, p := range escapePairs {
		if p.from == c {
			return p.to, true
		}
	}
	return 0, false
}

// sizeOfEscaped returns the number of bytes v will occupy once every
// character requiring a backslash escape is counted twice, mirroring
// Json_SizeOfString.
func sizeOfEscaped(v string) int {
	n := 0
	for i := 0; i < len(v); i++ {
		n++
		if _, ok := escapeOf(v[i]); ok {
			n++
		}
	}
	return n
}

// writeEscaped writes v into dst with the same escaping as
// Json_WriteString and returns the number of bytes written.
func writeEscaped(dst []byte, v string) int {
	n := 0
	for i := 0; i < len(v); i++ {
		c := v[i]
		if esc, ok := escapeOf(c); ok {
			dst[n] = '\\'
			dst[n+1] = esc
			n += 2
			continue
		}
		dst[n] = c
		n++
	}
	return n
}

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

// ParseOption configures a single Parse call.
type ParseOption func(p *parser)

// WithMaxDepth bounds how deeply nested objects and arrays may be
// before Parse gives up with an error, protecting against stack
// exhaustion from pathological or adversarial input. The default, zero,
// means unlimited.
func WithMaxDepth(n int) ParseOption {
	return func(p *parser) {
		p.maxDepth = n
	}
}

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
	"os"

	"github.com/spf13/cobra"

	"github.com/tagjson/zson"
)

// NewFormatCmd creates the format subcommand: pretty-print or compress a
// JSON file's text and print the result; the file itself is not rewritten.
func NewFormatCmd() *cobra.Command {
	var compress bool

	cmd := &cobra.Command{
		Use:   "format <file>",
		Short: "Pretty-print (default) or compress a JSON file's text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			if compress {
				fmt.Fprintln(cmd.OutOrStdout(), string(zson.Compress(data)))
				return nil
			}
			out, err := zson.Indent(data)
			if err != nil {
				return fmt.Errorf("formatting %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&compress, "compress", false, "strip whitespace instead of indenting")
	return cmd
}

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

// NewParseCmd creates the parse subcommand: transcode a JSON file to the
// binary form and report on it.
func NewParseCmd() *cobra.Command {
	var maxDepth int
	var render bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a JSON file into zson's binary form and report its size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxDepth == 0 {
				maxDepth = cfg.MaxDepth
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			textLen := len(data)

			var opts []zson.ParseOption
			if maxDepth > 0 {
				opts = append(opts, zson.WithMaxDepth(maxDepth))
			}
			doc, err := zson.Parse(data, opts...)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d text bytes -> %d binary bytes (%.1f%%)\n",
				args[0], textLen, len(doc.Bytes()), 100*float64(len(doc.Bytes()))/float64(textLen))

			if render {
				text, err := renderText(doc.Root())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "reject documents nested deeper than this (default: config file, else unlimited)")
	cmd.Flags().BoolVar(&render, "render", false, "print the binary form rebuilt back into text")
	return cmd
}

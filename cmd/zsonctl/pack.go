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

func parseCodecFlag(name string) (zson.PackCodec, error) {
	switch name {
	case "none":
		return zson.PackNone, nil
	case "fast":
		return zson.PackFast, nil
	case "best":
		return zson.PackBest, nil
	default:
		return 0, fmt.Errorf("unknown codec %q (want none, fast, or best)", name)
	}
}

// NewPackCmd creates the pack subcommand: parse a JSON file and write its
// packed binary form to the given output path.
func NewPackCmd() *cobra.Command {
	var codecName string

	cmd := &cobra.Command{
		Use:   "pack <file> <out>",
		Short: "Parse a JSON file and write its packed zson form",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if codecName == "" {
				codecName = cfg.Codec
			}
			if codecName == "" {
				codecName = "none"
			}
			codec, err := parseCodecFlag(codecName)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			doc, err := zson.Parse(data)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			packed, err := zson.Pack(nil, doc, codec)
			if err != nil {
				return fmt.Errorf("packing %s: %w", args[0], err)
			}
			if err := os.WriteFile(args[1], packed, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", args[1], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: packed %d bytes -> %s (%d bytes, codec=%s)\n",
				args[0], len(data), args[1], len(packed), codecName)
			return nil
		},
	}
	cmd.Flags().StringVar(&codecName, "codec", "", "none, fast, or best (default: config file, else none)")
	return cmd
}

// NewUnpackCmd creates the unpack subcommand: read a packed .zson file and
// print its text form.
func NewUnpackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack <file>",
		Short: "Read a packed zson file and print its JSON text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			doc, err := zson.Unpack(data)
			if err != nil {
				return fmt.Errorf("unpacking %s: %w", args[0], err)
			}
			text, err := renderText(doc.Root())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	return cmd
}

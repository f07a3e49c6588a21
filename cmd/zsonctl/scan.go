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
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tagjson/zson"
)

// scanResult is one file's outcome from a scan run.
type scanResult struct {
	path string
	err  error
}

// walkJSONFiles follows the shape of the reference implementation's
// directory-driven test runner, scaled to an arbitrary directory tree via
// filepath.WalkDir instead of a hand-rolled opendir loop. Each .json file
// is only parsed; nothing is re-emitted or compared.
func walkJSONFiles(dir string) ([]scanResult, error) {
	var results []scanResult
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			results = append(results, scanResult{path: path, err: rerr})
			return nil
		}
		_, perr := zson.Parse(data)
		results = append(results, scanResult{path: path, err: perr})
		return nil
	})
	return results, err
}

// NewScanCmd creates the scan subcommand: walk a directory tree and
// report which .json files fail to parse.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Walk a directory and report JSON files that fail to parse",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID, err := uuid.NewV7()
			if err != nil {
				return fmt.Errorf("generating run id: %w", err)
			}
			results, err := walkJSONFiles(args[0])
			if err != nil {
				return fmt.Errorf("scanning %s: %w", args[0], err)
			}
			failures := 0
			for _, r := range results {
				if r.err != nil {
					failures++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", r.path, r.err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d files, %d failed\n", runID, len(results), failures)
			if failures > 0 {
				return fmt.Errorf("%d of %d files failed to parse", failures, len(results))
			}
			return nil
		},
	}
	return cmd
}

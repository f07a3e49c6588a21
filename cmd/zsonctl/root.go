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
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// config holds the settings zsonctl reads from its config file and flags.
// Fields mirror the subset of behavior worth persisting between runs.
type config struct {
	MaxDepth int    `yaml:"maxDepth"`
	Codec    string `yaml:"codec"`
}

var cfg config

// loadConfigFile reads .zsonctl.yaml from the given directory, if present.
// A missing file is not an error; any other read or parse failure is.
func loadConfigFile(dir string) (config, error) {
	var c config
	path := filepath.Join(dir, ".zsonctl.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing %s: %w", path, err)
	}
	return c, nil
}

// NewRootCmd creates the zsonctl root command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "zsonctl",
		Short:         "zsonctl - inspect, reformat, and pack zson documents",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			loaded, err := loadConfigFile(cwd)
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
	}
	root.AddCommand(NewParseCmd())
	root.AddCommand(NewFormatCmd())
	root.AddCommand(NewPackCmd())
	root.AddCommand(NewUnpackCmd())
	root.AddCommand(NewScanCmd())
	root.AddCommand(NewInfoCmd())
	return root
}

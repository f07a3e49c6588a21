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

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"
)

// NewInfoCmd creates the info subcommand: report host CPU features.
//
// The codec itself is scalar, so nothing in the parser or builder reads
// these; this command exists so the diagnostics a SIMD-capable JSON
// library would normally print (for bug reports, for deciding whether a
// faster build is available) are still available to an operator, even
// though zsonctl has no SIMD path to switch on.
func NewInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report host CPU features relevant to JSON processing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "brand:       %s\n", cpuid.CPU.BrandName)
			fmt.Fprintf(out, "vendor:      %s\n", cpuid.CPU.VendorString)
			fmt.Fprintf(out, "physical:    %d\n", cpuid.CPU.PhysicalCores)
			fmt.Fprintf(out, "logical:     %d\n", cpuid.CPU.LogicalCores)
			fmt.Fprintf(out, "AVX2:        %v\n", cpuid.CPU.Supports(cpuid.AVX2))
			fmt.Fprintf(out, "CLMUL:       %v\n", cpuid.CPU.Supports(cpuid.CLMUL))
			fmt.Fprintf(out, "SSE4.2:      %v\n", cpuid.CPU.Supports(cpuid.SSE42))
			fmt.Fprintln(out, "(informational only: zsonctl's codec is scalar and does not use these)")
			return nil
		},
	}
	return cmd
}

// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cplxdemo multiplies and divides two complex numbers held in vector
// registers and prints the results with their magnitudes.
//
// Usage:
//
//	cplxdemo                      # a=3+8i, b=2+1i
//	cplxdemo --a 1,-1 --b 0.5,2
//	cplxdemo info                 # report the dispatch level
//
// Default operands can be set with CPLXDEMO_A and CPLXDEMO_B.
package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/xyproto/env/v2"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("cplxdemo: ")

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cplxdemo",
		Short:         "Complex multiply and divide on a 256-bit vector register",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          runDemo,
	}
	rootCmd.Flags().String("a", env.Str("CPLXDEMO_A", "3,8"), "Left operand as real,imag")
	rootCmd.Flags().String("b", env.Str("CPLXDEMO_B", "2,1"), "Right operand as real,imag")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Print the SIMD dispatch level",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	})
	return rootCmd
}

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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/hwycomplex/hwy"
	"github.com/ajroetker/hwycomplex/hwy/contrib/cplx"
)

func runDemo(cmd *cobra.Command, args []string) error {
	aFlag, err := cmd.Flags().GetString("a")
	if err != nil {
		return err
	}
	bFlag, err := cmd.Flags().GetString("b")
	if err != nil {
		return err
	}

	a, err := parseOperand(aFlag)
	if err != nil {
		return fmt.Errorf("operand a: %w", err)
	}
	b, err := parseOperand(bFlag)
	if err != nil {
		return fmt.Errorf("operand b: %w", err)
	}

	out := cmd.OutOrStdout()
	p := a.Mul(b)
	fmt.Fprintf(out, "a*b=%v abs=%.6g\n", p, p.Abs())

	d := a.Div(b)
	fmt.Fprintf(out, "a/b=%v abs=%.6g\n", d, d.Abs())
	return nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dispatch: %s\n", hwy.CurrentName())
	fmt.Fprintf(out, "cpu avx2: %v\n", hwy.HasAVX2())
	fmt.Fprintf(out, "%s: %v\n", hwy.NoSimdVar, hwy.NoSimdEnv())
	return nil
}

// parseOperand parses "re,im" or a bare "re".
func parseOperand(s string) (cplx.Complex, error) {
	reStr, imStr, found := strings.Cut(s, ",")
	re, err := strconv.ParseFloat(strings.TrimSpace(reStr), 64)
	if err != nil {
		return cplx.Complex{}, fmt.Errorf("real part %q: %w", reStr, err)
	}
	if !found {
		return cplx.FromReal(re), nil
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(imStr), 64)
	if err != nil {
		return cplx.Complex{}, fmt.Errorf("imaginary part %q: %w", imStr, err)
	}
	return cplx.FromParts(re, im), nil
}

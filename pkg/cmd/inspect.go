// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verdict-lang/go-verdict/pkg/hol"
	"github.com/verdict-lang/go-verdict/pkg/hol/walk"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [flags] formula_file",
	Short: "Inspect an encoded formula",
	Long: `Pretty print an encoded formula file, optionally tabulating a
positional walk over it or reporting buffer statistics`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data := readFormulaFile(args[0])
		order := getString(cmd, "walk")
		//
		log.Debugf("inspecting %d bytes from %s", len(data), args[0])
		//
		if err := inspectFormula(data, order, getFlag(cmd, "stats")); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func inspectFormula(data []byte, order string, stats bool) error {
	if err := printFormula(data); err != nil {
		return err
	}
	//
	if order != "" {
		if err := printWalk(data, order); err != nil {
			return err
		}
	}
	//
	if stats {
		count, err := walk.Count(data)
		if err != nil {
			return err
		}
		//
		fmt.Printf("%d nodes in %d bytes\n", count, len(data))
	}
	//
	return nil
}

// Render straight off the buffer, without decoding into a tree.
func printFormula(data []byte) error {
	if err := hol.PrintEncoded(os.Stdout, data); err != nil {
		return err
	}
	//
	fmt.Println()
	//
	return nil
}

func printWalk(data []byte, order string) error {
	var mode walk.Order
	//
	switch order {
	case "dfs":
		mode = walk.DepthFirst
	case "bfs":
		mode = walk.BreadthFirst
	default:
		return fmt.Errorf("unknown walk order %q (expected dfs or bfs)", order)
	}
	//
	printRule()
	fmt.Printf("%-8s %-8s %-8s %s\n", "offset", "length", "depth", "tag")
	printRule()
	//
	w := walk.New(data, mode)
	for w.Next() {
		v := w.Visit()
		fmt.Printf("%-8d %-8d %-8d %s\n", v.Span.Start, v.Span.Len(), v.Depth, v.Tag)
	}
	//
	printRule()
	//
	return w.Err()
}

// Print a horizontal rule sized to the terminal, defaulting to 80 columns
// when stdout is not one.
func printRule() {
	width := 80
	//
	if term.IsTerminal(1) {
		if w, _, err := term.GetSize(1); err == nil {
			width = w
		}
	}
	//
	fmt.Println(strings.Repeat("-", width))
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("walk", "", "tabulate a walk in the given order (dfs or bfs)")
	inspectCmd.Flags().Bool("stats", false, "report node count and buffer length")
}

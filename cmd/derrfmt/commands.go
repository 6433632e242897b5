/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bufio"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newMaskCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mask [file...]",
		Short: "Print input lines with volatile values masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := bufio.NewWriter(cmd.OutOrStdout())
			err := a.eachLine(cmd, args, func(line string) {
				_, _ = fmt.Fprintln(out, a.masker.Mask(line))
			})
			if ferr := out.Flush(); err == nil {
				err = ferr
			}
			return err
		},
	}
}

type bucket struct {
	line  string
	count int
}

func newGroupCmd(a *app) *cobra.Command {
	var minCount int
	cmd := &cobra.Command{
		Use:   "group [file...]",
		Short: "Count masked input lines, most frequent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			counts := map[string]int{}
			if err := a.eachLine(cmd, args, func(line string) {
				counts[a.masker.Mask(line)]++
			}); err != nil {
				return err
			}

			buckets := make([]bucket, 0, len(counts))
			for line, n := range counts {
				if n >= minCount {
					buckets = append(buckets, bucket{line: line, count: n})
				}
			}
			sort.Slice(buckets, func(i, j int) bool {
				if buckets[i].count != buckets[j].count {
					return buckets[i].count > buckets[j].count
				}
				return buckets[i].line < buckets[j].line
			})

			out := bufio.NewWriter(cmd.OutOrStdout())
			for _, b := range buckets {
				_, _ = fmt.Fprintf(out, "%d\t%s\n", b.count, b.line)
			}
			a.log.Debug("grouped", "distinct", len(counts), "printed", len(buckets))
			return out.Flush()
		},
	}
	cmd.Flags().IntVar(&minCount, "min", 1, "only print groups seen at least this many times")
	return cmd
}

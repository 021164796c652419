// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newShowCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := o.open(args[0])
			if err != nil {
				return err
			}
			return o.write(cmd.OutOrStdout(), dt)
		},
	}
}

func newTypesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "types <file>",
		Short: "Print the name and kind of each column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := o.open(args[0])
			if err != nil {
				return err
			}
			return o.write(cmd.OutOrStdout(), dt.ColumnKinds())
		},
	}
}

func newFilterCmd(o *options) *cobra.Command {
	var keys bool
	cmd := &cobra.Command{
		Use:   "filter <file> <criterion>...",
		Short: "Print the rows that meet the criteria",
		Long: `Print the rows that meet the criteria, which are folded in order.
Each criterion has the form "[first|and|or] column op operand...", with
op one of > < >= <= == != in notin. The combinator defaults to first for
the first criterion and to and after it. An operand starting with @ names
another column to compare with.`,
		Example: `  dframe filter scores.csv "Math > 60" "or Name in Ben Cal"`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := o.open(args[0])
			if err != nil {
				return err
			}
			for _, expr := range args[1:] {
				if err := dt.AddCriterionExpr(expr); err != nil {
					return err
				}
			}
			if keys {
				if err := o.write(cmd.ErrOrStderr(), dt.KeysStatus()); err != nil {
					return err
				}
			}
			ft, err := dt.Filter()
			if err != nil {
				return err
			}
			return o.write(cmd.OutOrStdout(), ft)
		},
	}
	cmd.Flags().BoolVar(&keys, "keys", false, "print the filter criteria to stderr")
	return cmd
}

func newOrderCmd(o *options) *cobra.Command {
	var reverse bool
	var collate string
	cmd := &cobra.Command{
		Use:   "order <file> <column>",
		Short: "Print the rows ordered by a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := o.open(args[0])
			if err != nil {
				return err
			}
			if err := orderBy(dt, args[1], collate); err != nil {
				return err
			}
			if reverse {
				dt.ReverseOrder()
			}
			ot, err := dt.Order()
			if err != nil {
				return err
			}
			return o.write(cmd.OutOrStdout(), ot)
		},
	}
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "order from largest to smallest")
	cmd.Flags().StringVar(&collate, "collate", "", "order strings by the rules of a language, such as en or de")
	return cmd
}

func newGroupCmd(o *options) *cobra.Command {
	var dummy bool
	cmd := &cobra.Command{
		Use:   "group <file> <column>",
		Short: "Print the count of rows for each value of a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := o.open(args[0])
			if err != nil {
				return err
			}
			gt, err := groupBy(dt, args[1], dummy)
			if err != nil {
				return err
			}
			return o.write(cmd.OutOrStdout(), gt)
		},
	}
	cmd.Flags().BoolVar(&dummy, "dummy", false, "replace the column with 0/1 indicator columns instead of counting")
	return cmd
}

func newRunCmd(o *options) *cobra.Command {
	var watchFlag bool
	cmd := &cobra.Command{
		Use:   "run <pipeline>",
		Short: "Run the steps in a TOML or YAML pipeline file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openPipeline(args[0])
			if err != nil {
				return err
			}
			if !watchFlag {
				return o.runPipeline(cmd.OutOrStdout(), p)
			}
			return watch(cmd.Context(), p.watchFiles(args[0]), func() error {
				p, err := openPipeline(args[0])
				if err != nil {
					return err
				}
				return o.runPipeline(cmd.OutOrStdout(), p)
			})
		},
	}
	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "run again whenever the pipeline or its input changes, until interrupted")
	return cmd
}

// runPipeline runs the pipeline and saves the result to its
// output file, or writes it to w if it has none.
func (o *options) runPipeline(w io.Writer, p *Pipeline) error {
	dt, err := p.Run()
	if err != nil {
		return err
	}
	if p.Output != "" {
		return p.save(dt)
	}
	return o.write(w, dt)
}

// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-kleene/kleene/gen"
	"github.com/go-kleene/kleene/sat"
	"github.com/go-kleene/kleene/sudoku"
	"github.com/go-kleene/kleene/trit"
)

func satCmd() *cobra.Command {
	var model bool
	cmd := &cobra.Command{
		Use:   "sat <file.cnf[.gz|.bz2] | ->",
		Short: "solve a DIMACS CNF problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			r, err := pathReader(args[0])
			if err != nil {
				return err
			}
			defer r.Close()
			s := sat.New()
			if err := sat.Load(r, s); err != nil {
				return err
			}
			s.SetLimits(cfg.limits())
			log.WithField("vars", s.MaxVar()).Debug("solving")
			switch s.Solve() {
			case 1:
				fmt.Println("s SATISFIABLE")
				if model {
					printModel(s)
				}
			case -1:
				fmt.Println("s UNSATISFIABLE")
			default:
				fmt.Println("s UNKNOWN")
			}
			printStats(s.Stats())
			return nil
		},
	}
	cmd.Flags().BoolVar(&model, "model", false, "print the satisfying assignment")
	return cmd
}

func printModel(s *sat.S) {
	fmt.Print("v")
	for v := trit.Var(1); v <= s.MaxVar(); v++ {
		d := int(v)
		if !s.Value(v.Pos()) {
			d = -d
		}
		fmt.Printf(" %d", d)
	}
	fmt.Println(" 0")
}

func sudokuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku <board.txt | ->",
		Short: "solve a 9x9 number-placement board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			r, err := pathReader(args[0])
			if err != nil {
				return err
			}
			defer r.Close()
			text, err := io.ReadAll(r)
			if err != nil {
				return err
			}
			s, err := sudoku.Parse(string(text))
			if err != nil {
				return err
			}
			s.SetLimits(cfg.limits())
			switch s.Solve() {
			case 1:
				fmt.Print(s)
			case -1:
				fmt.Println("unsatisfiable")
			default:
				fmt.Println("unknown")
			}
			printStats(s.Stats())
			return nil
		},
	}
}

func queensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queens <n>",
		Short: "solve the n-queens problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			var n int
			if _, err := fmt.Sscanf(args[0], "%d", &n); err != nil || n < 1 {
				return fmt.Errorf("bad board size %q", args[0])
			}
			p, err := gen.Queens(n)
			if err != nil {
				return err
			}
			p.SetLimits(cfg.limits())
			switch p.Solve() {
			case 1:
				for _, c := range p.Values() {
					for i := 0; i < n; i++ {
						if i == c {
							fmt.Print("Q ")
						} else {
							fmt.Print(". ")
						}
					}
					fmt.Println()
				}
			case -1:
				fmt.Println("unsatisfiable")
			default:
				fmt.Println("unknown")
			}
			printStats(p.Stats())
			return nil
		},
	}
}

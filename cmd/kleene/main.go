// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command kleene exposes the solvers on the command line:
//
//	kleene sat problem.cnf       # DIMACS CNF, also .gz/.bz2 or - for stdin
//	kleene sudoku board.txt      # 81-cell board, digits and ./0/_ blanks
//	kleene queens 8              # n-queens
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	root := &cobra.Command{
		Use:           "kleene",
		Short:         "ternary-logic constraint and clause solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addGlobalFlags(root.PersistentFlags())
	root.AddCommand(satCmd(), sudokuCmd(), queensCmd())

	if err := root.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// Copyright 2025 The Kleene Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package gen

// EasySudoku returns a board with 72 givens whose 9 blanks fall in
// distinct rows, columns and boxes.  Propagation alone completes it.
func EasySudoku() string {
	return `
.34678912
672.95348
198342.67
8.9761423
4268.3791
7139248.6
96.537284
28741.635
34528617.
`
}

// HardSudoku returns a sparse 23-given board.  It is satisfiable (it
// admits the SolvedSudoku completion) but too underdetermined for
// propagation alone, so solving it requires branching search.
func HardSudoku() string {
	return `
5........
.7...53..
..8...5.7
8....1...
4.6.5....
.1...4.5.
9.1....8.
2...1..3.
....8...9
`
}

// SolvedSudoku returns a complete valid board, the completion of
// EasySudoku.
func SolvedSudoku() string {
	return `
534678912
672195348
198342567
859761423
426853791
713924856
961537284
287419635
345286179
`
}

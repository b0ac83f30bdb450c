// Package tsv loads one trajectory from a tab-separated export of
// sampled stream states.
//
// The expected layout is a header row naming at least a time column
// and a state column (default "sub_cot"), one sample per row. Rows
// whose state cell is the error token or empty are skipped entirely,
// bridging the previous valid state to the next valid one, so a
// transient sensing failure does not split the trajectory.
//
// One file yields one Word; a multi-file corpus is assembled at the
// pipeline level.
package tsv

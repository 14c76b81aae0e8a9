package models

// Delimiter is the line that terminates a fortune record on disk.
const Delimiter = "%"

// StdinSource is the source path that selects standard input.
const StdinSource = "-"

// Record is a single fortune parsed from a source file
type Record struct {
	Source string // Base name of the file the record came from
	Text   string // Record body without the trailing newline
}

// Collection holds records in file-resolution order, then appearance order
type Collection []Record


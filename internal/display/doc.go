// Package display formats everything fortuner prints for the user.
//
// # Fortune Output
//
// Printer writes query results. Pattern mode prints a "(source)" header
// before each run of matches from one source, then each record followed by
// a "%" line:
//
//	p := display.NewPrinter(os.Stdout, colorOutput)
//	p.Header("jokes")
//	p.Record(text)
//
// Random mode prints a single fortune, or the NoFortunes sentinel.
//
// # Progress and Warnings
//
// ProgressIndicator reports the index command's per-file progress, and
// Warning prints yellow advisory messages such as WarnUnterminated.
//
// Colors come from fatih/color and are only used when the caller asks for
// them, which it does when the destination is a terminal.
package display

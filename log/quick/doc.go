// Package quick provides one-shot logging helpers for programs that do
// not want to assemble a pipeline themselves.
//
// ConsoleLog and its per-level variants write through a shared console
// driver created at package init. FileLog and its variants open the
// file, write one record, and close it again. That is convenient for
// occasional records and wasteful in a loop; programs logging to a file
// regularly should hold a driver.File and a channel instead.
//
// Each helper registers a severity policy at the entry's own level, so
// every record passes; the policy exists so that the helpers exercise
// the same pipeline a hand-built channel would.
package quick

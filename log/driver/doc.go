// Package driver provides the built-in output sinks for the logging
// pipeline.
//
//   - Console writes formatted entries to any io.Writer (default:
//     stdout) and colors the output when the writer is a terminal.
//   - File appends formatted entries to a single log file, creating
//     the parent directory on open. Repeated runs append, never
//     truncate. There is no rotation, size cap, or cross-process
//     locking.
//
// Both sinks render entries through a replaceable format.Formatter
// (see the Formatting interface) and default to the text formatter.
// Submit errors are surfaced to the channel but, per the pipeline's
// best-effort contract, never interrupt fan-out to other drivers.
package driver

// Package format defines how log entries are rendered as text.
//
// The Formatter interface is a pure entry-to-string function; a
// formatter holds no reference to the entry after Format returns. The
// built-in TextFormatter produces a human-readable record with the
// bracketed level name, the zoned timestamp, the quoted message, and
// the call site. The exact layout is not a compatibility contract;
// nothing parses it back.
package format

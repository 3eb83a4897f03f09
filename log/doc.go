// Package log implements a small synchronous logging pipeline built
// around five pieces: an Entry describing one log occurrence, a Policy
// deciding whether it proceeds, a Driver writing it somewhere, a
// Channel tying policies and drivers together, and an EntryBuilder
// offering a fluent call-site API.
//
// A Channel fans a submitted Entry out to every registered Driver, but
// only after every registered Policy has accepted it. The first
// rejecting policy short-circuits the submission; with no policies
// registered every entry passes. Driver errors never interrupt the
// fan-out, so the remaining drivers still receive the entry.
//
// The EntryBuilder captures the call site and timestamp at
// construction, accumulates the level and message through chained
// calls, and delivers the finished entry on an explicit Submit:
//
//	ch := log.NewGroup(console)
//	ch.RegisterPolicies(log.NewSeverityPolicy(log.InfoLevel))
//	log.New().Warn("disk nearly full").Channel(ch).Submit()
//
// Submit fires exactly once per builder; without a bound channel it is
// a silent no-op.
//
// Everything here is synchronous and single-threaded: a Submit call
// runs policies, formatting, and writes to completion on the calling
// goroutine. Sharing a Channel or Driver across goroutines requires
// external serialization.
//
// Concrete sinks live in log/driver, text rendering in log/format, and
// one-shot convenience helpers in log/quick.
package log

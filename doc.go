// Package tracelog provides a small leveled logger that mirrors every
// record to standard output and an append-only log file, and keeps a
// manually maintained stack of scope labels that is dumped whenever an
// error-or-worse record is emitted.
//
// Key features
//   - Five severities (fatal..debug) with a single threshold; lower
//     value means more severe, and a record is emitted only when its
//     level is at or above the threshold
//   - Plain-text records, one line each, identical on both sinks
//   - Diagnostic scope stack with Push/Pop/Peek and a Scope helper
//     that guarantees a matched pop on every exit path
//   - Fully synchronous writes; no buffering, no rotation
//
// Typical usage
//
//	svc := &tracelog.Service{Config: tracelog.DefaultConfig("app.log")}
//	if err := svc.Initialize(); err != nil { panic(err) }
//	defer svc.Close()
//
//	defer svc.Scope("startup")()
//	svc.Info("listening on :8080")
//	svc.Error("bind failed") // also dumps the scope stack
package tracelog

// Package engine provides the clock and the single-threaded event loop that drives
// every effect, input event and navigation step.
//
// All callbacks scheduled on a Loop execute sequentially on the goroutine driving it,
// so effect state owned by a callback needs no locking. Tests use MockTimeProvider
// with Loop.Advance to step through timers deterministically.
package engine

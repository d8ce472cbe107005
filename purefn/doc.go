// Package purefn provides function combinators: wrappers that take a function
// and return a new one with different calling semantics.
//
// Every combinator keeps its state (the "called" flag, the result cache, the
// throttle window) inside the returned closure. Two wrappers never share
// state, and nothing outside the wrapper can read or reset it.
//
// Features:
//   - Once: run a function on the first call only.
//   - Memoize, Memoize1 to Memoize3, MemoizeBounded: cache results by the
//     canonical form of the argument list, in a trie with optional
//     two-generation rotation.
//   - Delay: run a function once, later, on a timer.Scheduler.
//   - Throttle: leading-edge throttling; calls inside the window are dropped.
//
// Time never comes from a hidden global clock. Delay and Throttle take a
// timer.Scheduler, so tests drive them with timer.Virtual and programs with
// timer.Loop.
//
// WARNING: Memoize assumes purity. Do not memoize functions whose result
// depends on time, I/O or mutable state.
package purefn

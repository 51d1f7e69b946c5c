// Package hooks is a call-order hook state runtime: components are plain
// functions that declare state, reducer, and memo cells by calling hooks in
// a fixed order, and a RenderContext re-runs them when their state changes.
//
// Everything is single-writer and cooperative. A RenderContext and its
// instances must be driven from one goroutine; run one context per goroutine
// if you need parallelism.
package hooks

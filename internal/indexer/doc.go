// Package indexer allocates the integer slots that identify vertex types,
// edge types and vertex elements.
//
// A slot is valid while it holds live data. Freed slots are queued and
// handed out again in FIFO order before any never-used slot is taken, so an
// index is only unique while it is valid. When the never-used range is
// exhausted the capacity doubles and the claim reports the new capacity, which
// the caller must propagate to every container sized by it.
//
// Private slots hold internal bookkeeping data; they are valid but never
// visible through the public accessors.
package indexer

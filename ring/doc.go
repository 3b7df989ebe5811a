// Package ring
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity circular buffers for decoupling a producer writing batches
// of values from consumers reading batches of values, without heap churn or
// buffer relocation after construction.
//
// Three variants share one wraparound core:
//
//   - Fixed: ring over caller-supplied backing storage, allocation-free at
//     construction, suitable for package-level arrays.
//   - Buffer: ring over storage allocated once at construction.
//   - MultiReader: single writer, multiple independently-advancing read
//     cursors over the same backing store.
//
// All variants keep one slot unused (the sentinel gap) so that equal
// cursors always mean empty, never full: capacity C stores at most C-1
// values. Writes truncate silently when space runs out and reads come back
// short when data runs out.
//
// None of the types synchronize internally. "Multi reader" means multiple
// independent logical read positions, not thread safety; concurrent use
// from several goroutines requires external mutual exclusion or confining
// the writer and each reader to one goroutine with a happens-before
// handoff. See examples/pipeline for the locked pattern.
package ring

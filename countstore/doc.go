// Package countstore provides the durable counter store underneath the
// classifier: per-feature-per-category occurrence counts, per-category
// document counts, and a global document total, addressable through atomic
// increments and prefix enumeration.
//
// Two implementations are provided: BadgerStore persists counters in a
// Badger database directory (single writer, any number of read-only
// handles), and MemoryStore keeps them in process memory for tests and
// ephemeral classifiers.
package countstore

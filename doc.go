// Package versionvec provides a version vector implementation for tracking
// causality across distributed replicas. Version vectors enable conflict
// detection by maintaining per-replica counters that capture happened-before
// relationships: one vector can dominate another, match it exactly, or be
// concurrent with it (a genuine conflict).
//
// Vectors are stored as a sparse sequence of (ID, counter) entries sorted by
// ID, so merge and comparison run in a single O(n+m) co-sorted walk and
// iteration order is deterministic. An ID absent from a vector is equivalent
// to that ID carrying a zero counter.
package versionvec

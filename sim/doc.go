// Package sim provides the page-replacement simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - resident.go: ResidentSet, the bounded order-preserving set of loaded pages
//   - policy.go: the Policy interface, the name registry and Simulate()
//   - fifo.go, lru.go, optimal.go: the three eviction rules
//   - compare.go: running several policies over the same input
//
// # Architecture
//
// Policies are pure functions of (sequence, capacity): each call builds its own
// ResidentSet and returns a fresh *trace.Trace. Nothing is shared between calls,
// so the comparator and the capacity sweep run simulations concurrently.
// Supporting packages:
//   - sim/trace/: step records, traces and fault statistics (pure data)
//   - sim/workload/: reference sequence sources (text, CSV, random, YAML spec)
//   - sim/export/: CSV export and JSON run reports
//
// # Determinism
//
// Identical input always yields an identical trace. Optimal breaks ties between
// pages with equal next use by taking the first in load order.
package sim

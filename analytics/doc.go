// Package analytics computes the read-side reports of the ordering domain:
// order totals, spending and rating aggregates, monthly profit, the customer
// similarity graph and the dish recommendations derived from it, and the
// price increase check.
//
// Every computation runs over one *Snapshot of the whole dataset. Snapshot
// methods are pure; Engine wraps them with argument validation, snapshot
// loading from a SnapshotSource and logging. Nothing is cached between calls.
package analytics

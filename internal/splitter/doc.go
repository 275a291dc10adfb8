// Package splitter orchestrates the end-to-end split operation: one long
// master recording plus chapter markers in, individually tagged track files
// out. It owns only the sequencing; reconciliation, the ledger, cropping,
// resolution, and extraction live in their own packages and are injected.
package splitter

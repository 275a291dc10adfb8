// Package ledger makes split runs idempotent. It keeps a per-output-directory
// record of titles already produced and filters a reconciled track list down
// to unprocessed work.
//
// The record is an optimistic claim: titles are appended when accepted for
// processing, not when their file lands. A run that fails mid-batch therefore
// leaves entries for titles never produced; Repair rebuilds the record from
// the audio files actually present.
package ledger

// Package jobs records split-run history in a local SQLite database. Each
// accepted request becomes a job row that moves through pending, processing,
// and completed or failed, carrying the produced file list or the failure
// message. The request and result shapes here are the external contract for
// whatever transport delivers jobs; the transport itself is out of scope.
package jobs

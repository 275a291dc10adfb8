// Command mixcut is the CLI for the mix splitter: it turns one long recording
// plus chapter markers into individually tagged MP3 files, keeps a
// per-directory ledger so reruns are idempotent, and records every run in a
// local job history.
package main

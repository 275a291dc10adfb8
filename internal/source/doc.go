// Package source defines the acquisition seams the pipeline depends on: a
// Downloader for the master media, and the Searcher/MediaFetcher pair the
// fallback resolver uses for candidate tracks. Remote acquisition itself is an
// external collaborator; the only bundled implementation is LocalSource, which
// serves media already on disk via a JSON job descriptor.
package source

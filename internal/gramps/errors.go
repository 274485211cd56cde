package gramps

import "errors"

// Archive-level failures. Any of these aborts the whole parse; no partial
// Store is ever returned.
var (
	// ErrIO indicates the archive file could not be read.
	ErrIO = errors.New("archive unreadable")

	// ErrDecompress indicates the archive is not a valid gzip stream.
	ErrDecompress = errors.New("archive not a valid gzip stream")

	// ErrParse indicates the decompressed archive is not well-formed XML.
	ErrParse = errors.New("archive XML malformed")
)

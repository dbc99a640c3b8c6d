package diffpager

import "io"

// Parser parses diff content into a Document.
type Parser interface {
	// Parse consumes r to EOF and returns the parsed document.
	Parse(r io.Reader) (*Document, error)
}

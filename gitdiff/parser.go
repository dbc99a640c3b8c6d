// Package gitdiff parses unified diff streams (git diff, git show,
// git log -p) into diffpager documents: the verbatim lines for display
// plus an ordered index of commit/file/hunk context boundaries.
package gitdiff

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	gd "github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/fwojciec/diffpager"
)

// maxLineSize bounds a single input line. Diff lines can be very long
// (minified assets, JSONL) but are still line-structured.
const maxLineSize = 16 * 1024 * 1024

// Compile-time interface verification.
var _ diffpager.Parser = (*Parser)(nil)

// Parser builds a Document in a single forward pass over the stream.
// Boundaries are appended in encounter order, which keeps the index sorted
// without ever re-sorting.
type Parser struct{}

// NewParser creates a new stream parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads r to EOF, classifying every line and folding the classified
// stream into the boundary index. Malformed diff content is absorbed as
// non-structural lines; the only error is a failure to read the stream.
func (p *Parser) Parse(r io.Reader) (*diffpager.Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		lines      []diffpager.Line
		boundaries []diffpager.Boundary
		current    diffpager.Context
		oldPath    string // "---" side, surfaced when the "+++" side is /dev/null

		// Commit log headers put the subject on a later indented line, so a
		// commit boundary may be awaiting its subject while the header block
		// is still streaming in.
		pending = -1
		block   []string
	)

	lineNum := 0
	for sc.Scan() {
		text := sc.Text()
		kind := Classify(text)
		lines = append(lines, diffpager.Line{Text: text, Kind: kind})

		if pending >= 0 {
			if headerBlockLine(text, kind) {
				block = append(block, text)
				lineNum++
				continue
			}
			sealCommitHeader(boundaries, pending, block, &current)
			pending, block = -1, nil
		}

		switch kind {
		case diffpager.LineCommit:
			id, subject := parseCommitLine(text)
			current = diffpager.Context{Commit: diffpager.CommitInfo{ID: id, Subject: subject}}
			boundaries = append(boundaries, diffpager.Boundary{Start: lineNum, Context: current})
			if subject == "" {
				pending = len(boundaries) - 1
				block = []string{text}
			}
			oldPath = ""
		case diffpager.LineFileOld:
			oldPath = parsePath(text[len("--- "):])
		case diffpager.LineFileNew:
			path := parsePath(text[len("+++ "):])
			if path == "" {
				path = oldPath
			}
			current.FilePath = path
			current.HunkHeader = ""
			boundaries = append(boundaries, diffpager.Boundary{Start: lineNum, Context: current})
		case diffpager.LineHunk:
			current.HunkHeader = text
			boundaries = append(boundaries, diffpager.Boundary{Start: lineNum, Context: current})
		}
		lineNum++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading diff input: %w", err)
	}
	if pending >= 0 {
		sealCommitHeader(boundaries, pending, block, &current)
	}

	return &diffpager.Document{
		Lines: lines,
		Index: diffpager.NewIndex(boundaries),
	}, nil
}

// headerBlockLine reports whether a line still belongs to the commit header
// block: author/date metadata (Other) and the indented message (Context).
// The block ends at the first line of the diff proper.
func headerBlockLine(text string, kind diffpager.LineKind) bool {
	if strings.HasPrefix(text, "diff --git") {
		return false
	}
	return kind == diffpager.LineOther || kind == diffpager.LineContext
}

// sealCommitHeader recovers the commit subject from the accumulated header
// block and patches it into both the running context and the already
// appended commit boundary. go-gitdiff handles the standard git log and
// format-patch header shapes; a plain scan of the indented message is the
// fallback for anything it rejects.
func sealCommitHeader(boundaries []diffpager.Boundary, pending int, block []string, current *diffpager.Context) {
	if current.Commit.Subject != "" {
		return
	}
	subject := subjectFromBlock(block)
	if subject == "" {
		return
	}
	current.Commit.Subject = subject
	boundaries[pending].Context.Commit.Subject = subject
}

func subjectFromBlock(block []string) string {
	if h, err := gd.ParsePatchHeader(strings.Join(block, "\n")); err == nil && h.Title != "" {
		return h.Title
	}
	for _, l := range block[1:] {
		if strings.HasPrefix(l, " ") {
			if t := strings.TrimSpace(l); t != "" {
				return t
			}
		}
	}
	return ""
}

// Package diffpager provides domain types for paging unified diff text
// with a tracked commit/file/hunk context.
package diffpager

// LineKind classifies a raw diff line by its structural role.
type LineKind int

// Line kinds.
const (
	LineOther   LineKind = iota // blank lines, "diff --git", index lines, metadata
	LineCommit                  // "commit <hash>" log header
	LineFileOld                 // "--- a/path"
	LineFileNew                 // "+++ b/path"
	LineHunk                    // "@@ -X,Y +X,Y @@"
	LineContext                 // " unchanged"
	LineAdded                   // "+added"
	LineDeleted                 // "-removed"
)

// Line is a single classified input line. Text is preserved verbatim,
// including the classifying prefix character, for faithful redisplay.
type Line struct {
	Text string
	Kind LineKind
}

// CommitInfo identifies a commit by hash and subject line.
type CommitInfo struct {
	ID      string
	Subject string
}

// Context describes where in the diff a given line logically sits.
// Fields fill in incrementally as headers are encountered; the zero value
// means no commit, file, or hunk header has been seen yet.
type Context struct {
	Commit     CommitInfo
	FilePath   string
	HunkHeader string
}

// IsZero reports whether no context has been established.
func (c Context) IsZero() bool {
	return c == Context{}
}

// Boundary records the 0-based line number at which the active context
// changes, together with a snapshot of the context from that line on.
type Boundary struct {
	Start   int
	Context Context
}

// Document is a fully parsed diff stream: the verbatim lines for display
// plus the boundary index for context resolution. Both are read-only once
// parsing completes, so they may be shared freely during viewing.
type Document struct {
	Lines []Line
	Index Index
}

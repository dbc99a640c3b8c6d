package gitdiff

import (
	"regexp"
	"strings"

	"github.com/fwojciec/diffpager"
)

// commitLineRE matches git-log commit headers. The hash group is permissive
// about length so abbreviated hashes classify the same as full ones.
var commitLineRE = regexp.MustCompile(`^commit\s+([0-9a-fA-F]{6,64})\b[ \t]*(.*)$`)

// Classify determines the structural role of a single raw diff line.
// Structural markers are matched in priority order; everything else falls
// through to first-character dispatch. Unrecognized syntax degrades to
// LineOther, never an error.
func Classify(text string) diffpager.LineKind {
	switch {
	case commitLineRE.MatchString(text):
		return diffpager.LineCommit
	case strings.HasPrefix(text, "--- "):
		return diffpager.LineFileOld
	case strings.HasPrefix(text, "+++ "):
		return diffpager.LineFileNew
	case strings.HasPrefix(text, "@@ "):
		return diffpager.LineHunk
	}
	if text == "" {
		return diffpager.LineOther
	}
	switch text[0] {
	case '+':
		return diffpager.LineAdded
	case '-':
		return diffpager.LineDeleted
	case ' ':
		return diffpager.LineContext
	}
	return diffpager.LineOther
}

// parseCommitLine extracts the hash and any inline subject from a commit
// header line. When the line carries no extractable hash the whole line
// text stands in as the subject.
func parseCommitLine(text string) (id, subject string) {
	m := commitLineRE.FindStringSubmatch(text)
	if m == nil {
		return "", text
	}
	return m[1], strings.TrimSpace(m[2])
}

// parsePath extracts the display path from the payload of a "---" or "+++"
// header. Returns "" for /dev/null so callers can fall back to the other
// side of the pair.
func parsePath(s string) string {
	// Non-git unified diffs append a tab and a timestamp.
	if i := strings.IndexByte(s, '\t'); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	if s == "/dev/null" {
		return ""
	}
	if strings.HasPrefix(s, "a/") || strings.HasPrefix(s, "b/") {
		return s[2:]
	}
	return s
}
